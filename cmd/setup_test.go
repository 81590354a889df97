package cmd

import "testing"

func TestThemeForChoice(t *testing.T) {
	cases := []struct {
		choice string
		want   string
		ok     bool
	}{
		{"1", "flexoki-dark", true},
		{"2", "catppuccin-mocha", true},
		{"3", "tokyo-night", true},
		{"4", "terminal", true},
		{" 2 ", "catppuccin-mocha", true},
		{"", "tokyo-night", true},       // blank keeps current
		{"5", "tokyo-night", false},     // out of range keeps current
		{"mocha", "tokyo-night", false}, // free text keeps current
	}
	for _, c := range cases {
		got, ok := themeForChoice(c.choice, "tokyo-night")
		if got != c.want || ok != c.ok {
			t.Fatalf("themeForChoice(%q) = (%q, %v), want (%q, %v)", c.choice, got, ok, c.want, c.ok)
		}
	}
}
