package scenario

import (
	"testing"

	"beven/internal/model"
)

func sampleParams(goal float64) model.BusinessParameters {
	return model.BusinessParameters{
		SellingPrice:  50,
		UnitCost:      20,
		MarketerPay:   3000,
		HorizonMonths: 3,
		WeeksPerMonth: 4,
		ProfitGoal:    &goal,
	}
}

func sampleResult(margin float64) model.ProjectionResult {
	return model.ProjectionResult{
		Breakeven: model.Breakeven{Orders: 100, Revenue: 5000, Margin: margin},
		Months: []model.PeriodResult{
			{Period: 0, Orders: 100, Revenue: 5000, Profit: 0},
		},
	}
}

func TestStore_EmptyHasNoCurrent(t *testing.T) {
	s := New()

	if _, ok := s.Current(); ok {
		t.Fatal("Current returned ok for an empty store")
	}
}

func TestStore_SaveAndCurrent(t *testing.T) {
	s := New()
	s.Save(sampleParams(1000), sampleResult(30))

	got, ok := s.Current()
	if !ok {
		t.Fatal("Current returned !ok after Save")
	}
	if got.Params.SellingPrice != 50 {
		t.Fatalf("saved price = %v, want 50", got.Params.SellingPrice)
	}
	if got.Result.Breakeven.Orders != 100 {
		t.Fatalf("saved breakeven orders = %v, want 100", got.Result.Breakeven.Orders)
	}
	if got.SavedAt.IsZero() {
		t.Fatal("SavedAt is zero")
	}
}

func TestStore_SavedCopyIsIsolated(t *testing.T) {
	s := New()
	p := sampleParams(1000)
	r := sampleResult(30)
	s.Save(p, r)

	// Mutating the caller's values must not reach the stored copy.
	*p.ProfitGoal = 9999
	p.SellingPrice = 1
	r.Months[0].Profit = -1

	got, _ := s.Current()
	if *got.Params.ProfitGoal != 1000 {
		t.Fatalf("stored goal = %v, want 1000", *got.Params.ProfitGoal)
	}
	if got.Params.SellingPrice != 50 {
		t.Fatalf("stored price = %v, want 50", got.Params.SellingPrice)
	}
	if got.Result.Months[0].Profit != 0 {
		t.Fatalf("stored month profit = %v, want 0", got.Result.Months[0].Profit)
	}

	// And mutating what Current hands back must not reach the store.
	got.Result.Months[0].Orders = -5
	*got.Params.ProfitGoal = 7

	again, _ := s.Current()
	if again.Result.Months[0].Orders != 100 {
		t.Fatalf("store mutated through Current copy: orders = %v", again.Result.Months[0].Orders)
	}
	if *again.Params.ProfitGoal != 1000 {
		t.Fatalf("store mutated through Current copy: goal = %v", *again.Params.ProfitGoal)
	}
}

func TestStore_SingleSlotReplacement(t *testing.T) {
	s := New()
	s.Save(sampleParams(1000), sampleResult(30))
	s.Save(sampleParams(2000), sampleResult(35))

	got, ok := s.Current()
	if !ok {
		t.Fatal("Current returned !ok after second Save")
	}
	if *got.Params.ProfitGoal != 2000 {
		t.Fatalf("goal after replacement = %v, want 2000", *got.Params.ProfitGoal)
	}
	if got.Result.Breakeven.Margin != 35 {
		t.Fatalf("margin after replacement = %v, want 35", got.Result.Breakeven.Margin)
	}
}

func TestStore_Clear(t *testing.T) {
	s := New()
	s.Save(sampleParams(1000), sampleResult(30))
	s.Clear()

	if _, ok := s.Current(); ok {
		t.Fatal("Current returned ok after Clear")
	}
}
