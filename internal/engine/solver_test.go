package engine

import (
	"errors"
	"math"
	"testing"

	"beven/internal/model"
)

// baseParams returns a known-good parameter set: 30.00 margin per order
// and 3,000.00 fixed costs, so breakeven is exactly 100 orders.
func baseParams() model.BusinessParameters {
	return model.BusinessParameters{
		SellingPrice:  50,
		UnitCost:      20,
		MarketerPay:   3000,
		GrowthRate:    0.10,
		HorizonMonths: 12,
		WeeksPerMonth: 4,
	}
}

func TestSolve_BreakevenVolume(t *testing.T) {
	be, err := Solve(baseParams())
	if err != nil {
		t.Fatalf("Solve returned error: %v", err)
	}

	if be.Orders != 100 {
		t.Fatalf("breakeven orders = %v, want 100", be.Orders)
	}
	if be.Revenue != 5000 {
		t.Fatalf("breakeven revenue = %v, want 5000", be.Revenue)
	}
	if be.Margin != 30 {
		t.Fatalf("margin = %v, want 30", be.Margin)
	}
	if be.MarginPercent != 60 {
		t.Fatalf("margin percent = %v, want 60", be.MarginPercent)
	}

	// Breakeven volume must exactly cover fixed costs.
	covered := be.Orders * be.Margin
	if math.Abs(covered-3000) > 1e-9 {
		t.Fatalf("orders*margin = %v, want 3000", covered)
	}
}

func TestSolve_AdSpendInFixedCosts(t *testing.T) {
	p := baseParams()
	p.MarketerPay = 1500
	p.DailyAdSpend = 50
	p.AdDaysPerMonth = 30

	be, err := Solve(p)
	if err != nil {
		t.Fatalf("Solve returned error: %v", err)
	}

	// 1500 + 50*30 = 3000 fixed, margin 30 -> 100 orders
	if be.Orders != 100 {
		t.Fatalf("breakeven orders = %v, want 100", be.Orders)
	}
}

func TestSolve_PercentUnitCost(t *testing.T) {
	p := baseParams()
	p.UnitCost = 40
	p.UnitCostIsPercent = true

	be, err := Solve(p)
	if err != nil {
		t.Fatalf("Solve returned error: %v", err)
	}

	// 40% of 50 = 20 unit cost, same margin as the flat case
	if be.Margin != 30 {
		t.Fatalf("margin = %v, want 30", be.Margin)
	}
	if be.Orders != 100 {
		t.Fatalf("breakeven orders = %v, want 100", be.Orders)
	}
}

func TestSolve_AddOnRaisesMargin(t *testing.T) {
	p := baseParams()
	p.AddOnMargin = 10
	p.AddOnRate = 0.5

	be, err := Solve(p)
	if err != nil {
		t.Fatalf("Solve returned error: %v", err)
	}

	if be.Margin != 35 {
		t.Fatalf("margin with add-on = %v, want 35", be.Margin)
	}
	want := 3000.0 / 35.0
	if math.Abs(be.Orders-want) > 1e-9 {
		t.Fatalf("breakeven orders = %v, want %v", be.Orders, want)
	}
}

func TestSolve_MarginNotPositive(t *testing.T) {
	cases := []struct {
		name string
		cost float64
	}{
		{"cost equals price", 50},
		{"cost exceeds price", 60},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := baseParams()
			p.UnitCost = tc.cost

			_, err := Solve(p)
			if !errors.Is(err, ErrDivisionUndefined) {
				t.Fatalf("Solve error = %v, want ErrDivisionUndefined", err)
			}
		})
	}
}

func TestSolve_RepeatedCallsAgree(t *testing.T) {
	p := baseParams()

	first, err := Solve(p)
	if err != nil {
		t.Fatalf("Solve returned error: %v", err)
	}
	second, err := Solve(p)
	if err != nil {
		t.Fatalf("second Solve returned error: %v", err)
	}
	if first != second {
		t.Fatalf("Solve not repeatable: %+v vs %+v", first, second)
	}

	g1, err := SolveGoal(p, 1000)
	if err != nil {
		t.Fatalf("SolveGoal returned error: %v", err)
	}
	g2, err := SolveGoal(p, 1000)
	if err != nil {
		t.Fatalf("second SolveGoal returned error: %v", err)
	}
	if g1 != g2 {
		t.Fatalf("SolveGoal not repeatable: %+v vs %+v", g1, g2)
	}
}

func TestSolveGoal_OrdersNeeded(t *testing.T) {
	gv, err := SolveGoal(baseParams(), 1000)
	if err != nil {
		t.Fatalf("SolveGoal returned error: %v", err)
	}

	// (3000 + 1000) / 30 = 133.33...
	want := 4000.0 / 30.0
	if math.Abs(gv.Orders-want) > 1e-9 {
		t.Fatalf("goal orders = %v, want %v", gv.Orders, want)
	}
	if math.Abs(gv.Revenue-want*50) > 1e-9 {
		t.Fatalf("goal revenue = %v, want %v", gv.Revenue, want*50)
	}
	if gv.Goal != 1000 {
		t.Fatalf("goal = %v, want 1000", gv.Goal)
	}
}

func TestSolveGoal_NonPositiveGoalNeedsNothing(t *testing.T) {
	for _, goal := range []float64{0, -500} {
		gv, err := SolveGoal(baseParams(), goal)
		if err != nil {
			t.Fatalf("SolveGoal(%v) returned error: %v", goal, err)
		}
		if gv.Orders != 0 || gv.Revenue != 0 {
			t.Fatalf("SolveGoal(%v) = %+v, want zero orders and revenue", goal, gv)
		}
		if gv.Goal != goal {
			t.Fatalf("goal = %v, want %v", gv.Goal, goal)
		}
	}
}

func TestSolveGoal_UndefinedMargin(t *testing.T) {
	p := baseParams()
	p.UnitCost = 50

	_, err := SolveGoal(p, 1000)
	if !errors.Is(err, ErrDivisionUndefined) {
		t.Fatalf("SolveGoal error = %v, want ErrDivisionUndefined", err)
	}
}

func TestValidate_RejectsBadParameters(t *testing.T) {
	neg := -5.0
	inf := math.Inf(1)

	cases := []struct {
		name   string
		mutate func(*model.BusinessParameters)
	}{
		{"negative price", func(p *model.BusinessParameters) { p.SellingPrice = -1 }},
		{"NaN price", func(p *model.BusinessParameters) { p.SellingPrice = math.NaN() }},
		{"negative unit cost", func(p *model.BusinessParameters) { p.UnitCost = -1 }},
		{"infinite ad spend", func(p *model.BusinessParameters) { p.DailyAdSpend = inf }},
		{"growth below -100%", func(p *model.BusinessParameters) { p.GrowthRate = -1.5 }},
		{"NaN growth", func(p *model.BusinessParameters) { p.GrowthRate = math.NaN() }},
		{"ad days above 31", func(p *model.BusinessParameters) { p.AdDaysPerMonth = 32 }},
		{"negative horizon", func(p *model.BusinessParameters) { p.HorizonMonths = -1 }},
		{"zero weeks per month", func(p *model.BusinessParameters) { p.WeeksPerMonth = 0 }},
		{"add-on rate above 1", func(p *model.BusinessParameters) { p.AddOnRate = 1.5 }},
		{"infinite goal", func(p *model.BusinessParameters) { p.ProfitGoal = &inf }},
		{"negative starting orders", func(p *model.BusinessParameters) { p.StartingOrders = &neg }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := baseParams()
			tc.mutate(&p)

			err := Validate(p)
			if !errors.Is(err, ErrInvalidParameters) {
				t.Fatalf("Validate error = %v, want ErrInvalidParameters", err)
			}
		})
	}
}

func TestValidate_AcceptsGoodParameters(t *testing.T) {
	goal := 1000.0
	start := 80.0

	p := baseParams()
	p.ProfitGoal = &goal
	p.StartingOrders = &start
	p.GrowthRate = -1 // -100% growth is the boundary, still legal

	if err := Validate(p); err != nil {
		t.Fatalf("Validate returned error for good parameters: %v", err)
	}
}
