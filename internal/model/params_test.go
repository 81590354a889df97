package model

import "testing"

func TestFixedMonthlyCost(t *testing.T) {
	p := BusinessParameters{MarketerPay: 1500, DailyAdSpend: 50, AdDaysPerMonth: 30}
	if got := p.FixedMonthlyCost(); got != 3000 {
		t.Fatalf("FixedMonthlyCost = %v, want 3000", got)
	}

	p.AdDaysPerMonth = 0
	if got := p.FixedMonthlyCost(); got != 1500 {
		t.Fatalf("FixedMonthlyCost without ad days = %v, want 1500", got)
	}
}

func TestEffectiveUnitCost(t *testing.T) {
	flat := BusinessParameters{SellingPrice: 50, UnitCost: 20}
	if got := flat.EffectiveUnitCost(); got != 20 {
		t.Fatalf("flat unit cost = %v, want 20", got)
	}

	pct := BusinessParameters{SellingPrice: 50, UnitCost: 40, UnitCostIsPercent: true}
	if got := pct.EffectiveUnitCost(); got != 20 {
		t.Fatalf("percent unit cost = %v, want 20", got)
	}
}

func TestContributionMargin(t *testing.T) {
	p := BusinessParameters{SellingPrice: 50, UnitCost: 20}
	if got := p.ContributionMargin(); got != 30 {
		t.Fatalf("margin = %v, want 30", got)
	}

	p.AddOnMargin = 10
	p.AddOnRate = 0.5
	if got := p.ContributionMargin(); got != 35 {
		t.Fatalf("margin with add-on = %v, want 35", got)
	}
}

func TestParametersClone_IndependentPointers(t *testing.T) {
	goal := 1000.0
	start := 80.0
	p := BusinessParameters{ProfitGoal: &goal, StartingOrders: &start}

	cp := p.Clone()
	*p.ProfitGoal = 5
	*p.StartingOrders = 5

	if *cp.ProfitGoal != 1000 {
		t.Fatalf("cloned goal = %v, want 1000", *cp.ProfitGoal)
	}
	if *cp.StartingOrders != 80 {
		t.Fatalf("cloned starting orders = %v, want 80", *cp.StartingOrders)
	}
}

func TestProjectionResultClone_IndependentSlices(t *testing.T) {
	r := ProjectionResult{
		Months: []PeriodResult{{Period: 0, Profit: 100}},
		Weeks:  []PeriodResult{{Period: 0, Profit: 25}},
		Goal:   &GoalVolume{Goal: 1000, Orders: 133.33},
	}

	cp := r.Clone()
	r.Months[0].Profit = -1
	r.Weeks[0].Profit = -1
	r.Goal.Orders = 0

	if cp.Months[0].Profit != 100 {
		t.Fatalf("cloned month profit = %v, want 100", cp.Months[0].Profit)
	}
	if cp.Weeks[0].Profit != 25 {
		t.Fatalf("cloned week profit = %v, want 25", cp.Weeks[0].Profit)
	}
	if cp.Goal.Orders != 133.33 {
		t.Fatalf("cloned goal orders = %v, want 133.33", cp.Goal.Orders)
	}
}
