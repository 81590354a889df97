// Package model defines domain types for business parameters and projections.
package model

// BusinessParameters holds the normalized inputs for one calculation run.
// Money values share a single currency; GrowthRate and AddOnRate are
// fractions (0.10 = 10%).
type BusinessParameters struct {
	SellingPrice float64

	// Variable cost per order. When UnitCostIsPercent is set, UnitCost is a
	// percentage of SellingPrice instead of a flat amount.
	UnitCost          float64
	UnitCostIsPercent bool

	// Fixed monthly cost components.
	MarketerPay    float64
	DailyAdSpend   float64
	AdDaysPerMonth int

	GrowthRate    float64
	HorizonMonths int
	WeeksPerMonth int

	// Optional monthly profit goal.
	ProfitGoal *float64

	// Optional explicit starting monthly order count for projections.
	// When nil the caller substitutes breakeven orders.
	StartingOrders *float64

	// Add-on economics: extra profit per order carrying the add-on set,
	// and the fraction of orders that carry it.
	AddOnMargin float64
	AddOnRate   float64
}

// FixedMonthlyCost returns the total fixed cost per month.
func (p BusinessParameters) FixedMonthlyCost() float64 {
	return p.MarketerPay + p.DailyAdSpend*float64(p.AdDaysPerMonth)
}

// EffectiveUnitCost resolves the variable cost per order to a flat amount.
func (p BusinessParameters) EffectiveUnitCost() float64 {
	if p.UnitCostIsPercent {
		return p.SellingPrice * p.UnitCost / 100
	}
	return p.UnitCost
}

// ContributionMargin returns the profit contributed by one order:
// price minus variable cost, plus the weighted add-on profit.
func (p BusinessParameters) ContributionMargin() float64 {
	return p.SellingPrice - p.EffectiveUnitCost() + p.AddOnRate*p.AddOnMargin
}

// Clone returns a deep copy; pointer fields are duplicated so the copy
// is independent of the original.
func (p BusinessParameters) Clone() BusinessParameters {
	cp := p
	if p.ProfitGoal != nil {
		v := *p.ProfitGoal
		cp.ProfitGoal = &v
	}
	if p.StartingOrders != nil {
		v := *p.StartingOrders
		cp.StartingOrders = &v
	}
	return cp
}
