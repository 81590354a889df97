package engine

import (
	"fmt"
	"math"

	"beven/internal/model"
)

// Validate checks parameters for values that would corrupt the arithmetic.
func Validate(p model.BusinessParameters) error {
	money := map[string]float64{
		"selling price":  p.SellingPrice,
		"unit cost":      p.UnitCost,
		"marketer pay":   p.MarketerPay,
		"daily ad spend": p.DailyAdSpend,
		"add-on margin":  p.AddOnMargin,
	}
	for name, v := range money {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidParameters, name)
		}
	}
	if p.SellingPrice < 0 || p.UnitCost < 0 || p.MarketerPay < 0 || p.DailyAdSpend < 0 {
		return fmt.Errorf("%w: money values must be non-negative", ErrInvalidParameters)
	}
	if math.IsNaN(p.GrowthRate) || math.IsInf(p.GrowthRate, 0) || p.GrowthRate < -1 {
		return fmt.Errorf("%w: growth rate must be finite and >= -100%%", ErrInvalidParameters)
	}
	if p.AdDaysPerMonth < 0 || p.AdDaysPerMonth > 31 {
		return fmt.Errorf("%w: ad days per month must be 0-31", ErrInvalidParameters)
	}
	if p.HorizonMonths < 0 {
		return fmt.Errorf("%w: horizon must be non-negative", ErrInvalidParameters)
	}
	if p.WeeksPerMonth < 1 {
		return fmt.Errorf("%w: weeks per month must be at least 1", ErrInvalidParameters)
	}
	if p.AddOnRate < 0 || p.AddOnRate > 1 {
		return fmt.Errorf("%w: add-on rate must be between 0 and 1", ErrInvalidParameters)
	}
	if p.ProfitGoal != nil && (math.IsNaN(*p.ProfitGoal) || math.IsInf(*p.ProfitGoal, 0)) {
		return fmt.Errorf("%w: profit goal is not finite", ErrInvalidParameters)
	}
	if p.StartingOrders != nil {
		so := *p.StartingOrders
		if math.IsNaN(so) || math.IsInf(so, 0) || so < 0 {
			return fmt.Errorf("%w: starting orders must be finite and non-negative", ErrInvalidParameters)
		}
	}
	return nil
}

// Solve computes the breakeven order volume per month: fixed monthly cost
// divided by the contribution margin per order.
func Solve(p model.BusinessParameters) (model.Breakeven, error) {
	if err := Validate(p); err != nil {
		return model.Breakeven{}, err
	}

	margin := p.ContributionMargin()
	if margin <= 0 {
		return model.Breakeven{}, fmt.Errorf("%w (margin %.2f at price %.2f)",
			ErrDivisionUndefined, margin, p.SellingPrice)
	}

	orders := p.FixedMonthlyCost() / margin
	be := model.Breakeven{
		Orders:  orders,
		Revenue: orders * p.SellingPrice,
		Margin:  margin,
	}
	if p.SellingPrice > 0 {
		be.MarginPercent = margin / p.SellingPrice * 100
	}
	return be, nil
}

// SolveGoal computes the monthly order volume needed to clear a profit goal:
// (fixed cost + goal) / margin. A goal of zero or less needs zero orders.
func SolveGoal(p model.BusinessParameters, goal float64) (model.GoalVolume, error) {
	if err := Validate(p); err != nil {
		return model.GoalVolume{}, err
	}
	if goal <= 0 {
		return model.GoalVolume{Goal: goal}, nil
	}

	margin := p.ContributionMargin()
	if margin <= 0 {
		return model.GoalVolume{}, fmt.Errorf("%w (margin %.2f at price %.2f)",
			ErrDivisionUndefined, margin, p.SellingPrice)
	}

	orders := (p.FixedMonthlyCost() + goal) / margin
	return model.GoalVolume{
		Goal:    goal,
		Orders:  orders,
		Revenue: orders * p.SellingPrice,
	}, nil
}
