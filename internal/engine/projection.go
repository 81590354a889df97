package engine

import (
	"fmt"
	"math"

	"beven/internal/model"
)

// Project runs Solve and then iterates the monthly timeline, producing
// monthly and weekly period rows over the configured horizon.
//
// Orders for month m are startOrders * (1+growth)^m. Each month's orders
// are split evenly across WeeksPerMonth weeks, and the fixed monthly cost
// is amortized evenly across those weeks, so the weekly fixed costs of a
// month always sum to the monthly figure.
func Project(p model.BusinessParameters, startOrders float64) (model.ProjectionResult, error) {
	be, err := Solve(p)
	if err != nil {
		return model.ProjectionResult{}, err
	}

	if math.IsNaN(startOrders) || math.IsInf(startOrders, 0) || startOrders < 0 {
		return model.ProjectionResult{}, fmt.Errorf(
			"%w: starting orders must be finite and non-negative", ErrInvalidParameters)
	}

	res := model.ProjectionResult{Breakeven: be}

	if p.ProfitGoal != nil {
		gv, err := SolveGoal(p, *p.ProfitGoal)
		if err != nil {
			return model.ProjectionResult{}, err
		}
		res.Goal = &gv
	}

	price := p.SellingPrice
	unitCost := p.EffectiveUnitCost()
	addOn := p.AddOnRate * p.AddOnMargin
	fixed := p.FixedMonthlyCost()
	weeks := p.WeeksPerMonth

	res.Months = make([]model.PeriodResult, 0, p.HorizonMonths)
	res.Weeks = make([]model.PeriodResult, 0, p.HorizonMonths*weeks)

	var cumMonthly, cumWeekly float64

	for m := 0; m < p.HorizonMonths; m++ {
		orders := startOrders * math.Pow(1+p.GrowthRate, float64(m))
		if math.IsNaN(orders) || math.IsInf(orders, 0) || orders < 0 {
			return model.ProjectionResult{}, fmt.Errorf(
				"%w: orders for month %d are not a finite non-negative number", ErrInvalidParameters, m+1)
		}

		revenue := orders * price
		varCost := orders * unitCost
		profit := revenue - varCost + orders*addOn - fixed
		cumMonthly += profit

		res.Months = append(res.Months, model.PeriodResult{
			Period:           m,
			Orders:           orders,
			Revenue:          revenue,
			VariableCost:     varCost,
			FixedCost:        fixed,
			Profit:           profit,
			CumulativeProfit: cumMonthly,
		})

		wOrders := orders / float64(weeks)
		wFixed := fixed / float64(weeks)
		for w := 0; w < weeks; w++ {
			wRevenue := wOrders * price
			wVarCost := wOrders * unitCost
			wProfit := wRevenue - wVarCost + wOrders*addOn - wFixed
			cumWeekly += wProfit

			idx := m*weeks + w
			res.Weeks = append(res.Weeks, model.PeriodResult{
				Period:           idx,
				Orders:           wOrders,
				Revenue:          wRevenue,
				VariableCost:     wVarCost,
				FixedCost:        wFixed,
				Profit:           wProfit,
				CumulativeProfit: cumWeekly,
			})

			if !res.Crossing.Reached && cumWeekly >= 0 {
				res.Crossing = model.CrossingPoint{Week: idx, Month: m, Reached: true}
			}
		}
	}

	return res, nil
}

// StartOrders resolves the projection's starting monthly order count:
// the explicit figure when one was supplied, otherwise breakeven orders.
// The second return reports whether the figure was explicit.
func StartOrders(p model.BusinessParameters, be model.Breakeven) (float64, bool) {
	if p.StartingOrders != nil {
		return *p.StartingOrders, true
	}
	return be.Orders, false
}
