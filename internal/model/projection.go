package model

import "time"

// PeriodResult holds the economics of a single week or month.
type PeriodResult struct {
	Period           int // 0-based index within its cadence
	Orders           float64
	Revenue          float64
	VariableCost     float64
	FixedCost        float64
	Profit           float64
	CumulativeProfit float64
}

// CrossingPoint marks the first period where cumulative profit turns
// non-negative. Week and Month are 0-based; Reached is false when the
// horizon was exhausted without a crossing.
type CrossingPoint struct {
	Week    int
	Month   int
	Reached bool
}

// Breakeven holds the solver output: the monthly order volume at which
// profit is exactly zero.
type Breakeven struct {
	Orders        float64
	Revenue       float64
	Margin        float64 // contribution margin per order
	MarginPercent float64 // margin as a percentage of price
}

// GoalVolume holds the order volume needed to hit a monthly profit goal.
type GoalVolume struct {
	Goal    float64
	Orders  float64
	Revenue float64
}

// ProjectionResult is the full output of one computation run. Months and
// Weeks are chronological and immutable once returned.
type ProjectionResult struct {
	Months []PeriodResult
	Weeks  []PeriodResult

	Breakeven Breakeven
	Goal      *GoalVolume // nil when no goal was supplied

	Crossing CrossingPoint
}

// Clone returns a deep copy of the result.
func (r ProjectionResult) Clone() ProjectionResult {
	cp := r
	cp.Months = append([]PeriodResult(nil), r.Months...)
	cp.Weeks = append([]PeriodResult(nil), r.Weeks...)
	if r.Goal != nil {
		g := *r.Goal
		cp.Goal = &g
	}
	return cp
}

// Scenario is a frozen snapshot of inputs and outputs taken at user request.
type Scenario struct {
	Params  BusinessParameters
	Result  ProjectionResult
	SavedAt time.Time
}
