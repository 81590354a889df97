package engine

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"beven/internal/model"
)

func TestProject_PeriodCounts(t *testing.T) {
	p := baseParams() // horizon 12, 4 weeks/month

	res, err := Project(p, 100)
	if err != nil {
		t.Fatalf("Project returned error: %v", err)
	}

	if len(res.Months) != 12 {
		t.Fatalf("len(Months) = %d, want 12", len(res.Months))
	}
	if len(res.Weeks) != 48 {
		t.Fatalf("len(Weeks) = %d, want 48", len(res.Weeks))
	}
}

func TestProject_RepeatedCallsAgree(t *testing.T) {
	p := baseParams()
	goal := 1000.0
	p.ProfitGoal = &goal

	first, err := Project(p, 100)
	if err != nil {
		t.Fatalf("Project returned error: %v", err)
	}
	second, err := Project(p, 100)
	if err != nil {
		t.Fatalf("second Project returned error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("Project not repeatable for identical inputs")
	}
}

func TestProject_ZeroHorizon(t *testing.T) {
	p := baseParams()
	p.HorizonMonths = 0

	res, err := Project(p, 100)
	if err != nil {
		t.Fatalf("Project returned error: %v", err)
	}

	if len(res.Months) != 0 || len(res.Weeks) != 0 {
		t.Fatalf("zero horizon produced %d months, %d weeks", len(res.Months), len(res.Weeks))
	}
	if res.Crossing.Reached {
		t.Fatal("crossing reached with zero horizon")
	}
}

func TestProject_GrowthCompounds(t *testing.T) {
	p := baseParams()

	res, err := Project(p, 100)
	if err != nil {
		t.Fatalf("Project returned error: %v", err)
	}

	for m, row := range res.Months {
		want := 100 * math.Pow(1.10, float64(m))
		if math.Abs(row.Orders-want) > 1e-9 {
			t.Fatalf("month %d orders = %v, want %v", m+1, row.Orders, want)
		}
	}
}

func TestProject_CumulativeIsPrefixSum(t *testing.T) {
	res, err := Project(baseParams(), 120)
	if err != nil {
		t.Fatalf("Project returned error: %v", err)
	}

	var sum float64
	for m, row := range res.Months {
		sum += row.Profit
		if math.Abs(row.CumulativeProfit-sum) > 1e-6 {
			t.Fatalf("month %d cumulative = %v, want %v", m+1, row.CumulativeProfit, sum)
		}
	}

	sum = 0
	for w, row := range res.Weeks {
		sum += row.Profit
		if math.Abs(row.CumulativeProfit-sum) > 1e-6 {
			t.Fatalf("week %d cumulative = %v, want %v", w+1, row.CumulativeProfit, sum)
		}
	}
}

func TestProject_WeeklyFixedSumsToMonthly(t *testing.T) {
	p := baseParams()
	p.WeeksPerMonth = 5 // 3000/5 does not divide into clean cents

	res, err := Project(p, 100)
	if err != nil {
		t.Fatalf("Project returned error: %v", err)
	}

	for m, month := range res.Months {
		var weekFixed, weekOrders float64
		for w := 0; w < p.WeeksPerMonth; w++ {
			row := res.Weeks[m*p.WeeksPerMonth+w]
			weekFixed += row.FixedCost
			weekOrders += row.Orders
		}
		if math.Abs(weekFixed-month.FixedCost) > 1e-9 {
			t.Fatalf("month %d weekly fixed sum = %v, want %v", m+1, weekFixed, month.FixedCost)
		}
		if math.Abs(weekOrders-month.Orders) > 1e-9 {
			t.Fatalf("month %d weekly orders sum = %v, want %v", m+1, weekOrders, month.Orders)
		}
	}
}

func TestProject_BreakevenStartIsFlat(t *testing.T) {
	p := baseParams()
	p.GrowthRate = 0

	be, err := Solve(p)
	if err != nil {
		t.Fatalf("Solve returned error: %v", err)
	}

	res, err := Project(p, be.Orders)
	if err != nil {
		t.Fatalf("Project returned error: %v", err)
	}

	for m, row := range res.Months {
		if math.Abs(row.Profit) > 1e-9 {
			t.Fatalf("month %d profit at breakeven = %v, want 0", m+1, row.Profit)
		}
	}

	// Cumulative sits at zero from the first week, which counts as crossing.
	if !res.Crossing.Reached {
		t.Fatal("crossing not reached at breakeven volume")
	}
	if res.Crossing.Week != 0 || res.Crossing.Month != 0 {
		t.Fatalf("crossing at week %d month %d, want week 0 month 0",
			res.Crossing.Week, res.Crossing.Month)
	}
}

func TestProject_CrossingDetection(t *testing.T) {
	// Start below breakeven with strong growth: early losses, later gains.
	p := baseParams()
	p.GrowthRate = 0.5

	res, err := Project(p, 50)
	if err != nil {
		t.Fatalf("Project returned error: %v", err)
	}

	if !res.Crossing.Reached {
		t.Fatal("crossing not reached despite 50% monthly growth")
	}

	idx := res.Crossing.Week
	if res.Weeks[idx].CumulativeProfit < 0 {
		t.Fatalf("cumulative at crossing week = %v, want >= 0", res.Weeks[idx].CumulativeProfit)
	}
	if idx > 0 && res.Weeks[idx-1].CumulativeProfit >= 0 {
		t.Fatalf("week before crossing already non-negative: %v", res.Weeks[idx-1].CumulativeProfit)
	}
	if res.Crossing.Month != idx/p.WeeksPerMonth {
		t.Fatalf("crossing month = %d, want %d", res.Crossing.Month, idx/p.WeeksPerMonth)
	}
}

func TestProject_NeverCrossesWithoutGrowth(t *testing.T) {
	p := baseParams()
	p.GrowthRate = 0

	res, err := Project(p, 50) // half of breakeven, flat forever
	if err != nil {
		t.Fatalf("Project returned error: %v", err)
	}

	if res.Crossing.Reached {
		t.Fatalf("crossing reported at week %d for a permanently unprofitable run",
			res.Crossing.Week)
	}
	last := res.Weeks[len(res.Weeks)-1]
	if last.CumulativeProfit >= 0 {
		t.Fatalf("final cumulative = %v, want negative", last.CumulativeProfit)
	}
}

func TestProject_AttachesGoal(t *testing.T) {
	goal := 1000.0
	p := baseParams()
	p.ProfitGoal = &goal

	res, err := Project(p, 100)
	if err != nil {
		t.Fatalf("Project returned error: %v", err)
	}

	if res.Goal == nil {
		t.Fatal("Goal is nil, want solved goal volume")
	}
	want := 4000.0 / 30.0
	if math.Abs(res.Goal.Orders-want) > 1e-9 {
		t.Fatalf("goal orders = %v, want %v", res.Goal.Orders, want)
	}
}

func TestProject_RejectsBadStart(t *testing.T) {
	for _, start := range []float64{-1, math.NaN(), math.Inf(1)} {
		_, err := Project(baseParams(), start)
		if !errors.Is(err, ErrInvalidParameters) {
			t.Fatalf("Project(start=%v) error = %v, want ErrInvalidParameters", start, err)
		}
	}
}

func TestProject_PropagatesSolveError(t *testing.T) {
	p := baseParams()
	p.UnitCost = 50

	_, err := Project(p, 100)
	if !errors.Is(err, ErrDivisionUndefined) {
		t.Fatalf("Project error = %v, want ErrDivisionUndefined", err)
	}
}

func TestStartOrders(t *testing.T) {
	be := model.Breakeven{Orders: 100}

	p := baseParams()
	got, explicit := StartOrders(p, be)
	if got != 100 || explicit {
		t.Fatalf("StartOrders = (%v, %v), want (100, false)", got, explicit)
	}

	start := 80.0
	p.StartingOrders = &start
	got, explicit = StartOrders(p, be)
	if got != 80 || !explicit {
		t.Fatalf("StartOrders = (%v, %v), want (80, true)", got, explicit)
	}
}
