package budget

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/weekbudget/backend/internal/cycle"
	"github.com/weekbudget/backend/internal/types"
)

var daysPerWeek = decimal.NewFromInt(7)

// Rates are the budget amounts derived from the monthly budget and the cycle.
type Rates struct {
	CycleStart    types.Date      `json:"cycleStart" example:"2024-02-27"` // First day of the cycle
	CycleEnd      types.Date      `json:"cycleEnd" example:"2024-03-26"`   // Last day of the cycle
	CycleDays     int             `json:"cycleDays" example:"29"`          // Number of days in the cycle
	MonthlyBudget decimal.Decimal `json:"monthlyBudget" example:"1200"`    // The monthly budget
	DayRate       decimal.Decimal `json:"dayRate" example:"41.3793103448275862"`
	WeekRate      decimal.Decimal `json:"weekRate" example:"289.66"`
}

// NewRates computes the rates for a monthly budget and a cycle.
//
// The day rate is not rounded, the week rate is rounded to two places.
func NewRates(monthlyBudget decimal.Decimal, cycleStart, cycleEnd types.Date) Rates {
	r := Rates{
		CycleStart:    cycleStart,
		CycleEnd:      cycleEnd,
		CycleDays:     cycle.Length(cycleStart, cycleEnd),
		MonthlyBudget: monthlyBudget,
		DayRate:       decimal.Zero,
	}

	if r.CycleDays > 0 {
		r.DayRate = monthlyBudget.Div(decimal.NewFromInt(int64(r.CycleDays)))
	}

	r.WeekRate = r.DayRate.Mul(daysPerWeek).Round(2)
	return r
}

// RemainingBalance is the amount left for the week.
func RemainingBalance(weekRate, carryover, spent decimal.Decimal) decimal.Decimal {
	return weekRate.Add(carryover).Sub(spent).Round(2)
}

// rates computes the rates for the cycle containing the day.
func (s *Service) rates(ctx context.Context, day types.Date) (Rates, error) {
	settings, err := s.Settings(ctx)
	if err != nil {
		return Rates{}, err
	}

	start, end := cycle.For(day, settings.StartDay, settings.EndDay)
	return NewRates(settings.MonthlyBudget, start, end), nil
}

// weekSpent returns the money spent in the week starting on monday
// as a positive amount.
func (s *Service) weekSpent(ctx context.Context, monday types.Date) (decimal.Decimal, error) {
	sum, err := s.store.SumExpenses(ctx, monday, monday.AddDays(6))
	if err != nil {
		return decimal.Zero, err
	}

	return sum.Abs(), nil
}
