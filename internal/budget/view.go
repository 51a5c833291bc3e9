package budget

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/weekbudget/backend/internal/cycle"
	"github.com/weekbudget/backend/internal/models"
	"github.com/weekbudget/backend/internal/types"
)

// Countdown is the time left until the week resets.
type Countdown struct {
	Days    int `json:"days" example:"3"`
	Hours   int `json:"hours" example:"8"`
	Minutes int `json:"minutes" example:"55"`
}

// View is everything needed to display the current week.
type View struct {
	Today            types.Date       `json:"today" example:"2024-03-15"`
	Settings         Settings         `json:"settings"`
	Rates            Rates            `json:"rates"`
	WeekStart        types.Date       `json:"weekStart" example:"2024-03-11"`        // Monday of the current week
	WeekEnd          types.Date       `json:"weekEnd" example:"2024-03-17"`          // Sunday of the current week
	WeekSpent        decimal.Decimal  `json:"weekSpent" example:"47.8"`              // Money spent in the current week
	Carryover        decimal.Decimal  `json:"carryover" example:"12.4"`              // Balance of last week added to this week
	Remaining        decimal.Decimal  `json:"remaining" example:"254.26"`            // Money left for the current week
	LastTransferDate *types.Date      `json:"lastTransferDate" example:"2024-03-11"` // Week of the last transfer, null if hidden or none
	ShowTransfer     bool             `json:"showTransfer" example:"true"`           // False in the week of the activation
	State            State            `json:"state" example:"ACTIVE_TRANSFERRED_FOR_WEEK"`
	NextReset        time.Time        `json:"nextReset" example:"2024-03-18T00:00:00+01:00"`
	Countdown        Countdown        `json:"countdown"`
	Entries          []models.Expense `json:"entries"` // Expenses of the current week, newest first
}

// WeeklyView computes the view for the week containing now.
//
// The weekly transfer runs first if it is due.
func (s *Service) WeeklyView(ctx context.Context, now time.Time) (View, error) {
	now = now.In(s.location)
	today := types.DateOf(now)

	err := s.ensureDefaults(ctx)
	if err != nil {
		return View{}, err
	}

	err = s.RunWeeklyTransferIfDue(ctx, today)
	if err != nil {
		return View{}, err
	}

	settings, err := s.Settings(ctx)
	if err != nil {
		return View{}, err
	}

	start, end := cycle.For(today, settings.StartDay, settings.EndDay)
	rates := NewRates(settings.MonthlyBudget, start, end)

	monday, sunday := cycle.WeekOf(today)
	spent, err := s.weekSpent(ctx, monday)
	if err != nil {
		return View{}, err
	}

	entries, err := s.store.Expenses(ctx, monday, sunday)
	if err != nil {
		return View{}, err
	}

	var activated types.Date
	ok := settings.ActivatedAt != nil
	if ok {
		activated = *settings.ActivatedAt
	}

	carryover := decimal.Zero
	if transferActive(activated, ok, today) {
		carryover, err = s.LastWeekBalance(ctx, today)
		if err != nil {
			return View{}, err
		}
	}

	// The week of the activation never gets a carryover
	var lastTransfer *types.Date
	thisWeek := activatedThisWeek(activated, ok, today)
	if thisWeek {
		carryover = decimal.Zero
	} else {
		last, found, err := s.store.LastTransfer(ctx)
		if err != nil {
			return View{}, err
		}

		if found {
			lastTransfer = &last
		}
	}

	state, err := s.TransferState(ctx, today)
	if err != nil {
		return View{}, err
	}

	if entries == nil {
		entries = make([]models.Expense, 0)
	}

	nextReset := cycle.NextReset(now)
	view := View{
		Today:            today,
		Settings:         settings,
		Rates:            rates,
		WeekStart:        monday,
		WeekEnd:          sunday,
		WeekSpent:        spent,
		Carryover:        carryover,
		Remaining:        RemainingBalance(rates.WeekRate, carryover, spent),
		LastTransferDate: lastTransfer,
		ShowTransfer:     !thisWeek,
		State:            state,
		NextReset:        nextReset,
		Countdown:        countdown(nextReset.Sub(now)),
		Entries:          entries,
	}

	return view, nil
}

func countdown(d time.Duration) Countdown {
	return Countdown{
		Days:    int(d / (24 * time.Hour)),
		Hours:   int(d % (24 * time.Hour) / time.Hour),
		Minutes: int(d % time.Hour / time.Minute),
	}
}
