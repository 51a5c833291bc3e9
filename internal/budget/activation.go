package budget

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/weekbudget/backend/internal/cycle"
	"github.com/weekbudget/backend/internal/models"
	"github.com/weekbudget/backend/internal/types"
)

// ActivatedDate returns the day the budget was activated.
//
// The boolean is false if the budget has not been activated. An
// unparseable activation date counts as not activated.
func (s *Service) ActivatedDate(ctx context.Context) (types.Date, bool, error) {
	value, err := s.store.Setting(ctx, models.SettingActivatedAt, "")
	if err != nil {
		return types.Date{}, false, err
	}

	if value == "" {
		return types.Date{}, false, nil
	}

	activated, err := types.ParseDate(value)
	if err != nil {
		log.Warn().Str("activated_at", value).Msg("Ignoring unparseable activation date")
		return types.Date{}, false, nil
	}

	return activated, true, nil
}

// ActivatedThisWeek reports if the budget was activated in the week of today.
func (s *Service) ActivatedThisWeek(ctx context.Context, today types.Date) (bool, error) {
	activated, ok, err := s.ActivatedDate(ctx)
	if err != nil {
		return false, err
	}

	return activatedThisWeek(activated, ok, today), nil
}

// IsTransferActive reports if the weekly transfer applies on today.
func (s *Service) IsTransferActive(ctx context.Context, today types.Date) (bool, error) {
	activated, ok, err := s.ActivatedDate(ctx)
	if err != nil {
		return false, err
	}

	return transferActive(activated, ok, today), nil
}

// activatedThisWeek is true if the activation is on or after the Monday of today's week.
func activatedThisWeek(activated types.Date, ok bool, today types.Date) bool {
	if !ok {
		return false
	}

	return !activated.Before(cycle.WeekStart(today))
}

// transferActive is true from the first Monday strictly after the activation on.
func transferActive(activated types.Date, ok bool, today types.Date) bool {
	if !ok {
		return false
	}

	return !today.Before(cycle.FirstMondayAfter(activated))
}
