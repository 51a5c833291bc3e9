package budget

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/weekbudget/backend/internal/cycle"
	"github.com/weekbudget/backend/internal/types"
)

// State is the state of the weekly transfer. It is derived from the
// activation date and the transfer log on every call and never stored.
type State string

const (
	StateNotActivated      State = "NOT_ACTIVATED"
	StateActivatedThisWeek State = "ACTIVATED_THIS_WEEK"
	StatePendingTransfer   State = "ACTIVE_PENDING_TRANSFER"
	StateTransferred       State = "ACTIVE_TRANSFERRED_FOR_WEEK"
)

// TransferState returns the transfer state for the week of today.
func (s *Service) TransferState(ctx context.Context, today types.Date) (State, error) {
	activated, ok, err := s.ActivatedDate(ctx)
	if err != nil {
		return "", err
	}

	if activatedThisWeek(activated, ok, today) {
		return StateActivatedThisWeek, nil
	}

	if !transferActive(activated, ok, today) {
		return StateNotActivated, nil
	}

	done, err := s.store.HasTransfer(ctx, cycle.WeekStart(today))
	if err != nil {
		return "", err
	}

	if done {
		return StateTransferred, nil
	}

	return StatePendingTransfer, nil
}

// RunWeeklyTransferIfDue records the transfer of last week's balance
// for the week of today, at most once per week.
//
// Nothing happens in the week of the activation and before the transfer
// becomes active. The balance itself is not stored, it is computed from
// last week's expenses whenever it is needed.
func (s *Service) RunWeeklyTransferIfDue(ctx context.Context, today types.Date) error {
	activated, ok, err := s.ActivatedDate(ctx)
	if err != nil {
		return err
	}

	if activatedThisWeek(activated, ok, today) {
		log.Debug().Str("activated_at", activated.String()).Msg("Skipping transfer in the week of the activation")
		return nil
	}

	err = s.store.EnsureTransferLog(ctx)
	if err != nil {
		return err
	}

	if !transferActive(activated, ok, today) {
		return nil
	}

	monday := cycle.WeekStart(today)
	done, err := s.store.HasTransfer(ctx, monday)
	if err != nil {
		return err
	}

	if done {
		log.Debug().Str("week", monday.String()).Msg("Transfer for this week already done")
		return nil
	}

	balance, err := s.LastWeekBalance(ctx, today)
	if err != nil {
		return err
	}

	inserted, err := s.store.MarkTransferred(ctx, monday)
	if err != nil {
		return err
	}

	// Another request was faster, which is fine
	if !inserted {
		log.Debug().Str("week", monday.String()).Msg("Transfer for this week was recorded concurrently")
		return nil
	}

	log.Info().Str("week", monday.String()).Str("carryover", balance.StringFixed(2)).Msg("Transferred balance of last week")
	return nil
}

// LastWeekBalance returns the week rate minus the money spent in the
// week before the week of today.
//
// The week rate is the one of the cycle containing today. Carryover into
// last week is not taken into account.
func (s *Service) LastWeekBalance(ctx context.Context, today types.Date) (decimal.Decimal, error) {
	rates, err := s.rates(ctx, today)
	if err != nil {
		return decimal.Zero, err
	}

	spent, err := s.weekSpent(ctx, cycle.WeekStart(today).AddDays(-7))
	if err != nil {
		return decimal.Zero, err
	}

	return rates.WeekRate.Sub(spent).Round(2), nil
}

// LastTransferDate returns the start of the latest week with a transfer.
func (s *Service) LastTransferDate(ctx context.Context) (types.Date, bool, error) {
	return s.store.LastTransfer(ctx)
}
