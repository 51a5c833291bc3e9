// Package budget implements the weekly budget: the settings, the rates
// derived from the monthly budget and the billing cycle, and the weekly
// carryover of unspent money.
package budget

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/weekbudget/backend/internal/cycle"
	"github.com/weekbudget/backend/internal/models"
	"github.com/weekbudget/backend/internal/types"
)

// Service exposes all operations on the weekly budget.
type Service struct {
	store    Store
	location *time.Location
	now      func() time.Time

	// set once the default settings have been written successfully
	defaultsEnsured atomic.Bool
}

// Option configures a Service.
type Option func(*Service)

// WithLocation sets the time zone that determines the current day.
func WithLocation(location *time.Location) Option {
	return func(s *Service) {
		s.location = location
	}
}

// WithClock replaces the clock used to determine the current time.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService returns a Service using the store.
func NewService(store Store, opts ...Option) *Service {
	s := &Service{
		store:    store,
		location: time.Local,
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Now returns the current time in the service's location.
func (s *Service) Now() time.Time {
	return s.now().In(s.location)
}

// Today returns the current date in the service's location.
func (s *Service) Today() types.Date {
	return types.DateOf(s.Now())
}

// Init seeds the default settings.
//
// Failures are logged and otherwise ignored. The defaults are written
// again on the first weekly view.
func (s *Service) Init(ctx context.Context) {
	err := s.ensureDefaults(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Could not seed default settings, retrying on first access")
	}
}

func (s *Service) ensureDefaults(ctx context.Context) error {
	if s.defaultsEnsured.Load() {
		return nil
	}

	err := s.store.EnsureDefaults(ctx)
	if err != nil {
		return err
	}

	s.defaultsEnsured.Store(true)
	return nil
}

// Settings are the typed budget settings.
type Settings struct {
	StartDay       int             `json:"startDay" example:"27"`            // First day of the billing cycle
	EndDay         int             `json:"endDay" example:"26"`              // Last day of the billing cycle
	MonthlyBudget  decimal.Decimal `json:"monthlyBudget" example:"1200"`     // Budget for a full cycle
	ActivatedAt    *types.Date     `json:"activatedAt" example:"2024-03-13"` // Day the budget was first set, null if never
	Currency       string          `json:"currency" example:"EUR"`           // ISO code of the currency
	CurrencySymbol string          `json:"currencySymbol" example:"€"`       // Symbol of the currency
}

// Settings returns the current settings. Missing or unparseable values
// are replaced by their defaults.
func (s *Service) Settings(ctx context.Context) (Settings, error) {
	startDay, err := s.intSetting(ctx, models.SettingStartDay, models.DefaultStartDay)
	if err != nil {
		return Settings{}, err
	}

	endDay, err := s.intSetting(ctx, models.SettingEndDay, models.DefaultEndDay)
	if err != nil {
		return Settings{}, err
	}

	monthlyBudget, err := s.monthlyBudget(ctx)
	if err != nil {
		return Settings{}, err
	}

	currency, err := s.store.Setting(ctx, models.SettingCurrency, models.DefaultCurrency)
	if err != nil {
		return Settings{}, err
	}

	settings := Settings{
		StartDay:       startDay,
		EndDay:         endDay,
		MonthlyBudget:  monthlyBudget,
		Currency:       currency,
		CurrencySymbol: CurrencySymbol(currency),
	}

	activated, ok, err := s.ActivatedDate(ctx)
	if err != nil {
		return Settings{}, err
	}

	if ok {
		settings.ActivatedAt = &activated
	}

	return settings, nil
}

func (s *Service) intSetting(ctx context.Context, key string, fallback int) (int, error) {
	value, err := s.store.Setting(ctx, key, strconv.Itoa(fallback))
	if err != nil {
		return 0, err
	}

	if i, err := strconv.Atoi(value); err == nil {
		return i, nil
	}

	// Numeric values may have been written as "27.0"
	if d, err := decimal.NewFromString(value); err == nil {
		return int(d.IntPart()), nil
	}

	return fallback, nil
}

func (s *Service) monthlyBudget(ctx context.Context) (decimal.Decimal, error) {
	value, err := s.store.Setting(ctx, models.SettingMonthlyBudget, models.DefaultMonthlyBudget)
	if err != nil {
		return decimal.Zero, err
	}

	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, nil
	}

	return amount, nil
}

// parseAmount parses user input, accepting both "," and "." as
// decimal separator.
func parseAmount(raw string) (decimal.Decimal, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")

	amount, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}

	return amount, nil
}

// parseDay parses a day of month. Unparseable input is replaced by the
// fallback, all values are clamped to 1..31.
func parseDay(raw string, fallback int) int {
	day, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		day = fallback
	}

	return max(1, min(31, day))
}

// AddExpense records an expense for today. The amount is stored as a
// negative value regardless of the sign that was entered.
func (s *Service) AddExpense(ctx context.Context, rawAmount, description string) (uuid.UUID, error) {
	amount, err := parseAmount(rawAmount)
	if err != nil {
		return uuid.Nil, err
	}

	expense := models.Expense{
		Date:        s.Today(),
		Amount:      amount.Abs().Neg(),
		Description: description,
	}

	err = s.store.CreateExpense(ctx, &expense)
	if err != nil {
		return uuid.Nil, err
	}

	return expense.ID, nil
}

// DeleteExpense deletes an expense. Unknown IDs are ignored.
func (s *Service) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	return s.store.DeleteExpense(ctx, id)
}

// Expenses returns the expenses between from and to, both inclusive,
// newest first.
func (s *Service) Expenses(ctx context.Context, from, to types.Date) ([]models.Expense, error) {
	return s.store.Expenses(ctx, from, to)
}

// UpdateStartDay sets the first day of the billing cycle.
//
// The new cycle together with the stored end day must be at least 7 days
// long, otherwise ErrInvalidCycle is returned and nothing is changed.
func (s *Service) UpdateStartDay(ctx context.Context, raw string) error {
	startDay := parseDay(raw, models.DefaultStartDay)

	endDay, err := s.intSetting(ctx, models.SettingEndDay, models.DefaultEndDay)
	if err != nil {
		return err
	}

	if !cycle.IsValid(startDay, endDay) {
		return fmt.Errorf("%w: start day %d, end day %d", ErrInvalidCycle, startDay, endDay)
	}

	value := strconv.Itoa(startDay)
	return s.store.SetSetting(ctx, models.SettingStartDay, &value)
}

// UpdateEndDay sets the last day of the billing cycle.
// It is validated the same way as UpdateStartDay.
func (s *Service) UpdateEndDay(ctx context.Context, raw string) error {
	endDay := parseDay(raw, models.DefaultEndDay)

	startDay, err := s.intSetting(ctx, models.SettingStartDay, models.DefaultStartDay)
	if err != nil {
		return err
	}

	if !cycle.IsValid(startDay, endDay) {
		return fmt.Errorf("%w: start day %d, end day %d", ErrInvalidCycle, startDay, endDay)
	}

	value := strconv.Itoa(endDay)
	return s.store.SetSetting(ctx, models.SettingEndDay, &value)
}

// UpdateCycle sets both days of the billing cycle at once. The pair is
// validated together, so a cycle can be moved to days that would be
// invalid in combination with either of the stored days.
func (s *Service) UpdateCycle(ctx context.Context, rawStart, rawEnd string) error {
	startDay := parseDay(rawStart, models.DefaultStartDay)
	endDay := parseDay(rawEnd, models.DefaultEndDay)

	if !cycle.IsValid(startDay, endDay) {
		return fmt.Errorf("%w: start day %d, end day %d", ErrInvalidCycle, startDay, endDay)
	}

	start := strconv.Itoa(startDay)
	err := s.store.SetSetting(ctx, models.SettingStartDay, &start)
	if err != nil {
		return err
	}

	end := strconv.Itoa(endDay)
	return s.store.SetSetting(ctx, models.SettingEndDay, &end)
}

// UpdateMonthlyBudget sets the monthly budget.
//
// The first time a budget greater than zero is set, today is stored as
// activation date.
func (s *Service) UpdateMonthlyBudget(ctx context.Context, raw string) error {
	amount, err := parseAmount(raw)
	if err != nil {
		return err
	}

	if amount.IsNegative() {
		return fmt.Errorf("%w: the monthly budget must not be negative", ErrInvalidAmount)
	}

	value := amount.String()
	err = s.store.SetSetting(ctx, models.SettingMonthlyBudget, &value)
	if err != nil {
		return err
	}

	if !amount.IsPositive() {
		return nil
	}

	activatedAt, err := s.store.Setting(ctx, models.SettingActivatedAt, "")
	if err != nil {
		return err
	}

	if activatedAt != "" {
		return nil
	}

	today := s.Today().String()
	log.Info().Str("activated_at", today).Msg("Budget activated")
	return s.store.SetSetting(ctx, models.SettingActivatedAt, &today)
}

// UpdateCurrency sets the currency from its ISO code or symbol.
func (s *Service) UpdateCurrency(ctx context.Context, raw string) error {
	iso, ok := ResolveCurrency(raw)
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidCurrency, raw)
	}

	return s.store.SetSetting(ctx, models.SettingCurrency, &iso)
}

// ClearExpenses deletes all expenses.
func (s *Service) ClearExpenses(ctx context.Context) error {
	return s.store.DeleteExpenses(ctx)
}

// ClearBudgets resets the monthly budget to zero and deletes the
// transfer log. The activation date is kept.
func (s *Service) ClearBudgets(ctx context.Context) error {
	return s.store.ResetBudgets(ctx)
}
