package models

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/weekbudget/backend/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store implements the persistence for settings, the expense ledger and
// the transfer log on top of a gorm database.
type Store struct {
	db *gorm.DB
}

// NewStore returns a Store using the database.
func NewStore(db *gorm.DB) Store {
	return Store{db: db}
}

// Setting returns the value for the key. If there is no value
// stored for the key, the fallback is returned.
func (s Store) Setting(ctx context.Context, key, fallback string) (string, error) {
	var setting Setting
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&setting).Error
	if errors.Is(err, ErrResourceNotFound) || errors.Is(err, gorm.ErrRecordNotFound) {
		return fallback, nil
	}

	if err != nil {
		return "", fmt.Errorf("reading setting %s: %w", key, err)
	}

	if setting.Value == nil {
		return fallback, nil
	}

	return *setting.Value, nil
}

// SetSetting stores the value for the key. A nil value clears the setting.
func (s Store) SetSetting(ctx context.Context, key string, value *string) error {
	err := upsertSetting(s.db.WithContext(ctx), key, value)
	if err != nil {
		return fmt.Errorf("writing setting %s: %w", key, err)
	}

	return nil
}

func upsertSetting(db *gorm.DB, key string, value *string) error {
	setting := Setting{Key: key, Value: value}

	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&setting).Error
}

// EnsureDefaults inserts all known settings that are not stored yet.
// Existing values are never overwritten.
func (s Store) EnsureDefaults(ctx context.Context) error {
	defaults := DefaultSettings()

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&defaults).Error
	if err != nil {
		return fmt.Errorf("seeding default settings: %w", err)
	}

	return nil
}

// CreateExpense adds an expense to the ledger.
func (s Store) CreateExpense(ctx context.Context, expense *Expense) error {
	return s.db.WithContext(ctx).Create(expense).Error
}

// DeleteExpense deletes the expense with the ID. Unknown IDs are ignored.
func (s Store) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Delete(&Expense{}, "id = ?", id).Error
}

// DeleteExpenses deletes all expenses.
func (s Store) DeleteExpenses(ctx context.Context) error {
	return s.db.WithContext(ctx).Where("true").Delete(&Expense{}).Error
}

// Expenses returns all expenses between from and to, both inclusive,
// newest first.
func (s Store) Expenses(ctx context.Context, from, to types.Date) ([]Expense, error) {
	var expenses []Expense

	err := s.db.WithContext(ctx).
		Where("expenses.date BETWEEN ? AND ?", from, to).
		Order("expenses.date DESC, expenses.created_at DESC").
		Find(&expenses).
		Error
	if err != nil {
		return nil, err
	}

	return expenses, nil
}

// SumExpenses returns the sum of all expense amounts between from and to,
// both inclusive. The sum is zero if there are no expenses.
func (s Store) SumExpenses(ctx context.Context, from, to types.Date) (decimal.Decimal, error) {
	var sum decimal.NullDecimal

	err := s.db.WithContext(ctx).
		Table("expenses").
		Select("SUM(amount)").
		Where("expenses.date BETWEEN ? AND ?", from, to).
		Row().
		Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("summing expenses from %s to %s: %w", from, to, err)
	}

	// If no expenses are found, the value is nil
	if !sum.Valid {
		return decimal.Zero, nil
	}

	// SQLite sums as floating point, cut off at the column's scale
	return sum.Decimal.Round(8), nil
}

// EnsureTransferLog creates the transfer log table if it does not exist.
func (s Store) EnsureTransferLog(ctx context.Context) error {
	migrator := s.db.WithContext(ctx).Migrator()
	if migrator.HasTable(&TransferRecord{}) {
		return nil
	}

	return migrator.CreateTable(&TransferRecord{})
}

// HasTransfer reports if the transfer for the week has been done.
func (s Store) HasTransfer(ctx context.Context, weekStart types.Date) (bool, error) {
	var count int64

	err := s.db.WithContext(ctx).
		Model(&TransferRecord{}).
		Where("week_start = ? AND transferred = ?", weekStart, true).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// MarkTransferred records the transfer for the week.
//
// If there already is a record for the week, nothing is changed and
// false is returned. This also holds for concurrent callers, the
// primary key on the week start decides.
func (s Store) MarkTransferred(ctx context.Context, weekStart types.Date) (bool, error) {
	record := TransferRecord{
		WeekStart:   weekStart,
		Transferred: true,
	}

	result := s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&record)
	if result.Error != nil {
		return false, fmt.Errorf("recording transfer for week %s: %w", weekStart, result.Error)
	}

	return result.RowsAffected == 1, nil
}

// LastTransfer returns the start of the latest week for which a transfer
// has been done. The boolean is false if there was no transfer yet.
func (s Store) LastTransfer(ctx context.Context) (types.Date, bool, error) {
	var records []TransferRecord

	err := s.db.WithContext(ctx).
		Where("transferred = ?", true).
		Order("week_start DESC").
		Limit(1).
		Find(&records).
		Error
	if err != nil {
		return types.Date{}, false, err
	}

	if len(records) == 0 {
		return types.Date{}, false, nil
	}

	return records[0].WeekStart, true, nil
}

// ResetBudgets sets the monthly budget to zero and deletes all transfer
// records in one transaction. The activation date is kept.
func (s Store) ResetBudgets(ctx context.Context) error {
	zero := DefaultMonthlyBudget

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := upsertSetting(tx, SettingMonthlyBudget, &zero)
		if err != nil {
			return err
		}

		return tx.Where("true").Delete(&TransferRecord{}).Error
	})
}
