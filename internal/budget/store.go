package budget

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/weekbudget/backend/internal/models"
	"github.com/weekbudget/backend/internal/types"
)

// Store is the persistence the Service needs.
type Store interface {
	Setting(ctx context.Context, key, fallback string) (string, error)
	SetSetting(ctx context.Context, key string, value *string) error
	EnsureDefaults(ctx context.Context) error

	CreateExpense(ctx context.Context, expense *models.Expense) error
	DeleteExpense(ctx context.Context, id uuid.UUID) error
	DeleteExpenses(ctx context.Context) error
	Expenses(ctx context.Context, from, to types.Date) ([]models.Expense, error)
	SumExpenses(ctx context.Context, from, to types.Date) (decimal.Decimal, error)

	EnsureTransferLog(ctx context.Context) error
	HasTransfer(ctx context.Context, weekStart types.Date) (bool, error)
	MarkTransferred(ctx context.Context, weekStart types.Date) (bool, error)
	LastTransfer(ctx context.Context) (types.Date, bool, error)
	ResetBudgets(ctx context.Context) error
}

var _ Store = models.Store{}
