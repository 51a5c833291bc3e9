package models

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/weekbudget/backend/internal/types"
	"gorm.io/gorm"
)

// Expense is a single entry in the ledger.
//
// The amount is always zero or negative, expenses reduce the budget.
type Expense struct {
	DefaultModel
	Date        types.Date      `json:"date" gorm:"index" example:"2024-03-15"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"-12.5"`
	Description string          `json:"description" example:"Coffee"`
}

// BeforeSave trims the description and enforces the sign of the amount.
func (e *Expense) BeforeSave(_ *gorm.DB) (err error) {
	e.Description = strings.TrimSpace(e.Description)
	e.Amount = e.Amount.Abs().Neg()
	return nil
}
