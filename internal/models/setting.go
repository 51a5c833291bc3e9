package models

import (
	"strconv"
	"time"
)

// Keys of the known settings.
const (
	SettingStartDay      = "start_day"
	SettingEndDay        = "end_day"
	SettingMonthlyBudget = "monthly_budget"
	SettingActivatedAt   = "activated_at"
	SettingCurrency      = "currency"
)

// Default values for the settings.
const (
	DefaultStartDay      = 27
	DefaultEndDay        = 26
	DefaultMonthlyBudget = "0"
	DefaultCurrency      = "EUR"
)

// Setting is a named scalar configuration value.
//
// A NULL value is treated like a missing row.
type Setting struct {
	Key       string    `json:"key" gorm:"primaryKey"`
	Value     *string   `json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DefaultSettings returns the settings that are seeded on first run.
func DefaultSettings() []Setting {
	value := func(s string) *string { return &s }

	return []Setting{
		{Key: SettingStartDay, Value: value(strconv.Itoa(DefaultStartDay))},
		{Key: SettingEndDay, Value: value(strconv.Itoa(DefaultEndDay))},
		{Key: SettingMonthlyBudget, Value: value(DefaultMonthlyBudget)},
		{Key: SettingActivatedAt, Value: nil},
		{Key: SettingCurrency, Value: value(DefaultCurrency)},
	}
}
