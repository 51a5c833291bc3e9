package models

import (
	"time"

	"github.com/weekbudget/backend/internal/types"
)

// TransferRecord marks that the weekly carryover ran for a week.
//
// The week start is the primary key, so there can only ever be
// one record per week.
type TransferRecord struct {
	WeekStart   types.Date `json:"weekStart" gorm:"primaryKey" example:"2024-03-11"`
	Transferred bool       `json:"transferred" example:"true"`
	CreatedAt   time.Time  `json:"createdAt" example:"2024-03-11T07:12:44.491514Z"`
}
