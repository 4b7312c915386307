package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Allocation struct {
	ID           string
	TeamMemberID string `validate:"required,uuid"`
	WorkItemID   string `validate:"required,uuid"`
	HoursPerWeek decimal.Decimal
	StartDate    time.Time `validate:"required"`
	EndDate      *time.Time
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    *time.Time

	// Поля для отображения, заполняются при выборках с join
	TeamMemberName string
	WorkItemTitle  string
}

// IsActiveAt - аллокация действует в момент now: началась и еще не закончилась
func (a *Allocation) IsActiveAt(now time.Time) bool {
	if a.StartDate.After(now) {
		return false
	}
	return a.EndDate == nil || !a.EndDate.Before(now)
}

type AllocationUpdate struct {
	HoursPerWeek *decimal.Decimal
	StartDate    *time.Time
	EndDate      *time.Time
	ClearEndDate bool
	Notes        *string
}
