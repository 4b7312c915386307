package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimeEntry - фактически отработанные часы. На загрузку не влияет,
// увеличивает ActualHours рабочего элемента.
type TimeEntry struct {
	ID           string
	TeamMemberID string `validate:"required,uuid"`
	WorkItemID   string `validate:"required,uuid"`
	Hours        decimal.Decimal
	Description  string
	Date         time.Time `validate:"required"`
	CreatedAt    time.Time

	TeamMemberName string
	WorkItemTitle  string
	WorkItemType   WorkItemType
}

type TimeEntryFilter struct {
	TeamMemberID *string
	WorkItemID   *string
}
