package domain

import "time"

const DefaultOutOfOfficeReason = "Out of office"

// OutOfOffice хранится отдельно и пока не уменьшает доступные часы участника
type OutOfOffice struct {
	ID           string
	TeamMemberID string    `validate:"required,uuid"`
	StartDate    time.Time `validate:"required"`
	EndDate      time.Time `validate:"required"`
	Reason       string
	CreatedAt    time.Time
}
