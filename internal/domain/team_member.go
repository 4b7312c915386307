package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const DefaultWeeklyHours = 40

type TeamMember struct {
	ID          string
	Name        string  `validate:"required,max=200"`
	Role        string  `validate:"required,max=100"`
	Email       string  `validate:"required,email"`
	TeamID      *string `validate:"omitempty,uuid"`
	TeamName    string
	Skills      []string
	WeeklyHours int `validate:"gt=0"`
	Avatar      *string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// TeamMemberUpdate - частичное обновление. nil означает "не менять",
// пустая строка в TeamID снимает участника с команды.
type TeamMemberUpdate struct {
	Name        *string
	Role        *string
	Email       *string
	TeamID      *string
	Skills      []string
	WeeklyHours *int
	Avatar      *string
	IsActive    *bool
}

// TeamMemberWithStats - участник с производными метриками загрузки.
// Метрики считаются при каждом чтении и нигде не сохраняются.
type TeamMemberWithStats struct {
	*TeamMember
	AllocatedHours     decimal.Decimal
	AvailableHours     decimal.Decimal
	CapacityPercentage int
	CapacityLevel      CapacityLevel
}

type CapacityLevel string

const (
	CapacityOver      CapacityLevel = "over-capacity"
	CapacityBusy      CapacityLevel = "busy"
	CapacityAvailable CapacityLevel = "available"
	CapacityLight     CapacityLevel = "light"
)

func (l CapacityLevel) Label() string {
	switch l {
	case CapacityOver:
		return "At/Over Capacity"
	case CapacityBusy:
		return "Busy"
	case CapacityAvailable:
		return "Available"
	default:
		return "Light Load"
	}
}
