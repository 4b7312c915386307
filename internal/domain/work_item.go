package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityNormal   Priority = "normal"
	PriorityLow      Priority = "low"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityCritical, PriorityHigh, PriorityNormal, PriorityLow:
		return true
	}
	return false
}

type WorkItem struct {
	ID             string
	Title          string `validate:"required,max=200"`
	Description    string
	Type           WorkItemType `validate:"required,oneof=demand project om"`
	Priority       Priority     `validate:"required,oneof=critical high normal low"`
	Status         string       `validate:"required"`
	EstimatedHours decimal.Decimal
	ActualHours    decimal.Decimal
	DueDate        *time.Time
	AssignedToID   *string `validate:"omitempty,uuid"`
	// AssignedTo заполняется при чтении, на запись не влияет
	AssignedTo *WorkItemAssignee
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}

// WorkItemAssignee - краткий снимок исполнителя из team_members
type WorkItemAssignee struct {
	ID     string
	Name   string
	Avatar *string
}

// WorkItemUpdate - частичное обновление, nil означает "не менять"
type WorkItemUpdate struct {
	Title          *string
	Description    *string
	Type           *WorkItemType
	Priority       *Priority
	Status         *string
	EstimatedHours *decimal.Decimal
	DueDate        *time.Time
	ClearDueDate   bool
	// пустая строка снимает исполнителя
	AssignedToID *string
}

type WorkItemFilter struct {
	Type         *WorkItemType
	Status       *string
	AssignedToID *string
}

type WorkItemWithAllocations struct {
	*WorkItem
	Allocations         []*Allocation
	TotalAllocatedHours decimal.Decimal
}
