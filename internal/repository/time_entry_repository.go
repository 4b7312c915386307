package repository

import (
	"context"

	"github.com/bagdasarian/resource-dashboard/internal/domain"
)

type TimeEntryRepository interface {
	// Create и Delete также меняют actual_hours рабочего элемента в той же транзакции
	Create(ctx context.Context, entry *domain.TimeEntry) error
	List(ctx context.Context, filter domain.TimeEntryFilter) ([]*domain.TimeEntry, error)
	Delete(ctx context.Context, id string) error
}
