package repository

import (
	"context"

	"github.com/bagdasarian/resource-dashboard/internal/domain"
)

type StatsRepository interface {
	GetActualHoursByType(ctx context.Context) ([]*domain.WorkItemTypeHours, error)
}
