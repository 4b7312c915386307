package repository

import (
	"context"

	"github.com/bagdasarian/resource-dashboard/internal/domain"
)

type WorkItemRepository interface {
	Create(ctx context.Context, item *domain.WorkItem) error
	GetByID(ctx context.Context, id string) (*domain.WorkItem, error)
	List(ctx context.Context, filter domain.WorkItemFilter) ([]*domain.WorkItem, error)
	Update(ctx context.Context, item *domain.WorkItem) error
	// Delete удаляет элемент вместе с его аллокациями и записями времени
	Delete(ctx context.Context, id string) error
}
