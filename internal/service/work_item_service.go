package service

import (
	"context"

	"github.com/bagdasarian/resource-dashboard/internal/domain"
)

type WorkItemService interface {
	CreateWorkItem(ctx context.Context, item *domain.WorkItem) (*domain.WorkItem, error)
	GetWorkItem(ctx context.Context, id string) (*domain.WorkItemWithAllocations, error)
	ListWorkItems(ctx context.Context, filter domain.WorkItemFilter) ([]*domain.WorkItem, error)
	UpdateWorkItem(ctx context.Context, id string, update domain.WorkItemUpdate) (*domain.WorkItem, error)
	DeleteWorkItem(ctx context.Context, id string) error
}
