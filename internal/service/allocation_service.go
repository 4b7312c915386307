package service

import (
	"context"

	"github.com/bagdasarian/resource-dashboard/internal/domain"
)

type AllocationService interface {
	CreateAllocation(ctx context.Context, allocation *domain.Allocation) (*domain.Allocation, error)
	GetAllocation(ctx context.Context, id string) (*domain.Allocation, error)
	UpdateAllocation(ctx context.Context, id string, update domain.AllocationUpdate) (*domain.Allocation, error)
	DeleteAllocation(ctx context.Context, id string) error
}
