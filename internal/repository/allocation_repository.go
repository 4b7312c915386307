package repository

import (
	"context"

	"github.com/bagdasarian/resource-dashboard/internal/domain"
)

type AllocationRepository interface {
	Create(ctx context.Context, allocation *domain.Allocation) error
	GetByID(ctx context.Context, id string) (*domain.Allocation, error)
	ListByTeamMember(ctx context.Context, teamMemberID string) ([]*domain.Allocation, error)
	ListByTeamMembers(ctx context.Context, teamMemberIDs []string) ([]*domain.Allocation, error)
	ListByWorkItem(ctx context.Context, workItemID string) ([]*domain.Allocation, error)
	Update(ctx context.Context, allocation *domain.Allocation) error
	Delete(ctx context.Context, id string) error
}
