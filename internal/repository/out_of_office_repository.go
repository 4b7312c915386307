package repository

import (
	"context"

	"github.com/bagdasarian/resource-dashboard/internal/domain"
)

type OutOfOfficeRepository interface {
	Create(ctx context.Context, entry *domain.OutOfOffice) error
	List(ctx context.Context, teamMemberID *string) ([]*domain.OutOfOffice, error)
	Delete(ctx context.Context, id string) error
}
