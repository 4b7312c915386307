package repository

import (
	"context"

	"github.com/bagdasarian/resource-dashboard/internal/domain"
)

type TeamRepository interface {
	Create(ctx context.Context, team *domain.Team) error
	GetByID(ctx context.Context, id string) (*domain.Team, error)
	List(ctx context.Context) ([]*domain.Team, error)
	Update(ctx context.Context, team *domain.Team) error
	// Delete удаляет команду, у участников team_id становится NULL
	Delete(ctx context.Context, id string) error
}
