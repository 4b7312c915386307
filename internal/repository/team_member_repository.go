package repository

import (
	"context"

	"github.com/bagdasarian/resource-dashboard/internal/domain"
)

type TeamMemberFilter struct {
	TeamID     *string
	ActiveOnly bool
}

type TeamMemberRepository interface {
	Create(ctx context.Context, member *domain.TeamMember) error
	GetByID(ctx context.Context, id string) (*domain.TeamMember, error)
	List(ctx context.Context, filter TeamMemberFilter) ([]*domain.TeamMember, error)
	Update(ctx context.Context, member *domain.TeamMember) error
	// SetIsActive идемпотентен: повторная деактивация не ошибка
	SetIsActive(ctx context.Context, id string, isActive bool) error
}
