package service

import (
	"context"

	"github.com/bagdasarian/resource-dashboard/internal/domain"
)

type TeamService interface {
	CreateTeam(ctx context.Context, team *domain.Team) (*domain.Team, error)
	GetTeam(ctx context.Context, id string) (*domain.Team, error)
	ListTeams(ctx context.Context) ([]*domain.Team, error)
	UpdateTeam(ctx context.Context, id string, update domain.TeamUpdate) (*domain.Team, error)
	DeleteTeam(ctx context.Context, id string) error
	GetRoster(ctx context.Context, id string) (*domain.TeamRoster, error)
}
