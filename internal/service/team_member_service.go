package service

import (
	"context"

	"github.com/bagdasarian/resource-dashboard/internal/domain"
	"github.com/bagdasarian/resource-dashboard/internal/repository"
)

type TeamMemberService interface {
	CreateTeamMember(ctx context.Context, member *domain.TeamMember) (*domain.TeamMember, error)
	GetTeamMember(ctx context.Context, id string) (*domain.TeamMemberWithStats, error)
	ListTeamMembers(ctx context.Context, filter repository.TeamMemberFilter) ([]*domain.TeamMemberWithStats, error)
	UpdateTeamMember(ctx context.Context, id string, update domain.TeamMemberUpdate) (*domain.TeamMember, error)
	DeactivateTeamMember(ctx context.Context, id string) error
	GetAllocations(ctx context.Context, id string) ([]*domain.Allocation, error)
}
