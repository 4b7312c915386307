package service

import (
	"context"
	"strings"
	"time"

	"github.com/bagdasarian/resource-dashboard/internal/domain"
	"github.com/bagdasarian/resource-dashboard/internal/repository"
	"go.uber.org/zap"
)

type teamService struct {
	teamRepo       repository.TeamRepository
	memberRepo     repository.TeamMemberRepository
	allocationRepo repository.AllocationRepository
	logger         *zap.Logger
	now            func() time.Time
}

// NewTeamService создает новый экземпляр TeamService
func NewTeamService(
	teamRepo repository.TeamRepository,
	memberRepo repository.TeamMemberRepository,
	allocationRepo repository.AllocationRepository,
	logger *zap.Logger,
) TeamService {
	return &teamService{
		teamRepo:       teamRepo,
		memberRepo:     memberRepo,
		allocationRepo: allocationRepo,
		logger:         logger,
		now:            time.Now,
	}
}

func (s *teamService) CreateTeam(ctx context.Context, team *domain.Team) (*domain.Team, error) {
	team.Name = strings.TrimSpace(team.Name)
	if err := validateStruct(team); err != nil {
		return nil, err
	}

	if err := s.teamRepo.Create(ctx, team); err != nil {
		return nil, err
	}

	s.logger.Debug("team created", zap.String("team_id", team.ID), zap.String("name", team.Name))
	return team, nil
}

func (s *teamService) GetTeam(ctx context.Context, id string) (*domain.Team, error) {
	return s.teamRepo.GetByID(ctx, id)
}

func (s *teamService) ListTeams(ctx context.Context) ([]*domain.Team, error) {
	return s.teamRepo.List(ctx)
}

func (s *teamService) UpdateTeam(ctx context.Context, id string, update domain.TeamUpdate) (*domain.Team, error) {
	team, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		team.Name = strings.TrimSpace(*update.Name)
	}
	if update.Description != nil {
		team.Description = *update.Description
	}

	if err := validateStruct(team); err != nil {
		return nil, err
	}

	if err := s.teamRepo.Update(ctx, team); err != nil {
		return nil, err
	}

	return team, nil
}

// DeleteTeam удаляет команду; участники остаются активными и сохраняют аллокации
func (s *teamService) DeleteTeam(ctx context.Context, id string) error {
	if err := s.teamRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Debug("team deleted", zap.String("team_id", id))
	return nil
}

// GetRoster возвращает команду с ее активными участниками и их текущей загрузкой
func (s *teamService) GetRoster(ctx context.Context, id string) (*domain.TeamRoster, error) {
	team, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	members, err := s.memberRepo.List(ctx, repository.TeamMemberFilter{TeamID: &team.ID, ActiveOnly: true})
	if err != nil {
		return nil, err
	}

	allocations, err := s.allocationRepo.ListByTeamMembers(ctx, memberIDs(members))
	if err != nil {
		return nil, err
	}

	return &domain.TeamRoster{
		Team:    team,
		Members: membersWithStats(members, allocations, s.now()),
	}, nil
}
