package service

import (
	"context"
	"strings"
	"time"

	"github.com/bagdasarian/resource-dashboard/internal/domain"
	"github.com/bagdasarian/resource-dashboard/internal/repository"
	"go.uber.org/zap"
)

type teamMemberService struct {
	memberRepo     repository.TeamMemberRepository
	allocationRepo repository.AllocationRepository
	logger         *zap.Logger
	now            func() time.Time
}

func NewTeamMemberService(
	memberRepo repository.TeamMemberRepository,
	allocationRepo repository.AllocationRepository,
	logger *zap.Logger,
) TeamMemberService {
	return &teamMemberService{
		memberRepo:     memberRepo,
		allocationRepo: allocationRepo,
		logger:         logger,
		now:            time.Now,
	}
}

func (s *teamMemberService) CreateTeamMember(ctx context.Context, member *domain.TeamMember) (*domain.TeamMember, error) {
	normalizeTeamMember(member)
	if err := validateStruct(member); err != nil {
		return nil, err
	}

	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, err
	}

	s.logger.Debug("team member created", zap.String("team_member_id", member.ID))

	// перечитываем, чтобы получить название команды
	return s.memberRepo.GetByID(ctx, member.ID)
}

// GetTeamMember работает и для неактивных участников: их собственная загрузка остается видна
func (s *teamMemberService) GetTeamMember(ctx context.Context, id string) (*domain.TeamMemberWithStats, error) {
	member, err := s.memberRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	allocations, err := s.allocationRepo.ListByTeamMember(ctx, member.ID)
	if err != nil {
		return nil, err
	}

	return MemberStats(member, allocations, s.now()), nil
}

func (s *teamMemberService) ListTeamMembers(ctx context.Context, filter repository.TeamMemberFilter) ([]*domain.TeamMemberWithStats, error) {
	members, err := s.memberRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	allocations, err := s.allocationRepo.ListByTeamMembers(ctx, memberIDs(members))
	if err != nil {
		return nil, err
	}

	return membersWithStats(members, allocations, s.now()), nil
}

func (s *teamMemberService) UpdateTeamMember(ctx context.Context, id string, update domain.TeamMemberUpdate) (*domain.TeamMember, error) {
	member, err := s.memberRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyTeamMemberUpdate(member, update)
	normalizeTeamMember(member)
	if err := validateStruct(member); err != nil {
		return nil, err
	}

	if err := s.memberRepo.Update(ctx, member); err != nil {
		return nil, err
	}

	return s.memberRepo.GetByID(ctx, id)
}

// DeactivateTeamMember - мягкое удаление. Аллокации сохраняются, повторный вызов не ошибка.
func (s *teamMemberService) DeactivateTeamMember(ctx context.Context, id string) error {
	if err := s.memberRepo.SetIsActive(ctx, id, false); err != nil {
		return err
	}

	s.logger.Debug("team member deactivated", zap.String("team_member_id", id))
	return nil
}

func (s *teamMemberService) GetAllocations(ctx context.Context, id string) ([]*domain.Allocation, error) {
	if _, err := s.memberRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	return s.allocationRepo.ListByTeamMember(ctx, id)
}

func applyTeamMemberUpdate(member *domain.TeamMember, update domain.TeamMemberUpdate) {
	if update.Name != nil {
		member.Name = *update.Name
	}
	if update.Role != nil {
		member.Role = *update.Role
	}
	if update.Email != nil {
		member.Email = *update.Email
	}
	if update.TeamID != nil {
		teamID := *update.TeamID
		member.TeamID = &teamID
	}
	if update.Skills != nil {
		member.Skills = update.Skills
	}
	if update.WeeklyHours != nil {
		member.WeeklyHours = *update.WeeklyHours
	}
	if update.Avatar != nil {
		avatar := *update.Avatar
		member.Avatar = &avatar
	}
	if update.IsActive != nil {
		member.IsActive = *update.IsActive
	}
}

func normalizeTeamMember(member *domain.TeamMember) {
	member.Name = strings.TrimSpace(member.Name)
	member.Email = strings.ToLower(strings.TrimSpace(member.Email))
	if member.TeamID != nil && strings.TrimSpace(*member.TeamID) == "" {
		member.TeamID = nil
	}
	if member.Avatar != nil && *member.Avatar == "" {
		member.Avatar = nil
	}
	if member.Skills == nil {
		member.Skills = []string{}
	}
}
