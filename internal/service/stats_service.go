package service

import (
	"context"
	"time"

	"github.com/bagdasarian/resource-dashboard/internal/domain"
	"github.com/bagdasarian/resource-dashboard/internal/repository"
	"github.com/shopspring/decimal"
)

type StatsService interface {
	GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error)
}

type statsService struct {
	memberRepo     repository.TeamMemberRepository
	allocationRepo repository.AllocationRepository
	statsRepo      repository.StatsRepository
	now            func() time.Time
}

func NewStatsService(
	memberRepo repository.TeamMemberRepository,
	allocationRepo repository.AllocationRepository,
	statsRepo repository.StatsRepository,
) StatsService {
	return &statsService{
		memberRepo:     memberRepo,
		allocationRepo: allocationRepo,
		statsRepo:      statsRepo,
		now:            time.Now,
	}
}

// GetDashboardStats считает сводку по активным участникам на текущий момент
func (s *statsService) GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	members, err := s.memberRepo.List(ctx, repository.TeamMemberFilter{ActiveOnly: true})
	if err != nil {
		return nil, err
	}

	allocations, err := s.allocationRepo.ListByTeamMembers(ctx, memberIDs(members))
	if err != nil {
		return nil, err
	}

	hoursByType, err := s.statsRepo.GetActualHoursByType(ctx)
	if err != nil {
		return nil, err
	}

	stats := &domain.DashboardStats{
		TotalMembers:        len(members),
		TotalAllocatedHours: decimal.Zero,
		ActualHoursByType:   make(map[domain.WorkItemType]decimal.Decimal, len(domain.WorkItemTypes)),
	}
	for _, t := range domain.WorkItemTypes {
		stats.ActualHoursByType[t] = decimal.Zero
	}
	for _, h := range hoursByType {
		stats.ActualHoursByType[h.Type] = stats.ActualHoursByType[h.Type].Add(h.Hours)
	}

	if len(members) == 0 {
		return stats, nil
	}

	capacitySum := 0
	for _, m := range membersWithStats(members, allocations, s.now()) {
		capacitySum += m.CapacityPercentage
		stats.TotalAllocatedHours = stats.TotalAllocatedHours.Add(m.AllocatedHours)
		if m.CapacityPercentage >= overCapacityThreshold {
			stats.OverallocatedMembers++
		}
	}
	stats.AverageCapacity = int(decimal.NewFromInt(int64(capacitySum)).
		Div(decimal.NewFromInt(int64(len(members)))).
		Round(0).
		IntPart())

	return stats, nil
}
