package service

import (
	"context"

	"github.com/bagdasarian/resource-dashboard/internal/domain"
	"github.com/bagdasarian/resource-dashboard/internal/repository"
	"go.uber.org/zap"
)

type allocationService struct {
	allocationRepo repository.AllocationRepository
	logger         *zap.Logger
}

func NewAllocationService(allocationRepo repository.AllocationRepository, logger *zap.Logger) AllocationService {
	return &allocationService{
		allocationRepo: allocationRepo,
		logger:         logger,
	}
}

// CreateAllocation не ограничивает перегрузку: участник может быть загружен больше 100%
func (s *allocationService) CreateAllocation(ctx context.Context, allocation *domain.Allocation) (*domain.Allocation, error) {
	if err := validateAllocation(allocation); err != nil {
		return nil, err
	}

	if err := s.allocationRepo.Create(ctx, allocation); err != nil {
		return nil, err
	}

	s.logger.Debug("allocation created",
		zap.String("allocation_id", allocation.ID),
		zap.String("team_member_id", allocation.TeamMemberID),
		zap.String("work_item_id", allocation.WorkItemID),
	)

	// перечитываем ради имени участника и названия элемента
	return s.allocationRepo.GetByID(ctx, allocation.ID)
}

func (s *allocationService) GetAllocation(ctx context.Context, id string) (*domain.Allocation, error) {
	return s.allocationRepo.GetByID(ctx, id)
}

func (s *allocationService) UpdateAllocation(ctx context.Context, id string, update domain.AllocationUpdate) (*domain.Allocation, error) {
	allocation, err := s.allocationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.HoursPerWeek != nil {
		allocation.HoursPerWeek = *update.HoursPerWeek
	}
	if update.StartDate != nil {
		allocation.StartDate = *update.StartDate
	}
	if update.ClearEndDate {
		allocation.EndDate = nil
	} else if update.EndDate != nil {
		endDate := *update.EndDate
		allocation.EndDate = &endDate
	}
	if update.Notes != nil {
		allocation.Notes = *update.Notes
	}

	if err := validateAllocation(allocation); err != nil {
		return nil, err
	}

	if err := s.allocationRepo.Update(ctx, allocation); err != nil {
		return nil, err
	}

	return allocation, nil
}

func (s *allocationService) DeleteAllocation(ctx context.Context, id string) error {
	return s.allocationRepo.Delete(ctx, id)
}

func validateAllocation(allocation *domain.Allocation) error {
	if err := validateStruct(allocation); err != nil {
		return err
	}
	if err := validateHoursRange("hoursPerWeek", allocation.HoursPerWeek, maxHoursPerWeek); err != nil {
		return err
	}
	if allocation.EndDate != nil && allocation.EndDate.Before(allocation.StartDate) {
		return domain.NewValidationError("endDate", "must not be before startDate")
	}
	return nil
}
