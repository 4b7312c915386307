package service

import (
	"context"
	"strings"

	"github.com/bagdasarian/resource-dashboard/internal/domain"
	"github.com/bagdasarian/resource-dashboard/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type workItemService struct {
	workItemRepo   repository.WorkItemRepository
	allocationRepo repository.AllocationRepository
	logger         *zap.Logger
}

func NewWorkItemService(
	workItemRepo repository.WorkItemRepository,
	allocationRepo repository.AllocationRepository,
	logger *zap.Logger,
) WorkItemService {
	return &workItemService{
		workItemRepo:   workItemRepo,
		allocationRepo: allocationRepo,
		logger:         logger,
	}
}

func (s *workItemService) CreateWorkItem(ctx context.Context, item *domain.WorkItem) (*domain.WorkItem, error) {
	item.Title = strings.TrimSpace(item.Title)
	if item.Priority == "" {
		item.Priority = domain.PriorityNormal
	}
	if item.AssignedToID != nil && strings.TrimSpace(*item.AssignedToID) == "" {
		item.AssignedToID = nil
	}

	if err := ValidateWorkItem(item); err != nil {
		return nil, err
	}

	if err := s.workItemRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	s.logger.Debug("work item created",
		zap.String("work_item_id", item.ID),
		zap.String("type", string(item.Type)),
		zap.String("status", item.Status),
	)

	if item.AssignedToID != nil {
		return s.workItemRepo.GetByID(ctx, item.ID)
	}
	return item, nil
}

// GetWorkItem возвращает элемент со всеми его аллокациями; сумма часов не фильтруется по датам
func (s *workItemService) GetWorkItem(ctx context.Context, id string) (*domain.WorkItemWithAllocations, error) {
	item, err := s.workItemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	allocations, err := s.allocationRepo.ListByWorkItem(ctx, item.ID)
	if err != nil {
		return nil, err
	}

	return &domain.WorkItemWithAllocations{
		WorkItem:            item,
		Allocations:         allocations,
		TotalAllocatedHours: TotalAllocatedHours(item.ID, allocations),
	}, nil
}

func (s *workItemService) ListWorkItems(ctx context.Context, filter domain.WorkItemFilter) ([]*domain.WorkItem, error) {
	if filter.Type != nil && !filter.Type.IsValid() {
		return nil, domain.NewValidationError("type", "unknown work item type "+string(*filter.Type))
	}
	if filter.AssignedToID != nil {
		if _, err := uuid.Parse(*filter.AssignedToID); err != nil {
			return nil, domain.NewValidationError("assignedToId", "must be a valid id")
		}
	}
	return s.workItemRepo.List(ctx, filter)
}

func (s *workItemService) UpdateWorkItem(ctx context.Context, id string, update domain.WorkItemUpdate) (*domain.WorkItem, error) {
	existing, err := s.workItemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := ValidateWorkItemUpdate(existing, update); err != nil {
		return nil, err
	}

	merged := applyWorkItemUpdate(existing, update)
	if err := s.workItemRepo.Update(ctx, merged); err != nil {
		return nil, err
	}

	// новый исполнитель: перечитываем, чтобы получить его имя и аватар
	if update.AssignedToID != nil && merged.AssignedToID != nil {
		return s.workItemRepo.GetByID(ctx, merged.ID)
	}
	return merged, nil
}

func (s *workItemService) DeleteWorkItem(ctx context.Context, id string) error {
	if err := s.workItemRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Debug("work item deleted", zap.String("work_item_id", id))
	return nil
}
