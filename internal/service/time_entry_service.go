package service

import (
	"context"

	"github.com/bagdasarian/resource-dashboard/internal/domain"
	"github.com/bagdasarian/resource-dashboard/internal/repository"
	"go.uber.org/zap"
)

type TimeEntryService interface {
	CreateTimeEntry(ctx context.Context, entry *domain.TimeEntry) (*domain.TimeEntry, error)
	ListTimeEntries(ctx context.Context, filter domain.TimeEntryFilter) ([]*domain.TimeEntry, error)
	DeleteTimeEntry(ctx context.Context, id string) error
}

type timeEntryService struct {
	timeEntryRepo repository.TimeEntryRepository
	logger        *zap.Logger
}

func NewTimeEntryService(timeEntryRepo repository.TimeEntryRepository, logger *zap.Logger) TimeEntryService {
	return &timeEntryService{
		timeEntryRepo: timeEntryRepo,
		logger:        logger,
	}
}

// CreateTimeEntry увеличивает actualHours рабочего элемента, загрузку не меняет
func (s *timeEntryService) CreateTimeEntry(ctx context.Context, entry *domain.TimeEntry) (*domain.TimeEntry, error) {
	if err := validateStruct(entry); err != nil {
		return nil, err
	}
	if !entry.Hours.IsPositive() {
		return nil, domain.NewValidationError("hours", "must be greater than 0")
	}
	if entry.Hours.GreaterThan(maxEntryHours) {
		return nil, domain.NewValidationError("hours", "must be at most "+maxEntryHours.String())
	}

	if err := s.timeEntryRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	s.logger.Debug("time entry logged",
		zap.String("time_entry_id", entry.ID),
		zap.String("work_item_id", entry.WorkItemID),
		zap.String("hours", entry.Hours.String()),
	)
	return entry, nil
}

func (s *timeEntryService) ListTimeEntries(ctx context.Context, filter domain.TimeEntryFilter) ([]*domain.TimeEntry, error) {
	return s.timeEntryRepo.List(ctx, filter)
}

func (s *timeEntryService) DeleteTimeEntry(ctx context.Context, id string) error {
	return s.timeEntryRepo.Delete(ctx, id)
}
