package service

import (
	"context"
	"strings"

	"github.com/bagdasarian/resource-dashboard/internal/domain"
	"github.com/bagdasarian/resource-dashboard/internal/repository"
)

type OutOfOfficeService interface {
	CreateOutOfOffice(ctx context.Context, entry *domain.OutOfOffice) (*domain.OutOfOffice, error)
	ListOutOfOffice(ctx context.Context, teamMemberID *string) ([]*domain.OutOfOffice, error)
	DeleteOutOfOffice(ctx context.Context, id string) error
}

type outOfOfficeService struct {
	outOfOfficeRepo repository.OutOfOfficeRepository
}

func NewOutOfOfficeService(outOfOfficeRepo repository.OutOfOfficeRepository) OutOfOfficeService {
	return &outOfOfficeService{outOfOfficeRepo: outOfOfficeRepo}
}

func (s *outOfOfficeService) CreateOutOfOffice(ctx context.Context, entry *domain.OutOfOffice) (*domain.OutOfOffice, error) {
	entry.Reason = strings.TrimSpace(entry.Reason)
	if entry.Reason == "" {
		entry.Reason = domain.DefaultOutOfOfficeReason
	}

	if err := validateStruct(entry); err != nil {
		return nil, err
	}
	if entry.EndDate.Before(entry.StartDate) {
		return nil, domain.NewValidationError("endDate", "must not be before startDate")
	}

	if err := s.outOfOfficeRepo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *outOfOfficeService) ListOutOfOffice(ctx context.Context, teamMemberID *string) ([]*domain.OutOfOffice, error) {
	return s.outOfOfficeRepo.List(ctx, teamMemberID)
}

func (s *outOfOfficeService) DeleteOutOfOffice(ctx context.Context, id string) error {
	return s.outOfOfficeRepo.Delete(ctx, id)
}
