package service

import (
	"context"

	"github.com/bagdasarian/resource-dashboard/internal/domain"
	"github.com/bagdasarian/resource-dashboard/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockTeamRepository struct {
	mock.Mock
}

func (m *MockTeamRepository) Create(ctx context.Context, team *domain.Team) error {
	args := m.Called(ctx, team)
	return args.Error(0)
}

func (m *MockTeamRepository) GetByID(ctx context.Context, id string) (*domain.Team, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}

func (m *MockTeamRepository) List(ctx context.Context) ([]*domain.Team, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Team), args.Error(1)
}

func (m *MockTeamRepository) Update(ctx context.Context, team *domain.Team) error {
	args := m.Called(ctx, team)
	return args.Error(0)
}

func (m *MockTeamRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockTeamMemberRepository struct {
	mock.Mock
}

func (m *MockTeamMemberRepository) Create(ctx context.Context, member *domain.TeamMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockTeamMemberRepository) GetByID(ctx context.Context, id string) (*domain.TeamMember, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TeamMember), args.Error(1)
}

func (m *MockTeamMemberRepository) List(ctx context.Context, filter repository.TeamMemberFilter) ([]*domain.TeamMember, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.TeamMember), args.Error(1)
}

func (m *MockTeamMemberRepository) Update(ctx context.Context, member *domain.TeamMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockTeamMemberRepository) SetIsActive(ctx context.Context, id string, isActive bool) error {
	args := m.Called(ctx, id, isActive)
	return args.Error(0)
}

type MockWorkItemRepository struct {
	mock.Mock
}

func (m *MockWorkItemRepository) Create(ctx context.Context, item *domain.WorkItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockWorkItemRepository) GetByID(ctx context.Context, id string) (*domain.WorkItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkItem), args.Error(1)
}

func (m *MockWorkItemRepository) List(ctx context.Context, filter domain.WorkItemFilter) ([]*domain.WorkItem, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.WorkItem), args.Error(1)
}

func (m *MockWorkItemRepository) Update(ctx context.Context, item *domain.WorkItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockWorkItemRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockAllocationRepository struct {
	mock.Mock
}

func (m *MockAllocationRepository) Create(ctx context.Context, allocation *domain.Allocation) error {
	args := m.Called(ctx, allocation)
	return args.Error(0)
}

func (m *MockAllocationRepository) GetByID(ctx context.Context, id string) (*domain.Allocation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Allocation), args.Error(1)
}

func (m *MockAllocationRepository) ListByTeamMember(ctx context.Context, teamMemberID string) ([]*domain.Allocation, error) {
	args := m.Called(ctx, teamMemberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Allocation), args.Error(1)
}

func (m *MockAllocationRepository) ListByTeamMembers(ctx context.Context, teamMemberIDs []string) ([]*domain.Allocation, error) {
	args := m.Called(ctx, teamMemberIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Allocation), args.Error(1)
}

func (m *MockAllocationRepository) ListByWorkItem(ctx context.Context, workItemID string) ([]*domain.Allocation, error) {
	args := m.Called(ctx, workItemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Allocation), args.Error(1)
}

func (m *MockAllocationRepository) Update(ctx context.Context, allocation *domain.Allocation) error {
	args := m.Called(ctx, allocation)
	return args.Error(0)
}

func (m *MockAllocationRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockOutOfOfficeRepository struct {
	mock.Mock
}

func (m *MockOutOfOfficeRepository) Create(ctx context.Context, entry *domain.OutOfOffice) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockOutOfOfficeRepository) List(ctx context.Context, teamMemberID *string) ([]*domain.OutOfOffice, error) {
	args := m.Called(ctx, teamMemberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.OutOfOffice), args.Error(1)
}

func (m *MockOutOfOfficeRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockTimeEntryRepository struct {
	mock.Mock
}

func (m *MockTimeEntryRepository) Create(ctx context.Context, entry *domain.TimeEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockTimeEntryRepository) List(ctx context.Context, filter domain.TimeEntryFilter) ([]*domain.TimeEntry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.TimeEntry), args.Error(1)
}

func (m *MockTimeEntryRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) GetActualHoursByType(ctx context.Context) ([]*domain.WorkItemTypeHours, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.WorkItemTypeHours), args.Error(1)
}
