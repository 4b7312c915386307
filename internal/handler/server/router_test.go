package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bagdasarian/resource-dashboard/internal/domain"
	"github.com/bagdasarian/resource-dashboard/internal/handler"
	"github.com/bagdasarian/resource-dashboard/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	teamID   = "2a3b4c5d-6e7f-4a8b-9c0d-1e2f3a4b5c01"
	memberID = "6f1c2e0a-3b4d-4c5e-8f90-1a2b3c4d5e6f"
)

type mockTeamService struct {
	mock.Mock
	service.TeamService
}

func (m *mockTeamService) CreateTeam(ctx context.Context, team *domain.Team) (*domain.Team, error) {
	args := m.Called(ctx, team)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}

func (m *mockTeamService) GetTeam(ctx context.Context, id string) (*domain.Team, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}

func (m *mockTeamService) DeleteTeam(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockWorkItemService struct {
	mock.Mock
	service.WorkItemService
}

func (m *mockWorkItemService) CreateWorkItem(ctx context.Context, item *domain.WorkItem) (*domain.WorkItem, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkItem), args.Error(1)
}

func (m *mockWorkItemService) ListWorkItems(ctx context.Context, filter domain.WorkItemFilter) ([]*domain.WorkItem, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.WorkItem), args.Error(1)
}

type mockAllocationService struct {
	mock.Mock
	service.AllocationService
}

func (m *mockAllocationService) CreateAllocation(ctx context.Context, allocation *domain.Allocation) (*domain.Allocation, error) {
	args := m.Called(ctx, allocation)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Allocation), args.Error(1)
}

type stubPinger struct {
	err error
}

func (p stubPinger) PingContext(context.Context) error {
	return p.err
}

func newTestRouter(services handler.Services, pinger handler.Pinger) http.Handler {
	h := handler.NewHandler(services, pinger, zap.NewNop())
	return NewRouter(h, zap.NewNop())
}

func doRequest(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) handler.ErrorDetail {
	t.Helper()
	var response handler.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	return response.Error
}

func TestRouter_Teams(t *testing.T) {
	t.Run("создание команды возвращает 201", func(t *testing.T) {
		teamService := new(mockTeamService)
		router := newTestRouter(handler.Services{Team: teamService}, stubPinger{})

		teamService.On("CreateTeam", mock.Anything, mock.MatchedBy(func(team *domain.Team) bool {
			return team.Name == "Backend"
		})).Return(&domain.Team{ID: teamID, Name: "Backend", CreatedAt: time.Now()}, nil).Once()

		rec := doRequest(t, router, http.MethodPost, "/api/teams", `{"name":"Backend"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		var response handler.TeamResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
		assert.Equal(t, teamID, response.ID)
		teamService.AssertExpectations(t)
	})

	t.Run("ошибка валидации возвращает 422 с полем", func(t *testing.T) {
		teamService := new(mockTeamService)
		router := newTestRouter(handler.Services{Team: teamService}, stubPinger{})

		teamService.On("CreateTeam", mock.Anything, mock.Anything).
			Return(nil, domain.NewValidationError("name", "name is required")).Once()

		rec := doRequest(t, router, http.MethodPost, "/api/teams", `{}`)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		detail := decodeError(t, rec)
		assert.Equal(t, domain.CodeValidation, detail.Code)
		assert.Equal(t, "name", detail.Field)
	})

	t.Run("битый JSON возвращает 400", func(t *testing.T) {
		router := newTestRouter(handler.Services{Team: new(mockTeamService)}, stubPinger{})

		rec := doRequest(t, router, http.MethodPost, "/api/teams", `{"name":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, domain.CodeBadRequest, decodeError(t, rec).Code)
	})

	t.Run("неизвестная команда возвращает 404", func(t *testing.T) {
		teamService := new(mockTeamService)
		router := newTestRouter(handler.Services{Team: teamService}, stubPinger{})

		teamService.On("GetTeam", mock.Anything, "missing").Return(nil, domain.NewNotFoundError("team")).Once()

		rec := doRequest(t, router, http.MethodGet, "/api/teams/missing", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, domain.CodeNotFound, decodeError(t, rec).Code)
	})

	t.Run("удаление возвращает 204", func(t *testing.T) {
		teamService := new(mockTeamService)
		router := newTestRouter(handler.Services{Team: teamService}, stubPinger{})

		teamService.On("DeleteTeam", mock.Anything, teamID).Return(nil).Once()

		rec := doRequest(t, router, http.MethodDelete, "/api/teams/"+teamID, "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
		teamService.AssertExpectations(t)
	})

	t.Run("внутренняя ошибка не раскрывается", func(t *testing.T) {
		teamService := new(mockTeamService)
		router := newTestRouter(handler.Services{Team: teamService}, stubPinger{})

		teamService.On("GetTeam", mock.Anything, teamID).Return(nil, errors.New("pq: connection reset")).Once()

		rec := doRequest(t, router, http.MethodGet, "/api/teams/"+teamID, "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		detail := decodeError(t, rec)
		assert.Equal(t, "INTERNAL_ERROR", detail.Code)
		assert.NotContains(t, detail.Message, "connection reset")
	})
}

func TestRouter_WorkItems(t *testing.T) {
	t.Run("статус по умолчанию подставляется на границе", func(t *testing.T) {
		workItemService := new(mockWorkItemService)
		router := newTestRouter(handler.Services{WorkItem: workItemService}, stubPinger{})

		workItemService.On("CreateWorkItem", mock.Anything, mock.MatchedBy(func(item *domain.WorkItem) bool {
			return item.Type == domain.WorkItemTypeOM && item.Status == "planned" && item.DueDate != nil
		})).Return(&domain.WorkItem{ID: "w1", Type: domain.WorkItemTypeOM, Status: "planned"}, nil).Once()

		rec := doRequest(t, router, http.MethodPost, "/api/work-items",
			`{"title":"Patch servers","type":"om","estimatedHours":8,"dueDate":"2024-07-01"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		var response handler.WorkItemResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
		assert.Equal(t, "Planned", response.StatusLabel)
		workItemService.AssertExpectations(t)
	})

	t.Run("неверная дата возвращает 400", func(t *testing.T) {
		router := newTestRouter(handler.Services{WorkItem: new(mockWorkItemService)}, stubPinger{})

		rec := doRequest(t, router, http.MethodPost, "/api/work-items",
			`{"title":"Patch servers","type":"om","dueDate":"July 1"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("список по исполнителю", func(t *testing.T) {
		workItemService := new(mockWorkItemService)
		router := newTestRouter(handler.Services{WorkItem: workItemService}, stubPinger{})

		assignee := memberID
		workItemService.On("ListWorkItems", mock.Anything, mock.MatchedBy(func(filter domain.WorkItemFilter) bool {
			return filter.AssignedToID != nil && *filter.AssignedToID == memberID && filter.Type == nil
		})).Return([]*domain.WorkItem{{
			ID:           "w1",
			Type:         domain.WorkItemTypeOM,
			Status:       "planned",
			AssignedToID: &assignee,
			AssignedTo:   &domain.WorkItemAssignee{ID: memberID, Name: "Alice"},
		}}, nil).Once()

		rec := doRequest(t, router, http.MethodGet, "/api/work-items/assignee/"+memberID, "")

		require.Equal(t, http.StatusOK, rec.Code)
		var response []handler.WorkItemResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
		require.Len(t, response, 1)
		require.NotNil(t, response[0].AssignedTo)
		assert.Equal(t, "Alice", response[0].AssignedTo.Name)
		workItemService.AssertExpectations(t)
	})

	t.Run("фильтр assignedToId в query", func(t *testing.T) {
		workItemService := new(mockWorkItemService)
		router := newTestRouter(handler.Services{WorkItem: workItemService}, stubPinger{})

		workItemService.On("ListWorkItems", mock.Anything, mock.MatchedBy(func(filter domain.WorkItemFilter) bool {
			return filter.AssignedToID != nil && *filter.AssignedToID == memberID
		})).Return([]*domain.WorkItem{}, nil).Once()

		rec := doRequest(t, router, http.MethodGet, "/api/work-items?assignedToId="+memberID, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		workItemService.AssertExpectations(t)
	})
}

func TestRouter_Allocations(t *testing.T) {
	t.Run("без hoursPerWeek возвращает 422", func(t *testing.T) {
		allocationService := new(mockAllocationService)
		router := newTestRouter(handler.Services{Allocation: allocationService}, stubPinger{})

		rec := doRequest(t, router, http.MethodPost, "/api/allocations",
			`{"teamMemberId":"`+memberID+`","workItemId":"w1","startDate":"2024-06-01"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "hoursPerWeek", decodeError(t, rec).Field)
		allocationService.AssertNotCalled(t, "CreateAllocation", mock.Anything, mock.Anything)
	})

	t.Run("создание возвращает 201", func(t *testing.T) {
		allocationService := new(mockAllocationService)
		router := newTestRouter(handler.Services{Allocation: allocationService}, stubPinger{})

		allocationService.On("CreateAllocation", mock.Anything, mock.MatchedBy(func(a *domain.Allocation) bool {
			return a.HoursPerWeek.String() == "20" && a.TeamMemberID == memberID
		})).Return(&domain.Allocation{
			ID:           "a1",
			TeamMemberID: memberID,
			WorkItemID:   "w1",
			StartDate:    time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		}, nil).Once()

		rec := doRequest(t, router, http.MethodPost, "/api/allocations",
			`{"teamMemberId":"`+memberID+`","workItemId":"w1","hoursPerWeek":20,"startDate":"2024-06-01"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		allocationService.AssertExpectations(t)
	})
}

func TestRouter_Statuses(t *testing.T) {
	router := newTestRouter(handler.Services{}, stubPinger{})

	t.Run("словарь project", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/api/statuses?type=project", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var response handler.StatusesResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
		assert.Equal(t, "initiating", response.DefaultStatus)
		assert.Len(t, response.Statuses, 5)
	})

	t.Run("неизвестный тип", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/api/statuses?type=epic", "")

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "type", decodeError(t, rec).Field)
	})

	t.Run("без типа", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/api/statuses", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRouter_TeamMembersQuery(t *testing.T) {
	router := newTestRouter(handler.Services{}, stubPinger{})

	rec := doRequest(t, router, http.MethodGet, "/api/team-members?includeInactive=maybe", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_Health(t *testing.T) {
	t.Run("база доступна", func(t *testing.T) {
		rec := doRequest(t, newTestRouter(handler.Services{}, stubPinger{}), http.MethodGet, "/health", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("база недоступна", func(t *testing.T) {
		rec := doRequest(t, newTestRouter(handler.Services{}, stubPinger{err: errors.New("refused")}), http.MethodGet, "/health", "")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
