package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/bagdasarian/resource-dashboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
		wantErr  bool
	}{
		{"дата без времени", "2024-06-01", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), false},
		{"RFC 3339", "2024-06-01T09:30:00Z", time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC), false},
		{"пробелы по краям", " 2024-06-01 ", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), false},
		{"неверный формат", "01.06.2024", time.Time{}, true},
		{"пусто", "", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parseDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(result))
		})
	}
}

func TestAllocationPatchRequest_EndDate(t *testing.T) {
	t.Run("поле отсутствует", func(t *testing.T) {
		var req AllocationPatchRequest
		require.NoError(t, json.Unmarshal([]byte(`{"notes":"x"}`), &req))

		update := httpAllocationPatchToDomain(req)
		assert.False(t, update.ClearEndDate)
		assert.Nil(t, update.EndDate)
	})

	t.Run("явный null снимает дату окончания", func(t *testing.T) {
		var req AllocationPatchRequest
		require.NoError(t, json.Unmarshal([]byte(`{"endDate":null}`), &req))

		update := httpAllocationPatchToDomain(req)
		assert.True(t, update.ClearEndDate)
	})

	t.Run("новая дата окончания", func(t *testing.T) {
		var req AllocationPatchRequest
		require.NoError(t, json.Unmarshal([]byte(`{"endDate":"2024-07-01","hoursPerWeek":12.5}`), &req))

		update := httpAllocationPatchToDomain(req)
		require.NotNil(t, update.EndDate)
		assert.Equal(t, "2024-07-01", formatDate(*update.EndDate))
		require.NotNil(t, update.HoursPerWeek)
		assert.Equal(t, "12.5", update.HoursPerWeek.String())
	})
}

func TestWorkItemPatchRequest_DueDate(t *testing.T) {
	t.Run("поле отсутствует", func(t *testing.T) {
		var req WorkItemPatchRequest
		require.NoError(t, json.Unmarshal([]byte(`{"title":"x"}`), &req))

		update := httpWorkItemPatchToDomain(req)
		assert.False(t, update.ClearDueDate)
		assert.Nil(t, update.DueDate)
	})

	t.Run("явный null снимает срок", func(t *testing.T) {
		var req WorkItemPatchRequest
		require.NoError(t, json.Unmarshal([]byte(`{"dueDate":null}`), &req))

		update := httpWorkItemPatchToDomain(req)
		assert.True(t, update.ClearDueDate)
		assert.Nil(t, update.DueDate)
	})

	t.Run("новый срок", func(t *testing.T) {
		var req WorkItemPatchRequest
		require.NoError(t, json.Unmarshal([]byte(`{"dueDate":"2024-09-30"}`), &req))

		update := httpWorkItemPatchToDomain(req)
		assert.False(t, update.ClearDueDate)
		require.NotNil(t, update.DueDate)
		assert.Equal(t, "2024-09-30", formatDate(*update.DueDate))
	})
}

func TestWorkItemPatchRequest_AssignedToID(t *testing.T) {
	t.Run("явный null снимает исполнителя", func(t *testing.T) {
		var req WorkItemPatchRequest
		require.NoError(t, json.Unmarshal([]byte(`{"assignedToId":null}`), &req))

		update := httpWorkItemPatchToDomain(req)
		require.NotNil(t, update.AssignedToID)
		assert.Equal(t, "", *update.AssignedToID)
	})

	t.Run("поле отсутствует", func(t *testing.T) {
		var req WorkItemPatchRequest
		require.NoError(t, json.Unmarshal([]byte(`{"status":"planned"}`), &req))

		assert.Nil(t, httpWorkItemPatchToDomain(req).AssignedToID)
	})

	t.Run("новый исполнитель", func(t *testing.T) {
		var req WorkItemPatchRequest
		require.NoError(t, json.Unmarshal([]byte(`{"assignedToId":"6f1c2e0a-3b4d-4c5e-8f90-1a2b3c4d5e6f"}`), &req))

		update := httpWorkItemPatchToDomain(req)
		require.NotNil(t, update.AssignedToID)
		assert.Equal(t, "6f1c2e0a-3b4d-4c5e-8f90-1a2b3c4d5e6f", *update.AssignedToID)
	})
}

func TestDomainWorkItemToHTTP_Assignee(t *testing.T) {
	avatar := "https://example.com/alice.png"
	assigneeID := "6f1c2e0a-3b4d-4c5e-8f90-1a2b3c4d5e6f"
	item := &domain.WorkItem{
		Title:        "Patch servers",
		Type:         domain.WorkItemTypeOM,
		Status:       "planned",
		AssignedToID: &assigneeID,
		AssignedTo:   &domain.WorkItemAssignee{ID: assigneeID, Name: "Alice", Avatar: &avatar},
	}

	body, err := json.Marshal(domainWorkItemToHTTP(item))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, assigneeID, decoded["assignedToId"])
	assert.Equal(t, map[string]any{"id": assigneeID, "name": "Alice", "avatar": avatar}, decoded["assignedTo"])

	item.AssignedToID = nil
	item.AssignedTo = nil
	body, err = json.Marshal(domainWorkItemToHTTP(item))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Nil(t, decoded["assignedTo"])
}

func TestHTTPAllocationToDomain(t *testing.T) {
	t.Run("hoursPerWeek обязателен", func(t *testing.T) {
		var req AllocationRequest
		require.NoError(t, json.Unmarshal([]byte(`{"teamMemberId":"a","workItemId":"b","startDate":"2024-06-01"}`), &req))

		_, err := httpAllocationToDomain(req)

		require.Error(t, err)
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeValidation, domainErr.Code)
		assert.Equal(t, "hoursPerWeek", domainErr.Field)
	})

	t.Run("явный ноль допустим", func(t *testing.T) {
		var req AllocationRequest
		require.NoError(t, json.Unmarshal([]byte(`{"teamMemberId":"a","workItemId":"b","hoursPerWeek":0,"startDate":"2024-06-01"}`), &req))

		allocation, err := httpAllocationToDomain(req)

		require.NoError(t, err)
		assert.True(t, allocation.HoursPerWeek.IsZero())
	})
}

func TestTeamMemberPatchRequest_TeamID(t *testing.T) {
	var req TeamMemberPatchRequest
	require.NoError(t, json.Unmarshal([]byte(`{"teamId":null}`), &req))

	update := httpTeamMemberPatchToDomain(req)
	require.NotNil(t, update.TeamID)
	assert.Equal(t, "", *update.TeamID)

	var untouched TeamMemberPatchRequest
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Alice"}`), &untouched))
	assert.Nil(t, httpTeamMemberPatchToDomain(untouched).TeamID)
}

func TestHTTPWorkItemToDomain(t *testing.T) {
	t.Run("статус по умолчанию для типа", func(t *testing.T) {
		item := httpWorkItemToDomain(WorkItemRequest{Title: "Rollout", Type: "project"})
		assert.Equal(t, "initiating", item.Status)
	})

	t.Run("переданный статус сохраняется", func(t *testing.T) {
		item := httpWorkItemToDomain(WorkItemRequest{Title: "Rollout", Type: "om", Status: "active"})
		assert.Equal(t, "active", item.Status)
	})
}

func TestHTTPTeamMemberToDomain(t *testing.T) {
	member := httpTeamMemberToDomain(TeamMemberRequest{Name: "Alice", Role: "Dev", Email: "a@example.com"})

	assert.Equal(t, domain.DefaultWeeklyHours, member.WeeklyHours)
	assert.True(t, member.IsActive)
}

func TestGetStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusUnprocessableEntity, getStatusCode(domain.CodeValidation))
	assert.Equal(t, http.StatusNotFound, getStatusCode(domain.CodeNotFound))
	assert.Equal(t, http.StatusConflict, getStatusCode(domain.CodeConstraint))
	assert.Equal(t, http.StatusBadRequest, getStatusCode(domain.CodeBadRequest))
	assert.Equal(t, http.StatusInternalServerError, getStatusCode("SOMETHING_ELSE"))
}

func TestStatusesToHTTP(t *testing.T) {
	t.Run("словарь demand", func(t *testing.T) {
		response := statusesToHTTP(domain.WorkItemTypeDemand)

		assert.Equal(t, "draft", response.DefaultStatus)
		require.Len(t, response.Statuses, 7)
		assert.Equal(t, StatusOption{Value: "qualified-approved", Label: "Qualified Approved"}, response.Statuses[3])
	})

	t.Run("неизвестный тип", func(t *testing.T) {
		response := statusesToHTTP("epic")

		assert.Empty(t, response.Statuses)
		assert.Empty(t, response.DefaultStatus)
	})
}
