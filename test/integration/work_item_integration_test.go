//go:build integration
// +build integration

package integration

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bagdasarian/resource-dashboard/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkItemStatusIntegration(t *testing.T) {
	db := setupTestDB(t)
	s := newStack(db)
	ctx := context.Background()

	item := createWorkItem(t, s, "Migration", domain.WorkItemTypeProject)
	require.Equal(t, "initiating", item.Status)

	t.Run("статус чужого типа отклоняется и не сохраняется", func(t *testing.T) {
		status := "draft"
		_, err := s.workItems.UpdateWorkItem(ctx, item.ID, domain.WorkItemUpdate{Status: &status})
		require.True(t, errors.Is(err, domain.ErrValidation))

		stored, err := s.workItems.GetWorkItem(ctx, item.ID)
		require.NoError(t, err)
		assert.Equal(t, "initiating", stored.Status)
	})

	t.Run("допустимый переход", func(t *testing.T) {
		status := "executing"
		updated, err := s.workItems.UpdateWorkItem(ctx, item.ID, domain.WorkItemUpdate{Status: &status})
		require.NoError(t, err)
		assert.Equal(t, "executing", updated.Status)
		assert.NotNil(t, updated.UpdatedAt)
	})

	t.Run("фильтр по типу", func(t *testing.T) {
		createWorkItem(t, s, "Request", domain.WorkItemTypeDemand)
		itemType := domain.WorkItemTypeProject

		items, err := s.workItems.ListWorkItems(ctx, domain.WorkItemFilter{Type: &itemType})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, item.ID, items[0].ID)
	})
}

func TestWorkItemRoundTripIntegration(t *testing.T) {
	db := setupTestDB(t)
	s := newStack(db)
	ctx := context.Background()

	created, err := s.workItems.CreateWorkItem(ctx, &domain.WorkItem{
		Title:          "New intake",
		Type:           domain.WorkItemTypeDemand,
		Status:         "draft",
		EstimatedHours: decimal.RequireFromString("12.5"),
	})
	require.NoError(t, err)

	stored, err := s.workItems.GetWorkItem(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.WorkItemTypeDemand, stored.Type)
	assert.Equal(t, "draft", stored.Status)
	assert.Equal(t, domain.PriorityNormal, stored.Priority)
	assert.True(t, stored.EstimatedHours.Equal(decimal.RequireFromString("12.5")))
	assert.True(t, stored.TotalAllocatedHours.IsZero())

	_, err = s.workItems.CreateWorkItem(ctx, &domain.WorkItem{
		Title:  "Wrong status",
		Type:   domain.WorkItemTypeDemand,
		Status: "executing",
	})
	assert.True(t, errors.Is(err, domain.ErrValidation))

	items, err := s.workItems.ListWorkItems(ctx, domain.WorkItemFilter{})
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestWorkItemAssigneeIntegration(t *testing.T) {
	db := setupTestDB(t)
	s := newStack(db)
	ctx := context.Background()

	alice := createMember(t, s, "Alice", "alice@example.com", nil)
	bob := createMember(t, s, "Bob", "bob@example.com", nil)

	item, err := s.workItems.CreateWorkItem(ctx, &domain.WorkItem{
		Title:        "Rotate certificates",
		Type:         domain.WorkItemTypeOM,
		Status:       "planned",
		AssignedToID: &alice.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, item.AssignedTo)
	assert.Equal(t, "Alice", item.AssignedTo.Name)
	createWorkItem(t, s, "Unassigned", domain.WorkItemTypeOM)

	t.Run("фильтр по исполнителю", func(t *testing.T) {
		items, err := s.workItems.ListWorkItems(ctx, domain.WorkItemFilter{AssignedToID: &alice.ID})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, item.ID, items[0].ID)

		items, err = s.workItems.ListWorkItems(ctx, domain.WorkItemFilter{AssignedToID: &bob.ID})
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("переназначение", func(t *testing.T) {
		updated, err := s.workItems.UpdateWorkItem(ctx, item.ID, domain.WorkItemUpdate{AssignedToID: &bob.ID})
		require.NoError(t, err)
		require.NotNil(t, updated.AssignedTo)
		assert.Equal(t, "Bob", updated.AssignedTo.Name)
	})

	t.Run("несуществующий исполнитель", func(t *testing.T) {
		missing := "00000000-0000-4000-8000-000000000000"
		_, err := s.workItems.UpdateWorkItem(ctx, item.ID, domain.WorkItemUpdate{AssignedToID: &missing})
		assert.True(t, errors.Is(err, domain.ErrConstraint))
	})

	t.Run("удаление участника снимает назначение", func(t *testing.T) {
		_, err := db.ExecContext(ctx, `DELETE FROM team_members WHERE id = $1`, bob.ID)
		require.NoError(t, err)

		stored, err := s.workItems.GetWorkItem(ctx, item.ID)
		require.NoError(t, err)
		assert.Nil(t, stored.AssignedToID)
		assert.Nil(t, stored.AssignedTo)
	})

	t.Run("снятие срока", func(t *testing.T) {
		due := time.Date(2024, 9, 30, 0, 0, 0, 0, time.UTC)
		_, err := s.workItems.UpdateWorkItem(ctx, item.ID, domain.WorkItemUpdate{DueDate: &due})
		require.NoError(t, err)

		cleared, err := s.workItems.UpdateWorkItem(ctx, item.ID, domain.WorkItemUpdate{ClearDueDate: true})
		require.NoError(t, err)
		assert.Nil(t, cleared.DueDate)

		stored, err := s.workItems.GetWorkItem(ctx, item.ID)
		require.NoError(t, err)
		assert.Nil(t, stored.DueDate)
	})
}

func TestTimeEntriesIntegration(t *testing.T) {
	db := setupTestDB(t)
	s := newStack(db)
	ctx := context.Background()

	alice := createMember(t, s, "Alice", "alice@example.com", nil)
	item := createWorkItem(t, s, "Support rota", domain.WorkItemTypeOM)

	first, err := s.timeEntries.CreateTimeEntry(ctx, &domain.TimeEntry{
		TeamMemberID: alice.ID,
		WorkItemID:   item.ID,
		Hours:        decimal.RequireFromString("2.5"),
		Date:         time.Now(),
	})
	require.NoError(t, err)
	_, err = s.timeEntries.CreateTimeEntry(ctx, &domain.TimeEntry{
		TeamMemberID: alice.ID,
		WorkItemID:   item.ID,
		Hours:        decimal.NewFromInt(4),
		Date:         time.Now(),
	})
	require.NoError(t, err)

	stored, err := s.workItems.GetWorkItem(ctx, item.ID)
	require.NoError(t, err)
	assert.True(t, stored.ActualHours.Equal(decimal.RequireFromString("6.5")))

	stats, err := s.stats.GetDashboardStats(ctx)
	require.NoError(t, err)
	assert.True(t, stats.ActualHoursByType[domain.WorkItemTypeOM].Equal(decimal.RequireFromString("6.5")))
	// фактические часы не влияют на загрузку
	assert.Zero(t, stats.AverageCapacity)

	require.NoError(t, s.timeEntries.DeleteTimeEntry(ctx, first.ID))

	stored, err = s.workItems.GetWorkItem(ctx, item.ID)
	require.NoError(t, err)
	assert.True(t, stored.ActualHours.Equal(decimal.NewFromInt(4)))

	entries, err := s.timeEntries.ListTimeEntries(ctx, domain.TimeEntryFilter{WorkItemID: &item.ID})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Alice", entries[0].TeamMemberName)

	t.Run("удаление элемента удаляет зависимые записи", func(t *testing.T) {
		allocate(t, s, alice.ID, item.ID, 10, time.Now().AddDate(0, 0, -1), nil)

		require.NoError(t, s.workItems.DeleteWorkItem(ctx, item.ID))

		_, err := s.workItems.GetWorkItem(ctx, item.ID)
		assert.True(t, errors.Is(err, domain.ErrNotFound))

		allocations, err := s.members.GetAllocations(ctx, alice.ID)
		require.NoError(t, err)
		assert.Empty(t, allocations)

		entries, err := s.timeEntries.ListTimeEntries(ctx, domain.TimeEntryFilter{TeamMemberID: &alice.ID})
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestOutOfOfficeIntegration(t *testing.T) {
	db := setupTestDB(t)
	s := newStack(db)
	ctx := context.Background()

	alice := createMember(t, s, "Alice", "alice@example.com", nil)
	start := time.Now().AddDate(0, 0, 1)

	entry, err := s.outOfOffice.CreateOutOfOffice(ctx, &domain.OutOfOffice{
		TeamMemberID: alice.ID,
		StartDate:    start,
		EndDate:      start.AddDate(0, 0, 4),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultOutOfOfficeReason, entry.Reason)

	entries, err := s.outOfOffice.ListOutOfOffice(ctx, &alice.ID)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	// отсутствие не уменьшает доступные часы
	member, err := s.members.GetTeamMember(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "40", member.AvailableHours.String())

	require.NoError(t, s.outOfOffice.DeleteOutOfOffice(ctx, entry.ID))
	err = s.outOfOffice.DeleteOutOfOffice(ctx, entry.ID)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
