package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/bagdasarian/resource-dashboard/internal/domain"
)

const allocationSelect = `
	SELECT a.id, a.team_member_id, a.work_item_id, a.hours_per_week, a.start_date, a.end_date,
		a.notes, a.created_at, a.updated_at, m.name, w.title
	FROM allocations a
	JOIN team_members m ON m.id = a.team_member_id
	JOIN work_items w ON w.id = a.work_item_id
`

type allocationRepository struct {
	executor DBExecutor
}

func NewAllocationRepository(db *sql.DB) *allocationRepository {
	return &allocationRepository{executor: db}
}

func (r *allocationRepository) Create(ctx context.Context, allocation *domain.Allocation) error {
	query := `
		INSERT INTO allocations (team_member_id, work_item_id, hours_per_week, start_date, end_date, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	var updatedAt sql.NullTime
	err := r.executor.QueryRowContext(
		ctx,
		query,
		allocation.TeamMemberID,
		allocation.WorkItemID,
		allocation.HoursPerWeek,
		allocation.StartDate,
		nullableTime(allocation.EndDate),
		allocation.Notes,
		time.Now(),
	).Scan(&allocation.ID, &allocation.CreatedAt, &updatedAt)
	if err != nil {
		return translateError(err, "allocation")
	}
	allocation.UpdatedAt = timePtr(updatedAt)

	return nil
}

func (r *allocationRepository) GetByID(ctx context.Context, id string) (*domain.Allocation, error) {
	dbID, err := parseID(id, "allocation")
	if err != nil {
		return nil, err
	}

	allocation, err := scanAllocation(r.executor.QueryRowContext(ctx, allocationSelect+` WHERE a.id = $1`, dbID))
	if err != nil {
		return nil, translateError(err, "allocation with id "+id)
	}

	return allocation, nil
}

func (r *allocationRepository) ListByTeamMember(ctx context.Context, teamMemberID string) ([]*domain.Allocation, error) {
	dbID, err := parseID(teamMemberID, "team member")
	if err != nil {
		return nil, err
	}

	return r.list(ctx, allocationSelect+` WHERE a.team_member_id = $1 ORDER BY a.start_date`, dbID)
}

// ListByTeamMembers выбирает аллокации сразу для нескольких участников (для списка ростера)
func (r *allocationRepository) ListByTeamMembers(ctx context.Context, teamMemberIDs []string) ([]*domain.Allocation, error) {
	if len(teamMemberIDs) == 0 {
		return []*domain.Allocation{}, nil
	}

	placeholders := make([]string, 0, len(teamMemberIDs))
	args := make([]any, 0, len(teamMemberIDs))
	for _, id := range teamMemberIDs {
		dbID, err := parseID(id, "team member")
		if err != nil {
			return nil, err
		}
		args = append(args, dbID)
		placeholders = append(placeholders, fmt.Sprintf("$%d", len(args)))
	}

	query := allocationSelect +
		` WHERE a.team_member_id IN (` + strings.Join(placeholders, ", ") + `) ORDER BY a.start_date`

	return r.list(ctx, query, args...)
}

func (r *allocationRepository) ListByWorkItem(ctx context.Context, workItemID string) ([]*domain.Allocation, error) {
	dbID, err := parseID(workItemID, "work item")
	if err != nil {
		return nil, err
	}

	return r.list(ctx, allocationSelect+` WHERE a.work_item_id = $1 ORDER BY a.start_date`, dbID)
}

func (r *allocationRepository) Update(ctx context.Context, allocation *domain.Allocation) error {
	dbID, err := parseID(allocation.ID, "allocation")
	if err != nil {
		return err
	}

	query := `
		UPDATE allocations
		SET hours_per_week = $2, start_date = $3, end_date = $4, notes = $5, updated_at = $6
		WHERE id = $1
		RETURNING created_at, updated_at
	`

	var updatedAt sql.NullTime
	err = r.executor.QueryRowContext(
		ctx,
		query,
		dbID,
		allocation.HoursPerWeek,
		allocation.StartDate,
		nullableTime(allocation.EndDate),
		allocation.Notes,
		time.Now(),
	).Scan(&allocation.CreatedAt, &updatedAt)
	if err != nil {
		return translateError(err, "allocation with id "+allocation.ID)
	}
	allocation.UpdatedAt = timePtr(updatedAt)

	return nil
}

func (r *allocationRepository) Delete(ctx context.Context, id string) error {
	dbID, err := parseID(id, "allocation")
	if err != nil {
		return err
	}

	result, err := r.executor.ExecContext(ctx, `DELETE FROM allocations WHERE id = $1`, dbID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return domain.NewNotFoundError("allocation with id " + id)
	}

	return nil
}

func (r *allocationRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Allocation, error) {
	rows, err := r.executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	allocations := make([]*domain.Allocation, 0)
	for rows.Next() {
		allocation, err := scanAllocation(rows)
		if err != nil {
			return nil, err
		}
		allocations = append(allocations, allocation)
	}

	return allocations, rows.Err()
}

func scanAllocation(s rowScanner) (*domain.Allocation, error) {
	allocation := &domain.Allocation{}
	var endDate, updatedAt sql.NullTime
	err := s.Scan(
		&allocation.ID,
		&allocation.TeamMemberID,
		&allocation.WorkItemID,
		&allocation.HoursPerWeek,
		&allocation.StartDate,
		&endDate,
		&allocation.Notes,
		&allocation.CreatedAt,
		&updatedAt,
		&allocation.TeamMemberName,
		&allocation.WorkItemTitle,
	)
	if err != nil {
		return nil, err
	}
	allocation.EndDate = timePtr(endDate)
	allocation.UpdatedAt = timePtr(updatedAt)
	return allocation, nil
}
