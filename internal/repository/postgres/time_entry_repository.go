package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/bagdasarian/resource-dashboard/internal/domain"
	"github.com/shopspring/decimal"
)

type timeEntryRepository struct {
	db *sql.DB
}

func NewTimeEntryRepository(db *sql.DB) *timeEntryRepository {
	return &timeEntryRepository{db: db}
}

// Create сохраняет запись и прибавляет ее часы к actual_hours рабочего элемента
func (r *timeEntryRepository) Create(ctx context.Context, entry *domain.TimeEntry) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now()
	query := `
		INSERT INTO time_entries (team_member_id, work_item_id, hours, description, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err = tx.QueryRowContext(
		ctx,
		query,
		entry.TeamMemberID,
		entry.WorkItemID,
		entry.Hours,
		entry.Description,
		entry.Date,
		now,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return translateError(err, "time entry")
	}

	if err := addActualHours(ctx, tx, entry.WorkItemID, entry.Hours, now); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *timeEntryRepository) List(ctx context.Context, filter domain.TimeEntryFilter) ([]*domain.TimeEntry, error) {
	conditions := make([]string, 0, 2)
	args := make([]any, 0, 2)

	if filter.TeamMemberID != nil {
		dbID, err := parseID(*filter.TeamMemberID, "team member")
		if err != nil {
			return nil, err
		}
		args = append(args, dbID)
		conditions = append(conditions, fmt.Sprintf("e.team_member_id = $%d", len(args)))
	}
	if filter.WorkItemID != nil {
		dbID, err := parseID(*filter.WorkItemID, "work item")
		if err != nil {
			return nil, err
		}
		args = append(args, dbID)
		conditions = append(conditions, fmt.Sprintf("e.work_item_id = $%d", len(args)))
	}

	query := `
		SELECT e.id, e.team_member_id, e.work_item_id, e.hours, e.description, e.date, e.created_at,
			m.name, w.title, w.type
		FROM time_entries e
		JOIN work_items w ON w.id = e.work_item_id
		JOIN team_members m ON m.id = e.team_member_id
	`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY e.date DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]*domain.TimeEntry, 0)
	for rows.Next() {
		entry := &domain.TimeEntry{}
		var itemType string
		err := rows.Scan(
			&entry.ID,
			&entry.TeamMemberID,
			&entry.WorkItemID,
			&entry.Hours,
			&entry.Description,
			&entry.Date,
			&entry.CreatedAt,
			&entry.TeamMemberName,
			&entry.WorkItemTitle,
			&itemType,
		)
		if err != nil {
			return nil, err
		}
		entry.WorkItemType = domain.WorkItemType(itemType)
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// Delete удаляет запись и вычитает ее часы из actual_hours
func (r *timeEntryRepository) Delete(ctx context.Context, id string) error {
	dbID, err := parseID(id, "time entry")
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var (
		workItemID string
		hours      decimal.Decimal
	)
	err = tx.QueryRowContext(ctx, `
		DELETE FROM time_entries
		WHERE id = $1
		RETURNING work_item_id, hours
	`, dbID).Scan(&workItemID, &hours)
	if err != nil {
		return translateError(err, "time entry with id "+id)
	}

	if err := addActualHours(ctx, tx, workItemID, hours.Neg(), time.Now()); err != nil {
		return err
	}

	return tx.Commit()
}

func addActualHours(ctx context.Context, tx *sql.Tx, workItemID string, delta decimal.Decimal, now time.Time) error {
	result, err := tx.ExecContext(ctx, `
		UPDATE work_items
		SET actual_hours = GREATEST(actual_hours + $2, 0), updated_at = $3
		WHERE id = $1
	`, workItemID, delta, now)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return domain.NewNotFoundError("work item with id " + workItemID)
	}

	return nil
}
