package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/bagdasarian/resource-dashboard/internal/domain"
)

const workItemColumns = `
	w.id, w.title, w.description, w.type, w.priority, w.status,
	w.estimated_hours, w.actual_hours, w.due_date, w.assigned_to_id,
	m.name, m.avatar, w.created_at, w.updated_at
`

const workItemFrom = ` FROM work_items w LEFT JOIN team_members m ON m.id = w.assigned_to_id`

type workItemRepository struct {
	db *sql.DB
}

func NewWorkItemRepository(db *sql.DB) *workItemRepository {
	return &workItemRepository{db: db}
}

func (r *workItemRepository) Create(ctx context.Context, item *domain.WorkItem) error {
	query := `
		INSERT INTO work_items (title, description, type, priority, status, estimated_hours, due_date, assigned_to_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, actual_hours, created_at, updated_at
	`

	var updatedAt sql.NullTime
	err := r.db.QueryRowContext(
		ctx,
		query,
		item.Title,
		item.Description,
		string(item.Type),
		string(item.Priority),
		item.Status,
		item.EstimatedHours,
		nullableTime(item.DueDate),
		nullableString(item.AssignedToID),
		time.Now(),
	).Scan(&item.ID, &item.ActualHours, &item.CreatedAt, &updatedAt)
	if err != nil {
		return translateError(err, "work item")
	}
	item.UpdatedAt = timePtr(updatedAt)

	return nil
}

func (r *workItemRepository) GetByID(ctx context.Context, id string) (*domain.WorkItem, error) {
	dbID, err := parseID(id, "work item")
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + workItemColumns + workItemFrom + ` WHERE w.id = $1`

	item, err := scanWorkItem(r.db.QueryRowContext(ctx, query, dbID))
	if err != nil {
		return nil, translateError(err, "work item with id "+id)
	}

	return item, nil
}

func (r *workItemRepository) List(ctx context.Context, filter domain.WorkItemFilter) ([]*domain.WorkItem, error) {
	conditions := make([]string, 0, 3)
	args := make([]any, 0, 3)

	if filter.Type != nil {
		args = append(args, string(*filter.Type))
		conditions = append(conditions, fmt.Sprintf("w.type = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		conditions = append(conditions, fmt.Sprintf("w.status = $%d", len(args)))
	}
	if filter.AssignedToID != nil {
		args = append(args, *filter.AssignedToID)
		conditions = append(conditions, fmt.Sprintf("w.assigned_to_id = $%d", len(args)))
	}

	query := `SELECT ` + workItemColumns + workItemFrom
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY w.created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*domain.WorkItem, 0)
	for rows.Next() {
		item, err := scanWorkItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// Update перезаписывает все поля кроме actual_hours, которые ведут записи времени
func (r *workItemRepository) Update(ctx context.Context, item *domain.WorkItem) error {
	dbID, err := parseID(item.ID, "work item")
	if err != nil {
		return err
	}

	query := `
		UPDATE work_items
		SET title = $2, description = $3, type = $4, priority = $5, status = $6,
			estimated_hours = $7, due_date = $8, assigned_to_id = $9, updated_at = $10
		WHERE id = $1
		RETURNING actual_hours, created_at, updated_at
	`

	var updatedAt sql.NullTime
	err = r.db.QueryRowContext(
		ctx,
		query,
		dbID,
		item.Title,
		item.Description,
		string(item.Type),
		string(item.Priority),
		item.Status,
		item.EstimatedHours,
		nullableTime(item.DueDate),
		nullableString(item.AssignedToID),
		time.Now(),
	).Scan(&item.ActualHours, &item.CreatedAt, &updatedAt)
	if err != nil {
		return translateError(err, "work item with id "+item.ID)
	}
	item.UpdatedAt = timePtr(updatedAt)

	return nil
}

func (r *workItemRepository) Delete(ctx context.Context, id string) error {
	dbID, err := parseID(id, "work item")
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM time_entries WHERE work_item_id = $1`, dbID); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM allocations WHERE work_item_id = $1`, dbID); err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM work_items WHERE id = $1`, dbID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return domain.NewNotFoundError("work item with id " + id)
	}

	return tx.Commit()
}

func scanWorkItem(s rowScanner) (*domain.WorkItem, error) {
	item := &domain.WorkItem{}
	var (
		itemType       string
		priority       string
		dueDate        sql.NullTime
		assignedToID   sql.NullString
		assigneeName   sql.NullString
		assigneeAvatar sql.NullString
		updatedAt      sql.NullTime
	)
	err := s.Scan(
		&item.ID,
		&item.Title,
		&item.Description,
		&itemType,
		&priority,
		&item.Status,
		&item.EstimatedHours,
		&item.ActualHours,
		&dueDate,
		&assignedToID,
		&assigneeName,
		&assigneeAvatar,
		&item.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	item.Type = domain.WorkItemType(itemType)
	item.Priority = domain.Priority(priority)
	item.DueDate = timePtr(dueDate)
	item.AssignedToID = stringPtr(assignedToID)
	if assignedToID.Valid {
		item.AssignedTo = &domain.WorkItemAssignee{
			ID:     assignedToID.String,
			Name:   assigneeName.String,
			Avatar: stringPtr(assigneeAvatar),
		}
	}
	item.UpdatedAt = timePtr(updatedAt)

	return item, nil
}
