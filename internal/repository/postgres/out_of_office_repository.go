package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/bagdasarian/resource-dashboard/internal/domain"
)

type outOfOfficeRepository struct {
	executor DBExecutor
}

func NewOutOfOfficeRepository(db *sql.DB) *outOfOfficeRepository {
	return &outOfOfficeRepository{executor: db}
}

func (r *outOfOfficeRepository) Create(ctx context.Context, entry *domain.OutOfOffice) error {
	query := `
		INSERT INTO out_of_office (team_member_id, start_date, end_date, reason, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.executor.QueryRowContext(
		ctx,
		query,
		entry.TeamMemberID,
		entry.StartDate,
		entry.EndDate,
		entry.Reason,
		time.Now(),
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return translateError(err, "out of office entry")
	}

	return nil
}

func (r *outOfOfficeRepository) List(ctx context.Context, teamMemberID *string) ([]*domain.OutOfOffice, error) {
	query := `
		SELECT id, team_member_id, start_date, end_date, reason, created_at
		FROM out_of_office
	`
	args := make([]any, 0, 1)
	if teamMemberID != nil {
		dbID, err := parseID(*teamMemberID, "team member")
		if err != nil {
			return nil, err
		}
		query += ` WHERE team_member_id = $1`
		args = append(args, dbID)
	}
	query += ` ORDER BY start_date DESC`

	rows, err := r.executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]*domain.OutOfOffice, 0)
	for rows.Next() {
		entry := &domain.OutOfOffice{}
		err := rows.Scan(
			&entry.ID,
			&entry.TeamMemberID,
			&entry.StartDate,
			&entry.EndDate,
			&entry.Reason,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

func (r *outOfOfficeRepository) Delete(ctx context.Context, id string) error {
	dbID, err := parseID(id, "out of office entry")
	if err != nil {
		return err
	}

	result, err := r.executor.ExecContext(ctx, `DELETE FROM out_of_office WHERE id = $1`, dbID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return domain.NewNotFoundError("out of office entry with id " + id)
	}

	return nil
}
