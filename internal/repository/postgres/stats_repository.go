package postgres

import (
	"context"
	"database/sql"

	"github.com/bagdasarian/resource-dashboard/internal/domain"
)

type statsRepository struct {
	executor DBExecutor
}

func NewStatsRepository(db *sql.DB) *statsRepository {
	return &statsRepository{executor: db}
}

func (r *statsRepository) GetActualHoursByType(ctx context.Context) ([]*domain.WorkItemTypeHours, error) {
	query := `
		SELECT type, COALESCE(SUM(actual_hours), 0) AS total_hours
		FROM work_items
		GROUP BY type
		ORDER BY type
	`

	rows, err := r.executor.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := make([]*domain.WorkItemTypeHours, 0)
	for rows.Next() {
		stat := &domain.WorkItemTypeHours{}
		var itemType string
		if err := rows.Scan(&itemType, &stat.Hours); err != nil {
			return nil, err
		}
		stat.Type = domain.WorkItemType(itemType)
		stats = append(stats, stat)
	}

	return stats, rows.Err()
}
