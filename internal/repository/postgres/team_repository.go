package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/bagdasarian/resource-dashboard/internal/domain"
)

type teamRepository struct {
	db *sql.DB
}

func NewTeamRepository(db *sql.DB) *teamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) Create(ctx context.Context, team *domain.Team) error {
	query := `
		INSERT INTO teams (name, description, created_at)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	var updatedAt sql.NullTime
	err := r.db.QueryRowContext(ctx, query, team.Name, team.Description, time.Now()).
		Scan(&team.ID, &team.CreatedAt, &updatedAt)
	if err != nil {
		return translateError(err, "team")
	}
	team.UpdatedAt = timePtr(updatedAt)

	return nil
}

func (r *teamRepository) GetByID(ctx context.Context, id string) (*domain.Team, error) {
	dbID, err := parseID(id, "team")
	if err != nil {
		return nil, err
	}

	query := `
		SELECT t.id, t.name, t.description,
			(SELECT COUNT(*) FROM team_members m WHERE m.team_id = t.id AND m.is_active = TRUE),
			t.created_at, t.updated_at
		FROM teams t
		WHERE t.id = $1
	`

	team, err := scanTeam(r.db.QueryRowContext(ctx, query, dbID))
	if err != nil {
		return nil, translateError(err, "team with id "+id)
	}

	return team, nil
}

func (r *teamRepository) List(ctx context.Context) ([]*domain.Team, error) {
	query := `
		SELECT t.id, t.name, t.description,
			(SELECT COUNT(*) FROM team_members m WHERE m.team_id = t.id AND m.is_active = TRUE),
			t.created_at, t.updated_at
		FROM teams t
		ORDER BY t.name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := make([]*domain.Team, 0)
	for rows.Next() {
		team, err := scanTeam(rows)
		if err != nil {
			return nil, err
		}
		teams = append(teams, team)
	}

	return teams, rows.Err()
}

func (r *teamRepository) Update(ctx context.Context, team *domain.Team) error {
	dbID, err := parseID(team.ID, "team")
	if err != nil {
		return err
	}

	query := `
		UPDATE teams
		SET name = $2, description = $3, updated_at = $4
		WHERE id = $1
		RETURNING created_at, updated_at
	`

	var updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, dbID, team.Name, team.Description, time.Now()).
		Scan(&team.CreatedAt, &updatedAt)
	if err != nil {
		return translateError(err, "team with id "+team.ID)
	}
	team.UpdatedAt = timePtr(updatedAt)

	return nil
}

// Delete отвязывает участников и удаляет команду в одной транзакции.
// Участники остаются активными, их аллокации не трогаются.
func (r *teamRepository) Delete(ctx context.Context, id string) error {
	dbID, err := parseID(id, "team")
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		UPDATE team_members
		SET team_id = NULL, updated_at = $2
		WHERE team_id = $1
	`, dbID, time.Now())
	if err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM teams WHERE id = $1`, dbID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return domain.NewNotFoundError("team with id " + id)
	}

	return tx.Commit()
}

func scanTeam(s rowScanner) (*domain.Team, error) {
	team := &domain.Team{}
	var updatedAt sql.NullTime
	err := s.Scan(
		&team.ID,
		&team.Name,
		&team.Description,
		&team.MemberCount,
		&team.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}
	team.UpdatedAt = timePtr(updatedAt)
	return team, nil
}
