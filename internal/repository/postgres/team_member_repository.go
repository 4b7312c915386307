package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/bagdasarian/resource-dashboard/internal/domain"
	"github.com/bagdasarian/resource-dashboard/internal/repository"
)

const teamMemberColumns = `
	m.id, m.name, m.role, m.email, m.team_id, COALESCE(t.name, ''), m.skills,
	m.weekly_hours, m.avatar, m.is_active, m.created_at, m.updated_at
`

type teamMemberRepository struct {
	executor DBExecutor
}

func NewTeamMemberRepository(db *sql.DB) *teamMemberRepository {
	return &teamMemberRepository{executor: db}
}

func (r *teamMemberRepository) Create(ctx context.Context, member *domain.TeamMember) error {
	skills, err := marshalSkills(member.Skills)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO team_members (name, role, email, team_id, skills, weekly_hours, avatar, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`

	var updatedAt sql.NullTime
	err = r.executor.QueryRowContext(
		ctx,
		query,
		member.Name,
		member.Role,
		member.Email,
		nullableString(member.TeamID),
		skills,
		member.WeeklyHours,
		nullableString(member.Avatar),
		member.IsActive,
		time.Now(),
	).Scan(&member.ID, &member.CreatedAt, &updatedAt)
	if err != nil {
		return translateError(err, "team member")
	}
	member.UpdatedAt = timePtr(updatedAt)

	return nil
}

func (r *teamMemberRepository) GetByID(ctx context.Context, id string) (*domain.TeamMember, error) {
	dbID, err := parseID(id, "team member")
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + teamMemberColumns + `
		FROM team_members m
		LEFT JOIN teams t ON m.team_id = t.id
		WHERE m.id = $1
	`

	member, err := scanTeamMember(r.executor.QueryRowContext(ctx, query, dbID))
	if err != nil {
		return nil, translateError(err, "team member with id "+id)
	}

	return member, nil
}

func (r *teamMemberRepository) List(ctx context.Context, filter repository.TeamMemberFilter) ([]*domain.TeamMember, error) {
	conditions := make([]string, 0, 2)
	args := make([]any, 0, 1)

	if filter.ActiveOnly {
		conditions = append(conditions, "m.is_active = TRUE")
	}
	if filter.TeamID != nil {
		teamID, err := parseID(*filter.TeamID, "team")
		if err != nil {
			return nil, err
		}
		args = append(args, teamID)
		conditions = append(conditions, fmt.Sprintf("m.team_id = $%d", len(args)))
	}

	query := `SELECT ` + teamMemberColumns + `
		FROM team_members m
		LEFT JOIN teams t ON m.team_id = t.id
	`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY m.name"

	rows, err := r.executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make([]*domain.TeamMember, 0)
	for rows.Next() {
		member, err := scanTeamMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}

	return members, rows.Err()
}

// Update перезаписывает строку целиком; слияние частичных изменений делает сервис
func (r *teamMemberRepository) Update(ctx context.Context, member *domain.TeamMember) error {
	dbID, err := parseID(member.ID, "team member")
	if err != nil {
		return err
	}

	skills, err := marshalSkills(member.Skills)
	if err != nil {
		return err
	}

	query := `
		UPDATE team_members
		SET name = $2, role = $3, email = $4, team_id = $5, skills = $6,
			weekly_hours = $7, avatar = $8, is_active = $9, updated_at = $10
		WHERE id = $1
		RETURNING created_at, updated_at
	`

	var updatedAt sql.NullTime
	err = r.executor.QueryRowContext(
		ctx,
		query,
		dbID,
		member.Name,
		member.Role,
		member.Email,
		nullableString(member.TeamID),
		skills,
		member.WeeklyHours,
		nullableString(member.Avatar),
		member.IsActive,
		time.Now(),
	).Scan(&member.CreatedAt, &updatedAt)
	if err != nil {
		return translateError(err, "team member with id "+member.ID)
	}
	member.UpdatedAt = timePtr(updatedAt)

	return nil
}

func (r *teamMemberRepository) SetIsActive(ctx context.Context, id string, isActive bool) error {
	dbID, err := parseID(id, "team member")
	if err != nil {
		return err
	}

	query := `
		UPDATE team_members
		SET is_active = $2, updated_at = $3
		WHERE id = $1
	`

	result, err := r.executor.ExecContext(ctx, query, dbID, isActive, time.Now())
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return domain.NewNotFoundError("team member with id " + id)
	}

	return nil
}

func scanTeamMember(s rowScanner) (*domain.TeamMember, error) {
	member := &domain.TeamMember{}
	var (
		teamID    sql.NullString
		avatar    sql.NullString
		skills    []byte
		updatedAt sql.NullTime
	)
	err := s.Scan(
		&member.ID,
		&member.Name,
		&member.Role,
		&member.Email,
		&teamID,
		&member.TeamName,
		&skills,
		&member.WeeklyHours,
		&avatar,
		&member.IsActive,
		&member.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	member.TeamID = stringPtr(teamID)
	member.Avatar = stringPtr(avatar)
	member.UpdatedAt = timePtr(updatedAt)

	member.Skills = []string{}
	if len(skills) > 0 {
		if err := json.Unmarshal(skills, &member.Skills); err != nil {
			return nil, fmt.Errorf("decode skills: %w", err)
		}
	}

	return member, nil
}

func marshalSkills(skills []string) (string, error) {
	if skills == nil {
		skills = []string{}
	}
	data, err := json.Marshal(skills)
	if err != nil {
		return "", fmt.Errorf("encode skills: %w", err)
	}
	return string(data), nil
}
