package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/bagdasarian/resource-dashboard/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBExecutor - общий интерфейс *sql.DB и *sql.Tx
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type rowScanner interface {
	Scan(dest ...any) error
}

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgNumericOutOfRange   = "22003"
)

// parseID нормализует UUID; невалидный идентификатор означает, что записи нет
func parseID(id, resource string) (string, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", domain.NewNotFoundError(resource + " with id " + id)
	}
	return parsed.String(), nil
}

// translateError переводит ошибки драйвера в доменные
func translateError(err error, resource string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NewNotFoundError(resource)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			if strings.Contains(pgErr.ConstraintName, "email") {
				return domain.ErrEmailExists
			}
			return domain.NewConstraintError(resource + " violates unique constraint " + pgErr.ConstraintName)
		case pgForeignKeyViolation:
			return domain.NewConstraintError(resource + " references a record that does not exist")
		case pgCheckViolation:
			return domain.NewConstraintError(resource + " violates check constraint " + pgErr.ConstraintName)
		case pgNumericOutOfRange:
			return domain.NewConstraintError(resource + " has a numeric value out of range")
		}
	}

	return err
}

func nullableString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func timePtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time
	return &t
}
