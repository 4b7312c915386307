//go:build integration
// +build integration

package integration

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bagdasarian/resource-dashboard/internal/repository/postgres"
	"github.com/bagdasarian/resource-dashboard/internal/service"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

func setupTestDB(t *testing.T) *sql.DB {
	ctx := context.Background()

	// Создаём контейнер Postgres через testcontainers
	postgresContainer, err := tcpostgres.Run(ctx,
		"postgres:17.7",
		tcpostgres.WithDatabase("test_db"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("pgx", connStr)
	require.NoError(t, err)
	require.NoError(t, db.PingContext(ctx))

	applyMigrations(t, db)

	t.Cleanup(func() {
		db.Close()
		require.NoError(t, postgresContainer.Terminate(ctx))
	})

	return db
}

func applyMigrations(t *testing.T, db *sql.DB) {
	var migrationSQL []byte
	var err error

	paths := []string{
		filepath.Join("..", "..", "migrations", "000001_init.up.sql"),
		filepath.Join("migrations", "000001_init.up.sql"),
		filepath.Join("..", "migrations", "000001_init.up.sql"),
	}

	for _, path := range paths {
		migrationSQL, err = os.ReadFile(path)
		if err == nil {
			break
		}
	}
	require.NoError(t, err, "не удалось прочитать файл миграции migrations/000001_init.up.sql")

	_, err = db.Exec(string(migrationSQL))
	require.NoError(t, err, "не удалось применить миграцию")
}

type stack struct {
	teams       service.TeamService
	members     service.TeamMemberService
	workItems   service.WorkItemService
	allocations service.AllocationService
	outOfOffice service.OutOfOfficeService
	timeEntries service.TimeEntryService
	stats       service.StatsService
}

func newStack(db *sql.DB) *stack {
	logger := zap.NewNop()

	teamRepo := postgres.NewTeamRepository(db)
	memberRepo := postgres.NewTeamMemberRepository(db)
	workItemRepo := postgres.NewWorkItemRepository(db)
	allocationRepo := postgres.NewAllocationRepository(db)

	return &stack{
		teams:       service.NewTeamService(teamRepo, memberRepo, allocationRepo, logger),
		members:     service.NewTeamMemberService(memberRepo, allocationRepo, logger),
		workItems:   service.NewWorkItemService(workItemRepo, allocationRepo, logger),
		allocations: service.NewAllocationService(allocationRepo, logger),
		outOfOffice: service.NewOutOfOfficeService(postgres.NewOutOfOfficeRepository(db)),
		timeEntries: service.NewTimeEntryService(postgres.NewTimeEntryRepository(db), logger),
		stats:       service.NewStatsService(memberRepo, allocationRepo, postgres.NewStatsRepository(db)),
	}
}
