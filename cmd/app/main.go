package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/bagdasarian/resource-dashboard/internal/config"
	"github.com/bagdasarian/resource-dashboard/internal/db"
	"github.com/bagdasarian/resource-dashboard/internal/handler"
	"github.com/bagdasarian/resource-dashboard/internal/handler/server"
	"github.com/bagdasarian/resource-dashboard/internal/logger"
	"github.com/bagdasarian/resource-dashboard/internal/repository/postgres"
	"github.com/bagdasarian/resource-dashboard/internal/service"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	log := logger.New(cfg.App.Env, cfg.App.LogLevel)
	defer log.Sync()

	database, err := db.NewPostgres(cfg)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.Close()
	log.Info("connected to database",
		zap.String("host", cfg.Database.Host),
		zap.String("dbname", cfg.Database.DBName),
	)

	teamRepo := postgres.NewTeamRepository(database)
	teamMemberRepo := postgres.NewTeamMemberRepository(database)
	workItemRepo := postgres.NewWorkItemRepository(database)
	allocationRepo := postgres.NewAllocationRepository(database)
	outOfOfficeRepo := postgres.NewOutOfOfficeRepository(database)
	timeEntryRepo := postgres.NewTimeEntryRepository(database)
	statsRepo := postgres.NewStatsRepository(database)

	services := handler.Services{
		Team:        service.NewTeamService(teamRepo, teamMemberRepo, allocationRepo, log),
		TeamMember:  service.NewTeamMemberService(teamMemberRepo, allocationRepo, log),
		WorkItem:    service.NewWorkItemService(workItemRepo, allocationRepo, log),
		Allocation:  service.NewAllocationService(allocationRepo, log),
		OutOfOffice: service.NewOutOfOfficeService(outOfOfficeRepo),
		TimeEntry:   service.NewTimeEntryService(timeEntryRepo, log),
		Stats:       service.NewStatsService(teamMemberRepo, allocationRepo, statsRepo),
	}

	h := handler.NewHandler(services, database, log)
	srv := server.NewServer(h, cfg.HTTP.Addr, log)

	go func() {
		if err := srv.Start(); err != nil {
			log.Fatal("server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}
}
