package handler

import (
	"context"
	"time"

	"github.com/bagdasarian/resource-dashboard/internal/service"
	"go.uber.org/zap"
)

// Pinger проверяет доступность хранилища, *sql.DB подходит
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Services struct {
	Team        service.TeamService
	TeamMember  service.TeamMemberService
	WorkItem    service.WorkItemService
	Allocation  service.AllocationService
	OutOfOffice service.OutOfOfficeService
	TimeEntry   service.TimeEntryService
	Stats       service.StatsService
}

type Handler struct {
	teamService        service.TeamService
	teamMemberService  service.TeamMemberService
	workItemService    service.WorkItemService
	allocationService  service.AllocationService
	outOfOfficeService service.OutOfOfficeService
	timeEntryService   service.TimeEntryService
	statsService       service.StatsService
	db                 Pinger
	logger             *zap.Logger
	now                func() time.Time
}

func NewHandler(services Services, db Pinger, logger *zap.Logger) *Handler {
	return &Handler{
		teamService:        services.Team,
		teamMemberService:  services.TeamMember,
		workItemService:    services.WorkItem,
		allocationService:  services.Allocation,
		outOfOfficeService: services.OutOfOffice,
		timeEntryService:   services.TimeEntry,
		statsService:       services.Stats,
		db:                 db,
		logger:             logger,
		now:                time.Now,
	}
}
