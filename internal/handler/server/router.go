package server

import (
	"net/http"

	"github.com/bagdasarian/resource-dashboard/internal/handler"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

func NewRouter(h *handler.Handler, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/health", h.Health)

	r.Route("/api", func(r chi.Router) {
		r.Route("/teams", func(r chi.Router) {
			r.Get("/", h.ListTeams)
			r.Post("/", h.CreateTeam)
			r.Get("/{id}", h.GetTeam)
			r.Patch("/{id}", h.UpdateTeam)
			r.Delete("/{id}", h.DeleteTeam)
			r.Get("/{id}/roster", h.GetTeamRoster)
		})

		r.Route("/team-members", func(r chi.Router) {
			r.Get("/", h.ListTeamMembers)
			r.Post("/", h.CreateTeamMember)
			r.Get("/{id}", h.GetTeamMember)
			r.Patch("/{id}", h.UpdateTeamMember)
			r.Delete("/{id}", h.DeleteTeamMember)
			r.Get("/{id}/allocations", h.GetTeamMemberAllocations)
		})

		r.Route("/work-items", func(r chi.Router) {
			r.Get("/", h.ListWorkItems)
			r.Post("/", h.CreateWorkItem)
			r.Get("/assignee/{assigneeId}", h.ListWorkItemsByAssignee)
			r.Get("/{id}", h.GetWorkItem)
			r.Patch("/{id}", h.UpdateWorkItem)
			r.Delete("/{id}", h.DeleteWorkItem)
		})

		r.Route("/allocations", func(r chi.Router) {
			r.Post("/", h.CreateAllocation)
			r.Get("/{id}", h.GetAllocation)
			r.Patch("/{id}", h.UpdateAllocation)
			r.Delete("/{id}", h.DeleteAllocation)
		})

		r.Route("/out-of-office", func(r chi.Router) {
			r.Get("/", h.ListOutOfOffice)
			r.Post("/", h.CreateOutOfOffice)
			r.Delete("/{id}", h.DeleteOutOfOffice)
		})

		r.Route("/time-entries", func(r chi.Router) {
			r.Get("/", h.ListTimeEntries)
			r.Post("/", h.CreateTimeEntry)
			r.Delete("/{id}", h.DeleteTimeEntry)
		})

		r.Get("/stats", h.GetStats)
		r.Get("/statuses", h.GetStatuses)
	})

	return r
}
