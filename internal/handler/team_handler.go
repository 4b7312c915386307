package handler

import (
	"net/http"

	"github.com/bagdasarian/resource-dashboard/internal/domain"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.teamService.ListTeams(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainTeamsToHTTP(teams))
}

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var req TeamRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	team, err := h.teamService.CreateTeam(r.Context(), &domain.Team{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, domainTeamToHTTP(team))
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	team, err := h.teamService.GetTeam(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainTeamToHTTP(team))
}

func (h *Handler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	var req TeamPatchRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	team, err := h.teamService.UpdateTeam(r.Context(), chi.URLParam(r, "id"), domain.TeamUpdate{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainTeamToHTTP(team))
}

func (h *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	if err := h.teamService.DeleteTeam(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetTeamRoster(w http.ResponseWriter, r *http.Request) {
	roster, err := h.teamService.GetRoster(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainRosterToHTTP(roster))
}
