package handler

import (
	"net/http"
	"strconv"

	"github.com/bagdasarian/resource-dashboard/internal/domain"
	"github.com/bagdasarian/resource-dashboard/internal/repository"
	"github.com/go-chi/chi/v5"
)

// ListTeamMembers по умолчанию отдает только активных; ?includeInactive=true отключает фильтр
func (h *Handler) ListTeamMembers(w http.ResponseWriter, r *http.Request) {
	filter := repository.TeamMemberFilter{
		TeamID:     queryString(r, "teamId"),
		ActiveOnly: true,
	}
	if raw := queryString(r, "includeInactive"); raw != nil {
		includeInactive, err := strconv.ParseBool(*raw)
		if err != nil {
			h.handleError(w, r, domain.NewBadRequestError("includeInactive must be a boolean"))
			return
		}
		filter.ActiveOnly = !includeInactive
	}

	members, err := h.teamMemberService.ListTeamMembers(r.Context(), filter)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainMembersWithStatsToHTTP(members))
}

func (h *Handler) CreateTeamMember(w http.ResponseWriter, r *http.Request) {
	var req TeamMemberRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	member, err := h.teamMemberService.CreateTeamMember(r.Context(), httpTeamMemberToDomain(req))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, domainTeamMemberToHTTP(member))
}

func (h *Handler) GetTeamMember(w http.ResponseWriter, r *http.Request) {
	member, err := h.teamMemberService.GetTeamMember(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainMemberWithStatsToHTTP(member))
}

func (h *Handler) UpdateTeamMember(w http.ResponseWriter, r *http.Request) {
	var req TeamMemberPatchRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	member, err := h.teamMemberService.UpdateTeamMember(r.Context(), chi.URLParam(r, "id"), httpTeamMemberPatchToDomain(req))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainTeamMemberToHTTP(member))
}

// DeleteTeamMember деактивирует участника, запись и аллокации остаются
func (h *Handler) DeleteTeamMember(w http.ResponseWriter, r *http.Request) {
	if err := h.teamMemberService.DeactivateTeamMember(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetTeamMemberAllocations(w http.ResponseWriter, r *http.Request) {
	allocations, err := h.teamMemberService.GetAllocations(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainAllocationsToHTTP(allocations, h.now()))
}
