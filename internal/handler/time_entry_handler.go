package handler

import (
	"net/http"

	"github.com/bagdasarian/resource-dashboard/internal/domain"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) ListTimeEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := h.timeEntryService.ListTimeEntries(r.Context(), domain.TimeEntryFilter{
		TeamMemberID: queryString(r, "teamMemberId"),
		WorkItemID:   queryString(r, "workItemId"),
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainTimeEntriesToHTTP(entries))
}

func (h *Handler) CreateTimeEntry(w http.ResponseWriter, r *http.Request) {
	var req TimeEntryRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	entry, err := h.timeEntryService.CreateTimeEntry(r.Context(), httpTimeEntryToDomain(req))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, domainTimeEntryToHTTP(entry))
}

func (h *Handler) DeleteTimeEntry(w http.ResponseWriter, r *http.Request) {
	if err := h.timeEntryService.DeleteTimeEntry(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
