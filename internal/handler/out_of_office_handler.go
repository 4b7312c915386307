package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) ListOutOfOffice(w http.ResponseWriter, r *http.Request) {
	entries, err := h.outOfOfficeService.ListOutOfOffice(r.Context(), queryString(r, "teamMemberId"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainOutOfOfficeListToHTTP(entries))
}

func (h *Handler) CreateOutOfOffice(w http.ResponseWriter, r *http.Request) {
	var req OutOfOfficeRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	entry, err := h.outOfOfficeService.CreateOutOfOffice(r.Context(), httpOutOfOfficeToDomain(req))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, domainOutOfOfficeToHTTP(entry))
}

func (h *Handler) DeleteOutOfOffice(w http.ResponseWriter, r *http.Request) {
	if err := h.outOfOfficeService.DeleteOutOfOffice(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
