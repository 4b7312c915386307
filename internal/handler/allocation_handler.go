package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) CreateAllocation(w http.ResponseWriter, r *http.Request) {
	var req AllocationRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	newAllocation, err := httpAllocationToDomain(req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	allocation, err := h.allocationService.CreateAllocation(r.Context(), newAllocation)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, domainAllocationToHTTP(allocation, h.now()))
}

func (h *Handler) GetAllocation(w http.ResponseWriter, r *http.Request) {
	allocation, err := h.allocationService.GetAllocation(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainAllocationToHTTP(allocation, h.now()))
}

func (h *Handler) UpdateAllocation(w http.ResponseWriter, r *http.Request) {
	var req AllocationPatchRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	allocation, err := h.allocationService.UpdateAllocation(r.Context(), chi.URLParam(r, "id"), httpAllocationPatchToDomain(req))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainAllocationToHTTP(allocation, h.now()))
}

func (h *Handler) DeleteAllocation(w http.ResponseWriter, r *http.Request) {
	if err := h.allocationService.DeleteAllocation(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
