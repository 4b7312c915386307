package handler

import (
	"net/http"

	"github.com/bagdasarian/resource-dashboard/internal/domain"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) ListWorkItems(w http.ResponseWriter, r *http.Request) {
	var filter domain.WorkItemFilter
	if raw := queryString(r, "type"); raw != nil {
		itemType := domain.WorkItemType(*raw)
		filter.Type = &itemType
	}
	filter.Status = queryString(r, "status")
	filter.AssignedToID = queryString(r, "assignedToId")

	items, err := h.workItemService.ListWorkItems(r.Context(), filter)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainWorkItemsToHTTP(items))
}

// ListWorkItemsByAssignee отдает элементы, назначенные участнику
func (h *Handler) ListWorkItemsByAssignee(w http.ResponseWriter, r *http.Request) {
	assigneeID := chi.URLParam(r, "assigneeId")

	items, err := h.workItemService.ListWorkItems(r.Context(), domain.WorkItemFilter{AssignedToID: &assigneeID})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainWorkItemsToHTTP(items))
}

func (h *Handler) CreateWorkItem(w http.ResponseWriter, r *http.Request) {
	var req WorkItemRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	item, err := h.workItemService.CreateWorkItem(r.Context(), httpWorkItemToDomain(req))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, domainWorkItemToHTTP(item))
}

func (h *Handler) GetWorkItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.workItemService.GetWorkItem(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainWorkItemDetailToHTTP(item, h.now()))
}

func (h *Handler) UpdateWorkItem(w http.ResponseWriter, r *http.Request) {
	var req WorkItemPatchRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	item, err := h.workItemService.UpdateWorkItem(r.Context(), chi.URLParam(r, "id"), httpWorkItemPatchToDomain(req))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainWorkItemToHTTP(item))
}

func (h *Handler) DeleteWorkItem(w http.ResponseWriter, r *http.Request) {
	if err := h.workItemService.DeleteWorkItem(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetStatuses отдает словарь статусов для редактора
func (h *Handler) GetStatuses(w http.ResponseWriter, r *http.Request) {
	raw := queryString(r, "type")
	if raw == nil {
		h.handleError(w, r, domain.NewBadRequestError("type parameter is required"))
		return
	}

	itemType := domain.WorkItemType(*raw)
	if !itemType.IsValid() {
		h.handleError(w, r, domain.NewValidationError("type", "unknown work item type "+*raw))
		return
	}

	writeJSON(w, http.StatusOK, statusesToHTTP(itemType))
}
