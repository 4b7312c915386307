package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bagdasarian/resource-dashboard/internal/domain"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

const codeInternal = "INTERNAL_ERROR"

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		writeJSON(w, getStatusCode(domainErr.Code), ErrorResponse{
			Error: ErrorDetail{
				Code:    domainErr.Code,
				Message: domainErr.Message,
				Field:   domainErr.Field,
			},
		})
		return
	}

	h.logger.Error("request failed",
		zap.Error(err),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.String("request_id", middleware.GetReqID(r.Context())),
	)

	writeJSON(w, http.StatusInternalServerError, ErrorResponse{
		Error: ErrorDetail{
			Code:    codeInternal,
			Message: "internal server error",
		},
	})
}

func getStatusCode(errorCode string) int {
	switch errorCode {
	case domain.CodeValidation:
		return http.StatusUnprocessableEntity
	case domain.CodeBadRequest:
		return http.StatusBadRequest
	case domain.CodeConstraint:
		return http.StatusConflict
	case domain.CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}
