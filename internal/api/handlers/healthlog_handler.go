package handlers

import (
	"net/http"
	"strconv"

	"github.com/circleage/backend/internal/application/services"
	"github.com/circleage/backend/internal/domain/entities"
)

// HealthLogHandler handles health data log HTTP requests
type HealthLogHandler struct {
	logs *services.HealthLogService
}

// NewHealthLogHandler creates a new health log handler
func NewHealthLogHandler(logs *services.HealthLogService) *HealthLogHandler {
	return &HealthLogHandler{logs: logs}
}

// CreateHealthLog handles POST /api/health-logs
func (h *HealthLogHandler) CreateHealthLog(w http.ResponseWriter, r *http.Request) {
	var log entities.HealthLog
	if err := decodeJSON(r, &log); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.logs.Create(r.Context(), &log); err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, log)
}

// ListHealthLogs handles GET /api/users/{id}/health-logs?type=&limit=
func (h *HealthLogHandler) ListHealthLogs(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	limit := 0
	if v := query.Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}

	logs, err := h.logs.ListByUser(r.Context(), r.PathValue("id"), entities.HealthLogType(query.Get("type")), limit)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"logs":  logs,
		"count": len(logs),
	})
}
