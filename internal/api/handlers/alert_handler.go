package handlers

import (
	"net/http"
	"strconv"

	"github.com/circleage/backend/internal/application/services"
	"github.com/circleage/backend/internal/domain/entities"
)

// AlertHandler handles emergency alert HTTP requests
type AlertHandler struct {
	alerts *services.AlertService
}

// NewAlertHandler creates a new alert handler
func NewAlertHandler(alerts *services.AlertService) *AlertHandler {
	return &AlertHandler{alerts: alerts}
}

var alertTypes = map[entities.AlertType]struct{}{
	entities.AlertMissedMedication: {},
	entities.AlertManualSOS:        {},
	entities.AlertAbnormalReading:  {},
}

// TriggerAlert handles POST /api/alerts
func (h *AlertHandler) TriggerAlert(w http.ResponseWriter, r *http.Request) {
	var body struct {
		UserID    string `json:"user_id"`
		AlertType string `json:"alert_type"`
		Message   string `json:"message"`
	}
	if err := decodeJSON(r, &body); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.UserID == "" || body.Message == "" {
		respondWithError(w, http.StatusBadRequest, "user_id and message are required")
		return
	}
	alertType := entities.AlertType(body.AlertType)
	if body.AlertType == "" {
		alertType = entities.AlertManualSOS
	}
	if _, ok := alertTypes[alertType]; !ok {
		respondWithError(w, http.StatusBadRequest, "unknown alert type")
		return
	}

	result, err := h.alerts.TriggerAlert(r.Context(), body.UserID, alertType, body.Message)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}

// ListAlerts handles GET /api/users/{id}/alerts
func (h *AlertHandler) ListAlerts(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}

	alerts, err := h.alerts.ListHistory(r.Context(), r.PathValue("id"), limit)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"alerts": alerts,
		"count":  len(alerts),
	})
}
