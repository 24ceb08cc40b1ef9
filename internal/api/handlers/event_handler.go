package handlers

import (
	"net/http"
	"strconv"

	"github.com/circleage/backend/internal/application/services"
	"github.com/circleage/backend/internal/domain/entities"
)

// EventHandler handles community event HTTP requests
type EventHandler struct {
	events *services.EventService
}

// NewEventHandler creates a new community event handler
func NewEventHandler(events *services.EventService) *EventHandler {
	return &EventHandler{events: events}
}

// CreateEvent handles POST /api/events
func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var event entities.CommunityEvent
	if err := decodeJSON(r, &event); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.events.Create(r.Context(), &event); err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, event)
}

// GetEvent handles GET /api/events/{id}
func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	event, err := h.events.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	attendees, err := h.events.CountAttendees(r.Context(), event.ID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"event":     event,
		"attendees": attendees,
	})
}

// ListEvents handles GET /api/events?limit=
func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}

	events, err := h.events.ListUpcoming(r.Context(), limit)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"events": events,
		"count":  len(events),
	})
}

// JoinEvent handles POST /api/events/{id}/join
func (h *EventHandler) JoinEvent(w http.ResponseWriter, r *http.Request) {
	var body struct {
		UserID string `json:"user_id"`
	}
	if err := decodeJSON(r, &body); err != nil || body.UserID == "" {
		respondWithError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	if err := h.events.Join(r.Context(), r.PathValue("id"), body.UserID); err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]string{"status": "joined"})
}

// LeaveEvent handles DELETE /api/events/{id}/join
func (h *EventHandler) LeaveEvent(w http.ResponseWriter, r *http.Request) {
	var body struct {
		UserID string `json:"user_id"`
	}
	if err := decodeJSON(r, &body); err != nil || body.UserID == "" {
		respondWithError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	if err := h.events.Leave(r.Context(), r.PathValue("id"), body.UserID); err != nil {
		respondWithServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
