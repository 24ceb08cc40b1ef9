package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/circleage/backend/internal/domain/providers"
)

// StreamHandler handles Server-Sent Events for real-time alert delivery
type StreamHandler struct {
	eventBus providers.EventBus
}

// NewStreamHandler creates a new alert stream handler
func NewStreamHandler(eventBus providers.EventBus) *StreamHandler {
	return &StreamHandler{eventBus: eventBus}
}

// StreamUserAlerts handles GET /api/users/{id}/alerts/stream. Family
// dashboards hold this open to see alerts as they fire.
func (h *StreamHandler) StreamUserAlerts(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")
	if userID == "" {
		respondWithError(w, http.StatusBadRequest, "user ID is required")
		return
	}

	h.stream(w, r, providers.GetUserChannel(userID))
}

// StreamAllAlerts handles GET /api/alerts/stream
func (h *StreamHandler) StreamAllAlerts(w http.ResponseWriter, r *http.Request) {
	h.stream(w, r, providers.EventChannelAlerts)
}

func (h *StreamHandler) stream(w http.ResponseWriter, r *http.Request, channel string) {
	if h.eventBus == nil {
		respondWithError(w, http.StatusServiceUnavailable, "alert streaming is not available")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		respondWithError(w, http.StatusInternalServerError, "streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	eventChan, err := h.eventBus.Subscribe(r.Context(), channel)
	if err != nil {
		log.Warn().Err(err).Str("channel", channel).Msg("Failed to subscribe to alert channel")
		respondWithError(w, http.StatusInternalServerError, "subscription failed")
		return
	}

	sendEvent(w, "connected", map[string]interface{}{
		"channel":   channel,
		"timestamp": time.Now(),
	})
	flusher.Flush()

	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
			sendEvent(w, "heartbeat", map[string]interface{}{
				"timestamp": time.Now(),
			})
			flusher.Flush()
		case event, ok := <-eventChan:
			if !ok {
				return
			}
			sendEvent(w, "alert", event)
			flusher.Flush()
		}
	}
}

// sendEvent writes one SSE frame
func sendEvent(w http.ResponseWriter, eventType string, data interface{}) {
	payload, err := json.Marshal(data)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to marshal SSE payload")
		return
	}
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", eventType, payload)
}
