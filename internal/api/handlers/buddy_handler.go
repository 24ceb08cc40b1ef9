package handlers

import (
	"net/http"

	"github.com/circleage/backend/internal/application/services"
	"github.com/circleage/backend/internal/domain/entities"
)

// BuddyHandler handles buddy-matching HTTP requests
type BuddyHandler struct {
	buddies *services.BuddyService
}

// NewBuddyHandler creates a new buddy handler
func NewBuddyHandler(buddies *services.BuddyService) *BuddyHandler {
	return &BuddyHandler{buddies: buddies}
}

// UpsertProfile handles PUT /api/users/{id}/buddy-profile
func (h *BuddyHandler) UpsertProfile(w http.ResponseWriter, r *http.Request) {
	var profile entities.BuddyProfile
	if err := decodeJSON(r, &profile); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	profile.UserID = r.PathValue("id")

	if err := h.buddies.Upsert(r.Context(), &profile); err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, profile)
}

// GetProfile handles GET /api/users/{id}/buddy-profile
func (h *BuddyHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.buddies.GetByUser(r.Context(), r.PathValue("id"))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, profile)
}

// DeleteProfile handles DELETE /api/users/{id}/buddy-profile
func (h *BuddyHandler) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	if err := h.buddies.Deactivate(r.Context(), r.PathValue("id")); err != nil {
		respondWithServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetMatches handles GET /api/users/{id}/buddy-matches
func (h *BuddyHandler) GetMatches(w http.ResponseWriter, r *http.Request) {
	matches, err := h.buddies.Match(r.Context(), r.PathValue("id"))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"matches": matches,
		"count":   len(matches),
	})
}
