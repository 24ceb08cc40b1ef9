package handlers

import (
	"net/http"

	"github.com/circleage/backend/internal/application/services"
	"github.com/circleage/backend/internal/domain/entities"
)

// ContactHandler handles emergency contact HTTP requests
type ContactHandler struct {
	contacts *services.ContactService
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contacts *services.ContactService) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

// CreateContact handles POST /api/contacts
func (h *ContactHandler) CreateContact(w http.ResponseWriter, r *http.Request) {
	var contact entities.EmergencyContact
	if err := decodeJSON(r, &contact); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.contacts.Create(r.Context(), &contact); err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, contact)
}

// GetContact handles GET /api/contacts/{id}
func (h *ContactHandler) GetContact(w http.ResponseWriter, r *http.Request) {
	contact, err := h.contacts.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, contact)
}

// ListContacts handles GET /api/users/{id}/contacts
func (h *ContactHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.contacts.ListActive(r.Context(), r.PathValue("id"))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"contacts": contacts,
		"count":    len(contacts),
	})
}

// UpdateContact handles PUT /api/contacts/{id}
func (h *ContactHandler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	var contact entities.EmergencyContact
	if err := decodeJSON(r, &contact); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	contact.ID = r.PathValue("id")

	if err := h.contacts.Update(r.Context(), &contact); err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, contact)
}

// DeleteContact handles DELETE /api/contacts/{id}
func (h *ContactHandler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	if err := h.contacts.Deactivate(r.Context(), r.PathValue("id")); err != nil {
		respondWithServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
