package handlers

import (
	"net/http"

	"github.com/circleage/backend/internal/application/services"
	"github.com/circleage/backend/internal/domain/entities"
)

// MedicationHandler handles medication and adherence HTTP requests
type MedicationHandler struct {
	medications *services.MedicationService
	adherence   *services.AdherenceService
}

// NewMedicationHandler creates a new medication handler
func NewMedicationHandler(medications *services.MedicationService, adherence *services.AdherenceService) *MedicationHandler {
	return &MedicationHandler{
		medications: medications,
		adherence:   adherence,
	}
}

// CreateMedication handles POST /api/medications
func (h *MedicationHandler) CreateMedication(w http.ResponseWriter, r *http.Request) {
	var medication entities.Medication
	if err := decodeJSON(r, &medication); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.medications.Create(r.Context(), &medication); err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, medication)
}

// GetMedication handles GET /api/medications/{id}
func (h *MedicationHandler) GetMedication(w http.ResponseWriter, r *http.Request) {
	medication, err := h.medications.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, medication)
}

// ListMedications handles GET /api/users/{id}/medications
func (h *MedicationHandler) ListMedications(w http.ResponseWriter, r *http.Request) {
	medications, err := h.medications.ListActive(r.Context(), r.PathValue("id"))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"medications": medications,
		"count":       len(medications),
	})
}

// UpdateMedication handles PUT /api/medications/{id}
func (h *MedicationHandler) UpdateMedication(w http.ResponseWriter, r *http.Request) {
	var medication entities.Medication
	if err := decodeJSON(r, &medication); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	medication.ID = r.PathValue("id")

	if err := h.medications.Update(r.Context(), &medication); err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, medication)
}

// DeleteMedication handles DELETE /api/medications/{id}
func (h *MedicationHandler) DeleteMedication(w http.ResponseWriter, r *http.Request) {
	if err := h.medications.Deactivate(r.Context(), r.PathValue("id")); err != nil {
		respondWithServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// LogDose handles POST /api/medications/{id}/logs
func (h *MedicationHandler) LogDose(w http.ResponseWriter, r *http.Request) {
	var body struct {
		UserID string `json:"user_id"`
		Status string `json:"status"`
	}
	if err := decodeJSON(r, &body); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.medications.LogDose(r.Context(), r.PathValue("id"), body.UserID, entities.MedicationLogStatus(body.Status))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, entry)
}

// CheckAdherence handles GET /api/users/{id}/adherence
func (h *MedicationHandler) CheckAdherence(w http.ResponseWriter, r *http.Request) {
	overdue, err := h.adherence.CheckUser(r.Context(), r.PathValue("id"))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"overdue": overdue,
		"count":   len(overdue),
	})
}
