package handlers

import (
	"net/http"

	"github.com/circleage/backend/internal/application/services"
	"github.com/circleage/backend/internal/domain/entities"
)

// ReviewHandler handles review and report HTTP requests
type ReviewHandler struct {
	reviews *services.ReviewService
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(reviews *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

// CreateReview handles POST /api/reviews
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var review entities.Review
	if err := decodeJSON(r, &review); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.reviews.Create(r.Context(), &review); err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, review)
}

// ListReviews handles GET /api/reviews?facility={name}
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	facility := r.URL.Query().Get("facility")
	if facility == "" {
		respondWithError(w, http.StatusBadRequest, "facility parameter is required")
		return
	}

	reviews, err := h.reviews.ListByFacility(r.Context(), facility)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"reviews": reviews,
		"count":   len(reviews),
	})
}

// ReportReview handles POST /api/reviews/{id}/report
func (h *ReviewHandler) ReportReview(w http.ResponseWriter, r *http.Request) {
	var body struct {
		UserID string `json:"user_id"`
		Reason string `json:"reason"`
	}
	if err := decodeJSON(r, &body); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	report := &entities.Report{
		ReviewID: r.PathValue("id"),
		UserID:   body.UserID,
		Reason:   body.Reason,
	}
	if err := h.reviews.Report(r.Context(), report); err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, report)
}
