package handlers

import (
	"net/http"

	"github.com/circleage/backend/internal/application/services"
	"github.com/circleage/backend/internal/domain/entities"
)

// BookmarkHandler handles facility bookmark HTTP requests
type BookmarkHandler struct {
	bookmarks *services.BookmarkService
}

// NewBookmarkHandler creates a new bookmark handler
func NewBookmarkHandler(bookmarks *services.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{bookmarks: bookmarks}
}

// CreateBookmark handles POST /api/bookmarks
func (h *BookmarkHandler) CreateBookmark(w http.ResponseWriter, r *http.Request) {
	var bookmark entities.FacilityBookmark
	if err := decodeJSON(r, &bookmark); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.bookmarks.Create(r.Context(), &bookmark); err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, bookmark)
}

// GetBookmark handles GET /api/bookmarks/{id}
func (h *BookmarkHandler) GetBookmark(w http.ResponseWriter, r *http.Request) {
	bookmark, err := h.bookmarks.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, bookmark)
}

// ListBookmarks handles GET /api/users/{id}/bookmarks
func (h *BookmarkHandler) ListBookmarks(w http.ResponseWriter, r *http.Request) {
	bookmarks, err := h.bookmarks.ListByUser(r.Context(), r.PathValue("id"))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"bookmarks": bookmarks,
		"count":     len(bookmarks),
	})
}

// UpdateBookmark handles PUT /api/bookmarks/{id}
func (h *BookmarkHandler) UpdateBookmark(w http.ResponseWriter, r *http.Request) {
	var bookmark entities.FacilityBookmark
	if err := decodeJSON(r, &bookmark); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	bookmark.ID = r.PathValue("id")

	if err := h.bookmarks.Update(r.Context(), &bookmark); err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, bookmark)
}

// DeleteBookmark handles DELETE /api/bookmarks/{id}
func (h *BookmarkHandler) DeleteBookmark(w http.ResponseWriter, r *http.Request) {
	if err := h.bookmarks.Delete(r.Context(), r.PathValue("id")); err != nil {
		respondWithServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
