package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kobiowuquadri/book-traker/internal/entity"
	"github.com/kobiowuquadri/book-traker/internal/httpx"
	"github.com/kobiowuquadri/book-traker/internal/usecase"
)

type ShelfHandler struct {
	shelf usecase.ShelfRepository
	users usecase.UserRepository
}

func NewShelfHandler(shelf usecase.ShelfRepository, users usecase.UserRepository) *ShelfHandler {
	return &ShelfHandler{shelf: shelf, users: users}
}

// ServeHTTP dispatches /shelf by method.
func (h *ShelfHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.List(w, r)
	case http.MethodPost:
		h.Add(w, r)
	case http.MethodPatch:
		h.UpdateStatus(w, r)
	case http.MethodDelete:
		h.Remove(w, r)
	default:
		w.Header().Set("Allow", "GET, POST, PATCH, DELETE")
		httpx.JSONError(w, r, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
	}
}

// List handles GET /shelf?userId=&status=. An unknown status value is
// ignored as a filter rather than rejected.
func (h *ShelfHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Missing userId", nil)
		return
	}

	status := r.URL.Query().Get("status")
	if !entity.ValidStatus(status) {
		status = ""
	}

	entries, err := h.shelf.ListByUser(r.Context(), userID, status)
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch shelf", nil)
		return
	}

	httpx.JSON(w, http.StatusOK, entries)
}

type addShelfRequest struct {
	UserID   string  `json:"userId" validate:"required"`
	GoogleID string  `json:"googleId" validate:"required"`
	Title    string  `json:"title" validate:"required"`
	Author   string  `json:"author" validate:"required"`
	ImageURL *string `json:"imageUrl"`
	Status   string  `json:"status" validate:"omitempty,oneof=WANT_TO_READ CURRENTLY_READING READ"`
}

// conflictResponse carries the already-shelved entry alongside the
// error so the caller can show what is there without a second request.
type conflictResponse struct {
	Success bool                    `json:"success"`
	Error   httpx.ErrorResponseBody `json:"error"`
	Entry   entity.ShelfEntry       `json:"entry"`
}

// Add handles POST /shelf. The referenced user must exist (401 when it
// does not: the caller never completed sign-in), and the (userId,
// googleId) pair must be unshelved (409 with the existing entry when it
// is not).
func (h *ShelfHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addShelfRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	if details := ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Missing required fields", details)
		return
	}

	if _, err := h.users.GetByID(r.Context(), req.UserID); err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			httpx.JSONError(w, r, http.StatusUnauthorized, "AUTH_REQUIRED", "User not found. Please sign in first.", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to add book", nil)
		return
	}

	entry, err := h.shelf.Create(r.Context(), usecase.NewShelfEntry{
		UserID:   req.UserID,
		GoogleID: req.GoogleID,
		Title:    req.Title,
		Author:   req.Author,
		ImageURL: req.ImageURL,
		Status:   req.Status,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrAlreadyExists) {
			h.writeConflict(w, r, req.UserID, req.GoogleID)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to add book", nil)
		return
	}

	httpx.JSON(w, http.StatusCreated, entry)
}

func (h *ShelfHandler) writeConflict(w http.ResponseWriter, r *http.Request, userID, googleID string) {
	existing, err := h.shelf.GetByUserAndGoogleID(r.Context(), userID, googleID)
	if err != nil {
		// The entry vanished between the conflict and the lookup.
		httpx.JSONError(w, r, http.StatusConflict, "ALREADY_EXISTS", "Book already exists in your shelf", nil)
		return
	}
	httpx.JSON(w, http.StatusConflict, conflictResponse{
		Success: false,
		Error: httpx.ErrorResponseBody{
			Code:    "ALREADY_EXISTS",
			Message: "Book already exists in your shelf",
		},
		Entry: existing,
	})
}

type updateStatusRequest struct {
	ID     string `json:"id" validate:"required"`
	Status string `json:"status" validate:"required,oneof=WANT_TO_READ CURRENTLY_READING READ"`
}

// UpdateStatus handles PATCH /shelf. Any of the three statuses can be
// set from any other; there is no forced ordering.
func (h *ShelfHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	if details := ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Missing or invalid id/status", details)
		return
	}

	entry, err := h.shelf.UpdateStatus(r.Context(), req.ID, req.Status)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Shelf entry not found", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update status", nil)
		return
	}

	httpx.JSON(w, http.StatusOK, entry)
}

// Remove handles DELETE /shelf?id=. Deleting an unknown id is an
// explicit not-found rather than a store-dependent failure.
func (h *ShelfHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Missing book id", nil)
		return
	}

	if err := h.shelf.Delete(r.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Shelf entry not found", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to remove book", nil)
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]bool{"success": true})
}
