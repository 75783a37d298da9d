package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/kobiowuquadri/book-traker/internal/auth"
	"github.com/kobiowuquadri/book-traker/internal/entity"
	"github.com/kobiowuquadri/book-traker/internal/httpx"
	"github.com/kobiowuquadri/book-traker/internal/usecase"
)

type AuthHandler struct {
	users    usecase.UserRepository
	secret   string
	tokenTTL time.Duration
}

func NewAuthHandler(users usecase.UserRepository, secret string, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{users: users, secret: secret, tokenTTL: tokenTTL}
}

type signInRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type signInResponse struct {
	Token string      `json:"token"`
	User  entity.User `json:"user"`
}

// SignIn handles POST /auth. Identity is established purely by email
// possession: the user record is created on first sight and the
// response carries a signed session reference embedding the user id.
// This endpoint is deliberately not a security boundary; anyone who
// knows an email can sign in as that identity.
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	req.Email = strings.TrimSpace(req.Email)

	if details := ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Missing email", details)
		return
	}

	user, err := h.users.FindOrCreateByEmail(r.Context(), req.Email)
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to sign in", nil)
		return
	}

	token, _, err := auth.GenerateToken(h.secret, user.ID, h.tokenTTL)
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to sign in", nil)
		return
	}

	httpx.JSON(w, http.StatusOK, signInResponse{Token: token, User: user})
}

// Me handles GET /me behind the auth middleware: it resolves the bearer
// token back into the user record.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Missing session", nil)
		return
	}

	user, err := h.users.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Unknown user", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load user", nil)
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]entity.User{"user": user})
}
