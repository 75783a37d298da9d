package testutil

import (
	"time"

	"github.com/kobiowuquadri/book-traker/internal/auth"
	"github.com/kobiowuquadri/book-traker/internal/entity"

	"github.com/golang-jwt/jwt/v5"
)

// TestUser is a fixture user for handler and middleware tests.
var TestUser = entity.User{
	ID:        "test-user-id-123",
	Email:     "test@example.com",
	CreatedAt: time.Now(),
}

// TestShelfEntry is a fixture shelf entry owned by TestUser.
var TestShelfEntry = entity.ShelfEntry{
	ID:        "test-entry-id-789",
	UserID:    TestUser.ID,
	GoogleID:  "test-google-id",
	Title:     "Test Book Title",
	Author:    "Test Author",
	Status:    entity.StatusWantToRead,
	CreatedAt: time.Now(),
	UpdatedAt: time.Now(),
}

// GenerateTestToken generates a session token for testing.
func GenerateTestToken(secret, userID string) string {
	token, _, _ := auth.GenerateToken(secret, userID, time.Hour)
	return token
}

// GenerateExpiredToken generates an already-expired session token.
func GenerateExpiredToken(secret, userID string) string {
	c := auth.Claims{
		Sub: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	token, _ := t.SignedString([]byte(secret))
	return token
}
