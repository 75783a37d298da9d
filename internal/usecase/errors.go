package usecase

import "errors"

var (
	// ErrNotFound is returned when a referenced record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists is returned when a write would violate a
	// uniqueness invariant, e.g. shelving the same catalog item twice.
	ErrAlreadyExists = errors.New("already exists")

	// ErrUserNotFound distinguishes "the owning user was never created"
	// from a plain not-found, so handlers can answer 401 instead of 404.
	ErrUserNotFound = errors.New("user not found")
)
