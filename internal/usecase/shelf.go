package usecase

import (
	"context"

	"github.com/kobiowuquadri/book-traker/internal/entity"
)

// NewShelfEntry carries the caller-supplied fields of an add-to-shelf
// request. Status defaults to WANT_TO_READ when empty.
type NewShelfEntry struct {
	UserID   string
	GoogleID string
	Title    string
	Author   string
	ImageURL *string
	Status   string
}

type ShelfRepository interface {
	// ListByUser returns the user's entries ordered by title ascending.
	// status narrows the result when non-empty; an empty shelf is a
	// valid, non-error result.
	ListByUser(ctx context.Context, userID string, status string) ([]entity.ShelfEntry, error)

	GetByID(ctx context.Context, id string) (entity.ShelfEntry, error)

	// GetByUserAndGoogleID fetches the entry for a (user, catalog item)
	// pair, ErrNotFound when the pair is unshelved.
	GetByUserAndGoogleID(ctx context.Context, userID, googleID string) (entity.ShelfEntry, error)

	// Create inserts a new entry. The (userID, googleID) uniqueness
	// invariant is enforced by the store's own constraint: a violation
	// surfaces as ErrAlreadyExists rather than a duplicate row, so two
	// racing adds cannot both succeed.
	Create(ctx context.Context, e NewShelfEntry) (entity.ShelfEntry, error)

	// UpdateStatus sets the status of the entry with the given id and
	// returns the updated entry, ErrNotFound when the id is unknown.
	UpdateStatus(ctx context.Context, id, status string) (entity.ShelfEntry, error)

	// Delete removes the entry, ErrNotFound when the id is unknown.
	Delete(ctx context.Context, id string) error
}
