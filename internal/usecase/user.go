package usecase

import (
	"context"

	"github.com/kobiowuquadri/book-traker/internal/entity"
)

type UserRepository interface {
	// FindOrCreateByEmail resolves an email to a user, creating the
	// record on first sight. Identity is established purely by email
	// possession; no secret is involved.
	FindOrCreateByEmail(ctx context.Context, email string) (entity.User, error)

	GetByEmail(ctx context.Context, email string) (entity.User, error)
	GetByID(ctx context.Context, id string) (entity.User, error)
}
