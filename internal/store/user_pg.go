package store

import (
	"context"
	"errors"

	"github.com/kobiowuquadri/book-traker/internal/entity"
	"github.com/kobiowuquadri/book-traker/internal/usecase"

	"github.com/jackc/pgx/v5"
)

type UserPG struct {
	db PgxPool
}

func NewUserPG(db PgxPool) *UserPG {
	return &UserPG{db: db}
}

// FindOrCreateByEmail resolves an email to a user in a single statement.
// The no-op DO UPDATE makes the RETURNING clause yield the existing row
// on conflict, so two concurrent resolves of the same email both get the
// same id and only one record is ever created.
func (r *UserPG) FindOrCreateByEmail(ctx context.Context, email string) (entity.User, error) {
	const query = `
	INSERT INTO users (id, email)
	VALUES (gen_random_uuid(), $1)
	ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
	RETURNING id, email, created_at
	`
	var user entity.User
	err := r.db.QueryRow(ctx, query, email).Scan(&user.ID, &user.Email, &user.CreatedAt)
	if err != nil {
		return entity.User{}, err
	}
	return user, nil
}

func (r *UserPG) GetByEmail(ctx context.Context, email string) (entity.User, error) {
	const query = `
	SELECT id, email, created_at
	FROM users
	WHERE email = $1
	LIMIT 1
	`
	var user entity.User
	err := r.db.QueryRow(ctx, query, email).Scan(&user.ID, &user.Email, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.User{}, usecase.ErrNotFound
		}
		return entity.User{}, err
	}
	return user, nil
}

func (r *UserPG) GetByID(ctx context.Context, id string) (entity.User, error) {
	const query = `
	SELECT id, email, created_at
	FROM users WHERE id = $1 LIMIT 1
	`
	var user entity.User
	err := r.db.QueryRow(ctx, query, id).Scan(&user.ID, &user.Email, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.User{}, usecase.ErrNotFound
		}
		return entity.User{}, err
	}
	return user, nil
}
