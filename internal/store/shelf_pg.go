package store

import (
	"context"
	"errors"

	"github.com/kobiowuquadri/book-traker/internal/entity"
	"github.com/kobiowuquadri/book-traker/internal/usecase"

	"github.com/jackc/pgx/v5"
)

type ShelfPG struct {
	db PgxPool
}

func NewShelfPG(db PgxPool) *ShelfPG {
	return &ShelfPG{db: db}
}

const shelfColumns = `id, user_id, google_id, title, author, image_url, status, created_at, updated_at`

func scanShelfEntry(row pgx.Row) (entity.ShelfEntry, error) {
	var e entity.ShelfEntry
	err := row.Scan(
		&e.ID, &e.UserID, &e.GoogleID, &e.Title, &e.Author, &e.ImageURL, &e.Status, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

// ListByUser returns the user's shelf ordered by title for deterministic
// display. status narrows the result when non-empty.
func (r *ShelfPG) ListByUser(ctx context.Context, userID string, status string) ([]entity.ShelfEntry, error) {
	const listSQL = `
	SELECT ` + shelfColumns + `
	FROM shelf_entries
	WHERE user_id = $1 AND ($2 = '' OR status = $2)
	ORDER BY title ASC
	`
	rows, err := r.db.Query(ctx, listSQL, userID, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []entity.ShelfEntry{}
	for rows.Next() {
		e, err := scanShelfEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *ShelfPG) GetByID(ctx context.Context, id string) (entity.ShelfEntry, error) {
	const query = `
	SELECT ` + shelfColumns + `
	FROM shelf_entries WHERE id = $1 LIMIT 1
	`
	e, err := scanShelfEntry(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.ShelfEntry{}, usecase.ErrNotFound
		}
		return entity.ShelfEntry{}, err
	}
	return e, nil
}

func (r *ShelfPG) GetByUserAndGoogleID(ctx context.Context, userID, googleID string) (entity.ShelfEntry, error) {
	const query = `
	SELECT ` + shelfColumns + `
	FROM shelf_entries WHERE user_id = $1 AND google_id = $2 LIMIT 1
	`
	e, err := scanShelfEntry(r.db.QueryRow(ctx, query, userID, googleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.ShelfEntry{}, usecase.ErrNotFound
		}
		return entity.ShelfEntry{}, err
	}
	return e, nil
}

// Create inserts a new entry. Uniqueness of (user_id, google_id) is
// enforced by the table constraint, not by a prior read, so concurrent
// adds of the same pair cannot both succeed; the loser sees
// usecase.ErrAlreadyExists.
func (r *ShelfPG) Create(ctx context.Context, n usecase.NewShelfEntry) (entity.ShelfEntry, error) {
	const insertSQL = `
	INSERT INTO shelf_entries (id, user_id, google_id, title, author, image_url, status)
	VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, COALESCE(NULLIF($6, ''), 'WANT_TO_READ'))
	RETURNING ` + shelfColumns + `
	`
	e, err := scanShelfEntry(r.db.QueryRow(ctx, insertSQL, n.UserID, n.GoogleID, n.Title, n.Author, n.ImageURL, n.Status))
	if err != nil {
		if isUniqueViolation(err) {
			return entity.ShelfEntry{}, usecase.ErrAlreadyExists
		}
		return entity.ShelfEntry{}, err
	}
	return e, nil
}

func (r *ShelfPG) UpdateStatus(ctx context.Context, id, status string) (entity.ShelfEntry, error) {
	const updateSQL = `
	UPDATE shelf_entries
	SET status = $2, updated_at = NOW()
	WHERE id = $1
	RETURNING ` + shelfColumns + `
	`
	e, err := scanShelfEntry(r.db.QueryRow(ctx, updateSQL, id, status))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.ShelfEntry{}, usecase.ErrNotFound
		}
		return entity.ShelfEntry{}, err
	}
	return e, nil
}

func (r *ShelfPG) Delete(ctx context.Context, id string) error {
	const deleteSQL = `
	DELETE FROM shelf_entries WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, deleteSQL, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return usecase.ErrNotFound
	}
	return nil
}
