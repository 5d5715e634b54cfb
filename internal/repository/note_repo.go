package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-notes-api/internal/model"
)

type NoteRepository struct {
	pool *pgxpool.Pool
}

func NewNoteRepository(pool *pgxpool.Pool) *NoteRepository {
	return &NoteRepository{pool: pool}
}

func (r *NoteRepository) FindByID(ctx context.Context, id string) (model.Note, error) {
	var n model.Note
	err := r.pool.QueryRow(ctx,
		`SELECT id, user_id, title, body, completed, ticket, created_at, updated_at
		 FROM notes WHERE id = $1`, id).
		Scan(&n.ID, &n.UserID, &n.Title, &n.Text, &n.Completed, &n.Ticket, &n.CreatedAt, &n.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Note{}, model.ErrNoteNotFound
	}
	if err != nil {
		return model.Note{}, fmt.Errorf("find note by id: %w", err)
	}
	return n, nil
}

// ListWithUsers returns every note joined with its owner's username,
// ordered by ticket number.
func (r *NoteRepository) ListWithUsers(ctx context.Context) ([]model.NoteWithUser, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT n.id, n.user_id, n.title, n.body, n.completed, n.ticket,
		        n.created_at, n.updated_at, u.username
		 FROM notes n
		 JOIN users u ON u.id = n.user_id
		 ORDER BY n.ticket`)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	notes := make([]model.NoteWithUser, 0)
	for rows.Next() {
		var n model.NoteWithUser
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Text, &n.Completed, &n.Ticket,
			&n.CreatedAt, &n.UpdatedAt, &n.Username); err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

// TitleTaken reports whether another note already holds the title,
// compared case-insensitively. excludeID may be empty.
func (r *NoteRepository) TitleTaken(ctx context.Context, title string, excludeID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(
			SELECT 1 FROM notes
			WHERE lower(title) = lower($1) AND id::text <> $2
		)`, strings.TrimSpace(title), excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check title taken: %w", err)
	}
	return exists, nil
}

// Create inserts the note and fills in its sequence-assigned ticket number.
func (r *NoteRepository) Create(ctx context.Context, n model.Note) (model.Note, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO notes (id, user_id, title, body, completed, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING ticket`,
		n.ID, n.UserID, n.Title, n.Text, n.Completed, n.CreatedAt, n.UpdatedAt).
		Scan(&n.Ticket)
	if err != nil {
		return model.Note{}, fmt.Errorf("create note: %w", err)
	}
	return n, nil
}

func (r *NoteRepository) Update(ctx context.Context, n model.Note) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE notes
		 SET user_id = $2, title = $3, body = $4, completed = $5, updated_at = $6
		 WHERE id = $1`,
		n.ID, n.UserID, n.Title, n.Text, n.Completed, n.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update note: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNoteNotFound
	}
	return nil
}

func (r *NoteRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM notes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNoteNotFound
	}
	return nil
}

func (r *NoteRepository) CountByUser(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM notes WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count notes by user: %w", err)
	}
	return count, nil
}
