package service

import (
	"context"

	"go-notes-api/internal/model"
)

// UserStore is the persistence contract the services need for users.
// Implemented by repository.UserRepository; lookups by username are
// case-insensitive.
type UserStore interface {
	FindByID(ctx context.Context, id string) (model.User, error)
	FindByUsername(ctx context.Context, username string) (model.User, error)
	UsernameTaken(ctx context.Context, username string, excludeID string) (bool, error)
	Create(ctx context.Context, u model.User) error
	Update(ctx context.Context, u model.User) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]model.User, error)
	Count(ctx context.Context) (int, error)
}

// NoteStore is the persistence contract for notes. Implemented by
// repository.NoteRepository.
type NoteStore interface {
	FindByID(ctx context.Context, id string) (model.Note, error)
	ListWithUsers(ctx context.Context) ([]model.NoteWithUser, error)
	TitleTaken(ctx context.Context, title string, excludeID string) (bool, error)
	Create(ctx context.Context, n model.Note) (model.Note, error)
	Update(ctx context.Context, n model.Note) error
	Delete(ctx context.Context, id string) error
	CountByUser(ctx context.Context, userID string) (int, error)
}
