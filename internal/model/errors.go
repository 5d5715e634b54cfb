package model

import "errors"

var (
	// Auth related errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrSessionInvalid     = errors.New("session invalid")
	ErrForbidden          = errors.New("forbidden")

	// User related errors
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateUsername = errors.New("duplicate username")
	ErrUserHasNotes      = errors.New("user has assigned notes")
	ErrNoUsers           = errors.New("no users found")

	// Note related errors
	ErrNoteNotFound   = errors.New("note not found")
	ErrDuplicateTitle = errors.New("duplicate note title")
	ErrNoNotes        = errors.New("no notes found")
)
