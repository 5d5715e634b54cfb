package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"go-notes-api/internal/model"
	"go-notes-api/pkg/apierror"
)

type NoteService struct {
	notes NoteStore
	users UserStore
}

func NewNoteService(notes NoteStore, users UserStore) *NoteService {
	return &NoteService{notes: notes, users: users}
}

func (s *NoteService) List(ctx context.Context) ([]model.NoteWithUser, error) {
	notes, err := s.notes.ListWithUsers(ctx)
	if err != nil {
		return nil, err
	}
	if len(notes) == 0 {
		return nil, model.ErrNoNotes
	}
	return notes, nil
}

func (s *NoteService) Create(ctx context.Context, req model.CreateNoteRequest) (model.Note, error) {
	title := strings.TrimSpace(req.Title)
	text := strings.TrimSpace(req.Text)

	if req.UserID == "" || title == "" || text == "" {
		return model.Note{}, apierror.BadRequest("all fields are required", "")
	}

	if _, err := s.users.FindByID(ctx, req.UserID); err != nil {
		return model.Note{}, err
	}

	taken, err := s.notes.TitleTaken(ctx, title, "")
	if err != nil {
		return model.Note{}, err
	}
	if taken {
		return model.Note{}, model.ErrDuplicateTitle
	}

	now := time.Now().UTC()
	note := model.Note{
		ID:        uuid.NewString(),
		UserID:    req.UserID,
		Title:     title,
		Text:      text,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return s.notes.Create(ctx, note)
}

func (s *NoteService) Update(ctx context.Context, req model.UpdateNoteRequest) (model.Note, error) {
	title := strings.TrimSpace(req.Title)
	text := strings.TrimSpace(req.Text)

	if req.ID == "" || req.UserID == "" || title == "" || text == "" || req.Completed == nil {
		return model.Note{}, apierror.BadRequest("all fields are required", "")
	}

	note, err := s.notes.FindByID(ctx, req.ID)
	if err != nil {
		return model.Note{}, err
	}

	if _, err := s.users.FindByID(ctx, req.UserID); err != nil {
		return model.Note{}, err
	}

	// Renaming a note to its own title is allowed.
	taken, err := s.notes.TitleTaken(ctx, title, note.ID)
	if err != nil {
		return model.Note{}, err
	}
	if taken {
		return model.Note{}, model.ErrDuplicateTitle
	}

	note.UserID = req.UserID
	note.Title = title
	note.Text = text
	note.Completed = *req.Completed
	note.UpdatedAt = time.Now().UTC()

	if err := s.notes.Update(ctx, note); err != nil {
		return model.Note{}, err
	}

	return note, nil
}

func (s *NoteService) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return apierror.BadRequest("note id is required", "id")
	}

	return s.notes.Delete(ctx, id)
}
