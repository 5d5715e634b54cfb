package service

import (
	"context"
	"strings"

	"go-notes-api/internal/model"
)

// fakeUserStore is an in-memory UserStore for tests.
type fakeUserStore struct {
	users map[string]model.User // keyed by id
}

func newFakeUserStore(users ...model.User) *fakeUserStore {
	s := &fakeUserStore{users: map[string]model.User{}}
	for _, u := range users {
		s.users[u.ID] = u
	}
	return s
}

func (s *fakeUserStore) FindByID(_ context.Context, id string) (model.User, error) {
	u, ok := s.users[id]
	if !ok {
		return model.User{}, model.ErrUserNotFound
	}
	return u, nil
}

func (s *fakeUserStore) FindByUsername(_ context.Context, username string) (model.User, error) {
	for _, u := range s.users {
		if strings.EqualFold(u.Username, strings.TrimSpace(username)) {
			return u, nil
		}
	}
	return model.User{}, model.ErrUserNotFound
}

func (s *fakeUserStore) UsernameTaken(_ context.Context, username string, excludeID string) (bool, error) {
	for _, u := range s.users {
		if u.ID != excludeID && strings.EqualFold(u.Username, strings.TrimSpace(username)) {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeUserStore) Create(_ context.Context, u model.User) error {
	s.users[u.ID] = u
	return nil
}

func (s *fakeUserStore) Update(_ context.Context, u model.User) error {
	if _, ok := s.users[u.ID]; !ok {
		return model.ErrUserNotFound
	}
	s.users[u.ID] = u
	return nil
}

func (s *fakeUserStore) Delete(_ context.Context, id string) error {
	if _, ok := s.users[id]; !ok {
		return model.ErrUserNotFound
	}
	delete(s.users, id)
	return nil
}

func (s *fakeUserStore) List(_ context.Context) ([]model.User, error) {
	out := make([]model.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	return out, nil
}

func (s *fakeUserStore) Count(_ context.Context) (int, error) {
	return len(s.users), nil
}

// fakeNoteStore is an in-memory NoteStore for tests.
type fakeNoteStore struct {
	notes      map[string]model.Note
	usernames  map[string]string // user id -> username, for joins
	nextTicket int64
}

func newFakeNoteStore() *fakeNoteStore {
	return &fakeNoteStore{
		notes:      map[string]model.Note{},
		usernames:  map[string]string{},
		nextTicket: 500,
	}
}

func (s *fakeNoteStore) FindByID(_ context.Context, id string) (model.Note, error) {
	n, ok := s.notes[id]
	if !ok {
		return model.Note{}, model.ErrNoteNotFound
	}
	return n, nil
}

func (s *fakeNoteStore) ListWithUsers(_ context.Context) ([]model.NoteWithUser, error) {
	out := make([]model.NoteWithUser, 0, len(s.notes))
	for _, n := range s.notes {
		out = append(out, model.NoteWithUser{Note: n, Username: s.usernames[n.UserID]})
	}
	return out, nil
}

func (s *fakeNoteStore) TitleTaken(_ context.Context, title string, excludeID string) (bool, error) {
	for _, n := range s.notes {
		if n.ID != excludeID && strings.EqualFold(n.Title, strings.TrimSpace(title)) {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeNoteStore) Create(_ context.Context, n model.Note) (model.Note, error) {
	n.Ticket = s.nextTicket
	s.nextTicket++
	s.notes[n.ID] = n
	return n, nil
}

func (s *fakeNoteStore) Update(_ context.Context, n model.Note) error {
	if _, ok := s.notes[n.ID]; !ok {
		return model.ErrNoteNotFound
	}
	s.notes[n.ID] = n
	return nil
}

func (s *fakeNoteStore) Delete(_ context.Context, id string) error {
	if _, ok := s.notes[id]; !ok {
		return model.ErrNoteNotFound
	}
	delete(s.notes, id)
	return nil
}

func (s *fakeNoteStore) CountByUser(_ context.Context, userID string) (int, error) {
	count := 0
	for _, n := range s.notes {
		if n.UserID == userID {
			count++
		}
	}
	return count, nil
}
