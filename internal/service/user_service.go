package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"go-notes-api/internal/model"
	"go-notes-api/pkg/apierror"
)

const bcryptCost = 12

type UserService struct {
	users UserStore
	notes NoteStore
}

func NewUserService(users UserStore, notes NoteStore) *UserService {
	return &UserService{users: users, notes: notes}
}

func (s *UserService) List(ctx context.Context) ([]model.PublicUser, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, model.ErrNoUsers
	}

	out := make([]model.PublicUser, 0, len(users))
	for _, u := range users {
		out = append(out, u.Public())
	}
	return out, nil
}

func (s *UserService) Create(ctx context.Context, req model.CreateUserRequest) (model.PublicUser, error) {
	username := strings.TrimSpace(req.Username)
	password := strings.TrimSpace(req.Password)

	if username == "" || password == "" {
		return model.PublicUser{}, apierror.BadRequest("all fields are required", "")
	}

	taken, err := s.users.UsernameTaken(ctx, username, "")
	if err != nil {
		return model.PublicUser{}, err
	}
	if taken {
		return model.PublicUser{}, model.ErrDuplicateUsername
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return model.PublicUser{}, err
	}

	roles := req.Roles
	if len(roles) == 0 {
		roles = []string{model.DefaultRole}
	}

	now := time.Now().UTC()
	user := model.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		Roles:        roles,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return model.PublicUser{}, err
	}

	return user.Public(), nil
}

func (s *UserService) Update(ctx context.Context, req model.UpdateUserRequest) (model.PublicUser, error) {
	username := strings.TrimSpace(req.Username)

	if req.ID == "" || username == "" || len(req.Roles) == 0 || req.Active == nil {
		return model.PublicUser{}, apierror.BadRequest("all fields are required", "")
	}

	user, err := s.users.FindByID(ctx, req.ID)
	if err != nil {
		return model.PublicUser{}, err
	}

	taken, err := s.users.UsernameTaken(ctx, username, user.ID)
	if err != nil {
		return model.PublicUser{}, err
	}
	if taken {
		return model.PublicUser{}, model.ErrDuplicateUsername
	}

	user.Username = username
	user.Roles = req.Roles
	user.Active = *req.Active

	if password := strings.TrimSpace(req.Password); password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
		if err != nil {
			return model.PublicUser{}, err
		}
		user.PasswordHash = string(hash)
	}

	user.UpdatedAt = time.Now().UTC()

	if err := s.users.Update(ctx, user); err != nil {
		return model.PublicUser{}, err
	}

	return user.Public(), nil
}

// EnsureAdmin seeds a default admin account into an empty store so the
// protected user-management routes are reachable on a fresh install.
// The password must be rotated immediately.
func (s *UserService) EnsureAdmin(ctx context.Context) error {
	count, err := s.users.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcryptCost)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	admin := model.User{
		ID:           uuid.NewString(),
		Username:     "admin",
		PasswordHash: string(hash),
		Roles:        []string{model.DefaultRole, "Manager", "Admin"},
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, admin); err != nil {
		return err
	}

	slog.Warn("seeded default admin user; change its password", "username", admin.Username)
	return nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return apierror.BadRequest("user id is required", "id")
	}

	// A user who still owns notes cannot be removed.
	count, err := s.notes.CountByUser(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return model.ErrUserHasNotes
	}

	return s.users.Delete(ctx, id)
}
