package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"go-notes-api/internal/model"
	"go-notes-api/pkg/apierror"
)

func boolPtr(b bool) *bool { return &b }

func TestUserServiceCreate(t *testing.T) {
	t.Parallel()

	users := newFakeUserStore()
	notes := newFakeNoteStore()
	svc := NewUserService(users, notes)

	t.Run("missing fields are rejected", func(t *testing.T) {
		_, err := svc.Create(context.Background(), model.CreateUserRequest{Username: "alice"})
		var apiErr *apierror.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 400, apiErr.HTTPStatus)
	})

	t.Run("create hashes the password and defaults the role", func(t *testing.T) {
		created, err := svc.Create(context.Background(), model.CreateUserRequest{
			Username: "alice",
			Password: "hunter2hunter2",
		})
		require.NoError(t, err)
		assert.Equal(t, "alice", created.Username)
		assert.Equal(t, []string{model.DefaultRole}, created.Roles)
		assert.True(t, created.Active)

		stored, err := users.FindByID(context.Background(), created.ID)
		require.NoError(t, err)
		assert.NotEqual(t, "hunter2hunter2", stored.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("hunter2hunter2")))
	})

	t.Run("duplicate username is a conflict regardless of case", func(t *testing.T) {
		_, err := svc.Create(context.Background(), model.CreateUserRequest{
			Username: "ALICE",
			Password: "another-password",
		})
		assert.ErrorIs(t, err, model.ErrDuplicateUsername)
	})
}

func TestUserServiceUpdate(t *testing.T) {
	t.Parallel()

	users := newFakeUserStore()
	notes := newFakeNoteStore()
	svc := NewUserService(users, notes)

	alice, err := svc.Create(context.Background(), model.CreateUserRequest{Username: "alice", Password: "password-one"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), model.CreateUserRequest{Username: "bob", Password: "password-two"})
	require.NoError(t, err)

	t.Run("all fields are required", func(t *testing.T) {
		_, err := svc.Update(context.Background(), model.UpdateUserRequest{ID: alice.ID, Username: "alice"})
		var apiErr *apierror.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 400, apiErr.HTTPStatus)
	})

	t.Run("renaming onto another user's name is a conflict", func(t *testing.T) {
		_, err := svc.Update(context.Background(), model.UpdateUserRequest{
			ID:       alice.ID,
			Username: "bob",
			Roles:    []string{"Employee"},
			Active:   boolPtr(true),
		})
		assert.ErrorIs(t, err, model.ErrDuplicateUsername)
	})

	t.Run("keeping the same name is allowed and roles change", func(t *testing.T) {
		updated, err := svc.Update(context.Background(), model.UpdateUserRequest{
			ID:       alice.ID,
			Username: "alice",
			Roles:    []string{"Employee", "Admin"},
			Active:   boolPtr(false),
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"Employee", "Admin"}, updated.Roles)
		assert.False(t, updated.Active)
	})

	t.Run("password is re-hashed only when provided", func(t *testing.T) {
		before, err := users.FindByID(context.Background(), alice.ID)
		require.NoError(t, err)

		_, err = svc.Update(context.Background(), model.UpdateUserRequest{
			ID:       alice.ID,
			Username: "alice",
			Roles:    []string{"Employee"},
			Active:   boolPtr(true),
		})
		require.NoError(t, err)

		after, err := users.FindByID(context.Background(), alice.ID)
		require.NoError(t, err)
		assert.Equal(t, before.PasswordHash, after.PasswordHash)

		_, err = svc.Update(context.Background(), model.UpdateUserRequest{
			ID:       alice.ID,
			Username: "alice",
			Roles:    []string{"Employee"},
			Active:   boolPtr(true),
			Password: "a-new-password",
		})
		require.NoError(t, err)

		changed, err := users.FindByID(context.Background(), alice.ID)
		require.NoError(t, err)
		assert.NotEqual(t, before.PasswordHash, changed.PasswordHash)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.Update(context.Background(), model.UpdateUserRequest{
			ID:       "missing",
			Username: "ghost",
			Roles:    []string{"Employee"},
			Active:   boolPtr(true),
		})
		assert.ErrorIs(t, err, model.ErrUserNotFound)
	})
}

func TestUserServiceDelete(t *testing.T) {
	t.Parallel()

	users := newFakeUserStore()
	notes := newFakeNoteStore()
	userSvc := NewUserService(users, notes)
	noteSvc := NewNoteService(notes, users)

	alice, err := userSvc.Create(context.Background(), model.CreateUserRequest{Username: "alice", Password: "password-one"})
	require.NoError(t, err)

	_, err = noteSvc.Create(context.Background(), model.CreateNoteRequest{
		UserID: alice.ID,
		Title:  "Fix the printer",
		Text:   "Third floor, again",
	})
	require.NoError(t, err)

	t.Run("a user with notes cannot be deleted", func(t *testing.T) {
		err := userSvc.Delete(context.Background(), alice.ID)
		assert.ErrorIs(t, err, model.ErrUserHasNotes)
	})

	t.Run("deletable once the notes are gone", func(t *testing.T) {
		listed, err := noteSvc.List(context.Background())
		require.NoError(t, err)
		require.Len(t, listed, 1)
		require.NoError(t, noteSvc.Delete(context.Background(), listed[0].ID))

		require.NoError(t, userSvc.Delete(context.Background(), alice.ID))

		_, err = users.FindByID(context.Background(), alice.ID)
		assert.ErrorIs(t, err, model.ErrUserNotFound)
	})

	t.Run("missing id", func(t *testing.T) {
		err := userSvc.Delete(context.Background(), "")
		var apiErr *apierror.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 400, apiErr.HTTPStatus)
	})
}

func TestUserServiceList(t *testing.T) {
	t.Parallel()

	users := newFakeUserStore()
	svc := NewUserService(users, newFakeNoteStore())

	t.Run("empty store", func(t *testing.T) {
		_, err := svc.List(context.Background())
		assert.ErrorIs(t, err, model.ErrNoUsers)
	})

	t.Run("listed users never expose password hashes", func(t *testing.T) {
		_, err := svc.Create(context.Background(), model.CreateUserRequest{Username: "alice", Password: "password-one"})
		require.NoError(t, err)

		listed, err := svc.List(context.Background())
		require.NoError(t, err)
		require.Len(t, listed, 1)
		assert.Equal(t, "alice", listed[0].Username)
	})
}

func TestUserServiceEnsureAdmin(t *testing.T) {
	t.Parallel()

	users := newFakeUserStore()
	svc := NewUserService(users, newFakeNoteStore())

	require.NoError(t, svc.EnsureAdmin(context.Background()))

	admin, err := users.FindByUsername(context.Background(), "admin")
	require.NoError(t, err)
	assert.Contains(t, admin.Roles, "Admin")

	// Idempotent: a populated store is left alone.
	require.NoError(t, svc.EnsureAdmin(context.Background()))
	count, err := users.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
