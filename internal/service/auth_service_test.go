package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"go-notes-api/internal/model"
)

func testUser(t *testing.T, username string, password string, roles []string, active bool) model.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	now := time.Now().UTC()
	return model.User{
		ID:           username + "-id",
		Username:     username,
		PasswordHash: string(hash),
		Roles:        roles,
		Active:       active,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func testAuthService(t *testing.T, users ...model.User) (*AuthService, *fakeUserStore) {
	t.Helper()

	store := newFakeUserStore(users...)
	tokens := NewTokenIssuer("access-secret", "refresh-secret", 15*time.Minute, 168*time.Hour)
	return NewAuthService(store, tokens), store
}

func TestAuthServiceLogin(t *testing.T) {
	t.Parallel()

	alice := testUser(t, "alice", "correct", []string{"Employee"}, true)
	inactive := testUser(t, "bob", "correct", []string{"Employee"}, false)
	svc, _ := testAuthService(t, alice, inactive)

	t.Run("valid credentials return a decodable token pair", func(t *testing.T) {
		access, refresh, err := svc.Login(context.Background(), "alice", "correct")
		require.NoError(t, err)

		identity, err := svc.VerifyAccessToken(access)
		require.NoError(t, err)
		assert.Equal(t, "alice", identity.Username)
		assert.Equal(t, []string{"Employee"}, identity.Roles)

		claims, err := svc.tokens.ParseRefreshToken(refresh)
		require.NoError(t, err)
		assert.Equal(t, "alice", claims.Username)
	})

	t.Run("username lookup is case-insensitive", func(t *testing.T) {
		_, _, err := svc.Login(context.Background(), "ALICE", "correct")
		require.NoError(t, err)
	})

	t.Run("wrong password fails", func(t *testing.T) {
		_, _, err := svc.Login(context.Background(), "alice", "wrong")
		assert.ErrorIs(t, err, model.ErrInvalidCredentials)
	})

	t.Run("unknown user fails the same way as a wrong password", func(t *testing.T) {
		_, _, err := svc.Login(context.Background(), "nobody", "correct")
		assert.ErrorIs(t, err, model.ErrInvalidCredentials)
	})

	t.Run("inactive user fails even with the correct password", func(t *testing.T) {
		_, _, err := svc.Login(context.Background(), "bob", "correct")
		assert.ErrorIs(t, err, model.ErrInvalidCredentials)
	})
}

func TestAuthServiceRefresh(t *testing.T) {
	t.Parallel()

	alice := testUser(t, "alice", "correct", []string{"Employee"}, true)
	svc, store := testAuthService(t, alice)

	_, refresh, err := svc.Login(context.Background(), "alice", "correct")
	require.NoError(t, err)

	t.Run("valid refresh token yields a new access token", func(t *testing.T) {
		access, err := svc.Refresh(context.Background(), refresh)
		require.NoError(t, err)

		identity, err := svc.VerifyAccessToken(access)
		require.NoError(t, err)
		assert.Equal(t, "alice", identity.Username)
		assert.Equal(t, []string{"Employee"}, identity.Roles)
	})

	t.Run("role changes propagate without re-login", func(t *testing.T) {
		updated := store.users[alice.ID]
		updated.Roles = []string{"Employee", "Admin"}
		require.NoError(t, store.Update(context.Background(), updated))

		access, err := svc.Refresh(context.Background(), refresh)
		require.NoError(t, err)

		identity, err := svc.VerifyAccessToken(access)
		require.NoError(t, err)
		assert.Equal(t, []string{"Employee", "Admin"}, identity.Roles)
	})

	t.Run("tampered token is a session failure", func(t *testing.T) {
		_, err := svc.Refresh(context.Background(), refresh+"x")
		assert.ErrorIs(t, err, model.ErrSessionInvalid)
	})

	t.Run("access token does not work as a refresh token", func(t *testing.T) {
		access, _, err := svc.Login(context.Background(), "alice", "correct")
		require.NoError(t, err)

		_, err = svc.Refresh(context.Background(), access)
		assert.ErrorIs(t, err, model.ErrSessionInvalid)
	})

	t.Run("deactivated user cannot refresh", func(t *testing.T) {
		updated := store.users[alice.ID]
		updated.Active = false
		require.NoError(t, store.Update(context.Background(), updated))
		t.Cleanup(func() {
			updated.Active = true
			_ = store.Update(context.Background(), updated)
		})

		_, err := svc.Refresh(context.Background(), refresh)
		assert.ErrorIs(t, err, model.ErrUnauthorized)
	})

	t.Run("deleted user cannot refresh", func(t *testing.T) {
		require.NoError(t, store.Delete(context.Background(), alice.ID))

		_, err := svc.Refresh(context.Background(), refresh)
		assert.ErrorIs(t, err, model.ErrUnauthorized)
	})
}

func TestAuthServiceVerifyAccessToken(t *testing.T) {
	t.Parallel()

	svc, _ := testAuthService(t)

	_, err := svc.VerifyAccessToken("not-a-token")
	assert.ErrorIs(t, err, model.ErrSessionInvalid)
}
