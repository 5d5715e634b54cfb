package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIssuerRoundTrip(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer("access-secret", "refresh-secret", 15*time.Minute, 168*time.Hour)

	t.Run("access token carries username and roles", func(t *testing.T) {
		token, err := issuer.IssueAccessToken("alice", []string{"Employee", "Manager"})
		require.NoError(t, err)

		claims, err := issuer.ParseAccessToken(token)
		require.NoError(t, err)
		assert.Equal(t, "alice", claims.Username)
		assert.Equal(t, []string{"Employee", "Manager"}, claims.Roles)
		require.NotNil(t, claims.ExpiresAt)
		require.NotNil(t, claims.IssuedAt)
		assert.InDelta(t, 15*time.Minute, claims.ExpiresAt.Sub(claims.IssuedAt.Time), float64(time.Second))
	})

	t.Run("refresh token carries username only", func(t *testing.T) {
		token, err := issuer.IssueRefreshToken("alice")
		require.NoError(t, err)

		claims, err := issuer.ParseRefreshToken(token)
		require.NoError(t, err)
		assert.Equal(t, "alice", claims.Username)
		require.NotNil(t, claims.ExpiresAt)
		assert.InDelta(t, 168*time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time), float64(time.Second))
	})
}

func TestTokenIssuerSecretsAreIndependent(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer("access-secret", "refresh-secret", 15*time.Minute, 168*time.Hour)

	access, err := issuer.IssueAccessToken("alice", []string{"Employee"})
	require.NoError(t, err)
	refresh, err := issuer.IssueRefreshToken("alice")
	require.NoError(t, err)

	// A token signed with one secret must not verify against the other.
	_, err = issuer.ParseRefreshToken(access)
	assert.Error(t, err)
	_, err = issuer.ParseAccessToken(refresh)
	assert.Error(t, err)
}

func TestTokenIssuerRejectsForeignSignature(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer("access-secret", "refresh-secret", 15*time.Minute, 168*time.Hour)
	forger := NewTokenIssuer("other-access", "other-refresh", 15*time.Minute, 168*time.Hour)

	forged, err := forger.IssueAccessToken("alice", []string{"Admin"})
	require.NoError(t, err)

	_, err = issuer.ParseAccessToken(forged)
	assert.Error(t, err)
}

func TestTokenIssuerRejectsExpiredTokens(t *testing.T) {
	t.Parallel()

	expired := NewTokenIssuer("access-secret", "refresh-secret", -time.Second, -time.Second)

	access, err := expired.IssueAccessToken("alice", []string{"Employee"})
	require.NoError(t, err)
	_, err = expired.ParseAccessToken(access)
	assert.Error(t, err)

	refresh, err := expired.IssueRefreshToken("alice")
	require.NoError(t, err)
	_, err = expired.ParseRefreshToken(refresh)
	assert.Error(t, err)
}

func TestTokenIssuerAcceptsTokenNearExpiry(t *testing.T) {
	t.Parallel()

	// A token with most of its lifetime already gone still verifies.
	issuer := NewTokenIssuer("access-secret", "refresh-secret", 2*time.Second, 168*time.Hour)

	token, err := issuer.IssueAccessToken("alice", []string{"Employee"})
	require.NoError(t, err)

	time.Sleep(time.Second)

	claims, err := issuer.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
}
