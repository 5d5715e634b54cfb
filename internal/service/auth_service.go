package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"go-notes-api/internal/model"
)

// AuthService owns credential verification, token issuance, and the
// refresh flow. It keeps no session state; the only secrets are the two
// signing keys inside the TokenIssuer, loaded once at startup.
type AuthService struct {
	users  UserStore
	tokens *TokenIssuer
}

func NewAuthService(users UserStore, tokens *TokenIssuer) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Login verifies the credentials and mints a fresh token pair. Unknown
// usernames, inactive accounts, and wrong passwords all collapse into
// ErrInvalidCredentials so responses cannot be used to probe for
// account existence.
func (s *AuthService) Login(ctx context.Context, username string, password string) (accessToken string, refreshToken string, err error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return "", "", model.ErrInvalidCredentials
		}
		return "", "", err
	}

	if !user.Active {
		return "", "", model.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", "", model.ErrInvalidCredentials
	}

	accessToken, err = s.tokens.IssueAccessToken(user.Username, user.Roles)
	if err != nil {
		return "", "", err
	}

	refreshToken, err = s.tokens.IssueRefreshToken(user.Username)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// Refresh exchanges a valid refresh token for a new access token. The
// user's roles are re-read from the store, never taken from the refresh
// token, so role changes propagate on the next refresh without forcing a
// re-login. The refresh token itself is not rotated.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.tokens.ParseRefreshToken(refreshToken)
	if err != nil {
		return "", model.ErrSessionInvalid
	}

	user, err := s.users.FindByUsername(ctx, claims.Username)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return "", model.ErrUnauthorized
		}
		return "", err
	}

	if !user.Active {
		return "", model.ErrUnauthorized
	}

	return s.tokens.IssueAccessToken(user.Username, user.Roles)
}

// VerifyAccessToken is the hook the access guard middleware uses. Any
// parse or expiry failure surfaces as ErrSessionInvalid.
func (s *AuthService) VerifyAccessToken(tokenString string) (model.Identity, error) {
	claims, err := s.tokens.ParseAccessToken(tokenString)
	if err != nil {
		return model.Identity{}, model.ErrSessionInvalid
	}

	return model.Identity{Username: claims.Username, Roles: claims.Roles}, nil
}

// RefreshTTL exposes the refresh token lifetime so the session cookie
// can expire together with the token it carries.
func (s *AuthService) RefreshTTL() time.Duration {
	return s.tokens.RefreshTTL()
}
