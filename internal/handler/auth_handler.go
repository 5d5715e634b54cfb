package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"go-notes-api/internal/model"
	"go-notes-api/internal/service"
	"go-notes-api/pkg/apierror"
)

type AuthHandler struct {
	service *service.AuthService
	cookies sessionCookies
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{
		service: svc,
		cookies: newSessionCookies(svc.RefreshTTL()),
	}
}

// Login verifies credentials, stores the refresh token in the session
// cookie, and returns the access token in the body.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.BadRequest("invalid JSON body", ""))
		return
	}

	if strings.TrimSpace(payload.Username) == "" || payload.Password == "" {
		writeError(w, apierror.BadRequest("all fields are required", ""))
		return
	}

	accessToken, refreshToken, err := h.service.Login(r.Context(), payload.Username, payload.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	h.cookies.attach(w, refreshToken)
	writeSuccess(w, http.StatusOK, model.TokenResponse{AccessToken: accessToken})
}

// Refresh mints a new access token from the session cookie. No cookie
// means the client never logged in (401); a cookie that fails
// verification means the session is invalid or expired (403).
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	refreshToken, ok := sessionCookie(r)
	if !ok {
		writeError(w, model.ErrUnauthorized)
		return
	}

	accessToken, err := h.service.Refresh(r.Context(), refreshToken)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, model.TokenResponse{AccessToken: accessToken})
}

// Logout clears the session cookie. Logging out without a session is not
// an error; it just has nothing to do.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if _, ok := sessionCookie(r); !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	h.cookies.clear(w)
	writeSuccess(w, http.StatusOK, model.MessageResponse{Message: "Cookie cleared"})
}
