package handler

import (
	"net/http"
	"time"
)

// sessionCookieName is the cookie that carries the refresh token. The
// server keeps no session record; the cookie is the whole session.
const sessionCookieName = "jwt"

// sessionCookies wraps the refresh token in a protected cookie:
// HTTP-only so page scripts cannot read it, Secure + SameSite=None so
// browsers send it on cross-site requests over HTTPS only.
type sessionCookies struct {
	ttl time.Duration
}

func newSessionCookies(ttl time.Duration) sessionCookies {
	return sessionCookies{ttl: ttl}
}

func (c sessionCookies) attach(w http.ResponseWriter, refreshToken string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    refreshToken,
		Path:     "/",
		MaxAge:   int(c.ttl.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}

// clear deletes the cookie with the same flags it was set with, so
// browsers honor the removal. Clearing an absent cookie is harmless.
func (c sessionCookies) clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}

func sessionCookie(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}
