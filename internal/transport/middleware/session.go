package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/Kirill2434/yatube/internal/config"
	"github.com/Kirill2434/yatube/internal/domain"
	"github.com/Kirill2434/yatube/pkg/ctxutil"
)

type sessionResolver interface {
	ResolveSession(ctx context.Context, token string) (*domain.User, error)
}

// SessionCookie writes and clears the session cookie.
type SessionCookie struct {
	Name   string
	Secure bool
}

// NewSessionCookie builds a SessionCookie from auth settings.
func NewSessionCookie(cfg config.AuthConfig) SessionCookie {
	return SessionCookie{Name: cfg.CookieName, Secure: cfg.CookieSecure}
}

// Set stores token in the cookie until expires.
func (c SessionCookie) Set(w http.ResponseWriter, token string, expires time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.Name,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		MaxAge:   int(time.Until(expires).Seconds()),
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear expires the cookie in the browser.
func (c SessionCookie) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.Name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Session resolves the session cookie to the current user and stores it in
// the request context. Requests without a valid session continue anonymous;
// a rejected cookie is cleared.
func Session(resolver sessionResolver, cookie SessionCookie, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, err := r.Cookie(cookie.Name)
			if err != nil || c.Value == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}

			user, err := resolver.ResolveSession(r.Context(), c.Value)
			if err != nil {
				if !errors.Is(err, domain.ErrUnauthorized) {
					logger.ErrorContext(r.Context(), "resolve session",
						slog.String("error", err.Error()))
				}
				cookie.Clear(w)
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(ctxutil.WithUser(r.Context(), user)))
		})
	}
}
