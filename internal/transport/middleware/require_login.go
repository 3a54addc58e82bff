package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/Kirill2434/yatube/pkg/ctxutil"
)

// RequireLogin redirects anonymous requests to loginURL with the original
// path in "next", e.g. /auth/login/?next=/create/.
func RequireLogin(loginURL string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := ctxutil.UserFromCtx(r.Context()); ok {
				next.ServeHTTP(w, r)
				return
			}
			http.Redirect(w, r, LoginRedirectURL(loginURL, r.URL.RequestURI()), http.StatusFound)
		})
	}
}

// LoginRedirectURL appends next to loginURL. Slashes in next stay unescaped.
func LoginRedirectURL(loginURL, next string) string {
	sep := "?"
	if strings.Contains(loginURL, "?") {
		sep = "&"
	}
	return loginURL + sep + "next=" + strings.ReplaceAll(url.QueryEscape(next), "%2F", "/")
}
