package web

import (
	"net/http"

	"github.com/Kirill2434/yatube/internal/transport/middleware"
)

// Instrumenter wraps a handler registered under a route pattern.
type Instrumenter func(route string, h http.Handler) http.Handler

// Register mounts every HTML route on mux. loginLimit guards sign-in
// attempts; pass nil to leave them unlimited.
func (h *Handler) Register(mux *http.ServeMux, instrument Instrumenter, loginLimit middleware.Middleware) {
	if instrument == nil {
		instrument = func(_ string, h http.Handler) http.Handler { return h }
	}
	if loginLimit == nil {
		loginLimit = func(next http.Handler) http.Handler { return next }
	}
	auth := middleware.RequireLogin(h.loginURL)

	handle := func(pattern string, hf http.Handler) {
		mux.Handle(pattern, instrument(pattern, hf))
	}

	handle("GET /{$}", http.HandlerFunc(h.Index))
	handle("GET /group/{slug}/{$}", http.HandlerFunc(h.GroupPosts))
	handle("GET /profile/{username}/{$}", http.HandlerFunc(h.Profile))
	handle("GET /posts/{id}/{$}", http.HandlerFunc(h.PostDetail))

	handle("GET /create/{$}", auth(http.HandlerFunc(h.CreateForm)))
	handle("POST /create/{$}", auth(http.HandlerFunc(h.CreatePost)))
	handle("GET /posts/{id}/edit/{$}", auth(http.HandlerFunc(h.EditForm)))
	handle("POST /posts/{id}/edit/{$}", auth(http.HandlerFunc(h.EditPost)))
	handle("POST /posts/{id}/comment/{$}", auth(http.HandlerFunc(h.AddComment)))

	handle("GET /auth/signup/{$}", http.HandlerFunc(h.SignupForm))
	handle("POST /auth/signup/{$}", http.HandlerFunc(h.Signup))
	handle("GET /auth/login/{$}", http.HandlerFunc(h.LoginForm))
	handle("POST /auth/login/{$}", loginLimit(http.HandlerFunc(h.Login)))
	handle("POST /auth/logout/{$}", http.HandlerFunc(h.Logout))

	handle("GET /about/author/{$}", http.HandlerFunc(h.AboutAuthor))
	handle("GET /about/tech/{$}", http.HandlerFunc(h.AboutTech))

	handle("/", http.HandlerFunc(h.NotFound))
}
