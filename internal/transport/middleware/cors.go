package middleware

import (
	"net/http"

	"github.com/rs/cors"

	"github.com/Kirill2434/yatube/internal/config"
)

// CORS returns middleware that handles Cross-Origin Resource Sharing and
// answers preflight OPTIONS requests. With no allowed origins configured it
// passes requests through untouched.
func CORS(cfg config.CORSConfig) Middleware {
	origins := cfg.Origins()
	if len(origins) == 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   cfg.Methods(),
		AllowedHeaders:   cfg.Headers(),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
	return c.Handler
}
