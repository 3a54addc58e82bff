package app

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Kirill2434/yatube/internal/adapter/media"
	"github.com/Kirill2434/yatube/internal/adapter/postgres"
	"github.com/Kirill2434/yatube/internal/adapter/postgres/comment"
	"github.com/Kirill2434/yatube/internal/adapter/postgres/group"
	"github.com/Kirill2434/yatube/internal/adapter/postgres/post"
	"github.com/Kirill2434/yatube/internal/adapter/postgres/user"
	"github.com/Kirill2434/yatube/internal/auth"
	"github.com/Kirill2434/yatube/internal/config"
	"github.com/Kirill2434/yatube/internal/service/posts"
	"github.com/Kirill2434/yatube/internal/service/users"
	"github.com/Kirill2434/yatube/internal/transport/middleware"
	"github.com/Kirill2434/yatube/internal/transport/rest"
	"github.com/Kirill2434/yatube/internal/transport/web"
)

// Router is the fully wired HTTP handler of the site.
type Router struct {
	http.Handler
	limiter *middleware.RateLimiter
}

// Close stops background work owned by the router.
func (r *Router) Close() { r.limiter.Stop() }

// NewRouter builds repositories, services and transport on top of pool and
// returns the root handler. HTTP metrics are registered on reg.
func NewRouter(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, reg *prometheus.Registry) (*Router, error) {
	// Repositories
	userRepo := user.New(pool)
	groupRepo := group.New(pool)
	postRepo := post.New(pool)
	commentRepo := comment.New(pool)
	txm := postgres.NewTxManager(pool)

	// Adapters
	store := media.New(cfg.Media.Root, cfg.Media.URL)
	sessions := auth.NewSessionManager(cfg.Auth.SessionSecret, cfg.Auth.SessionIssuer, cfg.Auth.SessionTTL)

	// Services
	postService := posts.NewService(logger, postRepo, groupRepo, userRepo, commentRepo, store, txm, cfg.Pagination)
	userService := users.NewService(logger, userRepo, sessions, cfg.Auth)

	// Transport
	templates, err := web.NewTemplates(logger, store.URL)
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}
	pages := web.NewHandler(logger, postService, userService, templates, cfg)
	health := rest.NewHealthHandler(pool, store, BuildVersion())
	metrics := middleware.NewMetrics(reg)
	limiter := middleware.NewRateLimiter(5 * time.Minute)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health/live", health.Live)
	mux.HandleFunc("GET /health/ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)
	mux.Handle("GET /metrics", metrics.Handler())
	if cfg.Media.Serve {
		mux.Handle("GET "+cfg.Media.URL, store.Handler())
	}
	pages.Register(mux, metrics.Instrument, limiter.Limit("login", cfg.Auth.LoginRatePerMinute))

	chain := middleware.Chain(
		middleware.Recovery(logger, pages.ServerErrorPage()),
		middleware.RequestID(),
		middleware.Session(userService, middleware.NewSessionCookie(cfg.Auth), logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	)

	return &Router{Handler: chain(mux), limiter: limiter}, nil
}
