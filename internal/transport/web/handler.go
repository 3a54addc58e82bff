package web

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/Kirill2434/yatube/internal/config"
	"github.com/Kirill2434/yatube/internal/domain"
	"github.com/Kirill2434/yatube/internal/paginate"
	"github.com/Kirill2434/yatube/internal/service/posts"
	"github.com/Kirill2434/yatube/internal/service/users"
	"github.com/Kirill2434/yatube/internal/transport/middleware"
)

// multipartMemory is how much of a multipart body is kept in memory before
// spilling to temporary files.
const multipartMemory = 8 << 20

// bodyOverhead is allowed on top of the image limit for the other form parts.
const bodyOverhead = 1 << 20

// ---------------------------------------------------------------------------
// Consumer-defined interfaces
// ---------------------------------------------------------------------------

type postService interface {
	Index(ctx context.Context, rawPage string) (paginate.Page[domain.Post], error)
	GroupFeed(ctx context.Context, slug, rawPage string) (*posts.GroupFeed, error)
	ProfileFeed(ctx context.Context, username, rawPage string) (*posts.ProfileFeed, error)
	PostDetail(ctx context.Context, id int64) (*posts.PostDetail, error)
	Groups(ctx context.Context) ([]domain.Group, error)
	CreatePost(ctx context.Context, input posts.CreatePostInput) (*domain.Post, error)
	PostForEdit(ctx context.Context, id int64) (*domain.Post, error)
	EditPost(ctx context.Context, input posts.EditPostInput) (*domain.Post, error)
	AddComment(ctx context.Context, input posts.AddCommentInput) (*domain.Comment, error)
}

type userService interface {
	Signup(ctx context.Context, input users.SignupInput) (*users.Session, error)
	Login(ctx context.Context, input users.LoginInput) (*users.Session, error)
}

type renderer interface {
	Render(w http.ResponseWriter, r *http.Request, status int, name string, data Data)
}

// ---------------------------------------------------------------------------
// Handler
// ---------------------------------------------------------------------------

// Handler serves every HTML route.
type Handler struct {
	posts         postService
	users         userService
	render        renderer
	cookie        middleware.SessionCookie
	log           *slog.Logger
	loginURL      string
	nonAuthorEdit string
	maxUpload     int64
}

// NewHandler creates a new Handler for the HTML pages.
func NewHandler(
	logger *slog.Logger,
	postSvc postService,
	userSvc userService,
	render renderer,
	cfg *config.Config,
) *Handler {
	return &Handler{
		posts:         postSvc,
		users:         userSvc,
		render:        render,
		cookie:        middleware.NewSessionCookie(cfg.Auth),
		log:           logger.With("handler", "web"),
		loginURL:      cfg.Auth.LoginURL,
		nonAuthorEdit: cfg.Posts.NonAuthorEdit,
		maxUpload:     cfg.Media.MaxUploadBytes,
	}
}

// ---------------------------------------------------------------------------
// Error pages
// ---------------------------------------------------------------------------

// NotFound renders the 404 page. It also serves unmatched routes.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.render.Render(w, r, http.StatusNotFound, "core/404.html", Data{"path": r.URL.Path})
}

func (h *Handler) forbidden(w http.ResponseWriter, r *http.Request) {
	h.render.Render(w, r, http.StatusForbidden, "core/403.html", nil)
}

func (h *Handler) serverError(w http.ResponseWriter, r *http.Request, err error) {
	h.log.ErrorContext(r.Context(), "request failed",
		slog.String("path", r.URL.Path),
		slog.String("error", err.Error()))
	h.render.Render(w, r, http.StatusInternalServerError, "core/500.html", nil)
}

// ServerErrorPage is the fallback the recovery middleware renders after a panic.
func (h *Handler) ServerErrorPage() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.render.Render(w, r, http.StatusInternalServerError, "core/500.html", nil)
	})
}

// fail maps a service error that is not a validation error to a response.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		h.NotFound(w, r)
	case errors.Is(err, domain.ErrUnauthorized):
		http.Redirect(w, r, middleware.LoginRedirectURL(h.loginURL, r.URL.RequestURI()), http.StatusFound)
	case errors.Is(err, domain.ErrForbidden):
		h.forbidden(w, r)
	default:
		h.serverError(w, r, err)
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// pathID parses a positive numeric path value. ok is false for anything else.
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func postURL(id int64) string {
	return "/posts/" + strconv.FormatInt(id, 10) + "/"
}

func profileURL(username string) string {
	return "/profile/" + url.PathEscape(username) + "/"
}

// safeNext returns next when it is a same-site relative path, otherwise "/".
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.Contains(next, `\`) {
		return "/"
	}
	u, err := url.Parse(next)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return "/"
	}
	return next
}
