// Package posts implements the blog feeds and post/comment authoring.
package posts

import (
	"context"
	"log/slog"

	"github.com/Kirill2434/yatube/internal/config"
	"github.com/Kirill2434/yatube/internal/domain"
	"github.com/Kirill2434/yatube/internal/paginate"
)

// imageDir is the media subdirectory post images are stored under.
const imageDir = "posts"

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type postRepo interface {
	List(ctx context.Context, f domain.PostFilter, limit, offset int) ([]domain.Post, error)
	Count(ctx context.Context, f domain.PostFilter) (int, error)
	GetByID(ctx context.Context, id int64) (*domain.Post, error)
	Create(ctx context.Context, p *domain.Post) (*domain.Post, error)
	Update(ctx context.Context, p *domain.Post) error
}

type groupRepo interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Group, error)
	List(ctx context.Context) ([]domain.Group, error)
}

type userRepo interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type commentRepo interface {
	ListByPost(ctx context.Context, postID int64) ([]domain.Comment, error)
	Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
}

type mediaStore interface {
	Save(ctx context.Context, dir string, up *domain.Upload) (string, error)
	Delete(ctx context.Context, rel string) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements feeds, post detail and authoring operations.
type Service struct {
	log      *slog.Logger
	posts    postRepo
	groups   groupRepo
	users    userRepo
	comments commentRepo
	media    mediaStore
	tx       txManager
	pager    paginate.Paginator
}

// NewService creates a new posts service. Listing page size comes from cfg.
func NewService(
	logger *slog.Logger,
	posts postRepo,
	groups groupRepo,
	users userRepo,
	comments commentRepo,
	media mediaStore,
	tx txManager,
	cfg config.PaginationConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "posts"),
		posts:    posts,
		groups:   groups,
		users:    users,
		comments: comments,
		media:    media,
		tx:       tx,
		pager:    paginate.New(cfg.PostsPerPage),
	}
}

// removeImage deletes a stored image, logging instead of failing.
func (s *Service) removeImage(ctx context.Context, rel string) {
	if rel == "" {
		return
	}
	if err := s.media.Delete(ctx, rel); err != nil {
		s.log.WarnContext(ctx, "remove image",
			slog.String("image", rel),
			slog.String("error", err.Error()))
	}
}
