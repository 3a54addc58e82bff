// Package users implements signup, password login and session resolution.
package users

import (
	"context"
	"log/slog"
	"time"

	"github.com/Kirill2434/yatube/internal/config"
	"github.com/Kirill2434/yatube/internal/domain"
)

// userRepo defines the user repository interface needed by the users service.
type userRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
}

// sessionManager defines the session token interface needed by the users service.
type sessionManager interface {
	Issue(userID int64) (string, time.Time, error)
	Validate(token string) (int64, error)
}

// Service implements account operations.
type Service struct {
	log      *slog.Logger
	users    userRepo
	sessions sessionManager
	cfg      config.AuthConfig
}

// NewService creates a new users service instance.
func NewService(logger *slog.Logger, users userRepo, sessions sessionManager, cfg config.AuthConfig) *Service {
	return &Service{
		log:      logger.With("service", "users"),
		users:    users,
		sessions: sessions,
		cfg:      cfg,
	}
}
