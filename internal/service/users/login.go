package users

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/Kirill2434/yatube/internal/domain"
)

// Login authenticates a user by username and password.
// Returns ErrUnauthorized if the user is not found or the password is wrong.
func (s *Service) Login(ctx context.Context, input LoginInput) (*Session, error) {
	input.Username = strings.TrimSpace(input.Username)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("users.Login get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	session, err := s.open(user)
	if err != nil {
		return nil, fmt.Errorf("users.Login: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in",
		slog.Int64("user_id", user.ID))

	return session, nil
}

// ResolveSession returns the user a session token belongs to.
// Returns ErrUnauthorized for invalid or expired tokens and for deleted users.
func (s *Service) ResolveSession(ctx context.Context, token string) (*domain.User, error) {
	userID, err := s.sessions.Validate(token)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("users.ResolveSession: %w", err)
	}

	return user, nil
}
