package users

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/Kirill2434/yatube/internal/domain"
)

// Signup creates an account with a bcrypt password hash and opens a session
// for it. A taken username is reported as a validation error on "username".
func (s *Service) Signup(ctx context.Context, input SignupInput) (*Session, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("users.Signup hash password: %w", err)
	}

	user, err := s.users.Create(ctx, &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, domain.NewValidationError("username", MsgUsernameTaken)
		}
		return nil, fmt.Errorf("users.Signup: %w", err)
	}

	session, err := s.open(user)
	if err != nil {
		return nil, fmt.Errorf("users.Signup: %w", err)
	}

	s.log.InfoContext(ctx, "user signed up",
		slog.Int64("user_id", user.ID),
		slog.String("username", user.Username))

	return session, nil
}

func (s *Service) open(user *domain.User) (*Session, error) {
	token, expires, err := s.sessions.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue session: %w", err)
	}
	return &Session{User: user, Token: token, ExpiresAt: expires}, nil
}
