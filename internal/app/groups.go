package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/Kirill2434/yatube/internal/adapter/postgres"
	"github.com/Kirill2434/yatube/internal/adapter/postgres/group"
	"github.com/Kirill2434/yatube/internal/config"
	"github.com/Kirill2434/yatube/internal/domain"
)

var slugRe = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

// ValidateGroup checks a group before it is created from the command line.
func ValidateGroup(g domain.Group) error {
	var errs []domain.FieldError
	if strings.TrimSpace(g.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "This field is required."})
	} else if len([]rune(g.Title)) > 200 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "Ensure this value has at most 200 characters."})
	}
	if !slugRe.MatchString(g.Slug) {
		errs = append(errs, domain.FieldError{Field: "slug", Message: "Enter a valid slug consisting of letters, numbers, underscores or hyphens."})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// CreateGroup inserts a group. Groups have no web form; this is how they are
// administered.
func CreateGroup(ctx context.Context, cfg *config.Config, logger *slog.Logger, g domain.Group) (*domain.Group, error) {
	g.Title = strings.TrimSpace(g.Title)
	g.Slug = strings.TrimSpace(g.Slug)
	if err := ValidateGroup(g); err != nil {
		return nil, err
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	created, err := group.New(pool).Create(ctx, &g)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, domain.NewValidationError("slug", "Group with this slug already exists.")
		}
		return nil, fmt.Errorf("create group: %w", err)
	}

	logger.Info("group created",
		slog.Int64("group_id", created.ID),
		slog.String("slug", created.Slug),
	)
	return created, nil
}
