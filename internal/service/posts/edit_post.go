package posts

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Kirill2434/yatube/internal/domain"
	"github.com/Kirill2434/yatube/pkg/ctxutil"
)

// PostForEdit returns a post the current user may edit.
// Returns ErrNotFound for an unknown id and ErrForbidden when the current
// user is not the author.
func (s *Service) PostForEdit(ctx context.Context, id int64) (*domain.Post, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("posts.PostForEdit: %w", err)
	}
	if post.AuthorID != userID {
		return nil, fmt.Errorf("posts.PostForEdit post %d: %w", id, domain.ErrForbidden)
	}

	return post, nil
}

// EditPost updates the text, group and optionally the image of a post owned
// by the current user. The author and pub_date are never changed.
// A replaced image is removed after the update commits.
func (s *Service) EditPost(ctx context.Context, input EditPostInput) (*domain.Post, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Text = strings.TrimSpace(input.Text)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var newImage string
	if input.Image != nil {
		saved, err := s.media.Save(ctx, imageDir, input.Image)
		if err != nil {
			return nil, fmt.Errorf("posts.EditPost save image: %w", err)
		}
		newImage = saved
	}

	var (
		updated  *domain.Post
		oldImage string
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		post, err := s.posts.GetByID(txCtx, input.PostID)
		if err != nil {
			return err
		}
		if post.AuthorID != userID {
			return fmt.Errorf("post %d: %w", post.ID, domain.ErrForbidden)
		}

		next := *post
		next.Text = input.Text
		next.GroupID = input.GroupID
		next.Group = nil
		if newImage != "" {
			oldImage = post.Image
			next.Image = newImage
		}

		if err := s.posts.Update(txCtx, &next); err != nil {
			if input.GroupID != nil && errors.Is(err, domain.ErrNotFound) {
				return domain.NewValidationError("group", msgInvalidChoice)
			}
			return err
		}
		updated = &next
		return nil
	})
	if err != nil {
		s.removeImage(ctx, newImage)
		if errors.Is(err, domain.ErrValidation) {
			return nil, err
		}
		return nil, fmt.Errorf("posts.EditPost: %w", err)
	}

	s.removeImage(ctx, oldImage)

	s.log.InfoContext(ctx, "post edited",
		slog.Int64("post_id", updated.ID),
		slog.Int64("author_id", userID))

	return updated, nil
}
