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

// CreatePost publishes a post authored by the current user. The image, if
// any, is stored first and removed again when the insert fails.
// A group that no longer exists is reported as a validation error on "group".
func (s *Service) CreatePost(ctx context.Context, input CreatePostInput) (*domain.Post, error) {
	user, ok := ctxutil.UserFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Text = strings.TrimSpace(input.Text)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var image string
	if input.Image != nil {
		saved, err := s.media.Save(ctx, imageDir, input.Image)
		if err != nil {
			return nil, fmt.Errorf("posts.CreatePost save image: %w", err)
		}
		image = saved
	}

	created, err := s.posts.Create(ctx, &domain.Post{
		Text:     input.Text,
		AuthorID: user.ID,
		GroupID:  input.GroupID,
		Image:    image,
	})
	if err != nil {
		s.removeImage(ctx, image)
		if input.GroupID != nil && errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewValidationError("group", msgInvalidChoice)
		}
		return nil, fmt.Errorf("posts.CreatePost: %w", err)
	}
	created.Author = user.Username

	s.log.InfoContext(ctx, "post created",
		slog.Int64("post_id", created.ID),
		slog.Int64("author_id", user.ID),
		slog.Bool("image", image != ""))

	return created, nil
}
