package posts

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Kirill2434/yatube/internal/domain"
	"github.com/Kirill2434/yatube/pkg/ctxutil"
)

// AddComment appends a comment by the current user to a post.
// Returns ErrNotFound when the post does not exist.
func (s *Service) AddComment(ctx context.Context, input AddCommentInput) (*domain.Comment, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Text = strings.TrimSpace(input.Text)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.comments.Create(ctx, &domain.Comment{
		PostID:   input.PostID,
		AuthorID: userID,
		Text:     input.Text,
	})
	if err != nil {
		return nil, fmt.Errorf("posts.AddComment: %w", err)
	}

	s.log.InfoContext(ctx, "comment added",
		slog.Int64("comment_id", created.ID),
		slog.Int64("post_id", input.PostID),
		slog.Int64("author_id", userID))

	return created, nil
}
