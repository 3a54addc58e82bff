// Package comment implements the Comment repository using PostgreSQL.
// Comments are append-only.
package comment

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/Kirill2434/yatube/internal/adapter/postgres"
	"github.com/Kirill2434/yatube/internal/domain"
)

// Repo provides comment persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new comment repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type commentRow struct {
	ID             int64     `db:"id"`
	PostID         int64     `db:"post_id"`
	AuthorID       int64     `db:"author_id"`
	AuthorUsername string    `db:"author_username"`
	Text           string    `db:"text"`
	Created        time.Time `db:"created"`
}

// ListByPost returns the comments of postID, oldest first.
// Returns an empty slice (not nil) when there are none.
func (r *Repo) ListByPost(ctx context.Context, postID int64) ([]domain.Comment, error) {
	query, args, err := postgres.Builder.
		Select("c.id", "c.post_id", "c.author_id", "u.username AS author_username", "c.text", "c.created").
		From("comments c").
		Join("users u ON u.id = c.author_id").
		Where(squirrel.Eq{"c.post_id": postID}).
		OrderBy("c.created", "c.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list comments: %w", err)
	}

	var rows []commentRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	comments := make([]domain.Comment, len(rows))
	for i, row := range rows {
		comments[i] = domain.Comment{
			ID:       row.ID,
			PostID:   row.PostID,
			AuthorID: row.AuthorID,
			Author:   row.AuthorUsername,
			Text:     row.Text,
			Created:  row.Created,
		}
	}
	return comments, nil
}

// Create inserts c and returns a copy with the assigned ID and creation time.
// A missing post or author yields domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	query, args, err := postgres.Builder.
		Insert("comments").
		Columns("post_id", "author_id", "text").
		Values(c.PostID, c.AuthorID, c.Text).
		Suffix("RETURNING id, created").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert comment: %w", err)
	}

	created := *c
	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&created.ID, &created.Created)
	if err != nil {
		return nil, postgres.MapError(err, "comment", c.PostID)
	}
	return &created, nil
}
