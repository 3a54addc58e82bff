// Package post implements the Post repository using PostgreSQL.
// Listing reads JOIN the author and group so rows carry everything a feed shows.
package post

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/Kirill2434/yatube/internal/adapter/postgres"
	"github.com/Kirill2434/yatube/internal/domain"
)

// Repo provides post persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new post repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Row mapping
// ---------------------------------------------------------------------------

type postRow struct {
	ID             int64     `db:"id"`
	Text           string    `db:"text"`
	PubDate        time.Time `db:"pub_date"`
	AuthorID       int64     `db:"author_id"`
	AuthorUsername string    `db:"author_username"`
	GroupID        *int64    `db:"group_id"`
	GroupSlug      *string   `db:"group_slug"`
	GroupTitle     *string   `db:"group_title"`
	Image          string    `db:"image"`
}

func (r postRow) toDomain() domain.Post {
	p := domain.Post{
		ID:       r.ID,
		Text:     r.Text,
		PubDate:  r.PubDate,
		AuthorID: r.AuthorID,
		Author:   r.AuthorUsername,
		GroupID:  r.GroupID,
		Image:    r.Image,
	}
	if r.GroupID != nil {
		g := &domain.Group{ID: *r.GroupID}
		if r.GroupSlug != nil {
			g.Slug = *r.GroupSlug
		}
		if r.GroupTitle != nil {
			g.Title = *r.GroupTitle
		}
		p.Group = g
	}
	return p
}

var selectColumns = []string{
	"p.id",
	"p.text",
	"p.pub_date",
	"p.author_id",
	"u.username AS author_username",
	"p.group_id",
	"g.slug AS group_slug",
	"g.title AS group_title",
	"p.image",
}

func selectPosts() squirrel.SelectBuilder {
	return postgres.Builder.
		Select(selectColumns...).
		From("posts p").
		Join("users u ON u.id = p.author_id").
		LeftJoin("groups g ON g.id = p.group_id")
}

func applyFilter(b squirrel.SelectBuilder, f domain.PostFilter) squirrel.SelectBuilder {
	if f.GroupID != nil {
		b = b.Where(squirrel.Eq{"p.group_id": *f.GroupID})
	}
	if f.AuthorID != nil {
		b = b.Where(squirrel.Eq{"p.author_id": *f.AuthorID})
	}
	return b
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns up to limit posts matching f, newest first, skipping offset.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, f domain.PostFilter, limit, offset int) ([]domain.Post, error) {
	if limit <= 0 {
		return []domain.Post{}, nil
	}

	query, args, err := applyFilter(selectPosts(), f).
		OrderBy("p.pub_date DESC", "p.id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list posts: %w", err)
	}

	var rows []postRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	posts := make([]domain.Post, len(rows))
	for i, row := range rows {
		posts[i] = row.toDomain()
	}
	return posts, nil
}

// Count returns the number of posts matching f.
func (r *Repo) Count(ctx context.Context, f domain.PostFilter) (int, error) {
	query, args, err := applyFilter(postgres.Builder.Select("count(*)").From("posts p"), f).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count posts: %w", err)
	}

	var n int64
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}
	return int(n), nil
}

// GetByID returns a post with its author username and group.
// Returns domain.ErrNotFound if the post does not exist.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	query, args, err := selectPosts().Where(squirrel.Eq{"p.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get post: %w", err)
	}

	var row postRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "post", id)
	}

	p := row.toDomain()
	return &p, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts p and returns a copy with the assigned ID and pub_date.
// A missing author or group yields domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, p *domain.Post) (*domain.Post, error) {
	query, args, err := postgres.Builder.
		Insert("posts").
		Columns("text", "author_id", "group_id", "image").
		Values(p.Text, p.AuthorID, p.GroupID, p.Image).
		Suffix("RETURNING id, pub_date").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert post: %w", err)
	}

	created := *p
	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&created.ID, &created.PubDate)
	if err != nil {
		return nil, postgres.MapError(err, "post", "new")
	}
	return &created, nil
}

// Update overwrites the text, group and image of post p.ID. The author and
// pub_date never change. Returns domain.ErrNotFound if the post does not exist.
func (r *Repo) Update(ctx context.Context, p *domain.Post) error {
	query, args, err := postgres.Builder.
		Update("posts").
		Set("text", p.Text).
		Set("group_id", p.GroupID).
		Set("image", p.Image).
		Where(squirrel.Eq{"id": p.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update post: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "post", p.ID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("post %d: %w", p.ID, domain.ErrNotFound)
	}
	return nil
}
