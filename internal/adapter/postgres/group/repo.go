// Package group implements the Group repository using PostgreSQL.
package group

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/Kirill2434/yatube/internal/adapter/postgres"
	"github.com/Kirill2434/yatube/internal/domain"
)

// Repo provides group persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new group repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type groupRow struct {
	ID          int64  `db:"id"`
	Title       string `db:"title"`
	Slug        string `db:"slug"`
	Description string `db:"description"`
}

func (r groupRow) toDomain() domain.Group {
	return domain.Group{ID: r.ID, Title: r.Title, Slug: r.Slug, Description: r.Description}
}

func selectGroups() squirrel.SelectBuilder {
	return postgres.Builder.Select("id", "title", "slug", "description").From("groups")
}

// GetBySlug returns the group with slug.
// Returns domain.ErrNotFound if there is none.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (*domain.Group, error) {
	query, args, err := selectGroups().Where(squirrel.Eq{"slug": slug}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get group: %w", err)
	}

	var row groupRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "group", slug)
	}
	g := row.toDomain()
	return &g, nil
}

// List returns all groups ordered by title.
// Returns an empty slice (not nil) when there are none.
func (r *Repo) List(ctx context.Context) ([]domain.Group, error) {
	query, args, err := selectGroups().OrderBy("title", "id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list groups: %w", err)
	}

	var rows []groupRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}

	groups := make([]domain.Group, len(rows))
	for i, row := range rows {
		groups[i] = row.toDomain()
	}
	return groups, nil
}

// Create inserts a new group.
// Returns domain.ErrAlreadyExists if the slug is taken.
func (r *Repo) Create(ctx context.Context, g *domain.Group) (*domain.Group, error) {
	query, args, err := postgres.Builder.
		Insert("groups").
		Columns("title", "slug", "description").
		Values(g.Title, g.Slug, g.Description).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert group: %w", err)
	}

	created := *g
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&created.ID); err != nil {
		return nil, postgres.MapError(err, "group", g.Slug)
	}
	return &created, nil
}
