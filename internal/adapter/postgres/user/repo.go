// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/Kirill2434/yatube/internal/adapter/postgres"
	"github.com/Kirill2434/yatube/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type userRow struct {
	ID           int64     `db:"id"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	PasswordHash string    `db:"password_hash"`
	DateJoined   time.Time `db:"date_joined"`
}

func (r userRow) toDomain() *domain.User {
	return &domain.User{
		ID:           r.ID,
		Username:     r.Username,
		Email:        r.Email,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		PasswordHash: r.PasswordHash,
		DateJoined:   r.DateJoined,
	}
}

var columns = []string{"id", "username", "email", "first_name", "last_name", "password_hash", "date_joined"}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getBy(ctx, squirrel.Eq{"id": id}, id)
}

// GetByUsername returns a user by username (exact, case-sensitive).
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getBy(ctx, squirrel.Eq{"username": username}, username)
}

func (r *Repo) getBy(ctx context.Context, where squirrel.Eq, key any) (*domain.User, error) {
	query, args, err := postgres.Builder.Select(columns...).From("users").Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get user: %w", err)
	}

	var row userRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", key)
	}
	return row.toDomain(), nil
}

// Create inserts a new user and returns the persisted domain.User.
// Returns domain.ErrAlreadyExists if the username is taken.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	query, args, err := postgres.Builder.
		Insert("users").
		Columns("username", "email", "first_name", "last_name", "password_hash").
		Values(u.Username, u.Email, u.FirstName, u.LastName, u.PasswordHash).
		Suffix("RETURNING id, date_joined").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert user: %w", err)
	}

	created := *u
	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&created.ID, &created.DateJoined)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.Username)
	}
	return &created, nil
}
