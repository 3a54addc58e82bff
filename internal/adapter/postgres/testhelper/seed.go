package testhelper

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Kirill2434/yatube/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a unique username and an unusable password hash.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	user := domain.User{
		Username:     "user-" + uniqueSuffix(),
		Email:        "user-" + uniqueSuffix() + "@example.com",
		PasswordHash: "!",
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO users (username, email, password_hash)
		 VALUES ($1, $2, $3)
		 RETURNING id, date_joined`,
		user.Username, user.Email, user.PasswordHash,
	).Scan(&user.ID, &user.DateJoined)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedGroup creates a group with a unique slug.
func SeedGroup(t *testing.T, pool *pgxpool.Pool) domain.Group {
	t.Helper()

	suffix := uniqueSuffix()
	group := domain.Group{
		Title:       "Группа " + suffix,
		Slug:        "group-" + suffix,
		Description: "Тестовое описание",
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO groups (title, slug, description) VALUES ($1, $2, $3) RETURNING id`,
		group.Title, group.Slug, group.Description,
	).Scan(&group.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedGroup: %v", err)
	}

	return group
}

// SeedPost creates a post by author, optionally in group.
func SeedPost(t *testing.T, pool *pgxpool.Pool, author domain.User, group *domain.Group) domain.Post {
	t.Helper()

	post := domain.Post{
		Text:     "Тестовый пост " + uniqueSuffix(),
		AuthorID: author.ID,
		Author:   author.Username,
	}
	if group != nil {
		post.GroupID = &group.ID
		post.Group = group
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO posts (text, author_id, group_id) VALUES ($1, $2, $3) RETURNING id, pub_date`,
		post.Text, post.AuthorID, post.GroupID,
	).Scan(&post.ID, &post.PubDate)
	if err != nil {
		t.Fatalf("testhelper: SeedPost: %v", err)
	}

	return post
}

// SeedPosts creates n posts by author in group, oldest first.
func SeedPosts(t *testing.T, pool *pgxpool.Pool, author domain.User, group *domain.Group, n int) []domain.Post {
	t.Helper()

	posts := make([]domain.Post, 0, n)
	for range n {
		posts = append(posts, SeedPost(t, pool, author, group))
	}
	return posts
}

// CountRows returns SELECT count(*) for table with an optional WHERE clause.
func CountRows(t *testing.T, pool *pgxpool.Pool, table, where string, args ...any) int {
	t.Helper()

	query := fmt.Sprintf("SELECT count(*) FROM %s", table)
	if where != "" {
		query += " WHERE " + where
	}

	var n int
	if err := pool.QueryRow(context.Background(), query, args...).Scan(&n); err != nil {
		t.Fatalf("testhelper: CountRows %s: %v", table, err)
	}
	return n
}
