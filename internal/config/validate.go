package config

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.SessionSecret) < 32 {
		return fmt.Errorf("auth.session_secret must be at least 32 characters (got %d)", len(c.Auth.SessionSecret))
	}
	if c.Auth.SessionTTL <= 0 {
		return fmt.Errorf("auth.session_ttl must be > 0 (got %v)", c.Auth.SessionTTL)
	}
	if !strings.HasPrefix(c.Auth.LoginURL, "/") {
		return fmt.Errorf("auth.login_url must be an absolute path (got %q)", c.Auth.LoginURL)
	}
	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be in [%d, %d] (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}
	if c.Auth.LoginRatePerMinute < 1 {
		return fmt.Errorf("auth.login_rate_per_minute must be >= 1 (got %d)", c.Auth.LoginRatePerMinute)
	}

	if c.Pagination.PostsPerPage < 1 {
		return fmt.Errorf("pagination.posts_per_page must be >= 1 (got %d)", c.Pagination.PostsPerPage)
	}

	switch c.Posts.NonAuthorEdit {
	case NonAuthorEditRedirect, NonAuthorEditForbidden:
	default:
		return fmt.Errorf("posts.non_author_edit must be %q or %q (got %q)",
			NonAuthorEditRedirect, NonAuthorEditForbidden, c.Posts.NonAuthorEdit)
	}

	if err := c.Media.validate(); err != nil {
		return fmt.Errorf("media: %w", err)
	}

	return nil
}

func (m *MediaConfig) validate() error {
	if m.Root == "" {
		return fmt.Errorf("root must not be empty")
	}
	if !strings.HasPrefix(m.URL, "/") || !strings.HasSuffix(m.URL, "/") {
		return fmt.Errorf("url must start and end with a slash (got %q)", m.URL)
	}
	if m.MaxUploadBytes <= 0 {
		return fmt.Errorf("max_upload_bytes must be > 0 (got %d)", m.MaxUploadBytes)
	}
	return nil
}
