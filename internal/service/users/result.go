package users

import (
	"time"

	"github.com/Kirill2434/yatube/internal/domain"
)

// Session is returned by Signup and Login. Token goes into the session cookie.
type Session struct {
	User      *domain.User
	Token     string
	ExpiresAt time.Time
}
