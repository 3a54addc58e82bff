package domain

import (
	"strings"
	"time"
)

// User is a registered author. Posts and comments reference it by ID.
type User struct {
	ID           int64
	Username     string
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string
	DateJoined   time.Time
}

// FullName returns "first last", falling back to the username when both are empty.
func (u User) FullName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Username
	}
	return name
}

func (u User) String() string { return u.Username }
