package users

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Kirill2434/yatube/internal/domain"
)

const (
	maxUsernameLen = 150
	maxNameLen     = 150
	maxEmailLen    = 254
)

// Messages returned in validation errors.
const (
	MsgRequired        = "This field is required."
	MsgInvalidUsername = "Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters."
	MsgUsernameTaken   = "A user with that username already exists."
	MsgInvalidLogin    = "Please enter a correct username and password. Note that both fields may be case-sensitive."
	msgTooLong         = "Ensure this value has at most %d characters."
)

// SignupInput holds parameters for registering an account.
type SignupInput struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
	Password  string
}

func (i *SignupInput) normalize() {
	i.Username = strings.TrimSpace(i.Username)
	i.Email = strings.TrimSpace(i.Email)
	i.FirstName = strings.TrimSpace(i.FirstName)
	i.LastName = strings.TrimSpace(i.LastName)
}

// Validate validates the signup input.
func (i SignupInput) Validate() error {
	var errs []domain.FieldError

	switch {
	case i.Username == "":
		errs = append(errs, domain.FieldError{Field: "username", Message: MsgRequired})
	case utf8.RuneCountInString(i.Username) > maxUsernameLen:
		errs = append(errs, tooLong("username", maxUsernameLen))
	case !validUsername(i.Username):
		errs = append(errs, domain.FieldError{Field: "username", Message: MsgInvalidUsername})
	}

	if utf8.RuneCountInString(i.Email) > maxEmailLen {
		errs = append(errs, tooLong("email", maxEmailLen))
	}
	if utf8.RuneCountInString(i.FirstName) > maxNameLen {
		errs = append(errs, tooLong("first_name", maxNameLen))
	}
	if utf8.RuneCountInString(i.LastName) > maxNameLen {
		errs = append(errs, tooLong("last_name", maxNameLen))
	}

	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password1", Message: MsgRequired})
	} else if len(i.Password) > 72 {
		// bcrypt rejects passwords over 72 bytes.
		errs = append(errs, tooLong("password1", 72))
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// LoginInput holds parameters for password login.
type LoginInput struct {
	Username string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError
	if i.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: MsgRequired})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: MsgRequired})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func tooLong(field string, n int) domain.FieldError {
	return domain.FieldError{Field: field, Message: fmt.Sprintf(msgTooLong, n)}
}

// validUsername allows letters, digits and @ . + - _.
func validUsername(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || strings.ContainsRune("@.+-_", r) {
			continue
		}
		return false
	}
	return true
}
