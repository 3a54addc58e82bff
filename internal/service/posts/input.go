package posts

import (
	"strings"

	"github.com/Kirill2434/yatube/internal/domain"
)

// Messages returned in validation errors.
const (
	msgRequired      = "This field is required."
	msgInvalidChoice = "Select a valid choice. That choice is not one of the available choices."
)

// CreatePostInput holds parameters for creating a post as the current user.
type CreatePostInput struct {
	Text    string
	GroupID *int64
	Image   *domain.Upload
}

// Validate validates the create input.
func (i CreatePostInput) Validate() error {
	if errs := validatePost(i.Text, i.GroupID); len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// EditPostInput holds parameters for editing a post. A nil Image keeps the
// current one.
type EditPostInput struct {
	PostID  int64
	Text    string
	GroupID *int64
	Image   *domain.Upload
}

// Validate validates the edit input.
func (i EditPostInput) Validate() error {
	var errs []domain.FieldError
	if i.PostID <= 0 {
		errs = append(errs, domain.FieldError{Field: "post_id", Message: "invalid"})
	}
	errs = append(errs, validatePost(i.Text, i.GroupID)...)
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validatePost(text string, groupID *int64) []domain.FieldError {
	var errs []domain.FieldError
	if strings.TrimSpace(text) == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: msgRequired})
	}
	if groupID != nil && *groupID <= 0 {
		errs = append(errs, domain.FieldError{Field: "group", Message: msgInvalidChoice})
	}
	return errs
}

// AddCommentInput holds parameters for commenting on a post as the current user.
type AddCommentInput struct {
	PostID int64
	Text   string
}

// Validate validates the comment input.
func (i AddCommentInput) Validate() error {
	var errs []domain.FieldError
	if i.PostID <= 0 {
		errs = append(errs, domain.FieldError{Field: "post_id", Message: "invalid"})
	}
	if strings.TrimSpace(i.Text) == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: msgRequired})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
