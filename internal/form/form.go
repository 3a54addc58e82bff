// Package form binds submitted request values against explicit field schemas.
// A bound Form is either valid, exposing cleaned values, or carries
// per-field error messages for re-rendering the same page.
package form

import (
	"errors"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/Kirill2434/yatube/internal/domain"
)

// Messages reported by the built-in validators.
const (
	MsgRequired      = "This field is required."
	MsgInvalidChoice = "Select a valid choice. That choice is not one of the available choices."
	MsgInvalidImage  = "Upload a valid image. The file you uploaded was either not an image or a corrupted image."
	MsgInvalidEmail  = "Enter a valid email address."
	MsgFileTooLarge  = "The file is too large."
)

// Kind is the input type of a field.
type Kind int

const (
	KindText Kind = iota
	KindTextarea
	KindPassword
	KindEmail
	KindChoice
	KindImage
)

// Widget returns the name templates switch on to render the field.
func (k Kind) Widget() string {
	switch k {
	case KindTextarea:
		return "textarea"
	case KindPassword:
		return "password"
	case KindEmail:
		return "email"
	case KindChoice:
		return "select"
	case KindImage:
		return "file"
	default:
		return "text"
	}
}

// Choice is one option of a KindChoice field.
type Choice struct {
	Value string
	Label string
}

// Field declares one named input.
type Field struct {
	Name      string
	Label     string
	HelpText  string
	Kind      Kind
	Required  bool
	MaxLength int      // runes; 0 means unlimited
	MaxBytes  int64    // KindImage only; 0 means unlimited
	Choices   []Choice // KindChoice only; an empty Value is the blank option
}

// Schema is a fixed set of fields plus an optional cross-field check that runs
// after every field validated.
type Schema struct {
	Fields []Field
	Clean  func(f *Form)
}

// Submission is the raw data of one request.
type Submission struct {
	Values map[string][]string
	Files  map[string]*domain.Upload
}

// Form is a schema bound to initial values or to a submission.
type Form struct {
	schema  Schema
	bound   bool
	values  map[string]string
	files   map[string]*domain.Upload
	errors  map[string][]string
	checked bool
}

// New returns an unbound form showing initial values. It is never valid.
func (s Schema) New(initial map[string]string) *Form {
	f := &Form{schema: s, values: map[string]string{}, files: map[string]*domain.Upload{}}
	for k, v := range initial {
		f.values[k] = v
	}
	return f
}

// Bind attaches a submission and validates it.
func (s Schema) Bind(sub Submission) *Form {
	f := &Form{
		schema: s,
		bound:  true,
		values: map[string]string{},
		files:  map[string]*domain.Upload{},
		errors: map[string][]string{},
	}
	for _, fd := range s.Fields {
		if fd.Kind == KindImage {
			if up, ok := sub.Files[fd.Name]; ok && up != nil && (up.Size > 0 || up.Filename != "") {
				f.files[fd.Name] = up
			}
			continue
		}
		if vs := sub.Values[fd.Name]; len(vs) > 0 {
			f.values[fd.Name] = vs[0]
		}
	}
	f.validate()
	return f
}

func (f *Form) validate() {
	for _, fd := range f.schema.Fields {
		if msg := f.cleanField(fd); msg != "" {
			f.AddError(fd.Name, msg)
		}
	}
	if f.schema.Clean != nil {
		f.schema.Clean(f)
	}
	f.checked = true
}

func (f *Form) cleanField(fd Field) string {
	if fd.Kind == KindImage {
		up, ok := f.files[fd.Name]
		if !ok {
			if fd.Required {
				return MsgRequired
			}
			return ""
		}
		if fd.MaxBytes > 0 && up.Size > fd.MaxBytes {
			return MsgFileTooLarge
		}
		ct := http.DetectContentType(up.Data)
		if !slices.Contains(imageTypes, ct) {
			return MsgInvalidImage
		}
		up.ContentType = ct
		return ""
	}

	// Invalid UTF-8 sequences become U+FFFD.
	v := strings.ToValidUTF8(f.values[fd.Name], "\uFFFD")
	if fd.Kind != KindPassword {
		v = strings.TrimSpace(v)
	}
	f.values[fd.Name] = v
	if v == "" {
		if fd.Required {
			return MsgRequired
		}
		return ""
	}
	if fd.MaxLength > 0 && utf8.RuneCountInString(v) > fd.MaxLength {
		return "Ensure this value has at most " + strconv.Itoa(fd.MaxLength) + " characters."
	}
	switch fd.Kind {
	case KindChoice:
		if !slices.ContainsFunc(fd.Choices, func(c Choice) bool { return c.Value == v }) {
			return MsgInvalidChoice
		}
	case KindEmail:
		at := strings.IndexByte(v, '@')
		if at < 1 || at == len(v)-1 || strings.ContainsAny(v, " \t") {
			return MsgInvalidEmail
		}
	}
	return ""
}

var imageTypes = []string{"image/gif", "image/jpeg", "image/png", "image/webp"}

// Valid reports whether the form is bound and has no errors.
func (f *Form) Valid() bool {
	return f.bound && f.checked && len(f.errors) == 0
}

// Value returns the cleaned (or initial) value of a field.
func (f *Form) Value(name string) string { return f.values[name] }

// File returns the uploaded file for an image field, or nil.
func (f *Form) File(name string) *domain.Upload { return f.files[name] }

// AddError records a message for field. Use domain.NonFieldErrors for
// errors about the whole submission.
func (f *Form) AddError(field, msg string) {
	if f.errors == nil {
		f.errors = map[string][]string{}
	}
	f.errors[field] = append(f.errors[field], msg)
}

// AddValidationError copies the field errors of a *domain.ValidationError into
// the form. Errors for unknown fields become non-field errors. It reports
// whether err was a validation error.
func (f *Form) AddValidationError(err error) bool {
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		return false
	}
	for _, fe := range ve.Errors {
		name := fe.Field
		if !f.hasField(name) {
			name = domain.NonFieldErrors
		}
		f.AddError(name, fe.Message)
	}
	return true
}

// Errors returns the messages for one field.
func (f *Form) Errors(name string) []string { return f.errors[name] }

// NonFieldErrors returns errors not tied to a single field.
func (f *Form) NonFieldErrors() []string { return f.errors[domain.NonFieldErrors] }

func (f *Form) hasField(name string) bool {
	return slices.ContainsFunc(f.schema.Fields, func(fd Field) bool { return fd.Name == name })
}
