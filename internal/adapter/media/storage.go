// Package media stores uploaded post images on the local filesystem.
package media

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/Kirill2434/yatube/internal/domain"
)

var extensions = map[string]string{
	"image/gif":  ".gif",
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// Storage writes files under a root directory and hands out slash-separated
// paths relative to it.
type Storage struct {
	root string
	url  string
}

// New creates a Storage rooted at root, served under url (e.g. "/media/").
func New(root, url string) *Storage {
	return &Storage{root: root, url: url}
}

// Save writes up under dir with a generated name and returns its relative
// path, e.g. "posts/3f0c....png".
func (s *Storage) Save(ctx context.Context, dir string, up *domain.Upload) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ct := up.ContentType
	if ct == "" {
		ct = http.DetectContentType(up.Data)
	}
	ext, ok := extensions[ct]
	if !ok {
		ext = strings.ToLower(filepath.Ext(up.Filename))
	}

	rel := path.Join(dir, uuid.NewString()+ext)
	full := s.fullPath(rel)

	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("media: create dir: %w", err)
	}
	if err := os.WriteFile(full, up.Data, 0o644); err != nil {
		return "", fmt.Errorf("media: write %s: %w", rel, err)
	}
	return rel, nil
}

// Delete removes a previously saved file. A missing file is not an error.
func (s *Storage) Delete(_ context.Context, rel string) error {
	if rel == "" {
		return nil
	}
	if err := os.Remove(s.fullPath(rel)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("media: delete %s: %w", rel, err)
	}
	return nil
}

// URL returns the public URL of a stored file.
func (s *Storage) URL(rel string) string {
	if rel == "" {
		return ""
	}
	return s.url + strings.TrimPrefix(rel, "/")
}

// Check reports whether the root directory is usable. It is the media
// component of the health endpoint.
func (s *Storage) Check(_ context.Context) error {
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return fmt.Errorf("media root: %w", err)
	}
	return nil
}

// Handler serves the root directory under the configured URL prefix.
// Directory listings are disabled.
func (s *Storage) Handler() http.Handler {
	return http.StripPrefix(s.url, http.FileServer(noDirFS{http.Dir(s.root)}))
}

func (s *Storage) fullPath(rel string) string {
	clean := path.Clean("/" + rel)
	return filepath.Join(s.root, filepath.FromSlash(clean))
}

type noDirFS struct{ fs http.FileSystem }

func (n noDirFS) Open(name string) (http.File, error) {
	f, err := n.fs.Open(name)
	if err != nil {
		return nil, err
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if st.IsDir() {
		f.Close()
		return nil, os.ErrNotExist
	}
	return f, nil
}
