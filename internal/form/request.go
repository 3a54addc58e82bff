package form

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/Kirill2434/yatube/internal/domain"
)

// ParseRequest reads the form body of r. Multipart bodies keep up to maxMemory
// bytes in memory; every file part is read fully into its Upload.
func ParseRequest(r *http.Request, maxMemory int64) (Submission, error) {
	sub := Submission{Files: map[string]*domain.Upload{}}

	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if ct != "multipart/form-data" {
		if err := r.ParseForm(); err != nil {
			return sub, fmt.Errorf("parse form: %w", err)
		}
		sub.Values = r.PostForm
		return sub, nil
	}

	if err := r.ParseMultipartForm(maxMemory); err != nil {
		return sub, fmt.Errorf("parse multipart form: %w", err)
	}
	sub.Values = r.MultipartForm.Value
	for name, headers := range r.MultipartForm.File {
		if len(headers) == 0 {
			continue
		}
		h := headers[0]
		file, err := h.Open()
		if err != nil {
			return sub, fmt.Errorf("open upload %s: %w", name, err)
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			return sub, fmt.Errorf("read upload %s: %w", name, err)
		}
		sub.Files[name] = &domain.Upload{
			Filename:    h.Filename,
			ContentType: h.Header.Get("Content-Type"),
			Size:        int64(len(data)),
			Data:        data,
		}
	}
	return sub, nil
}

// IsTooLarge reports whether err came from a body cut off by http.MaxBytesReader.
func IsTooLarge(err error) bool {
	var mbe *http.MaxBytesError
	return errors.As(err, &mbe)
}
