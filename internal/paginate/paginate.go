// Package paginate splits an ordered result set into fixed-size pages
// addressed by a 1-based page number.
package paginate

import (
	"errors"
	"strconv"
	"strings"
)

// ErrPageOutOfRange is returned by Window for a page number outside 1..NumPages.
var ErrPageOutOfRange = errors.New("page out of range")

// Paginator computes page windows for a fixed page size.
type Paginator struct {
	perPage int
}

// New returns a Paginator with perPage items per page. Values below 1 are raised to 1.
func New(perPage int) Paginator {
	if perPage < 1 {
		perPage = 1
	}
	return Paginator{perPage: perPage}
}

// PerPage returns the page size.
func (p Paginator) PerPage() int { return p.perPage }

// NumPages returns the number of pages for total items. An empty set has one page.
func (p Paginator) NumPages(total int) int {
	if total <= 0 {
		return 1
	}
	return (total + p.perPage - 1) / p.perPage
}

// Window describes which slice of an ordered set of Total items is page Number.
type Window struct {
	Number   int
	NumPages int
	Total    int
	PerPage  int
	Offset   int
	Limit    int
}

// Window returns the window for page k. For k outside 1..NumPages it returns
// ErrPageOutOfRange and a window with Limit 0.
func (p Paginator) Window(total, k int) (Window, error) {
	if total < 0 {
		total = 0
	}
	w := Window{
		Number:   k,
		NumPages: p.NumPages(total),
		Total:    total,
		PerPage:  p.perPage,
	}
	if k < 1 || k > w.NumPages {
		return w, ErrPageOutOfRange
	}
	w.Offset = (k - 1) * p.perPage
	w.Limit = min(p.perPage, total-w.Offset)
	return w, nil
}

// GetWindow resolves a raw page query value. Empty, non-numeric and values
// below 1 give page 1. Values past the end, including ones too large for an
// int, give the last page.
func (p Paginator) GetWindow(total int, raw string) Window {
	last := p.NumPages(total)
	k, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	switch {
	case errors.Is(err, strconv.ErrRange) && k > 0:
		k = int64(last)
	case err != nil || k < 1:
		k = 1
	case k > int64(last):
		k = int64(last)
	}
	w, _ := p.Window(total, int(k))
	return w
}
