package paginate

// Page is one page of items together with the metadata templates need for
// navigation links.
type Page[T any] struct {
	Items    []T
	Number   int
	NumPages int
	Total    int
	PerPage  int
}

// NewPage wraps items already fetched for w. Items is never nil.
func NewPage[T any](w Window, items []T) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items:    items,
		Number:   w.Number,
		NumPages: w.NumPages,
		Total:    w.Total,
		PerPage:  w.PerPage,
	}
}

// Slice cuts the window out of an in-memory sequence. w must have been computed
// for len(items).
func Slice[T any](items []T, w Window) Page[T] {
	if w.Limit <= 0 || w.Offset >= len(items) {
		return NewPage[T](w, nil)
	}
	end := min(w.Offset+w.Limit, len(items))
	return NewPage(w, items[w.Offset:end])
}

func (p Page[T]) HasNext() bool     { return p.Number < p.NumPages }
func (p Page[T]) HasPrevious() bool { return p.Number > 1 }

// HasOtherPages reports whether navigation should be shown at all.
func (p Page[T]) HasOtherPages() bool { return p.HasNext() || p.HasPrevious() }

func (p Page[T]) NextNumber() int     { return p.Number + 1 }
func (p Page[T]) PreviousNumber() int { return p.Number - 1 }

// PageRange returns 1..NumPages.
func (p Page[T]) PageRange() []int {
	r := make([]int, p.NumPages)
	for i := range r {
		r[i] = i + 1
	}
	return r
}
