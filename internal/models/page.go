package models

// Page is one slice of an id-ordered result set.
type Page[T any] struct {
	Items   []T
	Page    int
	Limit   int
	HasNext bool
}

// NewPage builds a page from rows fetched with LIMIT limit+1: the extra
// row only marks that a next page exists and is dropped.
func NewPage[T any](rows []T, page, limit int) Page[T] {
	p := Page[T]{Items: rows, Page: page, Limit: limit}

	if len(rows) > limit {
		p.HasNext = true
		p.Items = rows[:limit]
	}

	return p
}

func (p Page[T]) HasPrev() bool {
	return p.Page > 1
}
