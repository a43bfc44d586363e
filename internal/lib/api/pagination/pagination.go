// Package pagination reads page/limit query parameters and builds the
// paginated response envelope with next and prev links.
package pagination

import (
	"errors"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"eventsAPI/internal/lib/api/response"
	"eventsAPI/internal/models"
)

const (
	paramPage  = "page"
	paramLimit = "limit"
)

var ErrInvalidParams = errors.New("invalid pagination parameters")

type Params struct {
	Page  int
	Limit int
}

// Parse splits page and limit off the query. Page defaults to 1, limit to
// defaultLimit and is clamped to maxLimit. Pages whose offset would not fit
// in an int are rejected. The remaining values are
// returned as filters; q itself is left untouched.
func Parse(q url.Values, defaultLimit, maxLimit int) (Params, url.Values, error) {
	p := Params{Page: 1, Limit: defaultLimit}

	filters := make(url.Values, len(q))
	for key, values := range q {
		if key == paramPage || key == paramLimit {
			continue
		}
		filters[key] = append([]string(nil), values...)
	}

	if raw := q.Get(paramPage); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return Params{}, nil, ErrInvalidParams
		}
		p.Page = page
	}

	if raw := q.Get(paramLimit); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return Params{}, nil, ErrInvalidParams
		}
		p.Limit = limit
	}

	if p.Limit > maxLimit {
		p.Limit = maxLimit
	}

	// the row offset (page-1)*limit must fit in an int
	if p.Page > math.MaxInt/p.Limit {
		return Params{}, nil, ErrInvalidParams
	}

	return p, filters, nil
}

type Envelope[T any] struct {
	response.Response
	Page    int     `json:"page"`
	Limit   int     `json:"limit"`
	Next    *string `json:"next"`
	Prev    *string `json:"prev"`
	Results []T     `json:"results"`
}

// New wraps results in an envelope whose links point at the neighbouring
// pages of the same resource with the same filters.
func New[T, R any](r *http.Request, page models.Page[T], results []R, filters url.Values) Envelope[R] {
	if results == nil {
		results = []R{}
	}

	env := Envelope[R]{
		Response: response.OK(),
		Page:     page.Page,
		Limit:    page.Limit,
		Results:  results,
	}

	if page.HasNext {
		next := pageURL(r, filters, page.Page+1, page.Limit)
		env.Next = &next
	}
	if page.HasPrev() {
		prev := pageURL(r, filters, page.Page-1, page.Limit)
		env.Prev = &prev
	}

	return env
}

func pageURL(r *http.Request, filters url.Values, page, limit int) string {
	q := make(url.Values, len(filters)+2)
	for key, values := range filters {
		q[key] = values
	}
	q.Set(paramPage, strconv.Itoa(page))
	q.Set(paramLimit, strconv.Itoa(limit))

	u := url.URL{
		Scheme:   scheme(r),
		Host:     r.Host,
		Path:     r.URL.Path,
		RawQuery: q.Encode(),
	}

	return u.String()
}

func scheme(r *http.Request) string {
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		return proto
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}
