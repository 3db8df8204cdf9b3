package common

import (
	"net/http"
	"strconv"
)

// PageQuery is an offset pagination request: page starts at 1, limit is
// clamped to [1, max].
type PageQuery struct {
	Page  int
	Limit int
}

func (q PageQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// ParsePageQuery reads page/limit from the URL with per-endpoint defaults.
// Bad or missing values fall back to the defaults rather than erroring, the
// same way the listing endpoints have always behaved.
func ParsePageQuery(r *http.Request, defaultLimit, maxLimit int) PageQuery {
	q := PageQuery{Page: 1, Limit: defaultLimit}

	if raw := r.URL.Query().Get("page"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 1 {
			q.Page = n
		}
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 1 {
			q.Limit = n
		}
	}
	if q.Limit > maxLimit {
		q.Limit = maxLimit
	}
	return q
}

// Pagination is the envelope block every list response carries.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

func NewPagination(q PageQuery, total int64) Pagination {
	pages := int((total + int64(q.Limit) - 1) / int64(q.Limit))
	if pages < 1 {
		pages = 1
	}
	return Pagination{Page: q.Page, Limit: q.Limit, Total: total, TotalPages: pages}
}

// NextPageCursor returns the follow-up page as a string cursor, or nil when
// the last page has been reached.
func (p Pagination) NextPageCursor() *string {
	if p.Page >= p.TotalPages {
		return nil
	}
	next := strconv.Itoa(p.Page + 1)
	return &next
}
