package common

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePageQuery(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "/feed", 1, 12},
		{"explicit", "/feed?page=3&limit=20", 3, 20},
		{"limit clamped", "/feed?limit=999", 1, 50},
		{"garbage falls back", "/feed?page=abc&limit=-5", 1, 12},
		{"zero page falls back", "/feed?page=0", 1, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			q := ParsePageQuery(r, 12, 50)
			require.Equal(t, tt.wantPage, q.Page)
			require.Equal(t, tt.wantLimit, q.Limit)
		})
	}
}

func TestOffset(t *testing.T) {
	require.Equal(t, 0, PageQuery{Page: 1, Limit: 10}.Offset())
	require.Equal(t, 20, PageQuery{Page: 3, Limit: 10}.Offset())
}

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		total     int64
		wantPages int
	}{
		{"exact division", 10, 30, 3},
		{"remainder rounds up", 10, 25, 3},
		{"empty still has one page", 10, 0, 1},
		{"single row", 10, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(PageQuery{Page: 1, Limit: tt.limit}, tt.total)
			require.Equal(t, tt.wantPages, p.TotalPages)
			require.Equal(t, tt.total, p.Total)
		})
	}
}

func TestNextPageCursor(t *testing.T) {
	p := NewPagination(PageQuery{Page: 1, Limit: 10}, 25)
	next := p.NextPageCursor()
	require.NotNil(t, next)
	require.Equal(t, "2", *next)

	last := NewPagination(PageQuery{Page: 3, Limit: 10}, 25)
	require.Nil(t, last.NextPageCursor())
}
