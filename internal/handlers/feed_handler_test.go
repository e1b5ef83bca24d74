package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func paginationFor(t *testing.T, query string) (int, int) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/feed?"+query, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return pagination(c)
}

func TestPagination(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "", 1, defaultPageSize},
		{"explicit", "page=3&limit=25", 3, 25},
		{"zero page clamps to one", "page=0&limit=5", 1, 5},
		{"negative values", "page=-2&limit=-9", 1, defaultPageSize},
		{"limit capped", "page=1&limit=5000", 1, maxPageSize},
		{"garbage ignored", "page=abc&limit=xyz", 1, defaultPageSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit := paginationFor(t, tt.query)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}
