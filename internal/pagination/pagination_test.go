package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func paramsFor(t *testing.T, query string) Params {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return FromContext(c, "name")
}

func TestFromContext_Defaults(t *testing.T) {
	p := paramsFor(t, "")
	assert.Equal(t, 0, p.Page)
	assert.Equal(t, DefaultSize, p.Size)
	assert.Equal(t, "asc", p.Direction)
	assert.Equal(t, "name", p.SortBy)
}

func TestFromContext_Parses(t *testing.T) {
	p := paramsFor(t, "page=3&size=25&direction=DESC")
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 25, p.Size)
	assert.Equal(t, "desc", p.Direction)
}

func TestFromContext_IgnoresGarbageAndCapsSize(t *testing.T) {
	p := paramsFor(t, "page=-1&size=9999&direction=sideways")
	assert.Equal(t, 0, p.Page)
	assert.Equal(t, MaxSize, p.Size)
	assert.Equal(t, "asc", p.Direction)
}

func TestNewPage(t *testing.T) {
	p := Params{Page: 1, Size: 10}
	page := NewPage([]string{"a", "b"}, p, 42)
	assert.Equal(t, 2, len(page.Content))
	assert.Equal(t, int64(42), page.TotalElements)
	assert.Equal(t, 5, page.TotalPages)

	empty := NewPage[string](nil, p, 0)
	assert.NotNil(t, empty.Content)
	assert.Equal(t, 0, empty.TotalPages)
}
