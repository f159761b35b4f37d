// Package pagination parses page windows from requests and wraps results in a
// paged envelope with HATEOAS-style links.
package pagination

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

const (
	// DefaultSize is the page size used when the client does not supply one.
	DefaultSize = 10
	// MaxSize caps the page size a client may request.
	MaxSize = 100
)

// Params carries the page window and ordering parsed from the request.
// SortBy always comes from code, never from the client.
type Params struct {
	Page      int
	Size      int
	Direction string
	SortBy    string
}

// FromContext parses the page, size and direction query parameters, falling
// back to defaults on absent or malformed values.
func FromContext(c echo.Context, sortBy string) Params {
	p := Params{Size: DefaultSize, Direction: "asc", SortBy: sortBy}
	if v, err := strconv.Atoi(c.QueryParam("page")); err == nil && v > 0 {
		p.Page = v
	}
	if v, err := strconv.Atoi(c.QueryParam("size")); err == nil && v > 0 {
		if v > MaxSize {
			v = MaxSize
		}
		p.Size = v
	}
	if strings.EqualFold(c.QueryParam("direction"), "desc") {
		p.Direction = "desc"
	}
	return p
}

// Scope applies the window and ordering to a GORM query.
func (p Params) Scope(db *gorm.DB) *gorm.DB {
	return db.Order(p.SortBy + " " + p.Direction).
		Offset(p.Page * p.Size).
		Limit(p.Size)
}

// Link is a HATEOAS-style relation attached to responses.
type Link struct {
	Rel  string `json:"rel"`
	Href string `json:"href"`
	Type string `json:"type,omitempty"`
}

// SelfLink builds the conventional self relation for a resource path.
func SelfLink(href string) []Link {
	return []Link{{Rel: "self", Href: href, Type: "GET"}}
}

// Page wraps a slice of results with paging metadata.
type Page[T any] struct {
	Content       []T    `json:"content"`
	Page          int    `json:"page"`
	Size          int    `json:"size"`
	TotalElements int64  `json:"total_elements"`
	TotalPages    int    `json:"total_pages"`
	Links         []Link `json:"_links,omitempty"`
}

// NewPage builds the envelope from repository output.
func NewPage[T any](content []T, p Params, total int64) Page[T] {
	pages := 0
	if p.Size > 0 {
		pages = int((total + int64(p.Size) - 1) / int64(p.Size))
	}
	if content == nil {
		content = []T{}
	}
	return Page[T]{
		Content:       content,
		Page:          p.Page,
		Size:          p.Size,
		TotalElements: total,
		TotalPages:    pages,
	}
}
