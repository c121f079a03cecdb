package query

import (
	"strconv"
	"strings"

	"gorm.io/gorm"
)

// PageSize is the number of expenses on a history page.
const PageSize = 12

// Page describes one page of a paginated result.
type Page struct {
	Number      int   `json:"page" example:"2"`           // The current page, starting at 1
	Pages       int   `json:"pages" example:"5"`          // Number of pages. Always at least 1
	Count       int64 `json:"count" example:"53"`         // Number of items on all pages
	HasPrevious bool  `json:"hasPrevious" example:"true"` // Whether there is a page before this one
	HasNext     bool  `json:"hasNext" example:"true"`     // Whether there is a page after this one
}

// Paginate returns the page for the raw page parameter.
//
// Missing, non-integer or non-positive page numbers select the first page,
// page numbers after the last page select the last page. A result without
// items has one empty page.
func Paginate(raw string, count int64) Page {
	pages := 1
	if count > 0 {
		pages = int((count + PageSize - 1) / PageSize)
	}

	number, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || number < 1 {
		number = 1
	}

	if number > pages {
		number = pages
	}

	return Page{
		Number:      number,
		Pages:       pages,
		Count:       count,
		HasPrevious: number > 1,
		HasNext:     number < pages,
	}
}

// Scope limits a query to the expenses on the page.
func (p Page) Scope(db *gorm.DB) *gorm.DB {
	return db.Offset((p.Number - 1) * PageSize).Limit(PageSize)
}
