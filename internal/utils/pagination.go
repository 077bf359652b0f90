package utils

import "strconv"

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Page is a parsed page/page_size pair. Size 0 means every row.
type Page struct {
	Number int `json:"page"`
	Size   int `json:"page_size"`
}

// ParsePage reads the page and page_size query values. A missing page_size
// selects every row; an invalid one falls back to DefaultPageSize.
func ParsePage(pageStr, pageSizeStr string) Page {
	p := Page{Number: 1}
	if n, err := strconv.Atoi(pageStr); err == nil && n > 0 {
		p.Number = n
	}

	if pageSizeStr == "" {
		p.Number = 1
		return p
	}
	p.Size = DefaultPageSize
	if n, err := strconv.Atoi(pageSizeStr); err == nil && n > 0 {
		p.Size = min(n, MaxPageSize)
	}
	return p
}

// Offset is the row offset of the page
func (p Page) Offset() int {
	if p.Size == 0 || p.Number < 2 {
		return 0
	}
	return (p.Number - 1) * p.Size
}

// TotalPages returns how many pages hold total rows
func (p Page) TotalPages(total int64) int {
	if p.Size == 0 || total == 0 {
		return 1
	}
	return int((total + int64(p.Size) - 1) / int64(p.Size))
}
