package model

import "math"

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
	// MaxOffset keeps the row offset within the int4 the queries bind it as.
	MaxOffset = math.MaxInt32
)

type Page struct {
	Number int
	Limit  int
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.Limit
}

// InRange reports whether the page starts at an offset the store can address.
func (p Page) InRange() bool {
	return p.Number >= 1 && p.Limit >= 1 && p.Number-1 <= MaxOffset/p.Limit
}

type Pagination struct {
	CurrentPage     int   `json:"currentPage"`
	TotalPages      int   `json:"totalPages"`
	TotalRecords    int64 `json:"totalRecords"`
	HasNextPage     bool  `json:"hasNextPage"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
	Limit           int   `json:"limit"`
}

func NewPagination(p Page, total int64) Pagination {
	var totalPages int
	if p.Limit > 0 {
		totalPages = int((total + int64(p.Limit) - 1) / int64(p.Limit))
	}
	return Pagination{
		CurrentPage:     p.Number,
		TotalPages:      totalPages,
		TotalRecords:    total,
		HasNextPage:     p.Number < totalPages,
		HasPreviousPage: p.Number > 1,
		Limit:           p.Limit,
	}
}
