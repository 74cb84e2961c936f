package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name  string
		page  Page
		total int64
		want  Pagination
	}{
		{
			"first of three",
			Page{Number: 1, Limit: 20},
			45,
			Pagination{CurrentPage: 1, TotalPages: 3, TotalRecords: 45,
				HasNextPage: true, HasPreviousPage: false, Limit: 20},
		},
		{
			"middle page",
			Page{Number: 2, Limit: 20},
			45,
			Pagination{CurrentPage: 2, TotalPages: 3, TotalRecords: 45,
				HasNextPage: true, HasPreviousPage: true, Limit: 20},
		},
		{
			"last page",
			Page{Number: 3, Limit: 20},
			45,
			Pagination{CurrentPage: 3, TotalPages: 3, TotalRecords: 45,
				HasNextPage: false, HasPreviousPage: true, Limit: 20},
		},
		{
			"exact multiple",
			Page{Number: 2, Limit: 10},
			20,
			Pagination{CurrentPage: 2, TotalPages: 2, TotalRecords: 20,
				HasNextPage: false, HasPreviousPage: true, Limit: 10},
		},
		{
			"empty",
			Page{Number: 1, Limit: 20},
			0,
			Pagination{CurrentPage: 1, TotalPages: 0, TotalRecords: 0,
				HasNextPage: false, HasPreviousPage: false, Limit: 20},
		},
		{
			"past the end",
			Page{Number: 7, Limit: 20},
			45,
			Pagination{CurrentPage: 7, TotalPages: 3, TotalRecords: 45,
				HasNextPage: false, HasPreviousPage: true, Limit: 20},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPagination(tt.page, tt.total))
		})
	}
}

func TestPage_Offset(t *testing.T) {
	assert.Equal(t, 0, Page{Number: 1, Limit: 20}.Offset())
	assert.Equal(t, 40, Page{Number: 3, Limit: 20}.Offset())
	assert.Equal(t, 5, Page{Number: 2, Limit: 5}.Offset())
}

func TestPage_InRange(t *testing.T) {
	tests := []struct {
		name string
		page Page
		want bool
	}{
		{name: "first page", page: Page{Number: 1, Limit: 20}, want: true},
		{name: "last addressable", page: Page{Number: MaxOffset/MaxLimit + 1, Limit: MaxLimit}, want: true},
		{name: "offset overflows int4", page: Page{Number: 30_000_000, Limit: MaxLimit}},
		{name: "zero page", page: Page{Number: 0, Limit: 20}},
		{name: "zero limit", page: Page{Number: 1, Limit: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.page.InRange())
		})
	}
}
