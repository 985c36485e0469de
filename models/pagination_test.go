package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePagination(t *testing.T) {
	tests := []struct {
		name     string
		page     string
		pageSize string
		want     Pagination
	}{
		{name: "defaults", want: Pagination{Page: 1, PageSize: 10}},
		{name: "explicit values", page: "3", pageSize: "25", want: Pagination{Page: 3, PageSize: 25}},
		{name: "zero page", page: "0", pageSize: "10", want: Pagination{Page: 1, PageSize: 10}},
		{name: "negative page", page: "-4", pageSize: "10", want: Pagination{Page: 1, PageSize: 10}},
		{name: "non-numeric page", page: "abc", pageSize: "10", want: Pagination{Page: 1, PageSize: 10}},
		{name: "page size above max", page: "1", pageSize: "1000", want: Pagination{Page: 1, PageSize: 100}},
		{name: "page size exactly max", page: "1", pageSize: "100", want: Pagination{Page: 1, PageSize: 100}},
		{name: "zero page size", page: "1", pageSize: "0", want: Pagination{Page: 1, PageSize: 1}},
		{name: "negative page size", page: "1", pageSize: "-7", want: Pagination{Page: 1, PageSize: 1}},
		{name: "non-numeric page size", page: "2", pageSize: "many", want: Pagination{Page: 2, PageSize: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePagination(tt.page, tt.pageSize))
		})
	}
}

func TestPagination_SkipTake(t *testing.T) {
	p := Pagination{Page: 3, PageSize: 20}

	assert.Equal(t, 40, p.Skip())
	assert.Equal(t, 20, p.Take())
	assert.Equal(t, 0, Pagination{Page: 1, PageSize: 5}.Skip())
}
