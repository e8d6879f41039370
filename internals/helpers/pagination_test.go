package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPaging(t *testing.T) {
	tests := []struct {
		name       string
		page       string
		limit      string
		def        int
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{name: "defaults", page: "", limit: "", def: 15, wantPage: 1, wantLimit: 15, wantOffset: 0},
		{name: "second page", page: "2", limit: "10", def: 15, wantPage: 2, wantLimit: 10, wantOffset: 10},
		{name: "page zero clamps to one", page: "0", limit: "10", def: 15, wantPage: 1, wantLimit: 10, wantOffset: 0},
		{name: "negative page", page: "-3", limit: "10", def: 15, wantPage: 1, wantLimit: 10, wantOffset: 0},
		{name: "garbage page", page: "abc", limit: "", def: 9, wantPage: 1, wantLimit: 9, wantOffset: 0},
		{name: "limit zero falls back", page: "1", limit: "0", def: 9, wantPage: 1, wantLimit: 9, wantOffset: 0},
		{name: "limit capped", page: "3", limit: "1000", def: 15, wantPage: 3, wantLimit: MaxLimit, wantOffset: 200},
		{name: "limit exactly max", page: "1", limit: "100", def: 15, wantPage: 1, wantLimit: 100, wantOffset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPaging(tt.page, tt.limit, tt.def, MaxLimit)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantLimit, p.Limit)
			assert.Equal(t, tt.wantOffset, p.Offset)
		})
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total int64
		limit int
		want  int
	}{
		{0, 15, 1},
		{1, 15, 1},
		{15, 15, 1},
		{16, 15, 2},
		{30, 15, 2},
		{31, 15, 3},
		{9, 9, 1},
		{100, 1, 100},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TotalPages(tt.total, tt.limit), "total=%d limit=%d", tt.total, tt.limit)
	}
}

func TestPageWindow(t *testing.T) {
	assert.Equal(t, []int{1}, PageWindow(1, 1, 5))
	assert.Equal(t, []int{1, 2, 3}, PageWindow(2, 3, 5))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, PageWindow(1, 10, 5))
	assert.Equal(t, []int{3, 4, 5, 6, 7}, PageWindow(5, 10, 5))
	assert.Equal(t, []int{6, 7, 8, 9, 10}, PageWindow(10, 10, 5))
	assert.Equal(t, []int{6, 7, 8, 9, 10}, PageWindow(99, 10, 5), "current past the end is clamped")
}

func TestBuildPagination(t *testing.T) {
	p := BuildPagination(31, NewPaging("3", "15", 15, MaxLimit))
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 15, p.Limit)
	assert.Equal(t, int64(31), p.Total)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, []int{1, 2, 3}, p.Pages)
}
