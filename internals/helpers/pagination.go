package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	DefaultPage     = 1
	MaxLimit        = 100
	PageWindowWidth = 5
)

/* ===============================
   Paging resolver (query → page/limit/offset)
=================================*/

type Paging struct {
	Page   int
	Limit  int
	Offset int
}

// ResolvePaging reads ?page= and ?limit= (alias ?per_page=). page is clamped to
// >= 1; limit falls back to defaultLimit when missing/invalid and is capped at
// maxLimit (MaxLimit when maxLimit <= 0).
func ResolvePaging(c *fiber.Ctx, defaultLimit, maxLimit int) Paging {
	limitStr := strings.TrimSpace(c.Query("limit"))
	if limitStr == "" {
		limitStr = strings.TrimSpace(c.Query("per_page"))
	}
	return NewPaging(strings.TrimSpace(c.Query("page")), limitStr, defaultLimit, maxLimit)
}

func NewPaging(pageStr, limitStr string, defaultLimit, maxLimit int) Paging {
	if maxLimit <= 0 {
		maxLimit = MaxLimit
	}
	if defaultLimit <= 0 || defaultLimit > maxLimit {
		defaultLimit = maxLimit
	}

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = DefaultPage
	}

	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return Paging{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

/* ===============================
   Pagination builder
=================================*/

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	Pages      []int `json:"pages"`
}

// TotalPages = max(1, ceil(total/limit)).
func TotalPages(total int64, limit int) int {
	if limit <= 0 {
		limit = 1
	}
	n := int((total + int64(limit) - 1) / int64(limit))
	if n < 1 {
		n = 1
	}
	return n
}

func BuildPagination(total int64, p Paging) Pagination {
	totalPages := TotalPages(total, p.Limit)
	return Pagination{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      total,
		TotalPages: totalPages,
		Pages:      PageWindow(p.Page, totalPages, PageWindowWidth),
	}
}

// PageWindow returns up to width consecutive page numbers around current,
// shifted so it never runs past 1 or totalPages.
func PageWindow(current, totalPages, width int) []int {
	if totalPages < 1 {
		totalPages = 1
	}
	if width < 1 {
		width = 1
	}
	if current < 1 {
		current = 1
	}
	if current > totalPages {
		current = totalPages
	}

	start := current - width/2
	if start < 1 {
		start = 1
	}
	end := start + width - 1
	if end > totalPages {
		end = totalPages
		start = end - width + 1
		if start < 1 {
			start = 1
		}
	}

	out := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		out = append(out, i)
	}
	return out
}
