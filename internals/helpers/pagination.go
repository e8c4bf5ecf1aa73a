// file: internals/helpers/pagination.go
package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// PageSize is fixed for every list endpoint.
const PageSize = 10

/* ===============================
   Paging resolver (query → page/offset)
=================================*/

type Paging struct {
	Page   int
	Offset int
	Limit  int
}

// ResolvePaging reads ?page= and normalizes it. Page size is not
// client-configurable.
func ResolvePaging(c *fiber.Ctx) Paging {
	pageStr := strings.TrimSpace(c.Query("page", "1"))

	page, _ := strconv.Atoi(pageStr)
	if page < 1 {
		page = 1
	}

	return Paging{
		Page:   page,
		Offset: (page - 1) * PageSize,
		Limit:  PageSize,
	}
}

// OutOfRange reports whether the requested page starts past the last
// row. List handlers answer it with a 404, not an empty page.
func (p Paging) OutOfRange(total int64) bool {
	return int64(p.Offset) >= total
}

/* ===============================
   Pagination block builder
=================================*/

type Pagination struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
	Count      int   `json:"count"` // items on this page
}

func BuildPagination(total int64, page, count int) Pagination {
	if page <= 0 {
		page = 1
	}
	totalPages := int((total + PageSize - 1) / PageSize) // ceil
	if totalPages == 0 {
		totalPages = 1
	}
	return Pagination{
		Page:       page,
		PerPage:    PageSize,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
		Count:      count,
	}
}
