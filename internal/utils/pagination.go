package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"school-cms-api/internal/constants"
)

// PageParams holds in-memory pagination parameters.
type PageParams struct {
	Page  int
	Limit int
}

// PageResponse represents the pagination metadata in API responses.
type PageResponse struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

// GetPageParams extracts pagination parameters from the request. The second
// return value is false when the request did not ask for pagination at all,
// in which case callers return the full result set.
func GetPageParams(c *gin.Context) (PageParams, bool) {
	if c.Query("page") == "" {
		return PageParams{}, false
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(constants.MinPage)))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(constants.DefaultPageSize)))

	if page < constants.MinPage {
		page = constants.MinPage
	}
	if limit < 1 || limit > constants.MaxPageSize {
		limit = constants.DefaultPageSize
	}

	return PageParams{Page: page, Limit: limit}, true
}

// Paginate slices an already-loaded result set. Pagination happens in memory
// only; the database tier always returns the full list.
func Paginate[T any](items []T, params PageParams) ([]T, PageResponse) {
	total := len(items)
	totalPages := (total + params.Limit - 1) / params.Limit

	page := params.Page
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	start := (page - 1) * params.Limit
	if start > total {
		start = total
	}
	end := start + params.Limit
	if end > total {
		end = total
	}

	return items[start:end], PageResponse{
		Page:       page,
		Limit:      params.Limit,
		TotalItems: total,
		TotalPages: totalPages,
	}
}
