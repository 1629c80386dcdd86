package helpers

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/schoolerp/student-service/internal/app/models/dto"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
	DefaultPage     = 0 // Page index is 0-based.
)

// ParsePaginationParams extracts and validates page and size query parameters.
// Invalid or out-of-range values fall back to the defaults rather than
// failing the request.
func ParsePaginationParams(c *gin.Context) (page, size int) {
	pageStr := c.DefaultQuery("page", "0")
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 0 {
		page = DefaultPage
	}

	sizeStr := c.DefaultQuery("size", "20")
	size, err = strconv.Atoi(sizeStr)
	if err != nil || size <= 0 || size > MaxPageSize {
		size = DefaultPageSize
	}

	return page, size
}

// CalculateOffsetLimit converts a 0-based page index into an SQL offset and
// limit pair.
func CalculateOffsetLimit(page, size int) (offset uint64, limit int) {
	if size <= 0 || size > MaxPageSize {
		limit = DefaultPageSize
	} else {
		limit = size
	}

	if page < 0 {
		page = DefaultPage
	}

	offset = uint64(page) * uint64(limit)
	return offset, limit
}

// NewListMetadata builds the pagination metadata attached to list responses.
func NewListMetadata(totalRecords int64, page, size int) *dto.Metadata {
	if size <= 0 {
		size = DefaultPageSize
	}
	if page < 0 {
		page = DefaultPage
	}

	totalPages := 0
	if totalRecords > 0 {
		totalPages = int(math.Ceil(float64(totalRecords) / float64(size)))
	}

	return &dto.Metadata{
		TotalRecords: &totalRecords,
		CurrentPage:  &page,
		PageSize:     &size,
		TotalPages:   &totalPages,
	}
}
