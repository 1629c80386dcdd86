package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ginContextWithQuery(t *testing.T, query string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/students?"+query, nil)
	return c
}

func TestParsePaginationParams(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		wantPage int
		wantSize int
	}{
		{"defaults", "", 0, 20},
		{"explicit", "page=3&size=50", 3, 50},
		{"negative page", "page=-1", 0, 20},
		{"zero size", "size=0", 0, 20},
		{"size above cap", "size=500", 0, 20},
		{"non numeric", "page=abc&size=def", 0, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ginContextWithQuery(t, tt.query)
			page, size := ParsePaginationParams(c)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantSize, size)
		})
	}
}

func TestCalculateOffsetLimit(t *testing.T) {
	offset, limit := CalculateOffsetLimit(0, 20)
	assert.Equal(t, uint64(0), offset)
	assert.Equal(t, 20, limit)

	offset, limit = CalculateOffsetLimit(2, 25)
	assert.Equal(t, uint64(50), offset)
	assert.Equal(t, 25, limit)

	offset, limit = CalculateOffsetLimit(-5, 0)
	assert.Equal(t, uint64(0), offset)
	assert.Equal(t, DefaultPageSize, limit)
}

func TestNewListMetadata(t *testing.T) {
	meta := NewListMetadata(45, 1, 20)
	require.NotNil(t, meta)
	assert.Equal(t, int64(45), *meta.TotalRecords)
	assert.Equal(t, 1, *meta.CurrentPage)
	assert.Equal(t, 20, *meta.PageSize)
	assert.Equal(t, 3, *meta.TotalPages)

	meta = NewListMetadata(0, 0, 20)
	assert.Equal(t, 0, *meta.TotalPages)
}
