// internal/utils/pagination_test.go
package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testContext(target string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", target, nil)
	return c
}

func TestGetPaginationParams(t *testing.T) {
	c := testContext("/properties?page=3&limit=24&sort=newest&order=asc&search=pune")

	params := GetPaginationParams(c)

	assert.Equal(t, 3, params.Page)
	assert.Equal(t, 24, params.Limit)
	assert.Equal(t, "newest", params.Sort)
	assert.Equal(t, "asc", params.Order)
	assert.Equal(t, "pune", params.Search)
}

func TestGetPaginationParamsDefaults(t *testing.T) {
	params := GetPaginationParams(testContext("/properties"))

	assert.Equal(t, 1, params.Page)
	assert.Equal(t, DefaultPageSize, params.Limit)
	assert.Equal(t, "desc", params.Order)
	assert.Empty(t, params.Sort)
}

func TestNormalizedClampsWindow(t *testing.T) {
	tests := []struct {
		name          string
		in            PaginationParams
		expectedPage  int
		expectedLimit int
	}{
		{"zero page", PaginationParams{Page: 0, Limit: 10}, 1, 10},
		{"negative page", PaginationParams{Page: -5, Limit: 10}, 1, 10},
		{"zero limit", PaginationParams{Page: 2, Limit: 0}, 2, DefaultPageSize},
		{"oversized limit", PaginationParams{Page: 2, Limit: 500}, 2, MaxPageSize},
		{"in range", PaginationParams{Page: 4, Limit: 50}, 4, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalized()
			assert.Equal(t, tt.expectedPage, got.Page)
			assert.Equal(t, tt.expectedLimit, got.Limit)
		})
	}
}

func TestNormalizedOrder(t *testing.T) {
	assert.Equal(t, "asc", PaginationParams{Order: "asc"}.Normalized().Order)
	assert.Equal(t, "desc", PaginationParams{Order: "sideways"}.Normalized().Order)
	assert.Equal(t, "desc", PaginationParams{}.Normalized().Order)
}

func TestCreatePaginationResult(t *testing.T) {
	params := PaginationParams{Page: 2, Limit: 12}

	result := CreatePaginationResult([]string{"a"}, 25, params)

	assert.Equal(t, 2, result.Page)
	assert.Equal(t, 12, result.PageSize)
	assert.Equal(t, int64(25), result.Total)
	assert.Equal(t, 3, result.TotalPages)

	empty := CreatePaginationResult(nil, 0, params)
	assert.Equal(t, 0, empty.TotalPages)
}
