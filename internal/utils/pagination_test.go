package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func paramsFor(t *testing.T, query string) (PageParams, bool) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/post/page"+query, nil)
	return GetPageParams(c)
}

func TestGetPageParams_AbsentMeansNoPagination(t *testing.T) {
	_, paged := paramsFor(t, "")
	require.False(t, paged)

	// limit alone does not turn pagination on.
	_, paged = paramsFor(t, "?limit=5")
	require.False(t, paged)
}

func TestGetPageParams_Defaults(t *testing.T) {
	params, paged := paramsFor(t, "?page=2")
	require.True(t, paged)
	require.Equal(t, 2, params.Page)
	require.Equal(t, 10, params.Limit)
}

func TestGetPageParams_ClampsBadValues(t *testing.T) {
	params, paged := paramsFor(t, "?page=0&limit=0")
	require.True(t, paged)
	require.Equal(t, 1, params.Page)
	require.Equal(t, 10, params.Limit)

	params, _ = paramsFor(t, "?page=-3&limit=9999")
	require.Equal(t, 1, params.Page)
	require.Equal(t, 10, params.Limit)
}

func TestPaginate_SlicesAndCounts(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	page, meta := Paginate(items, PageParams{Page: 2, Limit: 2})
	require.Equal(t, []int{3, 4}, page)
	require.Equal(t, 2, meta.Page)
	require.Equal(t, 5, meta.TotalItems)
	require.Equal(t, 3, meta.TotalPages)
}

func TestPaginate_LastPartialPage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	page, meta := Paginate(items, PageParams{Page: 3, Limit: 2})
	require.Equal(t, []int{5}, page)
	require.Equal(t, 3, meta.TotalPages)
}

// Asking past the end clamps to the last page instead of returning nothing.
func TestPaginate_PagePastEndClamps(t *testing.T) {
	items := []int{1, 2, 3}

	page, meta := Paginate(items, PageParams{Page: 10, Limit: 2})
	require.Equal(t, []int{3}, page)
	require.Equal(t, 2, meta.Page)
}

func TestPaginate_Empty(t *testing.T) {
	page, meta := Paginate([]string{}, PageParams{Page: 1, Limit: 10})
	require.Empty(t, page)
	require.Equal(t, 0, meta.TotalItems)
	require.Equal(t, 0, meta.TotalPages)
}
