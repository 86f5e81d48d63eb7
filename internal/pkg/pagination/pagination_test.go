package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func queryContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return c
}

func TestFromContext_Defaults(t *testing.T) {
	q := FromContext(queryContext(t, ""))
	assert.Equal(t, Query{Page: 1, Size: 10}, q)
}

func TestFromContext_Clamping(t *testing.T) {
	assert.Equal(t, Query{Page: 1, Size: 10}, FromContext(queryContext(t, "page=-3&size=0")))
	assert.Equal(t, Query{Page: 2, Size: MaxSize}, FromContext(queryContext(t, "page=2&size=5000")))
	assert.Equal(t, Query{Page: 1, Size: 10}, FromContext(queryContext(t, "page=abc&size=xyz")))
}

func TestMeta(t *testing.T) {
	m := Meta(25, Query{Page: 2, Size: 10})
	assert.Equal(t, int64(25), m.Total)
	assert.Equal(t, 3, m.TotalPage)
	assert.True(t, m.HasNextPage)

	last := Meta(25, Query{Page: 3, Size: 10})
	assert.False(t, last.HasNextPage)

	empty := Meta(0, Query{Page: 1, Size: 10})
	assert.Equal(t, 0, empty.TotalPage)
	assert.False(t, empty.HasNextPage)
}
