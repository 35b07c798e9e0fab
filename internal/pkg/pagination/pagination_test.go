package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func queryContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return c
}

func TestFromContext(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		wantPage int
		wantSize int
	}{
		{"defaults", "", DefaultPage, DefaultSize},
		{"explicit values", "page=3&size=50", 3, 50},
		{"zero page clamps to first", "page=0", 1, DefaultSize},
		{"negative page clamps to first", "page=-4", 1, DefaultSize},
		{"zero size falls back to default", "size=0", DefaultPage, DefaultSize},
		{"oversized size clamps to max", "size=5000", DefaultPage, MaxSize},
		{"non-numeric falls back to defaults", "page=abc&size=xyz", DefaultPage, DefaultSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := FromContext(queryContext(t, tt.query))
			assert.Equal(t, tt.wantPage, q.Page)
			assert.Equal(t, tt.wantSize, q.Size)
		})
	}
}
