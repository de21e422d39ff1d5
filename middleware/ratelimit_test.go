package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestLoginRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/login", LoginRateLimit(3, time.Minute), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	do := func() int {
		req := httptest.NewRequest("POST", "/login", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	// 窗口内前 3 次放行，第 4 次起限流
	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, do())
	}
	assert.Equal(t, http.StatusTooManyRequests, do())
	assert.Equal(t, http.StatusTooManyRequests, do())
}
