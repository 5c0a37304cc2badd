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

	router := gin.New()
	router.Use(LoginRateLimit(2, 200*time.Millisecond))
	router.POST("/login", func(c *gin.Context) {
		c.String(200, "ok")
	})

	doReq := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest("POST", "/login", nil)
		req.RemoteAddr = ip + ":12345"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, 200, doReq("192.168.1.1").Code)
	assert.Equal(t, 200, doReq("192.168.1.1").Code)
	w3 := doReq("192.168.1.1")
	assert.Equal(t, http.StatusTooManyRequests, w3.Code)
	assert.Contains(t, w3.Body.String(), "tentativas")

	// other clients are counted separately
	assert.Equal(t, 200, doReq("192.168.1.2").Code)
	assert.Equal(t, 200, doReq("192.168.1.2").Code)

	// the window slides
	time.Sleep(250 * time.Millisecond)
	assert.Equal(t, 200, doReq("192.168.1.1").Code)
}

func TestSlidingWindow_Sweep(t *testing.T) {
	w := newSlidingWindow(1, time.Minute)
	now := time.Now()

	assert.True(t, w.allow("a", now))
	assert.False(t, w.allow("a", now.Add(time.Second)))
	assert.True(t, w.allow("b", now.Add(30*time.Second)))

	w.sweep(now.Add(70 * time.Second))
	assert.NotContains(t, w.hits, "a")
	assert.Contains(t, w.hits, "b")

	assert.True(t, w.allow("a", now.Add(70*time.Second)))
}
