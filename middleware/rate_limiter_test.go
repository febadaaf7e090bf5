package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRequestContext(t *testing.T) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req, err := http.NewRequest(http.MethodGet, "/", nil)
	if err != nil {
		t.Fatal(err)
	}
	c.Request = req
	return c
}

func TestClientIPHeaderPrecedence(t *testing.T) {
	c := newRequestContext(t)
	c.Request.RemoteAddr = "10.0.0.9:51234"
	c.Request.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	c.Request.Header.Set("X-Real-IP", "198.51.100.2")

	assert.Equal(t, "203.0.113.7", clientIP(c))

	c.Request.Header.Del("X-Forwarded-For")
	assert.Equal(t, "198.51.100.2", clientIP(c))

	c.Request.Header.Del("X-Real-IP")
	assert.Equal(t, "10.0.0.9", clientIP(c))
}

func TestClientIPBareRemoteAddr(t *testing.T) {
	c := newRequestContext(t)
	c.Request.RemoteAddr = "10.0.0.9"

	assert.Equal(t, "10.0.0.9", clientIP(c))
}
