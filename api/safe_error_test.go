package api

import (
	"bytes"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"bluedock/config"
	"bluedock/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	return &buf
}

func TestStorageError_LogsRequestAndUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	config.GlobalConfig = &config.Config{Server: config.ServerConfig{Mode: "release"}}
	t.Cleanup(func() { config.GlobalConfig = nil })
	buf := captureLog(t)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("DELETE", "/api/services/3", nil)
	c.Request.Header.Set(middleware.RequestIDHeader, "req-42")
	middleware.RequestID()(c)
	c.Set("userID", uint(7))

	storageError(c, "delete service", errors.New("Error 1205: lock wait timeout"), "Erro ao excluir serviço")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "lock wait")
	assert.Contains(t, buf.String(), "[req-42] user=7 delete service: Error 1205: lock wait timeout")
}

func TestStorageError_AnonymousUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	buf := captureLog(t)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/services", nil)

	storageError(c, "list services", errors.New("connection refused"), "Erro ao buscar serviços")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, buf.String(), "[-] user=0 list services")
}
