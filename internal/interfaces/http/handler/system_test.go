package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sap-portal/backend/internal/interfaces/http/dto"
)

func TestSystemHandlerPing(t *testing.T) {
	h := NewSystemHandler()

	router := gin.New()
	router.GET("/ping", h.Ping)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "pong", data["message"])
	assert.NotEmpty(t, data["timestamp"])
}

func TestSystemHandlerGetSystemInfo(t *testing.T) {
	h := NewSystemHandler()

	router := gin.New()
	router.GET("/info", h.GetSystemInfo)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/info", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Student Assistant Program API", data["name"])
	assert.NotEmpty(t, data["go_version"])
	assert.NotEmpty(t, data["uptime"])
}
