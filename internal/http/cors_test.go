package http

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newCORSRouter(enabled bool, origins string) *gin.Engine {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	router := gin.New()
	if middleware := createCORSMiddleware(enabled, origins, logger); middleware != nil {
		router.Use(middleware)
	}
	router.POST("/tokenize", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"token": "tok"})
	})
	return router
}

func TestCreateCORSMiddleware(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name    string
		enabled bool
		origins string
		wantNil bool
	}{
		{"Disabled", false, "https://console.example.com", true},
		{"EnabledWithoutOrigins", true, "", true},
		{"EnabledWithOnlySeparators", true, " , ,", true},
		{"EnabledWithOrigins", true, "https://console.example.com, https://ops.example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			middleware := createCORSMiddleware(tt.enabled, tt.origins, logger)
			if tt.wantNil {
				assert.Nil(t, middleware)
			} else {
				assert.NotNil(t, middleware)
			}
		})
	}
}

func TestParseOrigins(t *testing.T) {
	assert.Nil(t, parseOrigins(""))
	assert.Equal(t,
		[]string{"https://console.example.com", "https://ops.example.com"},
		parseOrigins(" https://console.example.com ,, https://ops.example.com "),
	)
}

func TestCORS_AllowedOrigin(t *testing.T) {
	router := newCORSRouter(true, "https://console.example.com")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/tokenize", nil)
	req.Header.Set("Origin", "https://console.example.com")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://console.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORS_NoHeadersWhenDisabled(t *testing.T) {
	router := newCORSRouter(false, "https://console.example.com")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/tokenize", nil)
	req.Header.Set("Origin", "https://console.example.com")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_Preflight(t *testing.T) {
	router := newCORSRouter(true, "https://console.example.com")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/tokenize", nil)
	req.Header.Set("Origin", "https://console.example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
	assert.NotContains(t, w.Header().Get("Access-Control-Allow-Methods"), "DELETE")
}
