package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authMocks "github.com/allisson/panvault/internal/auth/service/mocks"
	"github.com/allisson/panvault/internal/config"
	"github.com/allisson/panvault/internal/metrics"
	tokenizationDomain "github.com/allisson/panvault/internal/tokenization/domain"
	tokenizationHTTP "github.com/allisson/panvault/internal/tokenization/http"
	usecaseMocks "github.com/allisson/panvault/internal/tokenization/usecase/mocks"
)

// TestMain sets Gin to test mode for all tests in this package.
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// createTestServer creates a test server whose store check always fails.
func createTestServer() *Server {
	return NewServer(map[string]ReadinessCheck{"store": nil}, "localhost", 8080, discardLogger())
}

// newVaultServer builds a server with the full router over mocked dependencies.
func newVaultServer(
	t *testing.T,
	cfg *config.Config,
) (*Server, *usecaseMocks.MockVaultUseCase, *authMocks.MockCredentialService) {
	t.Helper()

	useCase := usecaseMocks.NewMockVaultUseCase(t)
	credentials := authMocks.NewMockCredentialService(t)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	server := NewServer(
		map[string]ReadinessCheck{"store": func(context.Context) error { return nil }},
		"localhost",
		8080,
		discardLogger(),
	)
	server.SetupRouter(
		ctx,
		cfg,
		tokenizationHTTP.NewVaultHandler(useCase, discardLogger()),
		credentials,
		nil,
		"",
	)
	return server, useCase, credentials
}

func TestHealthHandler(t *testing.T) {
	server := createTestServer()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	server.healthHandler(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "healthy", response["status"])
}

func TestReadinessHandler(t *testing.T) {
	t.Run("NotReady_NilCheck", func(t *testing.T) {
		server := createTestServer()

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/ready", nil)

		server.readinessHandler(c)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "not_ready", response["status"])

		components, ok := response["components"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "error", components["store"])
	})

	t.Run("NotReady_OneFailingCheck", func(t *testing.T) {
		server := NewServer(map[string]ReadinessCheck{
			"store":     func(context.Context) error { return nil },
			"audit_log": func(context.Context) error { return errors.New("disk full") },
		}, "localhost", 8080, discardLogger())

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/ready", nil)

		server.readinessHandler(c)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.JSONEq(t,
			`{"status":"not_ready","components":{"store":"ok","audit_log":"error"}}`,
			w.Body.String(),
		)
	})

	t.Run("Ready_AllChecksPass", func(t *testing.T) {
		server := NewServer(map[string]ReadinessCheck{
			"store": func(ctx context.Context) error {
				_, hasDeadline := ctx.Deadline()
				assert.True(t, hasDeadline)
				return nil
			},
		}, "localhost", 8080, discardLogger())

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/ready", nil)

		server.readinessHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ready","components":{"store":"ok"}}`, w.Body.String())
	})
}

func TestCustomLoggerMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	router := gin.New()
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(logger))
	router.GET("/purchases", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": []string{}})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/purchases?token=secret-token", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, buf.String(), `"path":"/purchases"`)
	assert.Contains(t, buf.String(), `"request_id":"`+w.Header().Get("X-Request-Id")+`"`)
	assert.NotContains(t, buf.String(), "secret-token")
}

func TestRecoveryMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(CustomLoggerMiddleware(discardLogger()))
	router.GET("/panic", func(c *gin.Context) {
		panic("test panic")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRouter_HealthAndReady(t *testing.T) {
	server, _, _ := newVaultServer(t, &config.Config{})

	w := httptest.NewRecorder()
	server.GetHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	server.GetHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_TokenizeAuthenticated(t *testing.T) {
	server, useCase, credentials := newVaultServer(t, &config.Config{})

	credentials.EXPECT().Authenticate("merchant-token").Return(nil).Once()
	useCase.EXPECT().
		Tokenize(mock.Anything, true, "4111111111111111").
		Return("tok_abc", nil).
		Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/tokenize", bytes.NewBufferString(`{"pan":"4111111111111111"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer merchant-token")
	server.GetHandler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"token":"tok_abc"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
}

func TestRouter_UnauthenticatedReachesUseCase(t *testing.T) {
	server, useCase, _ := newVaultServer(t, &config.Config{})

	useCase.EXPECT().
		Detokenize(mock.Anything, false, "tok_abc").
		Return("", tokenizationDomain.ErrUnauthorized).
		Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/detokenize", bytes.NewBufferString(`{"token":"tok_abc"}`))
	req.Header.Set("Content-Type", "application/json")
	server.GetHandler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_RateLimited(t *testing.T) {
	server, useCase, _ := newVaultServer(t, &config.Config{
		RateLimitEnabled:        true,
		RateLimitRequestsPerSec: 1,
		RateLimitBurst:          1,
	})

	useCase.EXPECT().
		ListPurchases(mock.Anything, false, "", 0, 100).
		Return(nil, tokenizationDomain.ErrUnauthorized).
		Once()

	first := httptest.NewRecorder()
	server.GetHandler().ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/purchases", nil))
	assert.Equal(t, http.StatusUnauthorized, first.Code)

	second := httptest.NewRecorder()
	server.GetHandler().ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/purchases", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)

	// Health stays outside the limiter.
	health := httptest.NewRecorder()
	server.GetHandler().ServeHTTP(health, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, health.Code)
}

func TestRouter_NotFoundEndpoint(t *testing.T) {
	server, _, _ := newVaultServer(t, &config.Config{})

	w := httptest.NewRecorder()
	server.GetHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nonexistent", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServer_NoMetricsEndpoint(t *testing.T) {
	server, _, _ := newVaultServer(t, &config.Config{})

	w := httptest.NewRecorder()
	server.GetHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServer_StartWithoutRouter(t *testing.T) {
	err := createTestServer().Start(context.Background())
	assert.Error(t, err)
}

func TestServer_ShutdownGracefully(t *testing.T) {
	server, _, _ := newVaultServer(t, &config.Config{})
	server.server.Addr = "127.0.0.1:0"

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Start(context.Background())
	}()

	time.Sleep(100 * time.Millisecond)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	assert.NoError(t, server.Shutdown(shutdownCtx))
	assert.NoError(t, <-errChan)
}

func TestMetricsServer_Endpoints(t *testing.T) {
	provider, err := metrics.NewProvider("panvault_test")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	metricsServer := NewMetricsServer("localhost", 8081, discardLogger(), provider)
	require.NotNil(t, metricsServer)

	w := httptest.NewRecorder()
	metricsServer.GetHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	assert.Contains(t, w.Body.String(), `service_name="panvault_test"`)

	for _, path := range []string{"/health", "/tokenize"} {
		w := httptest.NewRecorder()
		metricsServer.GetHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusNotFound, w.Code, path)
	}
}
