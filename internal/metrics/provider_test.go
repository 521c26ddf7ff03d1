package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scrape returns the body served by the provider's /metrics handler.
func scrape(t *testing.T, provider *Provider) string {
	t.Helper()
	w := httptest.NewRecorder()
	provider.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	return w.Body.String()
}

func TestNewProvider_ServiceName(t *testing.T) {
	tests := []struct {
		name      string
		namespace string
		want      string
	}{
		{name: "Configured", namespace: "vault_eu", want: `service_name="vault_eu"`},
		{name: "DefaultsWhenEmpty", namespace: "", want: `service_name="panvault"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, err := NewProvider(tt.namespace)
			require.NoError(t, err)
			t.Cleanup(func() { assert.NoError(t, provider.Shutdown(context.Background())) })

			counter, err := provider.MeterProvider().Meter("panvault").Int64Counter("panvault_scrapes_total")
			require.NoError(t, err)
			counter.Add(context.Background(), 1)

			body := scrape(t, provider)
			assert.Contains(t, body, "target_info")
			assert.Contains(t, body, tt.want)
		})
	}
}

func TestProvider_HandlerExportsVaultOperations(t *testing.T) {
	provider, err := NewProvider("panvault")
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, provider.Shutdown(context.Background())) })

	businessMetrics, err := NewBusinessMetrics(provider.MeterProvider(), "panvault")
	require.NoError(t, err)
	businessMetrics.RecordOperation(context.Background(), "vault", "tokenize", "success")

	assert.Contains(t, scrape(t, provider), "panvault_operations_total")
}

func TestProvider_Shutdown(t *testing.T) {
	t.Run("FlushesProvider", func(t *testing.T) {
		provider, err := NewProvider("panvault")
		require.NoError(t, err)
		assert.NoError(t, provider.Shutdown(context.Background()))
	})

	t.Run("ZeroValue", func(t *testing.T) {
		assert.NoError(t, (&Provider{}).Shutdown(context.Background()))
	})
}
