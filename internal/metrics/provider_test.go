package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scrape returns the Prometheus exposition served by provider.
func scrape(t *testing.T, provider *Provider) string {
	t.Helper()

	w := httptest.NewRecorder()
	provider.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	return w.Body.String()
}

func TestNewProvider(t *testing.T) {
	t.Run("Success_CreateProvider", func(t *testing.T) {
		provider, err := NewProvider("ordersaga", "inventory")

		require.NoError(t, err)
		assert.NotNil(t, provider.MeterProvider())
		assert.NotNil(t, provider.Handler())
	})

	t.Run("Success_ResourceCarriesServiceName", func(t *testing.T) {
		provider, err := NewProvider("ordersaga", "payment")
		require.NoError(t, err)
		defer func() {
			assert.NoError(t, provider.Shutdown(context.Background()))
		}()

		bm, err := NewBusinessMetrics(provider.MeterProvider(), "ordersaga")
		require.NoError(t, err)
		bm.RecordOperation(context.Background(), "payment", "payment_initiate", "success")

		output := scrape(t, provider)
		assert.Regexp(t, `target_info\{[^}]*service_name="payment"`, output)
		assert.Regexp(t, `target_info\{[^}]*service_namespace="ordersaga"`, output)
	})

	t.Run("Success_RuntimeCollectorsRegistered", func(t *testing.T) {
		provider, err := NewProvider("ordersaga", "order")
		require.NoError(t, err)

		output := scrape(t, provider)
		assert.Contains(t, output, "go_goroutines")
	})
}

func TestProvider_Shutdown(t *testing.T) {
	t.Run("Success_ShutdownProvider", func(t *testing.T) {
		provider, err := NewProvider("ordersaga", "order")
		require.NoError(t, err)

		assert.NoError(t, provider.Shutdown(context.Background()))
	})

	t.Run("Success_ShutdownNilProvider", func(t *testing.T) {
		provider := &Provider{}

		assert.NoError(t, provider.Shutdown(context.Background()))
	})
}
