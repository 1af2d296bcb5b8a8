package metrics_test

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/nais/tenant-rollout/internal/metrics"
	"github.com/nais/tenant-rollout/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric"
)

func TestProvider(t *testing.T) {
	ctx := context.Background()

	provider, err := metrics.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = provider.Shutdown(ctx)
	})

	counter, err := provider.Meter("test").Int64Counter("rollout_deployments", metric.WithDescription("Number of deployments"))
	require.NoError(t, err)
	counter.Add(ctx, 3)

	t.Run("metrics are gathered", func(t *testing.T) {
		families, err := provider.Gatherer().Gather()
		require.NoError(t, err)

		names := make([]string, 0, len(families))
		for _, family := range families {
			names = append(names, family.GetName())
		}
		assert.Contains(t, names, "rollout_deployments_total")
	})

	t.Run("push to pushgateway", func(t *testing.T) {
		server := test.NewHttpServerWithHandlers(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/metrics/job/update-deployments", r.URL.Path)

			body, err := io.ReadAll(r.Body)
			assert.NoError(t, err)
			assert.Contains(t, string(body), "rollout_deployments_total")
			w.WriteHeader(http.StatusOK)
		})

		assert.NoError(t, provider.Push(ctx, server.URL, "update-deployments"))
	})

	t.Run("pushgateway error", func(t *testing.T) {
		server := test.NewHttpServerWithHandlers(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		err := provider.Push(ctx, server.URL, "update-deployments")
		assert.ErrorContains(t, err, "pushing metrics to "+server.URL)
	})
}

func TestProvider_PushWithoutPushgateway(t *testing.T) {
	provider, err := metrics.New()
	require.NoError(t, err)
	assert.NoError(t, provider.Push(context.Background(), "", "get-deployments"))
}
