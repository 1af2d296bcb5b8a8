package metrics

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// Provider is a meter provider exporting to a dedicated prometheus registry. The registry is pushed
// to a pushgateway at the end of a batch run, since the jobs do not live long enough to be scraped.
type Provider struct {
	provider *sdkmetric.MeterProvider
	registry *prometheus.Registry
}

func New() (*Provider, error) {
	registry := prometheus.NewRegistry()
	exporter, err := otelprom.New(otelprom.WithRegisterer(registry))
	if err != nil {
		return nil, fmt.Errorf("creating prometheus exporter: %w", err)
	}

	return &Provider{
		provider: sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter)),
		registry: registry,
	}, nil
}

func (p *Provider) Meter(name string) metric.Meter {
	return p.provider.Meter(name)
}

// Gatherer returns the registry holding the exported metrics
func (p *Provider) Gatherer() prometheus.Gatherer {
	return p.registry
}

// Push pushes all metrics to the pushgateway at url, replacing any metrics previously pushed for job.
// Nothing is pushed when url is empty.
func (p *Provider) Push(ctx context.Context, url, job string) error {
	if url == "" {
		return nil
	}
	if err := push.New(url, job).Gatherer(p.registry).PushContext(ctx); err != nil {
		return fmt.Errorf("pushing metrics to %s: %w", url, err)
	}
	return nil
}

func (p *Provider) Shutdown(ctx context.Context) error {
	return p.provider.Shutdown(ctx)
}
