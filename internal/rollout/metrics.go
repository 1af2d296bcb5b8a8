package rollout

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type Metrics struct {
	errorCount       metric.Int64Counter
	deploymentCount  metric.Int64Counter
	pipelineDuration metric.Float64Histogram
}

func NewMetrics(meter metric.Meter) (*Metrics, error) {
	errors, err := meter.Int64Counter("rollout_errors", metric.WithDescription("Number of failed deployments counted against the error budget"))
	if err != nil {
		return nil, fmt.Errorf("failed to create rollout_errors counter: %w", err)
	}

	deployments, err := meter.Int64Counter("rollout_deployments", metric.WithDescription("Number of deployments processed, by outcome"))
	if err != nil {
		return nil, fmt.Errorf("failed to create rollout_deployments counter: %w", err)
	}

	duration, err := meter.Float64Histogram("rollout_pipeline_duration", metric.WithDescription("Time spent starting and waiting for deployment pipelines"), metric.WithUnit("s"))
	if err != nil {
		return nil, fmt.Errorf("failed to create rollout_pipeline_duration histogram: %w", err)
	}

	return &Metrics{
		errorCount:       errors,
		deploymentCount:  deployments,
		pipelineDuration: duration,
	}, nil
}

func (m *Metrics) error(ctx context.Context, outcome Outcome) {
	if m == nil {
		return
	}
	m.errorCount.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", string(outcome))))
}

func (m *Metrics) deployment(ctx context.Context, outcome Outcome) {
	if m == nil {
		return
	}
	m.deploymentCount.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", string(outcome))))
}

func (m *Metrics) duration(ctx context.Context, attempt Attempt) {
	if m == nil {
		return
	}
	m.pipelineDuration.Record(ctx, attempt.Duration().Seconds(), metric.WithAttributes(
		attribute.String("outcome", string(attempt.Outcome)),
		attribute.String("pipeline", attempt.Pipeline),
	))
}
