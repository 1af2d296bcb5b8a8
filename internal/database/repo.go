package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/nais/tenant-rollout/internal/database/gensql"
	"github.com/nais/tenant-rollout/internal/deployment"
	"github.com/nais/tenant-rollout/internal/rollout"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Repo keeps an audit trail of rollout runs and rejected deployment records
type Repo struct {
	querier gensql.Querier
	log     logrus.FieldLogger

	auditErrorCount metric.Int64Counter
}

var _ rollout.Auditor = &Repo{}

func New(querier gensql.Querier, log logrus.FieldLogger) *Repo {
	return &Repo{
		querier: querier,
		log:     log,
	}
}

func (r *Repo) Metrics(meter metric.Meter) (err error) {
	r.auditErrorCount, err = meter.Int64Counter("audit_errors", metric.WithDescription("Number of audit errors"))
	if err != nil {
		return fmt.Errorf("failed to create audit_errors counter: %w", err)
	}

	return nil
}

func (r *Repo) RunStarted(ctx context.Context, run rollout.Run) error {
	err := r.querier.RolloutRunCreate(ctx, gensql.RolloutRunCreateParams{
		ID:          run.ID,
		ErrorBudget: int32(run.ErrorBudget),
		Deployments: int32(run.Deployments),
		StartedAt:   timestamptz(run.StartedAt),
	})
	return r.error(ctx, "run_started", err)
}

func (r *Repo) AttemptFinished(ctx context.Context, attempt rollout.Attempt) error {
	params := gensql.RolloutAttemptCreateParams{
		RunID:        attempt.RunID,
		DeploymentID: attempt.DeploymentID,
		Pipeline:     attempt.Pipeline,
		ExecutionID:  text(attempt.ExecutionID),
		Outcome:      gensql.RolloutAttemptOutcome(attempt.Outcome),
		StartedAt:    timestamptz(attempt.StartedAt),
		FinishedAt:   timestamptz(attempt.FinishedAt),
	}
	if attempt.Err != nil {
		params.Error = text(attempt.Err.Error())
	}

	return r.error(ctx, "attempt_finished", r.querier.RolloutAttemptCreate(ctx, params))
}

func (r *Repo) RunFinished(ctx context.Context, run rollout.Run) error {
	err := r.querier.RolloutRunFinish(ctx, gensql.RolloutRunFinishParams{
		ID:         run.ID,
		Errors:     int32(run.Errors),
		Outcome:    gensql.NullRolloutRunOutcome{RolloutRunOutcome: gensql.RolloutRunOutcome(run.Outcome), Valid: run.Outcome != ""},
		FinishedAt: timestamptz(run.FinishedAt),
	})
	return r.error(ctx, "run_finished", err)
}

// RecordRejections stores the deployment records that were dropped while building a snapshot
func (r *Repo) RecordRejections(ctx context.Context, snapshotName string, rejections []deployment.Rejection) error {
	if len(rejections) == 0 {
		return nil
	}

	params := make([]gensql.ValidationRejectionsInsertParams, 0, len(rejections))
	for _, rejection := range rejections {
		p := gensql.ValidationRejectionsInsertParams{
			SnapshotName: snapshotName,
			DeploymentID: rejection.Record.ID,
			Reason:       rejection.Err.Error(),
		}

		validationErr := &deployment.ValidationError{}
		if errors.As(rejection.Err, &validationErr) {
			p.Field = text(validationErr.Field)
		}
		params = append(params, p)
	}

	n, err := r.querier.ValidationRejectionsInsert(ctx, params)
	if err != nil {
		return r.error(ctx, "record_rejections", err)
	}

	r.log.WithField("rejections", n).Debug("recorded rejected deployment records")
	return nil
}

// Run returns the audited rollout run with the given id
func (r *Repo) Run(ctx context.Context, id uuid.UUID) (*gensql.RolloutRun, error) {
	return r.querier.RolloutRun(ctx, id)
}

// Attempts returns the deployment attempts of a rollout run, in the order they were made
func (r *Repo) Attempts(ctx context.Context, runID uuid.UUID) ([]*gensql.RolloutAttempt, error) {
	return r.querier.RolloutAttempts(ctx, runID)
}

// Rejections returns the deployment records rejected while building the named snapshot
func (r *Repo) Rejections(ctx context.Context, snapshotName string) ([]*gensql.ValidationRejection, error) {
	return r.querier.ValidationRejections(ctx, snapshotName)
}

func (r *Repo) error(ctx context.Context, action string, err error) error {
	if err == nil {
		return nil
	}

	if r.auditErrorCount != nil {
		r.auditErrorCount.Add(ctx, 1, metric.WithAttributes(attribute.String("action", action)))
	}
	return fmt.Errorf("audit %s: %w", action, err)
}

func timestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: !t.IsZero()}
}

func text(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}
