package rollout

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/nais/tenant-rollout/internal/pipeline"
)

type (
	Outcome    string
	RunOutcome string
)

const (
	OutcomeSucceeded   Outcome = "succeeded"
	OutcomeSkipped     Outcome = "skipped"
	OutcomeStartFailed Outcome = "start_failed"
	OutcomeTimeout     Outcome = "timeout"
	OutcomeFailed      Outcome = "failed"

	RunOutcomeFinished        RunOutcome = "finished"
	RunOutcomeBudgetExhausted RunOutcome = "budget_exhausted"
	RunOutcomeAborted         RunOutcome = "aborted"
)

// Auditor keeps a record of rollout runs
type Auditor interface {
	RunStarted(ctx context.Context, run Run) error
	AttemptFinished(ctx context.Context, attempt Attempt) error
	RunFinished(ctx context.Context, run Run) error
}

// Run is a single rollout run. Outcome, Errors and FinishedAt are set when the run has finished.
type Run struct {
	ID          uuid.UUID
	ErrorBudget int
	Deployments int
	Errors      int
	Outcome     RunOutcome
	StartedAt   time.Time
	FinishedAt  time.Time
}

// Attempt is the update of a single deployment during a rollout run
type Attempt struct {
	RunID        uuid.UUID
	DeploymentID string
	Pipeline     string
	ExecutionID  string
	Outcome      Outcome
	Err          error
	StartedAt    time.Time
	FinishedAt   time.Time
}

// Duration returns how long the attempt took
func (a Attempt) Duration() time.Duration {
	return a.FinishedAt.Sub(a.StartedAt)
}

func outcomeOf(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeSucceeded
	case errors.Is(err, pipeline.ErrTimeout):
		return OutcomeTimeout
	default:
		return OutcomeFailed
	}
}
