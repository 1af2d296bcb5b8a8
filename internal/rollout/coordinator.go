package rollout

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/nais/tenant-rollout/internal/deployment"
	"github.com/sirupsen/logrus"
	"k8s.io/utils/clock"
)

// DefaultErrorBudget is the number of failed deployments that aborts a rollout
const DefaultErrorBudget = 1

// ErrBudgetExhausted is returned when a rollout is aborted because of too many failed deployments
var ErrBudgetExhausted = errors.New("error budget exhausted")

// BudgetExhaustedError is returned when the rollout is aborted. Deployment is the id of the
// deployment whose failure exhausted the budget.
type BudgetExhaustedError struct {
	Budget     int
	Deployment string
	Err        error
}

func (e *BudgetExhaustedError) Error() string {
	return fmt.Sprintf("error budget %d exhausted at deployment %s, aborting: %v", e.Budget, e.Deployment, e.Err)
}

func (e *BudgetExhaustedError) Unwrap() []error {
	return []error{ErrBudgetExhausted, e.Err}
}

// Executor starts pipeline executions and waits for them to finish
type Executor interface {
	Start(ctx context.Context, pipeline string) (string, error)
	Await(ctx context.Context, pipeline, executionID string) error
}

// State is the error accounting of a single rollout run
type State struct {
	Errors      int
	ErrorBudget int
}

// RecordError counts a failed deployment and returns true if the error budget is exhausted
func (s *State) RecordError() bool {
	s.Errors++
	return s.Errors >= s.ErrorBudget
}

// Summary is the result of a rollout run
type Summary struct {
	RunID     uuid.UUID
	Attempted int
	Succeeded int
	Skipped   int
	Errors    int
}

// Coordinator rolls out updates to deployments one at a time, by triggering each deployment pipeline
// to update itself and waiting for it to finish before moving on to the next one
type Coordinator struct {
	executor    Executor
	log         logrus.FieldLogger
	clock       clock.PassiveClock
	errorBudget int
	auditor     Auditor
	metrics     *Metrics
}

// Option is a function that can be used to set custom options for the coordinator
type Option func(*Coordinator)

// WithErrorBudget will set the number of failed deployments that aborts the rollout
func WithErrorBudget(budget int) Option {
	return func(c *Coordinator) {
		c.errorBudget = budget
	}
}

// WithAuditor will record the rollout run and every deployment attempt with the auditor
func WithAuditor(auditor Auditor) Option {
	return func(c *Coordinator) {
		c.auditor = auditor
	}
}

// WithMetrics will record metrics for the rollout
func WithMetrics(metrics *Metrics) Option {
	return func(c *Coordinator) {
		c.metrics = metrics
	}
}

// WithClock will set the clock used for timing deployments
func WithClock(clk clock.PassiveClock) Option {
	return func(c *Coordinator) {
		c.clock = clk
	}
}

// New creates a new rollout coordinator
func New(executor Executor, log logrus.FieldLogger, opts ...Option) *Coordinator {
	coordinator := &Coordinator{
		executor:    executor,
		log:         log,
		clock:       clock.RealClock{},
		errorBudget: DefaultErrorBudget,
	}

	for _, opt := range opts {
		opt(coordinator)
	}

	return coordinator
}

// Run triggers the pipeline of every provisioned deployment, in order. Unprovisioned deployments are
// skipped. Failed deployments are counted, and the rollout is aborted with a BudgetExhaustedError as
// soon as the error budget is exhausted.
func (c *Coordinator) Run(ctx context.Context, deployments []deployment.Deployment) (Summary, error) {
	state := &State{ErrorBudget: c.errorBudget}
	summary := Summary{RunID: uuid.New()}
	log := c.log.WithField("run_id", summary.RunID)

	run := Run{
		ID:          summary.RunID,
		ErrorBudget: state.ErrorBudget,
		Deployments: len(deployments),
		StartedAt:   c.clock.Now(),
	}
	c.audit(ctx, log, "run started", func(ctx context.Context) error {
		return c.auditor.RunStarted(ctx, run)
	})

	finish := func(outcome RunOutcome, err error) (Summary, error) {
		summary.Errors = state.Errors
		run.Errors = state.Errors
		run.Outcome = outcome
		run.FinishedAt = c.clock.Now()
		c.audit(context.WithoutCancel(ctx), log, "run finished", func(ctx context.Context) error {
			return c.auditor.RunFinished(ctx, run)
		})
		return summary, err
	}

	log.WithField("deployments", len(deployments)).Info("triggering each configured deployment to self-update")
	for _, d := range deployments {
		if err := ctx.Err(); err != nil {
			return finish(RunOutcomeAborted, err)
		}

		log := log.WithField("deployment_id", d.ID)
		if !d.Provisioned {
			log.Info("ignoring unprovisioned deployment")
			summary.Skipped++
			c.metrics.deployment(ctx, OutcomeSkipped)
			continue
		}

		summary.Attempted++
		attempt := c.deploy(ctx, log, d)
		attempt.RunID = summary.RunID
		c.metrics.deployment(ctx, attempt.Outcome)
		c.metrics.duration(ctx, attempt)
		c.audit(context.WithoutCancel(ctx), log, "attempt finished", func(ctx context.Context) error {
			return c.auditor.AttemptFinished(ctx, attempt)
		})

		if attempt.Err == nil {
			summary.Succeeded++
			continue
		}

		if ctx.Err() != nil && errors.Is(attempt.Err, ctx.Err()) {
			return finish(RunOutcomeAborted, attempt.Err)
		}

		log.WithError(attempt.Err).WithField("outcome", attempt.Outcome).Error("deployment failed")
		c.metrics.error(ctx, attempt.Outcome)
		if state.RecordError() {
			log.WithField("error_budget", state.ErrorBudget).Error("error budget exhausted, aborting")
			return finish(RunOutcomeBudgetExhausted, &BudgetExhaustedError{
				Budget:     state.ErrorBudget,
				Deployment: d.ID,
				Err:        attempt.Err,
			})
		}
	}

	log.WithField("errors", state.Errors).Infof("finished with %d error(s)", state.Errors)
	return finish(RunOutcomeFinished, nil)
}

// deploy triggers the pipeline of a single deployment and waits for it to finish
func (c *Coordinator) deploy(ctx context.Context, log logrus.FieldLogger, d deployment.Deployment) Attempt {
	attempt := Attempt{
		DeploymentID: d.ID,
		Pipeline:     d.PipelineName(),
		StartedAt:    c.clock.Now(),
	}

	log.WithFields(logrus.Fields{
		"deployment_type": d.Type,
		"pipeline":        attempt.Pipeline,
	}).Info("starting execution of deployment pipeline")

	executionID, err := c.executor.Start(ctx, attempt.Pipeline)
	if err != nil {
		attempt.Outcome = OutcomeStartFailed
		attempt.Err = err
		attempt.FinishedAt = c.clock.Now()
		return attempt
	}

	attempt.ExecutionID = executionID
	attempt.Err = c.executor.Await(ctx, attempt.Pipeline, executionID)
	attempt.FinishedAt = c.clock.Now()
	attempt.Outcome = outcomeOf(attempt.Err)
	return attempt
}

func (c *Coordinator) audit(ctx context.Context, log logrus.FieldLogger, msg string, fn func(ctx context.Context) error) {
	if c.auditor == nil {
		return
	}
	if err := fn(ctx); err != nil {
		log.WithError(err).Warnf("unable to audit %s", msg)
	}
}
