package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"k8s.io/utils/clock"
)

const (
	DefaultInterval = 20 * time.Second
	DefaultMaxWait  = 30 * time.Minute
)

var (
	// ErrNoExecutionID is returned when starting a pipeline execution does not yield an execution id
	ErrNoExecutionID = errors.New("no execution id in start pipeline execution response")

	// ErrLatestExecutionNotFound is returned when the latest execution of a pipeline can not be determined
	ErrLatestExecutionNotFound = errors.New("could not determine latest pipeline execution id")
)

// FailureError is returned when a pipeline execution ends without succeeding
type FailureError struct {
	Pipeline    string
	ExecutionID string
	Status      Status
	Err         error
}

func (e *FailureError) Error() string {
	msg := fmt.Sprintf("pipeline %s execution %s: status is %s", e.Pipeline, e.ExecutionID, e.Status)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FailureError) Unwrap() error {
	return e.Err
}

// Control is the pipeline service as seen by the tracker
type Control interface {
	// Start starts a new execution of the pipeline and returns its id, or an empty string if no id was
	// returned
	Start(ctx context.Context, pipeline string) (string, error)

	// ExecutionStatus returns the status of a pipeline execution
	ExecutionStatus(ctx context.Context, pipeline, executionID string) (Status, error)

	// LatestExecutionID returns the id of the latest execution of the pipeline, or an empty string if
	// it can not be determined
	LatestExecutionID(ctx context.Context, pipeline string) (string, error)
}

// Tracker starts pipeline executions and waits for them to finish
type Tracker struct {
	control  Control
	log      logrus.FieldLogger
	clock    clock.Clock
	interval time.Duration
	maxWait  time.Duration
}

// Option is a function that can be used to set custom options for the tracker
type Option func(*Tracker)

// WithClock will set the clock used when polling
func WithClock(clk clock.Clock) Option {
	return func(t *Tracker) {
		t.clock = clk
	}
}

// WithInterval will set a custom delay between each poll
func WithInterval(interval time.Duration) Option {
	return func(t *Tracker) {
		t.interval = interval
	}
}

// WithMaxWait will set a custom maximum time to wait for an execution
func WithMaxWait(maxWait time.Duration) Option {
	return func(t *Tracker) {
		t.maxWait = maxWait
	}
}

// NewTracker creates a new pipeline execution tracker
func NewTracker(control Control, log logrus.FieldLogger, opts ...Option) *Tracker {
	tracker := &Tracker{
		control:  control,
		log:      log,
		clock:    clock.RealClock{},
		interval: DefaultInterval,
		maxWait:  DefaultMaxWait,
	}

	for _, opt := range opts {
		opt(tracker)
	}

	return tracker
}

// Start starts a new execution of the pipeline
func (t *Tracker) Start(ctx context.Context, pipeline string) (string, error) {
	executionID, err := t.control.Start(ctx, pipeline)
	if err != nil {
		return "", fmt.Errorf("starting pipeline %s: %w", pipeline, err)
	}

	if executionID == "" {
		return "", fmt.Errorf("starting pipeline %s: %w", pipeline, ErrNoExecutionID)
	}

	t.log.WithFields(logrus.Fields{
		"pipeline":     pipeline,
		"execution_id": executionID,
	}).Info("pipeline execution started")
	return executionID, nil
}

// Await polls the pipeline execution until it has succeeded, failed, or the maximum wait time has
// passed. If the execution is cancelled or superseded, the latest execution of the pipeline is
// awaited instead. The maximum wait time is counted from when Await is called, and is not reset
// when switching executions.
func (t *Tracker) Await(ctx context.Context, pipeline, executionID string) error {
	log := t.log.WithField("pipeline", pipeline)
	log.Info("waiting for pipeline execution to complete")

	err := Poll(ctx, t.clock, t.interval, t.maxWait, func(ctx context.Context) (bool, error) {
		status, err := t.control.ExecutionStatus(ctx, pipeline, executionID)
		if err != nil {
			return false, fmt.Errorf("getting status of pipeline %s execution %s: %w", pipeline, executionID, err)
		}

		log := log.WithFields(logrus.Fields{
			"execution_id": executionID,
			"status":       status,
		})

		switch {
		case status == StatusSucceeded:
			log.Info("pipeline execution has finished")
			return true, nil
		case status == StatusInProgress:
			log.Debug("execution in progress, waiting")
			return false, nil
		case status.Replaced():
			log.Info("execution was replaced, looking up latest execution id")
			latest, err := t.control.LatestExecutionID(ctx, pipeline)
			if err != nil {
				return false, fmt.Errorf("getting latest execution of pipeline %s: %w", pipeline, err)
			}
			if latest == "" {
				return false, &FailureError{Pipeline: pipeline, ExecutionID: executionID, Status: status, Err: ErrLatestExecutionNotFound}
			}
			log.WithField("latest_execution_id", latest).Info("following latest execution")
			executionID = latest
			return false, nil
		default:
			return false, &FailureError{Pipeline: pipeline, ExecutionID: executionID, Status: status}
		}
	})

	if errors.Is(err, ErrTimeout) {
		return fmt.Errorf("waiting for pipeline %s execution %s for %s: %w", pipeline, executionID, t.maxWait, err)
	}
	return err
}

// StartAndAwait starts a new execution of the pipeline and waits for it to finish
func (t *Tracker) StartAndAwait(ctx context.Context, pipeline string) error {
	executionID, err := t.Start(ctx, pipeline)
	if err != nil {
		return err
	}
	return t.Await(ctx, pipeline, executionID)
}
