package pipeline

import (
	"context"
	"errors"
	"time"

	"k8s.io/utils/clock"
)

// ErrTimeout is returned when a pipeline execution does not finish within the maximum wait time
var ErrTimeout = errors.New("maximum wait time exceeded")

// ConditionFunc is called on every poll. Polling stops when it returns true or an error.
type ConditionFunc func(ctx context.Context) (done bool, err error)

// Poll waits interval between each call to condition, until condition is done, returns an error, or
// more than timeout has passed since Poll was called. The elapsed time is checked right before each
// call to condition, and ErrTimeout is returned without calling condition again once it is exceeded.
func Poll(ctx context.Context, clk clock.Clock, interval, timeout time.Duration, condition ConditionFunc) error {
	start := clk.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-clk.After(interval):
		}

		if clk.Since(start) > timeout {
			return ErrTimeout
		}

		done, err := condition(ctx)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}
