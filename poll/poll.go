// Package poll provides a one-shot poll-until-success primitive for awaiting
// eventually-consistent external conditions, such as an asynchronously
// delivered message. Unlike the retry executor it never re-invokes any
// action: the probe is a pure observation repeated under a single deadline.
package poll

import (
	"context"
	"fmt"
	"time"

	"github.com/finchley/verily/internal"
)

// Probe observes an external condition. ok reports whether the value is
// ready; an error is swallowed and remembered, and only surfaces if the
// deadline elapses without a ready value.
type Probe[T any] func(ctx context.Context) (T, bool, error)

// DeadlineError is returned when the deadline elapses before the probe
// produces a value. It carries the last error the probe returned, if any;
// otherwise only the fallback message.
type DeadlineError struct {
	Message string
	LastErr error
}

func (e *DeadlineError) Error() string {
	if e.LastErr != nil {
		return fmt.Sprintf("verily: %s: %v", e.Message, e.LastErr)
	}
	return "verily: " + e.Message
}

func (e *DeadlineError) Unwrap() error {
	return e.LastErr
}

// Until polls probe every interval until it reports a ready value or the
// timeout elapses. On expiry it fails with a DeadlineError wrapping the last
// probe error, or the fallback message when none occurred.
//
// A ready value that is a typed nil is treated as not ready; probes
// returning interface values cannot accidentally satisfy the wait with a
// nil result.
func Until[T any](ctx context.Context, probe Probe[T], opts ...Option) (T, error) {
	var zero T

	if ctx == nil {
		ctx = context.Background()
	}

	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	deadline := o.clock().Add(o.timeout)

	var lastErr error
	for {
		val, ok, err := probe(ctx)
		if err != nil {
			lastErr = err
		} else if ok && !internal.IsTypedNil(val) {
			return val, nil
		}

		if !o.clock().Before(deadline) {
			return zero, &DeadlineError{Message: o.message, LastErr: lastErr}
		}
		if err := o.sleep(ctx, o.interval); err != nil {
			return zero, err
		}
	}
}

// UntilTrue polls cond until it returns true or the timeout elapses.
func UntilTrue(ctx context.Context, cond func(ctx context.Context) (bool, error), opts ...Option) error {
	_, err := Until(ctx, func(ctx context.Context) (struct{}, bool, error) {
		ok, err := cond(ctx)
		return struct{}{}, ok, err
	}, opts...)
	return err
}

func sleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)

	defer func() {
		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
	}()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
