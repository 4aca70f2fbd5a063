package poll

import (
	"context"
	"time"
)

const (
	// DefaultInterval is the pause between probe invocations.
	DefaultInterval = 100 * time.Millisecond

	// DefaultTimeout is the total polling budget.
	DefaultTimeout = 5 * time.Second

	defaultMessage = "condition not met before deadline"
)

type options struct {
	interval time.Duration
	timeout  time.Duration
	message  string

	clock func() time.Time
	sleep func(context.Context, time.Duration) error
}

// Option configures a single Until call.
type Option func(*options)

func defaultOptions() options {
	return options{
		interval: DefaultInterval,
		timeout:  DefaultTimeout,
		message:  defaultMessage,
		clock:    time.Now,
		sleep:    sleepWithContext,
	}
}

// WithInterval sets the pause between probe invocations.
func WithInterval(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.interval = d
		}
	}
}

// WithTimeout sets the total polling budget.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// WithMessage sets the fallback error text used when the deadline elapses
// without the probe ever returning an error.
func WithMessage(msg string) Option {
	return func(o *options) {
		if msg != "" {
			o.message = msg
		}
	}
}
