package policy

import (
	"time"
)

// Policy controls the timing of a single Confirm call: how many times the
// action is attempted, how long each attempt waits for verification, and the
// pauses between the moving parts.
//
// All durations are wall-clock. The zero value is not usable directly; pass
// it through Normalize or build policies with New.
type Policy struct {
	// Name labels the action in diagnostics and errors. Purely informational.
	Name string `json:"name,omitempty"`

	// MaxAttempts is the number of action invocations before giving up,
	// including the first.
	MaxAttempts int `json:"max_attempts"`

	// ActionInterval is the pause between a failed or unconfirmed attempt and
	// the next action invocation.
	ActionInterval time.Duration `json:"action_interval"`

	// VerifyInterval is the polling period of the verification loop.
	VerifyInterval time.Duration `json:"verify_interval"`

	// Timeout is the per-attempt verification budget, measured from the end
	// of the settle delay.
	Timeout time.Duration `json:"timeout"`

	// SettleDelay is the fixed pause between a successful action invocation
	// and the first verification poll, covering asynchronous UI propagation.
	SettleDelay time.Duration `json:"settle_delay"`
}

// Default returns the stock policy: 3 attempts, 100ms between attempts, 50ms
// verification polling, a 1s per-attempt budget and a 50ms settle delay.
func Default() Policy {
	return Policy{
		Name:           "action",
		MaxAttempts:    3,
		ActionInterval: 100 * time.Millisecond,
		VerifyInterval: 50 * time.Millisecond,
		Timeout:        1 * time.Second,
		SettleDelay:    50 * time.Millisecond,
	}
}

const (
	maxAttemptsCeiling = 10

	minIntervalFloor = 1 * time.Millisecond
	maxTimeoutCeil   = 5 * time.Minute
)

// Normalize clamps out-of-range fields to safe values and fills zero fields
// from Default. A zero SettleDelay is kept as-is: skipping the settle pause
// is a legal explicit choice. Normalize never fails: a policy assembled from
// partial caller input always normalizes to something the executor can run.
func (p Policy) Normalize() Policy {
	n := p

	if n.Name == "" {
		n.Name = "action"
	}

	if n.MaxAttempts == 0 {
		n.MaxAttempts = 3
	}
	if n.MaxAttempts < 1 {
		n.MaxAttempts = 1
	} else if n.MaxAttempts > maxAttemptsCeiling {
		n.MaxAttempts = maxAttemptsCeiling
	}

	if n.ActionInterval <= 0 {
		n.ActionInterval = 100 * time.Millisecond
	}
	if n.ActionInterval < minIntervalFloor {
		n.ActionInterval = minIntervalFloor
	}

	if n.VerifyInterval <= 0 {
		n.VerifyInterval = 50 * time.Millisecond
	}
	if n.VerifyInterval < minIntervalFloor {
		n.VerifyInterval = minIntervalFloor
	}

	if n.Timeout <= 0 {
		n.Timeout = 1 * time.Second
	}
	if n.Timeout > maxTimeoutCeil {
		n.Timeout = maxTimeoutCeil
	}
	if n.Timeout < n.VerifyInterval {
		n.Timeout = n.VerifyInterval
	}

	if n.SettleDelay < 0 {
		n.SettleDelay = 0
	}

	return n
}

// New builds a normalized policy for the named action.
func New(name string, opts ...Option) Policy {
	p := Default()
	p.Name = name
	for _, opt := range opts {
		if opt != nil {
			opt(&p)
		}
	}
	return p.Normalize()
}
