package policy

import "time"

// Option mutates a Policy under construction.
type Option func(*Policy)

// WithMaxAttempts sets the number of action invocations before giving up.
func WithMaxAttempts(n int) Option {
	return func(p *Policy) {
		p.MaxAttempts = n
	}
}

// WithActionInterval sets the pause between attempts.
func WithActionInterval(d time.Duration) Option {
	return func(p *Policy) {
		p.ActionInterval = d
	}
}

// WithVerifyInterval sets the verification polling period.
func WithVerifyInterval(d time.Duration) Option {
	return func(p *Policy) {
		p.VerifyInterval = d
	}
}

// WithTimeout sets the per-attempt verification budget.
func WithTimeout(d time.Duration) Option {
	return func(p *Policy) {
		p.Timeout = d
	}
}

// WithSettleDelay sets the pause between the action and the first
// verification poll.
func WithSettleDelay(d time.Duration) Option {
	return func(p *Policy) {
		p.SettleDelay = d
	}
}
