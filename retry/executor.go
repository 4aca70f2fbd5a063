package retry

import (
	"context"
	"time"

	"github.com/finchley/verily/observe"
	"github.com/finchley/verily/policy"
)

// Action performs a UI operation once. It is re-invoked on every attempt and
// must not be relied upon to be idempotent; the executor never calls it more
// than once per attempt.
type Action func(ctx context.Context) error

// ActionValue is an Action that produces a result value.
type ActionValue[T any] func(ctx context.Context) (T, error)

// Verifier observes whether the action's effect has become visible. It is
// polled at high frequency and must be free of side effects. A returned
// error counts as "not yet confirmed" and is recorded on the attempt; it is
// never surfaced as the terminal failure.
type Verifier func(ctx context.Context) (bool, error)

// Executor runs the action/verify/retry loop. The zero value is not usable;
// construct one with NewExecutor or use the package default.
//
// An Executor holds no per-call state: Confirm calls are independent and may
// run concurrently from multiple goroutines.
type Executor struct {
	provider policy.Provider
	observer observe.Observer
	clock    func() time.Time
	sleep    func(context.Context, time.Duration) error
}

// ExecutorOptions configures an Executor.
type ExecutorOptions struct {
	Provider policy.Provider
	Observer observe.Observer
	Clock    func() time.Time
}

type executorConfig struct {
	opts           ExecutorOptions
	staticPolicies map[string]policy.Policy
}

// ExecutorOption configures an Executor.
type ExecutorOption func(*executorConfig)

// WithProvider sets the policy provider consulted for per-action base
// policies.
func WithProvider(p policy.Provider) ExecutorOption {
	return func(c *executorConfig) {
		c.opts.Provider = p
	}
}

// WithObserver sets the observer.
func WithObserver(o observe.Observer) ExecutorOption {
	return func(c *executorConfig) {
		c.opts.Observer = o
	}
}

// WithClock sets the clock function.
func WithClock(f func() time.Time) ExecutorOption {
	return func(c *executorConfig) {
		c.opts.Clock = f
	}
}

// WithPolicy registers a static base policy for a named action
// (e.g. "checkbox.confirm").
func WithPolicy(name string, opts ...policy.Option) ExecutorOption {
	return func(c *executorConfig) {
		if c.staticPolicies == nil {
			c.staticPolicies = make(map[string]policy.Policy)
		}
		c.staticPolicies[name] = policy.New(name, opts...)
	}
}

// NewExecutor creates an Executor with default options.
func NewExecutor(opts ...ExecutorOption) *Executor {
	cfg := &executorConfig{}

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.opts.Provider == nil && len(cfg.staticPolicies) > 0 {
		cfg.opts.Provider = &policy.StaticProvider{
			Policies: cfg.staticPolicies,
		}
	}

	return NewExecutorFromOptions(cfg.opts)
}

// NewExecutorFromOptions creates an Executor from a config struct.
func NewExecutorFromOptions(opts ExecutorOptions) *Executor {
	e := &Executor{
		provider: opts.Provider,
		observer: opts.Observer,
		clock:    opts.Clock,
	}

	if e.observer == nil {
		e.observer = &observe.NoopObserver{}
	}
	if e.clock == nil {
		e.clock = time.Now
	}
	if e.sleep == nil {
		e.sleep = sleepWithContext
	}

	return e
}

func (e *Executor) resolvePolicy(name string, opts []policy.Option) policy.Policy {
	var pol policy.Policy
	ok := false
	if e.provider != nil {
		pol, ok = e.provider.PolicyFor(name)
	}
	if !ok {
		pol = policy.Default()
		pol.Name = name
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&pol)
		}
	}
	return pol.Normalize()
}

// Confirm invokes act, then polls verify until it reports true or the
// attempt budget elapses, retrying per the resolved policy for name.
//
// An action error on the final attempt is returned verbatim; earlier action
// errors are swallowed and retried. If verification never confirms across
// all attempts, Confirm returns an ExhaustedError.
func (e *Executor) Confirm(ctx context.Context, name string, act Action, verify Verifier, opts ...policy.Option) error {
	_, err := ConfirmValue(ctx, e, name, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, act(ctx)
	}, verify, opts...)
	return err
}

// ConfirmValue is Confirm for actions that produce a result value. The value
// of the confirmed attempt is returned; on failure the zero value is
// returned alongside the terminal error.
func ConfirmValue[T any](ctx context.Context, exec *Executor, name string, act ActionValue[T], verify Verifier, opts ...policy.Option) (T, error) {
	var zero T

	if ctx == nil {
		ctx = context.Background()
	}
	if exec == nil {
		exec = DefaultExecutor()
	}

	pol := exec.resolvePolicy(name, opts)

	sum := observe.Summary{
		Name:     pol.Name,
		Policy:   pol,
		Start:    exec.clock(),
		Attempts: make([]observe.AttemptRecord, 0, pol.MaxAttempts),
	}
	exec.observer.OnStart(ctx, pol.Name, pol)

	fail := func(err error) (T, error) {
		sum.End = exec.clock()
		sum.FinalErr = err
		exec.observer.OnFailure(ctx, pol.Name, sum)
		return zero, err
	}

	for attempt := 1; attempt <= pol.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return fail(err)
		}

		attemptCtx := observe.WithAttemptInfo(ctx, observe.AttemptInfo{
			Attempt:     attempt,
			MaxAttempts: pol.MaxAttempts,
			Name:        pol.Name,
		})
		rec := observe.AttemptRecord{Attempt: attempt, StartTime: exec.clock()}

		val, actErr := act(attemptCtx)
		if actErr != nil {
			rec.Outcome = observe.OutcomeActionFailed
			rec.Err = actErr
			rec.EndTime = exec.clock()
			sum.Attempts = append(sum.Attempts, rec)
			exec.observer.OnAttempt(attemptCtx, pol.Name, rec)

			if attempt == pol.MaxAttempts {
				// Surfaced verbatim: the caller sees the action's own error,
				// not a wrapper.
				return fail(actErr)
			}
			if err := exec.sleep(ctx, pol.ActionInterval); err != nil {
				return fail(err)
			}
			continue
		}

		res, err := exec.awaitConfirm(attemptCtx, verify, pol)
		rec.VerifyPolls = res.polls
		rec.EndTime = exec.clock()
		if err != nil {
			rec.Outcome = observe.OutcomeNotConfirmed
			rec.Err = err
			sum.Attempts = append(sum.Attempts, rec)
			exec.observer.OnAttempt(attemptCtx, pol.Name, rec)
			return fail(err)
		}

		if res.confirmed {
			rec.Outcome = observe.OutcomeConfirmed
			sum.Attempts = append(sum.Attempts, rec)
			exec.observer.OnAttempt(attemptCtx, pol.Name, rec)
			sum.End = exec.clock()
			exec.observer.OnSuccess(ctx, pol.Name, sum)
			return val, nil
		}

		rec.Outcome = observe.OutcomeNotConfirmed
		rec.Err = res.lastErr
		sum.Attempts = append(sum.Attempts, rec)
		exec.observer.OnAttempt(attemptCtx, pol.Name, rec)

		if attempt < pol.MaxAttempts {
			if err := exec.sleep(ctx, pol.ActionInterval); err != nil {
				return fail(err)
			}
		}
	}

	return fail(&ExhaustedError{Name: pol.Name, Attempts: pol.MaxAttempts})
}

type confirmResult struct {
	confirmed bool
	polls     int
	lastErr   error
}

// awaitConfirm waits out the settle delay, then polls verify every
// VerifyInterval until it confirms or the Timeout budget elapses.
//
// The deadline check lives inside the polling loop rather than in a racing
// timer, so nothing is left pending once either side settles. The predicate
// result is consulted before the clock: a poll that lands exactly on the
// deadline still counts as confirmed.
func (e *Executor) awaitConfirm(ctx context.Context, verify Verifier, pol policy.Policy) (confirmResult, error) {
	var res confirmResult

	if pol.SettleDelay > 0 {
		if err := e.sleep(ctx, pol.SettleDelay); err != nil {
			return res, err
		}
	}

	deadline := e.clock().Add(pol.Timeout)
	for {
		ok, err := verify(ctx)
		res.polls++
		if err != nil {
			res.lastErr = err
		} else if ok {
			res.confirmed = true
			return res, nil
		}

		if !e.clock().Before(deadline) {
			return res, nil
		}
		if err := e.sleep(ctx, pol.VerifyInterval); err != nil {
			return res, err
		}
	}
}

func sleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)

	defer func() {
		if !timer.Stop() {
			select {
			case <-timer.C: // drain any pending tick so the channel doesn't retain value
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
