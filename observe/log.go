package observe

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/finchley/verily/policy"
)

// LogObserver emits one structured event per attempt and per terminal
// outcome. Attempt traces are debug-level; terminal failures are warnings so
// they show up in default test output.
type LogObserver struct {
	Logger zerolog.Logger
}

func (l LogObserver) OnStart(ctx context.Context, name string, pol policy.Policy) {
	l.Logger.Debug().
		Str("action", name).
		Int("max_attempts", pol.MaxAttempts).
		Dur("timeout", pol.Timeout).
		Msg("confirm started")
}

func (l LogObserver) OnAttempt(ctx context.Context, name string, rec AttemptRecord) {
	evt := l.Logger.Debug().
		Str("action", name).
		Int("attempt", rec.Attempt).
		Str("outcome", string(rec.Outcome)).
		Int("verify_polls", rec.VerifyPolls).
		Dur("elapsed", rec.EndTime.Sub(rec.StartTime))
	if rec.Err != nil {
		evt = evt.Err(rec.Err)
	}
	evt.Msg("attempt finished")
}

func (l LogObserver) OnSuccess(ctx context.Context, name string, sum Summary) {
	l.Logger.Debug().
		Str("action", name).
		Int("attempts", len(sum.Attempts)).
		Dur("elapsed", sum.End.Sub(sum.Start)).
		Msg("confirmed")
}

func (l LogObserver) OnFailure(ctx context.Context, name string, sum Summary) {
	l.Logger.Warn().
		Str("action", name).
		Int("attempts", len(sum.Attempts)).
		Dur("elapsed", sum.End.Sub(sum.Start)).
		Err(sum.FinalErr).
		Msg("confirm failed")
}
