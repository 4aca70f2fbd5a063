package observe

import (
	"context"

	"github.com/finchley/verily/policy"
)

// NoopObserver implements Observer with no-op methods.
type NoopObserver struct{}

func (NoopObserver) OnStart(context.Context, string, policy.Policy) {}
func (NoopObserver) OnAttempt(context.Context, string, AttemptRecord) {
}
func (NoopObserver) OnSuccess(context.Context, string, Summary) {}
func (NoopObserver) OnFailure(context.Context, string, Summary) {}
