package observe

import (
	"context"

	"github.com/finchley/verily/policy"
)

// BaseObserver implements Observer with no-op methods.
//
// Users can embed BaseObserver to implement only the callbacks they need.
type BaseObserver struct{}

func (BaseObserver) OnStart(context.Context, string, policy.Policy)   {}
func (BaseObserver) OnAttempt(context.Context, string, AttemptRecord) {}
func (BaseObserver) OnSuccess(context.Context, string, Summary)       {}
func (BaseObserver) OnFailure(context.Context, string, Summary)       {}

// MultiObserver fans out events to multiple observers.
type MultiObserver struct {
	Observers []Observer
}

func (m MultiObserver) OnStart(ctx context.Context, name string, pol policy.Policy) {
	for _, o := range m.Observers {
		if o != nil {
			o.OnStart(ctx, name, pol)
		}
	}
}

func (m MultiObserver) OnAttempt(ctx context.Context, name string, rec AttemptRecord) {
	for _, o := range m.Observers {
		if o != nil {
			o.OnAttempt(ctx, name, rec)
		}
	}
}

func (m MultiObserver) OnSuccess(ctx context.Context, name string, sum Summary) {
	for _, o := range m.Observers {
		if o != nil {
			o.OnSuccess(ctx, name, sum)
		}
	}
}

func (m MultiObserver) OnFailure(ctx context.Context, name string, sum Summary) {
	for _, o := range m.Observers {
		if o != nil {
			o.OnFailure(ctx, name, sum)
		}
	}
}
