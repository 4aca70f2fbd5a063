// Package verily is the convenience facade: package-level confirm and poll
// helpers over a shared default executor.
package verily

import (
	"context"

	"github.com/finchley/verily/policy"
	"github.com/finchley/verily/poll"
	"github.com/finchley/verily/retry"
)

// Init sets the global default executor.
// It must be called before Confirm/ConfirmValue are used.
func Init(exec *retry.Executor) {
	retry.SetGlobal(exec)
}

// Confirm performs act and polls verify until confirmed, using the default
// executor and the policy resolved for name.
func Confirm(ctx context.Context, name string, act retry.Action, verify retry.Verifier, opts ...policy.Option) error {
	return retry.DefaultExecutor().Confirm(ctx, name, act, verify, opts...)
}

// ConfirmValue performs act and polls verify until confirmed, returning the
// confirmed attempt's value.
func ConfirmValue[T any](ctx context.Context, name string, act retry.ActionValue[T], verify retry.Verifier, opts ...policy.Option) (T, error) {
	return retry.ConfirmValue(ctx, retry.DefaultExecutor(), name, act, verify, opts...)
}

// PollUntil polls probe until it produces a ready value or the deadline
// elapses.
func PollUntil[T any](ctx context.Context, probe poll.Probe[T], opts ...poll.Option) (T, error) {
	return poll.Until(ctx, probe, opts...)
}
