package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/finchley/verily/policy"
)

func TestWithPolicy_ResolvedByName(t *testing.T) {
	exec, _ := newTestExecutor(
		WithPolicy("upload.confirm", policy.WithMaxAttempts(5), policy.WithSettleDelay(0)),
	)

	actions := 0
	err := exec.Confirm(context.Background(), "upload.confirm",
		func(context.Context) error { actions++; return errors.New("nope") },
		alwaysTrue,
	)
	if err == nil {
		t.Fatalf("expected error")
	}
	if actions != 5 {
		t.Fatalf("actions=%d, want the registered 5 attempts", actions)
	}
}

func TestWithPolicy_CallOptionsOverride(t *testing.T) {
	exec, _ := newTestExecutor(
		WithPolicy("upload.confirm", policy.WithMaxAttempts(5)),
	)

	actions := 0
	err := exec.Confirm(context.Background(), "upload.confirm",
		func(context.Context) error { actions++; return errors.New("nope") },
		alwaysTrue,
		policy.WithMaxAttempts(2),
	)
	if err == nil {
		t.Fatalf("expected error")
	}
	if actions != 2 {
		t.Fatalf("actions=%d, want the per-call override of 2", actions)
	}
}

func TestResolvePolicy_UnregisteredNameUsesDefaults(t *testing.T) {
	exec, _ := newTestExecutor(WithPolicy("other"))

	pol := exec.resolvePolicy("unregistered", nil)
	if pol.Name != "unregistered" {
		t.Fatalf("Name=%q", pol.Name)
	}
	if pol.MaxAttempts != 3 || pol.Timeout != time.Second {
		t.Fatalf("expected defaults, got %+v", pol)
	}
}

func TestWithProvider_SuiteDefault(t *testing.T) {
	exec, _ := newTestExecutor(WithProvider(&policy.StaticProvider{
		Default: policy.Policy{MaxAttempts: 2, SettleDelay: -1},
	}))

	pol := exec.resolvePolicy("anything", nil)
	if pol.MaxAttempts != 2 {
		t.Fatalf("MaxAttempts=%d, want suite default 2", pol.MaxAttempts)
	}
}

func TestNewExecutorFromOptions_FillsDefaults(t *testing.T) {
	exec := NewExecutorFromOptions(ExecutorOptions{})
	if exec.observer == nil || exec.clock == nil || exec.sleep == nil {
		t.Fatalf("expected populated defaults: %+v", exec)
	}
}
