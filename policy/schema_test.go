package policy

import (
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	p := Default()
	if p.Name != "action" {
		t.Fatalf("Name=%q, want %q", p.Name, "action")
	}
	if p.MaxAttempts != 3 {
		t.Fatalf("MaxAttempts=%d, want 3", p.MaxAttempts)
	}
	if p.ActionInterval != 100*time.Millisecond {
		t.Fatalf("ActionInterval=%v, want 100ms", p.ActionInterval)
	}
	if p.VerifyInterval != 50*time.Millisecond {
		t.Fatalf("VerifyInterval=%v, want 50ms", p.VerifyInterval)
	}
	if p.Timeout != 1*time.Second {
		t.Fatalf("Timeout=%v, want 1s", p.Timeout)
	}
	if p.SettleDelay != 50*time.Millisecond {
		t.Fatalf("SettleDelay=%v, want 50ms", p.SettleDelay)
	}
}

func TestNormalize_ZeroValue(t *testing.T) {
	p := Policy{}.Normalize()

	// A zero settle delay is a legal explicit choice, so Normalize keeps it;
	// everything else fills from the defaults.
	want := Default()
	want.SettleDelay = 0
	if p != want {
		t.Fatalf("zero policy normalized to %+v, want %+v", p, want)
	}
}

func TestNormalize_Clamps(t *testing.T) {
	cases := []struct {
		name string
		in   Policy
		want func(Policy) bool
	}{
		{
			name: "negative_attempts",
			in:   Policy{MaxAttempts: -5},
			want: func(p Policy) bool { return p.MaxAttempts == 1 },
		},
		{
			name: "excessive_attempts",
			in:   Policy{MaxAttempts: 100},
			want: func(p Policy) bool { return p.MaxAttempts == maxAttemptsCeiling },
		},
		{
			name: "sub_millisecond_intervals",
			in:   Policy{ActionInterval: time.Microsecond, VerifyInterval: time.Nanosecond},
			want: func(p Policy) bool {
				return p.ActionInterval == minIntervalFloor && p.VerifyInterval == minIntervalFloor
			},
		},
		{
			name: "timeout_below_verify_interval",
			in:   Policy{VerifyInterval: 2 * time.Second, Timeout: 100 * time.Millisecond},
			want: func(p Policy) bool { return p.Timeout == 2*time.Second },
		},
		{
			name: "timeout_above_ceiling",
			in:   Policy{Timeout: time.Hour},
			want: func(p Policy) bool { return p.Timeout == maxTimeoutCeil },
		},
		{
			name: "negative_settle",
			in:   Policy{SettleDelay: -time.Second},
			want: func(p Policy) bool { return p.SettleDelay == 0 },
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.Normalize()
			if !tc.want(got) {
				t.Fatalf("normalized=%+v", got)
			}
		})
	}
}

func TestNew_AppliesOptions(t *testing.T) {
	p := New("checkbox.confirm",
		WithMaxAttempts(5),
		WithActionInterval(10*time.Millisecond),
		WithVerifyInterval(5*time.Millisecond),
		WithTimeout(20*time.Millisecond),
		WithSettleDelay(0),
	)
	if p.Name != "checkbox.confirm" {
		t.Fatalf("Name=%q", p.Name)
	}
	if p.MaxAttempts != 5 || p.ActionInterval != 10*time.Millisecond ||
		p.VerifyInterval != 5*time.Millisecond || p.Timeout != 20*time.Millisecond {
		t.Fatalf("unexpected policy: %+v", p)
	}
	if p.SettleDelay != 0 {
		t.Fatalf("SettleDelay=%v, want 0", p.SettleDelay)
	}
}

func TestNew_NilOption(t *testing.T) {
	p := New("x", nil, WithMaxAttempts(2))
	if p.MaxAttempts != 2 {
		t.Fatalf("MaxAttempts=%d, want 2", p.MaxAttempts)
	}
}
