package policy

import (
	"testing"
	"time"
)

func TestStaticProvider_Lookup(t *testing.T) {
	prov := &StaticProvider{
		Policies: map[string]Policy{
			"upload.confirm": {MaxAttempts: 5, Timeout: 2 * time.Second},
		},
	}

	pol, ok := prov.PolicyFor("upload.confirm")
	if !ok {
		t.Fatalf("expected registered policy")
	}
	if pol.Name != "upload.confirm" {
		t.Fatalf("Name=%q, want upload.confirm", pol.Name)
	}
	if pol.MaxAttempts != 5 || pol.Timeout != 2*time.Second {
		t.Fatalf("unexpected policy: %+v", pol)
	}
	// Registered entries come back normalized.
	if pol.VerifyInterval != 50*time.Millisecond {
		t.Fatalf("VerifyInterval=%v, want normalized default", pol.VerifyInterval)
	}
}

func TestStaticProvider_Default(t *testing.T) {
	prov := &StaticProvider{
		Default: Policy{MaxAttempts: 2},
	}

	pol, ok := prov.PolicyFor("anything")
	if !ok {
		t.Fatalf("expected suite default to apply")
	}
	if pol.MaxAttempts != 2 || pol.Name != "anything" {
		t.Fatalf("unexpected policy: %+v", pol)
	}
}

func TestStaticProvider_Miss(t *testing.T) {
	prov := &StaticProvider{}
	if _, ok := prov.PolicyFor("missing"); ok {
		t.Fatalf("expected miss for empty provider")
	}

	var nilProv *StaticProvider
	if _, ok := nilProv.PolicyFor("missing"); ok {
		t.Fatalf("expected miss for nil provider")
	}
}
