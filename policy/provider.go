package policy

// Provider supplies a base policy for a named action.
//
// A test suite typically registers its known-flaky controls once and lets
// every Confirm call site resolve timing from the same table.
type Provider interface {
	// PolicyFor returns the base policy for name and whether one is
	// registered. The executor falls back to Default when ok is false.
	PolicyFor(name string) (Policy, bool)
}

// StaticProvider is an in-process Provider backed by a map and an optional
// suite-wide default.
type StaticProvider struct {
	Policies map[string]Policy
	Default  Policy
}

func (p *StaticProvider) PolicyFor(name string) (Policy, bool) {
	if p == nil {
		return Policy{}, false
	}
	if pol, ok := p.Policies[name]; ok {
		pol.Name = name
		return pol.Normalize(), true
	}
	if p.Default != (Policy{}) {
		pol := p.Default
		pol.Name = name
		return pol.Normalize(), true
	}
	return Policy{}, false
}
