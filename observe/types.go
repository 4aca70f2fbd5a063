package observe

import (
	"context"
	"time"

	"github.com/finchley/verily/policy"
)

// Outcome tags how a single attempt ended.
type Outcome string

const (
	// OutcomeConfirmed means the action ran and verification returned true
	// within the attempt budget.
	OutcomeConfirmed Outcome = "confirmed"

	// OutcomeNotConfirmed means the action ran but verification never
	// returned true before the attempt timeout.
	OutcomeNotConfirmed Outcome = "not_confirmed"

	// OutcomeActionFailed means the action invocation itself returned an
	// error; verification was not polled for this attempt.
	OutcomeActionFailed Outcome = "action_failed"
)

// AttemptRecord describes a single action-then-verify cycle.
type AttemptRecord struct {
	// Attempt counts from 1.
	Attempt   int
	StartTime time.Time
	EndTime   time.Time

	Outcome Outcome

	// VerifyPolls is the number of verification polls made during this
	// attempt. Zero when the action failed.
	VerifyPolls int

	// Err holds the action error for OutcomeActionFailed, or the last error a
	// verifier returned during an unconfirmed attempt (informational only;
	// verifier errors are never surfaced as the terminal failure).
	Err error
}

// Summary is the structured record of one Confirm call and all of its
// attempts.
type Summary struct {
	Name   string
	Policy policy.Policy
	Start  time.Time
	End    time.Time

	Attempts []AttemptRecord
	FinalErr error
}

// Observer receives lifecycle callbacks for a single Confirm call.
type Observer interface {
	OnStart(ctx context.Context, name string, pol policy.Policy)
	OnAttempt(ctx context.Context, name string, rec AttemptRecord)
	OnSuccess(ctx context.Context, name string, sum Summary)
	OnFailure(ctx context.Context, name string, sum Summary)
}
