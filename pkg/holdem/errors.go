package holdem

import "fmt"

// RuleViolation reports that an attempted action was not in the legal
// action set for the current state. The reducer leaves the state
// unchanged when this is returned.
type RuleViolation struct {
	Reason string
}

func (e *RuleViolation) Error() string {
	return fmt.Sprintf("holdem: rule violation: %s", e.Reason)
}

func ruleViolation(format string, args ...interface{}) error {
	return &RuleViolation{Reason: fmt.Sprintf(format, args...)}
}

// InvalidConfig reports a malformed Config passed to CreateTable: seat
// count out of range, non-positive blinds, or a non-positive starting
// stack.
type InvalidConfig struct {
	Reason string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("holdem: invalid config: %s", e.Reason)
}

func invalidConfig(format string, args ...interface{}) error {
	return &InvalidConfig{Reason: fmt.Sprintf(format, args...)}
}

// InvalidCard is also used by ParseCard; declared in card.go.

// PhaseMismatch is never returned as an error: an action irrelevant to
// the current phase (e.g. DealCards while in PREFLOP) is a documented
// soft no-op, not a failure. The type exists so callers that want to log
// or distinguish the case can do so via errors.As, even though Reduce
// itself never constructs one as an error value — it simply returns the
// input state unchanged with a nil error.
type PhaseMismatch struct {
	Phase  string
	Action string
}

func (e *PhaseMismatch) Error() string {
	return fmt.Sprintf("holdem: action %s is not meaningful in phase %s", e.Action, e.Phase)
}
