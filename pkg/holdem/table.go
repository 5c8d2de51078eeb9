package holdem

import "github.com/decred/slog"

// Table is a thin, stateful convenience wrapper around the pure Reduce
// function: it holds the current State and logs phase transitions and
// rule violations around calls into the reducer. Reduce itself stays
// side-effect free; Table exists so a caller doesn't have to thread
// logging through every call site by hand.
//
// Table carries no mutex: the core provides no built-in synchronization,
// so a caller sharing a Table across goroutines must supply its own.
type Table struct {
	state State
	log   slog.Logger
}

// NewTable validates cfg, creates a fresh INIT-phase State, and wraps it
// in a Table. A nil log disables logging.
func NewTable(cfg Config, log slog.Logger) (*Table, error) {
	st, err := CreateTable(cfg)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.Disabled
	}
	return &Table{state: *st, log: log}, nil
}

// State returns the table's current State value. Safe to hold onto: it
// is never mutated after being returned.
func (t *Table) State() State {
	return t.state
}

// Apply runs action through Reduce, logging the phase transition (or the
// rule violation) and, on success, adopting the returned State.
func (t *Table) Apply(action Action) error {
	before := t.state.Phase.Tag()
	next, err := Reduce(t.state, action)
	if err != nil {
		t.log.Warnf("holdem: rejected %T from seat: %v", action, err)
		return err
	}
	t.state = next
	after := t.state.Phase.Tag()
	if after != before {
		t.log.Debugf("holdem: phase %s -> %s", before, after)
	}
	if cp, ok := t.state.Phase.(CompletePhase); ok && after != before {
		t.log.Infof("holdem: %s", WinnersSummary(t.state, cp.Board))
	}
	return nil
}

// AdvanceUntilDecision runs the table's deterministic auto-advance
// helper and adopts the result.
func (t *Table) AdvanceUntilDecision() {
	before := t.state.Phase.Tag()
	t.state = AdvanceUntilDecision(t.state)
	if after := t.state.Phase.Tag(); after != before {
		t.log.Debugf("holdem: auto-advanced %s -> %s", before, after)
	}
}

// IsBettingDecision reports whether the table is awaiting a player move.
func (t *Table) IsBettingDecision() bool {
	return IsBettingDecision(t.state)
}
