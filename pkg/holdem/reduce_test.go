package holdem

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func seed(s uint32) *uint32 { return &s }

func newTestState(t *testing.T, seats int, stack, bb int64, sd uint32) State {
	t.Helper()
	st, err := CreateTable(Config{Seats: seats, StartingStack: stack, BigBlind: bb, Seed: seed(sd)})
	require.NoError(t, err)
	return *st
}

func applyOrFail(t *testing.T, state State, action Action) State {
	t.Helper()
	next, err := Reduce(state, action)
	require.NoError(t, err)
	return next
}

// Heads-up raise and call closes the preflop betting round.
func TestScenarioHeadsUpRaiseAndCallClosesPreflop(t *testing.T) {
	st := newTestState(t, 2, 1000, 100, 1)
	st = AdvanceUntilDecision(st)
	require.Equal(t, TagPreflop, st.Phase.Tag())

	bp := st.Phase.(BettingPhase)
	btn := bp.ToAct
	st = applyOrFail(t, st, PlayerMove{Seat: btn, Move: Move{Kind: RaiseTo, Amount: 200}})

	bp = st.Phase.(BettingPhase)
	require.Equal(t, TagPreflop, st.Phase.Tag())
	bb := bp.ToAct
	st = applyOrFail(t, st, PlayerMove{Seat: bb, Move: Move{Kind: Call}})

	require.Equal(t, TagFlop, st.Phase.Tag())
	flop := st.Phase.(BettingPhase)
	require.Len(t, flop.Board, 3)
	require.Len(t, flop.Pots, 1)
	require.Equal(t, int64(400), flop.Pots[0].Amount)
	for _, s := range st.Seats {
		require.Zero(t, s.StreetBet)
	}
}

// Three-way limp-limp-check closes the preflop betting round.
func TestScenarioThreeWayLimpLimpCheckClosesPreflop(t *testing.T) {
	st := newTestState(t, 3, 1000, 100, 2)
	st = AdvanceUntilDecision(st)
	require.Equal(t, TagPreflop, st.Phase.Tag())

	for i := 0; i < 3; i++ {
		bp := st.Phase.(BettingPhase)
		toCallAmt := legalActions(&bp, st.Seats, bp.ToAct).ToCall
		move := Move{Kind: Check}
		if toCallAmt > 0 {
			move = Move{Kind: Call}
		}
		st = applyOrFail(t, st, PlayerMove{Seat: bp.ToAct, Move: move})
	}

	require.Equal(t, TagFlop, st.Phase.Tag())
	flop := st.Phase.(BettingPhase)
	require.Equal(t, int64(300), flop.Pots[0].Amount)
}

// Heads-up shove and call fast-forwards straight to COMPLETE.
func TestScenarioHeadsUpShoveFastForwards(t *testing.T) {
	st := newTestState(t, 2, 200, 100, 3)
	st = AdvanceUntilDecision(st)
	require.Equal(t, TagPreflop, st.Phase.Tag())

	bp := st.Phase.(BettingPhase)
	btn := bp.ToAct
	st = applyOrFail(t, st, PlayerMove{Seat: btn, Move: Move{Kind: RaiseTo, Amount: 200}})

	bp = st.Phase.(BettingPhase)
	bb := bp.ToAct
	st = applyOrFail(t, st, PlayerMove{Seat: bb, Move: Move{Kind: Call}})
	st = AdvanceUntilDecision(st)

	require.Equal(t, TagComplete, st.Phase.Tag())
	cp := st.Phase.(CompletePhase)
	require.NotEmpty(t, cp.Winners)
	var total int64
	for _, w := range cp.Winners {
		total += w.Amount
	}
	require.Equal(t, int64(400), total)
}

// A short all-in stack produces a main pot and a side pot.
func TestScenarioSidePotShortStack(t *testing.T) {
	st := newTestState(t, 3, 100, 20, 4)
	st.Seats[1].Stack = 300
	st.Seats[2].Stack = 300
	st = AdvanceUntilDecision(st)
	require.Equal(t, TagPreflop, st.Phase.Tag())

	for {
		bp, ok := st.Phase.(BettingPhase)
		if !ok {
			break
		}
		seat := bp.ToAct
		stack := st.Seats[seat].Stack
		target := bp.TargetBet
		var move Move
		switch {
		case stack+st.Seats[seat].StreetBet <= target || stack == 0:
			move = Move{Kind: Call}
		default:
			la := legalActions(&bp, st.Seats, seat)
			if la.Raise != nil && target < 300 {
				move = Move{Kind: RaiseTo, Amount: st.Seats[seat].StreetBet + stack}
			} else if la.CanCall {
				move = Move{Kind: Call}
			} else {
				move = Move{Kind: Check}
			}
		}
		st = applyOrFail(t, st, PlayerMove{Seat: seat, Move: move})
	}

	require.Equal(t, TagShowdown, st.Phase.Tag())
	sp := st.Phase.(ShowdownPhase)
	require.Len(t, sp.Pots, 2)
	require.Equal(t, int64(300), sp.Pots[0].Amount)
	require.ElementsMatch(t, []int{0, 1, 2}, sp.Pots[0].Eligible)
	require.Equal(t, int64(400), sp.Pots[1].Amount)
	require.ElementsMatch(t, []int{1, 2}, sp.Pots[1].Eligible)
}

// Identical seed + actions yield identical decks, boards, and winners.
func TestScenarioDeterministicRNG(t *testing.T) {
	run := func() State {
		st := newTestState(t, 2, 1000, 100, 123)
		st = AdvanceUntilDecision(st)
		bp := st.Phase.(BettingPhase)
		st = applyOrFail(t, st, PlayerMove{Seat: bp.ToAct, Move: Move{Kind: RaiseTo, Amount: 200}})
		bp = st.Phase.(BettingPhase)
		st = applyOrFail(t, st, PlayerMove{Seat: bp.ToAct, Move: Move{Kind: Call}})
		return st
	}

	a := run()
	b := run()
	require.Equal(t, a.Seats, b.Seats)
	require.Equal(t, Board(a), Board(b))
}

func TestChipConservationAcrossAHand(t *testing.T) {
	st := newTestState(t, 3, 500, 50, 7)
	initial := int64(0)
	for _, s := range st.Seats {
		initial += s.Stack
	}

	st = AdvanceUntilDecision(st)
	for i := 0; i < 3; i++ {
		bp := st.Phase.(BettingPhase)
		la := legalActions(&bp, st.Seats, bp.ToAct)
		move := Move{Kind: Check}
		if la.ToCall > 0 {
			move = Move{Kind: Call}
		}
		st = applyOrFail(t, st, PlayerMove{Seat: bp.ToAct, Move: move})
	}
	st = AdvanceUntilDecision(st)

	total := int64(0)
	for _, s := range st.Seats {
		total += s.Stack
	}
	total += PotTotal(st)
	require.Equal(t, initial, total)
}

func TestRaiseBelowMinimumRejectedUnlessAllIn(t *testing.T) {
	st := newTestState(t, 2, 1000, 100, 5)
	st = AdvanceUntilDecision(st)
	bp := st.Phase.(BettingPhase)

	_, err := Reduce(st, PlayerMove{Seat: bp.ToAct, Move: Move{Kind: RaiseTo, Amount: 150}})
	require.Error(t, err)
	var rv *RuleViolation
	require.ErrorAs(t, err, &rv)
}

func TestOutOfTurnMoveRejected(t *testing.T) {
	st := newTestState(t, 2, 1000, 100, 6)
	st = AdvanceUntilDecision(st)
	bp := st.Phase.(BettingPhase)
	wrongSeat := (bp.ToAct + 1) % 2

	_, err := Reduce(st, PlayerMove{Seat: wrongSeat, Move: Move{Kind: Check}})
	require.Error(t, err)
}

func TestNextHandRotatesButtonAndSkipsEliminated(t *testing.T) {
	st := newTestState(t, 3, 1000, 100, 8)
	st.Seats[1].Stack = 0
	st = applyOrFail(t, st, NextHand{}) // no-op: not COMPLETE yet
	require.Equal(t, TagInit, st.Phase.Tag())

	st = AdvanceUntilDecision(st)
	// Fold everyone to the button to reach COMPLETE quickly regardless of seat order.
	for {
		bp, ok := st.Phase.(BettingPhase)
		if !ok {
			break
		}
		la := legalActions(&bp, st.Seats, bp.ToAct)
		move := Move{Kind: Fold}
		if !la.CanFold {
			move = Move{Kind: Check}
		}
		st = applyOrFail(t, st, PlayerMove{Seat: bp.ToAct, Move: move})
	}
	st = AdvanceUntilDecision(st)
	require.Equal(t, TagComplete, st.Phase.Tag())

	st = applyOrFail(t, st, NextHand{})
	require.Equal(t, TagDeal, st.Phase.Tag())
	require.NotEqual(t, 1, st.Dealer, "seat 1 was eliminated and must never become dealer")
}
