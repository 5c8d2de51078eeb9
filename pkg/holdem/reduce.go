package holdem

import "github.com/openholdem/handengine/pkg/statemachine"

// Reduce is the engine's total transition function: given a State and an
// Action, it returns the next State. Mismatched (phase, action) pairs are
// idempotent no-ops — the input state is returned unchanged with a nil
// error — except for RuleViolations raised while validating a PlayerMove
// during a betting phase. Reduce never mutates its input: every returned
// State is an independent value (state.go's clone* helpers enforce this
// at the slice level).
func Reduce(state State, action Action) (State, error) {
	switch state.Phase.Tag() {
	case TagInit:
		if _, ok := action.(StartHand); ok {
			return startNewHand(state, state.Dealer), nil
		}
		return state, nil

	case TagDeal:
		if _, ok := action.(DealCards); ok {
			return doDealCards(state)
		}
		return state, nil

	case TagShowdown:
		if _, ok := action.(ProceedToShowdown); ok {
			return doProceedToShowdown(state), nil
		}
		return state, nil

	case TagComplete:
		if _, ok := action.(NextHand); ok {
			return doNextHand(state), nil
		}
		return state, nil

	case TagPreflop, TagFlop, TagTurn, TagRiver:
		if move, ok := action.(PlayerMove); ok {
			return doPlayerMove(state, move)
		}
		return state, nil

	default:
		return state, nil
	}
}

// startNewHand shuffles a fresh deck from the table RNG and resets seats
// for a new hand, landing in DEAL with dealer pinned at the given seat.
// Shared by the INIT->DEAL and COMPLETE->DEAL transitions.
func startNewHand(state State, dealer int) State {
	seats := resetForNewHand(cloneSeats(state.Seats))
	rng := NewRNG(state.RNGState)
	deck := NewShuffledDeck(rng)

	state.Dealer = dealer
	state.Seats = seats
	state.RNGState = rng.State()
	state.Phase = DealPhase{Deck: deck}
	return state
}

// resetForNewHand clears per-hand seat fields. Seats with no chips are
// marked Folded so every later routing/round-closure scan can treat
// "folded" as the single "not in this hand" signal, matching the
// lifecycle rule that eliminated seats are skipped but retained.
func resetForNewHand(seats []Seat) []Seat {
	for i := range seats {
		seats[i].StreetBet = 0
		seats[i].LifetimeContributed = 0
		seats[i].AllIn = false
		seats[i].Hole = nil
		seats[i].Folded = seats[i].Stack <= 0
	}
	return seats
}

func doDealCards(state State) (State, error) {
	dp, ok := state.Phase.(DealPhase)
	if !ok {
		return state, nil
	}
	seats := cloneSeats(state.Seats)
	deck := cloneCards(dp.Deck)

	active := state.seatsWithChips()
	if len(active) < 2 {
		return state, nil
	}
	positions := assignPositions(active, state.Dealer)

	for round := 0; round < 2; round++ {
		for _, seatID := range active {
			var card Card
			card, deck = drawOne(deck)
			if seats[seatID].Hole == nil {
				seats[seatID].Hole = &[2]Card{}
			}
			seats[seatID].Hole[round] = card
		}
	}

	postBlind(&seats[positions.SmallBlind], state.SmallBlind)
	postBlind(&seats[positions.BigBlind], state.BigBlind)

	toAct := firstActiveOrNext(seats, positions.FirstToActPre)

	state.Seats = seats
	state.Phase = BettingPhase{
		Street:         TagPreflop,
		Deck:           deck,
		ToAct:          toAct,
		RoundStart:     toAct,
		LastAggressor:  -1,
		TargetBet:      state.BigBlind,
		LastRaiseSize:  state.BigBlind,
		ActionReopened: true,
		BBSeat:         positions.BigBlind,
		bigBlind:       state.BigBlind,
		FirstToActPost: positions.FirstToActPost,
	}
	return state, nil
}

// drawOne removes and returns the top card of deck (the tail, matching
// deck.go's drawN convention) along with the shortened deck.
func drawOne(deck []Card) (Card, []Card) {
	drawn, rest := drawN(deck, 1)
	return drawn[0], rest
}

func postBlind(seat *Seat, amount int64) {
	pay := amount
	if pay > seat.Stack {
		pay = seat.Stack
	}
	seat.Stack -= pay
	seat.StreetBet += pay
	seat.LifetimeContributed += pay
	if seat.Stack == 0 {
		seat.AllIn = true
	}
}

// firstActiveOrNext returns start if it can act, else the next seat that
// can, scanning clockwise. Used when a blind post leaves the nominal
// first-to-act seat already all-in.
func firstActiveOrNext(seats []Seat, start int) int {
	if !seats[start].Folded && !seats[start].AllIn {
		return start
	}
	next, ok := nextActorSeat(seats, start)
	if ok {
		return next
	}
	return start
}

func doPlayerMove(state State, move PlayerMove) (State, error) {
	bp, ok := state.Phase.(BettingPhase)
	if !ok {
		return state, nil
	}
	seats := cloneSeats(state.Seats)

	if err := applyMove(&bp, seats, move.Seat, move.Move); err != nil {
		return state, err
	}

	if roundCloses(&bp, seats, move.Seat) {
		state.Seats = seats
		return advanceStreet(state, bp), nil
	}

	next, ok := nextActorSeat(seats, move.Seat)
	if !ok {
		state.Seats = seats
		return advanceStreet(state, bp), nil
	}
	bp.ToAct = next
	state.Seats = seats
	state.Phase = bp
	return state, nil
}

// advanceStreet performs the street-advance: settle street
// bets into pots, then either award a fold-win, fast-forward to
// SHOWDOWN, or deal the next street's community cards.
func advanceStreet(state State, bp BettingPhase) State {
	pots := settleStreet(clonePots(bp.Pots), state.Seats)
	seats := state.Seats
	for i := range seats {
		seats[i].StreetBet = 0
	}
	state.Seats = seats

	if countNonFolded(seats) <= 1 {
		winner := -1
		for _, s := range seats {
			if !s.Folded {
				winner = s.SeatID
				break
			}
		}
		amount := totalPotAmount(pots)
		if winner >= 0 {
			seats[winner].Stack += amount
		}
		state.Phase = CompletePhase{
			Board:   bp.Board,
			Pots:    pots,
			Winners: []WinnerShare{{SeatID: winner, Amount: amount}},
		}
		return state
	}

	fastForward := countCanStillAct(seats) <= 1
	if fastForward || bp.Street == TagRiver {
		board := cloneCards(bp.Board)
		deck := cloneCards(bp.Deck)
		for len(board) < 5 {
			n := 1
			if len(board) == 0 {
				n = 3
			}
			var drawn []Card
			drawn, deck = drawN(deck, n)
			board = append(board, drawn...)
		}
		state.Phase = ShowdownPhase{Board: board, Pots: pots}
		return state
	}

	nextTag, n := nextStreet(bp.Street)
	drawn, deck := drawN(cloneCards(bp.Deck), n)
	board := append(cloneCards(bp.Board), drawn...)

	start := firstActiveOrNext(seats, bp.FirstToActPost)
	state.Phase = BettingPhase{
		Street:         nextTag,
		Deck:           deck,
		Board:          board,
		Pots:           pots,
		ToAct:          start,
		RoundStart:     start,
		LastAggressor:  -1,
		TargetBet:      0,
		LastRaiseSize:  state.BigBlind,
		ActionReopened: true,
		BBSeat:         bp.BBSeat,
		bigBlind:       bp.bigBlind,
		FirstToActPost: bp.FirstToActPost,
	}
	return state
}

func nextStreet(street PhaseTag) (PhaseTag, int) {
	switch street {
	case TagPreflop:
		return TagFlop, 3
	case TagFlop:
		return TagTurn, 1
	default:
		return TagRiver, 1
	}
}

func doProceedToShowdown(state State) State {
	sp, ok := state.Phase.(ShowdownPhase)
	if !ok {
		return state
	}
	seats := cloneSeats(state.Seats)
	winners := distributePots(sp.Pots, seats, sp.Board, state.Dealer, state.allSeatIDs())
	for _, w := range winners {
		seats[w.SeatID].Stack += w.Amount
	}
	state.Seats = seats
	state.Phase = CompletePhase{Board: sp.Board, Pots: sp.Pots, Winners: winners}
	return state
}

func doNextHand(state State) State {
	if _, ok := state.Phase.(CompletePhase); !ok {
		return state
	}
	active := state.seatsWithChips()
	if len(active) == 0 {
		return state
	}
	newDealer := rotateDealer(active, state.Dealer, len(state.Seats))
	return startNewHand(state, newDealer)
}

// rotateDealer finds the next seat with chips strictly clockwise of
// oldDealer. It does not require oldDealer itself to still have chips —
// the outgoing dealer may have busted on the hand that just completed.
func rotateDealer(seatsWithChips []int, oldDealer, ringSize int) int {
	for i := 1; i <= ringSize; i++ {
		cand := (oldDealer + i) % ringSize
		for _, s := range seatsWithChips {
			if s == cand {
				return cand
			}
		}
	}
	return oldDealer
}

// AdvanceUntilDecision repeatedly applies each phase's unique
// phase-only auto-action (StartHand in INIT, DealCards in DEAL,
// ProceedToShowdown in SHOWDOWN) until the state reaches a betting
// decision or COMPLETE. Internally it drives a local mutable copy
// through the same StateFn[T]-returns-next-StateFn[T] control flow as
// pkg/statemachine, while the public contract stays pure: the State
// returned is independent of the one passed in.
func AdvanceUntilDecision(state State) State {
	local := state
	sm := statemachine.NewStateMachine(&local, autoAdvanceStep)
	for sm.GetCurrentState() != nil {
		sm.Dispatch(nil)
	}
	return local
}

func autoAdvanceStep(s *State, callback func(string, statemachine.StateEvent)) statemachine.StateFn[State] {
	var action Action
	switch s.Phase.Tag() {
	case TagInit:
		action = StartHand{}
	case TagDeal:
		action = DealCards{}
	case TagShowdown:
		action = ProceedToShowdown{}
	case TagPreflop, TagFlop, TagTurn, TagRiver:
		if IsBettingDecision(*s) {
			return nil
		}
		// No seat can act (every live seat went all-in posting blinds):
		// close the round so the next step runs out the board.
		s.Seats = cloneSeats(s.Seats)
		*s = advanceStreet(*s, s.Phase.(BettingPhase))
		return autoAdvanceStep
	default:
		return nil
	}
	next, _ := Reduce(*s, action)
	*s = next
	return autoAdvanceStep
}

// IsBettingDecision reports whether state is in a betting phase with at
// least one legal action available to the seat currently ToAct.
func IsBettingDecision(state State) bool {
	bp, ok := state.Phase.(BettingPhase)
	if !ok {
		return false
	}
	la := legalActions(&bp, state.Seats, bp.ToAct)
	return la.CanFold || la.CanCheck || la.CanCall || la.Raise != nil
}
