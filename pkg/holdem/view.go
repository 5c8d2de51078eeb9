package holdem

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// ActionOptions is the external action-options view for one seat's
// decision point,
// derived fresh from state on every call. Consumers must not mutate
// State through it or any other selector in this file.
type ActionOptions struct {
	Seat     int
	CanFold  bool
	CanCheck bool
	CanCall  bool
	ToCall   int64
	Raise    *RaiseRange
}

// CurrentActionOptions returns the legal-action view for the seat
// currently ToAct, or the zero value if state is not awaiting a betting
// decision.
func CurrentActionOptions(state State) ActionOptions {
	bp, ok := state.Phase.(BettingPhase)
	if !ok {
		return ActionOptions{}
	}
	la := legalActions(&bp, state.Seats, bp.ToAct)
	return ActionOptions{
		Seat:     la.Seat,
		CanFold:  la.CanFold,
		CanCheck: la.CanCheck,
		CanCall:  la.CanCall,
		ToCall:   la.ToCall,
		Raise:    la.Raise,
	}
}

// Board returns the community cards visible in the current phase, or
// nil before any are dealt.
func Board(state State) []Card {
	switch p := state.Phase.(type) {
	case BettingPhase:
		return p.Board
	case ShowdownPhase:
		return p.Board
	case CompletePhase:
		return p.Board
	default:
		return nil
	}
}

// Pots returns the current pot layers, or nil before any street has
// settled.
func Pots(state State) []Pot {
	switch p := state.Phase.(type) {
	case BettingPhase:
		return p.Pots
	case ShowdownPhase:
		return p.Pots
	case CompletePhase:
		return p.Pots
	default:
		return nil
	}
}

// PotTotal sums every pot layer currently on the table.
func PotTotal(state State) int64 {
	return totalPotAmount(Pots(state))
}

// ActingSeat returns the seat currently on the clock and whether state is
// in a betting phase at all.
func ActingSeat(state State) (seat int, ok bool) {
	bp, ok := state.Phase.(BettingPhase)
	if !ok {
		return 0, false
	}
	return bp.ToAct, true
}

// PositionTag is a human-readable position label for C8 presentation.
type PositionTag string

const (
	TagButton      PositionTag = "BTN"
	TagSmallBlind  PositionTag = "SB"
	TagBigBlind    PositionTag = "BB"
	TagOther       PositionTag = ""
)

// Positions returns a seat -> PositionTag map for the hand currently in
// progress, derived from the same assignPositions logic the dealer used,
// based on the seats that had chips at deal time. Returns nil outside a
// dealt hand (INIT, or DEAL before hole cards are dealt).
func Positions(state State) map[int]PositionTag {
	var dealer int
	var active []int
	switch state.Phase.(type) {
	case BettingPhase, ShowdownPhase, CompletePhase:
		dealer = state.Dealer
		for _, s := range state.Seats {
			if s.Hole != nil {
				active = append(active, s.SeatID)
			}
		}
	default:
		return nil
	}
	if len(active) == 0 {
		return nil
	}
	pos := assignPositions(active, dealer)
	out := map[int]PositionTag{pos.Button: TagButton}
	if pos.SmallBlind != pos.Button {
		out[pos.SmallBlind] = TagSmallBlind
	} else {
		out[pos.SmallBlind] = TagButton + "/" + TagSmallBlind
	}
	out[pos.BigBlind] = TagBigBlind
	return out
}

// SerializedRNG returns the table RNG's current 32-bit state, suitable
// for persisting alongside a replay log.
func SerializedRNG(state State) uint32 {
	return state.RNGState
}

// WinnersSummary renders a one-line human-readable description of a
// COMPLETE state's payouts, e.g. "seat 1 wins 400 chips, with a flush".
// Returns "" outside COMPLETE.
func WinnersSummary(state State, board []Card) string {
	cp, ok := state.Phase.(CompletePhase)
	if !ok {
		return ""
	}
	if len(cp.Winners) == 0 {
		return "no winners"
	}
	if len(cp.Winners) == 1 {
		w := cp.Winners[0]
		desc := handDescription(state, w.SeatID, cp.Board)
		return fmt.Sprintf("seat %d wins %s chips%s", w.SeatID, humanize.Comma(w.Amount), desc)
	}
	parts := ""
	for i, w := range cp.Winners {
		if i > 0 {
			parts += ", "
		}
		parts += fmt.Sprintf("seat %d (%s)", w.SeatID, humanize.Comma(w.Amount))
	}
	return fmt.Sprintf("split pot: %s", parts)
}

// handDescription returns ", with a <category>" for a seat whose hole
// cards are known, or "" when they are not or when hole cards plus board
// make fewer than five cards (e.g. a preflop fold-win).
func handDescription(state State, seatID int, board []Card) string {
	idx := state.seatIndex(seatID)
	if idx < 0 || state.Seats[idx].Hole == nil {
		return ""
	}
	hole := state.Seats[idx].Hole
	cards := append([]Card{}, board...)
	cards = append(cards, hole[0], hole[1])
	if len(cards) < 5 {
		return ""
	}
	hv := Evaluate(cards)
	return fmt.Sprintf(", with a %s", categoryPhrase(hv.Category))
}

func categoryPhrase(c Category) string {
	switch c {
	case HighCard:
		return "high card"
	case OnePair:
		return "pair"
	case TwoPair:
		return "two pair"
	case ThreeOfAKind:
		return "three of a kind"
	case Straight:
		return "straight"
	case Flush:
		return "flush"
	case FullHouse:
		return "full house"
	case FourOfAKind:
		return "four of a kind"
	case StraightFlush:
		return "straight flush"
	default:
		return c.String()
	}
}
