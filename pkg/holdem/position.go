package holdem

// Positions holds the seat indices assigned for one hand: button, both
// blinds, and first-to-act pre- and postflop.
type Positions struct {
	Button         int
	SmallBlind     int
	BigBlind       int
	FirstToActPre  int
	FirstToActPost int
}

// assignPositions computes button/blind/first-to-act seats from the list
// of seat indices with a positive stack (seated and not eliminated) and
// the dealer seat. active must be non-empty and sorted ascending; dealer
// must be a member of active.
func assignPositions(active []int, dealer int) Positions {
	n := len(active)
	dIdx := indexOf(active, dealer)

	if n == 2 {
		btn := active[dIdx]
		bb := active[(dIdx+1)%n]
		return Positions{
			Button:         btn,
			SmallBlind:     btn,
			BigBlind:       bb,
			FirstToActPre:  btn,
			FirstToActPost: bb,
		}
	}

	btn := active[dIdx]
	sb := active[(dIdx+1)%n]
	bb := active[(dIdx+2)%n]
	utg := active[(dIdx+3)%n]
	return Positions{
		Button:         btn,
		SmallBlind:     sb,
		BigBlind:       bb,
		FirstToActPre:  utg,
		FirstToActPost: sb,
	}
}

func indexOf(active []int, seat int) int {
	for i, s := range active {
		if s == seat {
			return i
		}
	}
	return 0
}
