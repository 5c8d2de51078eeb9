package holdem

import "sort"

// Pot is one layer of chips and the set of seats eligible to win it.
// Eligibility is permanent once a layer closes: only seats that were
// both non-folded and had contributed at least the layer's level when it
// was peeled can ever win it, regardless of what happens on later
// streets.
type Pot struct {
	Amount   int64
	Eligible []int // seat ids, ascending
}

func (p Pot) isEligible(seat int) bool {
	for _, s := range p.Eligible {
		if s == seat {
			return true
		}
	}
	return false
}

// settleStreet peels the current street's contributions (Seat.StreetBet)
// into pot layers and merges or appends them onto pots. Folded seats
// still contribute their StreetBet to a layer's
// amount but are never added to that layer's eligibility. Callers are
// responsible for zeroing StreetBet afterward; settleStreet only reads
// it.
func settleStreet(pots []Pot, seats []Seat) []Pot {
	type contribution struct {
		seat   int
		amount int64
		folded bool
	}
	var contribs []contribution
	for _, s := range seats {
		if s.StreetBet > 0 {
			contribs = append(contribs, contribution{seat: s.SeatID, amount: s.StreetBet, folded: s.Folded})
		}
	}
	if len(contribs) == 0 {
		return pots
	}

	levels := uniqueSortedAmounts(contribs)

	var prev int64
	for _, level := range levels {
		var layerAmount int64
		var eligible []int
		for _, c := range contribs {
			share := c.amount
			if share > level {
				share = level
			}
			share -= prev
			if share > 0 {
				layerAmount += share
			}
			if c.amount >= level && !c.folded {
				eligible = append(eligible, c.seat)
			}
		}
		if layerAmount > 0 {
			sort.Ints(eligible)
			pots = appendOrMergePot(pots, Pot{Amount: layerAmount, Eligible: eligible})
		}
		prev = level
	}
	return pots
}

func uniqueSortedAmounts(contribs []struct {
	seat   int
	amount int64
	folded bool
}) []int64 {
	seen := map[int64]bool{}
	var out []int64
	for _, c := range contribs {
		if !seen[c.amount] {
			seen[c.amount] = true
			out = append(out, c.amount)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func appendOrMergePot(pots []Pot, layer Pot) []Pot {
	if len(pots) > 0 {
		last := &pots[len(pots)-1]
		if eligibilityEqual(last.Eligible, layer.Eligible) {
			last.Amount += layer.Amount
			return pots
		}
	}
	return append(pots, layer)
}

func eligibilityEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// WinnerShare is one seat's payout from COMPLETE.
type WinnerShare struct {
	SeatID int
	Amount int64
}

// distributePots resolves showdown: for each pot in order, evaluate
// every eligible non-folded seat's seven-card hand, split the pot among
// the top scorers, and hand any odd chips left-of-button starting from
// the seat immediately clockwise of the dealer. seatOrder is the full
// ring of seat ids in ascending order (used to walk clockwise from the
// dealer for the odd-chip rule).
func distributePots(pots []Pot, seats []Seat, board []Card, dealer int, seatOrder []int) []WinnerShare {
	byID := make(map[int]*Seat, len(seats))
	for i := range seats {
		byID[seats[i].SeatID] = &seats[i]
	}

	totals := map[int]int64{}
	for _, pot := range pots {
		var contenders []int
		for _, seatID := range pot.Eligible {
			s := byID[seatID]
			if s != nil && !s.Folded {
				contenders = append(contenders, seatID)
			}
		}
		if len(contenders) == 0 {
			continue
		}
		var best HandValue
		bestSet := false
		values := make(map[int]HandValue, len(contenders))
		for _, seatID := range contenders {
			s := byID[seatID]
			all := make([]Card, 0, 7)
			all = append(all, board...)
			if s.Hole != nil {
				all = append(all, s.Hole[0], s.Hole[1])
			}
			hv := Evaluate(all)
			values[seatID] = hv
			if !bestSet || best.Less(hv) {
				best = hv
				bestSet = true
			}
		}
		var winners []int
		for _, seatID := range contenders {
			if values[seatID].Equal(best) {
				winners = append(winners, seatID)
			}
		}
		sort.Ints(winners)

		share := pot.Amount / int64(len(winners))
		remainder := pot.Amount % int64(len(winners))
		for _, seatID := range winners {
			totals[seatID] += share
		}
		if remainder > 0 {
			start := clockwiseFrom(seatOrder, dealer)
			n := len(seatOrder)
			for i := 0; i < n && remainder > 0; i++ {
				seatID := seatOrder[(start+i)%n]
				if contains(winners, seatID) {
					totals[seatID]++
					remainder--
				}
			}
		}
	}

	var out []WinnerShare
	for _, seatID := range seatOrder {
		if amt, ok := totals[seatID]; ok && amt > 0 {
			out = append(out, WinnerShare{SeatID: seatID, Amount: amt})
		}
	}
	return out
}

// clockwiseFrom returns the index in order of the seat immediately after
// dealer (wrapping), i.e. "left of the button".
func clockwiseFrom(order []int, dealer int) int {
	for i, s := range order {
		if s == dealer {
			return (i + 1) % len(order)
		}
	}
	return 0
}

func contains(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

// totalPotAmount sums every pot layer — used to verify payout closure
// (payout closure: Σ winners.amount must equal Σ pots.amount).
func totalPotAmount(pots []Pot) int64 {
	var total int64
	for _, p := range pots {
		total += p.Amount
	}
	return total
}
