package holdem

// NewShuffledDeck materializes the 52-card cross product and shuffles it
// in place with Fisher-Yates, using the supplied RNG as the sole source
// of randomness. Dealing draws from the tail of the returned slice.
func NewShuffledDeck(rng *RNG) []Card {
	deck := FullDeck52()
	for i := len(deck) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		deck[i], deck[j] = deck[j], deck[i]
	}
	return deck
}

// drawN removes and returns the last n cards of deck, along with the
// shortened deck. Dealing consistently from the tail keeps "next card"
// a cheap slice truncation.
func drawN(deck []Card, n int) (drawn []Card, rest []Card) {
	if n > len(deck) {
		n = len(deck)
	}
	cut := len(deck) - n
	drawn = append([]Card{}, deck[cut:]...)
	rest = deck[:cut]
	return drawn, rest
}
