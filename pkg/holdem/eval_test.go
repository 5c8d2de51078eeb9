package holdem

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustCards(t *testing.T, tokens ...string) []Card {
	t.Helper()
	out := make([]Card, len(tokens))
	for i, tok := range tokens {
		c, err := ParseCard(tok)
		require.NoError(t, err)
		out[i] = c
	}
	return out
}

func TestEvaluateWheelStraight(t *testing.T) {
	cards := mustCards(t, "As", "2d", "3c", "4h", "5s", "9d", "Kd")
	hv := Evaluate(cards)
	require.Equal(t, Straight, hv.Category)
	require.Equal(t, Rank(5), hv.Best5[0].Rank, "wheel straight reports 5-high, the lowest possible straight")
}

func TestEvaluateStraightFlush(t *testing.T) {
	cards := mustCards(t, "9s", "8s", "7s", "6s", "5s", "2d", "Kc")
	hv := Evaluate(cards)
	require.Equal(t, StraightFlush, hv.Category)
	require.Equal(t, Rank(9), hv.Best5[0].Rank)
}

func TestEvaluateFourOfAKindBeatsFullHouse(t *testing.T) {
	quads := Evaluate(mustCards(t, "Ah", "Ad", "Ac", "As", "2c", "2d", "9h"))
	house := Evaluate(mustCards(t, "Kh", "Kd", "Kc", "2c", "2d", "3h", "9h"))
	require.False(t, quads.Less(house))
	require.True(t, house.Less(quads))
}

func TestEvaluateTwoPairKicker(t *testing.T) {
	a := Evaluate(mustCards(t, "Ah", "Ad", "Kh", "Kd", "9c", "2s", "3d"))
	b := Evaluate(mustCards(t, "Ah", "Ad", "Kh", "Kd", "8c", "2s", "3d"))
	require.Equal(t, TwoPair, a.Category)
	require.Equal(t, TwoPair, b.Category)
	require.True(t, b.Less(a), "higher kicker (9 vs 8) must win between identical two pairs")
}

func TestEvaluateFlushOverStraight(t *testing.T) {
	flush := Evaluate(mustCards(t, "2h", "5h", "9h", "Jh", "Kh", "3d", "4c"))
	straight := Evaluate(mustCards(t, "5c", "6d", "7h", "8s", "9c", "2h", "3h"))
	require.Equal(t, Flush, flush.Category)
	require.Equal(t, Straight, straight.Category)
	require.True(t, straight.Less(flush))
}

func TestEvaluateMonotonicityOnSubset(t *testing.T) {
	seven := mustCards(t, "Ah", "Ad", "Ac", "Kd", "Kc", "2s", "3d")
	five := seven[:5]
	hvSeven := Evaluate(seven)
	hvFive := Evaluate(five)
	require.False(t, hvSeven.Less(hvFive), "a seven-card hand's best score must never be worse than a five-card subset's")
}

func TestParseCardRejectsMalformed(t *testing.T) {
	_, err := ParseCard("Zz")
	require.Error(t, err)
	var invalid *InvalidCard
	require.ErrorAs(t, err, &invalid)
}
