package holdem

import "time"

// Config parameterizes CreateTable. Seed is optional: when nil, a seed is
// derived from wall-clock time so callers that don't care about replay
// determinism don't have to invent one, while callers that do (tests,
// replay tooling) can pin it.
type Config struct {
	Seats             int
	StartingStack     int64
	BigBlind          int64
	Seed              *uint32
	ExactComboLimit   int64
	MonteCarloSamples int64
}

const (
	defaultExactComboLimit   = 100000
	defaultMonteCarloSamples = 20000

	minSeats = 2
	maxSeats = 9
)

// CreateTable validates cfg and returns a fresh State in phase INIT, one
// seat per cfg.Seats, button on seat 0. Returns *InvalidConfig on any
// violation: an out-of-range seat count, a non-positive blind, or a
// non-positive starting stack.
func CreateTable(cfg Config) (*State, error) {
	if cfg.Seats < minSeats || cfg.Seats > maxSeats {
		return nil, invalidConfig("seats must be between %d and %d, got %d", minSeats, maxSeats, cfg.Seats)
	}
	if cfg.StartingStack <= 0 {
		return nil, invalidConfig("starting_stack must be positive, got %d", cfg.StartingStack)
	}
	if cfg.BigBlind < 1 {
		return nil, invalidConfig("big_blind must be at least 1, got %d", cfg.BigBlind)
	}

	exactComboLimit := cfg.ExactComboLimit
	if exactComboLimit <= 0 {
		exactComboLimit = defaultExactComboLimit
	}
	monteCarloSamples := cfg.MonteCarloSamples
	if monteCarloSamples <= 0 {
		monteCarloSamples = defaultMonteCarloSamples
	}

	seed := cfg.Seed
	var seedValue uint32
	if seed != nil {
		seedValue = *seed
	} else {
		seedValue = uint32(time.Now().UnixNano())
	}

	seats := make([]Seat, cfg.Seats)
	for i := range seats {
		seats[i] = Seat{SeatID: i, Stack: cfg.StartingStack}
	}

	return &State{
		Seats:             seats,
		BigBlind:          cfg.BigBlind,
		SmallBlind:        cfg.BigBlind / 2,
		Dealer:            0,
		RNGState:          seedValue,
		ExactComboLimit:   exactComboLimit,
		MonteCarloSamples: monteCarloSamples,
		Phase:             InitPhase{},
	}, nil
}
