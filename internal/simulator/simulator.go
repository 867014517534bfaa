package simulator

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/lox/janken/internal/janken"
	"github.com/lox/janken/internal/randutil"
)

// Config holds configuration for running simulations
type Config struct {
	Rounds   int
	MaxTicks int // upper bound on opponent ticks before the player picks
	Seed     int64
	Logger   *log.Logger
}

// Simulator plays rounds against a single engine without a terminal
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	return &Simulator{config: config}
}

// Run plays the configured number of rounds and returns the session tally.
// Every round waits a random number of ticks and then picks a random hand,
// the same way a player reacting to the cycling opponent would.
func (s *Simulator) Run(ctx context.Context) (janken.Tally, error) {
	if s.config.Rounds < 1 {
		return janken.Tally{}, fmt.Errorf("rounds must be at least 1, got %d", s.config.Rounds)
	}
	if s.config.MaxTicks < 1 {
		return janken.Tally{}, fmt.Errorf("max ticks must be at least 1, got %d", s.config.MaxTicks)
	}

	rng := randutil.New(s.config.Seed)
	engine := janken.NewEngine(janken.WithLogger(s.config.Logger))

	s.config.Logger.Info("Starting simulation",
		"rounds", s.config.Rounds,
		"max_ticks", s.config.MaxTicks,
		"seed", s.config.Seed)

	for round := 0; round < s.config.Rounds; round++ {
		if err := ctx.Err(); err != nil {
			return engine.Tally(), fmt.Errorf("simulation stopped after %d rounds: %w", round, err)
		}

		engine.Reset()
		ticks := 1 + rng.IntN(s.config.MaxTicks)
		for i := 0; i < ticks; i++ {
			engine.Tick()
		}

		hand := janken.Hands[rng.IntN(len(janken.Hands))]
		if _, err := engine.SelectHand(hand); err != nil {
			return engine.Tally(), fmt.Errorf("round %d: %w", round+1, err)
		}
	}

	tally := engine.Tally()
	s.config.Logger.Info("Simulation complete",
		"wins", tally.Wins,
		"losses", tally.Losses,
		"draws", tally.Draws)

	return tally, nil
}
