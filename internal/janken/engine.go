// Package janken implements the rock-paper-scissors round engine: the
// cycling opponent hand, the outcome rule and the session tally.
package janken

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"
)

var (
	// ErrRoundFinished is returned when a hand is selected after the round
	// already has a result.
	ErrRoundFinished = errors.New("janken: round finished")

	// ErrOpponentNotShown is returned when a hand is selected before the
	// opponent has shown any hand.
	ErrOpponentNotShown = errors.New("janken: opponent hand not shown")

	// ErrInvalidHand is returned for values outside Rock, Scissors and Paper.
	ErrInvalidHand = errors.New("janken: invalid hand")
)

// Engine owns a session's round state and tally. It is not safe for
// concurrent use; a single event loop is expected to drive it.
type Engine struct {
	logger *log.Logger

	opponent    Hand
	hasOpponent bool
	player      Hand
	finished    bool
	outcome     Outcome

	round int
	tally Tally
}

// Option configures an Engine
type Option func(*Engine)

// WithLogger sets the logger used for round results
func WithLogger(logger *log.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// NewEngine creates an engine with an empty tally and a fresh round
func NewEngine(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = log.New(io.Discard)
	}
	return e
}

// Tick advances the opponent's hand. The first tick of a round shows Rock.
// Ticks after the player has chosen are ignored; the return value reports
// whether the hand moved.
func (e *Engine) Tick() bool {
	if e.finished {
		return false
	}
	if !e.hasOpponent {
		e.opponent = Hands[0]
		e.hasOpponent = true
		return true
	}
	e.opponent = e.opponent.Next()
	return true
}

// SelectHand records the player's hand, freezes the opponent and returns the
// outcome. Rejected selections leave the round and the tally unchanged.
func (e *Engine) SelectHand(h Hand) (Outcome, error) {
	if !h.Valid() {
		return 0, ErrInvalidHand
	}
	if e.finished {
		return 0, ErrRoundFinished
	}
	if !e.hasOpponent {
		return 0, ErrOpponentNotShown
	}

	e.player = h
	e.outcome = Resolve(h, e.opponent)
	e.finished = true
	e.round++
	e.tally.Record(e.outcome)

	e.logger.Debug("Round finished",
		"round", e.round,
		"player", e.player,
		"opponent", e.opponent,
		"outcome", e.outcome,
		"wins", e.tally.Wins,
		"losses", e.tally.Losses,
		"draws", e.tally.Draws)

	return e.outcome, nil
}

// Reset starts a new round. The tally is kept.
func (e *Engine) Reset() {
	e.hasOpponent = false
	e.finished = false
	e.opponent = 0
	e.player = 0
	e.outcome = 0
}

// Opponent returns the opponent's current hand, if one has been shown
func (e *Engine) Opponent() (Hand, bool) {
	return e.opponent, e.hasOpponent
}

// Player returns the player's hand once the round is finished
func (e *Engine) Player() (Hand, bool) {
	return e.player, e.finished
}

// Outcome returns the result of the current round once it is finished
func (e *Engine) Outcome() (Outcome, bool) {
	return e.outcome, e.finished
}

// Finished reports whether the player has chosen a hand this round
func (e *Engine) Finished() bool {
	return e.finished
}

// Round returns the number of completed rounds in this session
func (e *Engine) Round() int {
	return e.round
}

// Tally returns a snapshot of the session tally
func (e *Engine) Tally() Tally {
	return e.tally
}
