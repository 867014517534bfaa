package janken

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tickN(e *Engine, n int) {
	for i := 0; i < n; i++ {
		e.Tick()
	}
}

func TestEngineInitialState(t *testing.T) {
	t.Parallel()

	e := NewEngine()

	_, ok := e.Opponent()
	assert.False(t, ok, "opponent should be absent at start")
	_, ok = e.Player()
	assert.False(t, ok, "player should be absent at start")
	assert.False(t, e.Finished())
	assert.Equal(t, 0, e.Round())
	assert.Equal(t, Tally{}, e.Tally())
}

func TestEngineTickCycle(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 10; n++ {
		e := NewEngine()
		tickN(e, n)

		got, ok := e.Opponent()
		require.True(t, ok)
		assert.Equal(t, Hands[(n-1)%len(Hands)], got, "after %d ticks", n)
	}
}

func TestEngineTickIgnoredWhenFinished(t *testing.T) {
	t.Parallel()

	e := NewEngine()
	tickN(e, 2)
	_, err := e.SelectHand(Rock)
	require.NoError(t, err)

	before, _ := e.Opponent()
	for i := 0; i < 5; i++ {
		assert.False(t, e.Tick())
	}
	after, ok := e.Opponent()
	require.True(t, ok)
	assert.Equal(t, before, after)
}

func TestEngineSelectHandCountsOnce(t *testing.T) {
	t.Parallel()

	e := NewEngine(WithLogger(log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})))
	e.Tick()

	outcome, err := e.SelectHand(Paper)
	require.NoError(t, err)
	assert.Equal(t, Win, outcome)
	assert.True(t, e.Finished())

	player, ok := e.Player()
	require.True(t, ok)
	assert.Equal(t, Paper, player)

	_, err = e.SelectHand(Scissors)
	assert.ErrorIs(t, err, ErrRoundFinished)

	assert.Equal(t, Tally{Wins: 1}, e.Tally())
	assert.Equal(t, 1, e.Round())
	player, _ = e.Player()
	assert.Equal(t, Paper, player, "rejected selection must not replace the player hand")
}

func TestEngineSelectBeforeFirstTick(t *testing.T) {
	t.Parallel()

	e := NewEngine()
	_, err := e.SelectHand(Rock)
	assert.ErrorIs(t, err, ErrOpponentNotShown)
	assert.False(t, e.Finished())
	assert.Equal(t, Tally{}, e.Tally())

	// the round is still playable once the opponent shows a hand
	e.Tick()
	_, err = e.SelectHand(Rock)
	require.NoError(t, err)
}

func TestEngineSelectInvalidHand(t *testing.T) {
	t.Parallel()

	e := NewEngine()
	e.Tick()
	_, err := e.SelectHand(Hand(42))
	assert.ErrorIs(t, err, ErrInvalidHand)
	assert.False(t, e.Finished())
	assert.Equal(t, Tally{}, e.Tally())
}

func TestEngineSelectIncrementsExactlyOneCounter(t *testing.T) {
	t.Parallel()

	for ticks := 1; ticks <= 3; ticks++ {
		for _, h := range Hands {
			e := NewEngine()
			tickN(e, ticks)
			before := e.Tally()

			outcome, err := e.SelectHand(h)
			require.NoError(t, err)

			after := e.Tally()
			assert.Equal(t, before.Total()+1, after.Total())
			assert.GreaterOrEqual(t, after.Wins, before.Wins)
			assert.GreaterOrEqual(t, after.Losses, before.Losses)
			assert.GreaterOrEqual(t, after.Draws, before.Draws)

			opponent, _ := e.Opponent()
			assert.Equal(t, Resolve(h, opponent), outcome)
		}
	}
}

func TestEngineResetKeepsTally(t *testing.T) {
	t.Parallel()

	e := NewEngine()
	e.Tick()
	_, err := e.SelectHand(Paper)
	require.NoError(t, err)
	require.Equal(t, Tally{Wins: 1}, e.Tally())

	e.Reset()

	_, ok := e.Opponent()
	assert.False(t, ok)
	_, ok = e.Player()
	assert.False(t, ok)
	_, ok = e.Outcome()
	assert.False(t, ok)
	assert.False(t, e.Finished())
	assert.Equal(t, Tally{Wins: 1}, e.Tally())
	assert.Equal(t, 1, e.Round())

	assert.True(t, e.Tick(), "ticks resume after reset")
	opponent, _ := e.Opponent()
	assert.Equal(t, Rock, opponent)
}

func TestEngineScenarios(t *testing.T) {
	t.Parallel()

	t.Run("win then draw after reset", func(t *testing.T) {
		e := NewEngine()

		e.Tick()
		opponent, _ := e.Opponent()
		require.Equal(t, Rock, opponent)

		outcome, err := e.SelectHand(Paper)
		require.NoError(t, err)
		assert.Equal(t, Win, outcome)
		assert.Equal(t, Tally{Wins: 1}, e.Tally())

		e.Reset()
		tickN(e, 2)
		opponent, _ = e.Opponent()
		require.Equal(t, Scissors, opponent)

		outcome, err = e.SelectHand(Scissors)
		require.NoError(t, err)
		assert.Equal(t, Draw, outcome)
		assert.Equal(t, Tally{Wins: 1, Draws: 1}, e.Tally())
	})

	t.Run("lose", func(t *testing.T) {
		e := NewEngine()
		e.Tick()

		outcome, err := e.SelectHand(Scissors)
		require.NoError(t, err)
		assert.Equal(t, Lose, outcome)
		assert.Equal(t, Tally{Losses: 1}, e.Tally())

		got, ok := e.Outcome()
		require.True(t, ok)
		assert.Equal(t, Lose, got)
	})
}
