package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTickerDeliversOneMessagePerInterval(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	mockClock := quartz.NewMock(t)
	ticker, err := NewTicker(mockClock, 200*time.Millisecond)
	require.NoError(t, err)

	msgs := make(chan tea.Msg, 10)
	runCtx, stop := context.WithCancel(ctx)
	done := make(chan error, 1)
	go func() {
		done <- ticker.Run(runCtx, func(msg tea.Msg) { msgs <- msg })
	}()

	for i := 0; i < 3; i++ {
		mockClock.Advance(200 * time.Millisecond).MustWait(ctx)

		select {
		case msg := <-msgs:
			assert.IsType(t, TickMsg{}, msg)
		case <-ctx.Done():
			t.Fatalf("timed out waiting for tick %d", i+1)
		}
	}

	stop()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-ctx.Done():
		t.Fatal("ticker did not stop after cancellation")
	}
	assert.Empty(t, msgs)
}

func TestTickerDrivesModel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	mockClock := quartz.NewMock(t)
	ticker, err := NewTicker(mockClock, time.Second)
	require.NoError(t, err)

	m, engine := newTestModel(EnglishLabels)
	msgs := make(chan tea.Msg, 1)
	go func() {
		_ = ticker.Run(ctx, func(msg tea.Msg) { msgs <- msg })
	}()

	mockClock.Advance(time.Second).MustWait(ctx)
	select {
	case msg := <-msgs:
		send(m, msg)
	case <-ctx.Done():
		t.Fatal("timed out waiting for tick")
	}

	h, ok := engine.Opponent()
	require.True(t, ok)
	assert.Equal(t, "Rock", h.String())
}

func TestNewTickerRejectsNonPositiveInterval(t *testing.T) {
	_, err := NewTicker(quartz.NewReal(), 0)
	assert.Error(t, err)
}
