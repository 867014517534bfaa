package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/coder/quartz"
)

// TickMsg advances the opponent's hand
type TickMsg struct {
	Time time.Time
}

// Ticker is the periodic timer that animates the opponent's hand. It fires
// for the whole session; the engine ignores ticks once a round is decided.
type Ticker struct {
	ticker *quartz.Ticker
}

// NewTicker starts a clock ticker with the given interval
func NewTicker(clock quartz.Clock, interval time.Duration) (*Ticker, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("tick interval must be positive, got %s", interval)
	}
	return &Ticker{ticker: clock.NewTicker(interval, "tui", "ticker")}, nil
}

// Run delivers a TickMsg through send for every clock tick until ctx is done
func (t *Ticker) Run(ctx context.Context, send func(tea.Msg)) error {
	defer t.ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-t.ticker.C:
			send(TickMsg{Time: now})
		}
	}
}
