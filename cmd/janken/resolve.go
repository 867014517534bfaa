package main

import (
	"fmt"

	"github.com/lox/janken/internal/janken"
)

// ResolveCmd prints the outcome of a single pair of hands
type ResolveCmd struct {
	Player   string `arg:"" help:"Player's hand (rock, scissors, paper or gu, choki, pa)"`
	Opponent string `arg:"" help:"Opponent's hand"`
}

func (c *ResolveCmd) Run() error {
	player, err := janken.ParseHand(c.Player)
	if err != nil {
		return fmt.Errorf("player: %w", err)
	}
	opponent, err := janken.ParseHand(c.Opponent)
	if err != nil {
		return fmt.Errorf("opponent: %w", err)
	}

	fmt.Printf("%s vs %s: %s\n", player, opponent, janken.Resolve(player, opponent))
	return nil
}
