package main

import (
	"fmt"
	"os"

	"github.com/lox/janken/cmd/janken/shared"
	"github.com/lox/janken/internal/randutil"
	"github.com/lox/janken/internal/simulator"
	"github.com/lox/janken/internal/tui"
)

// SimulateCmd plays random rounds headlessly
type SimulateCmd struct {
	Rounds   int    `default:"1000" help:"Number of rounds to play"`
	MaxTicks int    `default:"10" help:"Maximum opponent ticks before each pick"`
	Seed     *int64 `help:"Deterministic RNG seed (optional)"`
	Debug    bool   `help:"Enable debug logging"`
}

func (c *SimulateCmd) Run() error {
	level := "info"
	if c.Debug {
		level = "debug"
	}
	logger, err := shared.SetupLogger(os.Stderr, level, "simulate")
	if err != nil {
		return err
	}

	ctx, cancel := shared.SetupSignalHandler(logger)
	defer cancel()

	seed := randutil.Seed(c.Seed)
	tally, err := simulator.New(simulator.Config{
		Rounds:   c.Rounds,
		MaxTicks: c.MaxTicks,
		Seed:     seed,
		Logger:   logger,
	}).Run(ctx)
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("%d rounds (seed %d)", tally.Total(), seed)))
	printTally(tui.EnglishLabels, tally)
	fmt.Printf("Win rate : %.1f%%\n", tally.WinRate()*100)
	return nil
}
