package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/coder/quartz"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/lox/janken/cmd/janken/shared"
	"github.com/lox/janken/internal/config"
	"github.com/lox/janken/internal/janken"
	"github.com/lox/janken/internal/tui"
)

// PlayCmd runs the interactive game
type PlayCmd struct {
	Config   string        `short:"c" default:"janken.hcl" env:"JANKEN_CONFIG" help:"Path to HCL configuration file"`
	Tick     time.Duration `env:"JANKEN_TICK" help:"Opponent hand interval (overrides config)"`
	Lang     string        `short:"l" env:"JANKEN_LANG" help:"Language: en or ja (overrides config)"`
	LogLevel string        `env:"JANKEN_LOG_LEVEL" help:"Log level (overrides config)"`
	LogFile  string        `env:"JANKEN_LOG_FILE" help:"Log file path (overrides config)"`
}

func (c *PlayCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if c.Tick != 0 {
		cfg.Game.TickInterval = c.Tick.String()
	}
	if c.Lang != "" {
		cfg.UI.Language = c.Lang
	}
	if c.LogLevel != "" {
		cfg.Log.Level = c.LogLevel
	}
	if c.LogFile != "" {
		cfg.Log.File = c.LogFile
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	labels, err := tui.LabelsFor(cfg.UI.Language)
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logs go to a file
	logFile, err := shared.OpenLogFile(cfg.Log.File)
	if err != nil {
		return err
	}
	defer func() { _ = logFile.Close() }()

	logger, err := shared.SetupLogger(logFile, cfg.Log.Level, "janken")
	if err != nil {
		return err
	}

	sessionID, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("failed to create session id: %w", err)
	}
	logger = logger.With("session", sessionID.String())
	logger.Info("Starting session",
		"config", c.Config,
		"tick_interval", cfg.TickInterval(),
		"language", cfg.UI.Language)

	engine := janken.NewEngine(janken.WithLogger(logger))
	model := tui.NewModel(engine, labels, logger)

	ticker, err := tui.NewTicker(quartz.NewReal(), cfg.TickInterval())
	if err != nil {
		return err
	}

	var opts []tea.ProgramOption
	if cfg.UseAltScreen() {
		opts = append(opts, tea.WithAltScreen())
	}
	program := tea.NewProgram(model, opts...)

	ctx, cancel := shared.SetupSignalHandler(logger)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("failed to run TUI: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		return ticker.Run(ctx, program.Send)
	})
	g.Go(func() error {
		<-ctx.Done()
		program.Quit()
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	tally := engine.Tally()
	logger.Info("Session finished",
		"rounds", engine.Round(),
		"wins", tally.Wins,
		"losses", tally.Losses,
		"draws", tally.Draws)

	fmt.Println(titleStyle.Render(labels.Results))
	printTally(labels, tally)
	return nil
}

func printTally(labels tui.Labels, tally janken.Tally) {
	fmt.Printf("%s : %d\n", labels.Wins, tally.Wins)
	fmt.Printf("%s : %d\n", labels.Losses, tally.Losses)
	fmt.Printf("%s : %d\n", labels.Draws, tally.Draws)
}
