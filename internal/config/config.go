package config

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

const (
	DefaultTickInterval = "200ms"
	DefaultLanguage     = "en"
	DefaultLogLevel     = "info"
	DefaultLogFile      = "janken.log"
)

// Config represents the complete game configuration
type Config struct {
	Game GameSettings `hcl:"game,block"`
	UI   UISettings   `hcl:"ui,block"`
	Log  LogSettings  `hcl:"log,block"`
}

// GameSettings controls the round pacing
type GameSettings struct {
	TickInterval string `hcl:"tick_interval,optional"`
}

// UISettings contains terminal interface settings
type UISettings struct {
	Language string `hcl:"language,optional"`
	Inline   bool   `hcl:"inline,optional"` // render below the prompt instead of the alternate screen
}

// LogSettings contains logging settings
type LogSettings struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Game: GameSettings{
			TickInterval: DefaultTickInterval,
		},
		UI: UISettings{
			Language: DefaultLanguage,
		},
		Log: LogSettings{
			Level: DefaultLogLevel,
			File:  DefaultLogFile,
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	// Blocks are optional in the file, so decode into a shape where they may be absent
	var raw struct {
		Game *GameSettings `hcl:"game,block"`
		UI   *UISettings   `hcl:"ui,block"`
		Log  *LogSettings  `hcl:"log,block"`
	}
	diags = gohcl.DecodeBody(file.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg := &Config{}
	if raw.Game != nil {
		cfg.Game = *raw.Game
	}
	if raw.UI != nil {
		cfg.UI = *raw.UI
	}
	if raw.Log != nil {
		cfg.Log = *raw.Log
	}
	cfg.applyDefaults()

	return cfg, nil
}

func (c *Config) applyDefaults() {
	defaults := Default()
	if c.Game.TickInterval == "" {
		c.Game.TickInterval = defaults.Game.TickInterval
	}
	if c.UI.Language == "" {
		c.UI.Language = defaults.UI.Language
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
	if c.Log.File == "" {
		c.Log.File = defaults.Log.File
	}
}

// TickInterval returns the opponent hand interval. Call Validate first.
func (c *Config) TickInterval() time.Duration {
	d, _ := time.ParseDuration(c.Game.TickInterval)
	return d
}

// UseAltScreen reports whether the TUI should take over the whole terminal
func (c *Config) UseAltScreen() bool {
	return !c.UI.Inline
}

// Validate validates the configuration
func (c *Config) Validate() error {
	d, err := time.ParseDuration(c.Game.TickInterval)
	if err != nil {
		return fmt.Errorf("invalid tick_interval %q: %w", c.Game.TickInterval, err)
	}
	if d <= 0 {
		return fmt.Errorf("tick_interval must be positive, got %s", d)
	}

	switch c.UI.Language {
	case "en", "ja":
	default:
		return fmt.Errorf("unsupported language: %q", c.UI.Language)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %q", c.Log.Level)
	}

	if c.Log.File == "" {
		return fmt.Errorf("log file is required")
	}

	return nil
}
