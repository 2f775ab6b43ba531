// Package config provides YAML-based configuration loading for t2048,
// with environment overrides.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// Board size limits accepted by Validate.
const (
	MinBoardSize = 2
	MaxBoardSize = 8
)

// Config contains all configuration for the t2048 binary.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Display DisplayConfig `yaml:"display"`
	Log     LogConfig     `yaml:"log"`
	// Seed fixes the spawn sequence. Zero picks a time-based seed.
	Seed int64 `yaml:"seed" env:"T2048_SEED"`
}

// BoardConfig defines the board of the classic preset.
type BoardConfig struct {
	Size int `yaml:"size" env:"T2048_BOARD_SIZE"`
}

// DisplayConfig defines terminal rendering parameters.
type DisplayConfig struct {
	TickRate   int  `yaml:"tick_rate" env:"T2048_TICK_RATE"`
	Colors     bool `yaml:"colors" env:"T2048_COLORS"`
	Animations bool `yaml:"animations" env:"T2048_ANIMATIONS"`
}

// LogConfig defines where and how much the game logs.
type LogConfig struct {
	Level string `yaml:"level" env:"T2048_LOG_LEVEL"`
	File  string `yaml:"file" env:"T2048_LOG_FILE"`
}

// Default returns the hard-coded configuration.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Size: 4,
		},
		Display: DisplayConfig{
			TickRate:   60,
			Colors:     true,
			Animations: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks every field and joins all problems into one error.
func (c Config) Validate() error {
	var errs []error

	if c.Board.Size < MinBoardSize || c.Board.Size > MaxBoardSize {
		errs = append(errs, fmt.Errorf("board.size %d outside [%d, %d]", c.Board.Size, MinBoardSize, MaxBoardSize))
	}
	if c.Display.TickRate < 1 || c.Display.TickRate > 240 {
		errs = append(errs, fmt.Errorf("display.tick_rate %d outside [1, 240]", c.Display.TickRate))
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
