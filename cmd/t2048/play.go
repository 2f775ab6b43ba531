package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/logging"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [preset]",
	Short: "Play 2048",
	Long: `Start playing 2048 on the given board preset. Without a preset a
picker is shown.

Controls:
  Arrows/WASD/hjkl - Slide
  P/Esc            - Pause
  R                - Restart (after the game ends)
  ?                - Toggle help
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Examples:
  t2048 play
  t2048 play 2048-3x3
  t2048 play --seed 42 --log-level debug
  t2048 play --config ./my-2048.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logs go to a file
	logPath := cfg.Log.File
	if logPath == "" {
		logPath = logging.DefaultFile()
	}
	logFile, err := logging.OpenFile(logPath)
	if err != nil {
		return err
	}
	defer logFile.Close()

	logger := logging.New(logFile, logging.ParseLevel(cfg.Log.Level))
	t2048.SetLogger(logger)

	rc := runtimeConfig(cfg)

	var preset *t2048.Preset
	if len(args) == 1 {
		p, ok := t2048.PresetByID(args[0])
		if !ok {
			return fmt.Errorf("unknown preset %q (run 't2048 list' to see presets)", args[0])
		}
		preset = &p
	} else {
		preset, err = tui.RunPresetPicker(rc)
		if err != nil {
			return err
		}
		// User quit the picker
		if preset == nil {
			return nil
		}
	}

	game, err := registry.Create(preset.ID)
	if err != nil {
		return err
	}

	logger.Info("starting", "preset", preset.ID, "seed", rc.Seed, "fps", rc.TickRate)

	if err := tui.Run(game, rc, logger); err != nil {
		logger.Error("game crashed", "error", err)
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// runtimeConfig builds the platform config from the loaded config and the
// current terminal size.
func runtimeConfig(cfg config.Config) core.RuntimeConfig {
	rc := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}

	rc.TickRate = cfg.Display.TickRate
	rc.Seed = cfg.Seed
	rc.BoardSize = cfg.Board.Size
	rc.Colors = cfg.Display.Colors
	rc.Animate = cfg.Display.Animations
	return rc
}
