package main

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/logging"
)

var (
	flagSimSize int
	flagSimGrid string
)

var simCmd = &cobra.Command{
	Use:   "sim <move>...",
	Short: "Apply moves without a terminal UI",
	Long: `Applies moves to a fresh board (or to --grid) and prints the result of
every move. Moves are up, down, left, right or their first letters.
Simulation stops early once the game is won or lost.

Examples:
  t2048 sim --seed 42 left up right down
  t2048 sim --grid "2,2,4,0/0,0,0,0/0,0,0,0/0,0,0,0" l
  t2048 sim --size 3 --seed 7 u u l r`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimSize, "size", 0, "Board size (default from config)")
	simCmd.Flags().StringVar(&flagSimGrid, "grid", "", `Starting grid, rows split by "/" and cells by ","`)
}

func runSim(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := logging.New(cmd.ErrOrStderr(), logging.ParseLevel(cfg.Log.Level))

	dirs := make([]t2048.Direction, 0, len(args))
	for _, a := range args {
		d, err := t2048.ParseDirection(a)
		if err != nil {
			return err
		}
		dirs = append(dirs, d)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var engine *t2048.Engine
	if flagSimGrid != "" {
		grid, err := t2048.ParseGrid(flagSimGrid)
		if err != nil {
			return err
		}
		engine, err = t2048.NewEngineFromGrid(grid, seed)
		if err != nil {
			return err
		}
	} else {
		size := cfg.Board.Size
		if flagSimSize != 0 {
			size = flagSimSize
		}
		engine, err = t2048.InitGame(size, seed)
		if err != nil {
			return err
		}
	}

	logger.Debug("simulating", "size", engine.Size(), "seed", seed, "moves", len(dirs))

	return simulate(cmd.OutOrStdout(), logger, engine, seed, dirs)
}

// simulate applies dirs to engine and writes every result to w.
func simulate(w io.Writer, logger *log.Logger, engine *t2048.Engine, seed int64, dirs []t2048.Direction) error {
	fmt.Fprintf(w, "seed %d, %dx%d board\n", seed, engine.Size(), engine.Size())
	fmt.Fprintln(w, engine.Grid())

	for i, d := range dirs {
		if engine.State().Terminal() {
			fmt.Fprintf(w, "\ngame %s, %d moves skipped\n", engine.State(), len(dirs)-i)
			break
		}

		res, err := engine.Move(d)
		if err != nil {
			return err
		}

		spawned := "none"
		if res.Spawned != nil {
			spawned = fmt.Sprintf("%d at (%d,%d)", res.Spawned.Value, res.Spawned.Pos.Row, res.Spawned.Pos.Col)
		}
		fmt.Fprintf(w, "\nmove %d: %s changed=%t delta=+%d score=%d state=%s spawned=%s\n",
			i+1, res.Direction, res.Changed, res.ScoreDelta, engine.Score(), res.State, spawned)
		fmt.Fprintln(w, res.Grid)

		logger.Debug("move", "n", i+1, "direction", d, "changed", res.Changed, "merges", res.Merges)
	}

	fmt.Fprintf(w, "\nfinal score %d, max tile %d, %s\n", engine.Score(), engine.MaxTile(), engine.State())
	return nil
}
