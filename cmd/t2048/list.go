package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all board presets",
	Long:  `Shows every board preset that can be passed to 'play'.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		printPresets(cmd.OutOrStdout(), cfg.Board.Size)
		return nil
	},
}

// printPresets writes the preset table. The classic preset shows the
// configured board size.
func printPresets(w io.Writer, boardSize int) {
	fmt.Fprintln(w, "Board presets:")
	fmt.Fprintln(w)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, p := range t2048.Presets {
		maxIDLen = max(maxIDLen, len(p.ID))
	}

	fmt.Fprintf(w, "  %-*s  %s\n", maxIDLen, "ID", "Board")
	fmt.Fprintf(w, "  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, p := range t2048.Presets {
		fmt.Fprintf(w, "  %-*s  %s\n", maxIDLen, p.ID, p.Label(boardSize))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 't2048 play <id>' to play a board.")
}
