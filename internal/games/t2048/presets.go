// Package t2048 implements the 2048 sliding-tile puzzle on an N x N board.
//
// The engine reduces every move to a slide to the left: the board is rotated
// clockwise so the requested direction points left, each row is compacted
// and merged, and the board is rotated back. Game wraps the engine for the
// arcade platform.
package t2048

import "fmt"

// Preset is a board variant that can be played from the menu or CLI.
type Preset struct {
	ID   string
	Name string
	Size int // 0 means the configured board size
}

// Presets lists the playable board variants, smallest first.
var Presets = []Preset{
	{ID: "2048-3x3", Name: "Tiny", Size: 3},
	{ID: "2048", Name: "Classic", Size: 0},
	{ID: "2048-5x5", Name: "Big", Size: 5},
	{ID: "2048-6x6", Name: "Huge", Size: 6},
}

// PresetCount returns the number of presets.
func PresetCount() int {
	return len(Presets)
}

// GetPreset returns the preset at the given index (0-based).
// Returns nil if index is out of range.
func GetPreset(index int) *Preset {
	if index < 0 || index >= len(Presets) {
		return nil
	}
	return &Presets[index]
}

// PresetByID looks a preset up by its game ID.
func PresetByID(id string) (Preset, bool) {
	for _, p := range Presets {
		if p.ID == id {
			return p, true
		}
	}
	return Preset{}, false
}

// BoardSize resolves the preset size against the configured default.
func (p Preset) BoardSize(configured int) int {
	if p.Size > 0 {
		return p.Size
	}
	if configured > 0 {
		return configured
	}
	return DefaultBoardSize
}

// Label returns the display name with the resolved board size.
func (p Preset) Label(configured int) string {
	n := p.BoardSize(configured)
	return fmt.Sprintf("%s %dx%d", p.Name, n, n)
}
