package t2048

// State is the outcome of a board as seen by Evaluate.
type State int

const (
	StateOngoing State = iota
	StateWon
	StateLost
)

// String returns the lowercase name of the state.
func (s State) String() string {
	switch s {
	case StateOngoing:
		return "ongoing"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the state ends the game.
func (s State) Terminal() bool {
	return s == StateWon || s == StateLost
}

// Evaluate classifies a grid. A tile of WinTile or more wins, even on a
// full board. Otherwise a board with no empty cell is lost, whether or not
// neighbouring tiles could still merge.
func Evaluate(g Grid) State {
	if g.MaxTile() >= WinTile {
		return StateWon
	}
	if !g.HasEmptyCell() {
		return StateLost
	}
	return StateOngoing
}
