package t2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StateWin         GameStateType = "win"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick    uint64
	Preset  string
	Size    int
	Score   int
	Turn    int
	Grid    Grid
	MaxTile int // Highest tile on board
	State   GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	if g.engine == nil {
		return Snapshot{Preset: g.preset.ID}
	}

	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.engine.State() == StateWon:
		state = StateWin
	case g.engine.State() == StateLost:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	return Snapshot{
		Tick:    g.tick,
		Preset:  g.preset.ID,
		Size:    g.size,
		Score:   g.engine.Score(),
		Turn:    g.engine.Turn(),
		Grid:    g.engine.Grid(),
		MaxTile: g.engine.MaxTile(),
		State:   state,
	}
}
