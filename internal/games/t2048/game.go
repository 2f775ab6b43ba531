package t2048

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// Game adapts the Engine to the arcade platform: it maps input actions to
// moves, keeps pause and window state, and drives tile animations.
type Game struct {
	preset Preset
	engine *Engine
	tick   uint64

	size      int
	screenW   int
	screenH   int
	colors    bool
	animate   bool
	paused    bool
	tooSmall  bool
	lastMove  MoveResult
	animation animator
}

// Package-level logger, replaced by the platform at startup
var logger = log.New(io.Discard)

// SetLogger routes game logging to l. A nil logger discards output.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l.WithPrefix("t2048")
}

// New creates a game for the given preset.
func New(p Preset) *Game {
	return &Game{preset: p}
}

// NewClassic creates the classic game on the configured board size.
func NewClassic() *Game {
	p, _ := PresetByID("2048")
	return New(p)
}

func init() {
	for _, p := range Presets {
		registry.Register(p.ID, func() registry.Game {
			return New(p)
		})
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.preset.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return fmt.Sprintf("2048 (%s)", g.preset.Name)
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.colors = cfg.Colors
	g.animate = cfg.Animate
	g.paused = false
	g.lastMove = MoveResult{}
	g.animation.stop()

	g.size = g.preset.BoardSize(cfg.BoardSize)
	engine, err := InitGame(g.size, cfg.Seed)
	if err != nil {
		// Config validation keeps sizes in range; fall back rather than crash
		logger.Error("cannot start game, using default size", "size", g.size, "error", err)
		g.size = DefaultBoardSize
		engine, _ = InitGame(g.size, cfg.Seed)
	}
	g.engine = engine

	logger.Info("game started", "preset", g.preset.ID, "size", g.size, "seed", cfg.Seed)

	g.checkScreenSize()
}

// Resize follows a terminal resize without restarting the game.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough for the board.
func (g *Game) checkScreenSize() {
	boardW, boardH := boardDims(g.size)
	g.tooSmall = g.screenW < boardW+2 || g.screenH < boardH+hudHeight+2
}

// Step advances the game by one tick. Every direction action in the frame
// is applied as its own move, in arrival order.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	moves := 0
	for _, a := range in.Actions() {
		switch {
		case a == core.ActionPause:
			if !g.engine.State().Terminal() {
				g.paused = !g.paused
			}
		case a.IsDirection():
			if g.paused || g.engine.State().Terminal() {
				continue
			}
			dir, _ := DirectionFromAction(a)
			if g.applyMove(dir) {
				moves++
			}
		}
	}

	g.animation.advance()

	return core.StepResult{State: g.State(), Moves: moves}
}

// applyMove runs one engine move and starts its animation.
// Returns true if the board changed.
func (g *Game) applyMove(dir Direction) bool {
	// A new move cuts the running animation short
	g.animation.stop()

	res, err := g.engine.Move(dir)
	if err != nil {
		logger.Error("move rejected", "direction", dir, "error", err)
		return false
	}
	g.lastMove = res

	if !res.Changed {
		logger.Debug("move had no effect", "direction", dir)
		return false
	}

	logger.Debug("move",
		"direction", dir,
		"delta", res.ScoreDelta,
		"merges", res.Merges,
		"score", g.engine.Score(),
		"turn", g.engine.Turn(),
	)

	if g.animate {
		g.animation.start(res.Moves, res.Spawned)
	}

	switch res.State {
	case StateWon:
		logger.Info("game won", "score", g.engine.Score(), "max_tile", g.engine.MaxTile(), "turn", g.engine.Turn())
	case StateLost:
		logger.Info("game lost", "score", g.engine.Score(), "max_tile", g.engine.MaxTile(), "turn", g.engine.Turn())
	}

	return true
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	st := g.engine.State()
	return core.GameState{
		Score:    g.engine.Score(),
		GameOver: st.Terminal(),
		Won:      st == StateWon,
		Paused:   g.paused || g.tooSmall,
	}
}

// LastMove returns the result of the most recent move attempt.
func (g *Game) LastMove() MoveResult {
	return g.lastMove
}
