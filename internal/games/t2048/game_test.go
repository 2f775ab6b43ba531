package t2048

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		TickRate:  60,
		Seed:      42,
		BoardSize: DefaultBoardSize,
		Colors:    true,
	}
}

func frame(actions ...core.Action) core.InputFrame {
	var in core.InputFrame
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// withGrid replaces the game board with a fixed grid.
func withGrid(t *testing.T, g *Game, grid Grid) {
	t.Helper()
	e, err := NewEngineFromGrid(grid, 7)
	if err != nil {
		t.Fatalf("NewEngineFromGrid failed: %v", err)
	}
	g.engine = e
	g.size = grid.Size()
}

func TestPresetsRegistered(t *testing.T) {
	for _, p := range Presets {
		if !registry.Exists(p.ID) {
			t.Errorf("preset %q is not registered", p.ID)
		}
	}
}

func TestResetUsesPresetSize(t *testing.T) {
	big, _ := PresetByID("2048-5x5")
	g := New(big)
	g.Reset(testConfig())
	if snap := g.Snapshot(); snap.Size != 5 || snap.Grid.TileCount() != 2 {
		t.Errorf("5x5 preset snapshot = %+v, want size 5 with 2 tiles", snap)
	}

	cfg := testConfig()
	cfg.BoardSize = 3
	classic := NewClassic()
	classic.Reset(cfg)
	if classic.Snapshot().Size != 3 {
		t.Errorf("classic preset size = %d, want configured 3", classic.Snapshot().Size)
	}
}

func TestDeterministicReplay(t *testing.T) {
	inputs := []core.Action{
		core.ActionLeft, core.ActionUp, core.ActionRight, core.ActionDown,
		core.ActionLeft, core.ActionLeft, core.ActionUp, core.ActionRight,
	}

	play := func() Snapshot {
		g := NewClassic()
		g.Reset(testConfig())
		for _, a := range inputs {
			g.Step(frame(a))
		}
		return g.Snapshot()
	}

	a, b := play(), play()
	if !a.Grid.Equal(b.Grid) || a.Score != b.Score || a.Turn != b.Turn {
		t.Errorf("same seed and input should replay identically:\n%+v\nvs\n%+v", a, b)
	}
}

func TestStepAppliesEveryDirectionInOrder(t *testing.T) {
	g := NewClassic()
	g.Reset(testConfig())
	withGrid(t, g, Grid{
		{2, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	res := g.Step(frame(core.ActionRight, core.ActionLeft))
	if res.Moves != 2 {
		t.Errorf("Step moves = %d, want 2", res.Moves)
	}
	if turn := g.Snapshot().Turn; turn != 2 {
		t.Errorf("turn = %d, want 2", turn)
	}
	if g.LastMove().Direction != DirLeft {
		t.Errorf("last move = %v, want left", g.LastMove().Direction)
	}
}

func TestStepNoopMove(t *testing.T) {
	g := NewClassic()
	g.Reset(testConfig())
	withGrid(t, g, Grid{
		{4, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	res := g.Step(frame(core.ActionLeft))
	if res.Moves != 0 {
		t.Errorf("Step moves = %d, want 0", res.Moves)
	}
	if snap := g.Snapshot(); snap.Grid.TileCount() != 2 {
		t.Errorf("a no-op move should not spawn, board:\n%v", snap.Grid)
	}
}

func TestPauseBlocksMoves(t *testing.T) {
	g := NewClassic()
	g.Reset(testConfig())

	g.Step(frame(core.ActionPause, core.ActionLeft, core.ActionRight))
	snap := g.Snapshot()
	if snap.State != StatePaused {
		t.Errorf("state = %s, want %s", snap.State, StatePaused)
	}
	if snap.Turn != 0 {
		t.Errorf("moves applied while paused, turn = %d", snap.Turn)
	}
	if !g.State().Paused {
		t.Error("State().Paused should be true")
	}

	g.Step(frame(core.ActionPause))
	if g.Snapshot().State != StatePlaying {
		t.Error("second pause should resume")
	}
}

func TestWinEndsGame(t *testing.T) {
	g := NewClassic()
	g.Reset(testConfig())
	withGrid(t, g, Grid{
		{1024, 1024, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	g.Step(frame(core.ActionLeft))
	st := g.State()
	if !st.GameOver || !st.Won {
		t.Fatalf("State() = %+v, want won game over", st)
	}
	if g.Snapshot().State != StateWin {
		t.Errorf("snapshot state = %s, want %s", g.Snapshot().State, StateWin)
	}

	// Further input is ignored
	g.Step(frame(core.ActionRight, core.ActionPause))
	if g.Snapshot().Turn != 1 || g.State().Paused {
		t.Error("a finished game should ignore moves and pause")
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "YOU WIN!") {
		t.Errorf("win overlay missing:\n%s", screen.String())
	}
}

func TestLossOverlay(t *testing.T) {
	g := NewClassic()
	g.Reset(testConfig())
	withGrid(t, g, Grid{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 4, 8},
		{16, 32, 64, 128},
	})

	if g.Snapshot().State != StateGameOver {
		t.Fatalf("snapshot state = %s, want %s", g.Snapshot().State, StateGameOver)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "GAME OVER") || !strings.Contains(out, "Max tile: 1024") {
		t.Errorf("loss overlay missing:\n%s", out)
	}
}

func TestRenderBoard(t *testing.T) {
	g := NewClassic()
	g.Reset(testConfig())
	withGrid(t, g, Grid{
		{2, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 128, 0},
		{0, 0, 0, 0},
	})

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"Score: 0", "Max: 128", "┌", "┘", "128"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered board missing %q:\n%s", want, out)
		}
	}
}

func TestTooSmallWindow(t *testing.T) {
	cfg := testConfig()
	cfg.ScreenW = 20
	cfg.ScreenH = 10

	g := NewClassic()
	g.Reset(cfg)

	res := g.Step(frame(core.ActionLeft))
	if res.Moves != 0 || g.Snapshot().State != StatePausedSmall {
		t.Errorf("small window should pause the game, snapshot = %+v", g.Snapshot())
	}

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("too small message missing")
	}

	g.Resize(80, 24)
	if g.Snapshot().State != StatePlaying {
		t.Error("resizing up should resume the game")
	}
}

func TestAnimationRunsAndFinishes(t *testing.T) {
	cfg := testConfig()
	cfg.Animate = true

	g := NewClassic()
	g.Reset(cfg)
	withGrid(t, g, Grid{
		{0, 0, 0, 2},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	g.Step(frame(core.ActionLeft))
	if g.animation.phase != phaseSlide {
		t.Fatalf("phase = %v, want slide", g.animation.phase)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	for range slideAnimationTicks + popAnimationTicks {
		g.Step(core.InputFrame{})
	}
	if g.animation.active() {
		t.Error("animation should be finished")
	}
}

func TestNewMoveCutsAnimation(t *testing.T) {
	cfg := testConfig()
	cfg.Animate = true

	g := NewClassic()
	g.Reset(cfg)
	withGrid(t, g, Grid{
		{0, 0, 0, 2},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	g.Step(frame(core.ActionLeft))
	g.Step(core.InputFrame{})
	g.Step(frame(core.ActionRight))

	if g.animation.ticks != 1 {
		t.Errorf("animation ticks = %d, want a fresh animation", g.animation.ticks)
	}
	if g.Snapshot().Turn != 2 {
		t.Errorf("turn = %d, want 2", g.Snapshot().Turn)
	}
}

func TestEaseOutQuad(t *testing.T) {
	if easeOutQuad(0) != 0 || easeOutQuad(1) != 1 {
		t.Error("easeOutQuad should map 0 to 0 and 1 to 1")
	}
	if easeOutQuad(0.5) <= 0.5 {
		t.Error("easeOutQuad should run ahead of linear time")
	}
}
