package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/core"
)

type stubGame struct {
	id    string
	title string
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return g.title }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }

func stub(id, title string) Factory {
	return func() Game { return &stubGame{id: id, title: title} }
}

func TestRegistryListSortedByID(t *testing.T) {
	r := New()
	r.Register("b", stub("b", "Bee"))
	r.Register("a", stub("a", "Ay"))

	got := r.List()
	if len(got) != 2 {
		t.Fatalf("List() returned %d games, want 2", len(got))
	}
	if got[0].ID != "a" || got[0].Title != "Ay" {
		t.Errorf("List()[0] = %+v, want {a Ay}", got[0])
	}
	if got[1].ID != "b" {
		t.Errorf("List()[1].ID = %q, want b", got[1].ID)
	}
}

func TestRegistryCreate(t *testing.T) {
	r := New()
	r.Register("x", stub("x", "Ex"))

	g, err := r.Create("x")
	if err != nil {
		t.Fatalf("Create(x) failed: %v", err)
	}
	if g.ID() != "x" {
		t.Errorf("Create(x).ID() = %q, want x", g.ID())
	}

	if _, err := r.Create("missing"); err == nil || !strings.Contains(err.Error(), "missing") {
		t.Errorf("Create(missing) error = %v, want unknown game error", err)
	}

	if !r.Exists("x") || r.Exists("missing") {
		t.Error("Exists() disagrees with registered games")
	}
}

func TestRegistryDuplicatePanics(t *testing.T) {
	r := New()
	r.Register("dup", stub("dup", "Dup"))

	defer func() {
		if recover() == nil {
			t.Error("registering a duplicate ID should panic")
		}
	}()
	r.Register("dup", stub("dup", "Dup"))
}
