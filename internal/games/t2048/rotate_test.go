package t2048

import (
	"errors"
	"testing"
)

func TestRotateClockwise(t *testing.T) {
	g := Grid{
		{2, 4, 8},
		{16, 32, 64},
		{128, 256, 512},
	}

	want := Grid{
		{128, 16, 2},
		{256, 32, 4},
		{512, 64, 8},
	}

	got, err := Rotate(g, 1)
	if err != nil {
		t.Fatalf("Rotate failed: %v", err)
	}
	if !got.Equal(want) {
		t.Errorf("Rotate(g, 1) =\n%v\nwant\n%v", got, want)
	}
}

func TestRotateOrderFour(t *testing.T) {
	g := Grid{
		{2, 0, 0, 4},
		{0, 8, 0, 0},
		{0, 0, 16, 0},
		{32, 0, 0, 64},
	}
	orig := g.Clone()

	for turns := -4; turns <= 8; turns++ {
		once, err := Rotate(g, turns)
		if err != nil {
			t.Fatalf("Rotate(g, %d) failed: %v", turns, err)
		}
		back, err := Rotate(once, 4-normalizeTurns(turns))
		if err != nil {
			t.Fatalf("Rotate back failed: %v", err)
		}
		if !back.Equal(orig) {
			t.Errorf("rotating by %d and back changed the grid:\n%v", turns, back)
		}
	}

	if !g.Equal(orig) {
		t.Error("Rotate must not modify its input")
	}
}

func TestRotateFourQuarterTurns(t *testing.T) {
	g := Grid{
		{2, 4, 0},
		{0, 8, 16},
		{32, 0, 64},
	}

	out := g
	for range 4 {
		var err error
		out, err = Rotate(out, 1)
		if err != nil {
			t.Fatalf("Rotate failed: %v", err)
		}
	}
	if !out.Equal(g) {
		t.Errorf("four quarter turns =\n%v\nwant\n%v", out, g)
	}
}

func TestRotateZeroIsCopy(t *testing.T) {
	g := Grid{{2, 0}, {0, 4}}

	got, err := Rotate(g, 0)
	if err != nil {
		t.Fatalf("Rotate failed: %v", err)
	}
	got[0][0] = 8
	if g[0][0] != 2 {
		t.Error("Rotate(g, 0) should return a copy")
	}
}

func TestRotateMalformed(t *testing.T) {
	if _, err := Rotate(Grid{{2, 0}, {0}}, 1); !errors.Is(err, ErrMalformedGrid) {
		t.Errorf("Rotate(jagged) error = %v, want ErrMalformedGrid", err)
	}
}

func TestUnrotateInvertsRotate(t *testing.T) {
	const n = 4
	g, _ := NewGrid(n)
	g[1][3] = 2

	for turns := range 4 {
		rotated, _ := Rotate(g, turns)
		var at Position
		for _, tile := range rotated.Tiles() {
			at = tile.Pos
		}
		if got := unrotate(at, turns, n); got != (Position{Row: 1, Col: 3}) {
			t.Errorf("unrotate(%v, %d) = %v, want {1 3}", at, turns, got)
		}
	}
}
