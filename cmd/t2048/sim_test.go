package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

func TestSimulate(t *testing.T) {
	grid, err := t2048.ParseGrid("2,2,4,0/0,0,0,0/0,0,0,0/0,0,0,0")
	if err != nil {
		t.Fatalf("ParseGrid failed: %v", err)
	}
	engine, err := t2048.NewEngineFromGrid(grid, 1)
	if err != nil {
		t.Fatalf("NewEngineFromGrid failed: %v", err)
	}

	var out bytes.Buffer
	err = simulate(&out, log.New(io.Discard), engine, 1, []t2048.Direction{t2048.DirLeft})
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"seed 1, 4x4 board",
		"move 1: left changed=true delta=+4 score=4 state=ongoing",
		"final score 4",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestSimulateStopsWhenWon(t *testing.T) {
	grid, err := t2048.ParseGrid("1024,1024/0,0")
	if err != nil {
		t.Fatalf("ParseGrid failed: %v", err)
	}
	engine, err := t2048.NewEngineFromGrid(grid, 1)
	if err != nil {
		t.Fatalf("NewEngineFromGrid failed: %v", err)
	}

	var out bytes.Buffer
	dirs := []t2048.Direction{t2048.DirLeft, t2048.DirRight, t2048.DirUp}
	if err := simulate(&out, log.New(io.Discard), engine, 1, dirs); err != nil {
		t.Fatalf("simulate failed: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "game won, 2 moves skipped") {
		t.Errorf("simulation should stop after the win:\n%s", got)
	}
	if engine.Turn() != 1 {
		t.Errorf("turn = %d, want 1", engine.Turn())
	}
}

func TestPrintPresets(t *testing.T) {
	var out bytes.Buffer
	printPresets(&out, 5)

	got := out.String()
	for _, want := range []string{"2048-3x3", "Tiny 3x3", "Classic 5x5", "2048-6x6"} {
		if !strings.Contains(got, want) {
			t.Errorf("preset list missing %q:\n%s", want, got)
		}
	}
}
