package t2048

import "fmt"

// MoveResult is everything a move produced. Grid is a copy the caller may
// keep; Moves and Spawned let a renderer animate the transition.
type MoveResult struct {
	Grid       Grid
	Direction  Direction
	ScoreDelta int
	Changed    bool
	State      State
	Spawned    *Tile      // nil unless a tile was spawned
	Moves      []TileMove // empty when nothing changed
	Merges     int
}

// Engine owns one game: the grid, the score and the spawn source.
// It is not safe for concurrent use; callers serialise Move.
type Engine struct {
	grid    Grid
	score   int
	turn    int
	state   State
	spawner *Spawner
}

// InitGame builds an empty size x size grid and spawns two tiles.
func InitGame(size int, seed int64) (*Engine, error) {
	grid, err := NewGrid(size)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		grid:    grid,
		spawner: NewSpawner(seed),
	}
	e.spawner.Spawn(e.grid)
	e.spawner.Spawn(e.grid)
	e.state = Evaluate(e.grid)

	return e, nil
}

// NewEngineFromGrid starts a game from an existing grid without spawning.
func NewEngineFromGrid(g Grid, seed int64) (*Engine, error) {
	grid, err := GridFromRows(g)
	if err != nil {
		return nil, err
	}
	if n := grid.Size(); n < MinBoardSize || n > MaxBoardSize {
		return nil, fmt.Errorf("t2048: size %d outside [%d, %d]: %w",
			n, MinBoardSize, MaxBoardSize, ErrInvalidBoardSize)
	}

	return &Engine{
		grid:    grid,
		state:   Evaluate(grid),
		spawner: NewSpawner(seed),
	}, nil
}

// Slide computes a move without committing it: rotate so the move becomes a
// move to the left, compact, and rotate back. Tile moves are reported in
// the orientation of g.
func Slide(g Grid, dir Direction) (Grid, int, []TileMove, error) {
	if !dir.Valid() {
		return nil, 0, nil, fmt.Errorf("t2048: %v: %w", dir, ErrInvalidDirection)
	}

	turns := dir.quarterTurns()

	rotated, err := Rotate(g, turns)
	if err != nil {
		return nil, 0, nil, err
	}

	compacted, gained, moves, err := compactLeft(rotated)
	if err != nil {
		return nil, 0, nil, err
	}

	result, err := Rotate(compacted, (4-turns)%4)
	if err != nil {
		return nil, 0, nil, err
	}

	n := g.Size()
	for i := range moves {
		moves[i].From = unrotate(moves[i].From, turns, n)
		moves[i].To = unrotate(moves[i].To, turns, n)
	}

	return result, gained, moves, nil
}

// Move slides the board in dir. If anything changed, the score grows by the
// merge total and one tile is spawned. The state is re-evaluated either way.
func (e *Engine) Move(dir Direction) (MoveResult, error) {
	next, gained, moves, err := Slide(e.grid, dir)
	if err != nil {
		return MoveResult{}, err
	}

	res := MoveResult{Direction: dir}

	if !next.Equal(e.grid) {
		e.grid = next
		e.score += gained
		e.turn++

		res.Changed = true
		res.ScoreDelta = gained
		res.Moves = moves
		res.Merges = countMerges(moves)

		if tile, ok := e.spawner.Spawn(e.grid); ok {
			res.Spawned = &tile
		}
	}

	e.state = Evaluate(e.grid)
	res.State = e.state
	res.Grid = e.grid.Clone()

	return res, nil
}

// Grid returns a copy of the current board.
func (e *Engine) Grid() Grid {
	return e.grid.Clone()
}

// Score returns the accumulated merge total.
func (e *Engine) Score() int {
	return e.score
}

// State returns the state computed after the last move.
func (e *Engine) State() State {
	return e.state
}

// Size returns the board dimension.
func (e *Engine) Size() int {
	return e.grid.Size()
}

// Turn returns the number of moves that changed the board.
func (e *Engine) Turn() int {
	return e.turn
}

// MaxTile returns the highest tile on the board.
func (e *Engine) MaxTile() int {
	return e.grid.MaxTile()
}
