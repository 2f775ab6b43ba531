package t2048

import (
	"fmt"
	"strconv"
	"strings"
)

// Board limits and the winning tile.
const (
	DefaultBoardSize = 4
	MinBoardSize     = 2
	MaxBoardSize     = 8
	WinTile          = 2048
)

// Grid is an N x N board stored row-major. A zero cell is empty, any other
// cell holds a tile of that value.
type Grid [][]int

// Position addresses a cell by row and column.
type Position struct {
	Row int
	Col int
}

// Tile is a non-empty cell with its position.
type Tile struct {
	Value int
	Pos   Position
}

// NewGrid returns an empty size x size grid.
func NewGrid(size int) (Grid, error) {
	if size < MinBoardSize || size > MaxBoardSize {
		return nil, fmt.Errorf("t2048: size %d outside [%d, %d]: %w",
			size, MinBoardSize, MaxBoardSize, ErrInvalidBoardSize)
	}
	g := make(Grid, size)
	for r := range g {
		g[r] = make([]int, size)
	}
	return g, nil
}

// GridFromRows copies rows into a new grid after checking its shape and
// tile values.
func GridFromRows(rows [][]int) (Grid, error) {
	g := Grid(rows)
	if err := g.checkShape(); err != nil {
		return nil, err
	}
	if err := g.checkValues(); err != nil {
		return nil, err
	}
	return g.Clone(), nil
}

// checkShape fails unless the grid is square and not jagged.
func (g Grid) checkShape() error {
	n := len(g)
	if n == 0 {
		return fmt.Errorf("t2048: empty grid: %w", ErrMalformedGrid)
	}
	for r, row := range g {
		if len(row) != n {
			return fmt.Errorf("t2048: row %d has %d cells, want %d: %w",
				r, len(row), n, ErrMalformedGrid)
		}
	}
	return nil
}

// checkValues fails on any cell that is not empty or a power of two >= 2.
func (g Grid) checkValues() error {
	for r, row := range g {
		for c, v := range row {
			if v != 0 && !isTileValue(v) {
				return fmt.Errorf("t2048: cell (%d, %d) holds %d: %w", r, c, v, ErrMalformedGrid)
			}
		}
	}
	return nil
}

// isTileValue reports whether v is a power of two >= 2.
func isTileValue(v int) bool {
	return v >= 2 && v&(v-1) == 0
}

// Size returns the board dimension N.
func (g Grid) Size() int {
	return len(g)
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for r, row := range g {
		out[r] = make([]int, len(row))
		copy(out[r], row)
	}
	return out
}

// Equal compares two grids cell by cell.
func (g Grid) Equal(other Grid) bool {
	if len(g) != len(other) {
		return false
	}
	for r := range g {
		if len(g[r]) != len(other[r]) {
			return false
		}
		for c := range g[r] {
			if g[r][c] != other[r][c] {
				return false
			}
		}
	}
	return true
}

// EmptyCells returns the positions of all empty cells in row-major order.
func (g Grid) EmptyCells() []Position {
	var cells []Position
	for r, row := range g {
		for c, v := range row {
			if v == 0 {
				cells = append(cells, Position{Row: r, Col: c})
			}
		}
	}
	return cells
}

// HasEmptyCell returns true if there's at least one empty cell.
func (g Grid) HasEmptyCell() bool {
	for _, row := range g {
		for _, v := range row {
			if v == 0 {
				return true
			}
		}
	}
	return false
}

// Tiles returns every non-empty cell in row-major order.
func (g Grid) Tiles() []Tile {
	var tiles []Tile
	for r, row := range g {
		for c, v := range row {
			if v != 0 {
				tiles = append(tiles, Tile{Value: v, Pos: Position{Row: r, Col: c}})
			}
		}
	}
	return tiles
}

// TileCount returns the number of non-empty cells.
func (g Grid) TileCount() int {
	count := 0
	for _, row := range g {
		for _, v := range row {
			if v != 0 {
				count++
			}
		}
	}
	return count
}

// MaxTile returns the maximum tile value on the board.
func (g Grid) MaxTile() int {
	maxVal := 0
	for _, row := range g {
		for _, v := range row {
			maxVal = max(maxVal, v)
		}
	}
	return maxVal
}

// String renders the grid as right-aligned columns with "." for empty cells.
func (g Grid) String() string {
	width := max(len(strconv.Itoa(g.MaxTile())), 1)

	var b strings.Builder
	for r, row := range g {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c, v := range row {
			if c > 0 {
				b.WriteByte(' ')
			}
			cell := "."
			if v != 0 {
				cell = strconv.Itoa(v)
			}
			b.WriteString(strings.Repeat(" ", width-len(cell)))
			b.WriteString(cell)
		}
	}
	return b.String()
}

// ParseGrid reads a grid written as rows separated by "/" or newlines, with
// cells separated by commas or spaces. "0", "." and "_" are empty cells.
//
//	ParseGrid("2,2,4,0/0,0,0,0/0,0,0,0/0,0,0,0")
func ParseGrid(s string) (Grid, error) {
	s = strings.ReplaceAll(s, "\n", "/")
	var rows [][]int
	for _, line := range strings.Split(s, "/") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
		row := make([]int, 0, len(fields))
		for _, f := range fields {
			if f == "." || f == "_" {
				row = append(row, 0)
				continue
			}
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("t2048: cell %q: %w", f, ErrMalformedGrid)
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}
	return GridFromRows(rows)
}
