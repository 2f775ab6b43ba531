package t2048

// TileMove records where a tile went during one move.
// Positions are in the orientation of the grid that was moved.
type TileMove struct {
	From   Position
	To     Position
	Value  int  // Value before the move
	Merged bool // The tile was consumed by a merge landing on To
}

// CompactLeft slides every row of g to the left, merging equal neighbours.
// It returns the new grid and the sum of all merge results.
func CompactLeft(g Grid) (Grid, int, error) {
	out, gained, _, err := compactLeft(g)
	return out, gained, err
}

func compactLeft(g Grid) (Grid, int, []TileMove, error) {
	if err := g.checkShape(); err != nil {
		return nil, 0, nil, err
	}

	out := make(Grid, len(g))
	var moves []TileMove
	total := 0

	for r, row := range g {
		newRow, gained, rowMoves := compactRow(row)
		out[r] = newRow
		total += gained
		for _, m := range rowMoves {
			moves = append(moves, TileMove{
				From:   Position{Row: r, Col: m.from},
				To:     Position{Row: r, Col: m.to},
				Value:  m.value,
				Merged: m.merged,
			})
		}
	}

	return out, total, moves, nil
}

type rowMove struct {
	from, to int
	value    int
	merged   bool
}

// compactRow slides one row to the left. Merges resolve left to right and a
// tile produced by a merge is never merged again in the same pass.
func compactRow(row []int) ([]int, int, []rowMove) {
	type source struct{ col, value int }

	tiles := make([]source, 0, len(row))
	for c, v := range row {
		if v != 0 {
			tiles = append(tiles, source{col: c, value: v})
		}
	}

	out := make([]int, len(row))
	moves := make([]rowMove, 0, len(tiles))
	gained := 0
	write := 0

	for i := 0; i < len(tiles); i++ {
		cur := tiles[i]

		if i+1 < len(tiles) && tiles[i+1].value == cur.value {
			next := tiles[i+1]
			out[write] = cur.value * 2
			gained += out[write]
			moves = append(moves,
				rowMove{from: cur.col, to: write, value: cur.value, merged: true},
				rowMove{from: next.col, to: write, value: next.value, merged: true},
			)
			i++ // skip the consumed neighbour
		} else {
			out[write] = cur.value
			moves = append(moves, rowMove{from: cur.col, to: write, value: cur.value})
		}
		write++
	}

	return out, gained, moves
}

// countMerges returns how many merges a move list contains.
func countMerges(moves []TileMove) int {
	merged := 0
	for _, m := range moves {
		if m.Merged {
			merged++
		}
	}
	return merged / 2
}
