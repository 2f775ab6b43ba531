package t2048

// Rotate returns a copy of g turned clockwise by quarterTurns x 90 degrees.
// The input is never modified. Turn counts are taken modulo 4, so 0 and 4
// both return an equal copy.
func Rotate(g Grid, quarterTurns int) (Grid, error) {
	if err := g.checkShape(); err != nil {
		return nil, err
	}

	out := g.Clone()
	for range normalizeTurns(quarterTurns) {
		out = rotateOnce(out)
	}
	return out, nil
}

// rotateOnce turns a square grid 90 degrees clockwise: the left column,
// read bottom to top, becomes the top row.
func rotateOnce(g Grid) Grid {
	n := len(g)
	out := make(Grid, n)
	for r := range out {
		out[r] = make([]int, n)
		for c := range out[r] {
			out[r][c] = g[n-1-c][r]
		}
	}
	return out
}

func normalizeTurns(turns int) int {
	return ((turns % 4) + 4) % 4
}

// unrotate maps a position in a grid that was rotated clockwise by turns
// back to the matching position in the original n x n grid.
func unrotate(p Position, turns, n int) Position {
	for range normalizeTurns(turns) {
		p = Position{Row: n - 1 - p.Col, Col: p.Row}
	}
	return p
}
