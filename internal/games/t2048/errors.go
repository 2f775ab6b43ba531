package t2048

import "errors"

var (
	// ErrInvalidDirection is returned when a move names a direction other
	// than up, down, left or right. The board is left untouched.
	ErrInvalidDirection = errors.New("invalid direction")

	// ErrMalformedGrid is returned for grids that are not square, are jagged,
	// or hold a cell that is neither empty nor a power of two >= 2.
	ErrMalformedGrid = errors.New("malformed grid")

	// ErrInvalidBoardSize is returned when a board size is out of bounds.
	ErrInvalidBoardSize = errors.New("invalid board size")
)
