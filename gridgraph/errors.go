package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates a non-positive size or an input without rows.
	ErrEmptyGrid = errors.New("gridgraph: grid size must be positive")
	// ErrNonSquare indicates ragged rows or a row count that differs from the row length.
	ErrNonSquare = errors.New("gridgraph: grid must be square")
	// ErrShortBlocked indicates a blocked-flag slice shorter than n².
	ErrShortBlocked = errors.New("gridgraph: blocked flags shorter than n*n")
	// ErrBadCell indicates an unrecognized character in a text row.
	ErrBadCell = errors.New("gridgraph: unrecognized cell character")
)
