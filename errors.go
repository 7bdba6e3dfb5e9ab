package reversi

import (
	"errors"
	"fmt"
)

// Reasons a move is illegal. ApplyMove only reports a boolean; Explain
// returns one of these.
var (
	ErrOutOfBounds = errors.New("coordinate is outside the board")
	ErrOccupied    = errors.New("cell is already occupied")
	ErrNoCapture   = errors.New("move does not capture in any direction")
	ErrNotAColor   = errors.New("color must be W or B")
)

// OutOfBoundsError describes a coordinate that does not fit an n×n board.
type OutOfBoundsError struct {
	Row, Col, Size int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("position (%d, %d) is out of range for a %dx%d board", e.Row, e.Col, e.Size, e.Size)
}

// Unwrap lets callers match with errors.Is(err, ErrOutOfBounds).
func (e *OutOfBoundsError) Unwrap() error {
	return ErrOutOfBounds
}

// ParseError is returned for malformed text at the input boundary.
type ParseError struct {
	Input  string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q: %s", e.Input, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
