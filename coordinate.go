package reversi

import (
	"fmt"
	"regexp"
)

// Board sizes accepted at the letter boundary. The board itself only needs
// room for the four opening discs.
const (
	MinBoardSize = 4
	MaxBoardSize = 26
)

// Coordinate is a zero based (row, column) pair.
type Coordinate struct {
	Row int
	Col int
}

// (row)(col)
var coordinateRegex = regexp.MustCompile(`^([a-z])([a-z])$`)

// ParseCoordinate decodes two lowercase letters, row first, where 'a' is 0.
func ParseCoordinate(s string) (Coordinate, error) {
	parts := coordinateRegex.FindStringSubmatch(s)
	if parts == nil {
		return Coordinate{}, &ParseError{Input: s, Reason: "coordinate must be two letters a-z"}
	}

	return Coordinate{
		Row: int(parts[1][0] - 'a'),
		Col: int(parts[2][0] - 'a'),
	}, nil
}

// Letter returns the boundary letter for a row or column index.
func Letter(i int) byte {
	return byte('a' + i)
}

// String encodes the coordinate as row letter then column letter. Indexes
// that have no letter are printed numerically.
func (c Coordinate) String() string {
	if c.Row < 0 || c.Row >= MaxBoardSize || c.Col < 0 || c.Col >= MaxBoardSize {
		return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
	}
	return string([]byte{Letter(c.Row), Letter(c.Col)})
}

// MarshalText encodes the coordinate as two letters.
func (c Coordinate) MarshalText() ([]byte, error) {
	if c.Row < 0 || c.Row >= MaxBoardSize || c.Col < 0 || c.Col >= MaxBoardSize {
		return nil, &OutOfBoundsError{Row: c.Row, Col: c.Col, Size: MaxBoardSize}
	}
	return []byte(c.String()), nil
}

// UnmarshalText decodes two letters.
func (c *Coordinate) UnmarshalText(text []byte) error {
	parsed, err := ParseCoordinate(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ValidBoardSize reports whether n can be written with letter coordinates.
func ValidBoardSize(n int) error {
	if n < MinBoardSize || n > MaxBoardSize {
		return fmt.Errorf("board size %d is outside %d-%d", n, MinBoardSize, MaxBoardSize)
	}
	return nil
}
