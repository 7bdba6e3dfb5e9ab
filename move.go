package reversi

import (
	"fmt"
	"regexp"
	"strings"
)

// Move is a proposed placement of one disc.
type Move struct {
	Color Color
	Row   int
	Col   int

	Text string
}

// Placement is a setup entry. It has the same encoding as a Move but is
// written to the board without any rule check.
type Placement = Move

// (color)(row)(col)
var moveRegex = regexp.MustCompile(`^([A-Z])([a-z]{2})$`)

// NewMove takes in a move string such as "Bda" and returns a parsed move.
func NewMove(mv string) (*Move, error) {
	m := &Move{Text: strings.TrimSpace(mv)}
	err := m.Parse()
	return m, err
}

// Parse fills the color and coordinate from Text. Any earlier parse stored in
// the move is cleared first, so a failed parse leaves the zero move.
func (m *Move) Parse() error {
	m.Color, m.Row, m.Col = Empty, 0, 0

	if m.Text == "" {
		return fmt.Errorf("move cannot be empty")
	}

	parts := moveRegex.FindStringSubmatch(m.Text)
	if parts == nil {
		return &ParseError{Input: m.Text, Reason: "move must be a color followed by two letters"}
	}

	color, err := ParseColor(parts[1][0])
	if err != nil {
		return fmt.Errorf("invalid move %q: %w", m.Text, err)
	}

	coord, err := ParseCoordinate(parts[2])
	if err != nil {
		return fmt.Errorf("invalid move %q: %w", m.Text, err)
	}

	m.Color = color
	m.Row = coord.Row
	m.Col = coord.Col
	return nil
}

// Coordinate returns the target cell of the move.
func (m Move) Coordinate() Coordinate {
	return Coordinate{Row: m.Row, Col: m.Col}
}

func (m Move) String() string {
	return string(m.Color.Char()) + m.Coordinate().String()
}

// MarshalText encodes the move in its three character form.
func (m Move) MarshalText() ([]byte, error) {
	if !m.Color.IsPlayer() {
		return nil, fmt.Errorf("move has no color: %w", ErrNotAColor)
	}
	coord, err := m.Coordinate().MarshalText()
	if err != nil {
		return nil, err
	}
	return append([]byte{m.Color.Char()}, coord...), nil
}

// UnmarshalText parses the three character form.
func (m *Move) UnmarshalText(text []byte) error {
	m.Text = strings.TrimSpace(string(text))
	return m.Parse()
}
