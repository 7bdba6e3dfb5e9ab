package reversi

import "fmt"

// Color is the state of a single board cell.
type Color int8

// Cell states. Empty is never a valid color for a move.
const (
	Empty Color = iota
	White
	Black
)

// Characters used for colors at the text boundary.
const (
	CharEmpty byte = 'U'
	CharWhite byte = 'W'
	CharBlack byte = 'B'
)

var colorNames = [...]string{"Empty", "White", "Black"}

// ParseColor converts a color character into a Color. The empty marker 'U'
// is rejected.
func ParseColor(ch byte) (Color, error) {
	switch ch {
	case CharWhite:
		return White, nil
	case CharBlack:
		return Black, nil
	}
	return Empty, &ParseError{Input: string(ch), Reason: "not a color", Err: ErrNotAColor}
}

// Char returns the single character encoding of c.
func (c Color) Char() byte {
	switch c {
	case White:
		return CharWhite
	case Black:
		return CharBlack
	}
	return CharEmpty
}

// Opponent returns the other player's color. Empty has no opponent.
func (c Color) Opponent() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	}
	return Empty
}

// IsPlayer reports whether c is White or Black.
func (c Color) IsPlayer() bool {
	return c == White || c == Black
}

func (c Color) String() string {
	if c < Empty || c > Black {
		return fmt.Sprintf("Color(%d)", int8(c))
	}
	return colorNames[c]
}

// MarshalText encodes the color as its character.
func (c Color) MarshalText() ([]byte, error) {
	return []byte{c.Char()}, nil
}

// UnmarshalText accepts "W" or "B".
func (c *Color) UnmarshalText(text []byte) error {
	if len(text) != 1 {
		return &ParseError{Input: string(text), Reason: "color must be one character"}
	}
	parsed, err := ParseColor(text[0])
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
