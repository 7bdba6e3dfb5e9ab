package reversi

import (
	"fmt"
	"strings"
)

// Board is a square grid of cells. Its size never changes after NewBoard.
type Board struct {
	size  int
	cells []Color
}

// InBounds reports whether (row, col) lies on an n×n board.
func InBounds(n, row, col int) bool {
	return row >= 0 && row < n && col >= 0 && col < n
}

// NewBoard returns an n×n board with the four center cells in the opening
// pattern: White on the main diagonal, Black on the other.
func NewBoard(n int) (*Board, error) {
	if n < 2 {
		return nil, fmt.Errorf("board size must be at least 2, got %d", n)
	}

	b := &Board{
		size:  n,
		cells: make([]Color, n*n),
	}

	mid := n / 2
	b.set(mid-1, mid-1, White)
	b.set(mid, mid-1, Black)
	b.set(mid-1, mid, Black)
	b.set(mid, mid, White)

	return b, nil
}

// Size returns the side length of the board.
func (b *Board) Size() int {
	return b.size
}

// InBounds reports whether (row, col) lies on the board.
func (b *Board) InBounds(row, col int) bool {
	return InBounds(b.size, row, col)
}

// At returns the color of a cell. Out of range cells read as Empty.
func (b *Board) At(row, col int) Color {
	if !b.InBounds(row, col) {
		return Empty
	}
	return b.cells[row*b.size+col]
}

func (b *Board) set(row, col int, c Color) {
	b.cells[row*b.size+col] = c
}

// Configure overwrites cells for scenario setup. It performs no rule check
// and is not a way to play a move; use ApplyMove for that. Entries are
// written in order and the first out of range entry stops the setup with an
// error.
func (b *Board) Configure(entries ...Placement) error {
	for _, e := range entries {
		if !b.InBounds(e.Row, e.Col) {
			return &OutOfBoundsError{Row: e.Row, Col: e.Col, Size: b.size}
		}
		if !e.Color.IsPlayer() {
			return fmt.Errorf("setup entry %q: %w", e.Text, ErrNotAColor)
		}
		b.set(e.Row, e.Col, e.Color)
	}
	return nil
}

// Copy returns an independent board with the same cells.
func (b *Board) Copy() *Board {
	cells := make([]Color, len(b.cells))
	copy(cells, b.cells)
	return &Board{size: b.size, cells: cells}
}

// Equal reports whether two boards have the same size and cells.
func (b *Board) Equal(o *Board) bool {
	if b.size != o.size {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// Count returns the number of cells holding c.
func (b *Board) Count(c Color) int {
	n := 0
	for _, cell := range b.cells {
		if cell == c {
			n++
		}
	}
	return n
}

// Rows returns each row as a string of color characters.
func (b *Board) Rows() []string {
	rows := make([]string, b.size)
	line := make([]byte, b.size)
	for i := 0; i < b.size; i++ {
		for j := 0; j < b.size; j++ {
			line[j] = b.At(i, j).Char()
		}
		rows[i] = string(line)
	}
	return rows
}

// String renders the board with column letters across the top and a row
// letter before each row.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("  ")
	for i := 0; i < b.size; i++ {
		sb.WriteByte(Letter(i))
	}
	sb.WriteByte('\n')

	for i, row := range b.Rows() {
		sb.WriteByte(Letter(i))
		sb.WriteByte(' ')
		sb.WriteString(row)
		sb.WriteByte('\n')
	}
	return sb.String()
}
