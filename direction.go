package reversi

// Direction is a unit step across the board.
type Direction struct {
	DRow int
	DCol int
}

// Directions holds the eight compass directions in evaluation order.
var Directions = []Direction{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// ScanDirection reports whether placing c at (row, col) sandwiches at least
// one opposing disc along d. The origin cell itself is not examined.
func (b *Board) ScanDirection(row, col int, c Color, d Direction) bool {
	r, k := row+d.DRow, col+d.DCol
	found := false

	for b.InBounds(r, k) {
		switch cell := b.At(r, k); {
		case cell == Empty:
			return false
		case cell == c:
			return found
		default:
			found = true
		}
		r += d.DRow
		k += d.DCol
	}

	return false
}

// FlipDirection paints cells along d with c until it reaches a cell that
// already holds c or leaves the board. Only call it for a direction that
// ScanDirection accepted; nothing is re-checked here.
func (b *Board) FlipDirection(row, col int, c Color, d Direction) {
	r, k := row+d.DRow, col+d.DCol
	for b.InBounds(r, k) && b.At(r, k) != c {
		b.set(r, k, c)
		r += d.DRow
		k += d.DCol
	}
}

// Captures lists the cells FlipDirection would paint. It returns nil when
// ScanDirection rejects the direction.
func (b *Board) Captures(row, col int, c Color, d Direction) []Coordinate {
	if !b.ScanDirection(row, col, c, d) {
		return nil
	}

	var out []Coordinate
	for r, k := row+d.DRow, col+d.DCol; b.At(r, k) != c; r, k = r+d.DRow, k+d.DCol {
		out = append(out, Coordinate{Row: r, Col: k})
	}
	return out
}
