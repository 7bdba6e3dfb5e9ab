package reversi

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// IsCellPlayable reports whether placing c at (row, col) captures in at least
// one direction. It does not look at whether the cell is empty.
func (b *Board) IsCellPlayable(c Color, row, col int) bool {
	for _, d := range Directions {
		if b.ScanDirection(row, col, c, d) {
			return true
		}
	}
	return false
}

// LegalMoves returns every empty cell where c can play, in row-major order.
func (b *Board) LegalMoves(c Color) []Coordinate {
	var moves []Coordinate
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			if b.At(row, col) != Empty {
				continue
			}
			if b.IsCellPlayable(c, row, col) {
				moves = append(moves, Coordinate{Row: row, Col: col})
			}
		}
	}
	return moves
}

// LegalMovesByColor computes LegalMoves for several colors at once. The board
// must not be mutated until it returns.
func (b *Board) LegalMovesByColor(ctx context.Context, colors ...Color) (map[Color][]Coordinate, error) {
	results := make([][]Coordinate, len(colors))

	g, ctx := errgroup.WithContext(ctx)
	for i, c := range colors {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = b.LegalMoves(c)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[Color][]Coordinate, len(colors))
	for i, c := range colors {
		out[c] = results[i]
	}
	return out, nil
}

// ApplyMove plays m if it is legal and reports whether it was. Captures are
// flipped direction by direction and the origin is set last. An illegal move
// leaves the board untouched, since flipping only starts once some direction
// has proven legal.
func (b *Board) ApplyMove(m Move) bool {
	if !b.InBounds(m.Row, m.Col) || b.At(m.Row, m.Col) != Empty {
		return false
	}

	legal := false
	for _, d := range Directions {
		if b.ScanDirection(m.Row, m.Col, m.Color, d) {
			b.FlipDirection(m.Row, m.Col, m.Color, d)
			legal = true
		}
	}

	if legal {
		b.set(m.Row, m.Col, m.Color)
	}
	return legal
}

// Explain returns why m would be rejected by ApplyMove, or nil if it would be
// accepted. The board is not modified.
func (b *Board) Explain(m Move) error {
	if !m.Color.IsPlayer() {
		return ErrNotAColor
	}
	if !b.InBounds(m.Row, m.Col) {
		return &OutOfBoundsError{Row: m.Row, Col: m.Col, Size: b.size}
	}
	if b.At(m.Row, m.Col) != Empty {
		return ErrOccupied
	}
	if !b.IsCellPlayable(m.Color, m.Row, m.Col) {
		return ErrNoCapture
	}
	return nil
}
