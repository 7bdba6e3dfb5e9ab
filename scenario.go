package reversi

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
)

// ConfigurationSentinel ends a stream of setup entries.
const ConfigurationSentinel = "!!!"

// Reader pulls whitespace separated tokens from a scenario stream: a board
// size, setup entries ended by the sentinel, then a single move.
type Reader struct {
	s *bufio.Scanner
}

// NewReader wraps r.
func NewReader(r io.Reader) *Reader {
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanWords)
	return &Reader{s: s}
}

func (r *Reader) token(what string) (string, error) {
	if !r.s.Scan() {
		if err := r.s.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("reading %s: %w", what, io.ErrUnexpectedEOF)
	}
	return r.s.Text(), nil
}

// ReadSize reads the board dimension.
func (r *Reader) ReadSize() (int, error) {
	tok, err := r.token("board size")
	if err != nil {
		return 0, err
	}

	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, &ParseError{Input: tok, Reason: "board size must be a number", Err: err}
	}
	if err := ValidBoardSize(n); err != nil {
		return 0, err
	}
	return n, nil
}

// ReadConfiguration reads setup entries until the sentinel.
func (r *Reader) ReadConfiguration() ([]Placement, error) {
	var entries []Placement
	for {
		tok, err := r.token("board configuration")
		if err != nil {
			return entries, err
		}
		if tok == ConfigurationSentinel {
			return entries, nil
		}

		p, err := NewMove(tok)
		if err != nil {
			return entries, err
		}
		entries = append(entries, *p)
	}
}

// ReadMove reads one move.
func (r *Reader) ReadMove() (*Move, error) {
	tok, err := r.token("move")
	if err != nil {
		return nil, err
	}
	return NewMove(tok)
}

// ReadConfiguration reads setup entries from r until the sentinel.
func ReadConfiguration(r io.Reader) ([]Placement, error) {
	return NewReader(r).ReadConfiguration()
}

// Scenario is one run of the rules: a board, its setup and the move to try.
type Scenario struct {
	Size  int
	Setup []Placement
	Move  *Move
}

// ParseScenario reads a complete scenario stream.
func ParseScenario(in io.Reader) (*Scenario, error) {
	r := NewReader(in)

	size, err := r.ReadSize()
	if err != nil {
		return nil, err
	}

	setup, err := r.ReadConfiguration()
	if err != nil {
		return nil, err
	}

	mv, err := r.ReadMove()
	if err != nil {
		return nil, err
	}

	return &Scenario{Size: size, Setup: setup, Move: mv}, nil
}

// Board builds the opening board and applies the setup entries.
func (s *Scenario) Board() (*Board, error) {
	b, err := NewBoard(s.Size)
	if err != nil {
		return nil, err
	}
	if err := b.Configure(s.Setup...); err != nil {
		return nil, fmt.Errorf("configure board: %w", err)
	}
	return b, nil
}

// Result is the outcome of playing a scenario.
type Result struct {
	Configured *Board
	Final      *Board
	Available  map[Color][]Coordinate
	Move       Move
	Valid      bool
	Reason     error
}

// Play builds the board, lists legal moves for both colors and applies the
// scenario move.
func (s *Scenario) Play(ctx context.Context) (*Result, error) {
	if s.Move == nil {
		return nil, fmt.Errorf("scenario has no move")
	}

	b, err := s.Board()
	if err != nil {
		return nil, err
	}

	available, err := b.LegalMovesByColor(ctx, White, Black)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Configured: b.Copy(),
		Available:  available,
		Move:       *s.Move,
		Reason:     b.Explain(*s.Move),
	}
	res.Valid = b.ApplyMove(*s.Move)
	res.Final = b

	return res, nil
}
