package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/icco/gutil/logging"
	"github.com/icco/reversi"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

var opts struct {
	Filename flags.Filename `short:"f" long:"filename" description:"Scenario file to read instead of stdin"`
	Explain  bool           `short:"e" long:"explain" description:"Print why an invalid move was rejected"`
}

var log = logging.Must(logging.NewLogger(reversi.Service))

func main() {
	if _, err := flags.Parse(&opts); err != nil {
		if flags.WroteHelp(err) {
			os.Exit(0)
		}
		os.Exit(1)
	}

	in := io.Reader(os.Stdin)
	if opts.Filename != "" {
		f, err := os.Open(string(opts.Filename))
		if err != nil {
			log.Fatalw("could not open scenario", "filename", opts.Filename, zap.Error(err))
		}
		defer f.Close()
		in = f
	}

	if err := run(context.Background(), in, os.Stdout, opts.Explain); err != nil {
		log.Errorw("could not play scenario", zap.Error(err))
		os.Exit(1)
	}
}

// run reads a board size, a setup and one move from in, writing the same
// prompts and board dumps as an interactive session.
func run(ctx context.Context, in io.Reader, out io.Writer, explain bool) error {
	r := reversi.NewReader(in)

	fmt.Fprint(out, "Enter the board dimension: ")
	n, err := r.ReadSize()
	if err != nil {
		return err
	}

	board, err := reversi.NewBoard(n)
	if err != nil {
		return err
	}
	fmt.Fprint(out, board)

	fmt.Fprintln(out, "Enter board configuration:")
	setup, err := r.ReadConfiguration()
	if err != nil {
		return err
	}
	if err := board.Configure(setup...); err != nil {
		return fmt.Errorf("configure board: %w", err)
	}
	fmt.Fprint(out, board)

	available, err := board.LegalMovesByColor(ctx, reversi.White, reversi.Black)
	if err != nil {
		return err
	}
	for _, c := range []reversi.Color{reversi.White, reversi.Black} {
		fmt.Fprintf(out, "Available moves for %c:\n", c.Char())
		for _, mv := range available[c] {
			fmt.Fprintln(out, mv)
		}
	}

	fmt.Fprintln(out, "Enter a move:")
	mv, err := r.ReadMove()
	if err != nil {
		return err
	}

	reason := board.Explain(*mv)
	if board.ApplyMove(*mv) {
		fmt.Fprintln(out, "Valid move.")
	} else {
		fmt.Fprintln(out, "Invalid move.")
		if explain && reason != nil {
			fmt.Fprintf(out, "Reason: %s\n", describe(reason))
		}
	}

	fmt.Fprint(out, board)
	return nil
}

func describe(err error) string {
	var oob *reversi.OutOfBoundsError
	switch {
	case errors.As(err, &oob):
		return "that position is not on the board"
	case errors.Is(err, reversi.ErrOccupied):
		return "that position is already taken"
	case errors.Is(err, reversi.ErrNoCapture):
		return "no opposing discs would be flipped"
	}
	return err.Error()
}
