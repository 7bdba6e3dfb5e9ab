package reversi

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestParseScenario(t *testing.T) {
	input := `4
Wab Bac
!!!
Bbd
`
	s, err := ParseScenario(strings.NewReader(input))
	if err != nil {
		t.Fatalf("%+v", err)
	}

	if s.Size != 4 {
		t.Errorf("Expected size 4, got %d", s.Size)
	}
	if len(s.Setup) != 2 {
		t.Fatalf("Expected 2 setup entries, got %d", len(s.Setup))
	}
	if s.Setup[0].Color != White || s.Setup[0].Row != 0 || s.Setup[0].Col != 1 {
		t.Errorf("first setup entry wrong: %+v", s.Setup[0])
	}
	if s.Move == nil || s.Move.String() != "Bbd" {
		t.Errorf("unexpected move: %+v", s.Move)
	}
}

func TestParseScenarioErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "", io.ErrUnexpectedEOF},
		{"no sentinel", "4 Wab Bac", io.ErrUnexpectedEOF},
		{"no move", "4 !!!", io.ErrUnexpectedEOF},
		{"empty color in setup", "4 Uab !!! Bab", ErrNotAColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScenario(strings.NewReader(tt.input))
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}

	for _, input := range []string{"3 !!! Bab", "27 !!! Bab", "four !!! Bab", "4 !!! Bab1"} {
		if _, err := ParseScenario(strings.NewReader(input)); err == nil {
			t.Errorf("Expected error for %q", input)
		}
	}
}

func TestReadConfiguration(t *testing.T) {
	entries, err := ReadConfiguration(strings.NewReader("Waa\nBbb Wcc\n!!!\nignored"))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(entries))
	}
	if entries[2].String() != "Wcc" {
		t.Errorf("got %s", entries[2])
	}
}

func TestScenarioPlay(t *testing.T) {
	s, err := ParseScenario(strings.NewReader("4 !!! Bab"))
	if err != nil {
		t.Fatal(err)
	}

	res, err := s.Play(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if !res.Valid || res.Reason != nil {
		t.Errorf("Expected a valid move, got %v (%v)", res.Valid, res.Reason)
	}
	if len(res.Available[White]) != 4 || len(res.Available[Black]) != 4 {
		t.Errorf("unexpected available moves: %v", res.Available)
	}
	if got := res.Final.Rows()[1]; got != "UBBU" {
		t.Errorf("row b after move: got %q", got)
	}
	if got := res.Configured.Rows()[1]; got != "UWBU" {
		t.Errorf("configured board should be untouched, row b is %q", got)
	}
}

func TestScenarioPlayInvalid(t *testing.T) {
	s, err := ParseScenario(strings.NewReader("4 !!! Bda"))
	if err != nil {
		t.Fatal(err)
	}

	res, err := s.Play(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if res.Valid {
		t.Errorf("Expected Bda to be invalid")
	}
	if !errors.Is(res.Reason, ErrNoCapture) {
		t.Errorf("Expected ErrNoCapture, got %v", res.Reason)
	}
	if !res.Final.Equal(res.Configured) {
		t.Errorf("invalid move changed the board")
	}
}

func TestScenarioSetupOutOfBounds(t *testing.T) {
	s, err := ParseScenario(strings.NewReader("4 Wze !!! Bab"))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := s.Play(context.Background()); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Expected ErrOutOfBounds, got %v", err)
	}
}
