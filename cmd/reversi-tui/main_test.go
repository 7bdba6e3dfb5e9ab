package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/icco/reversi"
)

func newTestModel(t *testing.T) model {
	t.Helper()
	b, err := reversi.NewBoard(4)
	if err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}
	return initialModel(b, reversi.Black)
}

func press(t *testing.T, m model, keys ...tea.KeyMsg) model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(model)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestCursorMoveAndPlay(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyEnter})

	if !m.played || !m.valid {
		t.Fatalf("Expected ab to be a valid black move, got played=%v valid=%v", m.played, m.valid)
	}
	if got := m.board.At(1, 1); got != reversi.Black {
		t.Errorf("Expected bb to flip to Black, got %v", got)
	}
	if !strings.Contains(m.View(), "Valid move: Bab") {
		t.Errorf("view does not report the move:\n%s", m.View())
	}
}

func TestCursorStaysOnBoard(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyLeft})
	if m.cursorRow != 0 || m.cursorCol != 0 {
		t.Errorf("cursor left the board: (%d, %d)", m.cursorRow, m.cursorCol)
	}

	for i := 0; i < 10; i++ {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyRight})
	}
	if m.cursorRow != 3 || m.cursorCol != 3 {
		t.Errorf("cursor left the board: (%d, %d)", m.cursorRow, m.cursorCol)
	}
}

func TestTypedInvalidMove(t *testing.T) {
	m := newTestModel(t)
	before := m.board.Copy()

	m = press(t, m, runes("m"))
	if m.inputMode != inputModeMove {
		t.Fatalf("Expected move input mode")
	}

	m = press(t, m, runes("B"), runes("d"), runes("a"), tea.KeyMsg{Type: tea.KeyEnter})

	if !m.played || m.valid {
		t.Fatalf("Expected Bda to be played and rejected")
	}
	if !m.board.Equal(before) {
		t.Errorf("rejected move changed the board")
	}
}

func TestTypedMalformedMove(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, runes("m"), runes("U"), runes("a"), runes("b"), tea.KeyMsg{Type: tea.KeyEnter})

	if m.played {
		t.Errorf("malformed input should not be played")
	}
	if m.error == "" {
		t.Errorf("Expected an error message")
	}
}

func TestSwitchColor(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.color != reversi.White {
		t.Fatalf("Expected White after tab, got %v", m.color)
	}
	if !m.legal[reversi.Coordinate{Row: 0, Col: 2}] {
		t.Errorf("Expected ac to be legal for White")
	}
}
