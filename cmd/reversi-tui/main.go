package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/icco/gutil/logging"
	"github.com/icco/reversi"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

var opts struct {
	Size     int            `short:"n" long:"size" default:"8" description:"Board dimension (4-26)"`
	Filename flags.Filename `short:"f" long:"filename" description:"Scenario file providing size and setup; its move is ignored"`
	Color    string         `short:"c" long:"color" default:"B" choice:"W" choice:"B" description:"Color to play"`
}

var (
	log = logging.Must(logging.NewLogger(reversi.Service))

	// Styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginLeft(2)

	textStyle = lipgloss.NewStyle().
			MarginLeft(2)

	boardStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			MarginLeft(2)

	cellStyle = lipgloss.NewStyle().
			Width(3).
			Align(lipgloss.Center)

	validStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true).
			MarginLeft(2)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true).
			MarginLeft(2)
)

func main() {
	if _, err := flags.Parse(&opts); err != nil {
		if flags.WroteHelp(err) {
			os.Exit(0)
		}
		os.Exit(1)
	}

	board, err := loadBoard()
	if err != nil {
		log.Fatalw("could not build board", zap.Error(err))
	}

	color, err := reversi.ParseColor(opts.Color[0])
	if err != nil {
		log.Fatalw("bad color", "color", opts.Color, zap.Error(err))
	}

	p := tea.NewProgram(initialModel(board, color), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalw("ui exited", zap.Error(err))
	}
}

func loadBoard() (*reversi.Board, error) {
	if opts.Filename == "" {
		if err := reversi.ValidBoardSize(opts.Size); err != nil {
			return nil, err
		}
		return reversi.NewBoard(opts.Size)
	}

	f, err := os.Open(string(opts.Filename))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := reversi.NewReader(f)
	n, err := r.ReadSize()
	if err != nil {
		return nil, err
	}
	setup, err := r.ReadConfiguration()
	if err != nil {
		return nil, err
	}

	s := &reversi.Scenario{Size: n, Setup: setup}
	return s.Board()
}

type inputMode int

const (
	inputModeNormal inputMode = iota
	inputModeMove
)

type model struct {
	board *reversi.Board
	color reversi.Color
	legal map[reversi.Coordinate]bool

	cursorRow int
	cursorCol int
	inputMode inputMode
	moveInput textinput.Model

	// Set once the single move has been tried.
	played bool
	valid  bool
	last   reversi.Move
	reason error
	error  string
}

func initialModel(board *reversi.Board, color reversi.Color) model {
	ti := textinput.New()
	ti.Placeholder = "Bda"
	ti.CharLimit = 3
	ti.Width = 5

	m := model{
		board:     board,
		color:     color,
		moveInput: ti,
	}
	m.refreshLegal()
	return m
}

func (m *model) refreshLegal() {
	m.legal = map[reversi.Coordinate]bool{}
	for _, c := range m.board.LegalMoves(m.color) {
		m.legal[c] = true
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.played {
		switch key.String() {
		case "q", "esc", "enter":
			return m, tea.Quit
		}
		return m, nil
	}

	switch m.inputMode {
	case inputModeMove:
		return m.updateMoveInput(key)
	default:
		return m.updateNormalInput(key)
	}
}

func (m model) updateMoveInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.inputMode = inputModeNormal
		m.moveInput.Reset()
		m.moveInput.Blur()
		m.error = ""
		return m, nil
	case "enter":
		mv, err := reversi.NewMove(m.moveInput.Value())
		if err != nil {
			m.error = err.Error()
			return m, nil
		}
		m.moveInput.Blur()
		m.inputMode = inputModeNormal
		return m.play(*mv), nil
	}

	var cmd tea.Cmd
	m.moveInput, cmd = m.moveInput.Update(msg)
	return m, cmd
}

func (m model) updateNormalInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	last := m.board.Size() - 1

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursorRow > 0 {
			m.cursorRow--
		}
	case "down", "j":
		if m.cursorRow < last {
			m.cursorRow++
		}
	case "left", "h":
		if m.cursorCol > 0 {
			m.cursorCol--
		}
	case "right", "l":
		if m.cursorCol < last {
			m.cursorCol++
		}
	case "tab":
		m.color = m.color.Opponent()
		m.refreshLegal()
	case "m":
		m.inputMode = inputModeMove
		m.error = ""
		cmd := m.moveInput.Focus()
		return m, cmd
	case "enter", " ":
		return m.play(reversi.Move{Color: m.color, Row: m.cursorRow, Col: m.cursorCol}), nil
	}

	return m, nil
}

// play tries the move once. The board only changes when the move is legal.
func (m model) play(mv reversi.Move) model {
	m.last = mv
	m.reason = m.board.Explain(mv)
	m.valid = m.board.ApplyMove(mv)
	m.played = true
	m.legal = nil
	return m
}

func (m model) View() string {
	title := titleStyle.Render("Reversi")

	info := textStyle.Render(fmt.Sprintf("Playing: %s | White: %d | Black: %d",
		m.color, m.board.Count(reversi.White), m.board.Count(reversi.Black)))

	content := []string{title, "", info, "", m.renderBoard(), ""}

	switch {
	case m.played && m.valid:
		content = append(content, validStyle.Render(fmt.Sprintf("Valid move: %s", m.last)))
		content = append(content, textStyle.Render("Press q to quit"))
	case m.played:
		content = append(content, errorStyle.Render(fmt.Sprintf("Invalid move: %s (%v)", m.last, m.reason)))
		content = append(content, textStyle.Render("Press q to quit"))
	case m.inputMode == inputModeMove:
		content = append(content, textStyle.Render("Move: "+m.moveInput.View()+"  Enter to submit, Esc to cancel"))
	default:
		content = append(content, textStyle.Render(fmt.Sprintf(
			"Cursor: %s | arrows/hjkl: move | Enter: play | Tab: switch color | M: type a move | Q: quit",
			reversi.Coordinate{Row: m.cursorRow, Col: m.cursorCol})))
	}

	if m.error != "" {
		content = append(content, "", errorStyle.Render("Error: "+m.error))
	}

	return lipgloss.JoinVertical(lipgloss.Left, content...)
}

func (m model) renderBoard() string {
	size := m.board.Size()

	var header strings.Builder
	header.WriteString("  ")
	for i := 0; i < size; i++ {
		header.WriteString(cellStyle.Render(string(reversi.Letter(i))))
	}

	rows := []string{header.String()}
	for i := 0; i < size; i++ {
		var row strings.Builder
		row.WriteString(string(reversi.Letter(i)) + " ")
		for j := 0; j < size; j++ {
			row.WriteString(m.renderCell(i, j))
		}
		rows = append(rows, row.String())
	}

	return boardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m model) renderCell(row, col int) string {
	var content string
	bg, fg := "22", "255"

	switch m.board.At(row, col) {
	case reversi.White:
		content = "○"
	case reversi.Black:
		content = "●"
		fg = "16"
	default:
		content = "·"
		fg = "240"
		if m.legal[reversi.Coordinate{Row: row, Col: col}] {
			content = "+"
			fg = "42"
		}
	}

	if !m.played && m.inputMode == inputModeNormal && row == m.cursorRow && col == m.cursorCol {
		bg = "220"
		fg = "16"
	}

	return cellStyle.
		Background(lipgloss.Color(bg)).
		Foreground(lipgloss.Color(fg)).
		Render(content)
}
