package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cyounger/gensudoku/internal/board"
	"github.com/cyounger/gensudoku/internal/generator"
)

// GameState tracks which screen the game model is showing.
type GameState int

const (
	Playing GameState = iota
	Won
	NeedsCorrection
	InMenu
)

// GameModel is the playable Sudoku screen. The generated puzzle and
// solution stay fixed; player entries live in cells, so given hints are
// the positions filled in the puzzle board.
type GameModel struct {
	puzzle     *board.Board
	solution   *board.Board
	cells      [board.CellCount]int
	keys       KeyMap
	cursor     int
	cellsLeft  int
	errCells   map[int]bool
	startTime  time.Time
	width      int
	height     int
	difficulty Difficulty
	state      GameState
	menuChoice int
	wonAfter   time.Duration
	genErr     error
}

type gameWonMsg struct{}
type needsCorrectionMsg struct{}

// NewGame generates a fresh puzzle for the difficulty and returns the
// game screen.
func NewGame(width, height int, difficulty Difficulty) GameModel {
	m := GameModel{
		keys:       Keys,
		errCells:   make(map[int]bool),
		startTime:  time.Now(),
		width:      width,
		height:     height,
		difficulty: difficulty,
	}

	gen := generator.New(&generator.Options{ExtraHints: difficulty.ExtraHints()})
	puzzle, solution, err := gen.Generate()
	if err != nil {
		m.genErr = err
		return m
	}

	m.puzzle = puzzle
	m.solution = solution
	for pos := 0; pos < board.CellCount; pos++ {
		m.cells[pos] = puzzle.Get(pos)
	}
	m.cellsLeft = puzzle.EmptyCount()
	return m
}

func (m GameModel) Init() tea.Cmd {
	if m.genErr != nil {
		return tea.Quit
	}
	return nil
}

func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case m.state == InMenu:
			return m.updateMenu(msg)

		case key.Matches(msg, m.keys.Menu):
			m.state = InMenu

		case key.Matches(msg, m.keys.Up):
			m.cursor = (m.cursor - 9 + board.CellCount) % board.CellCount

		case key.Matches(msg, m.keys.Down):
			m.cursor = (m.cursor + 9) % board.CellCount

		case key.Matches(msg, m.keys.Left):
			m.cursor = 9*board.RowOf(m.cursor) + (board.ColOf(m.cursor)+8)%9

		case key.Matches(msg, m.keys.Right):
			m.cursor = 9*board.RowOf(m.cursor) + (board.ColOf(m.cursor)+1)%9

		case key.Matches(msg, m.keys.Clear):
			m.clear(m.cursor)

		case key.Matches(msg, m.keys.Number):
			if m.state == Playing || m.state == NeedsCorrection {
				return m.set(m.cursor, int(msg.String()[0]-'0'))
			}

		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case gameWonMsg:
		m.state = Won
		m.wonAfter = time.Since(m.startTime)

	case needsCorrectionMsg:
		m.state = NeedsCorrection
	}

	return m, nil
}

func (m GameModel) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	options := 3 // Resume, New Game, Quit
	switch msg.String() {
	case "up", "k":
		m.menuChoice = (m.menuChoice - 1 + options) % options
	case "down", "j":
		m.menuChoice = (m.menuChoice + 1) % options
	case "enter":
		switch m.menuChoice {
		case 0:
			m.state = Playing
		case 1:
			return NewMenu(m.width, m.height), nil
		case 2:
			return m, tea.Quit
		}
	}
	return m, nil
}

// given reports whether the position holds a starting hint.
func (m *GameModel) given(pos int) bool {
	return m.puzzle.Get(pos) != board.EmptyCell
}

func (m *GameModel) clear(pos int) {
	if m.cells[pos] != board.EmptyCell && !m.given(pos) {
		m.cells[pos] = board.EmptyCell
		m.cellsLeft++
		delete(m.errCells, pos)
		m.state = Playing
	}
}

func (m GameModel) set(pos, val int) (tea.Model, tea.Cmd) {
	if m.given(pos) {
		return m, nil
	}
	if m.cells[pos] == board.EmptyCell {
		m.cellsLeft--
	}
	m.cells[pos] = val
	delete(m.errCells, pos)
	m.state = Playing

	if m.cellsLeft == 0 {
		return m, m.check()
	}
	return m, nil
}

// check compares the filled board with the solution. It runs only once
// the last empty cell is entered.
func (m *GameModel) check() tea.Cmd {
	wrong := make(map[int]bool)
	for pos := 0; pos < board.CellCount; pos++ {
		if m.cells[pos] != m.solution.Get(pos) {
			wrong[pos] = true
		}
	}
	m.errCells = wrong

	return func() tea.Msg {
		if len(wrong) > 0 {
			return needsCorrectionMsg{}
		}
		return gameWonMsg{}
	}
}

func (m GameModel) View() string {
	if m.genErr != nil {
		return "could not generate a puzzle: " + m.genErr.Error() + "\n"
	}
	switch m.state {
	case InMenu:
		return m.renderMenu()
	case Won:
		return m.renderWinScreen()
	default:
		return m.renderGame()
	}
}

func (m GameModel) renderMenu() string {
	var s strings.Builder
	s.WriteString("Menu\n\n")
	for i, option := range []string{"Resume Game", "New Game", "Quit"} {
		if i == m.menuChoice {
			s.WriteString("> ")
		} else {
			s.WriteString("  ")
		}
		s.WriteString(option + "\n")
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, s.String())
}

func (m GameModel) renderWinScreen() string {
	msg := fmt.Sprintf("%s\n\n%s\n\n%s",
		titleStyle.Render("Solved!"),
		winTextStyle.Render(fmt.Sprintf("Time: %02d:%02d",
			int(m.wonAfter.Minutes()), int(m.wonAfter.Seconds())%60)),
		"Press 'q' to quit or 'm' for menu")

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		winBoxStyle.Render(msg))
}

func (m GameModel) renderGame() string {
	views := []string{m.renderBoard(), m.renderInfo()}
	if m.state == NeedsCorrection {
		views = append(views, statusStyle.Render("Something is off. Check the highlighted cells."))
	}

	mainView := lipgloss.JoinVertical(lipgloss.Center, views...)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, mainView)
}

func (m GameModel) renderBoard() string {
	var sb strings.Builder

	for row := 0; row < 9; row++ {
		line := ""
		for col := 0; col < 9; col++ {
			pos := board.MakePos(row, col)

			cell := " "
			if m.cells[pos] != board.EmptyCell {
				cell = fmt.Sprintf("%d", m.cells[pos])
			}

			line += formatCell(m.errCells[pos], m.cursor == pos, !m.given(pos), col, cell)
		}
		sb.WriteString(formatRow(row, line) + "\n")
	}
	return sb.String()
}

func (m GameModel) renderInfo() string {
	elapsed := time.Since(m.startTime).Round(time.Second)
	if m.state == Won {
		elapsed = m.wonAfter
	}

	info := fmt.Sprintf("Cells left: %d\n", m.cellsLeft)
	info += fmt.Sprintf("Elapsed time: %02d:%02d\n", int(elapsed.Minutes()), int(elapsed.Seconds())%60)
	info += fmt.Sprintf("\ngensudoku - %s\n", m.difficulty)
	info += "\nArrows/hjkl move, 1-9 fill, x clear, m menu, q quit"
	return infoStyle.Render(info)
}
