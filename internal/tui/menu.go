// Package tui implements the interactive terminal game built on
// bubbletea. The menu model picks a difficulty and hands off to the
// game model; both are served locally by the play command and over SSH
// by the serve command.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Difficulty selects how many solution cells are handed back to the
// player as extra hints on top of the minimal puzzle.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

func (d Difficulty) String() string {
	return [...]string{"Easy", "Medium", "Hard"}[d]
}

// ExtraHints returns the number of extra hints for the difficulty.
func (d Difficulty) ExtraHints() int {
	return [...]int{20, 10, 0}[d]
}

// MenuModel is the difficulty selection screen.
type MenuModel struct {
	choices []string
	cursor  int
	width   int
	height  int
}

// NewMenu creates the difficulty menu.
func NewMenu(width, height int) MenuModel {
	return MenuModel{
		choices: []string{"Easy", "Medium", "Hard", "Quit"},
		width:   width,
		height:  height,
	}
}

func (m MenuModel) Init() tea.Cmd {
	return nil
}

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.choices)-1 {
				m.cursor++
			}
		case "enter":
			if m.cursor == len(m.choices)-1 {
				return m, tea.Quit
			}
			return NewGame(m.width, m.height, Difficulty(m.cursor)), nil
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m MenuModel) View() string {
	s := titleStyle.Render("gensudoku") + "\n\n"
	s += "Select difficulty:\n"
	for i, choice := range m.choices {
		cursor := "  "
		if m.cursor == i {
			cursor = "> "
		}
		s += fmt.Sprintf("%s%s\n", cursor, choice)
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 4).
		Render(s)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
