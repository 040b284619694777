package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/cyounger/gensudoku/internal/tui"
)

func init() {
	playCmd := &cobra.Command{
		Use:   "play",
		Short: "Play Sudoku in the terminal",
		RunE:  runPlay,
	}

	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	p := tea.NewProgram(tui.NewMenu(0, 0), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("game exited with an error: %w", err)
	}
	return nil
}
