package cmd

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "gensudoku",
	Short: "Generate and solve Sudoku puzzles",
	Long: `gensudoku generates and solves 9x9 Sudoku puzzles using Knuth's
dancing links algorithm. Generated puzzles always have exactly one
solution.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	cobra.OnInitialize(func() {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	})
}

// Execute runs the root command. It is the only exit point: command
// errors are logged here and turn into a non-zero status.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("command failed", "error", err)
		os.Exit(1)
	}
}
