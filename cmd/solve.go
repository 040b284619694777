package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/cyounger/gensudoku/internal/board"
	"github.com/cyounger/gensudoku/internal/solver"
)

var solveSeed int64

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve PUZZLE",
		Short: "Solve a Sudoku puzzle",
		Long: `Solve a puzzle given as an 81-character string, row by row.
Use '.' or '0' for empty cells.

Example:
  gensudoku solve "..2.3...8.....8....31.2.....6..5.27..1.....5.2.4.6..31....8.6.5.......13..531.4.."`,
		Args: cobra.ExactArgs(1),
		RunE: runSolve,
	}

	solveCmd.Flags().Int64VarP(&solveSeed, "seed", "s", 0, "Random seed for branch selection (0 = derive from clock)")

	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	b, err := board.NewFromString(args[0])
	if err != nil {
		return fmt.Errorf("invalid puzzle: %w", err)
	}

	seed := solveSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	start := time.Now()
	solved, err := solver.Solve(b, rng)
	if err != nil {
		return err
	}
	log.Debug("solved", "hints", b.HintCount(), "elapsed", time.Since(start))

	if !solver.HasUniqueSolution(b) {
		log.Warn("puzzle has more than one solution; printing one of them")
	}

	fmt.Println(solved.Format())
	return nil
}
