package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/cyounger/gensudoku/internal/board"
	"github.com/cyounger/gensudoku/internal/generator"
)

var (
	genSeed       int64
	genExtraHints int
	genNumPuzzles int
	genSolution   bool
	genOutput     string
)

func init() {
	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate Sudoku puzzles",
		Long: `Generate one or more Sudoku puzzles, each with exactly one solution.

By default the puzzle is minimal for the random order in which hints
were removed; --add-hints copies some solution cells back in to make
it easier.

Examples:
  gensudoku gen
  gensudoku gen --seed 42 --solution
  gensudoku gen -n 5 --add-hints 10 -o puzzles.html`,
		RunE: runGen,
	}

	genCmd.Flags().Int64VarP(&genSeed, "seed", "s", 0, "Random seed (0 = derive from clock)")
	genCmd.Flags().IntVarP(&genExtraHints, "add-hints", "a", 0, "Extra hints copied back from the solution")
	genCmd.Flags().IntVarP(&genNumPuzzles, "number", "n", 1, "Number of puzzles to generate")
	genCmd.Flags().BoolVar(&genSolution, "solution", false, "Print the solution instead of the puzzle")
	genCmd.Flags().StringVarP(&genOutput, "output", "o", "", "Output file (e.g., puzzles.html)")

	rootCmd.AddCommand(genCmd)
}

func runGen(cmd *cobra.Command, args []string) error {
	if genNumPuzzles < 1 {
		return fmt.Errorf("number of puzzles must be at least 1, got %d", genNumPuzzles)
	}

	seed := genSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Debug("generating", "seed", seed, "extraHints", genExtraHints, "count", genNumPuzzles)

	var puzzles, solutions []*board.Board
	outputHTML := genOutput != ""

	for i := 0; i < genNumPuzzles; i++ {
		// Each puzzle gets its own deterministic stream so that a run
		// with a fixed seed reproduces the whole batch.
		gen := generator.New(&generator.Options{
			Seed:       seed + int64(i),
			ExtraHints: genExtraHints,
		})

		puzzle, solution, err := gen.Generate()
		if err != nil {
			return fmt.Errorf("generation failed: %w", err)
		}

		if outputHTML {
			puzzles = append(puzzles, puzzle)
			solutions = append(solutions, solution)
			continue
		}

		fmt.Printf("Puzzle #%d (seed %d, %d hints):\n", i+1, seed+int64(i), puzzle.HintCount())
		if genSolution {
			fmt.Println(solution.Format())
		} else {
			fmt.Println(puzzle.Format())
		}
	}

	if outputHTML {
		filename := genOutput
		if filepath.Ext(filename) != ".html" {
			filename += ".html"
		}
		if err := writeHTML(filename, puzzles, solutions); err != nil {
			return fmt.Errorf("failed to write HTML file: %w", err)
		}
		log.Info("wrote puzzles", "count", genNumPuzzles, "file", filename)
	}

	return nil
}

// writeHTML creates an HTML file with puzzles, one per printable page,
// each followed by its solution.
func writeHTML(filename string, puzzles, solutions []*board.Board) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create HTML file: %w", err)
	}
	defer file.Close()

	if _, err = fmt.Fprint(file, htmlHeader); err != nil {
		return err
	}

	for i := range puzzles {
		_, err = fmt.Fprintf(file, `    <div class="page">
        <h1>Sudoku Puzzle #%d</h1>
        <h2>Puzzle</h2>
        %s
        <h2>Solution</h2>
        %s
    </div>
`, i+1, boardToHTML(puzzles[i]), boardToHTML(solutions[i]))
		if err != nil {
			return err
		}
	}

	_, err = fmt.Fprint(file, "</body>\n</html>\n")
	return err
}
