// Command sudokugen is a command-line front end for the generator and
// difficulty packages, grounded on rybkr-sudoku's cmd/gen.go cobra wiring.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sudoku-core/internal/generator"
)

var rootCmd = &cobra.Command{
	Use:   "sudokugen",
	Short: "Generate and evaluate Sudoku puzzles",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var (
	genCategory string
	genSeed     uint64
	genUseSeed  bool
)

func init() {
	genCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a puzzle targeting a difficulty category",
		Long: `Generate a single Sudoku puzzle targeting a named difficulty category.

Examples:
  sudokugen generate --category basic
  sudokugen generate --category diabolical --seed 42`,
		RunE: runGenerate,
	}
	genCmd.Flags().StringVarP(&genCategory, "category", "c", "basic", "Difficulty category (trivial, basic, intermediate, tough, diabolical, extreme, master, grandmaster)")
	genCmd.Flags().Uint64Var(&genSeed, "seed", 0, "Seed for reproducible generation")
	genCmd.Flags().BoolVar(&genUseSeed, "use-seed", false, "Use the --seed value instead of an entropy-seeded source")
	rootCmd.AddCommand(genCmd)

	evalCmd := &cobra.Command{
		Use:   "evaluate <puzzle>",
		Short: "Score an 81-character puzzle string's difficulty",
		Args:  cobra.ExactArgs(1),
		RunE:  runEvaluate,
	}
	rootCmd.AddCommand(evalCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	var puzzle string
	if genUseSeed || cmd.Flags().Changed("seed") {
		puzzle = generator.GenerateWithSeed(genCategory, genSeed)
	} else {
		puzzle = generator.GenerateByCategory(genCategory)
	}

	score := generator.EvaluateDifficulty(puzzle)
	fmt.Printf("%s\n", puzzle)
	fmt.Printf("category=%s score=%d\n", genCategory, score)
	return nil
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	puzzle := args[0]
	if len(puzzle) != 81 {
		return fmt.Errorf("puzzle must be exactly 81 characters, got %d", len(puzzle))
	}
	score := generator.EvaluateDifficulty(puzzle)
	fmt.Printf("score=%d\n", score)
	return nil
}
