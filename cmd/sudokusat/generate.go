package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/YuriBrandi/SudokuSAT/generator"
	"github.com/spf13/cobra"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "generates a random solvable puzzle and prints it",
	Run:   cmdGenerate,
}

var (
	fSize   int
	fGivens int
	fSeed   int64
	fOutput string
)

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().IntVar(&fSize, "size", 9, "board size; must be a perfect square")
	generateCmd.Flags().IntVar(&fGivens, "givens", 30, "number of filled cells to keep")
	generateCmd.Flags().Int64Var(&fSeed, "seed", 0, "random seed -- 0 picks one from the clock")
	generateCmd.Flags().StringVarP(&fOutput, "output", "o", "", "write the puzzle to this file instead of stdout")
}

func cmdGenerate(cmd *cobra.Command, args []string) {
	var opts []generator.Option
	if fSeed != 0 {
		opts = append(opts, generator.WithSeed(fSeed))
	}

	puzzle, _, err := generator.Generate(fSize, fGivens, opts...)
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(-1)
	}

	// the output is the parseable text form, so it can be piped back into
	// solve / check / cnf.
	if fOutput == "" {
		fmt.Print(puzzle)
		return
	}
	fOutput = filepath.Clean(fOutput)
	if err := os.WriteFile(fOutput, []byte(puzzle.String()), 0600); err != nil {
		fmt.Println("error:", err)
		os.Exit(-1)
	}
	fmt.Printf("%-30s %s\n", "generated puzzle", fOutput)
}
