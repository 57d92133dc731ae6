package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	sudokusat "github.com/YuriBrandi/SudokuSAT"
	"github.com/YuriBrandi/SudokuSAT/board"
	"github.com/YuriBrandi/SudokuSAT/profile"
	"github.com/YuriBrandi/SudokuSAT/solver"
	"github.com/spf13/cobra"
)

// solveCmd represents the solve command
var solveCmd = &cobra.Command{
	Use:   "solve [puzzle.txt]",
	Short: "solves a puzzle with one or both strategies; reads stdin when no file is given",
	Run:   cmdSolve,
}

var (
	fStrategy      string
	fProfileSearch string
)

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().StringVar(&fStrategy, "strategy", "both", "backtracking, sat or both")
	solveCmd.Flags().StringVar(&fProfileSearch, "profile-search", "", "write a pprof profile of the backtracking search to this directory")
}

func cmdSolve(cmd *cobra.Command, args []string) {
	b := loadBoard(args)

	var p *profile.Profile
	if fProfileSearch != "" {
		dir := filepath.Clean(fProfileSearch)
		if err := os.MkdirAll(dir, 0700); err != nil {
			fmt.Println("can't create profile dir:", err)
			os.Exit(-1)
		}
		p = profile.Start(profile.WithPath(filepath.Join(dir, "search.pprof")))
	}

	if fStrategy == "both" {
		results := sudokusat.Compare(b)
		if p != nil {
			p.Stop()
		}
		for i := range results {
			if results[i].Err == nil {
				fmt.Println(renderBoard(results[i].Board, b))
				break
			}
		}
		for i := range results {
			printStats(results[i].Stats, results[i].Err)
		}
		if err := sudokusat.Agree(results); err != nil {
			fmt.Println("error:", err)
			os.Exit(-1)
		}
		fmt.Printf("%-14s strategies agree\n", "")
		return
	}

	id, err := solver.IDFromString(fStrategy)
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(-1)
	}
	solution, stats, err := sudokusat.Solve(b, id)
	if p != nil {
		p.Stop()
	}
	if err != nil {
		printStats(stats, err)
		os.Exit(-1)
	}
	fmt.Println(renderBoard(solution, b))
	printStats(stats, nil)
}

// printStats prints one aligned line per strategy; the fields depend on
// what the strategy counts.
func printStats(stats solver.Stats, err error) {
	status := "solved"
	if err != nil {
		status = err.Error()
	}
	fmt.Printf("%-14s %-24s", stats.Strategy.String(), status)
	if stats.Strategy == solver.BACKTRACKING {
		fmt.Printf(" guesses=%-10d backtracks=%-10d", stats.Guesses, stats.Backtracks)
	}
	if stats.NbVars > 0 {
		fmt.Printf(" vars=%-8d clauses=%-10d", stats.NbVars, stats.NbClauses)
	}
	fmt.Printf(" took=%s\n", stats.Took)
}

// loadBoard parses the text form of a board from the file argument, or
// from stdin when no argument is given.
func loadBoard(args []string) *board.Board {
	var r io.Reader = os.Stdin
	var f *os.File
	if len(args) > 0 {
		var err error
		f, err = os.Open(filepath.Clean(args[0]))
		if err != nil {
			fmt.Println("error:", err)
			os.Exit(-1)
		}
		r = f
	}
	b, err := board.Parse(r)
	if f != nil {
		f.Close()
	}
	if err != nil {
		fmt.Println("can't parse board:", err)
		os.Exit(-1)
	}
	return b
}
