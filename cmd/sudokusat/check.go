package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/YuriBrandi/SudokuSAT/board"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [puzzle.txt]",
	Short: "checks a board for rule violations; reads stdin when no file is given",
	Run:   cmdCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func cmdCheck(cmd *cobra.Command, args []string) {
	b := loadBoard(args)
	fmt.Println(renderBoard(b, b))

	if conflicts := b.Conflicts(); len(conflicts) > 0 {
		cells := lo.Map(conflicts, func(c board.Cell, _ int) string {
			return c.String()
		})
		fmt.Printf("%-30s %s\n", "board is illegal", strings.Join(cells, " "))
		os.Exit(-1)
	}
	if b.IsComplete() {
		fmt.Println("board is complete and legal")
		return
	}
	n := b.Size()
	fmt.Printf("board is legal, %d of %d cells filled\n", b.Filled(), n*n)
}
