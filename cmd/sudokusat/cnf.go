package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/YuriBrandi/SudokuSAT/cnf"
	"github.com/spf13/cobra"
)

// cnfCmd represents the cnf command
var cnfCmd = &cobra.Command{
	Use:   "cnf [puzzle.txt]",
	Short: "encodes a board as CNF and writes it in DIMACS form",
	Run:   cmdCnf,
}

var (
	fCnfOutput string
	fDump      string
)

func init() {
	rootCmd.AddCommand(cnfCmd)
	cnfCmd.Flags().StringVarP(&fCnfOutput, "output", "o", "", "write DIMACS to this file instead of stdout")
	cnfCmd.Flags().StringVar(&fDump, "dump", "", "also write the compressed binary dump to this file")
}

func cmdCnf(cmd *cobra.Command, args []string) {
	b := loadBoard(args)
	ins := cnf.Encode(b)

	if fDump != "" {
		fDump = filepath.Clean(fDump)
		f, err := os.Create(fDump)
		if err != nil {
			fmt.Println("error:", err)
			os.Exit(-1)
		}
		if err := ins.WriteDump(f); err != nil {
			f.Close()
			fmt.Println("can't write dump:", err)
			os.Exit(-1)
		}
		f.Close()
		fmt.Printf("%-30s %s\n", "wrote binary dump", fDump)
	}

	var w io.Writer = os.Stdout
	if fCnfOutput != "" {
		fCnfOutput = filepath.Clean(fCnfOutput)
		f, err := os.Create(fCnfOutput)
		if err != nil {
			fmt.Println("error:", err)
			os.Exit(-1)
		}
		defer f.Close()
		w = f
	}
	if _, err := ins.WriteTo(w); err != nil {
		fmt.Println("can't write DIMACS:", err)
		os.Exit(-1)
	}
	if fCnfOutput != "" {
		fmt.Printf("%-30s %-30s %d vars %d clauses\n", "wrote DIMACS", fCnfOutput, ins.NbVars(), ins.NbClauses())
	}
}
