// sudokusat is a CLI to generate, check and solve Sudoku boards of any
// square size, with a backtracking search and a SAT reduction that can be
// run side by side.
package main

import (
	"fmt"
	"os"

	sudokusat "github.com/YuriBrandi/SudokuSAT"
	pkgprofile "github.com/pkg/profile"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "sudokusat",
	Short:   "generates, checks and solves Sudoku boards of any square size",
	Version: sudokusat.Version.String(),
}

var (
	fVerbose    bool
	fCPUProfile string

	cpuProfiler interface{ Stop() }
)

func init() {
	cobra.OnInitialize(initConfig)
	cobra.OnFinalize(finalizeConfig)
	rootCmd.PersistentFlags().BoolVarP(&fVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&fCPUProfile, "cpuprofile", "", "write a CPU profile of the whole run to this directory")
}

func initConfig() {
	if fVerbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	if fCPUProfile != "" {
		cpuProfiler = pkgprofile.Start(pkgprofile.CPUProfile, pkgprofile.ProfilePath(fCPUProfile), pkgprofile.NoShutdownHook)
	}
}

func finalizeConfig() {
	if cpuProfiler != nil {
		cpuProfiler.Stop()
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
