// Package cli implements the cubesolve command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/arjwilde/cubesolve/internal/storage"
)

const version = "0.1.0"

var (
	dbPath  string
	verbose bool
	log     = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:     "cubesolve",
	Short:   "A two-phase Rubik's cube solver",
	Version: version,
	Long: `cubesolve scrambles, solves, and times Rubik's cube positions using a
two-phase IDA* search, and can drive the search live from a GoCube
Bluetooth smart cube.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "solve history database path (default: ~/.cubesolve/cubesolve.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command, printing any error to stderr and exiting
// non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openStore opens the solve history database at --db, or the default path.
func openStore() (*storage.DB, error) {
	if dbPath != "" {
		return storage.Open(dbPath)
	}
	return storage.OpenDefault()
}
