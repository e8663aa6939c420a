package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	cube "github.com/arjwilde/cubesolve"
	"github.com/arjwilde/cubesolve/internal/notation"
	"github.com/arjwilde/cubesolve/internal/recorder"
	"github.com/arjwilde/cubesolve/internal/storage"
	"github.com/arjwilde/cubesolve/internal/tui"
)

var (
	solveScramble string
	solveWatch    bool
)

var solveCmd = &cobra.Command{
	Use:   "solve [moves...]",
	Short: "Solve a scrambled cube",
	Long: `Solve a scrambled cube, either from a --scramble string or from moves
given as positional arguments. With no arguments and no --scramble, a
random scramble is generated and solved.`,
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&solveScramble, "scramble", "", "scramble to solve, in standard notation")
	solveCmd.Flags().BoolVar(&solveWatch, "watch", false, "show a live progress display while solving")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	var scramble []cube.Move
	switch {
	case solveScramble != "":
		s, err := notation.ParseSequence(solveScramble)
		if err != nil {
			return err
		}
		scramble = s
	case len(args) > 0:
		s, err := notation.ParseSequence(strings.Join(args, " "))
		if err != nil {
			return err
		}
		scramble = s
	default:
		scramble = cube.New().Scramble(25)
	}

	c := cube.New()
	c.ApplySequence(scramble)

	if !c.IsSolvable() {
		return cube.ErrUnsolvable
	}

	db, err := openStore()
	var repo *storage.SolveRepository
	if err != nil {
		log.WithError(err).Warn("solve history unavailable, continuing without persistence")
	} else {
		defer db.Close()
		repo = storage.NewSolveRepository(db)
	}

	var moves []cube.Move
	if solveWatch {
		moves, err = tui.Watch(c, scramble)
	} else {
		sess := recorder.NewSession(repo, log)
		start := time.Now()
		moves, err = sess.Run(context.Background(), c, scramble)
		fmt.Printf("solved in %d moves (%s): %s\n", len(moves), time.Since(start).Round(time.Millisecond), cube.FormatMoves(moves))
		return err
	}
	if err != nil {
		return err
	}
	return nil
}
