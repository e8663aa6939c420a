package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	cube "github.com/arjwilde/cubesolve"
	"github.com/arjwilde/cubesolve/solver"
)

var benchCmd = &cobra.Command{
	Use:   "bench [trials]",
	Short: "Benchmark the solver against random scrambles",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBench,
}

func init() {
	rootCmd.AddCommand(benchCmd)
}

func runBench(cmd *cobra.Command, args []string) error {
	n := 20
	if len(args) == 1 {
		v, err := strconv.Atoi(args[0])
		if err != nil || v <= 0 {
			return fmt.Errorf("invalid trial count %q", args[0])
		}
		n = v
	}

	var totalMoves, totalNodes int
	var totalTime time.Duration
	longest := 0

	for i := 0; i < n; i++ {
		c := cube.New()
		c.ApplySequence(c.Scramble(25))

		var progress solver.Progress
		start := time.Now()
		moves, err := solver.Solve(context.Background(), c, &progress)
		elapsed := time.Since(start)
		if err != nil {
			return fmt.Errorf("trial %d: %w", i, err)
		}

		totalMoves += len(moves)
		totalNodes += int(progress.Nodes.Load())
		totalTime += elapsed
		if len(moves) > longest {
			longest = len(moves)
		}
		fmt.Printf("trial %2d: %2d moves, %8d nodes, %s\n", i+1, len(moves), progress.Nodes.Load(), elapsed.Round(time.Millisecond))
	}

	fmt.Println()
	fmt.Printf("average: %.1f moves, %.0f nodes, %s\n",
		float64(totalMoves)/float64(n), float64(totalNodes)/float64(n), (totalTime / time.Duration(n)).Round(time.Millisecond))
	fmt.Printf("longest solution: %d moves\n", longest)
	return nil
}
