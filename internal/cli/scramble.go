package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	cube "github.com/arjwilde/cubesolve"
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble [length]",
	Short: "Generate a random scramble",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runScramble,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)
}

func runScramble(cmd *cobra.Command, args []string) error {
	n := 25
	if len(args) == 1 {
		v, err := strconv.Atoi(args[0])
		if err != nil || v <= 0 {
			return fmt.Errorf("invalid scramble length %q", args[0])
		}
		n = v
	}

	c := cube.New()
	moves := c.Scramble(n)
	fmt.Println(cube.FormatMoves(moves))
	return nil
}
