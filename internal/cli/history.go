package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arjwilde/cubesolve/internal/storage"
)

var historyListLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect the solve history database",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent solves",
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one solve record in full",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

func init() {
	historyListCmd.Flags().IntVarP(&historyListLimit, "limit", "n", 20, "maximum records to list")
	historyCmd.AddCommand(historyListCmd, historyShowCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	records, err := storage.NewSolveRepository(db).List(historyListLimit)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("no solves recorded yet")
		return nil
	}
	for _, rec := range records {
		fmt.Printf("%s  %3d moves  %6dms  %s\n", rec.ID, rec.MoveCount, rec.DurationMs, rec.CreatedAt)
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	rec, err := storage.NewSolveRepository(db).Get(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("id:          %s\n", rec.ID)
	fmt.Printf("scramble:    %s\n", rec.Scramble)
	fmt.Printf("solution:    %s\n", rec.Solution)
	fmt.Printf("move count:  %d\n", rec.MoveCount)
	fmt.Printf("nodes:       %d\n", rec.Nodes)
	fmt.Printf("phase1 depth:%d\n", rec.Phase1Depth)
	fmt.Printf("duration:    %dms\n", rec.DurationMs)
	fmt.Printf("created at:  %s\n", rec.CreatedAt)
	return nil
}
