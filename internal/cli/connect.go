package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	cube "github.com/arjwilde/cubesolve"
	"github.com/arjwilde/cubesolve/internal/ble"
	"github.com/arjwilde/cubesolve/internal/recorder"
)

const scanTimeout = 5 * time.Second

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan for nearby GoCube smart cubes",
	RunE:  runScan,
}

var connectCmd = &cobra.Command{
	Use:   "connect",
	Short: "Connect to a GoCube and apply its moves to a live cube as you turn it",
	RunE:  runConnect,
}

func init() {
	rootCmd.AddCommand(scanCmd, connectCmd)
}

func scanForCube(ctx context.Context) (*ble.Client, []ble.ScanResult, error) {
	client, err := ble.New()
	if err != nil {
		return nil, nil, fmt.Errorf("BLE not available: %w", err)
	}

	scanCtx, cancel := context.WithTimeout(ctx, scanTimeout)
	defer cancel()

	results, err := client.Scan(scanCtx, scanTimeout)
	if err != nil {
		return client, nil, err
	}
	return client, results, nil
}

func runScan(cmd *cobra.Command, args []string) error {
	fmt.Println("scanning for GoCube devices...")
	_, results, err := scanForCube(context.Background())
	if err != nil {
		return err
	}
	if len(results) == 0 {
		fmt.Println("no GoCube devices found")
		return nil
	}
	for _, r := range results {
		fmt.Printf("  %s (%s)\n", r.Name, r.Address)
	}
	return nil
}

func runConnect(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	client, results, err := scanForCube(ctx)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		return fmt.Errorf("no GoCube devices found")
	}

	if err := client.Connect(ctx, results[0]); err != nil {
		return err
	}
	defer client.Disconnect()
	fmt.Printf("connected to %s\n", client.DeviceName())

	state, err := recorder.NewDefaultStateFile()
	if err == nil {
		state.SetLastDevice(results[0].Address.String(), results[0].Name)
	}

	c := cube.New()
	done := make(chan struct{})
	client.OnMove(func(m cube.Move) {
		c.Apply(m)
		fmt.Printf("%s  (solved: %v)\n", cube.FormatMoves([]cube.Move{m}), c.IsSolved())
		if c.IsSolved() {
			close(done)
		}
	})

	fmt.Println("turn the cube; press Ctrl-C to stop")
	<-done
	return nil
}
