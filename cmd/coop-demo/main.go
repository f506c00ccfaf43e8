package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/go-coop/coop"
	"github.com/go-coop/coop/internal/scenario"
)

var (
	greetColor    = color.New(color.FgCyan)
	announceColor = color.New(color.FgGreen, color.Bold)
)

var rootCmd = &cobra.Command{
	Use:   "coop-demo [flags] [scenario.toml]",
	Short: "Run greeter tasks on a cooperative executor",
	Long: `coop-demo spawns a set of greeter tasks onto a single-threaded
cooperative executor. Each task greets, waits some number of time units on
a timer, and announces completion; the executor runs them all to
completion on one goroutine while the timers tick in the background.

Without arguments it runs the built-in scenario (waits of 10, 5, 2 and
1 units). Pass a TOML scenario file to run your own.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScenario,
}

func init() {
	rootCmd.Flags().Duration("unit", time.Second, "length of one time unit for the built-in scenario")
	rootCmd.Flags().Bool("no-color", false, "disable colored output")
}

func runScenario(cmd *cobra.Command, args []string) error {
	unit, err := cmd.Flags().GetDuration("unit")
	if err != nil {
		return fmt.Errorf("failed to get unit flag: %w", err)
	}
	if unit <= 0 {
		return fmt.Errorf("unit must be positive, got %v", unit)
	}

	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		color.NoColor = true
	}

	s := scenario.Default(unit)
	if len(args) == 1 {
		if s, err = scenario.Load(args[0]); err != nil {
			return err
		}
	}

	var myExecutor coop.Executor

	for _, spec := range s.Tasks {
		myExecutor.Spawn(greet(spec.Name, s.Delay(spec)))
	}

	myExecutor.Run()

	return nil
}

// greet is the worked example: announce, wait on a timer, announce again.
func greet(name string, delay time.Duration) coop.Operation {
	return coop.Chain(
		coop.Do(func() { greetColor.Printf("Hello %s!\n", name) }),
		coop.Do(func() { greetColor.Printf("waiting %s\n", name) }),
		coop.Sleep(delay),
		coop.Do(func() { announceColor.Printf("World %s!\n", name) }),
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
