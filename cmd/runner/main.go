// runner is a terminal side-scroller: jump over obstacles, collect coins,
// and see how long you last as the world speeds up.
//
// Usage:
//
//	runner play [game]   - Play (default: runner)
//	runner list          - List available games
//	runner trace         - Simulate a run headlessly and plot it
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--log <path>    - Log file (default: ~/.arcade/runner.log)
//	--debug         - Log at debug level
//	--mute          - Disable sound effects
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-runner/internal/games/runner"
	"github.com/vovakirdan/tui-runner/internal/logging"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagLogPath string
	flagDebug   bool
	flagMute    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Coin Runner - a side-scroller for your terminal",
	Long: `Coin Runner is a terminal side-scroller. Your runner keeps moving,
obstacles and coins scroll in from the right, and the world speeds up
as your score grows.

Available commands:
  play     - Play the game
  list     - Show all available games
  trace    - Simulate a run without a terminal UI and plot it

Examples:
  runner play
  runner play --difficulty hard
  runner play --seed 42 --mute
  runner trace --frames 5000`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", logging.DefaultPath, "Path to log file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound effects")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(traceCmd)
}

// openFileLogger opens the log file for interactive commands. When the file
// cannot be opened the problem is reported on stderr before the UI starts and
// logging is discarded. The returned func closes the file.
func openFileLogger() (*log.Logger, func()) {
	logger, closer, err := logging.OpenFile(flagLogPath, logging.Options{
		Prefix: "runner",
		Debug:  flagDebug,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		return logging.Discard(), func() {}
	}
	return logger, func() { closer.Close() }
}

// resolveSeed returns the seed flag, or a time-based seed when it is zero.
func resolveSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}
