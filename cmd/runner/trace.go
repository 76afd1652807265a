package main

import (
	"fmt"
	"io"
	"os"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
	"github.com/vovakirdan/tui-runner/internal/logging"
)

var (
	flagFrames    int
	flagWidth     int
	flagHeight    int
	flagAutopilot bool
)

var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "Simulate a run headlessly and plot it",
	Long: `Runs the simulation without a terminal UI and plots the player's
height and the scroll speed over time. With --autopilot the runner jumps
over obstacles on its own; without it the run ends at the first obstacle.

Examples:
  runner trace
  runner trace --seed 7 --frames 10000
  runner trace --difficulty hard --autopilot=false`,
	Args: cobra.NoArgs,
	RunE: runTrace,
}

func init() {
	traceCmd.Flags().IntVar(&flagFrames, "frames", 3600, "Number of ticks to simulate")
	traceCmd.Flags().IntVar(&flagWidth, "width", 80, "Viewport width in cells")
	traceCmd.Flags().IntVar(&flagHeight, "height", 24, "Viewport height in cells")
	traceCmd.Flags().BoolVar(&flagAutopilot, "autopilot", true, "Jump over obstacles automatically")
	traceCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	traceCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runTrace(cmd *cobra.Command, args []string) error {
	if flagFrames <= 0 {
		return fmt.Errorf("--frames must be positive, got %d", flagFrames)
	}
	if flagWidth < 20 || flagHeight < 10 {
		return fmt.Errorf("viewport %dx%d too small (minimum 20x10)", flagWidth, flagHeight)
	}

	logger := logging.New(os.Stderr, logging.Options{Prefix: "trace", Debug: flagDebug})

	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		return err
	}
	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			return fmt.Errorf("unknown difficulty %q", flagDifficulty)
		}
		config.ApplyRunnerPreset(&cfg, preset)
	}

	seed := resolveSeed()
	vp := core.Viewport{W: flagWidth, H: flagHeight}
	cues := &core.CueRecorder{}
	session := runner.NewSession(cfg, seed, vp, cues)

	var pilot *runner.Autopilot
	if flagAutopilot {
		pilot = runner.NewAutopilot(cfg.Physics)
	}

	logger.Debug("tracing", "seed", seed, "frames", flagFrames, "autopilot", flagAutopilot)
	samples := runner.Trace(session, vp, flagFrames, pilot)

	printTrace(cmd.OutOrStdout(), samples)
	printSummary(cmd.OutOrStdout(), session, cues, seed)
	return nil
}

// printTrace plots height and speed against time.
func printTrace(w io.Writer, samples []runner.TraceSample) {
	if len(samples) == 0 {
		return
	}
	heights := make([]float64, len(samples))
	speeds := make([]float64, len(samples))
	for i, s := range samples {
		heights[i] = s.Height
		speeds[i] = s.Speed
	}

	fmt.Fprintln(w, asciigraph.Plot(heights,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("player height above ground (cells)"),
	))
	fmt.Fprintln(w)
	fmt.Fprintln(w, asciigraph.Plot(speeds,
		asciigraph.Height(6),
		asciigraph.Width(80),
		asciigraph.Precision(2),
		asciigraph.Caption("scroll speed (cells/tick)"),
	))
	fmt.Fprintln(w)
}

// printSummary writes the outcome of the run.
func printSummary(w io.Writer, s *runner.Session, cues *core.CueRecorder, seed int64) {
	outcome := "survived"
	if s.GameOver() {
		outcome = fmt.Sprintf("hit an obstacle at tick %d", s.Ticks())
	}
	fmt.Fprintf(w, "seed:   %d\n", seed)
	fmt.Fprintf(w, "ticks:  %d\n", s.Ticks())
	fmt.Fprintf(w, "score:  %d (%d coins)\n", s.Score(), s.CoinsCollected())
	fmt.Fprintf(w, "jumps:  %d\n", cues.Count(core.CueJump))
	fmt.Fprintf(w, "speed:  %.2f\n", s.Speed())
	fmt.Fprintf(w, "result: %s\n", outcome)
}
