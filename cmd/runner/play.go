package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/assets"
	"github.com/vovakirdan/tui-runner/internal/audio"
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagSprites    string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. The game defaults to "runner".

Controls:
  Space/Up/W/click  - Jump
  R/click           - Restart (after game over)
  P/Esc             - Pause
  Ctrl+S            - Save a screenshot
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Slower start, more coins
  normal - Config values as they are
  hard   - Faster start and ramp, denser obstacles
  fixed  - Speed never increases

Examples:
  runner play
  runner play runner --difficulty easy
  runner play --config ./my-runner.yaml
  runner play --sprites ./my-sprites.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagSprites, "sprites", "", "Path to custom sprite YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "runner"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'runner list' to see available games.")
		os.Exit(1)
	}
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (want easy, normal, hard or fixed)\n", flagDifficulty)
		os.Exit(1)
	}

	logger, closeLog := openFileLogger()
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     resolveSeed(),
	}

	// Sprites and sound are loaded once per process; restarts reuse them.
	sounds := newSounds(logger, flagMute)
	defer sounds.Close()

	runner.SetLogger(logger)
	runner.SetConfigPath(flagConfig)
	runner.SetDifficultyPreset(flagDifficulty)
	runner.SetSprites(assets.LoadOrFallback(flagSprites, logger))
	runner.SetCueSink(sounds)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger.Info("starting", "game", gameID, "seed", cfg.Seed, "fps", cfg.TickRate,
		"size", fmt.Sprintf("%dx%d", width, height), "audio", sounds.Enabled())

	if err := tui.Run(game, cfg, logger); err != nil {
		logger.Error("game loop failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		closeLog()
		sounds.Close()
		os.Exit(1)
	}
}

// newSounds builds the cue sink for a session. Muted managers skip the
// audio device entirely.
func newSounds(logger *log.Logger, muted bool) *audio.SoundManager {
	sounds := audio.NewSoundManager(logger)
	sounds.SetMuted(muted)
	//nolint:errcheck // Failure is logged and the game plays silently
	sounds.Initialize()
	return sounds
}
