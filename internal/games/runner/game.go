// Package runner implements Coin Runner, a side-scroller where the player
// jumps over obstacles and collects coins while the world speeds up.
package runner

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/assets"
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

// Game adapts a Session to the platform's game interface.
type Game struct {
	session *Session
	runtime core.RuntimeConfig
	paused  bool
	pending []core.Cue // Cues emitted during the current Step
}

// Process-wide settings applied by the CLI before a game is created.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	sprites          *assets.Set
	cueSink          core.CueSink = core.NopCues{}
	logger                        = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names keep the
// config file's values.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
	if difficultyPreset == "" && preset != "" {
		logger.Warn("ignoring unknown difficulty preset", "preset", preset)
	}
}

// SetSprites sets the sprite set used for drawing. Nil draws plain shapes.
func SetSprites(s *assets.Set) {
	sprites = s
}

// SetCueSink sets where audio cues are sent. Nil discards them.
func SetCueSink(s core.CueSink) {
	if s == nil {
		s = core.NopCues{}
	}
	cueSink = s
}

// SetLogger sets the logger used for config problems.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// New creates a new Coin Runner game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "runner"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Coin Runner"
}

// Reset loads the configuration and starts a fresh session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.paused = false
	g.pending = g.pending[:0]

	cfg, err := config.LoadRunner(configPath)
	if err != nil {
		logger.Warn("using default runner config", "error", err)
		cfg = config.DefaultRunnerConfig()
	}
	if difficultyPreset != "" {
		config.ApplyRunnerPreset(&cfg, difficultyPreset)
	}

	g.session = NewSession(cfg, runtime.Seed, runtime.Viewport(), g)
	logger.Debug("runner reset",
		"seed", runtime.Seed,
		"width", runtime.ScreenW,
		"height", runtime.ScreenH,
		"preset", string(difficultyPreset))
}

// Resize changes the viewport without restarting the round.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
}

// Play implements core.CueSink. Cues are both reported in the StepResult
// and forwarded to the configured sink.
func (g *Game) Play(c core.Cue) {
	g.pending = append(g.pending, c)
	cueSink.Play(c)
}

// Step applies the frame's input and advances the session by one tick.
// A restart takes effect immediately and the new round starts on the next Step.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.pending = g.pending[:0]

	if g.session.GameOver() {
		if in.Has(core.ActionRestart) && g.session.RequestRestart() {
			g.paused = false
		}
		return g.result()
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	if in.Has(core.ActionJump) {
		g.session.RequestJump()
	}
	g.session.Tick(g.runtime.Viewport())

	return g.result()
}

func (g *Game) result() core.StepResult {
	var cues []core.Cue
	if len(g.pending) > 0 {
		cues = append(cues, g.pending...)
	}
	return core.StepResult{State: g.State(), Cues: cues}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.session.Draw(dst, sprites)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: g.session.GameOver(),
		Paused:   g.paused,
	}
}

// Session exposes the underlying simulation.
func (g *Game) Session() *Session {
	return g.session
}

// Register the game with the registry
func init() {
	registry.Register("runner", func() registry.Game {
		return New()
	})
}
