package runner

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

// newQuietGame resets a game from a config file with spawning switched off.
func newQuietGame(t *testing.T) *Game {
	t.Helper()
	path := filepath.Join(t.TempDir(), "runner.yaml")
	data := "obstacles:\n  spawn_chance: 0\ncoins:\n  spawn_chance: 0\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })

	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestGameRegistered(t *testing.T) {
	if !registry.Exists("runner") {
		t.Fatal("runner should register itself")
	}
	g, err := registry.Create("runner")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.Title() != "Coin Runner" {
		t.Errorf("Title() = %q", g.Title())
	}
	if _, ok := g.(registry.Resizer); !ok {
		t.Error("runner should follow resizes without a reset")
	}
}

func TestGameJumpReportsCue(t *testing.T) {
	g := newQuietGame(t)
	rec := &core.CueRecorder{}
	SetCueSink(rec)
	t.Cleanup(func() { SetCueSink(nil) })

	res := g.Step(frame(core.ActionJump))

	if len(res.Cues) != 1 || res.Cues[0] != core.CueJump {
		t.Errorf("Cues = %v, expected [jump]", res.Cues)
	}
	if rec.Count(core.CueJump) != 1 {
		t.Error("cue should be forwarded to the sink")
	}
	if g.Session().Player().Grounded {
		t.Error("player should be airborne after a jump")
	}

	res = g.Step(frame())
	if len(res.Cues) != 0 {
		t.Errorf("cues should not carry over between steps: %v", res.Cues)
	}
}

func TestGamePause(t *testing.T) {
	g := newQuietGame(t)
	g.Step(frame())

	res := g.Step(frame(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("pause action should pause the game")
	}
	ticks := g.Session().Ticks()
	g.Step(frame(core.ActionJump))
	if g.Session().Ticks() != ticks || !g.Session().Player().Grounded {
		t.Error("paused game should not advance or accept jumps")
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused game should show the pause box")
	}

	res = g.Step(frame(core.ActionPause))
	if res.State.Paused || g.Session().Ticks() != ticks+1 {
		t.Error("second pause action should resume")
	}
}

func TestGameOverAndRestart(t *testing.T) {
	g := newQuietGame(t)
	s := g.Session()
	s.cur.obstacles = append(s.cur.obstacles, Obstacle{X: 10, W: 1, H: 2})

	res := g.Step(frame())
	if !res.State.GameOver {
		t.Fatal("collision should end the game")
	}
	if len(res.Cues) != 1 || res.Cues[0] != core.CueHit {
		t.Errorf("Cues = %v, expected [hit]", res.Cues)
	}

	res = g.Step(frame(core.ActionJump))
	if !res.State.GameOver {
		t.Error("jump should not leave game over")
	}

	res = g.Step(frame(core.ActionRestart))
	if res.State.GameOver || res.State.Score != 0 {
		t.Errorf("restart should start a fresh round: %+v", res.State)
	}
	if g.Session() != s {
		t.Error("restart should reuse the session")
	}
}

func TestGameResizeKeepsRound(t *testing.T) {
	g := newQuietGame(t)
	s := g.Session()
	s.cur.coins = append(s.cur.coins, coinOnPlayer())
	g.Step(frame())

	g.Resize(100, 30)
	g.Step(frame())

	if g.Session().GroundY() != 28 {
		t.Errorf("GroundY() = %v, expected 28 after resize", g.Session().GroundY())
	}
	if g.State().Score != 10 {
		t.Errorf("score lost on resize: %d", g.State().Score)
	}
}

func TestGameBadConfigFallsBack(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(log.New(&buf))
	t.Cleanup(func() { SetLogger(nil) })
	SetConfigPath(filepath.Join(t.TempDir(), "missing.yaml"))
	t.Cleanup(func() { SetConfigPath("") })

	g := New()
	g.Reset(core.DefaultConfig())

	if g.Session().Speed() != 0.5 {
		t.Errorf("expected default base speed, got %v", g.Session().Speed())
	}
	if !strings.Contains(buf.String(), "using default runner config") {
		t.Errorf("config error should be logged, got %q", buf.String())
	}
}

func TestGameDifficultyPreset(t *testing.T) {
	SetDifficultyPreset("fixed")
	t.Cleanup(func() { SetDifficultyPreset("") })

	g := newQuietGame(t)
	if g.Session().Config().Physics.SpeedIncrement != 0 {
		t.Error("fixed preset should disable the speed ramp")
	}

	SetDifficultyPreset("impossible")
	if difficultyPreset != "" {
		t.Errorf("unknown preset should be ignored, got %q", difficultyPreset)
	}
}
