package runner

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/assets"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// recordingSurface counts draw calls instead of painting.
type recordingSurface struct {
	w, h    int
	rects   int
	circles int
	sprites int
	texts   []string
}

func (r *recordingSurface) Width() int                               { return r.w }
func (r *recordingSurface) Height() int                              { return r.h }
func (r *recordingSurface) FillRect(core.RectF, rune, core.Color)    { r.rects++ }
func (r *recordingSurface) FillCircle(core.Circle, rune, core.Color) { r.circles++ }
func (r *recordingSurface) DrawText(_, _ int, text string)           { r.texts = append(r.texts, text) }
func (r *recordingSurface) DrawSprite(_, _ int, _ *core.Sprite)      { r.sprites++ }

func (r *recordingSurface) hasText(sub string) bool {
	for _, t := range r.texts {
		if strings.Contains(t, sub) {
			return true
		}
	}
	return false
}

func sessionWithEntities(t *testing.T) *Session {
	t.Helper()
	s, _ := newQuietSession(t)
	s.cur.obstacles = append(s.cur.obstacles,
		Obstacle{X: 40, W: 2, H: 3},
		Obstacle{X: 55, W: 1, H: 2})
	s.cur.coins = append(s.cur.coins,
		Coin{X: 30, Rise: 5, R: 0.5},
		Coin{X: 35, Rise: 6, R: 0.5},
		Coin{X: 62, Rise: 4, R: 0.5})
	return s
}

func TestDrawOneCallPerEntity(t *testing.T) {
	s := sessionWithEntities(t)
	rec := &recordingSurface{w: 80, h: 24}

	s.Draw(rec, nil)

	if rec.rects != 3 {
		t.Errorf("FillRect calls = %d, expected 2 obstacles + player", rec.rects)
	}
	if rec.circles != 3 {
		t.Errorf("FillCircle calls = %d, expected one per coin", rec.circles)
	}
	if rec.sprites != 0 {
		t.Errorf("DrawSprite calls = %d without sprites", rec.sprites)
	}
	if len(rec.texts) != 2 {
		t.Errorf("DrawText calls = %d, expected ground + score", len(rec.texts))
	}
	if !rec.hasText("Score: 0") {
		t.Errorf("score readout missing: %q", rec.texts)
	}
}

func TestDrawWithSprites(t *testing.T) {
	s := sessionWithEntities(t)
	rec := &recordingSurface{w: 80, h: 24}
	set := &assets.Set{
		Player:   &core.Sprite{Rows: []string{"@@@", "@@@", "/ \\"}},
		Coin:     &core.Sprite{Rows: []string{"o"}, Color: core.ColorYellow},
		Obstacle: &core.Sprite{Rows: []string{"#"}, Color: core.ColorRed},
	}

	s.Draw(rec, set)

	if rec.rects != 2 || rec.sprites != 4 || rec.circles != 0 {
		t.Errorf("rects %d sprites %d circles %d, expected 2/4/0", rec.rects, rec.sprites, rec.circles)
	}
}

func TestDrawGameOverOverlay(t *testing.T) {
	s, _ := newQuietSession(t)
	s.cur.obstacles = append(s.cur.obstacles, Obstacle{X: 10, W: 1, H: 2})
	s.Tick(testViewport)
	if !s.GameOver() {
		t.Fatal("setup: expected game over")
	}

	rec := &recordingSurface{w: 80, h: 24}
	s.Draw(rec, nil)

	if !rec.hasText("GAME OVER") || !rec.hasText("Press R or click to restart") {
		t.Errorf("overlay missing: %q", rec.texts)
	}
	// Ground, score and a six-row box.
	if len(rec.texts) != 8 {
		t.Errorf("DrawText calls = %d, expected 8", len(rec.texts))
	}
}

func TestDrawOntoScreen(t *testing.T) {
	s := sessionWithEntities(t)
	screen := core.NewScreen(80, 24)

	s.Draw(screen, nil)

	if row := screen.Row(22); !strings.Contains(row, string(GroundChar)) {
		t.Errorf("ground row = %q", row)
	}
	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD row = %q", screen.Row(0))
	}
	if got := screen.Get(9, 20); got != PlayerChar {
		t.Errorf("player cell = %q, expected %q", got, PlayerChar)
	}
	if got := screen.Get(40, 21); got != ObstacleChar {
		t.Errorf("obstacle cell = %q, expected %q", got, ObstacleChar)
	}
}

func TestHUDHidesSpeedWhenFixed(t *testing.T) {
	cfg := quietConfig()
	cfg.Physics.SpeedIncrement = 0
	s := NewSession(cfg, 1, testViewport, nil)

	if text := s.hudText(); strings.Contains(text, "Spd") {
		t.Errorf("fixed speed should not be shown: %q", text)
	}
	s2, _ := newQuietSession(t)
	if text := s2.hudText(); !strings.Contains(text, "Spd: 0.5") {
		t.Errorf("HUD = %q, expected speed readout", text)
	}
}

func TestCenter(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"ab", 6, "  ab  "},
		{"abc", 6, " abc  "},
		{"toolong", 3, "toolong"},
	}
	for _, tt := range tests {
		if got := center(tt.text, tt.width); got != tt.want {
			t.Errorf("center(%q, %d) = %q, expected %q", tt.text, tt.width, got, tt.want)
		}
	}
}
