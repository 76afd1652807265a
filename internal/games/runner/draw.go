package runner

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-runner/internal/assets"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Fallback shapes used when a sprite is unavailable.
const (
	PlayerChar   = '█'
	ObstacleChar = '▓'
	CoinChar     = '●'
	GroundChar   = '═'
)

// Draw renders the session: ground, every live entity once, the score
// readout and, after game over, the overlay. Missing sprites fall back to
// solid shapes.
func (s *Session) Draw(dst core.Surface, sprites *assets.Set) {
	if sprites == nil {
		sprites = &assets.Set{}
	}
	r := &s.cur
	groundRow := int(r.groundY)

	dst.DrawText(0, groundRow, strings.Repeat(string(GroundChar), dst.Width()))

	for _, o := range r.obstacles {
		drawObstacle(dst, o, r.groundY, sprites.Obstacle)
	}
	for _, c := range r.coins {
		drawCoin(dst, c, r.groundY, sprites.Coin)
	}
	drawPlayer(dst, r.player, sprites)

	dst.DrawText(2, 0, s.hudText())

	if r.phase == PhaseGameOver {
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d", r.score),
			"Press R or click to restart")
	}
}

// hudText returns the score readout, with the speed when it can change.
func (s *Session) hudText() string {
	if s.cur.ramp.IsEnabled() {
		return fmt.Sprintf(" Score: %d  Spd: %.1f ", s.cur.score, s.cur.ramp.Speed())
	}
	return fmt.Sprintf(" Score: %d ", s.cur.score)
}

// drawPlayer draws the player sprite for its current pose.
func drawPlayer(dst core.Surface, p Player, sprites *assets.Set) {
	sp := sprites.Player
	if !p.Grounded && sprites.Airborne != nil {
		sp = sprites.Airborne
	}
	if sp == nil {
		dst.FillRect(p.Rect(), PlayerChar, core.ColorBrightBlue)
		return
	}
	cell := p.Rect().Cells()
	dst.DrawSprite(cell.X, cell.Y, sp)
}

// drawObstacle fills the obstacle with the sprite's tile rune.
func drawObstacle(dst core.Surface, o Obstacle, groundY float64, tile *core.Sprite) {
	fill, color := ObstacleChar, core.ColorRed
	if r, ok := firstRune(tile); ok {
		fill, color = r, tile.Color
	}
	dst.FillRect(o.Rect(groundY), fill, color)
}

// drawCoin centers the coin sprite on the coin.
func drawCoin(dst core.Surface, c Coin, groundY float64, sp *core.Sprite) {
	circle := c.Circle(groundY)
	if sp == nil {
		dst.FillCircle(circle, CoinChar, core.ColorYellow)
		return
	}
	w, h := sp.Size()
	x := int(math.Floor(circle.X - float64(w)/2))
	y := int(math.Floor(circle.Y - float64(h)/2))
	dst.DrawSprite(x, y, sp)
}

// firstRune returns the first non-space rune of a sprite.
func firstRune(sp *core.Sprite) (rune, bool) {
	if sp == nil {
		return 0, false
	}
	for _, row := range sp.Rows {
		for _, r := range row {
			if r != ' ' {
				return r, true
			}
		}
	}
	return 0, false
}

// drawCenteredMessage draws a framed message box in the center of the surface.
func drawCenteredMessage(dst core.Surface, title string, lines ...string) {
	inner := len([]rune(title))
	for _, l := range lines {
		inner = core.Max(inner, len([]rune(l)))
	}
	inner += 2

	boxH := len(lines) + 4
	boxX := (dst.Width() - inner - 2) / 2
	boxY := (dst.Height() - boxH) / 2

	rows := make([]string, 0, boxH)
	rows = append(rows, "┌"+strings.Repeat("─", inner)+"┐")
	rows = append(rows, "│"+center(title, inner)+"│")
	rows = append(rows, "│"+strings.Repeat(" ", inner)+"│")
	for _, l := range lines {
		rows = append(rows, "│"+center(l, inner)+"│")
	}
	rows = append(rows, "└"+strings.Repeat("─", inner)+"┘")

	for i, row := range rows {
		dst.DrawText(boxX, boxY+i, row)
	}
}

// center pads text with spaces to the given width.
func center(text string, width int) string {
	n := len([]rune(text))
	if n >= width {
		return text
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", width-n-left)
}
