package runner

import (
	"math/rand"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Phase is the session's state machine position.
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// viewportGeometry is the viewport translated into world coordinates.
type viewportGeometry struct {
	width   float64
	groundY float64
}

// round holds everything that lives for exactly one play-through.
// Restarting builds a fresh round instead of resetting fields one by one.
type round struct {
	phase     Phase
	player    Player
	obstacles []Obstacle
	coins     []Coin
	score     int
	collected int // Coins picked up
	ticks     int
	groundY   float64
	spawner   *Spawner
	ramp      *config.SpeedRamp
}

// Session runs the simulation: one Tick per display frame while running,
// plus the two player entry points RequestJump and RequestRestart.
type Session struct {
	cfg   config.RunnerConfig
	cues  core.CueSink
	seeds *rand.Rand // Seeds each round's spawner
	cur   round
}

// NewSession starts a running session for the given viewport.
// A nil cue sink discards cues.
func NewSession(cfg config.RunnerConfig, seed int64, vp core.Viewport, cues core.CueSink) *Session {
	if cues == nil {
		cues = core.NopCues{}
	}
	s := &Session{
		cfg:   cfg,
		cues:  cues,
		seeds: rand.New(rand.NewSource(seed)),
	}
	s.cur = s.newRound(s.geometry(vp).groundY)
	return s
}

// newRound builds a fresh running round with the player at rest on the ground.
func (s *Session) newRound(groundY float64) round {
	pc := s.cfg.Player
	return round{
		phase:     PhaseRunning,
		player:    newPlayer(pc.X, pc.Width, pc.Height, groundY),
		obstacles: make([]Obstacle, 0, 8),
		coins:     make([]Coin, 0, 8),
		groundY:   groundY,
		spawner:   NewSpawner(s.seeds.Int63(), &s.cfg),
		ramp:      config.NewSpeedRamp(s.cfg.Physics),
	}
}

// geometry converts the viewport to world coordinates.
func (s *Session) geometry(vp core.Viewport) viewportGeometry {
	return viewportGeometry{
		width:   float64(vp.W),
		groundY: float64(vp.H - s.cfg.Player.GroundOffset),
	}
}

// Tick advances the simulation by one frame. It does nothing after game over.
func (s *Session) Tick(vp core.Viewport) {
	r := &s.cur
	if r.phase != PhaseRunning {
		return
	}

	geo := s.geometry(vp)
	s.settle(geo.groundY)
	r.ticks++

	r.player.Step(s.cfg.Physics.Gravity, r.groundY)

	speed := r.ramp.Speed()
	playerRect := r.player.Rect()

	scrollObstacles(r.obstacles, speed)
	for _, o := range r.obstacles {
		if playerRect.Intersects(o.Rect(r.groundY)) {
			r.phase = PhaseGameOver
			s.cues.Play(core.CueHit)
			return
		}
	}
	r.obstacles = cullObstacles(r.obstacles)

	scrollCoins(r.coins, speed)
	for i := range r.coins {
		c := &r.coins[i]
		if c.Collected || !playerRect.IntersectsCircle(c.Circle(r.groundY)) {
			continue
		}
		c.Collected = true
		r.score += s.cfg.Coins.Value
		r.collected++
		s.cues.Play(core.CueCoin)
	}
	r.coins = cullCoins(r.coins)

	obstacle, coin := r.spawner.Spawn(geo)
	if obstacle != nil {
		r.obstacles = append(r.obstacles, *obstacle)
	}
	if coin != nil {
		r.coins = append(r.coins, *coin)
	}

	r.ramp.Observe(r.score)
}

// settle follows a change of the ground line. A grounded player left
// hanging above a lowered ground falls onto it; a raised ground is handled
// by the landing clamp.
func (s *Session) settle(groundY float64) {
	r := &s.cur
	if groundY == r.groundY {
		return
	}
	if groundY > r.groundY && r.player.Grounded {
		r.player.Grounded = false
	}
	r.groundY = groundY
}

// RequestJump makes the player jump if running and grounded.
func (s *Session) RequestJump() bool {
	if s.cur.phase != PhaseRunning {
		return false
	}
	if !s.cur.player.Jump(s.cfg.Physics.JumpStrength) {
		return false
	}
	s.cues.Play(core.CueJump)
	return true
}

// RequestRestart starts a new round after game over. Ignored while running.
func (s *Session) RequestRestart() bool {
	if s.cur.phase != PhaseGameOver {
		return false
	}
	s.cur = s.newRound(s.cur.groundY)
	return true
}

// Phase returns the current state machine phase.
func (s *Session) Phase() Phase {
	return s.cur.phase
}

// GameOver reports whether the round has ended.
func (s *Session) GameOver() bool {
	return s.cur.phase == PhaseGameOver
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.cur.score
}

// CoinsCollected returns how many coins were picked up this round.
func (s *Session) CoinsCollected() int {
	return s.cur.collected
}

// Ticks returns the number of frames simulated this round.
func (s *Session) Ticks() int {
	return s.cur.ticks
}

// Speed returns the current scroll speed.
func (s *Session) Speed() float64 {
	return s.cur.ramp.Speed()
}

// GroundY returns the ground line used by the last tick.
func (s *Session) GroundY() float64 {
	return s.cur.groundY
}

// Player returns a copy of the player.
func (s *Session) Player() Player {
	return s.cur.player
}

// Obstacles returns the live obstacles. The slice must not be modified.
func (s *Session) Obstacles() []Obstacle {
	return s.cur.obstacles
}

// Coins returns the live coins. The slice must not be modified.
func (s *Session) Coins() []Coin {
	return s.cur.coins
}

// Config returns the configuration the session runs with.
func (s *Session) Config() config.RunnerConfig {
	return s.cfg
}
