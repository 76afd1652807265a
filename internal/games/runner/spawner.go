package runner

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-runner/internal/config"
)

// hudRows is the number of rows at the top of the screen reserved for the score.
const hudRows = 1

// Spawner creates obstacles and coins at the right edge of the viewport.
// All randomness comes from a seeded RNG so runs are reproducible.
type Spawner struct {
	rng      *rand.Rand
	cfg      *config.RunnerConfig
	cooldown int // Ticks until another obstacle may spawn
}

// NewSpawner creates a spawner with the given RNG seed.
func NewSpawner(seed int64, cfg *config.RunnerConfig) *Spawner {
	return &Spawner{
		rng: rand.New(rand.NewSource(seed)),
		cfg: cfg,
	}
}

// Cooldown returns the remaining obstacle cooldown in ticks.
func (s *Spawner) Cooldown() int {
	return s.cooldown
}

// Spawn runs one tick of spawning. Obstacle and coin checks are independent;
// either, both or neither may produce an entity.
func (s *Spawner) Spawn(vp viewportGeometry) (*Obstacle, *Coin) {
	var obstacle *Obstacle
	var coin *Coin

	if s.cooldown > 0 {
		s.cooldown--
	}
	if s.cooldown == 0 && s.rng.Float64() < s.cfg.Obstacles.SpawnChance {
		o := s.newObstacle(vp)
		obstacle = &o
		s.cooldown = s.cfg.Obstacles.Cooldown
	}

	if s.rng.Float64() < s.cfg.Coins.SpawnChance {
		c := s.newCoin(vp)
		coin = &c
	}

	return obstacle, coin
}

// newObstacle creates an obstacle with random size at the right edge.
func (s *Spawner) newObstacle(vp viewportGeometry) Obstacle {
	oc := s.cfg.Obstacles
	return Obstacle{
		X: vp.width,
		W: float64(s.intBetween(oc.MinWidth, oc.MaxWidth)),
		H: float64(s.intBetween(oc.MinHeight, oc.MaxHeight)),
	}
}

// newCoin creates a coin at the right edge within the band the player can reach.
func (s *Spawner) newCoin(vp viewportGeometry) Coin {
	lo, hi := s.riseBand(vp)
	return Coin{
		X:    vp.width,
		Rise: lo + s.rng.Float64()*(hi-lo),
		R:    s.cfg.Coins.Radius,
	}
}

// riseBand returns the allowed range for a coin center above the ground.
// The top is limited by the highest point of the player's jump and by the
// HUD row; the bottom keeps the coin off the ground.
func (s *Spawner) riseBand(vp viewportGeometry) (float64, float64) {
	cc := s.cfg.Coins
	reach := s.cfg.Physics.JumpApex() + s.cfg.Player.Height
	ceiling := vp.groundY - hudRows - cc.Radius

	lo := math.Max(cc.MinRise, cc.Radius)
	hi := math.Min(cc.MaxRise, math.Min(reach, ceiling))
	if hi < lo {
		hi = lo // Tiny screens: pin the coin to the lowest allowed height
	}
	return lo, hi
}

// intBetween returns a uniform integer in [lo, hi].
func (s *Spawner) intBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}
