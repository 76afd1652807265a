package runner

import (
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
)

var testGeometry = viewportGeometry{width: 80, groundY: 22}

func TestSpawnerCooldown(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Obstacles.SpawnChance = 1
	cfg.Obstacles.Cooldown = 5
	cfg.Coins.SpawnChance = 0
	sp := NewSpawner(1, &cfg)

	var spawnedAt []int
	for tick := 0; tick < 12; tick++ {
		o, _ := sp.Spawn(testGeometry)
		if o != nil {
			spawnedAt = append(spawnedAt, tick)
			if sp.Cooldown() != 5 {
				t.Errorf("cooldown after spawn = %d, expected 5", sp.Cooldown())
			}
		} else if sp.Cooldown() == 0 {
			t.Errorf("tick %d: no spawn with chance 1 and cooldown expired", tick)
		}
	}

	want := []int{0, 5, 10}
	if len(spawnedAt) != len(want) {
		t.Fatalf("spawned at %v, expected %v", spawnedAt, want)
	}
	for i := range want {
		if spawnedAt[i] != want[i] {
			t.Fatalf("spawned at %v, expected %v", spawnedAt, want)
		}
	}
}

func TestSpawnerPlacesAtRightEdge(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Obstacles.SpawnChance = 1
	cfg.Coins.SpawnChance = 1
	sp := NewSpawner(7, &cfg)

	o, c := sp.Spawn(testGeometry)
	if o == nil || c == nil {
		t.Fatal("both entities should spawn with chance 1")
	}
	if o.X != testGeometry.width || c.X != testGeometry.width {
		t.Errorf("spawn X = %v / %v, expected %v", o.X, c.X, testGeometry.width)
	}
	if o.W < 1 || o.W > 3 || o.H < 2 || o.H > 4 {
		t.Errorf("obstacle size %vx%v outside configured range", o.W, o.H)
	}
	if c.R != cfg.Coins.Radius {
		t.Errorf("coin radius = %v", c.R)
	}
}

func TestSpawnerZeroChance(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Obstacles.SpawnChance = 0
	cfg.Coins.SpawnChance = 0
	sp := NewSpawner(3, &cfg)

	for i := 0; i < 1000; i++ {
		if o, c := sp.Spawn(testGeometry); o != nil || c != nil {
			t.Fatal("nothing should spawn with zero chance")
		}
	}
}

func TestCoinRiseStaysReachable(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Coins.SpawnChance = 1
	cfg.Obstacles.SpawnChance = 0
	sp := NewSpawner(11, &cfg)

	reach := cfg.Physics.JumpApex() + cfg.Player.Height
	for i := 0; i < 500; i++ {
		_, c := sp.Spawn(testGeometry)
		if c.Rise < c.R || c.Rise > reach {
			t.Fatalf("coin rise %v outside [%v, %v]", c.Rise, c.R, reach)
		}
		if top := testGeometry.groundY - c.Rise - c.R; top < hudRows {
			t.Fatalf("coin overlaps the HUD row: top %v", top)
		}
	}
}

func TestRiseBandTinyScreen(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	sp := NewSpawner(1, &cfg)

	lo, hi := sp.riseBand(viewportGeometry{width: 20, groundY: 2})
	if lo != hi {
		t.Errorf("band on a tiny screen should collapse, got [%v, %v]", lo, hi)
	}
}

func TestSpawnerDeterministic(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	a := NewSpawner(42, &cfg)
	b := NewSpawner(42, &cfg)

	for i := 0; i < 2000; i++ {
		oa, ca := a.Spawn(testGeometry)
		ob, cb := b.Spawn(testGeometry)
		if (oa == nil) != (ob == nil) || (ca == nil) != (cb == nil) {
			t.Fatalf("tick %d: spawners diverged", i)
		}
		if oa != nil && *oa != *ob {
			t.Fatalf("tick %d: obstacles differ: %+v vs %+v", i, *oa, *ob)
		}
		if ca != nil && *ca != *cb {
			t.Fatalf("tick %d: coins differ: %+v vs %+v", i, *ca, *cb)
		}
	}
}
