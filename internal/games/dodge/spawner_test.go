package dodge

import (
	"testing"
	"time"

	"github.com/vovakirdan/rocket-dodge/internal/config"
)

func TestLanesPositions(t *testing.T) {
	l := NewLanes(9, 1000, 48)

	tests := []struct {
		lane int
		want float64
	}{
		{0, 48},
		{1, 159},
		{3, 381},
		{8, 936},
	}
	for _, tt := range tests {
		if got := l.X(tt.lane); got != tt.want {
			t.Errorf("X(%d) = %v, want %v", tt.lane, got, tt.want)
		}
	}
}

func TestLanesAcquireUntilFull(t *testing.T) {
	l := NewLanes(9, 1000, 48)
	rng := NewSimpleRNG(99)

	seen := make(map[int]bool)
	for i := 0; i < 9; i++ {
		lane, ok := l.Acquire(rng)
		if !ok {
			t.Fatalf("acquire %d failed with %d lanes free", i, l.Free())
		}
		if seen[lane] {
			t.Fatalf("lane %d handed out twice", lane)
		}
		seen[lane] = true
	}

	if _, ok := l.Acquire(rng); ok {
		t.Fatal("acquire should fail when every lane is locked")
	}

	l.Release(4)
	lane, ok := l.Acquire(rng)
	if !ok || lane != 4 {
		t.Errorf("expected the released lane 4, got %d ok=%v", lane, ok)
	}

	// Out of range releases are ignored.
	l.Release(-1)
	l.Release(9)
	if l.Free() != 0 {
		t.Errorf("expected no free lanes, got %d", l.Free())
	}
}

func TestSpawnerNoFreeLane(t *testing.T) {
	cfg := config.DefaultDodgeConfig()
	rng := NewSimpleRNG(1)
	lanes := NewLanes(cfg.Lanes.Count, cfg.Field.Width, cfg.Unit())
	s := NewSpawner(cfg, rng, lanes)

	for range cfg.Lanes.Count {
		if _, ok := s.NewObstacle(1); !ok {
			t.Fatal("spawn failed with free lanes")
		}
	}
	before := rng.state
	if _, ok := s.NewObstacle(1); ok {
		t.Fatal("spawn should fail with every lane locked")
	}
	if _, ok := s.NewPowerUp([]PowerUpType{PowerUpTwin}); ok {
		t.Fatal("power-up spawn should fail with every lane locked")
	}
	if rng.state != before {
		t.Error("a failed spawn should not consume randomness")
	}
}

func TestSpawnerObstacleShape(t *testing.T) {
	cfg := config.DefaultDodgeConfig()
	lanes := NewLanes(cfg.Lanes.Count, cfg.Field.Width, cfg.Unit())
	s := NewSpawner(cfg, NewSimpleRNG(5), lanes)

	o, ok := s.NewObstacle(1)
	if !ok {
		t.Fatal("spawn failed")
	}
	if o.Radius != 48 {
		t.Errorf("expected radius 48, got %v", o.Radius)
	}
	if o.Y != cfg.Field.Top-96 {
		t.Errorf("obstacle should start above the field, got y=%v", o.Y)
	}
	if o.X != lanes.X(o.Lane) {
		t.Errorf("obstacle should sit on lane %d", o.Lane)
	}
	if lanes.Open(o.Lane) {
		t.Error("spawning should lock the lane")
	}
	if o.RotationSpeed < cfg.Obstacles.MinRotationSpeed || o.RotationSpeed >= cfg.Obstacles.MaxRotationSpeed {
		t.Errorf("rotation speed %v out of range", o.RotationSpeed)
	}
}

func TestSpawnerSpeedInclusive(t *testing.T) {
	cfg := config.DefaultDodgeConfig()
	s := NewSpawner(cfg, NewSimpleRNG(11), NewLanes(9, 1000, 48))

	for level := 1; level <= config.MaxLevels; level++ {
		row := cfg.Level(level)
		seen := make(map[float64]bool)
		for range 2000 {
			v := s.ObstacleSpeed(level)
			if v < float64(row.MinSpeed) || v > float64(row.MaxSpeed) {
				t.Fatalf("level %d: speed %v outside [%d, %d]", level, v, row.MinSpeed, row.MaxSpeed)
			}
			seen[v] = true
		}
		if !seen[float64(row.MinSpeed)] || !seen[float64(row.MaxSpeed)] {
			t.Errorf("level %d: both speed bounds should be reachable, saw %v", level, seen)
		}
	}
}

func TestSpawnerDelay(t *testing.T) {
	cfg := config.DefaultDodgeConfig()
	s := NewSpawner(cfg, NewSimpleRNG(3), NewLanes(9, 1000, 48))

	row := cfg.Level(4)
	lo := time.Duration(row.MinDelayMS) * time.Millisecond
	hi := time.Duration(row.MaxDelayMS) * time.Millisecond
	for range 500 {
		d := s.NextDelay(4, ModeSolo)
		if d < lo || d > hi {
			t.Fatalf("delay %v outside [%v, %v]", d, lo, hi)
		}
	}

	if d := s.NextDelay(4, ModeVersus); d != time.Second {
		t.Errorf("versus spawns on a fixed delay, got %v", d)
	}
}

func TestSpawnerPowerUpPool(t *testing.T) {
	cfg := config.DefaultDodgeConfig()
	s := NewSpawner(cfg, NewSimpleRNG(8), NewLanes(9, 1000, 48))
	pool := parsePool(cfg.Versus.PowerUpPool)

	for range 50 {
		pu, ok := s.NewPowerUp(pool)
		if !ok {
			break
		}
		if pu.Type == PowerUpLasers {
			t.Fatal("lasers are not in the versus pool")
		}
		if pu.Radius != 24 {
			t.Errorf("expected radius 24, got %v", pu.Radius)
		}
		s.lanes.Release(pu.Lane)
	}

	if _, ok := s.NewPowerUp(nil); ok {
		t.Error("empty pool should never spawn")
	}
}

func TestSpawnerPowerUpChance(t *testing.T) {
	cfg := config.DefaultDodgeConfig()
	s := NewSpawner(cfg, NewSimpleRNG(21), NewLanes(9, 1000, 48))

	hits := 0
	const rolls = 10000
	for range rolls {
		if s.RollPowerUp() {
			hits++
		}
	}
	// One in ten, give or take.
	if hits < rolls/20 || hits > rolls/5 {
		t.Errorf("power-up rate %d/%d far from 1/%d", hits, rolls, cfg.PowerUps.Chance)
	}
}

func TestParsePool(t *testing.T) {
	pool := parsePool([]string{"twin", "bogus", "halfsize"})
	if len(pool) != 2 || pool[0] != PowerUpTwin || pool[1] != PowerUpHalfSize {
		t.Errorf("unexpected pool %v", pool)
	}
}

func TestRemoveByID(t *testing.T) {
	items := []*Obstacle{{ID: 1}, {ID: 2}, {ID: 3}}

	items = removeByID(items, 2)
	if len(items) != 2 || items[0].ID != 1 || items[1].ID != 3 {
		t.Errorf("unexpected result %v", items)
	}

	items = removeByID(items, 42)
	if len(items) != 2 {
		t.Error("missing ID should leave the slice untouched")
	}
}
