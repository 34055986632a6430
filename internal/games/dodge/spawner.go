package dodge

import (
	"time"

	"github.com/vovakirdan/rocket-dodge/internal/config"
)

// Lanes tracks which spawn columns are free. A lane stays closed for a short
// while after use so consecutive spawns do not stack on one spot.
type Lanes struct {
	open  []bool
	width float64
	inset float64
}

// NewLanes creates count open lanes across a field of the given width.
// inset shifts every lane right so sprites centered on it stay on the field.
func NewLanes(count int, width, inset float64) *Lanes {
	l := &Lanes{open: make([]bool, count), width: width, inset: inset}
	l.Reset()
	return l
}

// Count returns the number of lanes.
func (l *Lanes) Count() int {
	return len(l.open)
}

// X returns the center x of lane i.
func (l *Lanes) X(i int) float64 {
	return float64(int(l.width/float64(len(l.open))*float64(i))) + l.inset
}

// Open reports whether lane i is free.
func (l *Lanes) Open(i int) bool {
	return i >= 0 && i < len(l.open) && l.open[i]
}

// Free returns the number of open lanes.
func (l *Lanes) Free() int {
	n := 0
	for _, o := range l.open {
		if o {
			n++
		}
	}
	return n
}

// Acquire closes and returns a uniformly chosen open lane, or false when
// every lane is closed.
func (l *Lanes) Acquire(rng *SimpleRNG) (int, bool) {
	free := l.Free()
	if free == 0 {
		return -1, false
	}
	pick := rng.Intn(free)
	for i, o := range l.open {
		if !o {
			continue
		}
		if pick == 0 {
			l.open[i] = false
			return i, true
		}
		pick--
	}
	return -1, false
}

// Release reopens lane i. Out-of-range lanes are ignored.
func (l *Lanes) Release(i int) {
	if i >= 0 && i < len(l.open) {
		l.open[i] = true
	}
}

// Reset reopens every lane.
func (l *Lanes) Reset() {
	for i := range l.open {
		l.open[i] = true
	}
}

// Spawner builds obstacles and power-ups and decides spawn timing.
// It owns no timers; the game schedules the attempts it asks for.
type Spawner struct {
	cfg   config.DodgeConfig
	rng   *SimpleRNG
	lanes *Lanes
	unit  float64
}

// NewSpawner creates a spawner over the given lanes.
func NewSpawner(cfg config.DodgeConfig, rng *SimpleRNG, lanes *Lanes) *Spawner {
	return &Spawner{cfg: cfg, rng: rng, lanes: lanes, unit: cfg.Unit()}
}

// ObstacleSpeed draws a speed for the level, inclusive of both ends.
func (s *Spawner) ObstacleSpeed(level int) float64 {
	l := s.cfg.Level(level)
	return float64(s.rng.IntRange(l.MinSpeed, l.MaxSpeed))
}

// NextDelay returns the wait before the next spawn attempt.
func (s *Spawner) NextDelay(level int, mode Mode) time.Duration {
	if mode == ModeVersus {
		return time.Duration(s.cfg.Versus.SpawnDelayMS) * time.Millisecond
	}
	l := s.cfg.Level(level)
	return time.Duration(s.rng.IntRange(l.MinDelayMS, l.MaxDelayMS)) * time.Millisecond
}

// NewObstacle places an obstacle above an open lane. It returns false and
// changes nothing when no lane is open.
func (s *Spawner) NewObstacle(level int) (Obstacle, bool) {
	lane, ok := s.lanes.Acquire(s.rng)
	if !ok {
		return Obstacle{}, false
	}
	oc := s.cfg.Obstacles
	r := s.unit
	return Obstacle{
		X:             s.lanes.X(lane),
		Y:             s.cfg.Field.Top - 2*r,
		Radius:        r,
		Speed:         s.ObstacleSpeed(level),
		RotationSpeed: oc.MinRotationSpeed + s.rng.Float64()*(oc.MaxRotationSpeed-oc.MinRotationSpeed),
		Lane:          lane,
	}, true
}

// RollPowerUp reports whether this spawn tick produces a power-up.
func (s *Spawner) RollPowerUp() bool {
	return s.rng.Intn(s.cfg.PowerUps.Chance) == s.cfg.PowerUps.LuckyValue
}

// NewPowerUp places a power-up of a type drawn from pool above an open lane.
func (s *Spawner) NewPowerUp(pool []PowerUpType) (PowerUp, bool) {
	if len(pool) == 0 {
		return PowerUp{}, false
	}
	lane, ok := s.lanes.Acquire(s.rng)
	if !ok {
		return PowerUp{}, false
	}
	r := s.unit * s.cfg.PowerUps.RadiusUnit
	return PowerUp{
		X:      s.lanes.X(lane),
		Y:      s.cfg.Field.Top - 2*r,
		Radius: r,
		Speed:  s.cfg.PowerUps.Speed,
		Type:   pool[s.rng.Intn(len(pool))],
		Lane:   lane,
	}, true
}

// parsePool converts configured names into power-up types, skipping unknown ones.
func parsePool(names []string) []PowerUpType {
	pool := make([]PowerUpType, 0, len(names))
	for _, n := range names {
		if t, ok := ParsePowerUpType(n); ok {
			pool = append(pool, t)
		}
	}
	return pool
}
