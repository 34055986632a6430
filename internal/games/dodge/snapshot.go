package dodge

import (
	"math"
	"time"
)

// Snapshot is a flat copy of the simulation state for determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick     uint64
	Clock    time.Duration
	Phase    int
	Paused   bool
	Level    int
	Score    int
	Passed   int
	Spawned  int
	Winner   int
	RNGState uint64

	// Each player is 9 values: ID, X, Y, XV, YV, W, H, Lives, flags
	// (size state, lasers bit, twin bit packed into one float).
	PlayerData []float64

	// Each obstacle is 5 values: ID, X, Y, Speed, Lane
	ObstacleData []float64

	// Each power-up is 5 values: ID, X, Y, Type, Lane
	PowerUpData []float64

	// Each laser is 5 values: ID, X, Y, VX, VY
	LaserData []float64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:    g.tickCount,
		Phase:   int(g.phase),
		Paused:  g.paused,
		Level:   g.level,
		Score:   g.score,
		Passed:  g.passed,
		Spawned: g.spawned,
		Winner:  int(g.winner),
	}
	if g.clock != nil {
		snap.Clock = g.clock.Now()
	}
	if g.rng != nil {
		snap.RNGState = g.rng.state
	}

	for _, p := range g.players {
		for _, r := range p.rockets() {
			flags := float64(r.Size)
			if p.Lasers {
				flags += 10
			}
			if r.IsTwin {
				flags += 100
			}
			snap.PlayerData = append(snap.PlayerData,
				float64(p.ID), r.X, r.Y, r.XV, r.YV, r.W, r.H, float64(p.Lives), flags)
		}
	}
	for _, o := range g.obstacles {
		snap.ObstacleData = append(snap.ObstacleData, float64(o.ID), o.X, o.Y, o.Speed, float64(o.Lane))
	}
	for _, pu := range g.powerUps {
		snap.PowerUpData = append(snap.PowerUpData, float64(pu.ID), pu.X, pu.Y, float64(pu.Type), float64(pu.Lane))
	}
	for _, l := range g.lasers {
		snap.LaserData = append(snap.LaserData, float64(l.ID), l.X, l.Y, l.VX, l.VY)
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Clock)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Phase)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Passed)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Spawned) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Winner)  //#nosec G115 -- hash computation
	if snap.Paused {
		h = h*31 + 1
	}

	for _, data := range [][]float64{snap.PlayerData, snap.ObstacleData, snap.PowerUpData, snap.LaserData} {
		h = h*31 + uint64(len(data))
		for _, v := range data {
			h = h*31 + math.Float64bits(v)
		}
	}

	h = h*31 + snap.RNGState
	return h
}
