package dodge

import (
	"github.com/vovakirdan/rocket-dodge/internal/core"
)

// simulate runs one tick of the update loop. Timers have already fired.
func (g *Game) simulate(in core.MultiInputFrame) {
	g.background += g.cfg.Field.BackgroundPan

	if !g.phase.moving() {
		return
	}

	g.updatePlayers(in)
	if !g.updateObstacles() {
		return
	}
	g.updatePowerUps()
	if !g.updateLasers() {
		return
	}

	if g.phase == PhaseLevelComplete && len(g.obstacles) == 0 && in.Any(core.ActionConfirm) {
		g.nextLevel()
	}
}

// updatePlayers integrates every rocket and fires lasers.
func (g *Game) updatePlayers(in core.MultiInputFrame) {
	for _, p := range g.players {
		frame := in.Player(p.ID)
		for _, r := range p.rockets() {
			c := r.Bindings.Read(frame)
			r.integrate(c, g.cfg.Player)
			if c.Shoot && !r.recentlyShotLaser && p.armed(g.mode) {
				g.shoot(r, p.ID)
			}
		}
	}
}

func (g *Game) shoot(r *Player, owner core.PlayerID) {
	l := r.muzzle(g.cfg.Lasers, owner)
	l.ID = g.newID()
	g.lasers = append(g.lasers, &l)

	r.recentlyShotLaser = true
	r.cooldown.Cancel()
	r.cooldown = g.clock.After(ms(g.cfg.Lasers.CooldownMS), func() {
		r.recentlyShotLaser = false
	})
}

// updateObstacles moves every obstacle, then resolves hits and exits.
// It returns false when a hit ended the tick.
func (g *Game) updateObstacles() bool {
	scale := g.cfg.Obstacles.HitboxScale
	for _, o := range g.obstacles {
		o.Y += o.Speed
		o.Rotation += o.RotationSpeed
	}

	var struck []core.PlayerID
	for _, o := range g.obstacles {
		hit := o.Hitbox(scale)
		for _, p := range g.players {
			if g.rocketHit(p, func(r *Player) bool { return r.HitsCircle(hit) }) && !containsID(struck, p.ID) {
				struck = append(struck, p.ID)
			}
		}
	}
	if len(struck) > 0 {
		g.loseLife(struck...)
		return false
	}

	bottom := g.cfg.Field.Bottom()
	var exited []uint64
	for _, o := range g.obstacles {
		if o.Y > bottom+o.Radius {
			exited = append(exited, o.ID)
		}
	}
	for _, id := range exited {
		g.obstacles = removeByID(g.obstacles, id)
		g.passObstacle()
	}
	return true
}

// passObstacle counts one obstacle as cleared.
func (g *Game) passObstacle() {
	g.passed++
	g.score++
	if g.mode == ModeSolo {
		g.checkLevel()
	}
}

// updatePowerUps moves pickups and applies the ones a rocket touches.
func (g *Game) updatePowerUps() {
	bottom := g.cfg.Field.Bottom()
	var gone []uint64
	for _, pu := range g.powerUps {
		pu.Y += pu.Speed

		c := pu.Circle()
		var taker *Player
		for _, p := range g.players {
			if g.rocketHit(p, func(r *Player) bool { return r.HitsCircle(c) }) {
				taker = p
				break
			}
		}

		switch {
		case taker != nil:
			gone = append(gone, pu.ID)
			g.applyPowerUp(taker, pu.Type)
		case pu.Y > bottom+pu.Radius:
			gone = append(gone, pu.ID)
		}
	}
	for _, id := range gone {
		g.powerUps = removeByID(g.powerUps, id)
	}
}

// updateLasers moves shots and resolves their hits. It returns false when a
// hit ended the tick.
func (g *Game) updateLasers() bool {
	f := g.cfg.Field
	scale := g.cfg.Obstacles.HitboxScale
	var gone []uint64
	var struck []core.PlayerID

	for _, l := range g.lasers {
		l.X += l.VX
		l.Y += l.VY
		rect := l.Rect()

		var target *Obstacle
		for _, o := range g.obstacles {
			if core.RectCircleOverlap(rect, o.Hitbox(scale)) {
				target = o
				break
			}
		}
		if target != nil {
			gone = append(gone, l.ID)
			g.obstacles = removeByID(g.obstacles, target.ID)
			if g.mode == ModeSolo {
				g.passObstacle()
			}
			continue
		}

		if g.mode == ModeVersus {
			if p := g.player(l.Owner.Opponent()); p != nil &&
				g.rocketHit(p, func(r *Player) bool { return r.HitsRect(rect) }) {
				gone = append(gone, l.ID)
				if !containsID(struck, p.ID) {
					struck = append(struck, p.ID)
				}
				continue
			}
		}

		if rect.Bottom() < f.Top || rect.Y > f.Bottom() || rect.Right() < 0 || rect.X > f.Width {
			gone = append(gone, l.ID)
		}
	}

	for _, id := range gone {
		g.lasers = removeByID(g.lasers, id)
	}
	if len(struck) > 0 {
		g.loseLife(struck...)
		return false
	}
	return true
}

// rocketHit reports whether test holds for the player or its twin.
func (g *Game) rocketHit(p *Player, test func(*Player) bool) bool {
	for _, r := range p.rockets() {
		if test(r) {
			return true
		}
	}
	return false
}

// trySpawnObstacle is the spawn timer callback. It always schedules the next
// attempt while spawning is allowed, even when no lane was free.
func (g *Game) trySpawnObstacle() {
	if g.phase != PhasePlaying {
		return
	}
	if g.mode == ModeSolo && g.spawned >= g.cfg.Level(g.level).Obstacles {
		return
	}

	level := g.spawnLevel()
	if o, ok := g.spawner.NewObstacle(level); ok {
		o.ID = g.newID()
		g.obstacles = append(g.obstacles, &o)
		g.spawned++
		g.lockLane(o.Lane)
		g.trySpawnPowerUp()
	}

	g.spawnHandle = g.clock.After(g.spawner.NextDelay(level, g.mode), g.trySpawnObstacle)
}

// trySpawnPowerUp rolls for a power-up after a successful obstacle spawn.
func (g *Game) trySpawnPowerUp() {
	if !g.spawner.RollPowerUp() {
		return
	}
	pu, ok := g.spawner.NewPowerUp(g.pool)
	if !ok {
		return
	}
	pu.ID = g.newID()
	g.powerUps = append(g.powerUps, &pu)
	g.lockLane(pu.Lane)
}

func (g *Game) lockLane(lane int) {
	g.clock.After(ms(g.cfg.Lanes.LockMS), func() {
		g.lanes.Release(lane)
	})
}

// spawnLevel returns the level row obstacles are drawn from.
func (g *Game) spawnLevel() int {
	if g.mode == ModeVersus {
		return g.cfg.Versus.Level
	}
	return g.level
}

func containsID(ids []core.PlayerID, id core.PlayerID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
