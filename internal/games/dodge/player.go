package dodge

import (
	"github.com/vovakirdan/rocket-dodge/internal/config"
	"github.com/vovakirdan/rocket-dodge/internal/core"
	"github.com/vovakirdan/rocket-dodge/internal/sched"
)

// Player is a rocket. The same type serves the solo rocket, both versus
// rockets and twins; only bindings, facing and bounds differ.
type Player struct {
	ID       core.PlayerID
	SpriteID uint64

	X, Y   float64 // Top-left
	XV, YV float64
	W, H   float64

	BaseW, BaseH float64
	Facing       Facing
	Bounds       core.Rect
	Bindings     Bindings

	Lives  int
	Size   SizeState
	Lasers bool
	Twin   *Player
	IsTwin bool

	recentlyShotLaser bool
	cooldown          sched.Handle
	tokens            [powerUpTypeCount]uint64
	spawnX, spawnY    float64
}

// Rect returns the rocket's bounding box.
func (p *Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Hitboxes returns the two strips approximating the rocket silhouette:
// the body along the nose axis and the fins across the tail.
func (p *Player) Hitboxes() [2]core.Rect {
	third := func(v float64) float64 { return v / 3 }
	switch p.Facing {
	case FacingRight:
		return [2]core.Rect{
			core.NewRect(p.X, p.Y+third(p.H), p.W, third(p.H)),
			core.NewRect(p.X, p.Y, third(p.W), p.H),
		}
	case FacingLeft:
		return [2]core.Rect{
			core.NewRect(p.X, p.Y+third(p.H), p.W, third(p.H)),
			core.NewRect(p.X+2*third(p.W), p.Y, third(p.W), p.H),
		}
	default:
		return [2]core.Rect{
			core.NewRect(p.X+third(p.W), p.Y, third(p.W), p.H),
			core.NewRect(p.X, p.Y+2*third(p.H), p.W, third(p.H)),
		}
	}
}

// HitsCircle reports whether either hitbox overlaps c.
func (p *Player) HitsCircle(c core.Circle) bool {
	boxes := p.Hitboxes()
	return core.RectCircleOverlap(boxes[0], c) || core.RectCircleOverlap(boxes[1], c)
}

// HitsRect reports whether either hitbox overlaps r.
func (p *Player) HitsRect(r core.Rect) bool {
	boxes := p.Hitboxes()
	return core.RectRectOverlap(boxes[0], r) || core.RectRectOverlap(boxes[1], r)
}

// integrate applies one tick of acceleration, deceleration and movement.
// Directions are processed up, left, down, right; a released direction only
// decays while its opposite is also released.
func (p *Player) integrate(c Controls, pc config.PlayerConfig) {
	if c.Up {
		if p.YV > pc.MinVelocity {
			p.YV -= pc.Acceleration
		}
	} else if !c.Down && p.YV < 0 {
		p.YV = min(p.YV+pc.Deceleration, 0)
	}

	if c.Left {
		if p.XV > pc.MinVelocity {
			p.XV -= pc.Acceleration
		}
	} else if !c.Right && p.XV < 0 {
		p.XV = min(p.XV+pc.Deceleration, 0)
	}

	if c.Down {
		if p.YV < pc.MaxVelocity {
			p.YV += pc.Acceleration
		}
	} else if !c.Up && p.YV > 0 {
		p.YV = max(p.YV-pc.Deceleration, 0)
	}

	if c.Right {
		if p.XV < pc.MaxVelocity {
			p.XV += pc.Acceleration
		}
	} else if !c.Left && p.XV > 0 {
		p.XV = max(p.XV-pc.Deceleration, 0)
	}

	p.XV = core.ClampF(p.XV, pc.MinVelocity, pc.MaxVelocity)
	p.YV = core.ClampF(p.YV, pc.MinVelocity, pc.MaxVelocity)

	p.X += p.XV
	p.Y += p.YV
	p.clamp()
}

// clamp keeps the rocket inside its bounds, stopping it on the axis it hit.
func (p *Player) clamp() {
	b := p.Bounds
	if p.Y < b.Y {
		p.Y = b.Y
		p.YV = 0
	}
	if p.X < b.X {
		p.X = b.X
		p.XV = 0
	}
	if p.Y > b.Bottom()-p.H {
		p.Y = b.Bottom() - p.H
		p.YV = 0
	}
	if p.X > b.Right()-p.W {
		p.X = b.Right() - p.W
		p.XV = 0
	}
}

// setSize rescales the rocket around its center.
func (p *Player) setSize(s SizeState) {
	cx, cy := p.Rect().Center()
	p.Size = s
	p.W = p.BaseW * s.Scale()
	p.H = p.BaseH * s.Scale()
	p.X = cx - p.W/2
	p.Y = cy - p.H/2
	p.clamp()
}

// reset returns the rocket to its spawn point with no power-ups.
func (p *Player) reset() {
	p.cooldown.Cancel()
	p.recentlyShotLaser = false
	for i := range p.tokens {
		p.tokens[i]++
	}
	p.Size = SizeNormal
	p.W, p.H = p.BaseW, p.BaseH
	p.X, p.Y = p.spawnX, p.spawnY
	p.XV, p.YV = 0, 0
	p.Lasers = false
	if p.Twin != nil {
		p.Twin.cooldown.Cancel()
		p.Twin = nil
	}
}

// rockets returns the player followed by its twin, if any.
func (p *Player) rockets() []*Player {
	if p.Twin == nil {
		return []*Player{p}
	}
	return []*Player{p, p.Twin}
}

// armed reports whether the rocket may shoot in the given mode.
func (p *Player) armed(mode Mode) bool {
	return mode == ModeVersus || p.Lasers
}

// muzzle returns the laser spawned from the rocket's nose.
func (p *Player) muzzle(lc config.LaserConfig, owner core.PlayerID) Laser {
	switch p.Facing {
	case FacingRight:
		return Laser{
			X: p.X + p.W, Y: p.Y + p.H/2 - lc.Width/2,
			W: lc.Height, H: lc.Width,
			VX: lc.Speed, Owner: owner,
		}
	case FacingLeft:
		return Laser{
			X: p.X - lc.Height, Y: p.Y + p.H/2 - lc.Width/2,
			W: lc.Height, H: lc.Width,
			VX: -lc.Speed, Owner: owner,
		}
	default:
		return Laser{
			X: p.X + p.W/2 - lc.Width/2, Y: p.Y - lc.Height,
			W: lc.Width, H: lc.Height,
			VY: -lc.Speed, Owner: owner,
		}
	}
}
