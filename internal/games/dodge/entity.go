package dodge

import (
	"github.com/vovakirdan/rocket-dodge/internal/core"
)

// Facing is the direction a rocket's nose points.
type Facing int

const (
	FacingUp    Facing = iota // Solo
	FacingRight               // Player 1 in versus
	FacingLeft                // Player 2 in versus
)

// SizeState records which size power-up currently applies.
type SizeState int

const (
	SizeNormal SizeState = iota
	SizeHalf
	SizeDouble
)

// Scale returns the size multiplier for the state.
func (s SizeState) Scale() float64 {
	switch s {
	case SizeHalf:
		return 0.5
	case SizeDouble:
		return 2
	default:
		return 1
	}
}

// PowerUpType identifies a power-up.
type PowerUpType int

const (
	PowerUpHalfSize PowerUpType = iota
	PowerUpDoubleSize
	PowerUpLasers
	PowerUpTwin
	powerUpTypeCount
)

// String returns the config name of the power-up.
func (t PowerUpType) String() string {
	switch t {
	case PowerUpHalfSize:
		return "halfsize"
	case PowerUpDoubleSize:
		return "doublesize"
	case PowerUpLasers:
		return "lasers"
	case PowerUpTwin:
		return "twin"
	default:
		return "unknown"
	}
}

// Glyph returns the display character for a power-up type.
func (t PowerUpType) Glyph() rune {
	switch t {
	case PowerUpHalfSize:
		return 'h'
	case PowerUpDoubleSize:
		return 'D'
	case PowerUpLasers:
		return 'L'
	case PowerUpTwin:
		return 'T'
	default:
		return '?'
	}
}

// ParsePowerUpType converts a config name into a PowerUpType.
func ParsePowerUpType(name string) (PowerUpType, bool) {
	for t := PowerUpHalfSize; t < powerUpTypeCount; t++ {
		if t.String() == name {
			return t, true
		}
	}
	return 0, false
}

// Bindings maps a rocket's controls onto input actions.
type Bindings struct {
	Up, Down, Left, Right, Shoot core.Action
}

// Controls is the resolved per-tick control state of one rocket.
type Controls struct {
	Up, Down, Left, Right, Shoot bool
}

// DefaultBindings returns the action set every player slot reads from its
// own input frame.
func DefaultBindings() Bindings {
	return Bindings{
		Up:    core.ActionUp,
		Down:  core.ActionDown,
		Left:  core.ActionLeft,
		Right: core.ActionRight,
		Shoot: core.ActionShoot,
	}
}

// Mirrored returns the bindings with the horizontal axis swapped.
func (b Bindings) Mirrored() Bindings {
	b.Left, b.Right = b.Right, b.Left
	return b
}

// Read resolves the bindings against an input frame.
func (b Bindings) Read(in core.InputFrame) Controls {
	return Controls{
		Up:    in.Has(b.Up),
		Down:  in.Has(b.Down),
		Left:  in.Has(b.Left),
		Right: in.Has(b.Right),
		Shoot: in.Has(b.Shoot),
	}
}

// Obstacle is a falling asteroid.
type Obstacle struct {
	ID            uint64
	X, Y          float64 // Center
	Radius        float64
	Speed         float64
	Rotation      float64
	RotationSpeed float64
	Lane          int
}

// Hitbox returns the collision circle, smaller than the drawn one.
func (o *Obstacle) Hitbox(scale float64) core.Circle {
	return core.Circle{X: o.X, Y: o.Y, R: o.Radius * scale}
}

// PowerUp is a falling pickup.
type PowerUp struct {
	ID     uint64
	X, Y   float64 // Center
	Radius float64
	Speed  float64
	Type   PowerUpType
	Lane   int
}

// Circle returns the pickup's collision circle.
func (p *PowerUp) Circle() core.Circle {
	return core.Circle{X: p.X, Y: p.Y, R: p.Radius}
}

// Laser is a shot fired by a rocket.
type Laser struct {
	ID     uint64
	X, Y   float64 // Top-left
	W, H   float64
	VX, VY float64
	Owner  core.PlayerID
}

// Rect returns the laser's bounding box.
func (l *Laser) Rect() core.Rect {
	return core.NewRect(l.X, l.Y, l.W, l.H)
}

// EntityID returns the obstacle's stable ID.
func (o *Obstacle) EntityID() uint64 { return o.ID }

// EntityID returns the power-up's stable ID.
func (p *PowerUp) EntityID() uint64 { return p.ID }

// EntityID returns the laser's stable ID.
func (l *Laser) EntityID() uint64 { return l.ID }

type identified interface {
	EntityID() uint64
}

// removeByID deletes the entity with the given ID, preserving order.
// A missing ID leaves the slice untouched.
func removeByID[T identified](items []T, id uint64) []T {
	for i, e := range items {
		if e.EntityID() == id {
			copy(items[i:], items[i+1:])
			var zero T
			items[len(items)-1] = zero
			return items[:len(items)-1]
		}
	}
	return items
}
