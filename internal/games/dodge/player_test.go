package dodge

import (
	"testing"

	"github.com/vovakirdan/rocket-dodge/internal/config"
	"github.com/vovakirdan/rocket-dodge/internal/core"
)

func testPlayer() *Player {
	p := &Player{
		ID:       core.Player1,
		Facing:   FacingUp,
		Bounds:   core.NewRect(0, 0, 1000, 550),
		Bindings: DefaultBindings(),
		BaseW:    48,
		BaseH:    70,
		spawnX:   476,
		spawnY:   240,
	}
	p.reset()
	return p
}

func TestPlayerAccelerationIsBounded(t *testing.T) {
	pc := config.DefaultDodgeConfig().Player
	p := testPlayer()
	right := Controls{Right: true}

	for i := 1; i <= 30; i++ {
		p.integrate(right, pc)
		if p.XV > pc.MaxVelocity || p.XV < pc.MinVelocity {
			t.Fatalf("tick %d: velocity %v out of bounds", i, p.XV)
		}
	}
	if p.XV != pc.MaxVelocity {
		t.Errorf("expected terminal velocity %v, got %v", pc.MaxVelocity, p.XV)
	}

	up := Controls{Up: true}
	for range 30 {
		p.integrate(up, pc)
	}
	if p.YV != pc.MinVelocity {
		t.Errorf("expected terminal velocity %v, got %v", pc.MinVelocity, p.YV)
	}
}

func TestPlayerDecelerationStopsAtZero(t *testing.T) {
	pc := config.DefaultDodgeConfig().Player
	p := testPlayer()

	for range 3 {
		p.integrate(Controls{Left: true}, pc)
	}
	if p.XV != -1.5 {
		t.Fatalf("expected -1.5 after three ticks, got %v", p.XV)
	}

	for i := 0; i < 10; i++ {
		p.integrate(Controls{}, pc)
		if p.XV > 0 {
			t.Fatalf("decay overshot zero: %v", p.XV)
		}
	}
	if p.XV != 0 {
		t.Errorf("expected rest, got %v", p.XV)
	}
}

func TestPlayerOppositeKeyBlocksDecay(t *testing.T) {
	pc := config.DefaultDodgeConfig().Player
	p := testPlayer()
	p.YV = -2

	// Down accelerates instead of decaying; up is released but down is held.
	p.integrate(Controls{Down: true}, pc)
	if p.YV != -1.5 {
		t.Errorf("expected -1.5, got %v", p.YV)
	}
}

func TestPlayerStaysInBounds(t *testing.T) {
	pc := config.DefaultDodgeConfig().Player
	p := testPlayer()

	dirs := []Controls{{Right: true}, {Down: true}, {Left: true}, {Up: true}}
	for _, c := range dirs {
		for range 400 {
			p.integrate(c, pc)
			if p.X < p.Bounds.X || p.Y < p.Bounds.Y ||
				p.X+p.W > p.Bounds.Right() || p.Y+p.H > p.Bounds.Bottom() {
				t.Fatalf("rocket left bounds: %+v", p.Rect())
			}
		}
	}
	if p.X != 0 || p.Y != 0 {
		t.Errorf("expected to end in the top-left corner, got (%v, %v)", p.X, p.Y)
	}
	if p.YV != 0 {
		t.Errorf("hitting a wall should stop the rocket, yv=%v", p.YV)
	}
}

func TestPlayerHitboxesUpright(t *testing.T) {
	p := testPlayer()
	p.X, p.Y = 0, 0
	p.W, p.H = 30, 60

	boxes := p.Hitboxes()
	body := core.NewRect(10, 0, 10, 60)
	fins := core.NewRect(0, 40, 30, 20)
	if boxes[0] != body || boxes[1] != fins {
		t.Errorf("unexpected hitboxes %+v", boxes)
	}

	// A circle brushing the top corner of the bounding box misses the body.
	if p.HitsCircle(core.Circle{X: 2, Y: 2, R: 3}) {
		t.Error("corner of the bounding box should not collide")
	}
	if !p.HitsCircle(core.Circle{X: 15, Y: -2, R: 3}) {
		t.Error("nose should collide")
	}
	if !p.HitsCircle(core.Circle{X: -2, Y: 50, R: 3}) {
		t.Error("fins should collide")
	}
}

func TestPlayerHitboxesSideways(t *testing.T) {
	p := testPlayer()
	p.X, p.Y = 0, 0
	p.W, p.H = 60, 30

	p.Facing = FacingRight
	boxes := p.Hitboxes()
	if boxes[1].X != 0 {
		t.Errorf("right-facing fins should be on the left, got %+v", boxes[1])
	}

	p.Facing = FacingLeft
	boxes = p.Hitboxes()
	if boxes[1].X != 40 {
		t.Errorf("left-facing fins should be on the right, got %+v", boxes[1])
	}
	if !p.HitsRect(core.NewRect(-5, 12, 10, 4)) {
		t.Error("nose should collide with a laser")
	}
}

func TestPlayerSetSizeKeepsCenter(t *testing.T) {
	p := testPlayer()
	cx, cy := p.Rect().Center()

	p.setSize(SizeHalf)
	if p.W != 24 || p.H != 35 {
		t.Errorf("expected half size 24x35, got %vx%v", p.W, p.H)
	}
	nx, ny := p.Rect().Center()
	if nx != cx || ny != cy {
		t.Errorf("center moved from (%v,%v) to (%v,%v)", cx, cy, nx, ny)
	}

	p.setSize(SizeNormal)
	if p.W != p.BaseW || p.H != p.BaseH {
		t.Errorf("expected base size, got %vx%v", p.W, p.H)
	}
}

func TestPlayerSetSizeClampsAtEdge(t *testing.T) {
	p := testPlayer()
	p.X = p.Bounds.Right() - p.W

	p.setSize(SizeDouble)
	if p.X+p.W > p.Bounds.Right() {
		t.Errorf("double size pushed the rocket off the field: %+v", p.Rect())
	}
}

func TestPlayerMuzzle(t *testing.T) {
	lc := config.DefaultDodgeConfig().Lasers
	p := testPlayer()

	l := p.muzzle(lc, core.Player1)
	if l.VY >= 0 || l.VX != 0 {
		t.Errorf("upright rocket should fire up, got v=(%v,%v)", l.VX, l.VY)
	}
	if l.Y+l.H != p.Y {
		t.Errorf("laser should leave from the nose, got y=%v", l.Y)
	}

	p.Facing = FacingLeft
	l = p.muzzle(lc, core.Player2)
	if l.VX >= 0 || l.X+l.W != p.X {
		t.Errorf("left-facing rocket should fire left from its nose, got %+v", l)
	}
}

func TestBindingsMirrored(t *testing.T) {
	in := press(core.ActionLeft, core.ActionUp)
	c := DefaultBindings().Mirrored().Read(in)

	if !c.Right || c.Left {
		t.Error("mirrored bindings should swap left and right")
	}
	if !c.Up || c.Down {
		t.Error("mirrored bindings should keep the vertical axis")
	}
}
