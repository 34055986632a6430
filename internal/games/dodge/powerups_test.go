package dodge

import (
	"testing"
	"time"

	"github.com/vovakirdan/rocket-dodge/internal/core"
)

func TestPowerUpRevertIsIdempotent(t *testing.T) {
	g := newStarted(t, ModeSolo)
	p := g.player(core.Player1)

	g.applyPowerUp(p, PowerUpHalfSize)
	if p.Size != SizeHalf || p.W != p.BaseW/2 {
		t.Fatalf("expected half size, got %v w=%v", p.Size, p.W)
	}

	g.revertPowerUp(p, PowerUpHalfSize)
	w, x := p.W, p.X
	g.revertPowerUp(p, PowerUpHalfSize)

	if p.Size != SizeNormal || p.W != w || p.X != x {
		t.Errorf("second revert changed state: size=%v w=%v x=%v", p.Size, p.W, p.X)
	}

	g.applyPowerUp(p, PowerUpLasers)
	g.revertPowerUp(p, PowerUpLasers)
	g.revertPowerUp(p, PowerUpLasers)
	if p.Lasers {
		t.Error("lasers should be off after revert")
	}
}

func TestPowerUpRevertLeavesOtherSize(t *testing.T) {
	g := newStarted(t, ModeSolo)
	p := g.player(core.Player1)

	g.applyPowerUp(p, PowerUpHalfSize)
	g.applyPowerUp(p, PowerUpDoubleSize)
	g.revertPowerUp(p, PowerUpHalfSize)

	if p.Size != SizeDouble {
		t.Errorf("reverting half size should not undo double size, got %v", p.Size)
	}
}

func TestPowerUpExpires(t *testing.T) {
	g := newStarted(t, ModeSolo)
	p := g.player(core.Player1)

	g.applyPowerUp(p, PowerUpDoubleSize)
	g.clock.Advance(4 * time.Second)
	if p.Size != SizeDouble {
		t.Fatal("power-up expired early")
	}
	g.clock.Advance(time.Second)
	if p.Size != SizeNormal {
		t.Errorf("power-up should expire after its duration, got %v", p.Size)
	}
}

func TestPowerUpPickupExtendsDuration(t *testing.T) {
	g := newStarted(t, ModeSolo)
	p := g.player(core.Player1)

	g.applyPowerUp(p, PowerUpHalfSize)
	g.clock.Advance(3 * time.Second)
	g.applyPowerUp(p, PowerUpHalfSize)
	g.clock.Advance(3 * time.Second)
	if p.Size != SizeHalf {
		t.Fatal("first expiry should be superseded by the second pickup")
	}
	g.clock.Advance(2 * time.Second)
	if p.Size != SizeNormal {
		t.Errorf("second expiry should apply, got %v", p.Size)
	}
}

func TestPowerUpStaleExpiryAfterReset(t *testing.T) {
	g := newStarted(t, ModeSolo)
	p := g.player(core.Player1)

	g.applyPowerUp(p, PowerUpHalfSize)
	p.reset()
	g.clock.Advance(3 * time.Second)
	g.applyPowerUp(p, PowerUpHalfSize)
	g.clock.Advance(2500 * time.Millisecond)

	if p.Size != SizeHalf {
		t.Error("expiry from before the reset should not end the new pickup")
	}
}

func TestPowerUpPickup(t *testing.T) {
	g := newStarted(t, ModeSolo)
	p := g.player(core.Player1)
	cx, cy := p.Rect().Center()

	g.powerUps = append(g.powerUps, &PowerUp{
		ID: g.newID(), X: cx, Y: cy - 3, Radius: 24, Speed: 3, Type: PowerUpDoubleSize, Lane: -1,
	})
	res := g.Step(core.NewInputFrame())

	if p.Size != SizeDouble {
		t.Errorf("expected double size after pickup, got %v", p.Size)
	}
	if len(g.powerUps) != 0 {
		t.Error("collected power-up should leave the field")
	}
	found := false
	for _, ev := range res.Events {
		if ev.Message == "power-up collected" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a pickup event, got %v", res.Events)
	}
	if g.passed != 0 || g.Lives(core.Player1) != 3 {
		t.Error("a pickup is neither a pass nor a hit")
	}
}

func TestPowerUpFallsOffField(t *testing.T) {
	g := newStarted(t, ModeSolo)
	g.powerUps = append(g.powerUps, &PowerUp{
		ID: g.newID(), X: 48, Y: g.cfg.Field.Bottom() + 23, Radius: 24, Speed: 3, Type: PowerUpTwin, Lane: 0,
	})

	g.Step(core.NewInputFrame())
	if len(g.powerUps) != 0 {
		t.Error("power-up below the field should be removed")
	}
}

func TestPowerUpLasers(t *testing.T) {
	g := newStarted(t, ModeSolo)
	p := g.player(core.Player1)
	shoot := press(core.ActionShoot)

	g.Step(shoot)
	if len(g.lasers) != 0 {
		t.Fatal("solo rocket should not fire without the lasers power-up")
	}

	g.applyPowerUp(p, PowerUpLasers)

	// 300ms cooldown at 60 ticks per second.
	for range 19 {
		g.Step(shoot)
	}
	if len(g.lasers) != 1 {
		t.Fatalf("expected one laser during the cooldown, got %d", len(g.lasers))
	}
	g.Step(shoot)
	if len(g.lasers) != 2 {
		t.Fatalf("expected a second laser after the cooldown, got %d", len(g.lasers))
	}
}

func TestPowerUpLaserScoresInSolo(t *testing.T) {
	g := newStarted(t, ModeSolo)
	p := g.player(core.Player1)
	g.applyPowerUp(p, PowerUpLasers)

	cx, _ := p.Rect().Center()
	g.obstacles = append(g.obstacles, &Obstacle{ID: g.newID(), X: cx, Y: 60, Radius: g.unit, Speed: 0, Lane: -1})
	g.spawned = 1

	g.Step(press(core.ActionShoot))
	for i := 0; i < 30 && len(g.obstacles) > 0; i++ {
		g.Step(core.NewInputFrame())
	}

	if len(g.obstacles) != 0 {
		t.Fatal("laser should destroy the obstacle")
	}
	if g.passed != 1 || g.score != 1 {
		t.Errorf("shot obstacle should count as passed, passed=%d score=%d", g.passed, g.score)
	}
	if len(g.lasers) != 0 {
		t.Error("laser should be consumed by the hit")
	}
}

func TestPowerUpTwin(t *testing.T) {
	g := newStarted(t, ModeSolo)
	p := g.player(core.Player1)

	g.applyPowerUp(p, PowerUpTwin)
	twin := p.Twin
	if twin == nil || !twin.IsTwin {
		t.Fatal("expected a twin")
	}
	g.applyPowerUp(p, PowerUpTwin)
	if p.Twin != twin {
		t.Error("a player should never have more than one twin")
	}

	x, tx := p.X, twin.X
	for range 5 {
		g.Step(press(core.ActionRight))
	}
	if p.X <= x || twin.X >= tx {
		t.Errorf("twin should mirror horizontal input: player %v->%v twin %v->%v", x, p.X, tx, twin.X)
	}

	// Size power-ups apply to both rockets.
	g.applyPowerUp(p, PowerUpHalfSize)
	if twin.Size != SizeHalf {
		t.Error("twin should share size effects")
	}
}

func TestPowerUpTwinTakesHits(t *testing.T) {
	g := newStarted(t, ModeSolo)
	p := g.player(core.Player1)

	g.applyPowerUp(p, PowerUpTwin)
	for range 30 {
		g.Step(press(core.ActionRight))
	}
	dropOn(g, p.Twin, 3)
	g.Step(core.NewInputFrame())

	if g.Lives(core.Player1) != 2 {
		t.Fatalf("a hit on the twin should cost a life, lives=%d", g.Lives(core.Player1))
	}
	for i := 0; i < 200 && g.Phase() == PhaseLifeLost; i++ {
		g.Step(core.NewInputFrame())
	}
	if p.Twin != nil {
		t.Error("twin should be lost with the life")
	}
}
