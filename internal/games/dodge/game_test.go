package dodge

import (
	"strings"
	"testing"

	"github.com/vovakirdan/rocket-dodge/internal/config"
	"github.com/vovakirdan/rocket-dodge/internal/core"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

// newStarted returns a game already in PhasePlaying with spawning stopped,
// so tests control every entity on the field.
func newStarted(t *testing.T, mode Mode) *Game {
	t.Helper()
	g := NewWithConfig(mode, config.DefaultDodgeConfig())
	g.Reset(testRuntime(42))

	g.Step(press(core.ActionConfirm))
	if g.Phase() != PhasePlaying {
		t.Fatalf("expected playing after confirm, got %s", g.Phase())
	}
	g.spawnHandle.Cancel()
	return g
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func idle(g *Game, ticks int) {
	for range ticks {
		g.Step(core.NewInputFrame())
	}
}

// dropOn places an obstacle centered on the rocket's body.
func dropOn(g *Game, p *Player, speed float64) *Obstacle {
	cx, cy := p.Rect().Center()
	o := &Obstacle{ID: g.newID(), X: cx, Y: cy - speed, Radius: g.unit, Speed: speed, Lane: -1}
	g.obstacles = append(g.obstacles, o)
	return o
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 900)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i == 0:
			inputs[i].Set(core.ActionConfirm)
		case i%90 < 30:
			inputs[i].Set(core.ActionLeft)
		case i%90 < 60:
			inputs[i].Set(core.ActionRight)
			inputs[i].Set(core.ActionUp)
		default:
			inputs[i].Set(core.ActionDown)
		}
	}

	run := func() Snapshot {
		g := New()
		g.Reset(testRuntime(12345))
		for _, in := range inputs {
			g.Step(in)
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Spawned != snap2.Spawned || snap1.Score != snap2.Score {
		t.Errorf("Determinism failed: spawned %d/%d score %d/%d",
			snap1.Spawned, snap2.Spawned, snap1.Score, snap2.Score)
	}
	if snap1.Spawned == 0 {
		t.Error("expected obstacles to have spawned during the run")
	}
}

func TestGameDifferentSeedsDiverge(t *testing.T) {
	run := func(seed int64) uint64 {
		g := New()
		g.Reset(testRuntime(seed))
		g.Step(press(core.ActionConfirm))
		idle(g, 300)
		snap := g.Snapshot()
		return snap.Hash()
	}
	if run(1) == run(2) {
		t.Error("expected different seeds to produce different runs")
	}
}

func TestGameStartsInMenu(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	if g.Phase() != PhaseMenu {
		t.Fatalf("expected menu after reset, got %s", g.Phase())
	}

	idle(g, 120)
	if len(g.obstacles) != 0 || g.tickCount != 0 {
		t.Error("nothing should move before the game starts")
	}

	res := g.Step(press(core.ActionConfirm))
	if res.State.Phase != "playing" {
		t.Errorf("expected playing, got %s", res.State.Phase)
	}
	if res.State.Level != 1 || res.State.Lives != 3 {
		t.Errorf("expected level 1 with 3 lives, got level %d lives %d", res.State.Level, res.State.Lives)
	}
	if len(res.Events) == 0 || res.Events[0].Message != "game started" {
		t.Errorf("expected a game started event, got %v", res.Events)
	}
}

func TestGameFirstSpawnWaitsForStartDelay(t *testing.T) {
	g := New()
	g.Reset(testRuntime(7))
	g.Step(press(core.ActionConfirm))

	// 1000ms at 60 ticks per second
	idle(g, 59)
	if g.spawned != 0 {
		t.Fatalf("spawned before the start delay: %d", g.spawned)
	}
	idle(g, 2)
	if g.spawned != 1 || len(g.obstacles) != 1 {
		t.Fatalf("expected first obstacle after the start delay, spawned=%d", g.spawned)
	}
}

func TestGameObstacleFallsAtConstantSpeed(t *testing.T) {
	g := newStarted(t, ModeSolo)

	o := &Obstacle{ID: g.newID(), X: g.lanes.X(3), Y: g.cfg.Field.Top - 2*g.unit, Radius: g.unit, Speed: 4, Lane: 3}
	g.obstacles = append(g.obstacles, o)
	y0 := o.Y

	idle(g, 150)

	if len(g.obstacles) != 1 {
		t.Fatalf("obstacle should still be on the field, got %d obstacles", len(g.obstacles))
	}
	if want := y0 + 150*4; o.Y != want {
		t.Errorf("expected y=%v after 150 ticks, got %v", want, o.Y)
	}
	if g.passed != 0 {
		t.Errorf("expected no passes yet, got %d", g.passed)
	}
}

func TestGameObstacleExitCountsAsPass(t *testing.T) {
	g := newStarted(t, ModeSolo)

	bottom := g.cfg.Field.Bottom()
	o := &Obstacle{ID: g.newID(), X: g.lanes.X(0), Y: bottom + g.unit - 1, Radius: g.unit, Speed: 4, Lane: 0}
	g.obstacles = append(g.obstacles, o)
	g.spawned = 1

	g.Step(core.NewInputFrame())

	if len(g.obstacles) != 0 {
		t.Error("obstacle below the field should be removed")
	}
	if g.passed != 1 || g.score != 1 {
		t.Errorf("expected passed=1 score=1, got passed=%d score=%d", g.passed, g.score)
	}
}

func TestGameLastLifeEndsGame(t *testing.T) {
	g := newStarted(t, ModeSolo)
	p := g.player(core.Player1)
	p.Lives = 1
	dropOn(g, p, 4)

	res := g.Step(core.NewInputFrame())

	if g.Phase() != PhaseGameOver {
		t.Fatalf("expected game over, got %s", g.Phase())
	}
	if !res.State.GameOver || res.State.Won {
		t.Errorf("expected lost game, got %+v", res.State)
	}
	if g.clock.Pending() != 0 {
		t.Errorf("game over should drop pending timers, %d left", g.clock.Pending())
	}

	// Restart from game over
	g.Step(press(core.ActionRestart))
	if g.Phase() != PhasePlaying || g.Lives(core.Player1) != 3 {
		t.Errorf("restart should begin a fresh run, phase=%s lives=%d", g.Phase(), g.Lives(core.Player1))
	}
}

func TestGameLifeLossClearsFieldAndResumes(t *testing.T) {
	g := newStarted(t, ModeSolo)
	p := g.player(core.Player1)

	// Drift away from spawn first so the reset is observable.
	for range 20 {
		g.Step(press(core.ActionLeft))
	}
	spawnX := p.spawnX
	if p.X == spawnX {
		t.Fatal("rocket should have moved")
	}

	hit := dropOn(g, p, 4)
	bystander := &Obstacle{ID: g.newID(), X: g.lanes.X(8), Y: 0, Radius: g.unit, Speed: 3, Lane: 8}
	g.obstacles = append(g.obstacles, bystander)
	g.spawned = 2
	g.passed = 5

	g.Step(core.NewInputFrame())
	if g.Phase() != PhaseLifeLost {
		t.Fatalf("expected life lost, got %s", g.Phase())
	}
	if g.Lives(core.Player1) != 2 {
		t.Fatalf("expected 2 lives, got %d", g.Lives(core.Player1))
	}

	// The field is frozen during the pause.
	frozenY := bystander.Y
	idle(g, 30)
	if bystander.Y != frozenY {
		t.Error("obstacles should not move while the field is frozen")
	}

	for i := 0; i < 200 && g.Phase() == PhaseLifeLost; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.Phase() != PhasePlaying {
		t.Fatalf("expected play to resume, got %s", g.Phase())
	}

	for _, o := range g.obstacles {
		if o.ID == hit.ID || o.ID == bystander.ID {
			t.Errorf("obstacle %d survived the life loss", o.ID)
		}
	}
	if g.spawned != len(g.obstacles) {
		t.Errorf("unpassed obstacles should be respawned: spawned=%d on field=%d", g.spawned, len(g.obstacles))
	}
	if g.passed != 5 {
		t.Errorf("passes should survive a life loss, got %d", g.passed)
	}
	if p.X != spawnX || p.XV != 0 || p.YV != 0 {
		t.Errorf("rocket should be back at spawn at rest, got x=%v xv=%v yv=%v", p.X, p.XV, p.YV)
	}
}

func TestGameLevelCompleteStopsSpawning(t *testing.T) {
	g := New()
	g.Reset(testRuntime(3))
	g.Step(press(core.ActionConfirm))

	quota := g.cfg.Level(1).Obstacles
	g.passed = quota - 1
	g.score = quota - 1
	g.spawned = quota
	o := &Obstacle{ID: g.newID(), X: g.lanes.X(0), Y: g.cfg.Field.Bottom() + g.unit - 1, Radius: g.unit, Speed: 4, Lane: 0}
	g.obstacles = append(g.obstacles, o)

	g.Step(core.NewInputFrame())
	if g.Phase() != PhaseLevelComplete {
		t.Fatalf("expected level complete, got %s", g.Phase())
	}

	idle(g, 300)
	if len(g.obstacles) != 0 || g.spawned != quota {
		t.Errorf("no obstacles should spawn after the quota, spawned=%d on field=%d", g.spawned, len(g.obstacles))
	}
	if g.passed > quota {
		t.Errorf("passed %d exceeds quota %d", g.passed, quota)
	}

	// Movement stays live on the clear field.
	p := g.player(core.Player1)
	x := p.X
	g.Step(press(core.ActionRight))
	if p.X == x {
		t.Error("rocket should move while waiting for the next level")
	}

	g.Step(press(core.ActionConfirm))
	if g.Phase() != PhasePlaying || g.level != 2 {
		t.Fatalf("expected level 2 playing, got level %d %s", g.level, g.Phase())
	}
	if g.passed != 0 || g.spawned != 0 {
		t.Errorf("counters should reset for the new level, passed=%d spawned=%d", g.passed, g.spawned)
	}
	if g.score != quota {
		t.Errorf("score should carry over, got %d", g.score)
	}
}

func TestGameVictoryAfterLastLevel(t *testing.T) {
	g := newStarted(t, ModeSolo)
	g.level = config.MaxLevels
	quota := g.cfg.Level(config.MaxLevels).Obstacles
	g.passed = quota - 1
	g.spawned = quota
	g.obstacles = append(g.obstacles, &Obstacle{
		ID: g.newID(), X: g.lanes.X(0), Y: g.cfg.Field.Bottom() + g.unit, Radius: g.unit, Speed: 5, Lane: 0,
	})

	g.Step(core.NewInputFrame())
	if g.Phase() != PhaseLevelComplete {
		t.Fatalf("expected level complete, got %s", g.Phase())
	}

	res := g.Step(press(core.ActionConfirm))
	if g.Phase() != PhaseVictory {
		t.Fatalf("expected victory, got %s", g.Phase())
	}
	if !res.State.GameOver || !res.State.Won {
		t.Errorf("expected won game state, got %+v", res.State)
	}
}

func TestGameStartLevelFromConfig(t *testing.T) {
	cfg := config.DefaultDodgeConfig()
	cfg.Gameplay.StartLevel = 4
	g := NewWithConfig(ModeSolo, cfg)
	g.Reset(testRuntime(1))
	g.Step(press(core.ActionConfirm))

	if g.level != 4 {
		t.Errorf("expected to start on level 4, got %d", g.level)
	}
}

func TestGamePause(t *testing.T) {
	g := newStarted(t, ModeSolo)
	p := g.player(core.Player1)

	res := g.Step(press(core.ActionPause, core.ActionRight))
	if !res.State.Paused {
		t.Fatal("expected paused")
	}
	ticks, x := g.tickCount, p.X

	// Holding pause does not toggle it back.
	for range 10 {
		g.Step(press(core.ActionPause, core.ActionRight))
	}
	if !g.State().Paused {
		t.Fatal("holding pause should keep the game paused")
	}
	if g.tickCount != ticks || p.X != x {
		t.Error("nothing should advance while paused")
	}

	g.Step(core.NewInputFrame())
	res = g.Step(press(core.ActionPause))
	if res.State.Paused {
		t.Error("second press should resume")
	}
}

func TestGamePauseIgnoredInMenu(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	g.Step(press(core.ActionPause))
	if g.State().Paused {
		t.Error("pause should do nothing on the title screen")
	}
}

func TestGameReset(t *testing.T) {
	g := newStarted(t, ModeSolo)
	idle(g, 100)
	g.score = 17

	g.Reset(testRuntime(42))

	if g.score != 0 || g.tickCount != 0 || g.level != 0 {
		t.Errorf("reset should clear run state, score=%d tick=%d level=%d", g.score, g.tickCount, g.level)
	}
	if g.Phase() != PhaseMenu {
		t.Errorf("reset should return to the menu, got %s", g.Phase())
	}
	if len(g.obstacles) != 0 || g.clock.Pending() != 0 {
		t.Error("reset should clear the field and timers")
	}
}

func TestGameIDs(t *testing.T) {
	if New().ID() != "dodge" || NewVersus().ID() != "dodge_versus" {
		t.Error("unexpected game IDs")
	}
	if New().Players() != 1 || NewVersus().Players() != 2 {
		t.Error("unexpected player counts")
	}
}

func TestGameRender(t *testing.T) {
	g := New()
	g.Reset(testRuntime(5))

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	if !strings.Contains(scr.String(), "ROCKET DODGE") {
		t.Error("title screen should show the game name")
	}

	g.Step(press(core.ActionConfirm))
	idle(g, 120)
	scr.Clear()
	g.Render(scr)
	if !strings.Contains(scr.Row(scr.Height()-1), "Level 1/10") {
		t.Errorf("HUD should show the level, got %q", scr.Row(scr.Height()-1))
	}

	small := core.NewScreen(20, 6)
	g.Render(small)
	if !strings.Contains(small.String(), "too small") {
		t.Error("small screen should show a warning")
	}
}
