// Package dodge implements the rocket dodge game: a rocket steers between
// falling asteroids across ten levels, or two rockets duel in versus mode.
package dodge

import (
	"sync"
	"time"

	"github.com/vovakirdan/rocket-dodge/internal/config"
	"github.com/vovakirdan/rocket-dodge/internal/core"
	"github.com/vovakirdan/rocket-dodge/internal/registry"
	"github.com/vovakirdan/rocket-dodge/internal/sched"
)

// Mode selects solo or versus play.
type Mode int

const (
	ModeSolo Mode = iota
	ModeVersus
)

// String returns the mode name used in logs and storage.
func (m Mode) String() string {
	if m == ModeVersus {
		return "versus"
	}
	return "solo"
}

var (
	defaultsMu    sync.RWMutex
	defaultConfig = config.DefaultDodgeConfig()
)

// SetDefaultConfig sets the configuration used by games created through the
// registry.
func SetDefaultConfig(cfg config.DodgeConfig) {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	defaultConfig = cfg
}

// DefaultConfig returns the configuration used by registry-created games.
func DefaultConfig() config.DodgeConfig {
	defaultsMu.RLock()
	defer defaultsMu.RUnlock()
	return defaultConfig
}

// Game holds the whole state of one dodge session.
type Game struct {
	mode    Mode
	cfg     config.DodgeConfig
	runtime core.RuntimeConfig

	rng     *SimpleRNG
	clock   *sched.Scheduler
	tick    time.Duration
	lanes   *Lanes
	spawner *Spawner
	pool    []PowerUpType
	unit    float64

	phase      Phase
	paused     bool
	pauseHeld  bool
	level      int
	players    []*Player
	obstacles  []*Obstacle
	powerUps   []*PowerUp
	lasers     []*Laser
	nextID     uint64
	passed     int
	spawned    int
	score      int
	tickCount  uint64
	background float64
	winner     core.PlayerID

	spawnHandle  sched.Handle
	resumeHandle sched.Handle
	events       []core.Event
}

// New creates a solo game using the registry default configuration.
func New() *Game {
	return NewWithConfig(ModeSolo, DefaultConfig())
}

// NewVersus creates a two-player game using the registry default configuration.
func NewVersus() *Game {
	return NewWithConfig(ModeVersus, DefaultConfig())
}

// NewWithConfig creates a game with an explicit configuration.
func NewWithConfig(mode Mode, cfg config.DodgeConfig) *Game {
	return &Game{mode: mode, cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeVersus {
		return "dodge_versus"
	}
	return "dodge"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeVersus {
		return "Rocket Dodge (Versus)"
	}
	return "Rocket Dodge"
}

// Mode returns the game mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Players returns the number of player slots.
func (g *Game) Players() int {
	if g.mode == ModeVersus {
		return 2
	}
	return 1
}

// Config returns the configuration in use.
func (g *Game) Config() config.DodgeConfig {
	return g.cfg
}

// Configure replaces the configuration. It takes effect on the next Reset.
func (g *Game) Configure(cfg config.DodgeConfig) {
	g.cfg = cfg
}

// Reset discards everything and returns to the title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = 60
	}
	g.runtime = runtime
	g.rng = NewSimpleRNG(runtime.Seed)
	g.clock = sched.New()
	g.tick = time.Second / time.Duration(runtime.TickRate)
	g.unit = g.cfg.Unit()
	g.lanes = NewLanes(g.cfg.Lanes.Count, g.cfg.Field.Width, g.unit)
	g.spawner = NewSpawner(g.cfg, g.rng, g.lanes)
	if g.mode == ModeVersus {
		g.pool = parsePool(g.cfg.Versus.PowerUpPool)
	} else {
		g.pool = parsePool(g.cfg.PowerUps.Pool)
	}

	g.phase = PhaseMenu
	g.paused = false
	g.pauseHeld = false
	g.tickCount = 0
	g.background = 0
	g.score = 0
	g.winner = 0
	g.level = 0
	g.passed, g.spawned = 0, 0
	g.obstacles = nil
	g.powerUps = nil
	g.lasers = nil
	g.events = nil
	g.players = g.newPlayers()
}

// Step advances one tick with input for player 1 only.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	multi := core.NewMultiInputFrame()
	multi.SetPlayer(core.Player1, in)
	return g.StepMulti(multi)
}

// StepMulti advances the game by one tick.
// Due timers fire first, then the state machine and simulation run.
func (g *Game) StepMulti(in core.MultiInputFrame) core.StepResult {
	if g.clock == nil {
		g.Reset(core.DefaultConfig())
	}
	g.events = nil

	pause := in.Any(core.ActionPause)
	if pause && !g.pauseHeld && g.phase.Active() {
		g.paused = !g.paused
	}
	g.pauseHeld = pause

	if g.paused {
		return g.result()
	}

	switch g.phase {
	case PhaseMenu, PhaseGameOver, PhaseVictory:
		if in.Any(core.ActionConfirm) || in.Any(core.ActionRestart) {
			g.startGame()
		}
		return g.result()
	}

	g.tickCount++
	g.clock.Advance(g.tick)
	g.simulate(in)
	return g.result()
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Score:    g.score,
		Level:    g.level,
		GameOver: g.phase == PhaseGameOver || g.phase == PhaseVictory,
		Won:      g.phase == PhaseVictory,
		Paused:   g.paused,
		Phase:    g.phase.String(),
	}
	if len(g.players) > 0 {
		st.Lives = g.players[0].Lives
	}
	return st
}

// Phase returns the current state machine phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Winner returns the winning player of a finished versus match, or zero for
// a draw or an unfinished match.
func (g *Game) Winner() core.PlayerID {
	return g.winner
}

// Lives returns the lives left for a player slot.
func (g *Game) Lives(id core.PlayerID) int {
	if p := g.player(id); p != nil {
		return p.Lives
	}
	return 0
}

// Progress returns obstacles passed and the quota for the current level.
func (g *Game) Progress() (passed, quota int) {
	if g.mode == ModeVersus {
		return g.passed, 0
	}
	return g.passed, g.cfg.Level(g.level).Obstacles
}

func (g *Game) player(id core.PlayerID) *Player {
	for _, p := range g.players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (g *Game) newID() uint64 {
	g.nextID++
	return g.nextID
}

func (g *Game) emit(msg string, keyvals ...any) {
	g.events = append(g.events, core.Event{Message: msg, KeyVals: keyvals})
}

func ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}

// newPlayers builds the rockets for the mode at their spawn points.
func (g *Game) newPlayers() []*Player {
	f := g.cfg.Field
	aspect := g.cfg.Player.AspectRatio

	if g.mode == ModeSolo {
		w, h := g.unit, g.unit*aspect
		p := &Player{
			ID:       core.Player1,
			SpriteID: g.newID(),
			Facing:   FacingUp,
			Bounds:   core.NewRect(0, f.Top, f.Width, f.Bottom()-f.Top),
			Bindings: DefaultBindings(),
			BaseW:    w,
			BaseH:    h,
			Lives:    g.cfg.Player.Lives,
		}
		p.spawnX = f.Width/2 - w/2
		p.spawnY = (f.Top+f.Bottom())/2 - h/2
		p.reset()
		return []*Player{p}
	}

	// Versus rockets lie on their side, each confined to its own half.
	w, h := g.unit*aspect, g.unit
	half := f.Width / 2
	midY := (f.Top+f.Bottom())/2 - h/2
	p1 := &Player{
		ID:       core.Player1,
		SpriteID: g.newID(),
		Facing:   FacingRight,
		Bounds:   core.NewRect(0, f.Top, half, f.Bottom()-f.Top),
		Bindings: DefaultBindings(),
		BaseW:    w,
		BaseH:    h,
		Lives:    g.cfg.Versus.Lives,
	}
	p1.spawnX, p1.spawnY = half/2-w/2, midY
	p2 := &Player{
		ID:       core.Player2,
		SpriteID: g.newID(),
		Facing:   FacingLeft,
		Bounds:   core.NewRect(half, f.Top, half, f.Bottom()-f.Top),
		Bindings: DefaultBindings(),
		BaseW:    w,
		BaseH:    h,
		Lives:    g.cfg.Versus.Lives,
	}
	p2.spawnX, p2.spawnY = half+half/2-w/2, midY
	p1.reset()
	p2.reset()
	return []*Player{p1, p2}
}

// Register the games with the registry
func init() {
	registry.Register("dodge", func() registry.Game {
		return New()
	})
	registry.Register("dodge_versus", func() registry.Game {
		return NewVersus()
	})
}
