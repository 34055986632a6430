// Package gfx runs dodge in a desktop window through Ebitengine.
// The simulation is the same one the terminal host drives; only input and
// drawing differ.
package gfx

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/rocket-dodge/internal/core"
	"github.com/vovakirdan/rocket-dodge/internal/games/dodge"
	"github.com/vovakirdan/rocket-dodge/internal/storage"
)

// ErrBackToMenu ends RunGame when the player leaves for the menu.
var ErrBackToMenu = errors.New("gfx: back to menu")

// Options tunes a windowed session.
type Options struct {
	Logger   *log.Logger
	Seed     int64
	TickRate int
	Scale    float64 // Window size over the logical field size
}

// Game implements ebiten.Game around one dodge session.
type Game struct {
	game      *dodge.Game
	store     *storage.Store
	logger    *log.Logger
	keys      keyState
	tickRate  int
	width     int
	height    int
	state     core.GameState
	playTicks int
	saved     bool
	exit      error
}

// New creates a windowed host for game. The game is reset immediately.
func New(game *dodge.Game, store *storage.Store, opts Options) *Game {
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	field := game.Config().Field
	g := &Game{
		game:     game,
		store:    store,
		logger:   logger.With("game", game.ID(), "host", "gfx"),
		keys:     ebitenKeys{},
		tickRate: opts.TickRate,
		width:    int(field.Width),
		height:   int(field.Height),
	}
	game.Reset(core.RuntimeConfig{
		ScreenW:  g.width,
		ScreenH:  g.height,
		TickRate: opts.TickRate,
		Seed:     opts.Seed,
	})
	g.state = game.State()
	return g
}

// Update advances the simulation one tick.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	if g.exit != nil {
		return g.exit
	}

	frame := readFrame(g.keys, g.game.Players() > 1)
	switch {
	case frame.Any(core.ActionQuit):
		g.exit = ebiten.Termination
		return g.exit
	case frame.Any(core.ActionBack) && (g.state.GameOver || g.state.Paused || g.state.Phase == "menu"):
		g.exit = ErrBackToMenu
		return g.exit
	}

	result := g.game.StepMulti(frame)
	g.state = result.State
	for _, ev := range result.Events {
		g.logger.Info(ev.Message, ev.KeyVals...)
	}

	switch {
	case g.state.GameOver:
		if !g.saved {
			g.saveResult()
			g.saved = true
		}
	case g.state.Phase != "menu":
		if g.saved {
			g.saved = false
			g.playTicks = 0
		}
		if !g.state.Paused {
			g.playTicks++
		}
	}
	return nil
}

// Layout returns the logical field size; Ebitengine scales it to the window.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// saveResult stores the finished run or match. Storage is best effort.
func (g *Game) saveResult() {
	if g.store == nil {
		return
	}

	if g.game.Mode() == dodge.ModeVersus {
		passed, _ := g.game.Progress()
		res := storage.VersusResult{
			Winner:   int(g.game.Winner()),
			P1Lives:  g.game.Lives(core.Player1),
			P2Lives:  g.game.Lives(core.Player2),
			Passed:   passed,
			Duration: time.Duration(g.playTicks) * time.Second / time.Duration(g.tickRate),
		}
		if _, err := g.store.SaveVersusResult(res); err != nil {
			g.logger.Warn("could not save match", "error", err)
		}
		return
	}

	if g.state.Score <= 0 {
		return
	}
	if _, err := g.store.SaveScore(g.game.ID(), g.state.Score, g.state.Level, g.state.Won); err != nil {
		g.logger.Warn("could not save score", "error", err)
	}
}

// Run opens a window and plays game until the window closes or the player
// quits. backToMenu reports that the player asked for the menu instead.
func Run(game *dodge.Game, store *storage.Store, opts Options) (backToMenu bool, err error) {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	g := New(game, store, opts)

	ebiten.SetWindowSize(int(float64(g.width)*opts.Scale), int(float64(g.height)*opts.Scale))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(g.tickRate)

	err = ebiten.RunGame(g)
	switch {
	case errors.Is(err, ErrBackToMenu):
		return true, nil
	case errors.Is(err, ebiten.Termination):
		return false, nil
	}
	return false, err
}
