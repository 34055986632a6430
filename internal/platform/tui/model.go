package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rocket-dodge/internal/core"
	"github.com/vovakirdan/rocket-dodge/internal/registry"
	"github.com/vovakirdan/rocket-dodge/internal/storage"
)

// Options tunes a game session.
type Options struct {
	// Logger receives game events. Nil discards them.
	Logger *log.Logger

	// Hold is how long a key counts as held after its last repeat.
	Hold time.Duration

	// ScreenshotDir is where Ctrl+S writes the screen. Empty uses ~/.dodge/screenshots.
	ScreenshotDir string
}

// matchReport is implemented by games that can describe a finished match.
type matchReport interface {
	Winner() core.PlayerID
	Lives(id core.PlayerID) int
	Progress() (passed, quota int)
}

// GameModel is the Bubble Tea model that runs one game.
type GameModel struct {
	game       registry.Game
	multi      registry.MultiPlayerGame // Nil for single-input games
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	opts       Options
	config     core.RuntimeConfig
	keys       *KeyMapper
	held       *HeldKeys
	gameState  core.GameState
	playTicks  int
	quitting   bool
	backToMenu bool
	standalone bool // Leaving for the menu ends the program
	resultSent bool // Whether the current game over has been stored
}

// NewGameModel creates a model for the given game. Two-player games get the
// split keyboard layout.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	layout := LayoutSolo
	multi, _ := game.(registry.MultiPlayerGame)
	if multi != nil && multi.Players() > 1 {
		layout = LayoutVersus
	}

	return GameModel{
		game:   game,
		multi:  multi,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		logger: logger.With("game", game.ID()),
		opts:   opts,
		config: cfg,
		keys:   NewKeyMapper(layout),
		held:   NewHeldKeys(opts.Hold),
	}
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("game reset", "seed", m.config.Seed, "tick_rate", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The field is logical, so a resize only rescales the view.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	events, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	// Back to menu from a finished, paused or not yet started game
	if hasAction(events, core.ActionBack) &&
		(m.gameState.GameOver || m.gameState.Paused || m.gameState.Phase == "menu") {
		m.backToMenu = true
		m.held.Reset()
		if m.standalone {
			return m, tea.Quit
		}
		return m, nil
	}

	now := time.Now()
	for _, ev := range events {
		m.held.Press(ev, now)
	}
	return m, nil
}

func hasAction(events []KeyEvent, a core.Action) bool {
	for _, ev := range events {
		if ev.Action == a {
			return true
		}
	}
	return false
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	frame := m.held.Frame(now)
	var result core.StepResult
	if m.multi != nil {
		result = m.multi.StepMulti(frame)
	} else {
		result = m.game.Step(frame.Player1())
	}
	m.gameState = result.State

	for _, ev := range result.Events {
		m.logger.Info(ev.Message, ev.KeyVals...)
	}

	switch {
	case m.gameState.GameOver:
		if !m.resultSent {
			m.saveResult()
			m.resultSent = true
		}
	case m.gameState.Phase != "menu":
		// A new run after game over
		if m.resultSent {
			m.resultSent = false
			m.playTicks = 0
		}
		if !m.gameState.Paused {
			m.playTicks++
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// saveResult stores a finished run or match. Storage is best effort.
func (m *GameModel) saveResult() {
	if m.store == nil {
		return
	}

	report, ok := m.game.(matchReport)
	if ok && m.multi != nil && m.multi.Players() > 1 {
		passed, _ := report.Progress()
		res := storage.VersusResult{
			Winner:   int(report.Winner()),
			P1Lives:  report.Lives(core.Player1),
			P2Lives:  report.Lives(core.Player2),
			Passed:   passed,
			Duration: time.Duration(m.playTicks) * time.Second / time.Duration(m.config.TickRate),
		}
		if _, err := m.store.SaveVersusResult(res); err != nil {
			m.logger.Warn("could not save match", "error", err)
		}
		return
	}

	if m.gameState.Score <= 0 {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score, m.gameState.Level, m.gameState.Won); err != nil {
		m.logger.Warn("could not save score", "error", err)
	}
}

// saveScreenshot writes the current screen to a text file.
func (m *GameModel) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(home, ".dodge", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	return path, os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// State returns the game state after the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// Run starts a Bubble Tea program for one game. It returns when the player
// quits or leaves for the menu; the bool reports the latter.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) (backToMenu bool, err error) {
	model := NewGameModel(game, store, cfg, opts)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if gm, ok := final.(GameModel); ok {
		return gm.BackToMenu(), nil
	}
	return false, nil
}
