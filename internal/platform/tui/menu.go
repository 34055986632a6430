package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/rocket-dodge/internal/config"
	"github.com/vovakirdan/rocket-dodge/internal/core"
	"github.com/vovakirdan/rocket-dodge/internal/registry"
	"github.com/vovakirdan/rocket-dodge/internal/storage"
)

// MenuItem represents a selectable game in the menu.
type MenuItem struct {
	GameID  string
	Title   string
	Players int
}

// Menu rows below the game list.
const (
	settingDifficulty = iota
	settingLevel
	settingCount
)

var presets = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
}

// MenuOptions seeds the menu with the settings of the previous visit.
type MenuOptions struct {
	Dodge      config.DodgeConfig
	Difficulty config.DifficultyPreset
	Level      int // Solo start level, 1-based
}

// MenuModel is the Bubble Tea model for the game picker menu.
type MenuModel struct {
	items          []MenuItem
	highScores     map[string]int
	cursor         int // Games first, then the setting rows
	preset         int
	level          int
	width          int
	height         int
	base           config.DodgeConfig
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem // Set when user selects a game
	openScoreboard bool      // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, opts MenuOptions) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	highScores := make(map[string]int, len(games))

	for _, g := range games {
		items = append(items, MenuItem{
			GameID:  g.ID,
			Title:   g.Title,
			Players: g.Players,
		})
		if store != nil && g.Players == 1 {
			if high, err := store.HighScore(g.ID); err == nil {
				highScores[g.ID] = high
			}
		}
	}

	preset := 1
	for i, p := range presets {
		if p == opts.Difficulty {
			preset = i
		}
	}

	level := opts.Level
	if level < 1 || level > len(opts.Dodge.Levels) {
		level = 1
	}

	return MenuModel{
		items:      items,
		highScores: highScores,
		preset:     preset,
		level:      level,
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		base:       opts.Dodge,
		config:     cfg,
		keyMapper:  NewKeyMapper(LayoutSolo),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)
	rows := len(m.items) + settingCount

	switch action {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < rows-1 {
			m.cursor++
		}

	case MenuActionLeft:
		m.adjust(-1)

	case MenuActionRight:
		m.adjust(1)

	case MenuActionSelect:
		if m.cursor < len(m.items) {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start game
		}
		m.adjust(1)

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit // Exit menu to show scoreboard
	}

	return m, nil
}

// adjust cycles the setting under the cursor. On a game row it changes the
// difficulty.
func (m *MenuModel) adjust(delta int) {
	setting := m.cursor - len(m.items)
	if setting == settingLevel {
		n := len(m.base.Levels)
		if n == 0 {
			return
		}
		m.level = (m.level-1+delta+n)%n + 1
		return
	}
	m.preset = (m.preset + delta + len(presets)) % len(presets)
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("R O C K E T   D O D G E", m.width)))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(centerText("Select a game", m.width)))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := item.Title
		if item.Players > 1 {
			line += fmt.Sprintf(" [%dP]", item.Players)
		} else if high := m.highScores[item.GameID]; high > 0 {
			line += fmt.Sprintf("  best %d", high)
		}
		b.WriteString(m.row(i, line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.row(len(m.items)+settingDifficulty,
		fmt.Sprintf("Difficulty: < %s >", presets[m.preset])))
	b.WriteString("\n")

	lvl := m.base.Level(m.level)
	b.WriteString(m.row(len(m.items)+settingLevel,
		fmt.Sprintf("Start level: < %d >  pass %d, speed %d-%d", m.level, lvl.Obstacles, lvl.MinSpeed, lvl.MaxSpeed)))
	b.WriteString("\n")

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Change  |  Enter: Play  |  Tab: Scores  |  Q: Quit"
	b.WriteString(dimStyle.Render(centerText(controls, m.width)))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) row(i int, text string) string {
	if i == m.cursor {
		return activeStyle.Render(centerText("> "+text, m.width))
	}
	return normalStyle.Render(centerText("  "+text, m.width))
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// Result converts the menu state to a MenuResult.
func (m MenuModel) Result() MenuResult {
	result := MenuResult{
		Difficulty: presets[m.preset],
		Level:      m.level,
		Config:     m.config,
	}

	result.Dodge = m.base
	config.ApplyDodgePreset(&result.Dodge, result.Difficulty)
	result.Dodge.Gameplay.StartLevel = m.level

	switch {
	case m.openScoreboard:
		result.WantsScoreboard = true
	case m.quitting || m.selected == nil:
		result.Quit = true
	default:
		result.GameID = m.selected.GameID
	}
	return result
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := len([]rune(text))
	if n >= width {
		return text
	}
	padding := (width - n) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Difficulty      config.DifficultyPreset
	Level           int
	Dodge           config.DodgeConfig // Base config with the difficulty and level applied
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// Options returns menu options that reopen the menu with the same settings.
func (r MenuResult) Options(base config.DodgeConfig) MenuOptions {
	return MenuOptions{Dodge: base, Difficulty: r.Difficulty, Level: r.Level}
}

// configurable is implemented by games that accept a dodge configuration.
type configurable interface {
	Configure(cfg config.DodgeConfig)
}

// NewGame creates the selected game with the menu's settings applied.
func (r MenuResult) NewGame() (registry.Game, error) {
	game, err := registry.Create(r.GameID)
	if err != nil {
		return nil, err
	}
	if c, ok := game.(configurable); ok {
		c.Configure(r.Dodge)
	}
	return game, nil
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, opts MenuOptions) (MenuResult, error) {
	model := NewMenuModel(store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg, Quit: true}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.Result(), nil
}
