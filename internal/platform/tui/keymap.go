package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/rocket-dodge/internal/core"
)

// Layout selects how the keyboard is shared between players.
type Layout int

const (
	// LayoutSolo lets one player use WASD or the arrows.
	LayoutSolo Layout = iota
	// LayoutVersus gives WASD + space to P1 and the arrows + / to P2.
	LayoutVersus
)

// KeyEvent is a key message resolved against a layout.
type KeyEvent struct {
	Player core.PlayerID
	Action core.Action
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	layout Layout
}

// NewKeyMapper creates a key mapper for the given layout.
func NewKeyMapper(layout Layout) *KeyMapper {
	return &KeyMapper{layout: layout}
}

// Layout returns the mapper's keyboard layout.
func (km *KeyMapper) Layout() Layout {
	return km.layout
}

// MapKey translates a key message to player actions.
// A key may produce more than one event: in solo, space both shoots and
// confirms. isQuit reports a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (events []KeyEvent, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return []KeyEvent{{core.Player1, core.ActionQuit}}, true
	}

	// Shared controls, always on P1's frame. The game reads them from any slot.
	switch key {
	case "p", "esc":
		return []KeyEvent{{core.Player1, core.ActionPause}}, false
	case "r":
		return []KeyEvent{{core.Player1, core.ActionRestart}}, false
	case "enter":
		return []KeyEvent{{core.Player1, core.ActionConfirm}}, false
	case "b":
		return []KeyEvent{{core.Player1, core.ActionBack}}, false
	}

	if km.layout == LayoutVersus {
		return km.mapVersus(key), false
	}
	return km.mapSolo(key), false
}

func (km *KeyMapper) mapSolo(key string) []KeyEvent {
	one := func(a core.Action) []KeyEvent { return []KeyEvent{{core.Player1, a}} }
	switch key {
	case "w", "up":
		return one(core.ActionUp)
	case "s", "down":
		return one(core.ActionDown)
	case "a", "left":
		return one(core.ActionLeft)
	case "d", "right":
		return one(core.ActionRight)
	case " ":
		return []KeyEvent{{core.Player1, core.ActionShoot}, {core.Player1, core.ActionConfirm}}
	}
	return nil
}

func (km *KeyMapper) mapVersus(key string) []KeyEvent {
	switch key {
	case "w":
		return []KeyEvent{{core.Player1, core.ActionUp}}
	case "s":
		return []KeyEvent{{core.Player1, core.ActionDown}}
	case "a":
		return []KeyEvent{{core.Player1, core.ActionLeft}}
	case "d":
		return []KeyEvent{{core.Player1, core.ActionRight}}
	case " ":
		return []KeyEvent{{core.Player1, core.ActionShoot}, {core.Player1, core.ActionConfirm}}
	case "up":
		return []KeyEvent{{core.Player2, core.ActionUp}}
	case "down":
		return []KeyEvent{{core.Player2, core.ActionDown}}
	case "left":
		return []KeyEvent{{core.Player2, core.ActionLeft}}
	case "right":
		return []KeyEvent{{core.Player2, core.ActionRight}}
	case "/":
		return []KeyEvent{{core.Player2, core.ActionShoot}}
	}
	return nil
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
