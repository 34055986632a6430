package gfx

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/rocket-dodge/internal/core"
)

// keyState reports keyboard state for the current tick.
type keyState interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
}

// ebitenKeys reads the real keyboard.
type ebitenKeys struct{}

func (ebitenKeys) Pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

// binding maps keys to an action on one player's frame.
type binding struct {
	player core.PlayerID
	action core.Action
	keys   []ebiten.Key
}

var soloHeld = []binding{
	{core.Player1, core.ActionUp, []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}},
	{core.Player1, core.ActionDown, []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}},
	{core.Player1, core.ActionLeft, []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}},
	{core.Player1, core.ActionRight, []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}},
	{core.Player1, core.ActionShoot, []ebiten.Key{ebiten.KeySpace}},
	{core.Player1, core.ActionPause, []ebiten.Key{ebiten.KeyP, ebiten.KeyEscape}},
}

var versusHeld = []binding{
	{core.Player1, core.ActionUp, []ebiten.Key{ebiten.KeyW}},
	{core.Player1, core.ActionDown, []ebiten.Key{ebiten.KeyS}},
	{core.Player1, core.ActionLeft, []ebiten.Key{ebiten.KeyA}},
	{core.Player1, core.ActionRight, []ebiten.Key{ebiten.KeyD}},
	{core.Player1, core.ActionShoot, []ebiten.Key{ebiten.KeySpace}},
	{core.Player2, core.ActionUp, []ebiten.Key{ebiten.KeyArrowUp}},
	{core.Player2, core.ActionDown, []ebiten.Key{ebiten.KeyArrowDown}},
	{core.Player2, core.ActionLeft, []ebiten.Key{ebiten.KeyArrowLeft}},
	{core.Player2, core.ActionRight, []ebiten.Key{ebiten.KeyArrowRight}},
	{core.Player2, core.ActionShoot, []ebiten.Key{ebiten.KeySlash, ebiten.KeyNumpadEnter}},
	{core.Player1, core.ActionPause, []ebiten.Key{ebiten.KeyP, ebiten.KeyEscape}},
}

// Confirm and restart fire on the press only, so a held fire key never
// restarts a finished game.
var pulses = []binding{
	{core.Player1, core.ActionConfirm, []ebiten.Key{ebiten.KeySpace, ebiten.KeyEnter}},
	{core.Player1, core.ActionRestart, []ebiten.Key{ebiten.KeyR}},
	{core.Player1, core.ActionBack, []ebiten.Key{ebiten.KeyB}},
	{core.Player1, core.ActionQuit, []ebiten.Key{ebiten.KeyQ}},
}

// readFrame builds the input for one tick.
func readFrame(keys keyState, versus bool) core.MultiInputFrame {
	held := soloHeld
	if versus {
		held = versusHeld
	}

	frame := core.NewMultiInputFrame()
	apply := func(b binding, test func(ebiten.Key) bool) {
		for _, k := range b.keys {
			if test(k) {
				in := frame.Player(b.player)
				in.Set(b.action)
				frame.SetPlayer(b.player, in)
				return
			}
		}
	}

	for _, b := range held {
		apply(b, keys.Pressed)
	}
	for _, b := range pulses {
		apply(b, keys.JustPressed)
	}
	return frame
}
