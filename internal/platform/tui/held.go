package tui

import (
	"time"

	"github.com/vovakirdan/rocket-dodge/internal/core"
)

// HeldKeys turns terminal key presses into held state. Terminals report
// presses and auto-repeats but never releases, so a movement key counts as
// held until no repeat has arrived for the hold window. Pressing a direction
// releases its opposite at once.
//
// Other actions are pulses: they appear in exactly one frame per press.
type HeldKeys struct {
	hold   time.Duration
	last   map[KeyEvent]time.Time
	pulses []KeyEvent
}

// NewHeldKeys creates a tracker with the given hold window.
func NewHeldKeys(hold time.Duration) *HeldKeys {
	if hold <= 0 {
		hold = 200 * time.Millisecond
	}
	return &HeldKeys{
		hold: hold,
		last: make(map[KeyEvent]time.Time),
	}
}

// Press records a key event at time now.
func (h *HeldKeys) Press(ev KeyEvent, now time.Time) {
	if !holdable(ev.Action) {
		h.pulses = append(h.pulses, ev)
		return
	}
	h.last[ev] = now
	if opp, ok := opposite(ev.Action); ok {
		delete(h.last, KeyEvent{Player: ev.Player, Action: opp})
	}
}

// Frame returns the input for the tick at time now and consumes pending pulses.
func (h *HeldKeys) Frame(now time.Time) core.MultiInputFrame {
	frame := core.NewMultiInputFrame()
	set := func(ev KeyEvent) {
		in := frame.Player(ev.Player)
		in.Set(ev.Action)
		frame.SetPlayer(ev.Player, in)
	}

	for ev, t := range h.last {
		if now.Sub(t) >= h.hold {
			delete(h.last, ev)
			continue
		}
		set(ev)
	}
	for _, ev := range h.pulses {
		set(ev)
	}
	h.pulses = h.pulses[:0]
	return frame
}

// Reset releases every key.
func (h *HeldKeys) Reset() {
	clear(h.last)
	h.pulses = h.pulses[:0]
}

func holdable(a core.Action) bool {
	switch a {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight, core.ActionShoot:
		return true
	}
	return false
}

func opposite(a core.Action) (core.Action, bool) {
	switch a {
	case core.ActionUp:
		return core.ActionDown, true
	case core.ActionDown:
		return core.ActionUp, true
	case core.ActionLeft:
		return core.ActionRight, true
	case core.ActionRight:
		return core.ActionLeft, true
	}
	return core.ActionNone, false
}
