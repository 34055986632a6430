package gfx

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/rocket-dodge/internal/core"
)

// fakeKeys is a scripted keyboard. just lists keys pressed this tick.
type fakeKeys struct {
	down map[ebiten.Key]bool
	just map[ebiten.Key]bool
}

func newFakeKeys() *fakeKeys {
	return &fakeKeys{down: map[ebiten.Key]bool{}, just: map[ebiten.Key]bool{}}
}

func (f *fakeKeys) Pressed(k ebiten.Key) bool     { return f.down[k] }
func (f *fakeKeys) JustPressed(k ebiten.Key) bool { return f.just[k] }

// press holds k and reports it as newly pressed.
func (f *fakeKeys) press(k ebiten.Key) {
	f.down[k] = true
	f.just[k] = true
}

// next starts a new tick: held keys stay down, nothing is new.
func (f *fakeKeys) next() {
	clear(f.just)
}

func (f *fakeKeys) release(k ebiten.Key) {
	delete(f.down, k)
}

func TestReadFrameSolo(t *testing.T) {
	keys := newFakeKeys()
	keys.press(ebiten.KeyArrowLeft)
	keys.press(ebiten.KeyW)

	in := readFrame(keys, false).Player1()
	assert.True(t, in.Has(core.ActionLeft))
	assert.True(t, in.Has(core.ActionUp))
	assert.False(t, in.Has(core.ActionRight))
}

func TestReadFrameVersusSplitsKeyboard(t *testing.T) {
	keys := newFakeKeys()
	keys.press(ebiten.KeyD)
	keys.press(ebiten.KeyArrowLeft)
	keys.press(ebiten.KeySlash)

	frame := readFrame(keys, true)
	assert.True(t, frame.Player1().Has(core.ActionRight))
	assert.False(t, frame.Player1().Has(core.ActionLeft))
	assert.True(t, frame.Player2().Has(core.ActionLeft))
	assert.True(t, frame.Player2().Has(core.ActionShoot))
	assert.False(t, frame.Player1().Has(core.ActionShoot))
}

func TestReadFrameConfirmOnlyOnPress(t *testing.T) {
	keys := newFakeKeys()
	keys.press(ebiten.KeySpace)

	in := readFrame(keys, false).Player1()
	assert.True(t, in.Has(core.ActionShoot))
	assert.True(t, in.Has(core.ActionConfirm))

	keys.next()
	in = readFrame(keys, false).Player1()
	assert.True(t, in.Has(core.ActionShoot), "fire is held")
	assert.False(t, in.Has(core.ActionConfirm), "confirm is a press")

	keys.release(ebiten.KeySpace)
	in = readFrame(keys, false).Player1()
	assert.False(t, in.Has(core.ActionShoot))
}
