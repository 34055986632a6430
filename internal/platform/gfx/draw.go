package gfx

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/rocket-dodge/internal/core"
	"github.com/vovakirdan/rocket-dodge/internal/games/dodge"
)

// Debug font cell size in pixels.
const (
	glyphW = 6
	glyphH = 16
)

const starCount = 80

var (
	colorSpace   = color.RGBA{0x0B, 0x10, 0x22, 0xFF}
	colorStar    = color.RGBA{0x9A, 0xA5, 0xB1, 0xFF}
	colorInfoBar = color.RGBA{0x14, 0x1A, 0x2E, 0xFF}
	colorDivider = color.RGBA{0x55, 0x5F, 0x73, 0xFF}
	colorShade   = color.RGBA{0x00, 0x00, 0x00, 0xA0}
	colorCrater  = color.RGBA{0x00, 0x00, 0x00, 0x50}
)

// rgba converts a palette color to an opaque RGBA.
func rgba(c core.Color) color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{r, g, b, 0xFF}
}

// Draw renders the field, the info bar and any overlay.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	cfg := g.game.Config()
	screen.Fill(colorSpace)
	g.drawStars(screen, float32(cfg.Field.Bottom()))

	if g.game.Mode() == dodge.ModeVersus {
		mid := float32(cfg.Field.Width / 2)
		vector.StrokeLine(screen, mid, float32(cfg.Field.Top), mid, float32(cfg.Field.Bottom()), 2, colorDivider, false)
	}

	for _, d := range g.game.Drawables() {
		switch d.Kind {
		case dodge.KindObstacle:
			drawObstacle(screen, d)
		case dodge.KindPowerUp:
			vector.DrawFilledCircle(screen, float32(d.X), float32(d.Y), float32(d.R), rgba(d.Color), true)
			ebitenutil.DebugPrintAt(screen, string(d.Glyph), int(d.X)-glyphW/2, int(d.Y)-glyphH/2)
		case dodge.KindLaser:
			vector.DrawFilledRect(screen, float32(d.X), float32(d.Y), float32(d.W), float32(d.H), rgba(d.Color), false)
		case dodge.KindRocket, dodge.KindTwin:
			drawRocket(screen, d)
		}
	}

	g.drawInfoBar(screen)
	g.drawOverlay(screen)
}

// drawStars scrolls a fixed star pattern with the background offset.
func (g *Game) drawStars(screen *ebiten.Image, bottom float32) {
	off := g.game.Background()
	for i := range starCount {
		x := float32((i * 131) % g.width)
		y := float32(math.Mod(float64(i*97)+off, float64(bottom)))
		size := float32(1 + i%2)
		vector.DrawFilledRect(screen, x, y, size, size, colorStar, false)
	}
}

// drawObstacle draws an asteroid with a crater that turns with its rotation.
func drawObstacle(screen *ebiten.Image, d dodge.Drawable) {
	cx, cy, r := float32(d.X), float32(d.Y), float32(d.R)
	vector.DrawFilledCircle(screen, cx, cy, r, rgba(d.Color), true)

	s, c := math.Sincos(d.Rotation)
	kx := cx + float32(c)*r/2
	ky := cy + float32(s)*r/2
	vector.DrawFilledCircle(screen, kx, ky, r/4, colorCrater, true)
}

// drawRocket draws the sprite outline and fills the strip that collides.
func drawRocket(screen *ebiten.Image, d dodge.Drawable) {
	body := rgba(d.Color)
	vector.StrokeRect(screen, float32(d.X), float32(d.Y), float32(d.W), float32(d.H), 1, body, false)

	r := dodge.Player{X: d.X, Y: d.Y, W: d.W, H: d.H, Facing: d.Facing}
	for _, box := range r.Hitboxes() {
		vector.DrawFilledRect(screen, float32(box.X), float32(box.Y), float32(box.W), float32(box.H), body, false)
	}

	// Nose
	var nx, ny float32
	switch d.Facing {
	case dodge.FacingRight:
		nx, ny = float32(d.X+d.W), float32(d.Y+d.H/2)
	case dodge.FacingLeft:
		nx, ny = float32(d.X), float32(d.Y+d.H/2)
	default:
		nx, ny = float32(d.X+d.W/2), float32(d.Y)
	}
	vector.DrawFilledCircle(screen, nx, ny, float32(min(d.W, d.H)/6), rgba(core.ColorBrightWhite), true)
}

// drawInfoBar fills the strip below the field with the HUD text.
func (g *Game) drawInfoBar(screen *ebiten.Image) {
	field := g.game.Config().Field
	top := float32(field.Bottom())
	vector.DrawFilledRect(screen, 0, top, float32(g.width), float32(g.height)-top, colorInfoBar, false)

	hud := g.game.InfoBar()
	y := int(top) + (g.height-int(top)-glyphH)/2
	ebitenutil.DebugPrintAt(screen, hud.Left, 8, y)
	ebitenutil.DebugPrintAt(screen, hud.Mid, (g.width-textWidth(hud.Mid))/2, y)
	ebitenutil.DebugPrintAt(screen, hud.Right, g.width-textWidth(hud.Right)-8, y)
}

// drawOverlay shades the field and prints the state message.
func (g *Game) drawOverlay(screen *ebiten.Image) {
	title, subtitle := g.game.Overlay()
	if title == "" {
		return
	}

	boxW := max(textWidth(title), textWidth(subtitle)) + 4*glyphW
	boxH := 5 * glyphH
	x := (g.width - boxW) / 2
	y := (g.height - boxH) / 2
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(boxW), float32(boxH), colorShade, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(boxW), float32(boxH), 1, colorDivider, false)

	ebitenutil.DebugPrintAt(screen, title, (g.width-textWidth(title))/2, y+glyphH)
	ebitenutil.DebugPrintAt(screen, subtitle, (g.width-textWidth(subtitle))/2, y+3*glyphH)
}

func textWidth(s string) int {
	return len([]rune(s)) * glyphW
}
