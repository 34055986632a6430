package dodge

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/rocket-dodge/internal/core"
)

// Visual characters for rendering
const (
	RocketChar   = '█'
	TwinChar     = '▓'
	ObstacleChar = '●'
	LaserVChar   = '│'
	LaserHChar   = '─'
	LifeChar     = '♥'
	StarChar     = '·'
)

// Minimum terminal size for a playable picture.
const (
	minScreenW = 40
	minScreenH = 12
)

// DrawableKind tags a scene entry.
type DrawableKind int

const (
	KindRocket DrawableKind = iota
	KindTwin
	KindObstacle
	KindPowerUp
	KindLaser
)

// Drawable is one entry of the scene list hosts draw each frame.
// ID is stable for the lifetime of the entity it describes.
type Drawable struct {
	ID       uint64
	Kind     DrawableKind
	X, Y     float64 // Top-left for boxes, center for circles
	W, H     float64
	R        float64
	Rotation float64
	Facing   Facing
	Owner    core.PlayerID
	Color    core.Color
	Glyph    rune
}

// Drawables returns the scene back to front: obstacles, power-ups, lasers,
// then rockets.
func (g *Game) Drawables() []Drawable {
	out := make([]Drawable, 0, len(g.obstacles)+len(g.powerUps)+len(g.lasers)+2*len(g.players))
	obstacleColor := levelColor(g.cfg.Level(g.spawnLevel()).Color)

	for _, o := range g.obstacles {
		out = append(out, Drawable{
			ID: o.ID, Kind: KindObstacle,
			X: o.X, Y: o.Y, R: o.Radius, Rotation: o.Rotation,
			Color: obstacleColor, Glyph: ObstacleChar,
		})
	}
	for _, pu := range g.powerUps {
		out = append(out, Drawable{
			ID: pu.ID, Kind: KindPowerUp,
			X: pu.X, Y: pu.Y, R: pu.Radius,
			Color: powerUpColor(pu.Type), Glyph: pu.Type.Glyph(),
		})
	}
	for _, l := range g.lasers {
		glyph := LaserVChar
		if l.VX != 0 {
			glyph = LaserHChar
		}
		out = append(out, Drawable{
			ID: l.ID, Kind: KindLaser,
			X: l.X, Y: l.Y, W: l.W, H: l.H,
			Owner: l.Owner, Color: core.ColorBrightGreen, Glyph: glyph,
		})
	}
	for _, p := range g.players {
		for _, r := range p.rockets() {
			d := Drawable{
				ID: r.SpriteID, Kind: KindRocket,
				X: r.X, Y: r.Y, W: r.W, H: r.H,
				Facing: r.Facing, Owner: p.ID,
				Color: playerColor(p.ID), Glyph: RocketChar,
			}
			if r.IsTwin {
				d.Kind = KindTwin
				d.Glyph = TwinChar
				d.Color = core.ColorCyan
			}
			out = append(out, d)
		}
	}
	return out
}

// Background returns the cosmetic background scroll offset.
func (g *Game) Background() float64 {
	return g.background
}

// Render draws the current game state to the screen. The last row is the HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	v := newViewport(g.cfg.Field.Width, g.cfg.Field.Top, g.cfg.Field.Bottom(), dst.Width(), dst.Height()-1)

	g.renderStars(dst, v)
	if g.mode == ModeVersus {
		mid := v.col(g.cfg.Field.Width / 2)
		for y := 0; y < v.rows; y++ {
			dst.SetColored(mid, y, '┊', core.ColorGray)
		}
	}

	for _, d := range g.Drawables() {
		switch d.Kind {
		case KindObstacle, KindPowerUp:
			v.fillCircle(dst, d.X, d.Y, d.R, d.Glyph, d.Color)
			if d.Kind == KindPowerUp {
				dst.SetColored(v.col(d.X), v.row(d.Y), d.Glyph, d.Color)
			}
		case KindLaser:
			v.fillRect(dst, d.X, d.Y, d.W, d.H, d.Glyph, d.Color)
		case KindRocket, KindTwin:
			g.renderRocket(dst, v, d)
		}
	}

	g.renderHUD(dst)
	g.renderOverlay(dst)
}

// renderRocket draws both hitbox strips so what you see is what collides.
func (g *Game) renderRocket(dst *core.Screen, v viewport, d Drawable) {
	r := Player{X: d.X, Y: d.Y, W: d.W, H: d.H, Facing: d.Facing}
	for _, box := range r.Hitboxes() {
		v.fillRect(dst, box.X, box.Y, box.W, box.H, d.Glyph, d.Color)
	}
	nose := '^'
	switch d.Facing {
	case FacingRight:
		nose = '>'
	case FacingLeft:
		nose = '<'
	}
	cx, cy := r.Rect().Center()
	switch d.Facing {
	case FacingRight:
		dst.SetColored(v.col(d.X+d.W)-1, v.row(cy), nose, core.ColorBrightYellow)
	case FacingLeft:
		dst.SetColored(v.col(d.X), v.row(cy), nose, core.ColorBrightYellow)
	default:
		dst.SetColored(v.col(cx), v.row(d.Y), nose, core.ColorBrightYellow)
	}
}

func (g *Game) renderStars(dst *core.Screen, v viewport) {
	offset := int(g.background / 8)
	for y := 0; y < v.rows; y++ {
		for x := 0; x < dst.Width(); x++ {
			// Sparse deterministic pattern scrolling down with the background.
			if (x*7+(y-offset)*13)%53 == 0 {
				dst.SetColored(x, y, StarChar, core.ColorGray)
			}
		}
	}
}

// HUD holds the info bar text: left, center and right aligned parts.
type HUD struct {
	Left, Mid, Right      string
	LeftColor, RightColor core.Color
}

// InfoBar returns the info bar text for the current state.
func (g *Game) InfoBar() HUD {
	if g.mode == ModeVersus {
		return HUD{
			Left:       fmt.Sprintf(" P1 %s%s", hearts(g.Lives(core.Player1)), g.effectTags(core.Player1)),
			Mid:        fmt.Sprintf("Passed %d", g.passed),
			Right:      fmt.Sprintf("%s%s P2 ", g.effectTags(core.Player2), hearts(g.Lives(core.Player2))),
			LeftColor:  core.ColorRed,
			RightColor: core.ColorBlue,
		}
	}

	passed, quota := g.Progress()
	return HUD{
		Left:       fmt.Sprintf(" Level %d/%d  %s", max(g.level, 1), len(g.cfg.Levels), hearts(g.Lives(core.Player1))),
		Mid:        fmt.Sprintf("%d/%d%s", passed, quota, g.effectTags(core.Player1)),
		Right:      fmt.Sprintf("Score %d ", g.score),
		LeftColor:  core.ColorBrightWhite,
		RightColor: core.ColorBrightYellow,
	}
}

// renderHUD draws the info bar on the bottom row.
func (g *Game) renderHUD(dst *core.Screen) {
	y := dst.Height() - 1
	for x := 0; x < dst.Width(); x++ {
		dst.SetColored(x, y, ' ', core.ColorDefault)
	}

	hud := g.InfoBar()
	dst.DrawTextColored(0, y, hud.Left, hud.LeftColor)
	dst.DrawTextCentered(y, hud.Mid)
	dst.DrawTextColored(dst.Width()-len([]rune(hud.Right)), y, hud.Right, hud.RightColor)
}

func (g *Game) effectTags(id core.PlayerID) string {
	p := g.player(id)
	if p == nil {
		return ""
	}
	var tags []string
	switch p.Size {
	case SizeHalf:
		tags = append(tags, "HALF")
	case SizeDouble:
		tags = append(tags, "DOUBLE")
	}
	if p.Lasers {
		tags = append(tags, "LASERS")
	}
	if p.Twin != nil {
		tags = append(tags, "TWIN")
	}
	if len(tags) == 0 {
		return ""
	}
	return " [" + strings.Join(tags, " ") + "]"
}

// Overlay returns the message box for the current state. An empty title
// means no box.
func (g *Game) Overlay() (title, subtitle string) {
	if g.paused {
		return "PAUSED", "Press P to resume"
	}

	switch g.phase {
	case PhaseMenu:
		if g.mode == ModeVersus {
			return "ROCKET DODGE VERSUS", "P1: WASD + SPACE  P2: ARROWS + /  |  SPACE to start"
		}
		return "ROCKET DODGE", "WASD/ARROWS to fly  |  SPACE to start"
	case PhaseLifeLost:
		return "HIT!", "Get ready..."
	case PhaseLevelComplete:
		if len(g.obstacles) == 0 {
			return fmt.Sprintf("LEVEL %d COMPLETE", g.level), "Press SPACE for the next level"
		}
	case PhaseGameOver:
		if g.mode == ModeVersus {
			title := "DRAW"
			if g.winner != 0 {
				title = g.winner.String() + " WINS"
			}
			return title, "Press R or SPACE to play again"
		}
		return "GAME OVER", fmt.Sprintf("Score: %d  |  Press R or SPACE to restart", g.score)
	case PhaseVictory:
		return "YOU WIN THE GAME!", fmt.Sprintf("Final Score: %d  |  Press R to restart", g.score)
	}
	return "", ""
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	if title, subtitle := g.Overlay(); title != "" {
		drawCenteredBox(dst, title, subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	tw, sw := len([]rune(title)), len([]rune(subtitle))
	boxW := min(max(tw, sw)+4, w)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawTextColored(boxX+(boxW-tw)/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawText(boxX+max((boxW-sw)/2, 1), boxY+3, subtitle)
}

func hearts(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(string(LifeChar), n)
}

// viewport maps field coordinates onto screen cells.
type viewport struct {
	top        float64
	sx, sy     float64
	cols, rows int
}

func newViewport(fieldW, top, bottom float64, cols, rows int) viewport {
	return viewport{
		top:  top,
		sx:   float64(cols) / fieldW,
		sy:   float64(rows) / (bottom - top),
		cols: cols,
		rows: rows,
	}
}

func (v viewport) col(x float64) int { return int(math.Floor(x * v.sx)) }

func (v viewport) row(y float64) int { return int(math.Floor((y - v.top) * v.sy)) }

// fillRect paints every cell whose center lies in the field rectangle, or the
// nearest cell when the rectangle is thinner than one cell.
func (v viewport) fillRect(dst *core.Screen, x, y, w, h float64, glyph rune, c core.Color) {
	c0, c1 := v.col(x), v.col(x+w)
	r0, r1 := v.row(y), v.row(y+h)
	if c1 <= c0 {
		c1 = c0 + 1
	}
	if r1 <= r0 {
		r1 = r0 + 1
	}
	for row := max(r0, 0); row < min(r1, v.rows); row++ {
		for col := c0; col < c1; col++ {
			dst.SetColored(col, row, glyph, c)
		}
	}
}

// fillCircle paints the cells whose centers fall inside the circle.
func (v viewport) fillCircle(dst *core.Screen, cx, cy, r float64, glyph rune, c core.Color) {
	r0, r1 := v.row(cy-r), v.row(cy+r)
	c0, c1 := v.col(cx-r), v.col(cx+r)
	painted := false
	for row := max(r0, 0); row <= min(r1, v.rows-1); row++ {
		fy := (float64(row)+0.5)/v.sy + v.top
		for col := c0; col <= c1; col++ {
			fx := (float64(col) + 0.5) / v.sx
			if (fx-cx)*(fx-cx)+(fy-cy)*(fy-cy) <= r*r {
				dst.SetColored(col, row, glyph, c)
				painted = true
			}
		}
	}
	if !painted {
		if row := v.row(cy); row >= 0 && row < v.rows {
			dst.SetColored(v.col(cx), row, glyph, c)
		}
	}
}

func levelColor(name string) core.Color {
	switch name {
	case "yellow":
		return core.ColorYellow
	case "green":
		return core.ColorGreen
	case "blue":
		return core.ColorBlue
	case "magenta":
		return core.ColorMagenta
	case "navy":
		return core.ColorNavy
	case "white":
		return core.ColorWhite
	case "orange":
		return core.ColorOrange
	case "salmon":
		return core.ColorSalmon
	case "pink":
		return core.ColorPink
	case "gray":
		return core.ColorGray
	case "red":
		return core.ColorRed
	case "cyan":
		return core.ColorCyan
	default:
		return core.ColorWhite
	}
}

func powerUpColor(t PowerUpType) core.Color {
	switch t {
	case PowerUpHalfSize:
		return core.ColorBrightCyan
	case PowerUpDoubleSize:
		return core.ColorBrightMagenta
	case PowerUpLasers:
		return core.ColorBrightGreen
	case PowerUpTwin:
		return core.ColorBrightBlue
	default:
		return core.ColorWhite
	}
}

func playerColor(id core.PlayerID) core.Color {
	if id == core.Player2 {
		return core.ColorBlue
	}
	return core.ColorRed
}
