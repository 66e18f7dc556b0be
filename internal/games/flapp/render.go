package flapp

import (
	"fmt"
	"math"

	"github.com/vovakirdan/flapp/internal/config"
	"github.com/vovakirdan/flapp/internal/core"
)

// Visual characters for rendering
const (
	PipeChar      = '█'
	PipeCapTop    = '▄' // Gap-facing end of the upper member
	PipeCapBottom = '▀' // Gap-facing end of the lower member
	GroundChar    = '═'
	GroundFill    = '░'
	CloudChar     = '·'
	AvatarBody    = '●'
	FieldEdge     = '│'
)

// cellAspect is the height/width ratio of a terminal cell.
const cellAspect = 2.0

// viewport maps world pixels to screen cells. The field keeps the world's
// aspect ratio and is centered horizontally.
type viewport struct {
	offX   int
	width  int
	height int
	sx, sy float64
}

func newViewport(dst *core.Screen, world config.World) viewport {
	h := dst.Height()
	w := int(math.Round(float64(h) * world.Width / world.Height * cellAspect))
	w = core.Clamp(w, 1, max(1, dst.Width()))
	return viewport{
		offX:   (dst.Width() - w) / 2,
		width:  w,
		height: h,
		sx:     float64(w) / world.Width,
		sy:     float64(h) / world.Height,
	}
}

func (v viewport) x(wx float64) int {
	return v.offX + int(math.Floor(wx*v.sx))
}

func (v viewport) y(wy float64) int {
	return int(math.Floor(wy * v.sy))
}

func (v viewport) inField(x int) bool {
	return x >= v.offX && x < v.offX+v.width
}

// set draws a cell only inside the field columns.
func (v viewport) set(dst *core.Screen, x, y int, r rune, c core.Color) {
	if v.inField(x) {
		dst.SetColored(x, y, r, c)
	}
}

// centerX returns the column that centers text of length n in the field.
func (v viewport) centerX(n int) int {
	return v.offX + (v.width-n)/2
}

// Draw renders a snapshot into dst.
func Draw(dst *core.Screen, s Snapshot) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 || s.World.Width <= 0 || s.World.Height <= 0 {
		return
	}
	v := newViewport(dst, s.World)

	drawSky(dst, v, s)
	for _, p := range s.Pairs {
		drawPair(dst, v, p, s.GroundTop)
	}
	drawGround(dst, v, s)
	drawAvatar(dst, v, s.Avatar)
	drawScore(dst, v, s)
	drawOverlays(dst, v, s)
}

func drawSky(dst *core.Screen, v viewport, s Snapshot) {
	for y := 0; y < v.height; y++ {
		dst.SetColored(v.offX-1, y, FieldEdge, core.ColorFaded)
		dst.SetColored(v.offX+v.width, y, FieldEdge, core.ColorFaded)
	}

	shift := int(math.Floor(-s.BackgroundX * v.sx))
	cloudRow := v.y(s.GroundTop / 3)
	for cx := 0; cx < v.width; cx++ {
		if (cx+shift)%12 == 0 {
			v.set(dst, v.offX+cx, cloudRow, CloudChar, core.ColorSky)
		}
		if (cx+shift+5)%17 == 0 {
			v.set(dst, v.offX+cx, cloudRow+2, CloudChar, core.ColorSky)
		}
	}
}

func drawPair(dst *core.Screen, v viewport, p Pair, groundTop float64) {
	x0, x1 := v.x(p.X), v.x(p.TrailingEdge())
	if x1 <= x0 {
		x1 = x0 + 1
	}
	gapTop, gapBottom := v.y(p.UpperY()), v.y(p.Y)
	groundRow := v.y(groundTop)

	for x := x0; x < x1; x++ {
		for y := v.y(p.Upper().MinY); y < gapTop; y++ {
			v.set(dst, x, y, PipeChar, core.ColorPipe)
		}
		for y := gapBottom; y < groundRow; y++ {
			v.set(dst, x, y, PipeChar, core.ColorPipe)
		}
		if gapTop > 0 {
			v.set(dst, x, gapTop-1, PipeCapTop, core.ColorPipeCap)
		}
		v.set(dst, x, gapBottom, PipeCapBottom, core.ColorPipeCap)
	}
}

func drawGround(dst *core.Screen, v viewport, s Snapshot) {
	top := v.y(s.GroundTop)
	shift := int(math.Floor(-s.GroundX * v.sx))
	for cx := 0; cx < v.width; cx++ {
		v.set(dst, v.offX+cx, top, GroundChar, core.ColorGround)
		for y := top + 1; y < v.height; y++ {
			r := ' '
			if (cx+shift+y)%4 == 0 {
				r = GroundFill
			}
			v.set(dst, v.offX+cx, y, r, core.ColorGround)
		}
	}
}

// avatarHead picks a glyph for the nose direction. Nose-up is negative.
func avatarHead(a AvatarView) rune {
	switch {
	case !a.Alive:
		return 'x'
	case a.Angle < -10:
		return '▲'
	case a.Angle > 45:
		return '▼'
	default:
		return '▶'
	}
}

func drawAvatar(dst *core.Screen, v viewport, a AvatarView) {
	x, y := v.x(a.X), v.y(a.Y)
	color := core.ColorAvatar
	if !a.Alive {
		color = core.ColorDanger
	}
	v.set(dst, x-1, y, AvatarBody, color)
	v.set(dst, x, y, avatarHead(a), color)
}

func drawScore(dst *core.Screen, v viewport, s Snapshot) {
	if s.Overlay.HUD <= 0 {
		return
	}
	color := alphaColor(s.Overlay.HUD, core.ColorScore)
	for _, g := range s.Glyphs {
		x := v.x(g.X + s.ScoreLayout.DigitWidth/2)
		y := v.y(g.Y + s.ScoreLayout.DigitHeight/2)
		v.set(dst, x, y, rune('0'+g.Digit), color)
	}
}

func drawOverlays(dst *core.Screen, v viewport, s Snapshot) {
	h := s.World.Height

	if s.Overlay.Ready > 0 {
		color := alphaColor(s.Overlay.Ready, core.ColorPrompt)
		title, hint := "GET READY", "space to flap"
		y := v.y(h / 2.5)
		dst.DrawTextColored(v.centerX(len(title)), y, title, color)
		dst.DrawTextColored(v.centerX(len(hint)), y+1, hint, color)
	}

	if s.Overlay.GameOver > 0 {
		color := alphaColor(s.Overlay.GameOver, core.ColorDanger)
		title := "GAME OVER"
		score := fmt.Sprintf("score %d", s.Score)
		boxW := max(len(title), len(score)) + 4
		box := core.NewRect(v.centerX(boxW), v.y(h/3)-1, boxW, 4)
		dst.FillRect(box, ' ', core.ColorDefault)
		dst.DrawBox(box, color)
		dst.DrawTextColored(v.centerX(len(title)), box.Y+1, title, color)
		dst.DrawTextColored(v.centerX(len(score)), box.Y+2, score, color)
	}

	if s.Overlay.Retry > 0 {
		label := "[R] retry"
		color := core.ColorFaded
		if s.RetryReady {
			color = core.ColorPrompt
		}
		dst.DrawTextColored(v.centerX(len(label)), v.y(h/2), label, color)
	}

	if s.Paused {
		label := " PAUSED "
		dst.DrawTextColored(v.centerX(len(label)), v.height/2, label, core.ColorPrompt)
	}
}

// alphaColor degrades a color while its overlay is mostly transparent.
func alphaColor(alpha float64, c core.Color) core.Color {
	if alpha < 0.5 {
		return core.ColorFaded
	}
	return c
}
