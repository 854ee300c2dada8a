package train

import (
	"fmt"
	"math"

	"github.com/vovakirdan/happy-arcade/internal/core"
)

// Body sizes in view units, matching the drawn shapes.
const (
	wagonHeight = 50
	locoWidth   = 140
	locoHeight  = 120
	coalSize    = 20
)

// Visual characters for rendering
const (
	RailChar   = '═'
	HillChar   = '░'
	WagonChar  = '█'
	CoalChar   = '●'
	LocoChar   = '█'
	CabinChar  = '▓'
	FunnelChar = '▌'
	SmokeThick = '▒'
	SmokeThin  = '░'
	TunnelChar = '▓'
)

var wagonColors = []core.Color{
	core.ColorBrown,
	core.ColorRed,
	core.ColorBlue,
	core.ColorGreen,
	core.ColorYellow,
	core.ColorMagenta,
	core.ColorOrange,
	core.ColorGray,
}

// view maps view units onto terminal cells below the HUD row.
type view struct {
	sx, sy float64
}

func (g *Game) view(dst *core.Screen) view {
	return view{
		sx: float64(dst.Width()) / g.cfg.View.Width,
		sy: float64(dst.Height()-1) / g.cfg.View.Height,
	}
}

func (v view) point(x, y float64) (int, int) {
	return int(math.Floor(x * v.sx)), 1 + int(math.Floor(y*v.sy))
}

// span converts a horizontal extent [x0, x1) and vertical [y0, y1) to cells.
func (v view) span(x0, y0, x1, y1 float64) core.Rect {
	cx0, cy0 := v.point(x0, y0)
	cx1, cy1 := v.point(x1, y1)
	return core.NewRect(cx0, cy0, core.Max(1, cx1-cx0), core.Max(1, cy1-cy0))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	v := g.view(dst)

	g.drawHills(dst, v)

	var tunnels []core.Entity
	wagon := 0
	for _, e := range g.Entities() {
		b := e.Box
		switch e.Kind {
		case core.EntityTunnel:
			tunnels = append(tunnels, e)
		case core.EntityWagon:
			color := wagonColors[wagon%len(wagonColors)]
			wagon++
			dst.DrawRectColored(v.span(b.X-b.W/2, b.Y-b.H, b.X+b.W/2, b.Y), WagonChar, color)
			x, y := v.point(b.X, b.Y-b.H)
			dst.SetColored(x, y, CoalChar, core.ColorGray)
		case core.EntityLocomotive:
			g.drawLocomotive(dst, v, e)
		case core.EntityCoal:
			x, y := v.point(b.X, b.Y)
			dst.SetColored(x, y, CoalChar, core.ColorBrown)
		case core.EntitySmoke:
			x, y := v.point(b.X, b.Y)
			ch := SmokeThin
			if e.Life > 0.5 {
				ch = SmokeThick
			}
			dst.SetColored(x, y, ch, core.ColorGray)
		}
	}

	// Tunnels are drawn in front of the train.
	for _, e := range tunnels {
		g.drawTunnel(dst, v, e)
	}

	// Draw HUD
	hud := fmt.Sprintf(" Speed: %d   Distance: %.1f km ", int(math.Round(g.train.Speed*10)), g.train.Distance/10000)
	dst.DrawTextColored(1, 0, hud, core.ColorBrightWhite)

	switch {
	case g.train.Completed:
		g.drawCenteredMessage(dst, "LEVEL COMPLETE!",
			fmt.Sprintf("You traveled %.0f km. Press Q to leave", g.cfg.Level.TargetDistance/10000))
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawHills draws the rail line and the ground below it, one column at a
// time, sampling the terrain under each column.
func (g *Game) drawHills(dst *core.Screen, v view) {
	for cx := 0; cx < dst.Width(); cx++ {
		x := (float64(cx) + 0.5) / v.sx
		h := g.cfg.Terrain.Height(g.train.Distance + x)
		_, cy := v.point(x, g.chain.trackY-h)
		dst.SetColored(cx, cy, RailChar, core.ColorGray)
		for y := cy + 1; y < dst.Height(); y++ {
			dst.SetColored(cx, y, HillChar, core.ColorGreen)
		}
	}
}

func (g *Game) drawLocomotive(dst *core.Screen, v view, e core.Entity) {
	b := e.Box
	body := v.span(b.X-b.W/2, b.Y-80, b.X+b.W/2, b.Y)
	dst.DrawRectColored(body, LocoChar, core.ColorRed)
	cabin := v.span(b.X-b.W/2, b.Y-b.H, b.X-b.W/2+50, b.Y-70)
	dst.DrawRectColored(cabin, CabinChar, core.ColorBrightRed)

	f := core.Vec{X: g.cfg.Smoke.FunnelX, Y: g.cfg.Smoke.FunnelY}.Rotate(e.Angle)
	fx, fy := v.point(b.X+f.X, b.Y+f.Y)
	for y := fy; y < body.Y; y++ {
		dst.SetColored(fx, y, FunnelChar, core.ColorGray)
	}
}

func (g *Game) drawTunnel(dst *core.Screen, v view, e core.Entity) {
	b := e.Box
	roof := v.span(b.X, b.Y, b.X+b.W, b.Y+b.H*0.45)
	dst.DrawRectColored(roof, TunnelChar, core.ColorGray)
	for _, x := range []float64{b.X, b.X + b.W} {
		cx, _ := v.point(x, 0)
		for y := roof.Y; y < roof.Bottom()+int(b.H*0.55*v.sy); y++ {
			dst.SetColored(cx, y, '█', core.ColorGray)
		}
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextCentered(boxY+1, title, core.ColorBrightYellow)
	dst.DrawTextCentered(boxY+3, subtitle, core.ColorDefault)
}
