package kitty

import (
	"fmt"
	"math"

	"github.com/vovakirdan/happy-arcade/internal/core"
)

// Visual characters for rendering
const (
	GroundTopChar = '▀'
	GroundChar    = '▓'
	PlatformChar  = '▬'
	StepChar      = '█'
	KittyChar     = '█'
	KittyEarChar  = '^'
	DogChar       = '▆'
	BowlChar      = '▄'
	FishGlyph     = "><>"
)

// view maps world units onto terminal cells. Row 0 is the HUD.
type view struct {
	camera float64
	sx, sy float64
}

func (g *Game) view(dst *core.Screen) view {
	return view{
		camera: g.camera,
		sx:     float64(dst.Width()) / g.cfg.World.Width,
		sy:     float64(dst.Height()-1) / g.cfg.World.Height,
	}
}

func (v view) point(p core.Vec) (int, int) {
	return int(math.Floor((p.X - v.camera) * v.sx)), 1 + int(math.Floor(p.Y*v.sy))
}

// rect converts a world box to cells, never smaller than one cell.
func (v view) rect(b core.Box) core.Rect {
	x0, y0 := v.point(core.Vec{X: b.X, Y: b.Y})
	x1, y1 := v.point(core.Vec{X: b.Right(), Y: b.Bottom()})
	return core.NewRect(x0, y0, core.Max(1, x1-x0), core.Max(1, y1-y0))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	v := g.view(dst)

	for _, e := range g.Entities() {
		switch e.Kind {
		case core.EntityGround:
			r := v.rect(e.Box)
			dst.DrawRectColored(r, GroundChar, core.ColorGreen)
			dst.DrawRectColored(core.NewRect(r.X, r.Y, r.W, 1), GroundTopChar, core.ColorBrightGreen)
		case core.EntityPlatform:
			dst.DrawRectColored(v.rect(e.Box), PlatformChar, core.ColorBrown)
		case core.EntityStep:
			dst.DrawRectColored(v.rect(e.Box), StepChar, core.ColorGray)
		case core.EntityFish:
			x, y := v.point(core.Vec{X: e.Box.X, Y: e.Box.Y})
			dst.DrawTextColored(x-1, y, FishGlyph, core.ColorBrightCyan)
		case core.EntityDog:
			g.drawDog(dst, v, e)
		case core.EntityGoal:
			dst.DrawRectColored(v.rect(e.Box), BowlChar, core.ColorBrightRed)
		case core.EntityPlayer:
			g.drawKitty(dst, v, e)
		}
	}

	// Draw HUD
	hud := fmt.Sprintf(" Fish: %d   Lives: %d ", g.score, g.player.Lives)
	dst.DrawTextColored(1, 0, hud, core.ColorBrightWhite)

	switch g.phase() {
	case core.PhaseWon:
		g.drawCenteredMessage(dst, "YOU WIN! Happy Kitty!",
			fmt.Sprintf("Final Score: %d Fish  |  Press R to restart", g.score))
	case core.PhaseLost:
		g.drawCenteredMessage(dst, "GAME OVER", "The dogs got the kitty!  |  Press R to restart")
	default:
		if g.paused {
			g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
		}
	}
}

func (g *Game) drawKitty(dst *core.Screen, v view, e core.Entity) {
	// Flicker during the grace window.
	if e.Invincible && (g.ticks/4)%2 == 1 {
		return
	}
	r := v.rect(e.Box)
	dst.DrawRectColored(r, KittyChar, core.ColorOrange)
	dst.SetColored(r.X, r.Y, KittyEarChar, core.ColorOrange)
	dst.SetColored(r.Right()-1, r.Y, KittyEarChar, core.ColorOrange)
	eye := r.Right() - 1
	if e.Facing < 0 {
		eye = r.X
	}
	if r.H > 1 {
		dst.SetColored(eye, r.Y+1, '•', core.ColorBrightWhite)
	}
}

func (g *Game) drawDog(dst *core.Screen, v view, e core.Entity) {
	r := v.rect(e.Box)
	dst.DrawRectColored(r, DogChar, core.ColorYellow)
	head := r.Right() - 1
	if e.Facing < 0 {
		head = r.X
	}
	dst.SetColored(head, r.Y, 'ö', core.ColorBrightYellow)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextCentered(boxY+1, title, core.ColorBrightYellow)
	dst.DrawTextCentered(boxY+3, subtitle, core.ColorDefault)
}
