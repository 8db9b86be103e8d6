package runner

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/sim"
)

// Visual characters for rendering
const (
	PlayerChar     = 'Ʌ'
	ShadowChar     = '·'
	LaneMarkChar   = '╎'
	HeartFull      = '♥'
	HeartEmpty     = '♡'
	healthBarCells = 10
)

// Field layout
const (
	hudRows     = 2 // Status line and separator
	fieldMargin = 2 // Columns kept free on each side of the track
	playerInset = 3 // Rows between the player and the bottom border
	minTrackW   = 15
	maxTrackW   = 45
)

var variantGlyphs = map[sim.Variant]struct {
	r rune
	c core.Color
}{
	sim.VariantBox:      {'■', core.ColorRed},
	sim.VariantPyramid:  {'▲', core.ColorBrightRed},
	sim.VariantCylinder: {'●', core.ColorOrange},
	sim.VariantCoin:     {'o', core.ColorYellow},
	sim.VariantGem:      {'◆', core.ColorBrightCyan},
	sim.VariantStar:     {'★', core.ColorBrightYellow},
	sim.VariantOrb:      {'✦', core.ColorBrightMagenta},
}

// track is the screen area the lanes are drawn in, plus the mapping
// from world coordinates to cells.
type track struct {
	box            core.Rect
	inner          core.Rect
	laneLo, laneHi float64 // World X shown at the left and right edges
	farZ, nearZ    float64 // Distance shown at the top and bottom rows
	playerRow      int
	laneCols       [3]int
}

func (g *Game) layout(dst *core.Screen) track {
	w := core.Clamp(dst.Width()-2*fieldMargin, minTrackW, maxTrackW)
	box := core.NewRect((dst.Width()-w)/2, hudRows, w, dst.Height()-hudRows)
	inner := box.Inset(1)

	lanes := g.cfg.Lanes.Positions
	spread := lanes[2] - lanes[0]
	tr := track{
		box:    box,
		inner:  inner,
		laneLo: lanes[0] - spread/4,
		laneHi: lanes[2] + spread/4,
		farZ:   g.cfg.Spawn.Distance,
		nearZ:  -g.cfg.Spawn.ExitDistance,
	}
	tr.playerRow = inner.Bottom() - 1 - playerInset
	for i, x := range lanes {
		tr.laneCols[i] = tr.col(x)
	}
	return tr
}

func (tr track) col(worldX float64) int {
	return core.Project(worldX, tr.laneLo, tr.laneHi, tr.inner.X, tr.inner.Right()-1)
}

// row maps a forward distance to a screen row. Distance 0 lands on the
// player row; the rows above cover up to farZ, the rows below the exit zone.
func (tr track) row(distance float64) int {
	if distance >= 0 {
		return core.Project(distance, 0, tr.farZ, tr.playerRow, tr.inner.Y)
	}
	return core.Project(distance, 0, tr.nearZ, tr.playerRow, tr.inner.Bottom()-1)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() < minTrackW || dst.Height() < hudRows+8 {
		dst.DrawTextCentered(dst.Height()/2, "terminal too small")
		return
	}

	snap := g.sim.Snapshot()
	tr := g.layout(dst)

	g.drawTrack(dst, tr)
	for _, e := range snap.Entities {
		g.drawEntity(dst, tr, e)
	}
	g.drawPlayer(dst, tr, snap)
	g.drawHUD(dst, snap)

	if g.toastTicks > 0 && g.toast != "" {
		dst.DrawTextCenteredColored(tr.inner.Y+1, g.toast, g.toastColor)
	}

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if snap.Phase == sim.PhaseGameOver {
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  Best combo: x%d  |  Press R to restart", snap.Score, snap.HighestCombo))
	}
}

func (g *Game) drawTrack(dst *core.Screen, tr track) {
	border := core.ColorGray
	if g.flashTicks > 0 {
		border = core.ColorBrightRed
	}
	dst.DrawBox(tr.box, border)

	// Lane dividers scroll toward the player
	offset := int(g.tick/4) % 2
	for i := 0; i < len(tr.laneCols)-1; i++ {
		x := (tr.laneCols[i] + tr.laneCols[i+1]) / 2
		for y := tr.inner.Y; y < tr.inner.Bottom(); y++ {
			if (y+offset)%2 == 0 {
				dst.SetColored(x, y, LaneMarkChar, core.ColorGray)
			}
		}
	}
}

func (g *Game) drawEntity(dst *core.Screen, tr track, e sim.Entity) {
	glyph, ok := variantGlyphs[e.Variant]
	if !ok {
		glyph.r, glyph.c = '?', core.ColorWhite
	}
	dst.SetColored(tr.laneCols[e.Lane], tr.row(e.Distance), glyph.r, glyph.c)
}

func (g *Game) drawPlayer(dst *core.Screen, tr track, snap sim.Snapshot) {
	p := snap.Player
	x := tr.col(p.X)

	// Height lifts the sprite a few rows; the shadow stays on the ground row
	lift := 0
	if p.Airborne {
		lift = core.Project(p.Y-g.cfg.Physics.GroundY, 0, 2, 0, 2)
		dst.SetColored(x, tr.playerRow, ShadowChar, core.ColorGray)
	}

	color := core.ColorBrightWhite
	switch {
	case p.Invincible && g.tick%6 < 3:
		color = core.ColorBrightCyan
	case snap.PowerUp.Active:
		color = core.ColorBrightMagenta
	case g.flashTicks > 0:
		color = core.ColorBrightRed
	}
	dst.SetColored(x, tr.playerRow-lift, PlayerChar, color)
}

func (g *Game) drawHUD(dst *core.Screen, snap sim.Snapshot) {
	x := 1
	put := func(text string, c core.Color) {
		dst.DrawTextColored(x, 0, text, c)
		x += len([]rune(text)) + 2
	}

	put(fmt.Sprintf("Score %d", snap.Score), core.ColorBrightWhite)

	comboColor := core.ColorYellow
	if snap.Combo > 1 {
		comboColor = core.ColorBrightYellow
	}
	combo := fmt.Sprintf("x%d", snap.Combo)
	if remaining := snap.ComboRemaining(); remaining > 0 {
		combo += fmt.Sprintf(" (%.1fs)", remaining.Seconds())
	}
	put(combo, comboColor)

	level := fmt.Sprintf("Lv %d", snap.Level)
	if config.IsFixedPreset(g.preset) {
		level += " fixed"
	}
	put(level, core.ColorBrightGreen)
	put(healthBar(snap.Health, snap.MaxHealth), healthColor(snap.Health, snap.MaxHealth))

	if w := snap.PowerUp; w.Active {
		put(fmt.Sprintf("PWR %.1fs", w.Remaining(snap.Now).Seconds()), core.ColorBrightMagenta)
	}
	if w := snap.Invincibility; w.Active {
		put(fmt.Sprintf("INV %.1fs", w.Remaining(snap.Now).Seconds()), core.ColorBrightCyan)
	}

	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)
}

// healthBar renders health as hearts, rounding partial cells up so a
// living player never shows an empty bar.
func healthBar(current, maxHP int) string {
	filled := 0
	if maxHP > 0 && current > 0 {
		filled = (current*healthBarCells + maxHP - 1) / maxHP
	}
	filled = core.Clamp(filled, 0, healthBarCells)
	return strings.Repeat(string(HeartFull), filled) +
		strings.Repeat(string(HeartEmpty), healthBarCells-filled)
}

func healthColor(current, maxHP int) core.Color {
	switch {
	case current*4 <= maxHP:
		return core.ColorBrightRed
	case current*2 <= maxHP:
		return core.ColorYellow
	default:
		return core.ColorGreen
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := core.Min(core.Max(len(title), len(subtitle))+4, dst.Width())
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorBrightWhite)
	dst.DrawTextCenteredColored(box.Y+1, title, core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+3, subtitle)
}
