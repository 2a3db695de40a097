package colorbang

import (
	"fmt"

	platformcore "github.com/vovakirdan/colorbang/internal/core"
)

var (
	hudColor    = platformcore.RGB(0.85, 0.85, 0.85)
	chargeColor = platformcore.RGB(1, 0.8, 0.2)
	bannerColor = platformcore.RGB(1, 0.3, 0.3)
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	surface := platformcore.NewScreenSurface(dst, g.field, HUDRows)
	g.world.Draw(surface)

	dst.DrawTextColor(0, 0, g.HUD(), hudColor)
	if g.world.Charge.Charging {
		meter := fmt.Sprintf(" CHARGING %d ", g.world.Charge.Accumulator)
		dst.DrawTextColor(dst.Width()-len(meter), 0, meter, chargeColor)
	}

	mid := HUDRows + (dst.Height()-HUDRows)/2
	switch {
	case g.gameOver:
		drawBanner(dst, mid, "GAME OVER")
		drawBanner(dst, mid+1, fmt.Sprintf("Score %d, wave %d. R to restart, Q to quit", g.score, g.wave))
	case g.paused:
		drawBanner(dst, mid, "PAUSED")
	}
}

func drawBanner(dst *platformcore.Screen, y int, text string) {
	x := (dst.Width() - len([]rune(text))) / 2
	dst.DrawTextColor(max(x, 0), y, text, bannerColor)
}

// Draw renders the world onto any drawing surface, in field coordinates.
func (g *Game) Draw(dst platformcore.Surface) {
	g.world.Draw(dst)
}

// HUD returns the one-line status text.
func (g *Game) HUD() string {
	p := g.world.Player
	return fmt.Sprintf("Score %d  Wave %d  Size %.0f  Enemies %d  Charges %d",
		g.score, g.wave, p.Radius, len(g.world.Enemies), g.world.Charge.Banked)
}
