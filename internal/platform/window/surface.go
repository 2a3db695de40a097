package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/colorbang/internal/core"
)

// imageSurface draws field-space shapes onto an ebiten image whose
// logical size matches the field.
type imageSurface struct {
	dst   *ebiten.Image
	field core.Bounds
}

func (s imageSurface) toImage(p core.Vec2) (x, y float32) {
	return p.X - s.field.MinX, p.Y - s.field.MinY
}

// FillCircle implements core.Surface.
func (s imageSurface) FillCircle(center core.Vec2, radius float32, c core.Color) {
	if radius <= 0 {
		return
	}
	x, y := s.toImage(center)
	vector.DrawFilledCircle(s.dst, x, y, radius, toNRGBA(c), true)
}

// Line implements core.Surface.
func (s imageSurface) Line(from, to core.Vec2, thickness float32, c core.Color) {
	x0, y0 := s.toImage(from)
	x1, y1 := s.toImage(to)
	vector.StrokeLine(s.dst, x0, y0, x1, y1, thickness, toNRGBA(c), true)
}

// toNRGBA converts a straight-alpha color to the image/color type that
// carries the same non-premultiplied channels.
func toNRGBA(c core.Color) color.NRGBA {
	r, g, b, a := c.Bytes()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}
