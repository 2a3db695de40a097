package core

// Surface is a drawing target accepting the two primitives every entity
// needs. Coordinates are in field units.
type Surface interface {
	FillCircle(center Vec2, radius float32, c Color)
	Line(from, to Vec2, thickness float32, c Color)
}

// minVisibleAlpha is the alpha below which the terminal rasterizer skips a shape.
const minVisibleAlpha = 0.02

// ScreenSurface rasterizes field-space shapes onto a character Screen.
// The field is stretched over the screen rows starting at Top.
type ScreenSurface struct {
	Screen *Screen
	Field  Bounds
	Top    int // First screen row used for the field (rows above are HUD)
}

// NewScreenSurface creates a rasterizer mapping field onto dst below top rows.
func NewScreenSurface(dst *Screen, field Bounds, top int) *ScreenSurface {
	return &ScreenSurface{Screen: dst, Field: field, Top: top}
}

func (s *ScreenSurface) rows() int {
	return max(s.Screen.Height()-s.Top, 1)
}

// cellSize returns the field extent covered by one cell.
func (s *ScreenSurface) cellSize() (w, h float32) {
	return s.Field.Width() / float32(max(s.Screen.Width(), 1)), s.Field.Height() / float32(s.rows())
}

// ToCell converts a field position to a screen cell.
func (s *ScreenSurface) ToCell(p Vec2) (x, y int) {
	cw, ch := s.cellSize()
	x = floorInt((p.X - s.Field.MinX) / cw)
	y = floorInt((p.Y-s.Field.MinY)/ch) + s.Top
	return x, y
}

// ToField converts a screen cell to the field position at its center.
func (s *ScreenSurface) ToField(x, y int) Vec2 {
	cw, ch := s.cellSize()
	return Vec2{
		X: s.Field.MinX + (float32(x)+0.5)*cw,
		Y: s.Field.MinY + (float32(y-s.Top)+0.5)*ch,
	}
}

// FillCircle implements Surface. Every cell whose center lies inside the
// circle is painted; a circle smaller than a cell paints the cell under
// its center.
func (s *ScreenSurface) FillCircle(center Vec2, radius float32, c Color) {
	if c.A < minVisibleAlpha || radius <= 0 {
		return
	}
	cell := Cell{Rune: Shade(c.A), Color: c.Over(ColorBlack)}

	cw, ch := s.cellSize()
	x0, y0 := s.ToCell(Vec2{X: center.X - radius, Y: center.Y - radius})
	x1, y1 := s.ToCell(Vec2{X: center.X + radius, Y: center.Y + radius})

	painted := false
	r2 := radius * radius
	for y := max(y0, s.Top); y <= y1 && y < s.Screen.Height(); y++ {
		for x := max(x0, 0); x <= x1 && x < s.Screen.Width(); x++ {
			cx := s.Field.MinX + (float32(x)+0.5)*cw
			cy := s.Field.MinY + (float32(y-s.Top)+0.5)*ch
			dx, dy := cx-center.X, cy-center.Y
			if dx*dx+dy*dy <= r2 {
				s.Screen.SetCell(x, y, cell)
				painted = true
			}
		}
	}

	if !painted {
		x, y := s.ToCell(center)
		if y >= s.Top {
			s.Screen.SetCell(x, y, cell)
		}
	}
}

// Line implements Surface by stamping circles of the line's half thickness
// along the segment at half-cell spacing.
func (s *ScreenSurface) Line(from, to Vec2, thickness float32, c Color) {
	cw, ch := s.cellSize()
	step := min(cw, ch) / 2
	length := from.Distance(to)
	n := int(length/step) + 1
	r := max(thickness/2, 0.01)
	for i := 0; i <= n; i++ {
		t := float32(i) / float32(n)
		s.FillCircle(from.Add(to.Sub(from).Scale(t)), r, c)
	}
}

// Shade picks a block glyph whose density tracks alpha.
func Shade(alpha float32) rune {
	switch {
	case alpha >= 0.75:
		return '█'
	case alpha >= 0.5:
		return '▓'
	case alpha >= 0.25:
		return '▒'
	default:
		return '░'
	}
}

func floorInt(v float32) int {
	i := int(v)
	if v < 0 && float32(i) != v {
		i--
	}
	return i
}
