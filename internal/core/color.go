package core

// Color is a non-premultiplied RGBA color with float channels in [0, 1].
type Color struct {
	R, G, B, A float32
}

// Predefined colors for game elements.
var (
	ColorBlack = Color{0, 0, 0, 1}
	ColorWhite = Color{1, 1, 1, 1}
	ColorCyan  = Color{0, 1, 1, 1}
	ColorRed   = Color{1, 0, 0, 1}
	ColorGray  = Color{0.5, 0.5, 0.5, 1}
)

// RGB returns an opaque color.
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA returns a color with the given alpha.
func RGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// WithAlpha returns a copy of c with its alpha replaced.
func (c Color) WithAlpha(a float32) Color {
	c.A = a
	return c
}

// Bytes converts the color to 8-bit channels, clamping out-of-range values.
func (c Color) Bytes() (r, g, b, a uint8) {
	return channel(c.R), channel(c.G), channel(c.B), channel(c.A)
}

// Over returns c composited over an opaque background, alpha folded into RGB.
func (c Color) Over(bg Color) Color {
	a := ClampF32(c.A, 0, 1)
	return Color{
		R: c.R*a + bg.R*(1-a),
		G: c.G*a + bg.G*(1-a),
		B: c.B*a + bg.B*(1-a),
		A: 1,
	}
}

func channel(v float32) uint8 {
	return uint8(ClampF32(v, 0, 1)*255 + 0.5)
}
