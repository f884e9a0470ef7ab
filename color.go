package fig

import "image/color"

// Color represents a color with alpha, red, green, and blue components.
// Each component is an 8-bit channel in the range [0, 255].
//
// Channel arithmetic in this package (Mix blending) is exact integer math,
// so channels are stored as integers rather than normalized floats.
type Color struct {
	A, R, G, B uint8
}

// ARGB composes a color from its four channels.
func ARGB(a, r, g, b uint8) Color {
	return Color{A: a, R: r, G: g, B: b}
}

// RGB composes an opaque color from RGB channels.
func RGB(r, g, b uint8) Color {
	return Color{A: 255, R: r, G: g, B: b}
}

// Channels decomposes the color into its four channels as integers.
func (c Color) Channels() (a, r, g, b int) {
	return int(c.A), int(c.R), int(c.G), int(c.B)
}

// NRGBA converts the color to the standard library's non-premultiplied form.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// RGBA implements the color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// FromColor converts a standard color.Color to a Color, discarding precision
// beyond 8 bits per channel.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{A: n.A, R: n.R, G: n.G, B: n.B}
}

// average returns the channelwise truncating integer average of two colors.
// Truncation makes the operation commutative but not associative: nesting
// order can shift a channel by one unit.
func average(c1, c2 Color) Color {
	a1, r1, g1, b1 := c1.Channels()
	a2, r2, g2, b2 := c2.Channels()
	return ARGB(
		uint8((a1+a2)/2),
		uint8((r1+r2)/2),
		uint8((g1+g2)/2),
		uint8((b1+b2)/2),
	)
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(255, 255, 255)
	Red         = RGB(255, 0, 0)
	Green       = RGB(0, 255, 0)
	Blue        = RGB(0, 0, 255)
	Yellow      = RGB(255, 255, 0)
	Cyan        = RGB(0, 255, 255)
	Magenta     = RGB(255, 0, 255)
	Transparent = ARGB(0, 0, 0, 0)
)

// DefaultBackground is the color the renderer writes where no figure covers
// a pixel: opaque mid-gray. Override per render with WithBackground.
var DefaultBackground = RGB(128, 128, 128)
