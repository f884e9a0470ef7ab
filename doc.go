// Package fig provides a small declarative 2D figure model for Go.
//
// # Overview
//
// fig describes images as a tree of figures: circles, rectangles, and Mix
// composites that blend their children where they overlap. Rendering is a
// per-pixel query: for every pixel the figure tree reports whether it covers
// that point and with what color, and the renderer writes the result into a
// Pixmap.
//
// # Quick Start
//
//	import "github.com/gogpu/fig"
//
//	// A red circle overlapping a blue rectangle.
//	f := fig.Mix{
//	    First:  fig.Circle{Center: fig.Pt(50, 50), Radius: 45, Color: fig.Red},
//	    Second: fig.Rectangle{Min: fig.Pt(40, 40), Max: fig.Pt(90, 110), Color: fig.Blue},
//	}
//
//	pm := fig.Render(f, 200, 200)
//	pm.SavePNG("mix.png")
//
// # Figures
//
// Figure is a closed sum: exactly Circle, Rectangle, and Mix implement it.
// Every figure supports four operations:
//   - ColorAt: the color at a point, if the figure covers it
//   - Check: structural validity (advisory; ColorAt never consults it)
//   - Move: translation, producing a new figure
//   - Bounds: the axis-aligned box enclosing the figure
//
// Figures are immutable values. Operations never mutate; Move rebuilds.
//
// # Coordinate System
//
// Uses standard raster coordinates with integer pixels:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Circle and rectangle membership tests are inclusive of the boundary.
package fig
