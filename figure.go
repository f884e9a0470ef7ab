package fig

// Figure is a shape or a composite of shapes. It is a closed sum: exactly
// three types implement it (Circle, Rectangle, Mix), and the compiler
// enforces that every variant provides every operation.
//
// Figures are immutable values. No operation mutates its receiver; Move
// returns a rebuilt figure. Construction performs no validation: an invalid
// figure (negative-radius circle, inverted rectangle) is only detectable via
// Check and still has well-defined ColorAt behavior.
type Figure interface {
	// ColorAt reports the color of the figure at p.
	// ok is false when the figure does not cover p.
	ColorAt(p Point) (c Color, ok bool)

	// Check reports whether the figure is structurally valid. It is
	// advisory: ColorAt never consults it, and invalid figures render
	// without error.
	Check() bool

	// Move returns a new figure translated by (dx, dy). Radius and colors
	// are unchanged.
	Move(dx, dy int) Figure

	// Bounds returns the corners of the smallest axis-aligned box enclosing
	// the figure's shapes' own boxes. Corners of an inverted rectangle are
	// returned verbatim, not normalized.
	Bounds() (boxMin, boxMax Point)

	// sealed restricts implementations to this package.
	sealed()
}

// Circle is a filled circle. Membership is inclusive of the boundary.
type Circle struct {
	Center Point
	Radius int
	Color  Color
}

// Rectangle is a filled axis-aligned rectangle with inclusive edges.
// Min is the top-left corner, Max the bottom-right.
type Rectangle struct {
	Min, Max Point
	Color    Color
}

// Mix composites two figures. Where exactly one child covers a point, its
// color passes through unchanged; where both cover, the result is the
// channelwise truncating integer average of the two colors.
type Mix struct {
	First, Second Figure
}

func (Circle) sealed()    {}
func (Rectangle) sealed() {}
func (Mix) sealed()       {}

// ColorAt tests squared distance against the squared radius, so the
// boundary is included and no floating point is involved. Squaring means a
// negative radius covers the same points as its absolute value, even though
// Check rejects it.
func (c Circle) ColorAt(p Point) (Color, bool) {
	dx := p.X - c.Center.X
	dy := p.Y - c.Center.Y
	if dx*dx+dy*dy <= c.Radius*c.Radius {
		return c.Color, true
	}
	return Color{}, false
}

// ColorAt tests both axes inclusively against the stored corners. An
// inverted rectangle (Min beyond Max on either axis) can never satisfy the
// double-sided test and so covers nothing.
func (r Rectangle) ColorAt(p Point) (Color, bool) {
	if r.Min.X <= p.X && p.X <= r.Max.X && r.Min.Y <= p.Y && p.Y <= r.Max.Y {
		return r.Color, true
	}
	return Color{}, false
}

func (m Mix) ColorAt(p Point) (Color, bool) {
	c1, ok1 := m.First.ColorAt(p)
	c2, ok2 := m.Second.ColorAt(p)
	switch {
	case ok1 && ok2:
		return average(c1, c2), true
	case ok1:
		return c1, true
	case ok2:
		return c2, true
	}
	return Color{}, false
}

// Check reports whether the radius is non-negative.
func (c Circle) Check() bool {
	return c.Radius >= 0
}

// Check reports whether Min is at or above-left of Max on both axes.
func (r Rectangle) Check() bool {
	return r.Min.X <= r.Max.X && r.Min.Y <= r.Max.Y
}

// Check reports whether both children are valid.
func (m Mix) Check() bool {
	return m.First.Check() && m.Second.Check()
}

func (c Circle) Move(dx, dy int) Figure {
	c.Center = c.Center.Add(Pt(dx, dy))
	return c
}

func (r Rectangle) Move(dx, dy int) Figure {
	d := Pt(dx, dy)
	r.Min = r.Min.Add(d)
	r.Max = r.Max.Add(d)
	return r
}

func (m Mix) Move(dx, dy int) Figure {
	return Mix{
		First:  m.First.Move(dx, dy),
		Second: m.Second.Move(dx, dy),
	}
}

func (c Circle) Bounds() (Point, Point) {
	r := c.Radius
	return Pt(c.Center.X-r, c.Center.Y-r), Pt(c.Center.X+r, c.Center.Y+r)
}

func (r Rectangle) Bounds() (Point, Point) {
	return r.Min, r.Max
}

func (m Mix) Bounds() (Point, Point) {
	min1, max1 := m.First.Bounds()
	min2, max2 := m.Second.Bounds()
	boxMin := Pt(min(min1.X, min2.X), min(min1.Y, min2.Y))
	boxMax := Pt(max(max1.X, max2.X), max(max1.Y, max2.Y))
	return boxMin, boxMax
}
