package decor

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path represents a vector path made of straight and cubic segments.
// Outlines only ever need cubics, so quadratic segments are not modeled.
type Path struct {
	elements []PathElement
	start    Point // Starting point of current subpath
	current  Point // Current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    Pt(x, y),
	})
	p.current = Pt(x, y)
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// moveTo, lineTo and cubicTo are the Point forms used by the builders.
func (p *Path) moveTo(pt Point)          { p.MoveTo(pt.X, pt.Y) }
func (p *Path) lineTo(pt Point)          { p.LineTo(pt.X, pt.Y) }
func (p *Path) cubicTo(c1, c2, pt Point) { p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, pt.X, pt.Y) }

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// IsEmpty reports whether the path has no elements.
func (p *Path) IsEmpty() bool {
	return p == nil || len(p.elements) == 0
}

// Clone returns a deep copy of the path.
func (p *Path) Clone() *Path {
	out := &Path{
		elements: make([]PathElement, len(p.elements)),
		start:    p.start,
		current:  p.current,
	}
	copy(out.elements, p.elements)
	return out
}

// Append adds every element of other to the path.
func (p *Path) Append(other *Path) {
	for _, elem := range other.elements {
		switch e := elem.(type) {
		case MoveTo:
			p.moveTo(e.Point)
		case LineTo:
			p.lineTo(e.Point)
		case CubicTo:
			p.cubicTo(e.Control1, e.Control2, e.Point)
		case Close:
			p.Close()
		}
	}
}

// Translate returns a copy of the path moved by d.
func (p *Path) Translate(d Point) *Path {
	result := NewPath()
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			result.moveTo(e.Point.Add(d))
		case LineTo:
			result.lineTo(e.Point.Add(d))
		case CubicTo:
			result.cubicTo(e.Control1.Add(d), e.Control2.Add(d), e.Point.Add(d))
		case Close:
			result.Close()
		}
	}
	return result
}

// Scale returns a copy of the path with every coordinate multiplied by s.
func (p *Path) Scale(s float64) *Path {
	result := NewPath()
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			result.moveTo(e.Point.Mul(s))
		case LineTo:
			result.lineTo(e.Point.Mul(s))
		case CubicTo:
			result.cubicTo(e.Control1.Mul(s), e.Control2.Mul(s), e.Point.Mul(s))
		case Close:
			result.Close()
		}
	}
	return result
}

// Rectangle adds a clockwise rectangle to the path.
func (p *Path) Rectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}
