package decor

import "math"

// Path operations for area calculation, containment testing,
// bounding box computation, flattening and reversal.

// Area returns the signed area enclosed by the path.
// Positive for clockwise paths in a y-down coordinate system.
// Uses the shoelace formula extended for cubics (Green's theorem).
func (p *Path) Area() float64 {
	var area float64
	var current, start Point

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			start = e.Point
			current = e.Point
		case LineTo:
			area += lineArea(current, e.Point)
			current = e.Point
		case CubicTo:
			area += cubicArea(current, e.Control1, e.Control2, e.Point)
			current = e.Point
		case Close:
			area += lineArea(current, start)
			current = start
		}
	}

	return area
}

// lineArea computes the contribution of a line segment to the signed area.
func lineArea(p0, p1 Point) float64 {
	return 0.5 * (p0.X*p1.Y - p1.X*p0.Y)
}

// cubicArea computes the contribution of a cubic Bezier to the signed area.
func cubicArea(p0, p1, p2, p3 Point) float64 {
	return (p0.X*(6*p1.Y+3*p2.Y+p3.Y) +
		3*p1.X*(-2*p0.Y+p2.Y+p3.Y) +
		3*p2.X*(-p0.Y-p1.Y+2*p3.Y) +
		p3.X*(-p0.Y-3*p1.Y-6*p2.Y)) / 20
}

// Contains tests if a point is inside the path using the non-zero fill rule.
func (p *Path) Contains(pt Point) bool {
	return p.Winding(pt) != 0
}

// Winding returns the winding number of a point relative to the path,
// computed on the flattened path with a horizontal ray to the right.
func (p *Path) Winding(pt Point) int {
	winding := 0
	for _, poly := range p.Polygons(0.05) {
		n := len(poly)
		for i := 0; i < n; i++ {
			winding += lineWinding(poly[i], poly[(i+1)%n], pt)
		}
	}
	return winding
}

// lineWinding computes the winding contribution of a line segment.
func lineWinding(p0, p1, pt Point) int {
	if p0.Y <= pt.Y && p1.Y > pt.Y {
		if isLeft(p0, p1, pt) > 0 {
			return 1
		}
	} else if p0.Y > pt.Y && p1.Y <= pt.Y {
		if isLeft(p0, p1, pt) < 0 {
			return -1
		}
	}
	return 0
}

// isLeft returns positive if pt is left of line p0-p1, negative if right, 0 if on.
func isLeft(p0, p1, pt Point) float64 {
	return p1.Sub(p0).Cross(pt.Sub(p0))
}

// BoundingBox returns the tight axis-aligned bounding box of the path.
// Uses curve extrema for accuracy.
func (p *Path) BoundingBox() Rect {
	if p.IsEmpty() {
		return Rect{}
	}

	bbox := Rect{
		Min: Point{X: math.MaxFloat64, Y: math.MaxFloat64},
		Max: Point{X: -math.MaxFloat64, Y: -math.MaxFloat64},
	}

	var current Point
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			bbox = bbox.Union(NewRect(e.Point, e.Point))
			current = e.Point
		case LineTo:
			bbox = bbox.Union(NewRect(e.Point, e.Point))
			current = e.Point
		case CubicTo:
			bbox = bbox.Union(NewCubicBez(current, e.Control1, e.Control2, e.Point).BoundingBox())
			current = e.Point
		}
	}

	return bbox
}

// Polygons flattens the path into one closed polygon per subpath.
// tolerance is the maximum distance from the curve; the closing
// point is not repeated.
func (p *Path) Polygons(tolerance float64) [][]Point {
	if tolerance <= 0 {
		tolerance = 0.1
	}
	toleranceSq := tolerance * tolerance

	var polys [][]Point
	var poly []Point
	var current Point

	flush := func() {
		if len(poly) > 1 && poly[len(poly)-1] == poly[0] {
			poly = poly[:len(poly)-1]
		}
		if len(poly) > 0 {
			polys = append(polys, poly)
		}
		poly = nil
	}

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			flush()
			poly = append(poly, e.Point)
			current = e.Point
		case LineTo:
			poly = append(poly, e.Point)
			current = e.Point
		case CubicTo:
			flattenCubic(NewCubicBez(current, e.Control1, e.Control2, e.Point), toleranceSq, func(pt Point) {
				poly = append(poly, pt)
			})
			current = e.Point
		case Close:
			flush()
		}
	}
	flush()

	return polys
}

// flattenCubic recursively subdivides the cubic until it is flat enough.
func flattenCubic(c CubicBez, toleranceSq float64, fn func(pt Point)) {
	if c.flatness() <= toleranceSq*16 {
		fn(c.P3)
		return
	}
	c1, c2 := c.Subdivide()
	flattenCubic(c1, toleranceSq, fn)
	flattenCubic(c2, toleranceSq, fn)
}

// Reversed returns a new path with reversed direction.
// Each subpath is reversed independently.
func (p *Path) Reversed() *Path {
	result := NewPath()

	var sub []PathElement
	var start Point
	emit := func(closed bool) {
		if len(sub) == 0 {
			return
		}
		reverseSubpath(start, sub, closed, result)
		sub = nil
	}

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			emit(false)
			start = e.Point
		case Close:
			emit(true)
		default:
			sub = append(sub, elem)
		}
	}
	emit(false)

	return result
}

// reverseSubpath appends the reversed form of one subpath to result.
func reverseSubpath(start Point, elems []PathElement, closed bool, result *Path) {
	points := make([]Point, len(elems)+1)
	points[0] = start
	for i, elem := range elems {
		switch e := elem.(type) {
		case LineTo:
			points[i+1] = e.Point
		case CubicTo:
			points[i+1] = e.Point
		}
	}

	result.moveTo(points[len(points)-1])
	for i := len(elems) - 1; i >= 0; i-- {
		prev := points[i]
		switch e := elems[i].(type) {
		case LineTo:
			result.lineTo(prev)
		case CubicTo:
			result.cubicTo(e.Control2, e.Control1, prev)
		}
	}
	if closed {
		result.Close()
	}
}
