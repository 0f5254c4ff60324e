package decor

import "math"

const (
	// kappa places the handles of a quarter-circle cubic.
	kappa = 0.5522847498307936 // 4/3 * (sqrt(2) - 1)

	// ContinuousExtent is how far a continuous corner reaches along each
	// edge, as a multiple of its radius.
	ContinuousExtent = 1.528

	// edgeEpsilon is the shortest straight segment worth emitting.
	edgeEpsilon = 1e-9
)

// continuousHandle is the handle length of a continuous corner, in radius
// units, chosen so the curve's midpoint coincides with the midpoint of a
// rounded corner of the same radius.
var continuousHandle = (4*ContinuousExtent - 8 + 8/math.Sqrt2) / 3

// Outline is the closed path bounding a shape, before fill, stroke and
// shadows are applied. It is derived per paint and never stored in a spec.
type Outline struct {
	// Path is the closed, clockwise outline.
	Path *Path

	// Rect is the rectangle the outline was built from.
	Rect Rect

	// Bounds is the bounding box of Path.
	Bounds Rect

	// Corners are the normalized corners after radius clamping.
	Corners Corners

	// Clamp is the factor every radius was multiplied by (1 when the
	// requested radii already fit).
	Clamp float64
}

// BuildOutline turns a rectangle and four corner descriptors into a single
// closed outline. Corners are normalized, then clamped with one global
// factor so that no two corner treatments on the same edge overlap.
//
// It fails only with ErrInvalidRect, for non-finite or non-positive
// rectangle dimensions.
func BuildOutline(rect Rect, corners Corners) (*Outline, error) {
	if err := rect.validate(); err != nil {
		return nil, err
	}

	corners = corners.Normalized()
	factor := ClampFactor(rect, corners)
	if factor < 1 {
		corners = corners.scaled(factor)
		Logger().Debug("decor: clamped corner radii", "rect", rect.String(), "factor", factor)
	}

	b := outlineBuilder{path: NewPath()}
	b.build(rect, corners)

	return &Outline{
		Path:    b.path,
		Rect:    rect,
		Bounds:  b.path.BoundingBox(),
		Corners: corners,
		Clamp:   factor,
	}, nil
}

// RoundedRect builds an outline with the same rounded radius on every corner.
func RoundedRect(rect Rect, radius float64) (*Outline, error) {
	return BuildOutline(rect, AllCorners(Rounded(radius)))
}

// ClampFactor returns the single factor, never above 1, that makes the
// corner extents on every edge fit within that edge. For each edge whose
// two corner extents sum past its length the edge factor is
// length/sum; the result is the minimum over the four edges. Corners are
// normalized first.
func ClampFactor(rect Rect, corners Corners) float64 {
	w, h := rect.Width(), rect.Height()
	cs := corners.Normalized()

	factor := 1.0
	for _, e := range [...]struct {
		length float64
		a, b   Corner
	}{
		{w, cs.TopLeft, cs.TopRight},
		{h, cs.TopRight, cs.BottomRight},
		{w, cs.BottomLeft, cs.BottomRight},
		{h, cs.TopLeft, cs.BottomLeft},
	} {
		factor = math.Min(factor, edgeFactor(e.length, e.a, e.b))
	}
	return factor
}

// edgeFactor returns length over the summed extents of a and b, or 1 when
// they fit. The extents are summed relative to the larger radius so radii
// near the float64 limit do not overflow to an infinite sum.
func edgeFactor(length float64, a, b Corner) float64 {
	m := math.Max(a.Radius, b.Radius)
	if m == 0 {
		return 1
	}
	rel := a.Radius/m*a.reach() + b.Radius/m*b.reach()
	if rel*m <= length {
		return 1
	}
	return length / m / rel
}

// Adjusted rebuilds the outline on its rectangle moved by offset and grown
// by spread on every side. Non-zero radii grow with the rectangle; a
// negative spread shrinks both. It returns nil when the adjusted
// rectangle has no area left.
func (o *Outline) Adjusted(offset Point, spread float64) *Outline {
	rect := o.Rect.Translate(offset).Inflate(spread)
	if rect.Empty() {
		return nil
	}
	adj, err := BuildOutline(rect, o.Corners.grow(spread))
	if err != nil {
		return nil
	}
	return adj
}

// outlineBuilder walks the rectangle clockwise emitting edges and corners.
type outlineBuilder struct {
	path *Path
}

// cornerFrame places a corner: v is the rectangle vertex, in is the
// direction of travel along the edge arriving at v, out the direction
// along the edge leaving it.
type cornerFrame struct {
	v, in, out Point
	corner     Corner
}

// at maps vertex-relative coordinates, in radius units, to user space:
// back is the distance behind v along the incoming edge, fwd the distance
// past v along the outgoing edge.
func (f cornerFrame) at(back, fwd float64) Point {
	r := f.corner.Radius
	return f.v.Sub(f.in.Mul(back * r)).Add(f.out.Mul(fwd * r))
}

// start and end are where the corner treatment leaves the straight edges.
func (f cornerFrame) start() Point { return f.v.Sub(f.in.Mul(f.corner.extent())) }
func (f cornerFrame) end() Point   { return f.v.Add(f.out.Mul(f.corner.extent())) }

func (b *outlineBuilder) build(r Rect, cs Corners) {
	x0, y0, x1, y1 := r.Min.X, r.Min.Y, r.Max.X, r.Max.Y
	right, down, left, up := Pt(1, 0), Pt(0, 1), Pt(-1, 0), Pt(0, -1)

	tl := cornerFrame{v: Pt(x0, y0), in: up, out: right, corner: cs.TopLeft}
	frames := [...]cornerFrame{
		{v: Pt(x1, y0), in: right, out: down, corner: cs.TopRight},
		{v: Pt(x1, y1), in: down, out: left, corner: cs.BottomRight},
		{v: Pt(x0, y1), in: left, out: up, corner: cs.BottomLeft},
		tl,
	}

	b.path.moveTo(tl.end())
	for _, f := range frames {
		if s := f.start(); s.Distance(b.path.CurrentPoint()) > edgeEpsilon {
			b.path.lineTo(s)
		}
		b.corner(f)
	}
	b.path.Close()
}

// corner emits the curve for one corner. Every style is dispatched here.
func (b *outlineBuilder) corner(f cornerFrame) {
	if f.corner.Radius <= 0 {
		return
	}

	switch f.corner.Style {
	case CornerRounded:
		b.path.cubicTo(f.at(1-kappa, 0), f.at(0, 1-kappa), f.at(0, 1))

	case CornerChamfer:
		b.path.lineTo(f.at(0, 1))

	case CornerContinuous:
		m, h := ContinuousExtent, continuousHandle
		b.path.cubicTo(f.at(m-h, 0), f.at(0, m-h), f.at(0, m))

	case CornerSquircle:
		// The quadrant runs from (0,1) to (1,0) around the superellipse
		// centre, which sits one radius back and one radius forward of v.
		toCorner := func(p Point) Point { return f.at(1-p.X, 1-p.Y) }
		for _, seg := range squircleQuadrant().segments {
			b.path.cubicTo(toCorner(seg.P1), toCorner(seg.P2), toCorner(seg.P3))
		}

	case CornerSharp:
		// Normalized to radius 0 above; nothing to draw.
	}
}
