package decor

import (
	"fmt"
	"math"
)

// FillKind tags the variant held by a Fill.
type FillKind uint8

const (
	// FillNone paints nothing.
	FillNone FillKind = iota
	// FillSolid paints a flat color.
	FillSolid
	// FillGradient paints a gradient resolved against the outline bounds.
	FillGradient
)

// String returns the lowercase name of the fill kind.
func (k FillKind) String() string {
	switch k {
	case FillNone:
		return "none"
	case FillSolid:
		return "solid"
	case FillGradient:
		return "gradient"
	default:
		return "unknown"
	}
}

// GradientKind selects the gradient geometry.
type GradientKind uint8

const (
	// GradientLinear runs from Begin to End.
	GradientLinear GradientKind = iota
	// GradientRadial radiates from Focal to the circle around Center.
	GradientRadial
	// GradientSweep sweeps around Center from StartAngle to EndAngle.
	GradientSweep
)

var gradientKindNames = [...]string{
	GradientLinear: "linear",
	GradientRadial: "radial",
	GradientSweep:  "sweep",
}

// String returns the lowercase name of the gradient kind.
func (k GradientKind) String() string {
	if int(k) < len(gradientKindNames) {
		return gradientKindNames[k]
	}
	return "unknown"
}

// ParseGradientKind parses a kind name as produced by String.
func ParseGradientKind(name string) (GradientKind, error) {
	if i, ok := lookupName(gradientKindNames[:], name); ok {
		return GradientKind(i), nil
	}
	return 0, fmt.Errorf("decor: unknown gradient kind %q", name)
}

// Gradient describes a gradient independent of any concrete rectangle.
// Points are fractions of the outline bounds: (0,0) is the top-left
// corner and (1,1) the bottom-right.
type Gradient struct {
	Kind   GradientKind
	Stops  []ColorStop
	Extend ExtendMode

	// Begin and End are the linear gradient endpoints.
	Begin, End Point

	// Center positions radial and sweep gradients.
	Center Point

	// Focal is where a radial gradient starts. Nil means Center.
	Focal *Point

	// Radius is the radial end radius as a fraction of the shorter side
	// of the bounds.
	Radius float64

	// StartAngle and EndAngle bound a sweep gradient, in radians.
	StartAngle, EndAngle float64
}

// LinearGradient returns a linear gradient from begin to end.
func LinearGradient(begin, end Point, stops ...ColorStop) Gradient {
	return Gradient{Kind: GradientLinear, Begin: begin, End: end, Stops: stops}
}

// RadialGradient returns a radial gradient around center.
func RadialGradient(center Point, radius float64, stops ...ColorStop) Gradient {
	return Gradient{Kind: GradientRadial, Center: center, Radius: radius, Stops: stops}
}

// SweepGradient returns a full-turn sweep gradient around center.
func SweepGradient(center Point, stops ...ColorStop) Gradient {
	return Gradient{Kind: GradientSweep, Center: center, StartAngle: 0, EndAngle: 2 * math.Pi, Stops: stops}
}

// Brush resolves the gradient against concrete bounds.
func (g Gradient) Brush(bounds Rect) Brush {
	at := func(p Point) Point {
		return Point{
			X: bounds.Min.X + p.X*bounds.Width(),
			Y: bounds.Min.Y + p.Y*bounds.Height(),
		}
	}
	stops := sortStops(g.Stops)

	switch g.Kind {
	case GradientRadial:
		return &RadialGradientBrush{
			Center:    at(g.Center),
			Focus:     at(g.focal()),
			EndRadius: g.Radius * math.Min(bounds.Width(), bounds.Height()),
			Stops:     stops,
			Extend:    g.Extend,
		}
	case GradientSweep:
		return &SweepGradientBrush{
			Center:     at(g.Center),
			StartAngle: g.StartAngle,
			EndAngle:   g.EndAngle,
			Stops:      stops,
			Extend:     g.Extend,
		}
	default:
		return &LinearGradientBrush{
			Start:  at(g.Begin),
			End:    at(g.End),
			Stops:  stops,
			Extend: g.Extend,
		}
	}
}

// focal returns the effective focal point of a radial gradient.
func (g Gradient) focal() Point {
	if g.Focal == nil {
		return g.Center
	}
	return *g.Focal
}

// clone copies the stops and focal point so the gradient can be
// modified safely.
func (g Gradient) clone() Gradient {
	g.Stops = append([]ColorStop(nil), g.Stops...)
	if g.Focal != nil {
		f := *g.Focal
		g.Focal = &f
	}
	return g
}

// Fill is a tagged variant: none, a solid color, or a gradient.
// The zero value is FillNone.
type Fill struct {
	Kind     FillKind
	Color    RGBA
	Gradient Gradient
}

// NoFill returns the empty fill.
func NoFill() Fill { return Fill{} }

// SolidFill returns a flat color fill.
func SolidFill(c RGBA) Fill { return Fill{Kind: FillSolid, Color: c} }

// GradientFill returns a gradient fill.
func GradientFill(g Gradient) Fill { return Fill{Kind: FillGradient, Gradient: g} }

// Brush resolves the fill against bounds. It returns nil for FillNone.
func (f Fill) Brush(bounds Rect) Brush {
	switch f.Kind {
	case FillSolid:
		return Solid(f.Color)
	case FillGradient:
		return f.Gradient.Brush(bounds)
	default:
		return nil
	}
}

// FillRenderer paints outline interiors.
type FillRenderer struct{}

// Render emits at most one FillPath call: nothing for FillNone, the flat
// color for FillSolid, and for FillGradient a brush whose geometry is
// resolved against the outline bounds rather than the host rectangle.
func (FillRenderer) Render(s Surface, o *Outline, f Fill) {
	brush := f.Brush(o.Bounds)
	if brush == nil {
		return
	}
	s.FillPath(o.Path, brush)
}
