package decor

import (
	"fmt"
	"math"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// ExtendMode defines how gradients extend beyond their defined bounds.
type ExtendMode int

const (
	// ExtendPad extends edge colors beyond bounds (default behavior).
	ExtendPad ExtendMode = iota
	// ExtendRepeat repeats the gradient pattern.
	ExtendRepeat
	// ExtendReflect mirrors the gradient pattern.
	ExtendReflect
)

var extendModeNames = [...]string{
	ExtendPad:     "pad",
	ExtendRepeat:  "repeat",
	ExtendReflect: "reflect",
}

// String returns the lowercase name of the mode.
func (m ExtendMode) String() string {
	if m >= 0 && int(m) < len(extendModeNames) {
		return extendModeNames[m]
	}
	return fmt.Sprintf("ExtendMode(%d)", int(m))
}

// ParseExtendMode parses a mode name as produced by String.
func ParseExtendMode(name string) (ExtendMode, error) {
	if i, ok := lookupName(extendModeNames[:], name); ok {
		return ExtendMode(i), nil
	}
	return 0, fmt.Errorf("decor: unknown extend mode %q", name)
}

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  RGBA    // Color at this position
}

// sortStops returns a sorted copy of the stops.
func sortStops(stops []ColorStop) []ColorStop {
	sorted := make([]ColorStop, len(stops))
	copy(sorted, stops)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})
	return sorted
}

// applyExtendMode applies the extend mode to normalize t to [0, 1].
func applyExtendMode(t float64, mode ExtendMode) float64 {
	switch mode {
	case ExtendRepeat:
		t -= math.Floor(t)
	case ExtendReflect:
		t = math.Abs(t)
		period := math.Floor(t)
		t -= period
		if int(period)%2 == 1 {
			t = 1 - t
		}
	default: // ExtendPad
		t = clamp01(t)
	}
	return t
}

// interpolateColorLinear blends two colors in linear RGB, which avoids the
// dark band a straight sRGB blend produces between saturated stops.
// Alpha is blended linearly.
func interpolateColorLinear(c1, c2 RGBA, t float64) RGBA {
	a := colorful.Color{R: c1.R, G: c1.G, B: c1.B}
	b := colorful.Color{R: c2.R, G: c2.G, B: c2.B}
	m := a.BlendLinearRgb(b, t).Clamped()
	return RGBA{R: m.R, G: m.G, B: m.B, A: clamp01(lerp(c1.A, c2.A, t))}
}

// colorAtOffset returns the interpolated color at a given offset.
// stops must be sorted by offset.
func colorAtOffset(stops []ColorStop, t float64, mode ExtendMode) RGBA {
	switch len(stops) {
	case 0:
		return Transparent
	case 1:
		return stops[0].Color
	}

	t = applyExtendMode(t, mode)

	idx := sort.Search(len(stops), func(i int) bool {
		return stops[i].Offset >= t
	})
	if idx == 0 {
		return stops[0].Color
	}
	if idx >= len(stops) {
		return stops[len(stops)-1].Color
	}

	stop1 := stops[idx-1]
	stop2 := stops[idx]
	if stop2.Offset == stop1.Offset {
		return stop1.Color
	}

	localT := (t - stop1.Offset) / (stop2.Offset - stop1.Offset)
	return interpolateColorLinear(stop1.Color, stop2.Color, localT)
}

// firstStopColor returns the first stop's color or Transparent if empty.
func firstStopColor(stops []ColorStop) RGBA {
	if len(stops) == 0 {
		return Transparent
	}
	return stops[0].Color
}

// LinearGradientBrush is a linear color transition between two points.
type LinearGradientBrush struct {
	Start  Point       // Start point of the gradient
	End    Point       // End point of the gradient
	Stops  []ColorStop // Color stops, sorted by offset
	Extend ExtendMode  // How gradient extends beyond bounds
}

// brushMarker implements the Brush interface marker.
func (LinearGradientBrush) brushMarker() {}

// ColorAt returns the color at the given point.
func (g *LinearGradientBrush) ColorAt(x, y float64) RGBA {
	dx := g.End.X - g.Start.X
	dy := g.End.Y - g.Start.Y
	lengthSq := dx*dx + dy*dy
	if lengthSq == 0 {
		return firstStopColor(g.Stops)
	}

	// Project point onto the gradient line
	// t = dot(P - Start, End - Start) / |End - Start|^2
	t := ((x-g.Start.X)*dx + (y-g.Start.Y)*dy) / lengthSq
	return colorAtOffset(g.Stops, t, g.Extend)
}

// RadialGradientBrush is a radial color transition. Colors radiate from a
// focal point to the circle defined by Center and EndRadius.
type RadialGradientBrush struct {
	Center      Point       // Center of the gradient circle
	Focus       Point       // Focal point (can differ from center)
	StartRadius float64     // Inner radius where gradient begins (t=0)
	EndRadius   float64     // Outer radius where gradient ends (t=1)
	Stops       []ColorStop // Color stops, sorted by offset
	Extend      ExtendMode  // How gradient extends beyond bounds
}

// brushMarker implements the Brush interface marker.
func (RadialGradientBrush) brushMarker() {}

// ColorAt returns the color at the given point.
func (g *RadialGradientBrush) ColorAt(x, y float64) RGBA {
	if g.EndRadius-g.StartRadius == 0 {
		return firstStopColor(g.Stops)
	}
	if g.Focus == g.Center {
		d := Pt(x, y).Distance(g.Center)
		return colorAtOffset(g.Stops, (d-g.StartRadius)/(g.EndRadius-g.StartRadius), g.Extend)
	}
	return colorAtOffset(g.Stops, g.focalT(x, y), g.Extend)
}

// focalT solves the ray-circle intersection from the focus through the
// point and returns how far along that ray the point sits.
func (g *RadialGradientBrush) focalT(x, y float64) float64 {
	dx := x - g.Focus.X
	dy := y - g.Focus.Y
	fx := g.Center.X - g.Focus.X
	fy := g.Center.Y - g.Focus.Y

	// |t*(dx,dy) - (fx,fy)|^2 = EndRadius^2
	a := dx*dx + dy*dy
	b := -2 * (dx*fx + dy*fy)
	c := fx*fx + fy*fy - g.EndRadius*g.EndRadius
	if a == 0 {
		return 0
	}

	disc := b*b - 4*a*c
	if disc < 0 {
		return 1
	}
	sqrtD := math.Sqrt(disc)
	t := math.Max((-b-sqrtD)/(2*a), (-b+sqrtD)/(2*a))
	if t <= 0 {
		return 0
	}
	return 1 / t
}

// SweepGradientBrush is an angular (conic) color transition around a
// center point, sweeping from StartAngle to EndAngle.
type SweepGradientBrush struct {
	Center     Point       // Center of the sweep
	StartAngle float64     // Start angle in radians
	EndAngle   float64     // End angle in radians
	Stops      []ColorStop // Color stops, sorted by offset
	Extend     ExtendMode  // How gradient extends beyond bounds
}

// brushMarker implements the Brush interface marker.
func (SweepGradientBrush) brushMarker() {}

// ColorAt returns the color at the given point.
func (g *SweepGradientBrush) ColorAt(x, y float64) RGBA {
	dx := x - g.Center.X
	dy := y - g.Center.Y
	sweep := g.EndAngle - g.StartAngle
	if (dx == 0 && dy == 0) || sweep == 0 {
		return firstStopColor(g.Stops)
	}

	rel := math.Atan2(dy, dx) - g.StartAngle
	rel = math.Mod(rel, 2*math.Pi)
	if sweep > 0 && rel < 0 {
		rel += 2 * math.Pi
	} else if sweep < 0 && rel > 0 {
		rel -= 2 * math.Pi
	}
	return colorAtOffset(g.Stops, rel/sweep, g.Extend)
}
