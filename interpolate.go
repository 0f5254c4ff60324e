package decor

import (
	"math"
	"sort"
)

// styleSwitch is the parameter at which discrete fields jump from the
// first spec to the second.
const styleSwitch = 0.5

// Interpolate returns the spec at parameter t between a and b.
//
// t = 0 returns a copy of a and t = 1 a copy of b. Numeric fields (radii,
// stroke width, shadow offsets, blur and spread, color channels, gradient
// geometry and stop positions) blend linearly and keep blending outside
// [0, 1], so eased parameters that overshoot stay continuous; lengths that
// would go negative are normalized to 0 and colors are clamped.
//
// Discrete fields switch at t = 0.5: corner style, stroke style and
// alignment, gradient kind, image fit and source. A sharp corner has no
// style of its own, so it takes the other endpoint's style and its radius
// grows from zero.
//
// Shadow lists of different lengths are padded with transparent copies of
// the longer list's shadows. Lists that pair an inner with an outer
// shadow at the same position cannot be matched and switch as a whole
// at t = 0.5.
func Interpolate(a, b ShapeSpec, t float64) ShapeSpec {
	switch {
	case t == 0 || math.IsNaN(t):
		return a.Clone()
	case t == 1:
		return b.Clone()
	}

	return ShapeSpec{
		Corners: lerpCorners(a.Corners, b.Corners, t),
		Stroke:  lerpStroke(a.Stroke, b.Stroke, t),
		Fill:    lerpFill(a.Fill, b.Fill, t),
		Shadows: lerpShadows(a.Shadows, b.Shadows, t),
		Image:   lerpImage(a.Image, b.Image, t),
	}
}

func lerpCorner(a, b Corner, t float64) Corner {
	a, b = a.Normalized(), b.Normalized()
	switch {
	case a.Style == CornerSharp && b.Style != CornerSharp:
		a.Style = b.Style
	case b.Style == CornerSharp && a.Style != CornerSharp:
		b.Style = a.Style
	}

	c := Corner{Style: a.Style, Radius: lerp(a.Radius, b.Radius, t)}
	if t >= styleSwitch {
		c.Style = b.Style
	}
	return c.Normalized()
}

func lerpCorners(a, b Corners, t float64) Corners {
	return Corners{
		TopLeft:     lerpCorner(a.TopLeft, b.TopLeft, t),
		TopRight:    lerpCorner(a.TopRight, b.TopRight, t),
		BottomLeft:  lerpCorner(a.BottomLeft, b.BottomLeft, t),
		BottomRight: lerpCorner(a.BottomRight, b.BottomRight, t),
	}
}

func lerpStroke(a, b StrokeSide, t float64) StrokeSide {
	switch {
	case !a.visible() && !b.visible():
		return StrokeSide{}
	case !a.visible():
		a = StrokeSide{Color: b.Color.WithAlpha(0), Style: b.Style, Align: b.Align}
	case !b.visible():
		b = StrokeSide{Color: a.Color.WithAlpha(0), Style: a.Style, Align: a.Align}
	}

	s := StrokeSide{
		Width: math.Max(0, lerp(a.Width, b.Width, t)),
		Color: a.Color.Lerp(b.Color, t),
		Style: a.Style,
		Align: a.Align,
	}
	if t >= styleSwitch {
		s.Style, s.Align = b.Style, b.Align
	}
	return s
}

// transparentFill returns f with every color made fully transparent. It
// stands in for FillNone so fills fade in and out instead of popping.
func transparentFill(f Fill) Fill {
	switch f.Kind {
	case FillSolid:
		return SolidFill(f.Color.WithAlpha(0))
	case FillGradient:
		g := f.Gradient.clone()
		for i := range g.Stops {
			g.Stops[i].Color = g.Stops[i].Color.WithAlpha(0)
		}
		return GradientFill(g)
	default:
		return f
	}
}

// zeroSpan returns a gradient with g's geometry whose every stop is c,
// so a solid color can blend stop by stop into g.
func zeroSpan(c RGBA, g Gradient) Gradient {
	z := g.clone()
	z.Stops = []ColorStop{{Offset: 0, Color: c}, {Offset: 1, Color: c}}
	return z
}

func lerpFill(a, b Fill, t float64) Fill {
	switch {
	case a.Kind == FillNone && b.Kind == FillNone:
		return Fill{}
	case a.Kind == FillNone:
		a = transparentFill(b)
	case b.Kind == FillNone:
		b = transparentFill(a)
	}

	if a.Kind == FillSolid && b.Kind == FillSolid {
		return SolidFill(a.Color.Lerp(b.Color, t))
	}

	ga, gb := a.Gradient, b.Gradient
	if a.Kind == FillSolid {
		ga = zeroSpan(a.Color, gb)
	}
	if b.Kind == FillSolid {
		gb = zeroSpan(b.Color, ga)
	}
	return GradientFill(lerpGradient(ga, gb, t))
}

func lerpGradient(a, b Gradient, t float64) Gradient {
	var g Gradient
	if a.Kind == b.Kind {
		g = Gradient{
			Kind:       a.Kind,
			Extend:     a.Extend,
			Begin:      a.Begin.Lerp(b.Begin, t),
			End:        a.End.Lerp(b.End, t),
			Center:     a.Center.Lerp(b.Center, t),
			Radius:     math.Max(0, lerp(a.Radius, b.Radius, t)),
			StartAngle: lerp(a.StartAngle, b.StartAngle, t),
			EndAngle:   lerp(a.EndAngle, b.EndAngle, t),
		}
		if g.Kind == GradientRadial && (a.Focal != nil || b.Focal != nil) {
			f := a.focal().Lerp(b.focal(), t)
			g.Focal = &f
		}
		if t >= styleSwitch {
			g.Extend = b.Extend
		}
	} else {
		g = a.clone()
		if t >= styleSwitch {
			g = b.clone()
		}
	}
	g.Stops = lerpStops(a.Stops, b.Stops, t)
	return g
}

// lerpStops blends two stop lists. Lists of equal length blend stop by
// stop, offsets included. Otherwise both gradients are sampled at the
// union of their offsets and the samples are blended.
func lerpStops(a, b []ColorStop, t float64) []ColorStop {
	sa, sb := sortStops(a), sortStops(b)
	if len(sa) == len(sb) {
		out := make([]ColorStop, len(sa))
		for i := range sa {
			out[i] = ColorStop{
				Offset: lerp(sa[i].Offset, sb[i].Offset, t),
				Color:  sa[i].Color.Lerp(sb[i].Color, t),
			}
		}
		return out
	}

	offsets := make([]float64, 0, len(sa)+len(sb))
	for _, s := range sa {
		offsets = append(offsets, s.Offset)
	}
	for _, s := range sb {
		offsets = append(offsets, s.Offset)
	}
	sort.Float64s(offsets)

	out := make([]ColorStop, 0, len(offsets))
	for i, off := range offsets {
		if i > 0 && off == offsets[i-1] {
			continue
		}
		ca := colorAtOffset(sa, off, ExtendPad)
		cb := colorAtOffset(sb, off, ExtendPad)
		out = append(out, ColorStop{Offset: off, Color: ca.Lerp(cb, t)})
	}
	return out
}

func lerpShadow(a, b Shadow, t float64) Shadow {
	return Shadow{
		Color:        a.Color.Lerp(b.Color, t),
		Offset:       a.Offset.Lerp(b.Offset, t),
		BlurRadius:   math.Max(0, lerp(a.BlurRadius, b.BlurRadius, t)),
		SpreadRadius: lerp(a.SpreadRadius, b.SpreadRadius, t),
		Inner:        a.Inner,
	}
}

// shadowsMatch reports whether the two lists can be paired by position.
func shadowsMatch(a, b []Shadow) bool {
	for i := 0; i < min(len(a), len(b)); i++ {
		if a[i].Inner != b[i].Inner {
			return false
		}
	}
	return true
}

func lerpShadows(a, b []Shadow, t float64) []Shadow {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	if !shadowsMatch(a, b) {
		Logger().Debug("decor: shadow lists cannot be paired, switching at midpoint",
			"from", len(a), "to", len(b))
		if t >= styleSwitch {
			return append([]Shadow(nil), b...)
		}
		return append([]Shadow(nil), a...)
	}

	out := make([]Shadow, max(len(a), len(b)))
	for i := range out {
		var sa, sb Shadow
		switch {
		case i >= len(a):
			sb = b[i]
			sa = sb
			sa.Color = sa.Color.WithAlpha(0)
		case i >= len(b):
			sa = a[i]
			sb = sa
			sb.Color = sb.Color.WithAlpha(0)
		default:
			sa, sb = a[i], b[i]
		}
		out[i] = lerpShadow(sa, sb, t)
	}
	return out
}

func lerpImage(a, b *DecorationImage, t float64) *DecorationImage {
	switch {
	case a == nil && b == nil:
		return nil
	case a == nil:
		img := *b
		img.Opacity = clamp01(lerp(0, b.Opacity, t))
		return &img
	case b == nil:
		img := *a
		img.Opacity = clamp01(lerp(a.Opacity, 0, t))
		return &img
	}

	img := *a
	if !SameImage(a.Source, b.Source) {
		if t >= styleSwitch {
			img = *b
		}
		return &img
	}
	img.Opacity = clamp01(lerp(a.Opacity, b.Opacity, t))
	if t >= styleSwitch {
		img.Fit = b.Fit
	}
	return &img
}
