package decor

import "math"

// Shadow is one outward (drop/glow) or inward (inset) shadow.
//
// SpreadRadius grows the shadow away from the shape surface: an outward
// shadow's silhouette gets larger, an inward shadow's lit interior gets
// smaller.
type Shadow struct {
	Color        RGBA
	Offset       Point
	BlurRadius   float64
	SpreadRadius float64
	Inner        bool
}

// Normalized returns the shadow with a non-negative, finite blur radius.
func (sh Shadow) Normalized() Shadow {
	if !(sh.BlurRadius > 0) || math.IsInf(sh.BlurRadius, 0) {
		sh.BlurRadius = 0
	}
	return sh
}

// visible reports whether the shadow can paint anything.
func (sh Shadow) visible() bool {
	return !sh.Color.IsTransparent()
}

// ShadowCompositor paints shadows relative to an outline.
type ShadowCompositor struct{}

// Outer paints every non-inner shadow in sequence order. Each silhouette
// is the outline rebuilt on the rectangle moved by Offset and grown by
// SpreadRadius, so curved corners stay exact instead of being offset as a
// path. A zero blur produces a crisp FillPath.
func (ShadowCompositor) Outer(s Surface, o *Outline, shadows []Shadow) {
	for _, sh := range shadows {
		if sh.Inner || !sh.visible() {
			continue
		}
		sh = normalizeShadow(sh)

		silhouette := o.Adjusted(sh.Offset, sh.SpreadRadius)
		if silhouette == nil {
			continue
		}
		paintShadow(s, silhouette.Path, sh)
	}
}

// Inner paints every inner shadow in sequence order. The painted region
// is a rectangle safely larger than the shape minus the outline moved by
// Offset and shrunk by SpreadRadius, clipped to the real outline.
func (ShadowCompositor) Inner(s Surface, o *Outline, shadows []Shadow) {
	for _, sh := range shadows {
		if !sh.Inner || !sh.visible() {
			continue
		}
		sh = normalizeShadow(sh)

		s.PushClip(o.Path)
		paintShadow(s, innerShadowRegion(o, sh), sh)
		s.PopClip()
	}
}

// innerShadowRegion builds the outer rectangle with the shifted, shrunk
// outline cut out of it. The hole is reversed so the non-zero rule
// leaves it unpainted; when spread consumes the whole shape there is no
// hole and the full rectangle is painted.
func innerShadowRegion(o *Outline, sh Shadow) *Path {
	margin := 2*sh.BlurRadius + math.Abs(sh.SpreadRadius) + math.Max(math.Abs(sh.Offset.X), math.Abs(sh.Offset.Y)) + 1
	outer := o.Bounds.Inflate(margin)

	region := NewPath()
	region.Rectangle(outer.Min.X, outer.Min.Y, outer.Width(), outer.Height())
	if hole := o.Adjusted(sh.Offset, -sh.SpreadRadius); hole != nil {
		region.Append(hole.Path.Reversed())
	}
	return region
}

func paintShadow(s Surface, path *Path, sh Shadow) {
	if sh.BlurRadius == 0 {
		s.FillPath(path, Solid(sh.Color))
		return
	}
	s.BlurredFill(path, sh.Color, sh.BlurRadius)
}

func normalizeShadow(sh Shadow) Shadow {
	n := sh.Normalized()
	if n.BlurRadius != sh.BlurRadius {
		Logger().Debug("decor: normalized shadow blur radius", "blur", sh.BlurRadius)
	}
	return n
}

// ShadowBounds returns the area the outline and its outward shadows can
// touch, including the blur falloff. Hosts use it to size dirty regions.
func ShadowBounds(o *Outline, shadows []Shadow) Rect {
	bounds := o.Bounds
	for _, sh := range shadows {
		if sh.Inner {
			continue
		}
		sh = sh.Normalized()
		r := o.Rect.Translate(sh.Offset).Inflate(sh.SpreadRadius)
		if r.Empty() {
			continue
		}
		bounds = bounds.Union(r.Inflate(sh.BlurRadius))
	}
	return bounds
}
