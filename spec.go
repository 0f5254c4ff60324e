package decor

import (
	"image"
	"reflect"
)

// ShapeSpec is the declarative description of a decorated shape. It is a
// value type: the engine never mutates or retains one, and two specs are
// compared and interpolated field by field.
type ShapeSpec struct {
	Corners Corners
	Stroke  StrokeSide
	Fill    Fill
	Shadows []Shadow
	Image   *DecorationImage
}

// Clone returns a copy that shares no slices with s. The image source is
// shared; images are treated as immutable.
func (s ShapeSpec) Clone() ShapeSpec {
	out := s
	out.Fill.Gradient = s.Fill.Gradient.clone()
	if s.Shadows != nil {
		out.Shadows = append([]Shadow(nil), s.Shadows...)
	}
	if s.Image != nil {
		img := *s.Image
		out.Image = &img
	}
	return out
}

// Equal reports whether two specs are equal field by field. Images are
// equal when they hold the same source with the same fit and opacity.
func (s ShapeSpec) Equal(o ShapeSpec) bool {
	if s.Corners != o.Corners || s.Stroke != o.Stroke {
		return false
	}
	if !s.Fill.Equal(o.Fill) {
		return false
	}
	if len(s.Shadows) != len(o.Shadows) {
		return false
	}
	for i := range s.Shadows {
		if s.Shadows[i] != o.Shadows[i] {
			return false
		}
	}
	switch {
	case s.Image == nil || o.Image == nil:
		return s.Image == o.Image
	default:
		return s.Image.Fit == o.Image.Fit && s.Image.Opacity == o.Image.Opacity &&
			SameImage(s.Image.Source, o.Image.Source)
	}
}

// SameImage reports whether a and b are the same image: equal dynamic
// types that are comparable and compare equal, which for pointer-backed
// images means the same pointer. Images of non-comparable types never
// match.
func SameImage(a, b image.Image) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}

// Equal reports whether two fills are equal. Fields that do not belong to
// the active variant are ignored.
func (f Fill) Equal(o Fill) bool {
	if f.Kind != o.Kind {
		return false
	}
	switch f.Kind {
	case FillSolid:
		return f.Color == o.Color
	case FillGradient:
		return f.Gradient.Equal(o.Gradient)
	default:
		return true
	}
}

// Equal reports whether two gradients are equal.
func (g Gradient) Equal(o Gradient) bool {
	if g.Kind != o.Kind || g.Extend != o.Extend || len(g.Stops) != len(o.Stops) {
		return false
	}
	for i := range g.Stops {
		if g.Stops[i] != o.Stops[i] {
			return false
		}
	}
	return g.Begin == o.Begin && g.End == o.End &&
		g.Center == o.Center && g.focal() == o.focal() && g.Radius == o.Radius &&
		g.StartAngle == o.StartAngle && g.EndAngle == o.EndAngle
}

// Scaled returns the spec with every length multiplied by scale, for
// painting at a device pixel scale. Gradient geometry is relative to the
// outline and is left untouched.
func (s ShapeSpec) Scaled(scale float64) ShapeSpec {
	out := s.Clone()
	if scale == 1 {
		return out
	}
	out.Corners = out.Corners.scaled(scale)
	out.Stroke.Width *= scale
	for i := range out.Shadows {
		sh := &out.Shadows[i]
		sh.Offset = sh.Offset.Mul(scale)
		sh.BlurRadius *= scale
		sh.SpreadRadius *= scale
	}
	return out
}
