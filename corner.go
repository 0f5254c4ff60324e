package decor

import (
	"fmt"
	"math"
	"strings"
)

// CornerStyle selects the curve family used for one corner of an outline.
type CornerStyle uint8

const (
	// CornerRounded is a circular arc.
	CornerRounded CornerStyle = iota
	// CornerSquircle is a superellipse-like curve that is tangent
	// continuous with both edges and has no flat spot at its midpoint.
	CornerSquircle
	// CornerContinuous is a single cubic that eases curvature into the
	// adjoining edges. It starts further from the vertex than a rounded
	// corner of the same radius.
	CornerContinuous
	// CornerChamfer is a straight cut with both legs equal to the radius.
	CornerChamfer
	// CornerSharp leaves the corner untreated; its radius is always 0.
	CornerSharp
)

var cornerStyleNames = [...]string{
	CornerRounded:    "rounded",
	CornerSquircle:   "squircle",
	CornerContinuous: "continuous",
	CornerChamfer:    "chamfer",
	CornerSharp:      "sharp",
}

// String returns the lowercase name of the style.
func (s CornerStyle) String() string {
	if int(s) < len(cornerStyleNames) {
		return cornerStyleNames[s]
	}
	return fmt.Sprintf("CornerStyle(%d)", uint8(s))
}

// ParseCornerStyle parses a style name as produced by String.
func ParseCornerStyle(name string) (CornerStyle, error) {
	if i, ok := lookupName(cornerStyleNames[:], name); ok {
		return CornerStyle(i), nil
	}
	return 0, fmt.Errorf("decor: unknown corner style %q", name)
}

// lookupName returns the index of name in names, ignoring case and
// surrounding space.
func lookupName(names []string, name string) (int, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range names {
		if n == name {
			return i, true
		}
	}
	return 0, false
}

// MarshalText implements encoding.TextMarshaler.
func (s CornerStyle) MarshalText() ([]byte, error) {
	if int(s) >= len(cornerStyleNames) {
		return nil, fmt.Errorf("decor: invalid corner style %d", uint8(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *CornerStyle) UnmarshalText(text []byte) error {
	v, err := ParseCornerStyle(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Corner describes the treatment of one corner.
type Corner struct {
	Style  CornerStyle
	Radius float64
}

// Rounded returns a rounded corner of radius r.
func Rounded(r float64) Corner { return Corner{Style: CornerRounded, Radius: r} }

// Squircle returns a squircle corner of radius r.
func Squircle(r float64) Corner { return Corner{Style: CornerSquircle, Radius: r} }

// Continuous returns a continuous corner of radius r.
func Continuous(r float64) Corner { return Corner{Style: CornerContinuous, Radius: r} }

// Chamfer returns a chamfered corner with legs of length r.
func Chamfer(r float64) Corner { return Corner{Style: CornerChamfer, Radius: r} }

// Sharp returns an untreated corner.
func Sharp() Corner { return Corner{Style: CornerSharp} }

// Normalized returns the corner with a non-negative radius and a zero
// radius for sharp corners. NaN and infinite radii become 0.
func (c Corner) Normalized() Corner {
	if c.Style == CornerSharp || !(c.Radius > 0) || math.IsInf(c.Radius, 1) {
		c.Radius = 0
	}
	return c
}

// reach is the ratio of the corner's edge extent to its radius.
func (c Corner) reach() float64 {
	if c.Style == CornerContinuous {
		return ContinuousExtent
	}
	return 1
}

// extent returns how far the corner treatment reaches along each edge.
func (c Corner) extent() float64 {
	return c.Radius * c.reach()
}

// grow returns the corner with its radius moved by d, keeping a zero
// radius at zero so sharp-looking corners stay sharp under spread.
func (c Corner) grow(d float64) Corner {
	if c.Radius > 0 {
		c.Radius += d
	}
	return c.Normalized()
}

// Corners holds the four corner descriptors of a shape.
type Corners struct {
	TopLeft     Corner
	TopRight    Corner
	BottomLeft  Corner
	BottomRight Corner
}

// AllCorners returns Corners with the same descriptor in every position.
func AllCorners(c Corner) Corners {
	return Corners{TopLeft: c, TopRight: c, BottomLeft: c, BottomRight: c}
}

// Normalized normalizes each corner.
func (cs Corners) Normalized() Corners {
	return cs.Map(Corner.Normalized)
}

// Map returns the result of applying fn to every corner.
func (cs Corners) Map(fn func(Corner) Corner) Corners {
	return Corners{
		TopLeft:     fn(cs.TopLeft),
		TopRight:    fn(cs.TopRight),
		BottomLeft:  fn(cs.BottomLeft),
		BottomRight: fn(cs.BottomRight),
	}
}

// scaled multiplies every radius by s.
func (cs Corners) scaled(s float64) Corners {
	return cs.Map(func(c Corner) Corner {
		c.Radius *= s
		return c
	})
}

// grow moves every non-zero radius by d.
func (cs Corners) grow(d float64) Corners {
	return cs.Map(func(c Corner) Corner { return c.grow(d) })
}
