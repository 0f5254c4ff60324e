package decor

import "fmt"

// BorderStyle determines how a stroke side is drawn.
type BorderStyle uint8

const (
	// BorderSolid draws a continuous line.
	BorderSolid BorderStyle = iota
	// BorderDashed draws dashes three widths long.
	BorderDashed
	// BorderDotted draws square dots one width long.
	BorderDotted
	// BorderNone draws nothing.
	BorderNone
)

var borderStyleNames = [...]string{
	BorderSolid:  "solid",
	BorderDashed: "dashed",
	BorderDotted: "dotted",
	BorderNone:   "none",
}

// String returns the lowercase name of the style.
func (s BorderStyle) String() string {
	if int(s) < len(borderStyleNames) {
		return borderStyleNames[s]
	}
	return fmt.Sprintf("BorderStyle(%d)", uint8(s))
}

// ParseBorderStyle parses a style name as produced by String.
func ParseBorderStyle(name string) (BorderStyle, error) {
	if i, ok := lookupName(borderStyleNames[:], name); ok {
		return BorderStyle(i), nil
	}
	return 0, fmt.Errorf("decor: unknown border style %q", name)
}

// StrokeAlign places the stroke relative to the outline.
type StrokeAlign uint8

const (
	// StrokeAlignInside keeps the whole stroke within the outline.
	StrokeAlignInside StrokeAlign = iota
	// StrokeAlignCenter centres the stroke on the outline.
	StrokeAlignCenter
	// StrokeAlignOutside keeps the whole stroke outside the outline.
	StrokeAlignOutside
)

var strokeAlignNames = [...]string{
	StrokeAlignInside:  "inside",
	StrokeAlignCenter:  "center",
	StrokeAlignOutside: "outside",
}

// String returns the lowercase name of the alignment.
func (a StrokeAlign) String() string {
	if int(a) < len(strokeAlignNames) {
		return strokeAlignNames[a]
	}
	return fmt.Sprintf("StrokeAlign(%d)", uint8(a))
}

// ParseStrokeAlign parses an alignment name as produced by String.
func ParseStrokeAlign(name string) (StrokeAlign, error) {
	if i, ok := lookupName(strokeAlignNames[:], name); ok {
		return StrokeAlign(i), nil
	}
	return 0, fmt.Errorf("decor: unknown stroke alignment %q", name)
}

// StrokeSide describes the border drawn along the outline.
// The zero value draws nothing because its width is 0.
type StrokeSide struct {
	Width float64
	Color RGBA
	Style BorderStyle
	Align StrokeAlign
}

// visible reports whether the side paints anything.
func (s StrokeSide) visible() bool {
	return s.Width > 0 && s.Style != BorderNone && !s.Color.IsTransparent()
}

// strokeStyle converts the side into surface stroke parameters.
func (s StrokeSide) strokeStyle(miterLimit float64) StrokeStyle {
	st := StrokeStyle{Width: s.Width, Color: s.Color, MiterLimit: miterLimit}
	switch s.Style {
	case BorderDashed:
		st.Dashes = []float64{3 * s.Width, 2 * s.Width}
	case BorderDotted:
		// Round caps add half a width at each end, so a quarter-width dash
		// draws a near-circular dot every two widths.
		st.Dashes = []float64{s.Width / 4, 7 * s.Width / 4}
		st.Cap = LineCapRound
	}
	return st
}

// strokeOutline returns the path the stroke centre line follows so the
// painted band lands inside, across or outside the outline.
func (s StrokeSide) strokeOutline(o *Outline) *Outline {
	var shift float64
	switch s.Align {
	case StrokeAlignInside:
		shift = -s.Width / 2
	case StrokeAlignOutside:
		shift = s.Width / 2
	default:
		return o
	}
	if adj := o.Adjusted(Point{}, shift); adj != nil {
		return adj
	}
	return o
}

// StrokeRenderer paints the border of an outline.
type StrokeRenderer struct {
	MiterLimit float64
}

// Render emits one StrokePath call for a visible side.
func (r StrokeRenderer) Render(s Surface, o *Outline, side StrokeSide) {
	if !side.visible() {
		return
	}
	s.StrokePath(side.strokeOutline(o).Path, side.strokeStyle(r.MiterLimit))
}
