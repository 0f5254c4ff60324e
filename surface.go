package decor

import "image"

// LineCap specifies the shape of stroke dash ends.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
)

// StrokeStyle carries everything a surface needs to stroke a path.
type StrokeStyle struct {
	Width float64
	Color RGBA

	// Dashes alternates on and off lengths in user space. Nil strokes a
	// solid line.
	Dashes []float64

	Cap        LineCap
	MiterLimit float64
}

// Surface is the minimal drawing primitive set the engine drives. A host
// rendering surface implements it; the engine only ever calls these
// methods, in the fixed composite order, and never retains the paths it
// passes.
//
// Paths are closed and wound clockwise. A path holding a reversed inner
// subpath describes a region with a hole under the non-zero rule.
type Surface interface {
	// FillPath fills a closed path with a flat color or gradient brush.
	FillPath(path *Path, brush Brush)

	// StrokePath strokes a closed path.
	StrokePath(path *Path, style StrokeStyle)

	// BlurredFill fills a path through a Gaussian-style blur of the given
	// radius. The engine never calls it with a zero radius.
	BlurredFill(path *Path, color RGBA, blurRadius float64)

	// PushClip intersects the clip with path until the matching PopClip.
	PushClip(path *Path)

	// PopClip releases the most recent PushClip.
	PopClip()

	// DrawImage paints img scaled into dst, clipped to clip, with the
	// given opacity.
	DrawImage(img image.Image, dst Rect, clip *Path, opacity float64)
}
