package decor

import (
	"fmt"
	"image"
	"math"
)

// BoxFit controls how a decoration image is placed in the outline bounds.
type BoxFit uint8

const (
	// FitFill stretches the image to the bounds.
	FitFill BoxFit = iota
	// FitContain scales the image to fit entirely within the bounds.
	FitContain
	// FitCover scales the image to cover the bounds; the outline clips it.
	FitCover
	// FitNone draws the image at its natural size, centred.
	FitNone
)

var boxFitNames = [...]string{
	FitFill:    "fill",
	FitContain: "contain",
	FitCover:   "cover",
	FitNone:    "none",
}

// String returns the lowercase name of the fit.
func (f BoxFit) String() string {
	if int(f) < len(boxFitNames) {
		return boxFitNames[f]
	}
	return fmt.Sprintf("BoxFit(%d)", uint8(f))
}

// ParseBoxFit parses a fit name as produced by String.
func ParseBoxFit(name string) (BoxFit, error) {
	if i, ok := lookupName(boxFitNames[:], name); ok {
		return BoxFit(i), nil
	}
	return 0, fmt.Errorf("decor: unknown box fit %q", name)
}

// DecorationImage is an image painted inside the outline, between the
// fill and the inner shadows. The engine only places and clips it.
type DecorationImage struct {
	Source  image.Image
	Fit     BoxFit
	Opacity float64
}

// destination returns where the image lands for the given bounds.
func (di *DecorationImage) destination(bounds Rect) Rect {
	b := di.Source.Bounds()
	iw, ih := float64(b.Dx()), float64(b.Dy())
	if iw == 0 || ih == 0 || di.Fit == FitFill {
		return bounds
	}

	var s float64
	switch di.Fit {
	case FitContain:
		s = math.Min(bounds.Width()/iw, bounds.Height()/ih)
	case FitCover:
		s = math.Max(bounds.Width()/iw, bounds.Height()/ih)
	default:
		s = 1
	}
	size := Pt(iw*s, ih*s)
	c := bounds.Center()
	return Rect{Min: c.Sub(size.Mul(0.5)), Max: c.Add(size.Mul(0.5))}
}

// ImageRenderer paints the optional decoration image.
type ImageRenderer struct{}

// Render emits one DrawImage call clipped to the outline.
func (ImageRenderer) Render(s Surface, o *Outline, di *DecorationImage) {
	if di == nil || di.Source == nil || di.Opacity <= 0 {
		return
	}
	s.DrawImage(di.Source, di.destination(o.Bounds), o.Path, clamp01(di.Opacity))
}
