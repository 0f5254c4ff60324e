package decor

import (
	"fmt"
	"log/slog"
	"math"
)

// Request is one paint of one shape.
type Request struct {
	// Rect is the shape rectangle in logical units.
	Rect Rect

	// Scale is the device pixel scale. Zero means 1.
	Scale float64

	// Spec describes the decoration. Its lengths are in logical units.
	Spec ShapeSpec
}

// Moved returns the request with its rectangle moved by d device pixels.
func (r Request) Moved(d Point) Request {
	scale := r.Scale
	if scale == 0 {
		scale = 1
	}
	r.Rect = r.Rect.Translate(d.Mul(1 / scale))
	return r
}

// Painter drives a Surface through one shape paint in the fixed composite
// order: outward shadows, fill, image, inward shadows, stroke.
//
// A Painter holds no per-paint state and is safe for concurrent use.
type Painter struct {
	logger  *slog.Logger
	fill    FillRenderer
	image   ImageRenderer
	shadows ShadowCompositor
	stroke  StrokeRenderer
}

// NewPainter creates a Painter with the given options.
func NewPainter(opts ...Option) *Painter {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Painter{
		logger: o.logger,
		stroke: StrokeRenderer{MiterLimit: o.miterLimit},
	}
}

var defaultPainter = NewPainter()

// Paint paints req onto s with a default Painter.
func Paint(s Surface, req Request) error {
	return defaultPainter.Paint(s, req)
}

func (p *Painter) log() *slog.Logger {
	if p.logger != nil {
		return p.logger
	}
	return Logger()
}

// Outline returns the device-space outline and spec a paint of req would
// use, without drawing anything. Hosts use it for hit testing and to
// size dirty regions with ShadowBounds.
func (p *Painter) Outline(req Request) (*Outline, ShapeSpec, error) {
	scale, err := pixelScale(req.Scale)
	if err != nil {
		return nil, ShapeSpec{}, err
	}
	spec := req.Spec.Scaled(scale)
	o, err := BuildOutline(req.Rect.Scale(scale), spec.Corners)
	if err != nil {
		return nil, ShapeSpec{}, err
	}
	return o, spec, nil
}

// Bounds returns the device-space area a paint of req can touch: the
// outline, the band its stroke covers, and its outward shadows with their
// blur.
func (p *Painter) Bounds(req Request) (Rect, error) {
	o, spec, err := p.Outline(req)
	if err != nil {
		return Rect{}, err
	}
	bounds := ShadowBounds(o, spec.Shadows)
	if side := spec.Stroke; side.visible() {
		bounds = bounds.Union(side.strokeOutline(o).Bounds.Inflate(side.Width / 2))
	}
	return bounds, nil
}

// Paint paints req onto s. It fails with ErrNilSurface, ErrInvalidScale or
// ErrInvalidRect before issuing any surface call; once drawing starts it
// cannot fail.
func (p *Painter) Paint(s Surface, req Request) error {
	if s == nil {
		return ErrNilSurface
	}
	o, spec, err := p.Outline(req)
	if err != nil {
		p.log().Debug("decor: paint rejected", "rect", req.Rect.String(), "err", err)
		return err
	}

	p.shadows.Outer(s, o, spec.Shadows)
	p.fill.Render(s, o, spec.Fill)
	p.image.Render(s, o, spec.Image)
	p.shadows.Inner(s, o, spec.Shadows)
	p.stroke.Render(s, o, spec.Stroke)
	return nil
}

func pixelScale(scale float64) (float64, error) {
	if scale == 0 {
		return 1, nil
	}
	if !(scale > 0) || math.IsInf(scale, 0) {
		return 0, fmt.Errorf("%w: %g", ErrInvalidScale, scale)
	}
	return scale, nil
}
