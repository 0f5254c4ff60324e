package decor

import (
	"image"
	"strings"
)

// call is one Surface method invocation seen by captureSurface.
type call struct {
	op      string
	path    *Path
	brush   Brush
	color   RGBA
	blur    float64
	stroke  StrokeStyle
	dst     Rect
	opacity float64
}

// captureSurface records calls in order.
type captureSurface struct {
	calls []call
}

func (c *captureSurface) FillPath(p *Path, b Brush) {
	c.calls = append(c.calls, call{op: "fill", path: p, brush: b})
}

func (c *captureSurface) StrokePath(p *Path, st StrokeStyle) {
	c.calls = append(c.calls, call{op: "stroke", path: p, stroke: st})
}

func (c *captureSurface) BlurredFill(p *Path, col RGBA, blur float64) {
	c.calls = append(c.calls, call{op: "blur", path: p, color: col, blur: blur})
}

func (c *captureSurface) PushClip(p *Path) {
	c.calls = append(c.calls, call{op: "push", path: p})
}

func (c *captureSurface) PopClip() {
	c.calls = append(c.calls, call{op: "pop"})
}

func (c *captureSurface) DrawImage(_ image.Image, dst Rect, clip *Path, opacity float64) {
	c.calls = append(c.calls, call{op: "image", path: clip, dst: dst, opacity: opacity})
}

// ops returns the call names joined by spaces.
func (c *captureSurface) ops() string {
	names := make([]string, len(c.calls))
	for i, cl := range c.calls {
		names[i] = cl.op
	}
	return strings.Join(names, " ")
}

var _ Surface = (*captureSurface)(nil)
