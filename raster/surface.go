package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/anthonynsimon/bild/clone"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/decor"
	"github.com/gogpu/decor/recording"
)

// ImageSurface is a CPU surface that renders to an *image.RGBA.
//
// Every primitive is reduced to a coverage mask, intersected with the
// current clip, and composited source-over.
//
// Example:
//
//	s := raster.NewImageSurface(220, 130)
//	s.Clear(decor.White)
//	_ = decor.Paint(s, req)
//	_ = s.EncodePNG(w)
//
// The surface is not safe for concurrent use.
type ImageSurface struct {
	img   *image.RGBA
	clips []*image.Alpha
}

var (
	_ decor.Surface     = (*ImageSurface)(nil)
	_ recording.Backend = (*ImageSurface)(nil)
)

// NewImageSurface creates a transparent surface with the given dimensions.
// Non-positive dimensions become 1.
func NewImageSurface(width, height int) *ImageSurface {
	s := &ImageSurface{}
	s.reset(width, height)
	return s
}

func (s *ImageSurface) reset(width, height int) {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	s.img = image.NewRGBA(image.Rect(0, 0, width, height))
	s.clips = s.clips[:0]
}

// Width returns the surface width.
func (s *ImageSurface) Width() int { return s.img.Rect.Dx() }

// Height returns the surface height.
func (s *ImageSurface) Height() int { return s.img.Rect.Dy() }

// Image returns the underlying image. This is a direct reference, not a
// copy.
func (s *ImageSurface) Image() *image.RGBA { return s.img }

// Begin implements recording.Backend. It replaces the canvas with a
// transparent one of the given size.
func (s *ImageSurface) Begin(width, height int) error {
	s.reset(width, height)
	return nil
}

// End implements recording.Backend.
func (s *ImageSurface) End() error {
	if n := len(s.clips); n > 0 {
		s.clips = s.clips[:0]
		return fmt.Errorf("raster: %d clips still pushed at end of frame", n)
	}
	return nil
}

// Clear fills the entire surface with c, ignoring the clip.
func (s *ImageSurface) Clear(c decor.RGBA) {
	draw.Draw(s.img, s.img.Rect, image.NewUniform(c.Color()), image.Point{}, draw.Src)
}

// FillPath implements decor.Surface.
func (s *ImageSurface) FillPath(path *decor.Path, brush decor.Brush) {
	if brush == nil {
		return
	}
	s.composite(source(brush, s.img.Rect), fillMask(path, s.img.Rect))
}

// StrokePath implements decor.Surface.
func (s *ImageSurface) StrokePath(path *decor.Path, style decor.StrokeStyle) {
	s.composite(image.NewUniform(style.Color.Color()), strokeMask(path, style, s.img.Rect))
}

// BlurredFill implements decor.Surface. The coverage mask is blurred with
// a Gaussian whose deviation is half the blur radius, the same reading of
// the radius as CSS box-shadow.
func (s *ImageSurface) BlurredFill(path *decor.Path, c decor.RGBA, radius float64) {
	mask := fillMask(path, s.img.Rect)
	if radius > 0 {
		mask = gaussianBlur(mask, radius/2)
	}
	s.composite(image.NewUniform(c.Color()), mask)
}

// PushClip implements decor.Surface.
func (s *ImageSurface) PushClip(path *decor.Path) {
	mask := fillMask(path, s.img.Rect)
	if top := s.clip(); top != nil {
		mask = intersect(mask, top, s.img.Rect)
	}
	s.clips = append(s.clips, mask)
}

// PopClip implements decor.Surface.
func (s *ImageSurface) PopClip() {
	if len(s.clips) == 0 {
		decor.Logger().Warn("raster: PopClip without matching PushClip")
		return
	}
	s.clips = s.clips[:len(s.clips)-1]
}

// DrawImage implements decor.Surface. The image is resampled into dst
// with Catmull-Rom filtering.
func (s *ImageSurface) DrawImage(img image.Image, dst decor.Rect, clip *decor.Path, opacity float64) {
	if img == nil || opacity <= 0 {
		return
	}
	dr := image.Rect(
		int(math.Round(dst.Min.X)), int(math.Round(dst.Min.Y)),
		int(math.Round(dst.Max.X)), int(math.Round(dst.Max.Y)),
	)
	if dr.Empty() {
		return
	}

	layer := image.NewRGBA(s.img.Rect)
	xdraw.CatmullRom.Scale(layer, dr, img, img.Bounds(), xdraw.Src, nil)

	mask := full(s.img.Rect)
	if clip != nil {
		mask = fillMask(clip, s.img.Rect)
	}
	s.composite(layer, fade(mask, opacity))
}

// clip returns the current clip mask, or nil when nothing is pushed.
func (s *ImageSurface) clip() *image.Alpha {
	if len(s.clips) == 0 {
		return nil
	}
	return s.clips[len(s.clips)-1]
}

// composite draws src over the canvas through mask and the clip.
func (s *ImageSurface) composite(src image.Image, mask *image.Alpha) {
	if top := s.clip(); top != nil {
		mask = intersect(mask, top, s.img.Rect)
	}
	draw.DrawMask(s.img, s.img.Rect, src, s.img.Rect.Min, mask, s.img.Rect.Min, draw.Over)
}

// Snapshot returns a copy of the current surface contents.
func (s *ImageSurface) Snapshot() *image.RGBA {
	return clone.AsRGBA(s.img)
}

// EncodePNG writes the surface contents as PNG.
func (s *ImageSurface) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, s.img); err != nil {
		return fmt.Errorf("raster: encode png: %w", err)
	}
	return nil
}

// brushImage samples a brush at pixel centres.
type brushImage struct {
	brush  decor.Brush
	bounds image.Rectangle
}

func (b brushImage) ColorModel() color.Model { return color.NRGBAModel }

func (b brushImage) Bounds() image.Rectangle { return b.bounds }

func (b brushImage) At(x, y int) color.Color {
	return b.brush.ColorAt(float64(x)+0.5, float64(y)+0.5).Color()
}

// source returns an image that paints like brush.
func source(brush decor.Brush, bounds image.Rectangle) image.Image {
	if sb, ok := brush.(decor.SolidBrush); ok {
		return image.NewUniform(sb.Color.Color())
	}
	return brushImage{brush: brush, bounds: bounds}
}
