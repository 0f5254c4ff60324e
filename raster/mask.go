package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/anthonynsimon/bild/convolution"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/decor"
)

// fillMask rasterizes path into a coverage mask over bounds. Windings of
// opposite sign cancel, so a reversed inner subpath cuts a hole.
func fillMask(path *decor.Path, bounds image.Rectangle) *image.Alpha {
	mask := image.NewAlpha(bounds)
	if path == nil || path.IsEmpty() {
		return mask
	}

	z := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	z.DrawOp = draw.Src
	open := false
	for _, el := range path.Elements() {
		switch e := el.(type) {
		case decor.MoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(f32(e.Point))
			open = true
		case decor.LineTo:
			z.LineTo(f32(e.Point))
		case decor.CubicTo:
			c1x, c1y := f32(e.Control1)
			c2x, c2y := f32(e.Control2)
			x, y := f32(e.Point)
			z.CubeTo(c1x, c1y, c2x, c2y, x, y)
		case decor.Close:
			z.ClosePath()
			open = false
		}
	}
	if open {
		z.ClosePath()
	}
	z.Draw(mask, bounds, image.Opaque, bounds.Min)
	return mask
}

func f32(p decor.Point) (float32, float32) {
	return float32(p.X), float32(p.Y)
}

func fix(p decor.Point) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(p.X * 64), Y: fixed.Int26_6(p.Y * 64)}
}

// strokeMask rasterizes the stroke of path into a coverage mask.
func strokeMask(path *decor.Path, st decor.StrokeStyle, bounds image.Rectangle) *image.Alpha {
	mask := image.NewAlpha(bounds)
	if path == nil || path.IsEmpty() || st.Width <= 0 {
		return mask
	}

	w, h := bounds.Dx(), bounds.Dy()
	scanner := rasterx.NewScannerGV(w, h, mask, bounds)
	dasher := rasterx.NewDasher(w, h, scanner)

	capFn := rasterx.ButtCap
	if st.Cap == decor.LineCapRound {
		capFn = rasterx.RoundCap
	}
	miter := st.MiterLimit
	if miter < 1 {
		miter = decor.DefaultMiterLimit
	}
	dasher.SetStroke(
		fixed.Int26_6(st.Width*64), fixed.Int26_6(miter*64),
		capFn, capFn, rasterx.FlatGap, rasterx.Miter,
		st.Dashes, 0,
	)
	dasher.SetColor(color.Opaque)

	open := false
	for _, el := range path.Elements() {
		switch e := el.(type) {
		case decor.MoveTo:
			if open {
				dasher.Stop(false)
			}
			dasher.Start(fix(e.Point))
			open = true
		case decor.LineTo:
			dasher.Line(fix(e.Point))
		case decor.CubicTo:
			dasher.CubeBezier(fix(e.Control1), fix(e.Control2), fix(e.Point))
		case decor.Close:
			dasher.Stop(true)
			open = false
		}
	}
	if open {
		dasher.Stop(false)
	}
	dasher.Draw()
	return mask
}

// gaussianBlur blurs mask with a separable Gaussian of deviation sigma,
// truncated at three deviations.
func gaussianBlur(mask *image.Alpha, sigma float64) *image.Alpha {
	half := int(math.Ceil(3 * sigma))
	k := convolution.NewKernel(2*half+1, 1)
	for i := range k.Matrix {
		x := float64(i - half)
		k.Matrix[i] = math.Exp(-x * x / (2 * sigma * sigma))
	}
	row := k.Normalized()

	opts := &convolution.Options{}
	out := convolution.Convolve(mask, row, opts)
	out = convolution.Convolve(out, row.Transposed(), opts)
	return intersect(out, nil, mask.Rect)
}

// intersect returns a ∩ b as a new mask. A nil b leaves a unchanged.
func intersect(a image.Image, b *image.Alpha, bounds image.Rectangle) *image.Alpha {
	out := image.NewAlpha(bounds)
	if b == nil {
		draw.Draw(out, bounds, a, bounds.Min, draw.Src)
		return out
	}
	draw.DrawMask(out, bounds, a, bounds.Min, b, bounds.Min, draw.Src)
	return out
}

// fade scales every coverage value in mask by opacity.
func fade(mask *image.Alpha, opacity float64) *image.Alpha {
	if opacity >= 1 {
		return mask
	}
	a := uint8(math.Round(math.Max(opacity, 0) * 255))
	out := image.NewAlpha(mask.Rect)
	draw.DrawMask(out, mask.Rect, mask, mask.Rect.Min, image.NewUniform(color.Alpha{A: a}), image.Point{}, draw.Src)
	return out
}

// full returns a mask covering all of bounds.
func full(bounds image.Rectangle) *image.Alpha {
	mask := image.NewAlpha(bounds)
	draw.Draw(mask, bounds, image.Opaque, image.Point{}, draw.Src)
	return mask
}
