package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/decor"
	"github.com/gogpu/decor/recording"
)

func rectPath(x, y, w, h float64) *decor.Path {
	p := decor.NewPath()
	p.Rectangle(x, y, w, h)
	return p
}

func TestNewImageSurface(t *testing.T) {
	s := NewImageSurface(100, 50)
	assert.Equal(t, 100, s.Width())
	assert.Equal(t, 50, s.Height())

	s = NewImageSurface(0, -3)
	assert.Equal(t, 1, s.Width())
	assert.Equal(t, 1, s.Height())
}

func TestClear(t *testing.T) {
	s := NewImageSurface(10, 10)
	s.Clear(decor.Red)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, s.Image().RGBAAt(5, 5))
}

func TestFillPath(t *testing.T) {
	s := NewImageSurface(40, 40)
	s.FillPath(rectPath(10, 10, 20, 20), decor.Solid(decor.Red))

	img := s.Image()
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, img.RGBAAt(20, 20))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(5, 5))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(35, 20))

	s.FillPath(rectPath(0, 0, 40, 40), nil)
	assert.Equal(t, color.RGBA{}, img.RGBAAt(5, 5), "nil brush paints nothing")
}

func TestFillPathHole(t *testing.T) {
	s := NewImageSurface(40, 40)
	p := rectPath(0, 0, 40, 40)
	p.Append(rectPath(10, 10, 20, 20).Reversed())
	s.FillPath(p, decor.Solid(decor.Black))

	assert.Equal(t, uint8(255), s.Image().RGBAAt(5, 5).A)
	assert.Equal(t, uint8(0), s.Image().RGBAAt(20, 20).A, "reversed subpath cuts a hole")
}

func TestFillPathGradient(t *testing.T) {
	s := NewImageSurface(100, 10)
	g := decor.LinearGradient(decor.Pt(0, 0.5), decor.Pt(1, 0.5),
		decor.ColorStop{Offset: 0, Color: decor.Black},
		decor.ColorStop{Offset: 1, Color: decor.White},
	)
	bounds := decor.XYWH(0, 0, 100, 10)
	s.FillPath(rectPath(0, 0, 100, 10), decor.GradientFill(g).Brush(bounds))

	left, right := s.Image().RGBAAt(10, 5), s.Image().RGBAAt(90, 5)
	assert.Equal(t, uint8(255), left.A)
	assert.Less(t, left.R, right.R)
}

func TestStrokePath(t *testing.T) {
	s := NewImageSurface(40, 40)
	s.StrokePath(rectPath(10, 10, 20, 20), decor.StrokeStyle{Width: 2, Color: decor.Blue})

	img := s.Image()
	assert.Greater(t, img.RGBAAt(10, 20).A, uint8(100), "edge is stroked")
	assert.Equal(t, uint8(0), img.RGBAAt(20, 20).A, "interior untouched")
	assert.Equal(t, uint8(0), img.RGBAAt(3, 3).A)
}

func TestStrokePathRoundCaps(t *testing.T) {
	line := decor.NewPath()
	line.MoveTo(2, 10)
	line.LineTo(60, 10)

	dash := func(c decor.LineCap) *image.RGBA {
		s := NewImageSurface(64, 20)
		s.StrokePath(line, decor.StrokeStyle{Width: 4, Color: decor.Blue, Dashes: []float64{1, 7}, Cap: c})
		return s.Image()
	}
	butt, round := dash(decor.LineCapButt), dash(decor.LineCapRound)

	assert.Equal(t, uint8(0), butt.RGBAAt(4, 10).A, "butt dash ends at x=3")
	assert.Greater(t, round.RGBAAt(4, 10).A, uint8(0), "round cap reaches past the dash end")
	assert.Equal(t, uint8(0), round.RGBAAt(6, 10).A, "gap between dots stays clear")
	assert.Greater(t, round.RGBAAt(10, 10).A, uint8(100), "second dot")
}

func TestClip(t *testing.T) {
	s := NewImageSurface(30, 30)
	s.PushClip(rectPath(0, 0, 10, 10))
	s.FillPath(rectPath(0, 0, 20, 20), decor.Solid(decor.Red))

	s.PushClip(rectPath(5, 5, 20, 20))
	s.FillPath(rectPath(0, 0, 30, 30), decor.Solid(decor.Blue))
	s.PopClip()
	s.PopClip()
	s.PopClip()

	img := s.Image()
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, img.RGBAAt(2, 2))
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, img.RGBAAt(7, 7), "nested clips intersect")
	assert.Equal(t, color.RGBA{}, img.RGBAAt(15, 15))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(22, 22))
}

func TestDrawImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for i := range src.Pix {
		if i%4 == 1 || i%4 == 3 {
			src.Pix[i] = 255
		}
	}

	s := NewImageSurface(30, 30)
	s.DrawImage(src, decor.XYWH(0, 0, 20, 20), rectPath(0, 0, 10, 10), 1)
	c := s.Image().RGBAAt(5, 5)
	assert.InDelta(t, 255, int(c.G), 2)
	assert.InDelta(t, 255, int(c.A), 2)
	assert.Equal(t, color.RGBA{}, s.Image().RGBAAt(15, 15), "clipped to the path")

	s = NewImageSurface(30, 30)
	s.DrawImage(src, decor.XYWH(0, 0, 20, 20), nil, 0.5)
	assert.InDelta(t, 128, int(s.Image().RGBAAt(15, 15).A), 2)
	assert.Equal(t, uint8(0), s.Image().RGBAAt(25, 25).A)
}

func TestBlurredFillSpreads(t *testing.T) {
	s := NewImageSurface(60, 60)
	s.BlurredFill(rectPath(20, 20, 20, 20), decor.Black, 8)

	img := s.Image()
	inside := img.RGBAAt(30, 30).A
	edge := img.RGBAAt(18, 30).A
	assert.Greater(t, inside, uint8(200))
	assert.Greater(t, edge, uint8(0), "blur spreads past the path")
	assert.Less(t, edge, inside)
	assert.Equal(t, uint8(0), img.RGBAAt(2, 2).A)
}

func TestBlurredFillReachesBlurRadius(t *testing.T) {
	// A band much wider than the blur behaves like a half-plane, so the
	// coverage d pixels past its edge follows the Gaussian tail with
	// deviation radius/2.
	s := NewImageSurface(200, 40)
	s.BlurredFill(rectPath(50, 0, 100, 40), decor.Black, 12)

	img := s.Image()
	alphaAt := func(d int) uint8 { return img.RGBAAt(150+d, 20).A }
	assert.InDelta(t, 128, int(alphaAt(0)), 20, "edge sits near half coverage")
	assert.Greater(t, alphaAt(6), uint8(25), "one deviation past the edge")
	assert.Greater(t, alphaAt(9), uint8(8), "one and a half deviations past the edge")
	assert.Greater(t, alphaAt(11), uint8(0), "still visible just inside the blur radius")
	assert.Equal(t, uint8(0), alphaAt(30), "nothing past three deviations")
}

func TestInnerShadowStaysInside(t *testing.T) {
	s := NewImageSurface(60, 60)
	err := decor.Paint(s, decor.Request{
		Rect: decor.XYWH(10, 10, 40, 40),
		Spec: decor.ShapeSpec{
			Shadows: []decor.Shadow{{Color: decor.Black, BlurRadius: 4, Inner: true}},
		},
	})
	require.NoError(t, err)

	img := s.Image()
	assert.Greater(t, img.RGBAAt(10, 30).A, uint8(20), "shadow darkens the inner edge")
	assert.Less(t, img.RGBAAt(30, 30).A, uint8(5), "centre stays clear")
	for _, p := range []image.Point{{5, 30}, {55, 30}, {30, 5}, {30, 55}, {2, 2}} {
		assert.Equal(t, uint8(0), img.RGBAAt(p.X, p.Y).A, "inner shadow leaked to %v", p)
	}
}

func TestOuterShadowHiddenUnderFill(t *testing.T) {
	s := NewImageSurface(60, 60)
	err := decor.Paint(s, decor.Request{
		Rect: decor.XYWH(10, 10, 40, 40),
		Spec: decor.ShapeSpec{
			Fill:    decor.SolidFill(decor.White),
			Shadows: []decor.Shadow{{Color: decor.Black, BlurRadius: 6}},
		},
	})
	require.NoError(t, err)

	img := s.Image()
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, img.RGBAAt(30, 30))
	assert.Greater(t, img.RGBAAt(8, 30).A, uint8(0), "shadow visible outside the fill")
}

func TestRegisteredBackend(t *testing.T) {
	require.True(t, recording.IsRegistered(Name))

	rec := recording.NewRecorder(220, 130)
	err := decor.Paint(rec, decor.Request{
		Rect: decor.XYWH(0, 0, 200, 100),
		Spec: decor.ShapeSpec{
			Corners: decor.AllCorners(decor.Rounded(16)),
			Fill:    decor.SolidFill(decor.Blue),
			Shadows: []decor.Shadow{{Color: decor.Black.WithAlpha(0.3), Offset: decor.Pt(0, 6), BlurRadius: 12}},
		},
	})
	require.NoError(t, err)

	b, err := recording.NewBackend(Name)
	require.NoError(t, err)
	require.NoError(t, rec.FinishRecording().Playback(b))

	s := b.(*ImageSurface)
	assert.Equal(t, 220, s.Width())
	assert.Equal(t, 130, s.Height())
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, s.Image().RGBAAt(100, 50))
	assert.Greater(t, s.Image().RGBAAt(100, 108).A, uint8(0), "offset shadow below the shape")
}

func TestEndReportsOpenClips(t *testing.T) {
	s := NewImageSurface(10, 10)
	require.NoError(t, s.Begin(10, 10))
	s.PushClip(rectPath(0, 0, 5, 5))
	assert.Error(t, s.End())
	assert.NoError(t, s.End())
}

func TestEncodePNG(t *testing.T) {
	s := NewImageSurface(12, 8)
	s.Clear(decor.Green)

	var buf bytes.Buffer
	require.NoError(t, s.EncodePNG(&buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 12, 8), img.Bounds())

	snap := s.Snapshot()
	s.Clear(decor.Red)
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, snap.RGBAAt(3, 3), "snapshot is a copy")
}
