package recording

import (
	"bytes"
	"context"
	"errors"
	"image"
	"slices"
	"strings"
	"testing"

	"github.com/gogpu/decor"
)

func scenario() decor.Request {
	return decor.Request{
		Rect: decor.XYWH(0, 0, 200, 100),
		Spec: decor.ShapeSpec{
			Corners: decor.AllCorners(decor.Rounded(16)),
			Fill:    decor.SolidFill(decor.Blue),
			Shadows: []decor.Shadow{{
				Color:      decor.Black.WithAlpha(0.3),
				Offset:     decor.Pt(0, 6),
				BlurRadius: 12,
			}},
		},
	}
}

func TestNewRecorder(t *testing.T) {
	rec := NewRecorder(800, 600)
	if rec.Width() != 800 || rec.Height() != 600 {
		t.Errorf("size = %dx%d, want 800x600", rec.Width(), rec.Height())
	}
	r := rec.FinishRecording()
	if len(r.Commands()) != 0 || r.Resources() == nil {
		t.Errorf("empty recorder produced %d commands", len(r.Commands()))
	}
}

func TestRecorderScenarioShadowBeforeFill(t *testing.T) {
	rec := NewRecorder(220, 130)
	if err := decor.Paint(rec, scenario()); err != nil {
		t.Fatalf("Paint() = %v", err)
	}
	r := rec.FinishRecording()

	want := []CommandType{CmdBlurredFill, CmdFillPath}
	if got := r.Types(); !slices.Equal(got, want) {
		t.Fatalf("Types() = %v, want %v", got, want)
	}

	blur := r.Commands()[0].(BlurredFillCommand)
	if blur.Radius != 12 || blur.Color != decor.Black.WithAlpha(0.3) {
		t.Errorf("shadow command = %+v", blur)
	}
	fill := r.Commands()[1].(FillPathCommand)
	if b, ok := r.Resources().GetBrush(fill.Brush).(decor.SolidBrush); !ok || b.Color != decor.Blue {
		t.Errorf("fill brush = %#v", r.Resources().GetBrush(fill.Brush))
	}
}

func TestRecorderCompositeOrder(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	req := decor.Request{
		Rect: decor.XYWH(0, 0, 100, 100),
		Spec: decor.ShapeSpec{
			Corners: decor.AllCorners(decor.Continuous(10)),
			Stroke:  decor.StrokeSide{Width: 1, Color: decor.Black, Style: decor.BorderDashed},
			Fill:    decor.SolidFill(decor.White),
			Shadows: []decor.Shadow{
				{Color: decor.Black, BlurRadius: 4, Inner: true},
				{Color: decor.Black, BlurRadius: 8},
			},
			Image: &decor.DecorationImage{Source: img, Opacity: 1},
		},
	}

	rec := NewRecorder(120, 120)
	if err := decor.Paint(rec, req); err != nil {
		t.Fatalf("Paint() = %v", err)
	}
	r := rec.FinishRecording()

	want := []CommandType{
		CmdBlurredFill, CmdFillPath, CmdDrawImage,
		CmdPushClip, CmdBlurredFill, CmdPopClip,
		CmdStrokePath,
	}
	if got := r.Types(); !slices.Equal(got, want) {
		t.Fatalf("Types() = %v, want %v", got, want)
	}

	stroke := r.Commands()[6].(StrokePathCommand)
	if !slices.Equal(stroke.Style.Dashes, []float64{3, 2}) {
		t.Errorf("dashes = %v, want [3 2]", stroke.Style.Dashes)
	}
}

func TestRecordingPlayback(t *testing.T) {
	rec := NewRecorder(220, 130)
	if err := decor.Paint(rec, scenario()); err != nil {
		t.Fatal(err)
	}
	r := rec.FinishRecording()

	b := &mockBackend{}
	if err := r.Playback(b); err != nil {
		t.Fatalf("Playback() = %v", err)
	}
	if b.beginCalls != 1 || b.endCalls != 1 {
		t.Errorf("Begin/End called %d/%d times, want 1/1", b.beginCalls, b.endCalls)
	}
	if b.width != 220 || b.height != 130 {
		t.Errorf("Begin size = %dx%d, want 220x130", b.width, b.height)
	}
	if !slices.Equal(b.ops, r.Types()) {
		t.Errorf("replayed %v, recorded %v", b.ops, r.Types())
	}
}

func TestRecorderClipBalance(t *testing.T) {
	rec := NewRecorder(10, 10)
	p := decor.NewPath()
	p.Rectangle(0, 0, 10, 10)

	rec.PopClip()
	rec.PushClip(p)
	rec.PushClip(p)
	rec.PopClip()
	r := rec.FinishRecording()

	want := []CommandType{CmdPushClip, CmdPushClip, CmdPopClip, CmdPopClip}
	if got := r.Types(); !slices.Equal(got, want) {
		t.Errorf("Types() = %v, want %v", got, want)
	}
}

func TestRecorderCopiesDashes(t *testing.T) {
	rec := NewRecorder(10, 10)
	dashes := []float64{4, 2}
	rec.StrokePath(decor.NewPath(), decor.StrokeStyle{Width: 1, Dashes: dashes})
	dashes[0] = 99

	got := rec.FinishRecording().Commands()[0].(StrokePathCommand)
	if got.Style.Dashes[0] != 4 {
		t.Error("recorded dashes alias the caller's slice")
	}
}

func TestRecordingDump(t *testing.T) {
	rec := NewRecorder(100, 100)
	err := decor.Paint(rec, decor.Request{
		Rect: decor.XYWH(0, 0, 50, 50),
		Spec: decor.ShapeSpec{Shadows: []decor.Shadow{{Color: decor.Black, BlurRadius: 2, Inner: true}}},
	})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := rec.FinishRecording().Dump(&buf); err != nil {
		t.Fatalf("Dump() = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("Dump() wrote %d lines:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "PushClip [0,0 50x50]") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.Contains(lines[1], "  BlurredFill") {
		t.Errorf("line 1 = %q, want indented BlurredFill", lines[1])
	}
	if !strings.HasSuffix(lines[2], " PopClip") {
		t.Errorf("line 2 = %q", lines[2])
	}
}

func TestRecordAll(t *testing.T) {
	reqs := []decor.Request{
		scenario(),
		{Rect: decor.XYWH(0, 0, 10, 10), Spec: decor.ShapeSpec{Fill: decor.SolidFill(decor.Red)}},
		{Rect: decor.XYWH(0, 0, 10, 10), Scale: 2, Spec: decor.ShapeSpec{Stroke: decor.StrokeSide{Width: 1, Color: decor.Red}}},
	}

	rs, err := RecordAll(context.Background(), nil, reqs, 2)
	if err != nil {
		t.Fatalf("RecordAll() = %v", err)
	}
	if len(rs) != len(reqs) {
		t.Fatalf("got %d recordings, want %d", len(rs), len(reqs))
	}

	// The scenario canvas holds the shadow blur on both sides: 12 + 200 + 12
	// wide, 6 above the origin down to 100 + 6 + 12.
	if rs[0].Width() != 224 || rs[0].Height() != 124 {
		t.Errorf("scenario canvas = %dx%d, want 224x124", rs[0].Width(), rs[0].Height())
	}
	if got := rs[1].Types(); !slices.Equal(got, []CommandType{CmdFillPath}) {
		t.Errorf("request 1 types = %v", got)
	}
	if rs[2].Width() != 20 {
		t.Errorf("scaled canvas width = %d, want 20", rs[2].Width())
	}
}

func TestRecordAllErrors(t *testing.T) {
	reqs := []decor.Request{
		scenario(),
		{Rect: decor.XYWH(0, 0, -1, 10)},
	}
	_, err := RecordAll(context.Background(), decor.NewPainter(), reqs, 0)
	if !errors.Is(err, decor.ErrInvalidRect) {
		t.Fatalf("RecordAll() error = %v, want ErrInvalidRect", err)
	}
	if !strings.Contains(err.Error(), "request 1") {
		t.Errorf("error %q does not name the request", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := RecordAll(ctx, nil, []decor.Request{scenario()}, 1); !errors.Is(err, context.Canceled) {
		t.Errorf("RecordAll(canceled) error = %v, want context.Canceled", err)
	}
}

func TestCanvasFor(t *testing.T) {
	outsideStroke := decor.Request{
		Rect: decor.XYWH(10, 10, 100, 50),
		Spec: decor.ShapeSpec{Stroke: decor.StrokeSide{Width: 10, Color: decor.Red, Align: decor.StrokeAlignOutside}},
	}
	raisedLeft := decor.Request{
		Rect:  decor.XYWH(0, 0, 10, 10),
		Scale: 2,
		Spec: decor.ShapeSpec{Shadows: []decor.Shadow{
			{Color: decor.Black, Offset: decor.Pt(-4, -2)},
		}},
	}

	tests := []struct {
		name string
		reqs []decor.Request
		want Canvas
	}{
		{"shadow blur", []decor.Request{scenario()}, Canvas{Width: 224, Height: 124, Offset: decor.Pt(12, 6)}},
		{"outside stroke", []decor.Request{outsideStroke}, Canvas{Width: 120, Height: 70}},
		{"negative shadow offset", []decor.Request{raisedLeft}, Canvas{Width: 28, Height: 24, Offset: decor.Pt(8, 4)}},
		{"union", []decor.Request{outsideStroke, raisedLeft}, Canvas{Width: 128, Height: 74, Offset: decor.Pt(8, 4)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CanvasFor(nil, tt.reqs...)
			if err != nil {
				t.Fatalf("CanvasFor() = %v", err)
			}
			if got != tt.want {
				t.Errorf("CanvasFor() = %+v, want %+v", got, tt.want)
			}
		})
	}

	if _, err := CanvasFor(nil, decor.Request{Rect: decor.XYWH(0, 0, 10, 10), Scale: -1}); !errors.Is(err, decor.ErrInvalidScale) {
		t.Errorf("CanvasFor(scale -1) error = %v, want ErrInvalidScale", err)
	}
}

func TestCanvasPlace(t *testing.T) {
	req := decor.Request{
		Rect:  decor.XYWH(0, 0, 10, 10),
		Scale: 2,
		Spec: decor.ShapeSpec{
			Fill:    decor.SolidFill(decor.Red),
			Shadows: []decor.Shadow{{Color: decor.Black, Offset: decor.Pt(-4, -2)}},
		},
	}
	c, err := CanvasFor(nil, req)
	if err != nil {
		t.Fatalf("CanvasFor() = %v", err)
	}
	placed := c.Place(req)
	if placed.Rect != decor.XYWH(4, 2, 10, 10) {
		t.Errorf("placed rect = %v, want (4,2) 10x10", placed.Rect)
	}

	// Once placed, nothing the paint touches is left of or above the canvas.
	b, err := decor.NewPainter().Bounds(placed)
	if err != nil {
		t.Fatalf("Bounds() = %v", err)
	}
	if b.Min.X < 0 || b.Min.Y < 0 || b.Max.X > float64(c.Width) || b.Max.Y > float64(c.Height) {
		t.Errorf("placed bounds %v escape the %dx%d canvas", b, c.Width, c.Height)
	}

	unmoved := scenario()
	unmoved.Spec.Shadows = nil
	c, _ = CanvasFor(nil, unmoved)
	if got := c.Place(unmoved); got.Rect != unmoved.Rect {
		t.Errorf("Place moved a request already inside the canvas: %v", got.Rect)
	}
}
