package recording

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/decor"
)

// RecordAll paints every request into its own Recorder, running at most
// limit paints at once (limit <= 0 means no limit). Each recording gets
// the canvas CanvasFor computes for its request.
//
// The first failing request cancels the rest; the returned error names
// its index. Recordings come back in request order.
func RecordAll(ctx context.Context, p *decor.Painter, reqs []decor.Request, limit int) ([]*Recording, error) {
	if p == nil {
		p = decor.NewPainter()
	}
	out := make([]*Recording, len(reqs))

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, req := range reqs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rec, err := record(p, req)
			if err != nil {
				return fmt.Errorf("recording: request %d: %w", i, err)
			}
			out[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Canvas is a device-pixel canvas placed so that every pixel a set of
// paints touches falls inside it. Its top-left corner is the device
// origin unless a paint reaches above or left of it; Offset then moves
// the paints right and down by whole pixels.
type Canvas struct {
	Width, Height int
	Offset        decor.Point
}

// CanvasFor returns the smallest origin-anchored canvas that holds every
// paint of reqs, including strokes and outward shadows.
func CanvasFor(p *decor.Painter, reqs ...decor.Request) (Canvas, error) {
	if p == nil {
		p = decor.NewPainter()
	}
	var extent decor.Rect
	for i, req := range reqs {
		b, err := p.Bounds(req)
		if err != nil {
			if len(reqs) > 1 {
				err = fmt.Errorf("recording: request %d: %w", i, err)
			}
			return Canvas{}, err
		}
		if i == 0 {
			extent = b
		} else {
			extent = extent.Union(b)
		}
	}

	off := decor.Pt(math.Ceil(math.Max(-extent.Min.X, 0)), math.Ceil(math.Max(-extent.Min.Y, 0)))
	return Canvas{
		Width:  int(math.Ceil(math.Max(extent.Max.X+off.X, 0))),
		Height: int(math.Ceil(math.Max(extent.Max.Y+off.Y, 0))),
		Offset: off,
	}, nil
}

// Place returns req moved by the canvas offset.
func (c Canvas) Place(req decor.Request) decor.Request {
	if c.Offset == (decor.Point{}) {
		return req
	}
	return req.Moved(c.Offset)
}

func record(p *decor.Painter, req decor.Request) (*Recording, error) {
	c, err := CanvasFor(p, req)
	if err != nil {
		return nil, err
	}

	rec := NewRecorder(c.Width, c.Height)
	if err := p.Paint(rec, c.Place(req)); err != nil {
		return nil, err
	}
	return rec.FinishRecording(), nil
}
