package main

import (
	"fmt"
	"io"
	"os"

	"github.com/gogpu/decor"
	_ "github.com/gogpu/decor/raster"
	"github.com/gogpu/decor/recording"
	"github.com/gogpu/decor/specfile"
)

// frame is one image to render: a shape over a background.
type frame struct {
	req decor.Request
	bg  decor.RGBA
}

func loadFrame(path string) (frame, error) {
	doc, err := specfile.Load(path)
	if err != nil {
		return frame{}, err
	}
	req, err := doc.Request()
	if err != nil {
		return frame{}, fmt.Errorf("%s: %w", path, err)
	}
	bg, err := doc.BackgroundColor()
	if err != nil {
		return frame{}, fmt.Errorf("%s: %w", path, err)
	}
	return frame{req: req, bg: bg}, nil
}

// record paints f into a width×height recording.
func (f frame) record(p *decor.Painter, width, height int) (*recording.Recording, error) {
	rec := recording.NewRecorder(width, height)
	if !f.bg.IsTransparent() {
		bg := decor.NewPath()
		bg.Rectangle(0, 0, float64(width), float64(height))
		rec.FillPath(bg, decor.Solid(f.bg))
	}
	if err := p.Paint(rec, f.req); err != nil {
		return nil, err
	}
	return rec.FinishRecording(), nil
}

// pngEncoder is implemented by backends that can write their canvas.
type pngEncoder interface {
	EncodePNG(w io.Writer) error
}

// writePNG plays r back on a fresh backend and writes the result to path.
func writePNG(r *recording.Recording, backend, path string) error {
	b, err := recording.NewBackend(backend)
	if err != nil {
		return err
	}
	enc, ok := b.(pngEncoder)
	if !ok {
		return fmt.Errorf("backend %q cannot write PNG", backend)
	}
	if err := r.Playback(b); err != nil {
		return err
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := enc.EncodePNG(out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
