package recording

import (
	"fmt"
	"image"
	"io"

	"github.com/gogpu/decor"
)

// Recorder captures surface calls as commands. It implements
// decor.Surface, so a paint can target it directly. Use FinishRecording
// to obtain an immutable Recording that can be replayed to different
// backends.
//
// Example:
//
//	rec := recording.NewRecorder(200, 100)
//	_ = decor.Paint(rec, req)
//	r := rec.FinishRecording()
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command
	resources     *ResourcePool
	clipDepth     int
}

var _ decor.Surface = (*Recorder)(nil)

// NewRecorder creates a Recorder for a canvas of the given dimensions.
// The dimensions are carried to the backend on playback.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:     width,
		height:    height,
		commands:  make([]Command, 0, 16),
		resources: NewResourcePool(),
	}
}

// Width returns the width of the recording canvas.
func (r *Recorder) Width() int { return r.width }

// Height returns the height of the recording canvas.
func (r *Recorder) Height() int { return r.height }

// FillPath implements decor.Surface.
func (r *Recorder) FillPath(path *decor.Path, brush decor.Brush) {
	r.commands = append(r.commands, FillPathCommand{
		Path:  r.resources.AddPath(path),
		Brush: r.resources.AddBrush(brush),
	})
}

// StrokePath implements decor.Surface.
func (r *Recorder) StrokePath(path *decor.Path, style decor.StrokeStyle) {
	style.Dashes = append([]float64(nil), style.Dashes...)
	if len(style.Dashes) == 0 {
		style.Dashes = nil
	}
	r.commands = append(r.commands, StrokePathCommand{
		Path:  r.resources.AddPath(path),
		Style: style,
	})
}

// BlurredFill implements decor.Surface.
func (r *Recorder) BlurredFill(path *decor.Path, color decor.RGBA, radius float64) {
	r.commands = append(r.commands, BlurredFillCommand{
		Path:   r.resources.AddPath(path),
		Color:  color,
		Radius: radius,
	})
}

// PushClip implements decor.Surface.
func (r *Recorder) PushClip(path *decor.Path) {
	r.clipDepth++
	r.commands = append(r.commands, PushClipCommand{Path: r.resources.AddPath(path)})
}

// PopClip implements decor.Surface. An unmatched PopClip is dropped so
// a recording always replays with a balanced clip stack.
func (r *Recorder) PopClip() {
	if r.clipDepth == 0 {
		decor.Logger().Warn("recording: PopClip without matching PushClip")
		return
	}
	r.clipDepth--
	r.commands = append(r.commands, PopClipCommand{})
}

// DrawImage implements decor.Surface.
func (r *Recorder) DrawImage(img image.Image, dst decor.Rect, clip *decor.Path, opacity float64) {
	r.commands = append(r.commands, DrawImageCommand{
		Image:   r.resources.AddImage(img),
		Dst:     dst,
		Clip:    r.resources.AddPath(clip),
		Opacity: opacity,
	})
}

// FinishRecording returns an immutable Recording containing all recorded
// commands. Clips still open are closed. After calling FinishRecording,
// the Recorder should not be used again.
func (r *Recorder) FinishRecording() *Recording {
	for ; r.clipDepth > 0; r.clipDepth-- {
		r.commands = append(r.commands, PopClipCommand{})
	}
	return &Recording{
		width:     r.width,
		height:    r.height,
		commands:  r.commands,
		resources: r.resources,
	}
}

// Recording is an immutable container for recorded commands.
// It can be replayed to any Backend or decor.Surface.
type Recording struct {
	width, height int
	commands      []Command
	resources     *ResourcePool
}

// Width returns the width of the recording canvas.
func (r *Recording) Width() int { return r.width }

// Height returns the height of the recording canvas.
func (r *Recording) Height() int { return r.height }

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command { return r.commands }

// Resources returns the resource pool.
func (r *Recording) Resources() *ResourcePool { return r.resources }

// Types returns the type of every command, in order.
func (r *Recording) Types() []CommandType {
	types := make([]CommandType, len(r.commands))
	for i, c := range r.commands {
		types[i] = c.Type()
	}
	return types
}

// Playback replays the recording to backend between Begin and End.
func (r *Recording) Playback(backend Backend) error {
	if err := backend.Begin(r.width, r.height); err != nil {
		return fmt.Errorf("recording: begin playback: %w", err)
	}
	r.Replay(backend)
	return backend.End()
}

// Replay issues every command on s in recorded order.
func (r *Recording) Replay(s decor.Surface) {
	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case FillPathCommand:
			s.FillPath(r.resources.GetPath(c.Path), r.resources.GetBrush(c.Brush))
		case StrokePathCommand:
			s.StrokePath(r.resources.GetPath(c.Path), c.Style)
		case BlurredFillCommand:
			s.BlurredFill(r.resources.GetPath(c.Path), c.Color, c.Radius)
		case PushClipCommand:
			s.PushClip(r.resources.GetPath(c.Path))
		case PopClipCommand:
			s.PopClip()
		case DrawImageCommand:
			s.DrawImage(r.resources.GetImage(c.Image), c.Dst, r.resources.GetPath(c.Clip), c.Opacity)
		}
	}
}

// Dump writes one line per command, indented by clip depth.
func (r *Recording) Dump(w io.Writer) error {
	depth := 0
	for i, cmd := range r.commands {
		if cmd.Type() == CmdPopClip && depth > 0 {
			depth--
		}
		if _, err := fmt.Fprintf(w, "%3d %*s%s\n", i, 2*depth, "", r.describe(cmd)); err != nil {
			return err
		}
		if cmd.Type() == CmdPushClip {
			depth++
		}
	}
	return nil
}

func (r *Recording) describe(cmd Command) string {
	bounds := func(ref PathRef) string {
		p := r.resources.GetPath(ref)
		if p == nil || p.IsEmpty() {
			return "<empty>"
		}
		return p.BoundingBox().String()
	}

	switch c := cmd.(type) {
	case FillPathCommand:
		return fmt.Sprintf("FillPath %s %T", bounds(c.Path), r.resources.GetBrush(c.Brush))
	case StrokePathCommand:
		return fmt.Sprintf("StrokePath %s width=%g dashes=%v", bounds(c.Path), c.Style.Width, c.Style.Dashes)
	case BlurredFillCommand:
		return fmt.Sprintf("BlurredFill %s radius=%g alpha=%.3g", bounds(c.Path), c.Radius, c.Color.A)
	case PushClipCommand:
		return "PushClip " + bounds(c.Path)
	case DrawImageCommand:
		return fmt.Sprintf("DrawImage %s opacity=%g", c.Dst, c.Opacity)
	default:
		return cmd.Type().String()
	}
}
