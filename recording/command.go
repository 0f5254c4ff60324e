package recording

import "github.com/gogpu/decor"

// CommandType identifies the type of a command.
// Each command type corresponds to one decor.Surface method.
type CommandType uint8

const (
	CmdFillPath    CommandType = iota // Fill a path with a brush
	CmdStrokePath                     // Stroke a path
	CmdBlurredFill                    // Fill a path through a blur
	CmdPushClip                       // Intersect the clip with a path
	CmdPopClip                        // Release the latest clip
	CmdDrawImage                      // Draw a clipped image
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdFillPath:    "FillPath",
	CmdStrokePath:  "StrokePath",
	CmdBlurredFill: "BlurredFill",
	CmdPushClip:    "PushClip",
	CmdPopClip:     "PopClip",
	CmdDrawImage:   "DrawImage",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// PathRef is a reference to a path in the resource pool.
type PathRef uint32

// BrushRef is a reference to a brush in the resource pool.
type BrushRef uint32

// ImageRef is a reference to an image in the resource pool.
type ImageRef uint32

// InvalidRef is the sentinel value for an invalid reference.
const InvalidRef = ^uint32(0)

// IsValid returns true if the reference points to a valid path.
func (r PathRef) IsValid() bool { return uint32(r) != InvalidRef }

// IsValid returns true if the reference points to a valid brush.
func (r BrushRef) IsValid() bool { return uint32(r) != InvalidRef }

// IsValid returns true if the reference points to a valid image.
func (r ImageRef) IsValid() bool { return uint32(r) != InvalidRef }

// FillPathCommand fills a path with a brush.
type FillPathCommand struct {
	Path  PathRef
	Brush BrushRef
}

// Type implements Command.
func (FillPathCommand) Type() CommandType { return CmdFillPath }

// StrokePathCommand strokes a path.
type StrokePathCommand struct {
	Path PathRef
	// Style is owned by the command; its dash slice is not shared with
	// the caller.
	Style decor.StrokeStyle
}

// Type implements Command.
func (StrokePathCommand) Type() CommandType { return CmdStrokePath }

// BlurredFillCommand fills a path with a color through a blur.
type BlurredFillCommand struct {
	Path   PathRef
	Color  decor.RGBA
	Radius float64
}

// Type implements Command.
func (BlurredFillCommand) Type() CommandType { return CmdBlurredFill }

// PushClipCommand intersects the clip with a path.
type PushClipCommand struct {
	Path PathRef
}

// Type implements Command.
func (PushClipCommand) Type() CommandType { return CmdPushClip }

// PopClipCommand releases the most recent PushClipCommand.
type PopClipCommand struct{}

// Type implements Command.
func (PopClipCommand) Type() CommandType { return CmdPopClip }

// DrawImageCommand draws an image into Dst, clipped to Clip.
type DrawImageCommand struct {
	Image   ImageRef
	Dst     decor.Rect
	Clip    PathRef
	Opacity float64
}

// Type implements Command.
func (DrawImageCommand) Type() CommandType { return CmdDrawImage }
