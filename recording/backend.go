package recording

import "github.com/gogpu/decor"

// Backend is a surface with a lifecycle that a Recording can be played
// back onto. Backends are created via the registry using NewBackend and
// registered via Register in their init functions.
//
// # Implementation Contract
//
// Each backend must:
//  1. Register in init() using recording.Register()
//  2. Size its output in Begin
//  3. Keep its own clip stack for PushClip and PopClip
//  4. Finish any pending work in End
type Backend interface {
	decor.Surface

	// Begin prepares the backend for a canvas of the given dimensions.
	// It is called once before any drawing method.
	Begin(width, height int) error

	// End finalizes rendering. Output accessors are valid afterwards.
	End() error
}
