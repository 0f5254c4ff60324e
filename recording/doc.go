// Package recording captures the surface calls of a decor paint as typed
// commands.
//
// A Recorder implements decor.Surface. Painting into it produces a
// Recording: an immutable list of commands plus the paths, brushes and
// images they reference. A Recording can be inspected in tests, dumped
// as text, or replayed onto any other surface.
//
// # Basic Usage
//
//	rec := recording.NewRecorder(200, 100)
//	if err := decor.Paint(rec, req); err != nil {
//		return err
//	}
//	r := rec.FinishRecording()
//
//	// Replay onto a registered backend.
//	backend, err := recording.NewBackend("raster")
//	if err != nil {
//		return err
//	}
//	err = r.Playback(backend)
//
// # Backends
//
// Backends register themselves by name from init, following the
// database/sql driver pattern. Import a backend package for its side
// effect:
//
//	import _ "github.com/gogpu/decor/raster"
//
// # Batches
//
// RecordAll paints many requests concurrently, one Recorder each, and
// returns the recordings in request order.
package recording
