// Package raster provides a software decor.Surface that renders into an
// *image.RGBA.
//
// Path coverage comes from golang.org/x/image/vector, strokes and dashes
// from github.com/srwiley/rasterx, and shadow blur from
// github.com/anthonynsimon/bild. Importing the package registers the
// surface as a recording backend named "raster":
//
//	import _ "github.com/gogpu/decor/raster"
//
//	b, _ := recording.NewBackend("raster")
//	_ = rec.Playback(b)
package raster

import "github.com/gogpu/decor/recording"

// Name is the recording backend name this package registers.
const Name = "raster"

func init() {
	recording.Register(Name, func() recording.Backend { return NewImageSurface(1, 1) })
}
