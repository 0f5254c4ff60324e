package recording

import (
	"image"

	"github.com/gogpu/decor"
)

// ResourcePool stores resources referenced by recording commands.
// Resources are stored in slices indexed by their reference types.
// Paths are cloned on insert so a recording never aliases a caller's path.
//
// ResourcePool is not safe for concurrent use.
type ResourcePool struct {
	paths   []*decor.Path
	brushes []decor.Brush
	images  []image.Image
}

// NewResourcePool creates an empty resource pool.
func NewResourcePool() *ResourcePool {
	return &ResourcePool{
		paths:   make([]*decor.Path, 0, 16),
		brushes: make([]decor.Brush, 0, 8),
	}
}

// AddPath adds a clone of path to the pool and returns its reference.
// A nil path is stored as nil.
func (p *ResourcePool) AddPath(path *decor.Path) PathRef {
	if path != nil {
		path = path.Clone()
	}
	p.paths = append(p.paths, path)
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return PathRef(uint32(len(p.paths) - 1))
}

// GetPath returns the path for the given reference, or nil.
func (p *ResourcePool) GetPath(ref PathRef) *decor.Path {
	if int(ref) >= len(p.paths) {
		return nil
	}
	return p.paths[ref]
}

// PathCount returns the number of paths in the pool.
func (p *ResourcePool) PathCount() int {
	return len(p.paths)
}

// AddBrush adds a brush to the pool and returns its reference.
// decor brushes are never mutated after a paint resolves them, so they
// are stored as is.
func (p *ResourcePool) AddBrush(brush decor.Brush) BrushRef {
	p.brushes = append(p.brushes, brush)
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return BrushRef(uint32(len(p.brushes) - 1))
}

// GetBrush returns the brush for the given reference, or nil.
func (p *ResourcePool) GetBrush(ref BrushRef) decor.Brush {
	if int(ref) >= len(p.brushes) {
		return nil
	}
	return p.brushes[ref]
}

// BrushCount returns the number of brushes in the pool.
func (p *ResourcePool) BrushCount() int {
	return len(p.brushes)
}

// AddImage adds an image to the pool and returns its reference.
// The same image added twice shares one reference.
func (p *ResourcePool) AddImage(img image.Image) ImageRef {
	for i, existing := range p.images {
		if decor.SameImage(existing, img) {
			// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
			return ImageRef(uint32(i))
		}
	}
	p.images = append(p.images, img)
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return ImageRef(uint32(len(p.images) - 1))
}

// GetImage returns the image for the given reference, or nil.
func (p *ResourcePool) GetImage(ref ImageRef) image.Image {
	if int(ref) >= len(p.images) {
		return nil
	}
	return p.images[ref]
}

// ImageCount returns the number of images in the pool.
func (p *ResourcePool) ImageCount() int {
	return len(p.images)
}
