// Package decor computes the geometry and paint commands for decorated
// 2D shapes: rectangles with per-corner treatments, a border stroke, a
// fill, outward and inward shadows and an optional image.
//
// # Overview
//
// A ShapeSpec is a plain value describing a shape. Painting it is a pure
// function of the spec, a rectangle and a device pixel scale:
//
//	err := decor.Paint(surface, decor.Request{
//		Rect:  decor.XYWH(0, 0, 200, 100),
//		Scale: 2,
//		Spec: decor.ShapeSpec{
//			Corners: decor.AllCorners(decor.Rounded(16)),
//			Fill:    decor.SolidFill(decor.White),
//			Shadows: []decor.Shadow{{
//				Color:      decor.Black.WithAlpha(0.25),
//				Offset:     decor.Pt(0, 4),
//				BlurRadius: 8,
//			}},
//		},
//	})
//
// The engine never rasterizes. It drives a Surface, which a host
// implements. Two implementations ship with the module: recording.Recorder
// captures the calls as typed commands, and raster.ImageSurface paints
// into an *image.RGBA.
//
// # Corners
//
// Each corner is one of five styles: rounded (a circular arc), squircle
// (a superellipse quadrant), continuous (a curve with gentle curvature
// onset that reaches further along the edges), chamfer (a straight
// bevel) or sharp. When the corners on an edge do not fit, every radius
// is multiplied by one common factor so the proportions between corners
// survive.
//
// # Animation
//
// Interpolate blends two specs. Tween pairs it with an easing function
// for hosts that run their own animation clock.
//
// # Logging
//
// decor logs nothing by default. SetLogger installs a *slog.Logger shared
// with the sub-packages.
package decor
