package specfile

import (
	"fmt"
	"image"
	"math"
	"os"
	"path/filepath"

	// Decoders for decoration images.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/gogpu/decor"
)

// Document is one shape as written in a spec file.
type Document struct {
	Rect       Rect     `toml:"rect" yaml:"rect"`
	Scale      float64  `toml:"scale" yaml:"scale"`
	Background string   `toml:"background" yaml:"background"`
	Corners    Corners  `toml:"corners" yaml:"corners"`
	Stroke     *Stroke  `toml:"stroke" yaml:"stroke"`
	Fill       *Fill    `toml:"fill" yaml:"fill"`
	Shadows    []Shadow `toml:"shadows" yaml:"shadows"`
	Image      *Image   `toml:"image" yaml:"image"`

	dir string
}

// Rect positions the shape in logical pixels.
type Rect struct {
	X      float64 `toml:"x" yaml:"x"`
	Y      float64 `toml:"y" yaml:"y"`
	Width  float64 `toml:"width" yaml:"width"`
	Height float64 `toml:"height" yaml:"height"`
}

// Corner is one corner's style and radius.
type Corner struct {
	Style  string  `toml:"style" yaml:"style"`
	Radius float64 `toml:"radius" yaml:"radius"`
}

// Corners sets a style and radius for all four corners. Any of the
// per-corner tables overrides it for that corner.
type Corners struct {
	Style  string  `toml:"style" yaml:"style"`
	Radius float64 `toml:"radius" yaml:"radius"`

	TopLeft     *Corner `toml:"top_left" yaml:"top_left"`
	TopRight    *Corner `toml:"top_right" yaml:"top_right"`
	BottomLeft  *Corner `toml:"bottom_left" yaml:"bottom_left"`
	BottomRight *Corner `toml:"bottom_right" yaml:"bottom_right"`
}

// Stroke is the border. An empty color means black.
type Stroke struct {
	Width float64 `toml:"width" yaml:"width"`
	Color string  `toml:"color" yaml:"color"`
	Style string  `toml:"style" yaml:"style"`
	Align string  `toml:"align" yaml:"align"`
}

// Fill is a solid color or, when Gradient is set, a gradient.
type Fill struct {
	Color    string    `toml:"color" yaml:"color"`
	Gradient *Gradient `toml:"gradient" yaml:"gradient"`
}

// Gradient mirrors decor.Gradient. Points are [x, y] fractions of the
// outline bounds; angles are in degrees.
type Gradient struct {
	Kind       string    `toml:"kind" yaml:"kind"`
	Extend     string    `toml:"extend" yaml:"extend"`
	Stops      []Stop    `toml:"stops" yaml:"stops"`
	Begin      []float64 `toml:"begin" yaml:"begin"`
	End        []float64 `toml:"end" yaml:"end"`
	Center     []float64 `toml:"center" yaml:"center"`
	Focal      []float64 `toml:"focal" yaml:"focal"`
	Radius     float64   `toml:"radius" yaml:"radius"`
	StartAngle float64   `toml:"start_angle" yaml:"start_angle"`
	EndAngle   *float64  `toml:"end_angle" yaml:"end_angle"`
}

// Stop is one gradient color stop.
type Stop struct {
	Offset float64 `toml:"offset" yaml:"offset"`
	Color  string  `toml:"color" yaml:"color"`
}

// Shadow is one drop shadow.
type Shadow struct {
	Color  string    `toml:"color" yaml:"color"`
	Offset []float64 `toml:"offset" yaml:"offset"`
	Blur   float64   `toml:"blur" yaml:"blur"`
	Spread float64   `toml:"spread" yaml:"spread"`
	Inner  bool      `toml:"inner" yaml:"inner"`
}

// Image is a decoration image read from disk. Opacity defaults to 1.
type Image struct {
	Path    string   `toml:"path" yaml:"path"`
	Fit     string   `toml:"fit" yaml:"fit"`
	Opacity *float64 `toml:"opacity" yaml:"opacity"`
}

// fieldError prefixes err with the document field it came from.
func fieldError(field string, err error) error {
	return fmt.Errorf("specfile: %s: %w", field, err)
}

// Request converts the document into a paint request.
func (d *Document) Request() (decor.Request, error) {
	spec, err := d.Spec()
	if err != nil {
		return decor.Request{}, err
	}
	return decor.Request{
		Rect:  decor.XYWH(d.Rect.X, d.Rect.Y, d.Rect.Width, d.Rect.Height),
		Scale: d.Scale,
		Spec:  spec,
	}, nil
}

// BackgroundColor returns the canvas color; transparent when unset.
func (d *Document) BackgroundColor() (decor.RGBA, error) {
	if d.Background == "" {
		return decor.Transparent, nil
	}
	c, err := ParseColor(d.Background)
	if err != nil {
		return decor.RGBA{}, fieldError("background", err)
	}
	return c, nil
}

// Spec converts the document into a ShapeSpec, loading the image if one
// is named.
func (d *Document) Spec() (decor.ShapeSpec, error) {
	var spec decor.ShapeSpec
	var err error

	if spec.Corners, err = d.Corners.corners(); err != nil {
		return spec, err
	}
	if d.Stroke != nil {
		if spec.Stroke, err = d.Stroke.side(); err != nil {
			return spec, err
		}
	}
	if d.Fill != nil {
		if spec.Fill, err = d.Fill.fill(); err != nil {
			return spec, err
		}
	}
	for i, sh := range d.Shadows {
		s, err := sh.shadow()
		if err != nil {
			return spec, fieldError(fmt.Sprintf("shadows[%d]", i), err)
		}
		spec.Shadows = append(spec.Shadows, s)
	}
	if d.Image != nil {
		if spec.Image, err = d.Image.load(d.dir); err != nil {
			return spec, fieldError("image", err)
		}
	}
	return spec, nil
}

func (c Corner) corner() (decor.Corner, error) {
	style := decor.CornerRounded
	if c.Style != "" {
		var err error
		if style, err = decor.ParseCornerStyle(c.Style); err != nil {
			return decor.Corner{}, err
		}
	}
	return decor.Corner{Style: style, Radius: c.Radius}.Normalized(), nil
}

func (cs Corners) corners() (decor.Corners, error) {
	all, err := Corner{Style: cs.Style, Radius: cs.Radius}.corner()
	if err != nil {
		return decor.Corners{}, fieldError("corners.style", err)
	}
	out := decor.AllCorners(all)

	overrides := []struct {
		name string
		src  *Corner
		dst  *decor.Corner
	}{
		{"top_left", cs.TopLeft, &out.TopLeft},
		{"top_right", cs.TopRight, &out.TopRight},
		{"bottom_left", cs.BottomLeft, &out.BottomLeft},
		{"bottom_right", cs.BottomRight, &out.BottomRight},
	}
	for _, o := range overrides {
		if o.src == nil {
			continue
		}
		c, err := o.src.corner()
		if err != nil {
			return decor.Corners{}, fieldError("corners."+o.name, err)
		}
		*o.dst = c
	}
	return out, nil
}

func (s Stroke) side() (decor.StrokeSide, error) {
	side := decor.StrokeSide{Width: s.Width, Color: decor.Black}
	var err error
	if s.Color != "" {
		if side.Color, err = ParseColor(s.Color); err != nil {
			return side, fieldError("stroke.color", err)
		}
	}
	if s.Style != "" {
		if side.Style, err = decor.ParseBorderStyle(s.Style); err != nil {
			return side, fieldError("stroke.style", err)
		}
	}
	if s.Align != "" {
		if side.Align, err = decor.ParseStrokeAlign(s.Align); err != nil {
			return side, fieldError("stroke.align", err)
		}
	}
	return side, nil
}

func (f Fill) fill() (decor.Fill, error) {
	if f.Gradient != nil {
		g, err := f.Gradient.gradient()
		if err != nil {
			return decor.Fill{}, fieldError("fill.gradient", err)
		}
		return decor.GradientFill(g), nil
	}
	if f.Color == "" {
		return decor.NoFill(), nil
	}
	c, err := ParseColor(f.Color)
	if err != nil {
		return decor.Fill{}, fieldError("fill.color", err)
	}
	return decor.SolidFill(c), nil
}

func (g Gradient) gradient() (decor.Gradient, error) {
	out := decor.Gradient{
		Begin:      decor.Pt(0, 0.5),
		End:        decor.Pt(1, 0.5),
		Center:     decor.Pt(0.5, 0.5),
		Radius:     0.5,
		StartAngle: g.StartAngle * math.Pi / 180,
		EndAngle:   2 * math.Pi,
	}
	if g.Radius != 0 {
		out.Radius = g.Radius
	}
	if g.EndAngle != nil {
		out.EndAngle = *g.EndAngle * math.Pi / 180
	}

	var err error
	if g.Kind != "" {
		if out.Kind, err = decor.ParseGradientKind(g.Kind); err != nil {
			return out, err
		}
	}
	if g.Extend != "" {
		if out.Extend, err = decor.ParseExtendMode(g.Extend); err != nil {
			return out, err
		}
	}

	var focal decor.Point
	points := []struct {
		name string
		src  []float64
		dst  *decor.Point
	}{
		{"begin", g.Begin, &out.Begin},
		{"end", g.End, &out.End},
		{"center", g.Center, &out.Center},
		{"focal", g.Focal, &focal},
	}
	for _, p := range points {
		if p.src == nil {
			continue
		}
		if *p.dst, err = point(p.src); err != nil {
			return out, fmt.Errorf("%s: %w", p.name, err)
		}
	}
	if g.Focal != nil {
		out.Focal = &focal
	}

	if len(g.Stops) < 2 {
		return out, fmt.Errorf("need at least 2 stops, got %d", len(g.Stops))
	}
	for i, s := range g.Stops {
		c, err := ParseColor(s.Color)
		if err != nil {
			return out, fmt.Errorf("stops[%d]: %w", i, err)
		}
		out.Stops = append(out.Stops, decor.ColorStop{Offset: s.Offset, Color: c})
	}
	return out, nil
}

func (s Shadow) shadow() (decor.Shadow, error) {
	c, err := ParseColor(s.Color)
	if err != nil {
		return decor.Shadow{}, fmt.Errorf("color: %w", err)
	}
	var off decor.Point
	if s.Offset != nil {
		if off, err = point(s.Offset); err != nil {
			return decor.Shadow{}, fmt.Errorf("offset: %w", err)
		}
	}
	return decor.Shadow{
		Color:        c,
		Offset:       off,
		BlurRadius:   s.Blur,
		SpreadRadius: s.Spread,
		Inner:        s.Inner,
	}, nil
}

func (im Image) load(dir string) (*decor.DecorationImage, error) {
	di := &decor.DecorationImage{Opacity: 1}
	var err error
	if im.Fit != "" {
		if di.Fit, err = decor.ParseBoxFit(im.Fit); err != nil {
			return nil, err
		}
	}
	if im.Opacity != nil {
		di.Opacity = *im.Opacity
	}

	path := im.Path
	if !filepath.IsAbs(path) && dir != "" {
		path = filepath.Join(dir, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if di.Source, _, err = image.Decode(f); err != nil {
		return nil, fmt.Errorf("decode %s: %w", im.Path, err)
	}
	return di, nil
}

func point(v []float64) (decor.Point, error) {
	if len(v) != 2 {
		return decor.Point{}, fmt.Errorf("want [x, y], got %d values", len(v))
	}
	return decor.Pt(v[0], v[1]), nil
}
