// Package specfile reads shape documents written in TOML or YAML and
// turns them into decor requests.
//
// A document describes one shape:
//
//	scale = 2.0
//	background = "#f4f4f4"
//
//	[rect]
//	width = 200.0
//	height = 100.0
//
//	[corners]
//	style = "continuous"
//	radius = 16.0
//
//	[fill]
//	color = "#3366ff"
//
//	[[shadows]]
//	color = "#0000004d"
//	offset = [0.0, 6.0]
//	blur = 12.0
//
// Colors are "#rgb", "#rrggbb" or "#rrggbbaa". Enum values use the
// lowercase names printed by the decor String methods.
package specfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format selects the document syntax.
type Format int

const (
	// FormatTOML decodes TOML documents.
	FormatTOML Format = iota
	// FormatYAML decodes YAML documents.
	FormatYAML
)

// String returns the lowercase format name.
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ErrUnknownFormat is returned for files whose extension names no
// supported format.
var ErrUnknownFormat = errors.New("specfile: unknown format")

// FormatFor picks the format from the file extension.
func FormatFor(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("%w %q", ErrUnknownFormat, ext)
	}
}

// Decode reads one document from r. Unknown keys are rejected so typos
// do not silently fall back to defaults.
func Decode(r io.Reader, f Format) (*Document, error) {
	d := &Document{}
	switch f {
	case FormatTOML:
		dec := toml.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(d); err != nil {
			return nil, fmt.Errorf("specfile: decode toml: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(d); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("specfile: decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w %v", ErrUnknownFormat, f)
	}
	return d, nil
}

// Load reads the document at path. Image paths inside it resolve
// relative to the document's directory.
func Load(path string) (*Document, error) {
	f, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("specfile: %w", err)
	}
	defer file.Close()

	d, err := Decode(file, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	d.dir = filepath.Dir(path)
	return d, nil
}
