package specfile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/decor"
)

// ParseColor parses "#rgb", "#rrggbb", "#rrggbbaa" or "transparent".
func ParseColor(s string) (decor.RGBA, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "transparent") {
		return decor.Transparent, nil
	}
	if !strings.HasPrefix(s, "#") {
		return decor.RGBA{}, fmt.Errorf("invalid color %q: want #rrggbb", s)
	}

	hex, alpha := s, 1.0
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return decor.RGBA{}, fmt.Errorf("invalid color %q: bad alpha", s)
		}
		hex, alpha = s[:7], float64(a)/255
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return decor.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return decor.RGBA{R: c.R, G: c.G, B: c.B, A: alpha}, nil
}
