package decor

import (
	"fmt"
	"testing"
)

func TestFillRendererKinds(t *testing.T) {
	o := mustOutline(t, XYWH(0, 0, 100, 40), AllCorners(Rounded(10)))

	tests := []struct {
		name string
		fill Fill
		want string
	}{
		{"none", NoFill(), ""},
		{"solid", SolidFill(Blue), "fill"},
		{"gradient", GradientFill(LinearGradient(Pt(0, 0), Pt(1, 0),
			ColorStop{Offset: 0, Color: Red}, ColorStop{Offset: 1, Color: Blue})), "fill"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s captureSurface
			FillRenderer{}.Render(&s, o, tt.fill)
			if got := s.ops(); got != tt.want {
				t.Fatalf("ops = %q, want %q", got, tt.want)
			}
			if tt.want != "" && s.calls[0].path != o.Path {
				t.Error("fill does not use the outline path")
			}
		})
	}
}

func TestGradientResolvesAgainstOutlineBounds(t *testing.T) {
	o := mustOutline(t, XYWH(20, 10, 200, 100), AllCorners(Continuous(10)))
	g := LinearGradient(Pt(0, 0.5), Pt(1, 0.5),
		ColorStop{Offset: 1, Color: Blue}, ColorStop{Offset: 0, Color: Red})

	var s captureSurface
	FillRenderer{}.Render(&s, o, GradientFill(g))

	b, ok := s.calls[0].brush.(*LinearGradientBrush)
	if !ok {
		t.Fatalf("brush = %T, want *LinearGradientBrush", s.calls[0].brush)
	}
	if b.Start.Distance(Pt(20, 60)) > 1e-9 || b.End.Distance(Pt(220, 60)) > 1e-9 {
		t.Errorf("brush line = %v -> %v, want (20,60) -> (220,60)", b.Start, b.End)
	}
	if b.Stops[0].Color != Red {
		t.Error("brush stops are not sorted")
	}
	if g.Stops[0].Color != Blue {
		t.Error("resolving the brush reordered the spec stops")
	}
}

func TestGradientBrushKinds(t *testing.T) {
	bounds := XYWH(0, 0, 200, 100)
	stops := []ColorStop{{Offset: 0, Color: White}, {Offset: 1, Color: Black}}

	radial := RadialGradient(Pt(0.5, 0.5), 0.5, stops...).Brush(bounds)
	rb, ok := radial.(*RadialGradientBrush)
	if !ok {
		t.Fatalf("radial brush = %T", radial)
	}
	if rb.Center != Pt(100, 50) || rb.Focus != rb.Center || rb.EndRadius != 50 {
		t.Errorf("radial brush = %+v", rb)
	}

	// A nil focal point falls back to the center.
	g := Gradient{Kind: GradientRadial, Center: Pt(0.25, 0.5), Radius: 1, Stops: stops}
	if fb := g.Brush(bounds).(*RadialGradientBrush); fb.Focus != Pt(50, 50) {
		t.Errorf("focus = %v, want (50,50)", fb.Focus)
	}

	// The top-left corner is a valid focal point of its own.
	origin := Pt(0, 0)
	g.Focal = &origin
	if fb := g.Brush(bounds).(*RadialGradientBrush); fb.Focus != Pt(0, 0) {
		t.Errorf("focus = %v, want (0,0)", fb.Focus)
	}

	sweep := SweepGradient(Pt(0.5, 0.5), stops...).Brush(bounds)
	if sb, ok := sweep.(*SweepGradientBrush); !ok || sb.Center != Pt(100, 50) {
		t.Errorf("sweep brush = %#v", sweep)
	}
}

func TestFillEqual(t *testing.T) {
	a := SolidFill(Red)
	b := a
	b.Gradient = LinearGradient(Pt(0, 0), Pt(1, 1))
	if !a.Equal(b) {
		t.Error("solid fills differing only in the inactive gradient should be equal")
	}
	if a.Equal(SolidFill(Blue)) {
		t.Error("different colors compare equal")
	}
	if NoFill().Equal(a) {
		t.Error("none equals solid")
	}
}

func TestParseNamesIgnoreCaseAndSpace(t *testing.T) {
	tests := []struct {
		input string
		parse func(string) (fmt.Stringer, error)
		want  string
	}{
		{" Squircle ", func(s string) (fmt.Stringer, error) { return ParseCornerStyle(s) }, "squircle"},
		{"Radial", func(s string) (fmt.Stringer, error) { return ParseGradientKind(s) }, "radial"},
		{" reflect", func(s string) (fmt.Stringer, error) { return ParseExtendMode(s) }, "reflect"},
		{"DASHED", func(s string) (fmt.Stringer, error) { return ParseBorderStyle(s) }, "dashed"},
		{"Outside\n", func(s string) (fmt.Stringer, error) { return ParseStrokeAlign(s) }, "outside"},
		{"Cover ", func(s string) (fmt.Stringer, error) { return ParseBoxFit(s) }, "cover"},
	}
	for _, tt := range tests {
		got, err := tt.parse(tt.input)
		if err != nil {
			t.Errorf("parse(%q) = %v", tt.input, err)
			continue
		}
		if got.String() != tt.want {
			t.Errorf("parse(%q) = %v, want %s", tt.input, got, tt.want)
		}
		if _, err := tt.parse(tt.want + "ish"); err == nil {
			t.Errorf("parse(%q) should fail", tt.want+"ish")
		}
	}
}
