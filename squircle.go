package decor

import (
	"math"
	"sync"
)

const (
	// SquircleExponent is the superellipse exponent n in |x|^n + |y|^n = 1
	// approximated by squircle corners.
	SquircleExponent = 4.0

	// SquircleTolerance is the maximum radial deviation, as a fraction of
	// the corner radius, between a squircle corner and the exact curve.
	SquircleTolerance = 0.005

	// maxSquircleSegments bounds the number of cubics per corner.
	maxSquircleSegments = 8
)

// squircleFit is the cubic approximation of one superellipse quadrant,
// expressed in the unit frame where the quadrant runs from (0, 1) to
// (1, 0).
type squircleFit struct {
	segments []CubicBez
	maxError float64
}

// squircleQuadrant fits the quadrant once; the result depends only on
// SquircleExponent and SquircleTolerance.
var squircleQuadrant = sync.OnceValue(func() squircleFit {
	var fit squircleFit
	for n := 2; n <= maxSquircleSegments; n++ {
		fit = fitSquircle(n)
		if fit.maxError <= SquircleTolerance {
			break
		}
	}
	return fit
})

// superellipsePoint returns the quadrant point at angle theta together
// with the unit tangent pointing from (0, 1) towards (1, 0).
func superellipsePoint(theta float64) (Point, Point) {
	e := 2 / SquircleExponent
	c, s := math.Cos(theta), math.Sin(theta)
	// Snap the quadrant ends so the fit starts and stops exactly on the axes.
	if math.Abs(c) < 1e-12 {
		c = 0
	}
	if math.Abs(s) < 1e-12 {
		s = 0
	}
	pt := Point{X: math.Pow(math.Max(c, 0), e), Y: math.Pow(math.Max(s, 0), e)}

	k := SquircleExponent - 1
	tan := Point{X: math.Pow(pt.Y, k), Y: -math.Pow(pt.X, k)}
	l := tan.Length()
	if l == 0 {
		return pt, Point{X: 1}
	}
	return pt, tan.Mul(1 / l)
}

// superellipseError is the radial deviation of pt from the unit curve.
func superellipseError(pt Point) float64 {
	n := SquircleExponent
	r := math.Pow(math.Pow(math.Abs(pt.X), n)+math.Pow(math.Abs(pt.Y), n), 1/n)
	return math.Abs(r - 1)
}

// fitSquircle splits the quadrant into n equal-angle pieces and fits
// one cubic per piece. Each cubic keeps the exact endpoints and
// tangents; only the two handle lengths are searched.
func fitSquircle(n int) squircleFit {
	fit := squircleFit{segments: make([]CubicBez, 0, n)}
	for i := 0; i < n; i++ {
		t0 := math.Pi / 2 * (1 - float64(i)/float64(n))
		t1 := math.Pi / 2 * (1 - float64(i+1)/float64(n))
		p0, d0 := superellipsePoint(t0)
		p3, d3 := superellipsePoint(t1)

		seg, err := fitHandles(p0, d0, p3, d3)
		fit.segments = append(fit.segments, seg)
		fit.maxError = math.Max(fit.maxError, err)
	}
	return fit
}

// fitHandles runs a coarse then fine grid search over handle lengths.
func fitHandles(p0, d0, p3, d3 Point) (CubicBez, float64) {
	chord := p0.Distance(p3)
	build := func(a, b float64) CubicBez {
		return CubicBez{
			P0: p0,
			P1: p0.Add(d0.Mul(a * chord)),
			P2: p3.Sub(d3.Mul(b * chord)),
			P3: p3,
		}
	}

	bestA, bestB, bestErr := 0.0, 0.0, math.Inf(1)
	search := func(a0, b0, step float64, steps int) {
		for i := 0; i <= steps; i++ {
			a := a0 + float64(i)*step
			if a < 0 {
				continue
			}
			for j := 0; j <= steps; j++ {
				b := b0 + float64(j)*step
				if b < 0 {
					continue
				}
				if err := cubicDeviation(build(a, b)); err < bestErr {
					bestA, bestB, bestErr = a, b, err
				}
			}
		}
	}
	search(0, 0, 0.02, 50)
	search(bestA-0.02, bestB-0.02, 0.001, 40)

	return build(bestA, bestB), bestErr
}

// cubicDeviation samples the cubic and returns its worst radial error.
func cubicDeviation(c CubicBez) float64 {
	const samples = 32
	worst := 0.0
	for i := 1; i < samples; i++ {
		worst = math.Max(worst, superellipseError(c.Eval(float64(i)/samples)))
	}
	return worst
}
