package decor

// Easing maps linear progress to eased progress. An easing must map 0 to
// 0 and 1 to 1; values outside [0, 1] in between are allowed.
type Easing func(t float64) float64

// Linear is the identity easing.
func Linear(t float64) float64 { return t }

// EaseInOut is a cubic ease-in-out.
func EaseInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

// EaseOutBack overshoots the target by about ten percent before settling.
// Interpolated lengths clamp at zero while colors clamp to [0, 1].
func EaseOutBack(t float64) float64 {
	const c1 = 1.70158
	const c3 = c1 + 1
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	}
	u := t - 1
	return 1 + c3*u*u*u + c1*u*u
}

// Tween is a transition between two specs. The host owns the clock and
// asks for the spec at a progress value; the tween keeps no state.
type Tween struct {
	From, To ShapeSpec

	// Ease shapes progress. Nil means Linear.
	Ease Easing
}

// At returns the spec at progress t in [0, 1].
func (tw Tween) At(t float64) ShapeSpec {
	if tw.Ease != nil {
		t = tw.Ease(t)
	}
	return Interpolate(tw.From, tw.To, t)
}

// Rebase starts a new tween toward to from wherever tw is at progress t,
// so an in-flight transition can be redirected without a jump.
func (tw Tween) Rebase(t float64, to ShapeSpec) Tween {
	return Tween{From: tw.At(t), To: to, Ease: tw.Ease}
}
