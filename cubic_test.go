package surface

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

var splitTestCurve = CubicBez{
	Pt3(0, 0, 0),
	Pt3(0.3, 1.2, 0),
	Pt3(1.4, -0.5, 0),
	Pt3(2, 0.8, 0),
}

func TestCubicBezSplitMeetingPoint(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-12)
	for _, ts := range []float64{0.1, 0.25, 0.5, 0.75, 0.9} {
		c0, c1 := splitTestCurve.Split(ts)
		at := splitTestCurve.Eval(ts)
		diff(t, splitTestCurve.P0, c0.P0)
		diff(t, splitTestCurve.P3, c1.P3)
		diff(t, at, c0.P3, approx)
		diff(t, at, c1.P0, approx)
	}
}

func TestCubicBezSplitReproducesCurve(t *testing.T) {
	// Evaluating the original at s must match evaluating the left half
	// at s/t (s ≤ t) or the right half at (s−t)/(1−t) (s > t).
	approx := cmpopts.EquateApprox(0, 1e-9)
	const n = 50
	for _, ts := range []float64{0.2, 0.5, 0.71} {
		c0, c1 := splitTestCurve.Split(ts)
		for i := range n + 1 {
			s := float64(i) / float64(n)
			want := splitTestCurve.Eval(s)
			var got Point
			if s <= ts {
				got = c0.Eval(s / ts)
			} else {
				got = c1.Eval((s - ts) / (1 - ts))
			}
			diff(t, want, got, approx)
		}
	}
}

func TestCubicBezSubdivide(t *testing.T) {
	l0, r0 := splitTestCurve.Subdivide()
	l1, r1 := splitTestCurve.Split(0.5)
	diff(t, l1, l0)
	diff(t, r1, r0)
}

func TestCubicBezDeriv(t *testing.T) {
	const n = 10
	const delta = 1e-6
	for i := range n + 1 {
		ts := float64(i) / float64(n)
		p := splitTestCurve.Eval(ts)
		p1 := splitTestCurve.Eval(ts + delta)
		dApprox := p1.Sub(p).Mul(1.0 / delta)
		d := splitTestCurve.Deriv(ts)
		if l := d.Sub(dApprox).Hypot(); l >= delta*20 {
			t.Errorf("at t=%g: got difference of %g between derivative and finite difference", ts, l)
		}
	}
}

func TestCubicBezEvalEndpoints(t *testing.T) {
	diff(t, splitTestCurve.P0, splitTestCurve.Eval(0))
	diff(t, splitTestCurve.P3, splitTestCurve.Eval(1))
	diff(t, splitTestCurve.P0, splitTestCurve.Start())
	diff(t, splitTestCurve.P3, splitTestCurve.End())
}

func TestCubicBezCarriesZ(t *testing.T) {
	c := CubicBez{Pt3(0, 0, 1), Pt3(0, 0, 2), Pt3(0, 0, 2), Pt3(0, 0, 1)}
	if z := c.Eval(0.5).Z; math.Abs(z-1.75) > 1e-12 {
		t.Errorf("got z=%g at midpoint, want 1.75", z)
	}
}
