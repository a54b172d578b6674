package surface

import "testing"

func TestDomainContainsInclusive(t *testing.T) {
	d := Domain{0.25, 0.5, 0.75, 1}
	cases := []struct {
		u, v float64
		want bool
	}{
		{0.5, 0.75, true},
		{0.25, 0.5, true}, // all four edges are inclusive
		{0.75, 1, true},
		{0.25, 1, true},
		{0.75, 0.5, true},
		{0.24, 0.75, false},
		{0.76, 0.75, false},
		{0.5, 0.49, false},
		{0.5, 1.01, false},
	}
	for _, c := range cases {
		if got := d.Contains(c.u, c.v); got != c.want {
			t.Errorf("%v.Contains(%g, %g) = %t, want %t", d, c.u, c.v, got, c.want)
		}
	}
}

func TestDomainLocal(t *testing.T) {
	d := Domain{0.5, 0, 1, 0.25}
	s, ts := d.Local(0.75, 0.25)
	diff(t, 0.5, s)
	diff(t, 1.0, ts)
	s, ts = d.Local(0.5, 0)
	diff(t, 0.0, s)
	diff(t, 0.0, ts)
}

func TestDomainSplit(t *testing.T) {
	d := UnitDomain

	l, r := d.SplitU(0.3)
	diff(t, Domain{0, 0, 0.3, 1}, l)
	diff(t, Domain{0.3, 0, 1, 1}, r)

	b, tp := d.SplitV(0.7)
	diff(t, Domain{0, 0, 1, 0.7}, b)
	diff(t, Domain{0, 0.7, 1, 1}, tp)

	// The halves tile the original: they meet exactly at the cut and
	// preserve the perpendicular span.
	diff(t, l.U1, r.U0)
	diff(t, d.Width(), l.Width()+r.Width())
	diff(t, b.V1, tp.V0)
	diff(t, d.Height(), b.Height()+tp.Height())
}
