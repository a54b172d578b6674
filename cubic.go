package surface

// CubicBez is a cubic Bézier curve in 3D space.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (c CubicBez) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec3(c.P0).Mul(mt * mt * mt)
	b := Vec3(c.P1).Mul(mt * mt * 3.0)
	cc := Vec3(c.P2).Mul(mt * 3.0)
	d := Vec3(c.P3)
	v := a.Add(b.Add(cc.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// Deriv evaluates the curve's first derivative at t.
func (c CubicBez) Deriv(t float64) Vec3 {
	return Vec3(c.P0).Mul(BernsteinDeriv(0, t)).
		Add(Vec3(c.P1).Mul(BernsteinDeriv(1, t))).
		Add(Vec3(c.P2).Mul(BernsteinDeriv(2, t))).
		Add(Vec3(c.P3).Mul(BernsteinDeriv(3, t)))
}

// Split subdivides the cubic at t, using de Casteljau's triangle scheme.
//
// The two returned cubics together trace the same curve as c: the first
// covers c's parameter range [0, t], the second [t, 1], and both meet at
// c.Eval(t). t is relative to c's own [0, 1] range; callers holding a
// parameter in some other interval must remap it first.
func (c CubicBez) Split(t float64) (CubicBez, CubicBez) {
	p01 := c.P0.Lerp(c.P1, t)
	p12 := c.P1.Lerp(c.P2, t)
	p23 := c.P2.Lerp(c.P3, t)
	p012 := p01.Lerp(p12, t)
	p123 := p12.Lerp(p23, t)
	pm := p012.Lerp(p123, t)
	return CubicBez{c.P0, p01, p012, pm},
		CubicBez{pm, p123, p23, c.P3}
}

// Subdivide subdivides the cubic into halves.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	return c.Split(0.5)
}

func (c CubicBez) Start() Point {
	return c.P0
}

func (c CubicBez) End() Point {
	return c.P3
}
