package surface

import "fmt"

// Domain is the axis-aligned parametric rectangle a patch occupies
// within the global [0, 1]² parameter space of a [Mesh]. The domains of
// a mesh's patches tile the unit square exactly; subdivision is the only
// operation that changes them.
type Domain struct {
	U0, V0 float64
	U1, V1 float64
}

// UnitDomain is the domain of a mesh's single initial patch.
var UnitDomain = Domain{0, 0, 1, 1}

func (d Domain) String() string {
	return fmt.Sprintf("[%g, %g]×[%g, %g]", d.U0, d.U1, d.V0, d.V1)
}

// Contains reports whether (u, v) lies in the domain. The test is
// inclusive on all four edges: a point on a boundary shared by two
// domains is contained in both, and [Mesh.Compute]'s scan order decides
// which patch evaluates it.
func (d Domain) Contains(u, v float64) bool {
	return u >= d.U0 &&
		u <= d.U1 &&
		v >= d.V0 &&
		v <= d.V1
}

// Width returns the domain's extent in u.
func (d Domain) Width() float64 {
	return d.U1 - d.U0
}

// Height returns the domain's extent in v.
func (d Domain) Height() float64 {
	return d.V1 - d.V0
}

// Local remaps global parametric coordinates into the domain's own
// [0, 1]² range.
func (d Domain) Local(u, v float64) (float64, float64) {
	return (u - d.U0) / d.Width(), (v - d.V0) / d.Height()
}

// SplitU splits the domain along the vertical line at the global
// parameter u, returning the left and right halves.
func (d Domain) SplitU(u float64) (Domain, Domain) {
	return Domain{d.U0, d.V0, u, d.V1}, Domain{u, d.V0, d.U1, d.V1}
}

// SplitV splits the domain along the horizontal line at the global
// parameter v, returning the bottom and top halves.
func (d Domain) SplitV(v float64) (Domain, Domain) {
	return Domain{d.U0, d.V0, d.U1, v}, Domain{d.U0, v, d.U1, d.V1}
}
