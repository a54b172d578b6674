package surface

import "fmt"

// Mode selects how a patch blends its control net.
type Mode int

const (
	// ModeBezier evaluates the full tensor-product Bernstein blend of
	// all 16 control points.
	ModeBezier Mode = iota
	// ModeLinear bilinearly blends the four corner points only,
	// ignoring edge and interior points. It is the cheap preview mode
	// of the editor.
	ModeLinear
)

func (m Mode) String() string {
	switch m {
	case ModeBezier:
		return "bezier"
	case ModeLinear:
		return "linear"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Control net layout: 4×4, row-major, index 4*row+col. Rows run in the
// direction of increasing v, columns in the direction of increasing u,
// so the corners sit at the indices below.
const (
	netBottomLeft  = 0
	netBottomRight = 3
	netTopLeft     = 12
	netTopRight    = 15
)

// Patch is one bicubic Bézier piece of a composite [Mesh]: a 4×4 net of
// control point handles into the mesh's pool, plus the parametric
// rectangle the piece occupies. Boundary handles are shared (same
// PointID) with grid-adjacent patches.
type Patch struct {
	Domain Domain
	CP     [16]PointID
}

// Compute evaluates the patch at the global parametric coordinates
// (u, v), which are remapped through the patch's domain before blending.
// pts is the pool the patch's handles index into. Compute panics on an
// unknown mode.
func (p *Patch) Compute(pts *Pool, u, v float64, mode Mode) Point {
	s, t := p.Domain.Local(u, v)
	switch mode {
	case ModeBezier:
		var acc Vec3
		for y := range 4 {
			by := Bernstein(y, t)
			for x := range 4 {
				w := Bernstein(x, s) * by
				acc = acc.Add(Vec3(pts.Pos(p.CP[y*4+x])).Mul(w))
			}
		}
		return Point(acc)
	case ModeLinear:
		bottom := pts.Pos(p.CP[netBottomLeft]).Lerp(pts.Pos(p.CP[netBottomRight]), s)
		top := pts.Pos(p.CP[netTopLeft]).Lerp(pts.Pos(p.CP[netTopRight]), s)
		return bottom.Lerp(top, t)
	default:
		panic(fmt.Sprintf("invalid evaluation mode %d", int(mode)))
	}
}

// railV returns the control curve of net column x, running in the
// direction of increasing v. Splitting the four rails splits the patch
// horizontally.
func (p *Patch) railV(pts *Pool, x int) CubicBez {
	return CubicBez{
		pts.Pos(p.CP[x]),
		pts.Pos(p.CP[4+x]),
		pts.Pos(p.CP[8+x]),
		pts.Pos(p.CP[12+x]),
	}
}

// railU returns the control curve of net row y, running in the
// direction of increasing u.
func (p *Patch) railU(pts *Pool, y int) CubicBez {
	return CubicBez{
		pts.Pos(p.CP[y*4]),
		pts.Pos(p.CP[y*4+1]),
		pts.Pos(p.CP[y*4+2]),
		pts.Pos(p.CP[y*4+3]),
	}
}
