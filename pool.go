package surface

import (
	"fmt"
	"iter"
)

// PointID is a stable handle to a control point in a [Pool]. Patches
// store IDs rather than positions; two patches referencing the same ID
// share that point, which is how edits propagate across patch
// boundaries.
type PointID int32

// NoPoint is the invalid point handle.
const NoPoint PointID = -1

// Mirror is a soft continuity constraint attached to a control point:
// when the owning point is moved in mirrored mode, Other is repositioned
// to the point-reflection of the owning point through Anchor, keeping
// the three points collinear. The zero constraint (see [NoMirror]) means
// the point is unconstrained.
type Mirror struct {
	Other  PointID
	Anchor PointID
}

// NoMirror is the absent mirror constraint.
var NoMirror = Mirror{NoPoint, NoPoint}

// Valid reports whether the constraint refers to an actual point pair.
func (l Mirror) Valid() bool {
	return l.Other != NoPoint
}

// ControlPoint is a positioned point with an optional mirror constraint.
type ControlPoint struct {
	Point  Point
	Mirror Mirror
}

// Pool is an append-only arena of control points. Points removed from
// all patches (for instance by row deletion during subdivision) simply
// become unreferenced; [Mesh.Save] renumbers densely, so stale slots
// never leak out of the process.
type Pool struct {
	pts []ControlPoint
}

// Alloc adds a point at pt and returns its handle.
func (p *Pool) Alloc(pt Point) PointID {
	p.pts = append(p.pts, ControlPoint{Point: pt, Mirror: NoMirror})
	return PointID(len(p.pts) - 1)
}

// Len returns the number of allocated points.
func (p *Pool) Len() int {
	return len(p.pts)
}

func (p *Pool) slot(id PointID) *ControlPoint {
	if id < 0 || int(id) >= len(p.pts) {
		panic(fmt.Sprintf("invalid point id %d for pool of %d points", id, len(p.pts)))
	}
	return &p.pts[id]
}

// Pos returns the position of the point id.
func (p *Pool) Pos(id PointID) Point {
	return p.slot(id).Point
}

// SetPos moves the point id without applying any mirror constraint.
func (p *Pool) SetPos(id PointID, pt Point) {
	p.slot(id).Point = pt
}

// Move moves the point id to pt. If mirrored is true and the point
// carries a mirror constraint, the constrained partner is repositioned
// symmetrically about the anchor. The constraint is applied only here,
// on explicit request; direct edits via [Pool.SetPos] leave partners
// untouched.
func (p *Pool) Move(id PointID, pt Point, mirrored bool) {
	s := p.slot(id)
	s.Point = pt
	if mirrored && s.Mirror.Valid() {
		anchor := p.Pos(s.Mirror.Anchor)
		p.SetPos(s.Mirror.Other, pt.Reflect(anchor))
	}
}

// MirrorOf returns the mirror constraint of the point id, if any.
func (p *Pool) MirrorOf(id PointID) (Mirror, bool) {
	l := p.slot(id).Mirror
	return l, l.Valid()
}

// Link attaches a mirror constraint to the point id. Any previous
// constraint is replaced.
func (p *Pool) Link(id, other, anchor PointID) {
	// force the bounds checks for all three handles
	p.slot(other)
	p.slot(anchor)
	p.slot(id).Mirror = Mirror{Other: other, Anchor: anchor}
}

// ClearLinks removes the mirror constraints of all points. Relinking
// after a topology change starts from this blank slate, so links never
// accumulate stale state.
func (p *Pool) ClearLinks() {
	for i := range p.pts {
		p.pts[i].Mirror = NoMirror
	}
}

// All returns an iterator over all points in allocation order.
func (p *Pool) All() iter.Seq2[PointID, ControlPoint] {
	return func(yield func(PointID, ControlPoint) bool) {
		for i, cp := range p.pts {
			if !yield(PointID(i), cp) {
				return
			}
		}
	}
}
