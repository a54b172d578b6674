package surface

import "fmt"

// SerializedMesh is the JSON-serializable snapshot of a [Mesh]. Control
// points are renumbered densely: cells are traversed in row-major order
// and each cell's sixteen handles in net order, so a point's reference
// id is the position at which it was first encountered. Sharing is
// preserved because a shared point is encountered once but referenced
// from several nets.
type SerializedMesh struct {
	Rows          int                      `json:"rows"`
	Cols          int                      `json:"cols"`
	Patches       []SerializedPatch        `json:"patches"`
	ControlPoints []SerializedControlPoint `json:"controlPoints"`
}

type SerializedPatch struct {
	ControlPoints [16]int          `json:"controlPoints"`
	Domain        SerializedDomain `json:"domain"`
}

type SerializedDomain struct {
	U0 float64 `json:"u0"`
	V0 float64 `json:"v0"`
	U1 float64 `json:"u1"`
	V1 float64 `json:"v1"`
}

type SerializedControlPoint struct {
	X           float64           `json:"x"`
	Y           float64           `json:"y"`
	Z           float64           `json:"z"`
	MirrorPoint *SerializedMirror `json:"mirrorPoint"`
}

type SerializedMirror struct {
	Other     int `json:"other"`
	Reference int `json:"reference"`
}

// Save snapshots the mesh. The result round-trips through
// [Mesh.Restore]: surface shape, point sharing, and the mirror
// constraint graph are all reproduced, though not the original pool
// handles. Points no longer referenced by any patch are dropped.
func (m *Mesh) Save() *SerializedMesh {
	dense := make(map[PointID]int)
	var order []PointID
	ref := func(id PointID) int {
		if i, ok := dense[id]; ok {
			return i
		}
		i := len(order)
		dense[id] = i
		order = append(order, id)
		return i
	}

	s := &SerializedMesh{
		Rows: m.grid.Rows(),
		Cols: m.grid.Cols(),
	}
	for cell := range m.grid.Cells() {
		sp := SerializedPatch{
			Domain: SerializedDomain{
				U0: cell.Domain.U0,
				V0: cell.Domain.V0,
				U1: cell.Domain.U1,
				V1: cell.Domain.V1,
			},
		}
		for i, id := range cell.CP {
			sp.ControlPoints[i] = ref(id)
		}
		s.Patches = append(s.Patches, sp)
	}

	s.ControlPoints = make([]SerializedControlPoint, len(order))
	for i, id := range order {
		pt := m.pool.Pos(id)
		scp := SerializedControlPoint{X: pt.X, Y: pt.Y, Z: pt.Z}
		if l, ok := m.pool.MirrorOf(id); ok {
			// Mirror links only ever target points that are part of
			// some net, so both references are present in the dense
			// numbering.
			scp.MirrorPoint = &SerializedMirror{
				Other:     ref(l.Other),
				Reference: ref(l.Anchor),
			}
		}
		s.ControlPoints[i] = scp
	}
	return s
}

// Restore replaces the mesh's entire state with the snapshot: points are
// reconstructed first, then mirror links are applied by reference id,
// then the patches are rebuilt into a freshly sized grid. Restore
// returns an error and leaves the mesh untouched if the snapshot's
// reference graph is inconsistent.
func (m *Mesh) Restore(s *SerializedMesh) error {
	if s.Rows < 1 || s.Cols < 1 {
		return fmt.Errorf("invalid grid size %d×%d", s.Rows, s.Cols)
	}
	if len(s.Patches) != s.Rows*s.Cols {
		return fmt.Errorf("got %d patches, expected %d for a %d×%d grid", len(s.Patches), s.Rows*s.Cols, s.Rows, s.Cols)
	}

	var pool Pool
	for _, scp := range s.ControlPoints {
		pool.Alloc(Pt3(scp.X, scp.Y, scp.Z))
	}
	valid := func(ref int) bool { return ref >= 0 && ref < len(s.ControlPoints) }
	for i, scp := range s.ControlPoints {
		if scp.MirrorPoint == nil {
			continue
		}
		if !valid(scp.MirrorPoint.Other) || !valid(scp.MirrorPoint.Reference) {
			return fmt.Errorf("control point %d has a mirror link to nonexistent points (%d, %d)", i, scp.MirrorPoint.Other, scp.MirrorPoint.Reference)
		}
		pool.Link(PointID(i), PointID(scp.MirrorPoint.Other), PointID(scp.MirrorPoint.Reference))
	}

	grid := NewGrid[*Patch](s.Rows, s.Cols)
	for i, sp := range s.Patches {
		p := &Patch{
			Domain: Domain{
				U0: sp.Domain.U0,
				V0: sp.Domain.V0,
				U1: sp.Domain.U1,
				V1: sp.Domain.V1,
			},
		}
		for j, ref := range sp.ControlPoints {
			if !valid(ref) {
				return fmt.Errorf("patch %d references nonexistent control point %d", i, ref)
			}
			p.CP[j] = PointID(ref)
		}
		grid.Set(i/s.Cols, i%s.Cols, p)
	}

	m.pool = pool
	m.grid = grid
	return nil
}
