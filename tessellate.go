package surface

import (
	"fmt"

	"honnef.co/go/curve"
)

// TriMesh is a triangulated sampling of a [Mesh]: the display-ready
// product that per-frame rendering consumes. Vertices lie on a regular
// (n+1)×(n+1) lattice of parametric samples; UVs carry the lattice
// coordinates so textures can be mapped through the warp.
type TriMesh struct {
	// Positions holds the evaluated surface points, row-major from
	// (u, v) = (0, 0) to (1, 1).
	Positions []Point
	// UVs holds the parametric coordinates of each vertex.
	UVs []curve.Point
	// Triangles indexes Positions and UVs; every lattice quad yields
	// two triangles with counter-clockwise winding in UV space.
	Triangles [][3]int
}

// Tessellate evaluates the surface on a regular n×n quad lattice and
// returns the resulting triangle mesh. It panics if n < 1.
//
// The lattice resolution is independent of the patch grid: patches are
// evaluated through [Mesh.Compute], so a vertex on a patch boundary is
// produced by whichever patch wins the evaluation scan. Subdivision
// preserves the surface exactly, which keeps tessellations stable
// across topology edits.
func (m *Mesh) Tessellate(n int, mode Mode) *TriMesh {
	if n < 1 {
		panic(fmt.Sprintf("invalid tessellation resolution %d", n))
	}
	tm := &TriMesh{
		Positions: make([]Point, 0, (n+1)*(n+1)),
		UVs:       make([]curve.Point, 0, (n+1)*(n+1)),
		Triangles: make([][3]int, 0, 2*n*n),
	}
	for row := range n + 1 {
		v := float64(row) / float64(n)
		for col := range n + 1 {
			u := float64(col) / float64(n)
			tm.Positions = append(tm.Positions, m.Compute(u, v, mode))
			tm.UVs = append(tm.UVs, curve.Pt(u, v))
		}
	}
	for row := range n {
		for col := range n {
			i := row*(n+1) + col
			j := i + n + 1
			tm.Triangles = append(tm.Triangles,
				[3]int{i, i + 1, j + 1},
				[3]int{i, j + 1, j},
			)
		}
	}
	return tm
}
