package surface

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"honnef.co/go/curve"
)

func TestTessellate(t *testing.T) {
	m := unitMesh()
	rumple(m)
	m.SubdivideHorizontal(0.5)

	const n = 8
	tm := m.Tessellate(n, ModeBezier)
	if want := (n + 1) * (n + 1); len(tm.Positions) != want || len(tm.UVs) != want {
		t.Fatalf("got %d positions and %d UVs, want %d each", len(tm.Positions), len(tm.UVs), want)
	}
	if want := 2 * n * n; len(tm.Triangles) != want {
		t.Fatalf("got %d triangles, want %d", len(tm.Triangles), want)
	}

	// Vertices are the surface evaluated at their UV.
	for i, uv := range tm.UVs {
		diff(t, m.Compute(uv.X, uv.Y, ModeBezier), tm.Positions[i])
	}

	// The lattice covers the unit square corner to corner.
	diff(t, curve.Pt(0, 0), tm.UVs[0])
	diff(t, curve.Pt(1, 1), tm.UVs[len(tm.UVs)-1])

	// Triangle indices are in range and every lattice quad contributes
	// its two triangles.
	for _, tri := range tm.Triangles {
		for _, i := range tri {
			if i < 0 || i >= len(tm.Positions) {
				t.Fatalf("triangle index %d out of range", i)
			}
		}
	}
}

func TestTessellateLinearFlat(t *testing.T) {
	// In linear mode a flat mesh tessellates to the flat lattice no
	// matter how the inner control points are bent.
	m := unitMesh()
	pool := m.Points()
	p := m.Grid().At(0, 0)
	for _, i := range []int{5, 6, 9, 10} {
		pool.SetPos(p.CP[i], Pt3(0, 0, 5))
	}
	tm := m.Tessellate(4, ModeLinear)
	for i, uv := range tm.UVs {
		diff(t, Pt(uv.X, uv.Y), tm.Positions[i], cmpopts.EquateApprox(0, 1e-12))
	}
}

func TestTessellateInvalidResolution(t *testing.T) {
	m := unitMesh()
	defer func() {
		if recover() == nil {
			t.Error("Tessellate(0) did not panic")
		}
	}()
	m.Tessellate(0, ModeBezier)
}
