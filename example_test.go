package surface_test

import (
	"fmt"

	"honnef.co/go/surface"
)

func Example() {
	// A flat surface over the unit square.
	m := surface.NewMesh(
		surface.Pt(0, 1), surface.Pt(1, 1),
		surface.Pt(0, 0), surface.Pt(1, 0),
	)
	fmt.Println(m.Compute(0.5, 0.5, surface.ModeLinear))

	// Split it into a left and a right half.
	m.SubdivideVertical(0.5)
	for p := range m.Grid().Cells() {
		fmt.Println(p.Domain)
	}

	// Dragging a handle with mirroring on repositions its linked
	// partner by reflection through the shared anchor. At the mesh's
	// bottom-left corner the two adjacent handles mirror each other.
	left := m.Grid().At(0, 0)
	m.Points().Move(left.CP[1], surface.Pt3(0.1, 0, 0.25), true)
	fmt.Println(m.Points().Pos(left.CP[4]))

	// Output:
	// (0.5, 0.5, 0)
	// [0, 0.5]×[0, 1]
	// [0.5, 1]×[0, 1]
	// (-0.1, 0, -0.25)
}
