package surface

import "fmt"

// Mesh is the full editable surface: a grid of bicubic patches whose
// domains tile the unit parametric square, together with the pool of
// control points the patches share. Grid-adjacent patches hold the same
// PointIDs along their common boundary, so dragging a boundary point
// deforms both patches at once; mirror constraints between tangent
// handles keep the surface visually smooth across boundaries during
// mirrored edits.
//
// A mesh starts out as a single patch spanning [0, 1]² and grows by
// subdivision only. All operations are synchronous and none of them is
// safe for concurrent use.
type Mesh struct {
	pool Pool
	grid *Grid[*Patch]
}

// NewMesh returns a mesh consisting of a single patch whose control net
// is the bilinear lattice spanned by the four corners.
func NewMesh(topLeft, topRight, bottomLeft, bottomRight Point) *Mesh {
	m := &Mesh{}
	m.Init(topLeft, topRight, bottomLeft, bottomRight)
	return m
}

// Init resets the mesh to a single patch spanned by the four corners,
// discarding all existing patches and points.
func (m *Mesh) Init(topLeft, topRight, bottomLeft, bottomRight Point) {
	m.pool = Pool{}
	m.grid = NewGrid[*Patch](1, 1)
	p := &Patch{Domain: UnitDomain}
	for y := range 4 {
		t := float64(y) / 3
		for x := range 4 {
			s := float64(x) / 3
			bottom := bottomLeft.Lerp(bottomRight, s)
			top := topLeft.Lerp(topRight, s)
			p.CP[y*4+x] = m.pool.Alloc(bottom.Lerp(top, t))
		}
	}
	m.grid.Set(0, 0, p)
	m.relink()
}

// Points returns the mesh's control point pool. Hosts use it to read
// handle positions and to apply drag moves via [Pool.Move].
func (m *Mesh) Points() *Pool {
	return &m.pool
}

// Grid returns the mesh's patch grid.
func (m *Mesh) Grid() *Grid[*Patch] {
	return m.grid
}

// Compute evaluates the surface at the global parametric coordinates
// (u, v) in [0, 1]². The patches are scanned in row-major order and the
// first whose domain contains the point evaluates it; points exactly on
// a shared boundary therefore resolve deterministically to the earlier
// patch. Compute panics if no domain contains the point, which can only
// happen if the tiling invariant has been corrupted.
func (m *Mesh) Compute(u, v float64, mode Mode) Point {
	for row := range m.grid.Rows() {
		for col := range m.grid.Cols() {
			if cell := m.grid.At(row, col); cell.Domain.Contains(u, v) {
				return cell.Compute(&m.pool, u, v, mode)
			}
		}
	}
	panic(fmt.Sprintf("no patch domain contains (%g, %g): the mesh tiling invariant is broken", u, v))
}

// Update recomputes mode-derived point positions. In [ModeLinear] only
// the four corners of each patch are free; the remaining twelve points
// of every net are snapped to the bilinear lattice of its corners, so
// that outline handles follow corner drags. Update is a no-op in
// [ModeBezier], where every point is free. Hosts call it once per frame
// before evaluating, after any direct point mutation.
func (m *Mesh) Update(mode Mode) {
	if mode != ModeLinear {
		return
	}
	for cell := range m.grid.Cells() {
		bl := m.pool.Pos(cell.CP[netBottomLeft])
		br := m.pool.Pos(cell.CP[netBottomRight])
		tl := m.pool.Pos(cell.CP[netTopLeft])
		tr := m.pool.Pos(cell.CP[netTopRight])
		for y := range 4 {
			t := float64(y) / 3
			for x := range 4 {
				i := y*4 + x
				switch i {
				case netBottomLeft, netBottomRight, netTopLeft, netTopRight:
					continue
				}
				s := float64(x) / 3
				m.pool.SetPos(cell.CP[i], bl.Lerp(br, s).Lerp(tl.Lerp(tr, s), t))
			}
		}
	}
}

// rowContaining returns the index of the grid row whose v-span contains
// v. Rows partition [0, 1]; a v on a shared row boundary resolves to
// the lower row.
func (m *Mesh) rowContaining(v float64) int {
	for row := range m.grid.Rows() {
		d := m.grid.At(row, 0).Domain
		if v >= d.V0 && v <= d.V1 {
			return row
		}
	}
	panic(fmt.Sprintf("no grid row contains v=%g", v))
}

// colContaining returns the index of the grid column whose u-span
// contains u.
func (m *Mesh) colContaining(u float64) int {
	for col := range m.grid.Cols() {
		d := m.grid.At(0, col).Domain
		if u >= d.U0 && u <= d.U1 {
			return col
		}
	}
	panic(fmt.Sprintf("no grid column contains u=%g", u))
}

// SubdivideHorizontal splits every patch in the row containing the
// global parameter v into a bottom and a top patch along v, replacing
// the row with two rows. The cut reproduces the surface exactly: each
// patch's four v-direction rails are split with de Casteljau, points
// away from the cut keep their identity (and thus their sharing with
// neighboring rows), and the freshly created boundary points are shared
// between the two halves as well as with the halves of the previously
// split cell to the left. All mirror constraints are rebuilt afterwards.
//
// A v exactly on an existing row boundary (including 0 and 1) is not an
// error, but splits off a zero-height row of degenerate patches.
func (m *Mesh) SubdivideHorizontal(v float64) {
	row := m.rowContaining(v)
	cols := m.grid.Cols()
	bottoms := make([]*Patch, cols)
	tops := make([]*Patch, cols)
	for c := range cols {
		cell := m.grid.At(row, c)
		t := (v - cell.Domain.V0) / cell.Domain.Height()
		bottomDom, topDom := cell.Domain.SplitV(v)
		bp := &Patch{Domain: bottomDom}
		tp := &Patch{Domain: topDom}

		var low, high [4]CubicBez
		for x := range 4 {
			low[x], high[x] = cell.railV(&m.pool, x).Split(t)
		}

		for x := range 4 {
			// The outermost rows are untouched by the cut; keeping the
			// original IDs preserves sharing with the rows outside the
			// split.
			bp.CP[x] = cell.CP[x]
			tp.CP[12+x] = cell.CP[12+x]

			if c > 0 && x == 0 {
				// Column 0 is the left cell's column 3.
				bp.CP[4] = bottoms[c-1].CP[7]
				bp.CP[8] = bottoms[c-1].CP[11]
				bp.CP[12] = bottoms[c-1].CP[15]
				tp.CP[4] = tops[c-1].CP[7]
				tp.CP[8] = tops[c-1].CP[11]
			} else {
				bp.CP[4+x] = m.pool.Alloc(low[x].P1)
				bp.CP[8+x] = m.pool.Alloc(low[x].P2)
				bp.CP[12+x] = m.pool.Alloc(low[x].P3)
				tp.CP[4+x] = m.pool.Alloc(high[x].P1)
				tp.CP[8+x] = m.pool.Alloc(high[x].P2)
			}
			// The cut row itself is shared between both halves.
			tp.CP[x] = bp.CP[12+x]
		}
		bottoms[c] = bp
		tops[c] = tp
	}

	m.grid.InsertRow(row)
	m.grid.InsertRow(row)
	for c := range cols {
		m.grid.Set(row, c, bottoms[c])
		m.grid.Set(row+1, c, tops[c])
	}
	m.grid.DeleteRow(row + 2)
	m.relink()
}

// SubdivideVertical splits every patch in the column containing the
// global parameter u into a left and a right patch along u, replacing
// the column with two columns. It is the transpose of
// [Mesh.SubdivideHorizontal].
func (m *Mesh) SubdivideVertical(u float64) {
	col := m.colContaining(u)
	rows := m.grid.Rows()
	lefts := make([]*Patch, rows)
	rights := make([]*Patch, rows)
	for r := range rows {
		cell := m.grid.At(r, col)
		s := (u - cell.Domain.U0) / cell.Domain.Width()
		leftDom, rightDom := cell.Domain.SplitU(u)
		lp := &Patch{Domain: leftDom}
		rp := &Patch{Domain: rightDom}

		var low, high [4]CubicBez
		for y := range 4 {
			low[y], high[y] = cell.railU(&m.pool, y).Split(s)
		}

		for y := range 4 {
			lp.CP[y*4] = cell.CP[y*4]
			rp.CP[y*4+3] = cell.CP[y*4+3]

			if r > 0 && y == 0 {
				// Row 0 is the lower cell's row 3.
				lp.CP[1] = lefts[r-1].CP[13]
				lp.CP[2] = lefts[r-1].CP[14]
				lp.CP[3] = lefts[r-1].CP[15]
				rp.CP[1] = rights[r-1].CP[13]
				rp.CP[2] = rights[r-1].CP[14]
			} else {
				lp.CP[y*4+1] = m.pool.Alloc(low[y].P1)
				lp.CP[y*4+2] = m.pool.Alloc(low[y].P2)
				lp.CP[y*4+3] = m.pool.Alloc(low[y].P3)
				rp.CP[y*4+1] = m.pool.Alloc(high[y].P1)
				rp.CP[y*4+2] = m.pool.Alloc(high[y].P2)
			}
			rp.CP[y*4] = lp.CP[y*4+3]
		}
		lefts[r] = lp
		rights[r] = rp
	}

	m.grid.InsertCol(col)
	m.grid.InsertCol(col)
	for r := range rows {
		m.grid.Set(r, col, lefts[r])
		m.grid.Set(r, col+1, rights[r])
	}
	m.grid.DeleteCol(col + 2)
	m.relink()
}

// relink rebuilds all mirror constraints from the current grid
// topology. It runs after every topology change and always starts from
// scratch; incremental updates invite stale links.
//
// Only the eight non-corner boundary handles of each net carry
// constraints. Each such handle is adjacent to exactly one corner of
// its patch; if the grid neighbor across the perpendicular boundary at
// that corner exists, the handle is linked to the neighbor's opposing
// handle, anchored at the shared corner, which keeps the two handles
// collinear through the corner during mirrored drags. At an exterior
// corner of the whole mesh, where both perpendicular neighbors are
// missing, the patch's own two handles at that corner are linked to
// each other instead, acting as each other's virtual neighbor.
func (m *Mesh) relink() {
	m.pool.ClearLinks()
	for r := range m.grid.Rows() {
		for c := range m.grid.Cols() {
			cell := m.grid.At(r, c)
			left, hasLeft := m.grid.Left(r, c)
			right, hasRight := m.grid.Right(r, c)
			below, hasBelow := m.grid.Below(r, c)
			above, hasAbove := m.grid.Above(r, c)

			if hasLeft {
				m.pool.Link(cell.CP[1], left.CP[2], cell.CP[0])
				m.pool.Link(cell.CP[13], left.CP[14], cell.CP[12])
			}
			if hasRight {
				m.pool.Link(cell.CP[2], right.CP[1], cell.CP[3])
				m.pool.Link(cell.CP[14], right.CP[13], cell.CP[15])
			}
			if hasBelow {
				m.pool.Link(cell.CP[4], below.CP[8], cell.CP[0])
				m.pool.Link(cell.CP[7], below.CP[11], cell.CP[3])
			}
			if hasAbove {
				m.pool.Link(cell.CP[8], above.CP[4], cell.CP[12])
				m.pool.Link(cell.CP[11], above.CP[7], cell.CP[15])
			}

			if !hasLeft && !hasBelow {
				m.pool.Link(cell.CP[1], cell.CP[4], cell.CP[0])
				m.pool.Link(cell.CP[4], cell.CP[1], cell.CP[0])
			}
			if !hasRight && !hasBelow {
				m.pool.Link(cell.CP[2], cell.CP[7], cell.CP[3])
				m.pool.Link(cell.CP[7], cell.CP[2], cell.CP[3])
			}
			if !hasLeft && !hasAbove {
				m.pool.Link(cell.CP[13], cell.CP[8], cell.CP[12])
				m.pool.Link(cell.CP[8], cell.CP[13], cell.CP[12])
			}
			if !hasRight && !hasAbove {
				m.pool.Link(cell.CP[14], cell.CP[11], cell.CP[15])
				m.pool.Link(cell.CP[11], cell.CP[14], cell.CP[15])
			}
		}
	}
}
