package surface

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
	"honnef.co/go/curve"
)

// WarpImage renders src warped through the mesh into dst: the mesh's UV
// space is mapped onto src's bounds (u to the right, v upwards, so that
// v=1 is the top row of the image), the surface is tessellated into n×n
// quads, and each triangle is drawn by transforming the source
// bilinearly under a destination mask covering the triangle. The X and
// Y coordinates of evaluated surface points are dst pixel coordinates;
// Z is ignored.
//
// A mesh whose points form the identity lattice over dst's bounds
// reproduces src (up to interpolation at triangle seams). Degenerate
// triangles, such as those produced by subdividing exactly on an
// existing boundary, cover no pixels and are skipped.
func WarpImage(dst draw.Image, src image.Image, m *Mesh, n int, mode Mode) {
	tm := m.Tessellate(n, mode)
	sb := src.Bounds()
	sw, sh := float64(sb.Dx()), float64(sb.Dy())

	srcPts := make([]curve.Point, len(tm.UVs))
	dstPts := make([]curve.Point, len(tm.Positions))
	for i, uv := range tm.UVs {
		srcPts[i] = curve.Pt(float64(sb.Min.X)+uv.X*sw, float64(sb.Min.Y)+(1-uv.Y)*sh)
		dstPts[i] = curve.Pt(tm.Positions[i].X, tm.Positions[i].Y)
	}

	for _, tri := range tm.Triangles {
		aff, ok := affineFromTriangle(
			srcPts[tri[0]], srcPts[tri[1]], srcPts[tri[2]],
			dstPts[tri[0]], dstPts[tri[1]], dstPts[tri[2]],
		)
		if !ok {
			continue
		}
		mask, ok := triangleMask(dst.Bounds(), dstPts[tri[0]], dstPts[tri[1]], dstPts[tri[2]])
		if !ok {
			continue
		}
		co := aff.Coefficients()
		draw.ApproxBiLinear.Transform(dst,
			f64.Aff3{co[0], co[2], co[4], co[1], co[3], co[5]},
			src, sb, draw.Src, &draw.Options{DstMask: mask})
	}
}

// affineFromTriangle returns the affine transform mapping the triangle
// (s0, s1, s2) onto (d0, d1, d2). It reports false if the source
// triangle is degenerate.
func affineFromTriangle(s0, s1, s2, d0, d1, d2 curve.Point) (curve.Affine, bool) {
	e1 := s1.Sub(s0)
	e2 := s2.Sub(s0)
	det := e1.Cross(e2)
	if math.Abs(det) < 1e-12 {
		return curve.Affine{}, false
	}
	f1 := d1.Sub(d0)
	f2 := d2.Sub(d0)
	inv := 1 / det
	n0 := (f1.X*e2.Y - f2.X*e1.Y) * inv
	n1 := (f1.Y*e2.Y - f2.Y*e1.Y) * inv
	n2 := (f2.X*e1.X - f1.X*e2.X) * inv
	n3 := (f2.Y*e1.X - f1.Y*e2.X) * inv
	n4 := d0.X - n0*s0.X - n2*s0.Y
	n5 := d0.Y - n1*s0.X - n3*s0.Y
	return curve.NewAffine([6]float64{n0, n1, n2, n3, n4, n5}), true
}

// triangleMask rasterizes the triangle into an alpha mask over the
// intersection of its bounding box with clip, sampling at pixel
// centers. Edges are inclusive, so triangles sharing an edge jointly
// cover it without gaps. It reports false if no pixels are covered.
func triangleMask(clip image.Rectangle, p0, p1, p2 curve.Point) (*image.Alpha, bool) {
	area := p1.Sub(p0).Cross(p2.Sub(p0))
	if area == 0 {
		return nil, false
	}
	if area < 0 {
		p1, p2 = p2, p1
	}

	bbox := image.Rect(
		int(math.Floor(min(p0.X, p1.X, p2.X))),
		int(math.Floor(min(p0.Y, p1.Y, p2.Y))),
		int(math.Ceil(max(p0.X, p1.X, p2.X))),
		int(math.Ceil(max(p0.Y, p1.Y, p2.Y))),
	).Intersect(clip)
	if bbox.Empty() {
		return nil, false
	}

	edge := func(a, b curve.Point, x, y float64) float64 {
		return (b.X-a.X)*(y-a.Y) - (b.Y-a.Y)*(x-a.X)
	}
	mask := image.NewAlpha(bbox)
	covered := false
	for y := bbox.Min.Y; y < bbox.Max.Y; y++ {
		fy := float64(y) + 0.5
		for x := bbox.Min.X; x < bbox.Max.X; x++ {
			fx := float64(x) + 0.5
			if edge(p0, p1, fx, fy) >= 0 && edge(p1, p2, fx, fy) >= 0 && edge(p2, p0, fx, fy) >= 0 {
				mask.SetAlpha(x, y, color.Alpha{A: 0xff})
				covered = true
			}
		}
	}
	return mask, covered
}
