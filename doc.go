// Package surface implements composite bicubic Bézier surfaces for
// interactive image warping: a rectangular texture is stretched over a
// deformable grid of degree-3×3 Bézier patches and rasterized as a
// UV-mapped triangle mesh.
//
// # Meshes and patches
//
// The central type is [Mesh], a grid of [Patch] values whose parametric
// domains tile the unit square [0, 1]². A mesh starts as a single patch
// built from four corners ([NewMesh]) and grows only through
// [Mesh.SubdivideHorizontal] and [Mesh.SubdivideVertical], which split
// an entire row or column of patches along a parametric line using
// exact de Casteljau subdivision ([CubicBez.Split]) — the surface shape
// is preserved to floating point accuracy across splits.
//
// Control points live in a [Pool] and are addressed by [PointID].
// Patches on either side of a grid boundary store the same IDs along
// that boundary, so moving a shared point deforms both patches; there
// is no synchronization step. Tangent handles adjacent to shared
// corners additionally carry [Mirror] constraints, soft links applied
// only by mirrored moves ([Pool.Move]), which keep handle pairs
// collinear through the corner and thus keep the surface visually
// smooth while dragging. The constraint graph is rebuilt from grid
// adjacency after every topology change.
//
// # Evaluation and output
//
// [Mesh.Compute] evaluates the surface at global (u, v), either as the
// full tensor-product Bernstein blend ([ModeBezier]) or as a bilinear
// blend of patch corners ([ModeLinear], the editor's cheap preview).
// [Mesh.Tessellate] samples a regular lattice into a [TriMesh], and
// [WarpImage] rasterizes a source texture through the warped surface
// into any draw.Image.
//
// [Mesh.Save] and [Mesh.Restore] snapshot the complete entity graph —
// positions, sharing topology, and mirror links — in a JSON-friendly
// form with dense integer references.
//
// The package is synchronous and single-threaded by design: meshes are
// mutated between frames by an editor's event loop, and no operation
// blocks or yields.
package surface
