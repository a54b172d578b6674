package surface

import (
	"fmt"
	"math"
)

// Point is a point in 3D space. The surface editor projects onto the
// XY plane, so Z is commonly zero, but all arithmetic carries it.
type Point struct {
	X float64
	Y float64
	Z float64
}

// Pt returns the point (x, y, 0).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Pt3 returns the point (x, y, z).
func Pt3(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// Splat returns the point's x, y, and z coordinates.
func (pt Point) Splat() (float64, float64, float64) {
	return pt.X, pt.Y, pt.Z
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g, %g)", pt.X, pt.Y, pt.Z)
}

func (pt Point) Translate(o Vec3) Point {
	return Point{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
		Z: pt.Z + o.Z,
	}
}

// Sub computes pt−o.
// To subtract a vector from pt, use Translate and negate the vector.
func (pt Point) Sub(o Point) Vec3 {
	return Vec3{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
		Z: pt.Z - o.Z,
	}
}

// Lerp linearly interpolates between two points.
func (pt Point) Lerp(o Point, t float64) Point {
	return Point(Vec3(pt).Lerp(Vec3(o), t))
}

// Midpoint returns the midpoint of two points.
func (pt Point) Midpoint(o Point) Point {
	return Point{
		X: 0.5 * (pt.X + o.X),
		Y: 0.5 * (pt.Y + o.Y),
		Z: 0.5 * (pt.Z + o.Z),
	}
}

// Reflect returns the point-reflection of pt through the anchor, that is
// the point o for which anchor is the midpoint of pt and o.
func (pt Point) Reflect(anchor Point) Point {
	return Point{
		X: 2*anchor.X - pt.X,
		Y: 2*anchor.Y - pt.Y,
		Z: 2*anchor.Z - pt.Z,
	}
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	return pt.Sub(o).Hypot()
}

// DistanceSquared returns the squared euclidean distance between two points.
func (pt Point) DistanceSquared(o Point) float64 {
	return pt.Sub(o).Hypot2()
}

// IsInf reports whether at least one coordinate is infinite.
func (pt Point) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0) || math.IsInf(pt.Z, 0)
}

// IsNaN reports whether at least one coordinate is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y) || math.IsNaN(pt.Z)
}
