package surface

import "fmt"

// Bernstein evaluates the i-th cubic Bernstein basis polynomial at t.
//
// The four polynomials are (1−t)³, 3t(1−t)², 3t²(1−t), and t³; for any
// t they sum to one, so blending four points with them yields a convex
// combination. Bernstein panics if i is not in [0, 3].
func Bernstein(i int, t float64) float64 {
	mt := 1 - t
	switch i {
	case 0:
		return mt * mt * mt
	case 1:
		return 3 * t * mt * mt
	case 2:
		return 3 * t * t * mt
	case 3:
		return t * t * t
	default:
		panic(fmt.Sprintf("invalid Bernstein basis index %d", i))
	}
}

// BernsteinDeriv evaluates the first derivative of the i-th cubic
// Bernstein basis polynomial at t. It panics if i is not in [0, 3].
func BernsteinDeriv(i int, t float64) float64 {
	mt := 1 - t
	switch i {
	case 0:
		return -3 * mt * mt
	case 1:
		return 3*mt*mt - 6*t*mt
	case 2:
		return 6*t*mt - 3*t*t
	case 3:
		return 3 * t * t
	default:
		panic(fmt.Sprintf("invalid Bernstein basis index %d", i))
	}
}
