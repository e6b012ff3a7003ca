package math3d

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Dot returns the dot product of xs and ys.
// It panics if the lengths differ.
func Dot(xs, ys []float64) float64 {
	if len(xs) != len(ys) {
		panic(&DimensionError{
			Op:   "Dot",
			Want: "equal lengths",
			Have: fmt.Sprintf("%d and %d", len(xs), len(ys)),
		})
	}
	var d float64
	for i := range xs {
		d += xs[i] * ys[i]
	}
	return d
}

// Cross returns u × v.
func Cross(u, v mgl64.Vec3) mgl64.Vec3 { return u.Cross(v) }

// Length returns the Euclidean norm of v.
func Length(v []float64) float64 { return math.Sqrt(Dot(v, v)) }

// Normalize returns v scaled to unit length.
// The zero vector is returned unchanged.
func Normalize(v mgl64.Vec3) mgl64.Vec3 {
	if v.Len() == 0 {
		return v
	}
	return v.Normalize()
}
