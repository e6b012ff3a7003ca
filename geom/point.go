package geom

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"wireframe/math3d"
)

// Point3D is a point in world space.
type Point3D struct {
	X, Y, Z float64
}

// Pt is shorthand for Point3D{x, y, z}.
func Pt(x, y, z float64) Point3D { return Point3D{x, y, z} }

// FromVec3 converts v to a point.
func FromVec3(v mgl64.Vec3) Point3D { return Point3D{v[0], v[1], v[2]} }

// Vector returns p as a 3-vector.
func (p Point3D) Vector() mgl64.Vec3 { return mgl64.Vec3{p.X, p.Y, p.Z} }

// Homogeneous returns the column [x y z 1].
func (p Point3D) Homogeneous() math3d.Matrix { return math3d.Column(p.X, p.Y, p.Z, 1) }

// Add translates p by d.
func (p Point3D) Add(d mgl64.Vec3) Point3D { return FromVec3(p.Vector().Add(d)) }

// Sub returns the vector from q to p.
func (p Point3D) Sub(q Point3D) mgl64.Vec3 { return p.Vector().Sub(q.Vector()) }

// Transform applies the 4x4 matrix m and divides out w.
func (p Point3D) Transform(m math3d.Matrix) Point3D {
	v := math3d.HomogeneousDivide(math3d.Multiply(m, p.Homogeneous()))
	return Point3D{v[0], v[1], v[2]}
}

// ApproxEqual reports whether p and q are within epsilon on every axis.
func (p Point3D) ApproxEqual(q Point3D, epsilon float64) bool {
	return math.Abs(p.X-q.X) <= epsilon &&
		math.Abs(p.Y-q.Y) <= epsilon &&
		math.Abs(p.Z-q.Z) <= epsilon
}

func (p Point3D) String() string { return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z) }
