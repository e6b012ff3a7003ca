package math3d

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// DefaultZoomStep is the standard zoom increment. Perspective also uses
// it in place of a zoom that would make the divisor infinite or flip the
// image.
const DefaultZoomStep = 50.0

// Axis names one of the principal axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// Translation returns the identity with its last column set to (tx, ty, tz, 1).
func Translation(tx, ty, tz float64) Matrix {
	return FromMat4(mgl64.Translate3D(tx, ty, tz))
}

// RotationX rotates by angle radians about X, right-hand rule.
func RotationX(angle float64) Matrix { return FromMat4(mgl64.HomogRotate3DX(angle)) }

// RotationY rotates by angle radians about Y, right-hand rule.
func RotationY(angle float64) Matrix { return FromMat4(mgl64.HomogRotate3DY(angle)) }

// RotationZ rotates by angle radians about Z, right-hand rule.
func RotationZ(angle float64) Matrix { return FromMat4(mgl64.HomogRotate3DZ(angle)) }

// Rotation dispatches to RotationX, RotationY or RotationZ.
func Rotation(axis Axis, angle float64) Matrix {
	switch axis {
	case AxisX:
		return RotationX(angle)
	case AxisY:
		return RotationY(angle)
	case AxisZ:
		return RotationZ(angle)
	}
	panic(fmt.Sprintf("math3d: unknown axis %v", axis))
}

// Perspective returns the perspective divide matrix
//
//	[[1, 0, 0,      0]]
//	[[0, 1, 0,      0]]
//	[[0, 0, 1,      0]]
//	[[0, 0, 1/zoom, 0]]
//
// so that after the homogeneous divide x and y are scaled by zoom/z.
// A zoom <= 0 is replaced by DefaultZoomStep.
func Perspective(zoom float64) Matrix {
	if zoom <= 0 {
		zoom = DefaultZoomStep
	}
	m := mgl64.Ident4()
	m.Set(3, 2, 1/zoom)
	m.Set(3, 3, 0)
	return FromMat4(m)
}

// HandednessFlip mirrors X, converting between left- and right-handed
// coordinates.
func HandednessFlip() Matrix { return FromMat4(mgl64.Scale3D(-1, 1, 1)) }
