// Package camera holds the eye/target/zoom camera and builds its
// view-projection matrix.
package camera

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"wireframe/geom"
	"wireframe/math3d"
)

// WorldUp is the reference up direction for the camera basis.
var WorldUp = mgl64.Vec3{0, 1, 0}

// fallbackUp is used instead of WorldUp when the gaze is parallel to it.
var fallbackUp = mgl64.Vec3{0, 0, 1}

// Camera is an eye looking at a target. It is a value; every operation
// returns the updated camera and leaves the receiver untouched.
type Camera struct {
	position geom.Point3D
	target   geom.Point3D
	zoom     float64
	zoomStep float64
}

// New returns a camera at position looking at target. Its zoom step is
// math3d.DefaultZoomStep.
func New(position, target geom.Point3D, zoom float64) Camera {
	return Camera{position: position, target: target, zoom: zoom, zoomStep: math3d.DefaultZoomStep}
}

func (c Camera) Position() geom.Point3D { return c.position }
func (c Camera) Target() geom.Point3D { return c.target }
func (c Camera) Zoom() float64 { return c.zoom }
func (c Camera) ZoomStep() float64 { return c.zoomStep }

// WithZoomStep sets the zoom used by Perspective while the zoom is zero
// or less. Frontends pass the same step they zoom by, so zooming out past
// zero holds the picture at the smallest step.
func (c Camera) WithZoomStep(step float64) Camera {
	c.zoomStep = step
	return c
}

// Move translates both position and target by delta.
func (c Camera) Move(delta mgl64.Vec3) Camera {
	c.position = c.position.Add(delta)
	c.target = c.target.Add(delta)
	return c
}

// ChangeZoom adds delta to the zoom. The result is not clamped; a zoom
// of zero or less is handled by Perspective.
func (c Camera) ChangeZoom(delta float64) Camera {
	c.zoom += delta
	return c
}

// RotateAboutAxis rotates position and target about the given world axis.
// The pivot is the world origin, not the eye or the target, so an
// off-origin camera swings around the scene origin.
func (c Camera) RotateAboutAxis(axis math3d.Axis, angle float64) Camera {
	r := math3d.Rotation(axis, angle)
	c.position = c.position.Transform(r)
	c.target = c.target.Transform(r)
	return c
}

// Gaze returns target - position.
func (c Camera) Gaze() mgl64.Vec3 { return c.target.Sub(c.position) }

// HandednessAxis returns WorldUp × gaze, or fallbackUp × gaze when the
// gaze is vertical.
func (c Camera) HandednessAxis() mgl64.Vec3 {
	n := c.Gaze()
	v := math3d.Cross(WorldUp, n)
	if v.Len() == 0 {
		v = math3d.Cross(fallbackUp, n)
	}
	return v
}

// Up returns gaze × handedness axis.
func (c Camera) Up() mgl64.Vec3 { return math3d.Cross(c.Gaze(), c.HandednessAxis()) }

// AlignAxes changes basis into camera space. Its first three rows are the
// normalised handedness axis, up vector and gaze.
func (c Camera) AlignAxes() math3d.Matrix {
	v := math3d.Normalize(c.HandednessAxis())
	u := math3d.Normalize(c.Up())
	n := math3d.Normalize(c.Gaze())
	return math3d.FromMat4(mgl64.Mat4FromRows(
		v.Vec4(0),
		u.Vec4(0),
		n.Vec4(0),
		mgl64.Vec4{0, 0, 0, 1},
	))
}

// TranslateToOrigin moves the world so the eye sits at the origin.
func (c Camera) TranslateToOrigin() math3d.Matrix {
	p := c.position
	return math3d.Translation(-p.X, -p.Y, -p.Z)
}

// Perspective returns the perspective divide for the current zoom, or for
// the zoom step when the zoom is zero or less.
func (c Camera) Perspective() math3d.Matrix {
	if c.zoom <= 0 {
		return math3d.Perspective(c.zoomStep)
	}
	return math3d.Perspective(c.zoom)
}

// CombinationMatrix returns the view-projection matrix
//
//	Perspective ⋅ HandednessFlip ⋅ AlignAxes ⋅ TranslateToOrigin
//
// The order matters; it is rebuilt from the current state on every call.
func (c Camera) CombinationMatrix() math3d.Matrix {
	return math3d.MultiplyChain(
		c.Perspective(),
		math3d.HandednessFlip(),
		c.AlignAxes(),
		c.TranslateToOrigin(),
	)
}

func (c Camera) String() string {
	return fmt.Sprintf("eye %v target %v zoom %g", c.position, c.target, c.zoom)
}
