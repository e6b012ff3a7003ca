// Package scene keeps the ordered list of shapes and projects them
// through a camera into 2D polylines.
package scene

import (
	"image/color"

	"wireframe/geom"
	"wireframe/math3d"
)

// Scene is an ordered list of shapes. Insertion order is draw order.
type Scene struct {
	shapes []geom.Shape
}

// New returns a scene holding shapes in the given order.
func New(shapes ...geom.Shape) *Scene {
	return &Scene{shapes: append([]geom.Shape(nil), shapes...)}
}

// Add appends s.
func (s *Scene) Add(shape geom.Shape) { s.shapes = append(s.shapes, shape) }

// Shapes returns the shapes in draw order.
func (s *Scene) Shapes() []geom.Shape { return append([]geom.Shape(nil), s.shapes...) }

// Len returns the number of shapes.
func (s *Scene) Len() int { return len(s.shapes) }

// Point2D is a point in screen space, before viewport mapping.
type Point2D struct {
	X, Y float64
}

// Polyline is the projected outline of one face. It is drawn as a closed loop.
type Polyline []Point2D

// Projection is one shape's projected faces.
type Projection struct {
	Polylines []Polyline
	Color     color.RGBA
}

// Viewer supplies the view-projection matrix. camera.Camera implements it.
type Viewer interface {
	CombinationMatrix() math3d.Matrix
}

// Project maps every point of every face through v and keeps x and y
// after the homogeneous divide. Nothing is clipped.
func (s *Scene) Project(v Viewer) []Projection {
	m := v.CombinationMatrix()
	out := make([]Projection, 0, len(s.shapes))
	for _, shape := range s.shapes {
		faces := shape.Faces()
		p := Projection{
			Polylines: make([]Polyline, 0, len(faces)),
			Color:     shape.Color(),
		}
		for _, f := range faces {
			p.Polylines = append(p.Polylines, ProjectFace(m, f))
		}
		out = append(out, p)
	}
	return out
}

// ProjectFace maps the points of f through the view-projection matrix m.
func ProjectFace(m math3d.Matrix, f geom.Face) Polyline {
	pts := f.Points()
	line := make(Polyline, len(pts))
	for i, pt := range pts {
		v := math3d.HomogeneousDivide(math3d.Multiply(m, pt.Homogeneous()))
		line[i] = Point2D{v[0], v[1]}
	}
	return line
}
