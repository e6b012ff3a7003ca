package geom

import (
	"fmt"
	"image/color"
)

// DefaultColor is the stroke colour used when none is given.
var DefaultColor = color.RGBA{0x11, 0x11, 0x11, 0xff}

// Shape is anything that can be drawn as a list of face outlines.
type Shape interface {
	Faces() []Face
	Color() color.RGBA
}

// Face is a closed loop of at least three points. Point order is the
// stroke order; it carries no winding meaning.
type Face struct {
	points []Point3D
}

// NewFace returns the face through points. It panics if there are fewer
// than three.
func NewFace(points ...Point3D) Face {
	if len(points) < 3 {
		panic(fmt.Sprintf("geom: face needs at least 3 points, have %d", len(points)))
	}
	return Face{points: append([]Point3D(nil), points...)}
}

// Points returns a copy of the loop.
func (f Face) Points() []Point3D { return append([]Point3D(nil), f.points...) }

// Len returns the number of points.
func (f Face) Len() int { return len(f.points) }

// Block is an axis-aligned box spanned by two opposite corners.
type Block struct {
	p1, p2 Point3D
	color  color.RGBA
}

// NewBlock returns the box with corners p1 and p2.
func NewBlock(p1, p2 Point3D, c color.RGBA) Block {
	return Block{p1: p1, p2: p2, color: c}
}

// Corners returns the two defining corners.
func (b Block) Corners() (Point3D, Point3D) { return b.p1, b.p2 }

// Color returns the stroke colour.
func (b Block) Color() color.RGBA { return b.color }

// Faces derives the six quads of b: bottom, top, front, back, left, right
// with respect to the first corner.
func (b Block) Faces() []Face {
	p1, p2 := b.p1, b.p2
	return []Face{
		NewFace(p1, Pt(p1.X, p1.Y, p2.Z), Pt(p2.X, p1.Y, p2.Z), Pt(p2.X, p1.Y, p1.Z)),
		NewFace(Pt(p1.X, p2.Y, p1.Z), Pt(p1.X, p2.Y, p2.Z), p2, Pt(p2.X, p2.Y, p1.Z)),
		NewFace(p1, Pt(p2.X, p1.Y, p1.Z), Pt(p2.X, p2.Y, p1.Z), Pt(p1.X, p2.Y, p1.Z)),
		NewFace(Pt(p1.X, p1.Y, p2.Z), Pt(p2.X, p1.Y, p2.Z), p2, Pt(p1.X, p2.Y, p2.Z)),
		NewFace(p1, Pt(p1.X, p1.Y, p2.Z), Pt(p1.X, p2.Y, p2.Z), Pt(p1.X, p2.Y, p1.Z)),
		NewFace(Pt(p2.X, p1.Y, p1.Z), Pt(p2.X, p1.Y, p2.Z), p2, Pt(p2.X, p2.Y, p1.Z)),
	}
}

func (b Block) String() string { return fmt.Sprintf("block %v-%v", b.p1, b.p2) }

// Cube is a Block with equal edges, given by one corner and the edge length.
type Cube struct {
	corner Point3D
	edge   float64
	color  color.RGBA
}

// NewCube returns the cube spanning corner to corner+(edge, edge, edge).
func NewCube(corner Point3D, edge float64, c color.RGBA) Cube {
	return Cube{corner: corner, edge: edge, color: c}
}

// Corner returns the defining corner.
func (c Cube) Corner() Point3D { return c.corner }

// Edge returns the edge length.
func (c Cube) Edge() float64 { return c.edge }

// Color returns the stroke colour.
func (c Cube) Color() color.RGBA { return c.color }

// Block returns c as the equivalent Block.
func (c Cube) Block() Block {
	p := c.corner
	return NewBlock(p, Pt(p.X+c.edge, p.Y+c.edge, p.Z+c.edge), c.color)
}

// Faces returns the faces of the equivalent Block.
func (c Cube) Faces() []Face { return c.Block().Faces() }

func (c Cube) String() string { return fmt.Sprintf("cube %v edge %g", c.corner, c.edge) }
