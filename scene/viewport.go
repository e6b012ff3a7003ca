package scene

// Viewport maps screen space onto a Width x Height canvas whose centre is
// the screen-space origin.
type Viewport struct {
	Width, Height int
}

// ToPixel returns the canvas position of p.
func (vp Viewport) ToPixel(p Point2D) (x, y float64) {
	return p.X + float64(vp.Width)/2, p.Y + float64(vp.Height)/2
}

// Contains reports whether p lands on the canvas.
func (vp Viewport) Contains(p Point2D) bool {
	x, y := vp.ToPixel(p)
	return x >= 0 && x < float64(vp.Width) && y >= 0 && y < float64(vp.Height)
}

// Visible implements the optional frontend skip policy: a polyline is
// drawn only when its first and last points land on the canvas.
func (vp Viewport) Visible(line Polyline) bool {
	if len(line) == 0 {
		return false
	}
	return vp.Contains(line[0]) && vp.Contains(line[len(line)-1])
}
