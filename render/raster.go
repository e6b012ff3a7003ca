// Package render draws projected frames into images.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"wireframe/scene"
)

// Background is the canvas clear colour.
var Background = color.RGBA{0xdd, 0xdd, 0xdd, 0xff}

// DrawLine draws a line on the image from (x1, y1) to (x2, y2) with a DDA
// walk. Pixels outside the image are skipped.
func DrawLine(img *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	dx := float64(x2 - x1)
	dy := float64(y2 - y1)
	steps := math.Max(math.Abs(dx), math.Abs(dy))
	if steps == 0 {
		setPixel(img, x1, y1, col)
		return
	}

	xInc := dx / steps
	yInc := dy / steps

	x := float64(x1)
	y := float64(y1)

	for i := 0; i <= int(steps); i++ {
		setPixel(img, int(math.Round(x)), int(math.Round(y)), col)
		x += xInc
		y += yInc
	}
}

func setPixel(img *image.RGBA, x, y int, col color.RGBA) {
	if !image.Pt(x, y).In(img.Rect) {
		return
	}
	offset := img.PixOffset(x, y)
	img.Pix[offset] = col.R
	img.Pix[offset+1] = col.G
	img.Pix[offset+2] = col.B
	img.Pix[offset+3] = col.A
}

// maxCoord keeps far-off projected points from turning into huge DDA walks.
const maxCoord = 1 << 16

func clampCoord(v float64) int {
	if math.IsNaN(v) {
		return -maxCoord
	}
	return int(math.Max(-maxCoord, math.Min(maxCoord, v)))
}

// Rasterize clears img and strokes every polyline as a closed loop.
// With cull set, polylines the viewport rejects are skipped.
func Rasterize(img *image.RGBA, vp scene.Viewport, ps []scene.Projection, cull bool) {
	draw.Draw(img, img.Rect, &image.Uniform{Background}, image.Point{}, draw.Src)
	for _, p := range ps {
		for _, line := range p.Polylines {
			if cull && !vp.Visible(line) {
				continue
			}
			for i := range line {
				ax, ay := vp.ToPixel(line[i])
				bx, by := vp.ToPixel(line[(i+1)%len(line)])
				DrawLine(img, clampCoord(ax), clampCoord(ay), clampCoord(bx), clampCoord(by), p.Color)
			}
		}
	}
}
