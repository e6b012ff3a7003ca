package render

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"

	"wireframe/scene"
)

// HUDColor is the colour of status text.
var HUDColor = color.RGBA{0x00, 0x74, 0xd9, 0xff}

// SnapshotOptions configures Snapshot.
type SnapshotOptions struct {
	Viewport  scene.Viewport
	LineWidth float64
	Cull      bool
	HUD       string
}

func (o SnapshotOptions) context(ps []scene.Projection) *gg.Context {
	vp := o.Viewport
	dc := gg.NewContext(vp.Width, vp.Height)
	dc.SetColor(Background)
	dc.Clear()

	lw := o.LineWidth
	if lw <= 0 {
		lw = 1
	}
	dc.SetLineWidth(lw)
	for _, p := range ps {
		dc.SetColor(p.Color)
		for _, line := range p.Polylines {
			if o.Cull && !vp.Visible(line) {
				continue
			}
			for i, pt := range line {
				x, y := vp.ToPixel(pt)
				if i == 0 {
					dc.MoveTo(x, y)
				} else {
					dc.LineTo(x, y)
				}
			}
			dc.ClosePath()
			dc.Stroke()
		}
	}

	if o.HUD != "" {
		const pad = 4
		w, h := dc.MeasureString(o.HUD)
		y := float64(vp.Height) - h - 2*pad
		dc.SetColor(color.White)
		dc.DrawRectangle(0, y, w+2*pad, h+2*pad)
		dc.Fill()
		dc.SetColor(HUDColor)
		dc.DrawStringAnchored(o.HUD, pad, y+pad, 0, 1)
	}
	return dc
}

// Snapshot renders ps with antialiased strokes.
func Snapshot(ps []scene.Projection, o SnapshotOptions) image.Image {
	return o.context(ps).Image()
}

// WritePNG renders ps and encodes the result as PNG to w.
func WritePNG(w io.Writer, ps []scene.Projection, o SnapshotOptions) error {
	if err := o.context(ps).EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// SavePNG renders ps to the PNG file at path.
func SavePNG(path string, ps []scene.Projection, o SnapshotOptions) error {
	if err := o.context(ps).SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
