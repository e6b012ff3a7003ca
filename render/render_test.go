package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"wireframe/camera"
	"wireframe/geom"
	"wireframe/scene"
)

var black = color.RGBA{0, 0, 0, 0xff}

func count(img *image.RGBA, c color.RGBA) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) == c {
				n++
			}
		}
	}
	return n
}

func TestDrawLine(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	DrawLine(img, 0, 0, 9, 0, black)
	if n := count(img, black); n != 10 {
		t.Fatalf("horizontal line pixels\nhave %d\nwant 10", n)
	}
	DrawLine(img, 0, 0, 9, 9, black)
	for i := 0; i < 10; i++ {
		if img.RGBAAt(i, i) != black {
			t.Fatalf("diagonal pixel (%d, %d) not set", i, i)
		}
	}

	img = image.NewRGBA(image.Rect(0, 0, 10, 10))
	DrawLine(img, -50, 5, 50, 5, black)
	if n := count(img, black); n != 10 {
		t.Fatalf("clipped line pixels\nhave %d\nwant 10", n)
	}
	DrawLine(img, 3, 3, 3, 3, black)
	if img.RGBAAt(3, 3) != black {
		t.Fatal("single point not set")
	}
	DrawLine(img, 100, 100, 200, 200, black)
}

func frame() []scene.Projection {
	s := scene.New(geom.NewCube(geom.Pt(-1, -1, -1), 2, black))
	return s.Project(camera.New(geom.Pt(0, 0, 20), geom.Pt(0, 0, 0), 400))
}

func TestRasterize(t *testing.T) {
	vp := scene.Viewport{Width: 200, Height: 200}
	img := image.NewRGBA(image.Rect(0, 0, vp.Width, vp.Height))
	Rasterize(img, vp, frame(), false)
	if img.RGBAAt(0, 0) != Background {
		t.Fatalf("corner pixel\nhave %v\nwant background", img.RGBAAt(0, 0))
	}
	if n := count(img, black); n == 0 {
		t.Fatal("no edges drawn")
	}

	// Everything off screen: culling draws nothing.
	far := scene.New(geom.NewCube(geom.Pt(1000, 1000, -1), 2, black))
	ps := far.Project(camera.New(geom.Pt(0, 0, 20), geom.Pt(0, 0, 0), 400))
	Rasterize(img, vp, ps, true)
	if n := count(img, black); n != 0 {
		t.Fatalf("culled pixels\nhave %d\nwant 0", n)
	}
}

func TestSnapshot(t *testing.T) {
	o := SnapshotOptions{Viewport: scene.Viewport{Width: 160, Height: 120}, HUD: "[w] up"}
	img := Snapshot(frame(), o)
	if b := img.Bounds(); b.Dx() != 160 || b.Dy() != 120 {
		t.Fatalf("snapshot size\nhave %v\nwant 160x120", b)
	}

	var buf bytes.Buffer
	if err := WritePNG(&buf, frame(), o); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	dec, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := dec.Bounds(); b.Dx() != 160 || b.Dy() != 120 {
		t.Fatalf("decoded size\nhave %v\nwant 160x120", b)
	}

	path := filepath.Join(t.TempDir(), "out.png")
	if err := SavePNG(path, frame(), o); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	if err := SavePNG(filepath.Join(t.TempDir(), "missing", "out.png"), frame(), o); err == nil {
		t.Fatal("SavePNG into missing dir: expected error")
	}
}
