package scene

import (
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"wireframe/camera"
	"wireframe/geom"
	"wireframe/math3d"
)

func finite(t *testing.T, ps []Projection) {
	t.Helper()
	for i, p := range ps {
		for j, line := range p.Polylines {
			for _, pt := range line {
				if math.IsNaN(pt.X) || math.IsNaN(pt.Y) || math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0) {
					t.Fatalf("shape %d face %d: non-finite point %v", i, j, pt)
				}
			}
		}
	}
}

func TestProject(t *testing.T) {
	blue := color.RGBA{0, 0, 0xff, 0xff}
	s := New(geom.NewCube(geom.Pt(-1, -1, -1), 2, blue))
	cam := camera.New(geom.Pt(0, 0, 50), geom.Pt(0, 0, 0), 400)

	ps := s.Project(cam)
	if len(ps) != 1 {
		t.Fatalf("projections\nhave %d\nwant 1", len(ps))
	}
	if ps[0].Color != blue {
		t.Fatalf("projection color\nhave %v\nwant %v", ps[0].Color, blue)
	}
	if n := len(ps[0].Polylines); n != 6 {
		t.Fatalf("polylines\nhave %d\nwant 6", n)
	}
	for i, line := range ps[0].Polylines {
		if len(line) != 4 {
			t.Fatalf("polyline %d points\nhave %d\nwant 4", i, len(line))
		}
	}
	finite(t, ps)

	// The cube is in front of the eye, so it lands near the screen centre.
	vp := Viewport{800, 800}
	for _, line := range ps[0].Polylines {
		if !vp.Visible(line) {
			t.Fatalf("polyline %v should be visible", line)
		}
	}
}

func TestProjectOrder(t *testing.T) {
	a := geom.NewBlock(geom.Pt(0, 0, 0), geom.Pt(1, 1, 1), color.RGBA{1, 0, 0, 0xff})
	b := geom.NewCube(geom.Pt(5, 5, 5), 1, color.RGBA{2, 0, 0, 0xff})
	c := geom.NewBlock(geom.Pt(-3, 0, 0), geom.Pt(-2, 1, 1), color.RGBA{3, 0, 0, 0xff})
	s := New(a, b)
	s.Add(c)
	if s.Len() != 3 {
		t.Fatalf("Scene.Len\nhave %d\nwant 3", s.Len())
	}

	ps := s.Project(camera.New(geom.Pt(0, 0, 100), geom.Pt(0, 0, 0), 2))
	for i, want := range []uint8{1, 2, 3} {
		if ps[i].Color.R != want {
			t.Fatalf("projection %d color\nhave %v\nwant R=%d", i, ps[i].Color, want)
		}
	}
}

func TestProjectFace(t *testing.T) {
	cam := camera.New(geom.Pt(0, 0, 10), geom.Pt(0, 0, 0), 5)
	f := geom.NewFace(geom.Pt(1, 2, 0), geom.Pt(0, 0, 0), geom.Pt(-1, 2, 0))
	line := ProjectFace(cam.CombinationMatrix(), f)
	want := Polyline{{0.5, 1}, {0, 0}, {-0.5, 1}}
	for i := range want {
		if math.Abs(line[i].X-want[i].X) > 1e-9 || math.Abs(line[i].Y-want[i].Y) > 1e-9 {
			t.Fatalf("ProjectFace\nhave %v\nwant %v", line, want)
		}
	}
}

type fixedViewer struct{ m math3d.Matrix }

func (v fixedViewer) CombinationMatrix() math3d.Matrix { return v.m }

func TestProjectViewer(t *testing.T) {
	s := New(geom.NewBlock(geom.Pt(1, 2, 3), geom.Pt(4, 5, 6), geom.DefaultColor))
	ps := s.Project(fixedViewer{math3d.Identity(4)})
	for _, line := range ps[0].Polylines {
		for _, p := range line {
			if (p.X != 1 && p.X != 4) || (p.Y != 2 && p.Y != 5) {
				t.Fatalf("identity projection gave %v", p)
			}
		}
	}
}

func TestDefaultFinite(t *testing.T) {
	cams := []camera.Camera{
		camera.New(geom.Pt(250, 500, -3000), geom.Pt(250, 500, 500), 400),
		camera.New(geom.Pt(-100, 0, 0), geom.Pt(500, 500, 500), 2),
		// Eye inside the red cube.
		camera.New(geom.Pt(0, 0, 0), geom.Pt(0, 0, 1), 400),
	}
	for _, c := range cams {
		ps := Default().Project(c)
		if len(ps) != Default().Len() {
			t.Fatalf("%v: projections\nhave %d\nwant %d", c, len(ps), Default().Len())
		}
		finite(t, ps)
	}
}

func TestViewport(t *testing.T) {
	vp := Viewport{800, 600}
	if x, y := vp.ToPixel(Point2D{0, 0}); x != 400 || y != 300 {
		t.Fatalf("Viewport.ToPixel origin\nhave (%v, %v)\nwant (400, 300)", x, y)
	}
	if !vp.Contains(Point2D{-399, 299}) {
		t.Fatal("(-399, 299) should be on the canvas")
	}
	if vp.Contains(Point2D{400, 0}) {
		t.Fatal("(400, 0) should be off the canvas")
	}
	if vp.Contains(Point2D{math.NaN(), 0}) {
		t.Fatal("NaN should be off the canvas")
	}
	if vp.Visible(Polyline{{0, 0}, {1000, 0}, {0, 1000}}) {
		t.Fatal("polyline ending off canvas should be skipped")
	}
	if !vp.Visible(Polyline{{0, 0}, {1000, 0}, {0, 0}}) {
		t.Fatal("polyline with first and last on canvas should be kept")
	}
	if vp.Visible(nil) {
		t.Fatal("empty polyline should be skipped")
	}
}

func TestLoad(t *testing.T) {
	const src = `{"shapes": [
		{"type": "block", "min": [0, 0, 0], "max": [1, 1, 1], "color": "#ff0000"},
		{"type": "cube", "corner": [5, 5, 5], "edge": 2, "color": "#0f0"},
		{"type": "block", "min": [2, 0, 0], "max": [3, 1, 1]}
	]}`
	s, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	shapes := s.Shapes()
	if len(shapes) != 3 {
		t.Fatalf("shapes\nhave %d\nwant 3", len(shapes))
	}
	if c := shapes[0].Color(); c != (color.RGBA{0xff, 0, 0, 0xff}) {
		t.Fatalf("shape 0 color\nhave %v", c)
	}
	cube, ok := shapes[1].(geom.Cube)
	if !ok {
		t.Fatalf("shape 1\nhave %T\nwant geom.Cube", shapes[1])
	}
	if cube.Edge() != 2 || cube.Corner() != geom.Pt(5, 5, 5) || cube.Color() != (color.RGBA{0, 0xff, 0, 0xff}) {
		t.Fatalf("cube\nhave %v %v", cube, cube.Color())
	}
	block, ok := shapes[2].(geom.Block)
	if !ok {
		t.Fatalf("shape 2\nhave %T\nwant geom.Block", shapes[2])
	}
	if p1, _ := block.Corners(); p1 != geom.Pt(2, 0, 0) || block.Color() != geom.DefaultColor {
		t.Fatalf("block after cube\nhave %v %v", block, block.Color())
	}

	for _, bad := range []string{
		`{"shapes": [{"type": "block", "min": [0, 0, 0], "max": [1, 1, 1], "color": "red"}]}`,
		`{"shapes": [{"type": "block", "min": [0, 0, 0], "max": [1, 1, 1], "color": "#12345"}]}`,
		`{"shapes": [{"type": "cube", "corner": [0, 0, 0], "edge": 0}]}`,
		`{"shapes": [{"type": "sphere"}]}`,
		`{"shapes": [{"min": [0, 0, 0], "max": [1, 1, 1]}]}`,
		`{"spheres": []}`,
		`{"shapes": `,
	} {
		if _, err := Load(strings.NewReader(bad)); err == nil {
			t.Fatalf("Load(%s): expected error", bad)
		}
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.json")
	if err := os.WriteFile(path, []byte(`{"shapes": [{"type": "cube", "corner": [0, 0, 0], "edge": 1}]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if s.Len() != 1 {
		t.Fatalf("Scene.Len\nhave %d\nwant 1", s.Len())
	}
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("LoadFile(missing): expected error")
	}

	street, err := LoadFile(filepath.Join("..", "scenes", "street.json"))
	if err != nil {
		t.Fatalf("LoadFile(street.json): %v", err)
	}
	if street.Len() != 4 {
		t.Fatalf("street.json shapes\nhave %d\nwant 4", street.Len())
	}
	if _, ok := street.Shapes()[2].(geom.Cube); !ok {
		t.Fatalf("street.json shape 2\nhave %T\nwant geom.Cube", street.Shapes()[2])
	}
	finite(t, street.Project(camera.New(geom.Pt(0, 500, -4000), geom.Pt(0, 500, 0), 400)))
}

func TestParseColor(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want color.RGBA
	}{
		{"#0074D9", color.RGBA{0x00, 0x74, 0xd9, 0xff}},
		{"#abc", color.RGBA{0xaa, 0xbb, 0xcc, 0xff}},
		{"", geom.DefaultColor},
	} {
		c, err := ParseColor(tc.in)
		if err != nil || c != tc.want {
			t.Fatalf("ParseColor(%q)\nhave %v, %v\nwant %v", tc.in, c, err, tc.want)
		}
	}
	if _, err := ParseColor("#zzzzzz"); err == nil {
		t.Fatal(`ParseColor("#zzzzzz"): expected error`)
	}
}
