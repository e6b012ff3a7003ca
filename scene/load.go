package scene

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"wireframe/geom"
)

// shapeDef is one entry of a scene file. Type selects which of the
// remaining fields apply.
type shapeDef struct {
	Type   string     `json:"type"`
	Min    [3]float64 `json:"min"`
	Max    [3]float64 `json:"max"`
	Corner [3]float64 `json:"corner"`
	Edge   float64    `json:"edge"`
	Color  string     `json:"color"`
}

type fileDef struct {
	Shapes []shapeDef `json:"shapes"`
}

// Default returns the built-in scene.
func Default() *Scene {
	return New(
		geom.NewBlock(geom.Pt(500, 0, 0), geom.Pt(1000, 1000, 1000), geom.DefaultColor),
		geom.NewBlock(geom.Pt(-1000, -200, 200), geom.Pt(-400, 0, 1200), color.RGBA{0x00, 0x74, 0xd9, 0xff}),
		geom.NewCube(geom.Pt(-250, -250, -250), 500, color.RGBA{0xff, 0x41, 0x36, 0xff}),
	)
}

// Load reads a JSON scene:
//
//	{"shapes": [
//	  {"type": "block", "min": [0, 0, 0], "max": [1, 1, 1], "color": "#111111"},
//	  {"type": "cube", "corner": [2, 0, 0], "edge": 1, "color": "#0074d9"}
//	]}
//
// Shapes are drawn in file order. A missing colour is geom.DefaultColor.
func Load(r io.Reader) (*Scene, error) {
	var def fileDef
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&def); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}

	s := New()
	for i, d := range def.Shapes {
		sh, err := d.shape()
		if err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
		s.Add(sh)
	}
	return s, nil
}

func (d shapeDef) shape() (geom.Shape, error) {
	c, err := ParseColor(d.Color)
	if err != nil {
		return nil, err
	}
	switch d.Type {
	case "block":
		return geom.NewBlock(point(d.Min), point(d.Max), c), nil
	case "cube":
		if d.Edge <= 0 {
			return nil, fmt.Errorf("cube edge must be positive, got %g", d.Edge)
		}
		return geom.NewCube(point(d.Corner), d.Edge, c), nil
	}
	return nil, fmt.Errorf("unknown shape type %q", d.Type)
}

// LoadFile reads a JSON scene from path.
func LoadFile(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func point(v [3]float64) geom.Point3D { return geom.Pt(v[0], v[1], v[2]) }

// ParseColor parses "#rrggbb" or "#rgb". The empty string is
// geom.DefaultColor.
func ParseColor(s string) (color.RGBA, error) {
	if s == "" {
		return geom.DefaultColor, nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	return color.RGBA{uint8(n >> 16), uint8(n >> 8), uint8(n), 0xff}, nil
}
