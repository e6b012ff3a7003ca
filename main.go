package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"

	"github.com/go-gl/mathgl/mgl64"

	"wireframe/camera"
	"wireframe/control"
	"wireframe/geom"
	"wireframe/math3d"
	"wireframe/render"
	"wireframe/scene"
)

const (
	width  = 800
	height = 800
	title  = "Wireframe"

	defaultZoom      = 400.0
	defaultMoveStep  = 100.0
	defaultZoomStep  = math3d.DefaultZoomStep
	defaultAngleStep = 5.0 // degrees
)

var (
	defaultEye    = geom.Pt(250, 500, -3000)
	defaultTarget = geom.Pt(250, 500, 500)
)

type config struct {
	backend   string
	width     int
	height    int
	scenePath string
	zoom      float64
	moveStep  float64
	zoomStep  float64
	angleStep float64
	out       string
	keys      string
	cull      bool
}

func parseFlags() config {
	var cfg config
	flag.StringVar(&cfg.backend, "backend", "gl", "Frontend: gl, ebiten or png.")
	flag.IntVar(&cfg.width, "width", width, "Canvas width in pixels.")
	flag.IntVar(&cfg.height, "height", height, "Canvas height in pixels.")
	flag.StringVar(&cfg.scenePath, "scene", "", "JSON scene file (default: built-in scene).")
	flag.Float64Var(&cfg.zoom, "zoom", defaultZoom, "Initial camera zoom.")
	flag.Float64Var(&cfg.moveStep, "move-step", defaultMoveStep, "Distance moved per key press.")
	flag.Float64Var(&cfg.zoomStep, "zoom-step", defaultZoomStep, "Zoom change per key press.")
	flag.Float64Var(&cfg.angleStep, "angle-step", defaultAngleStep, "Rotation per key press in degrees.")
	flag.StringVar(&cfg.out, "out", "wireframe.png", "Output file for the png backend.")
	flag.StringVar(&cfg.keys, "keys", "", "Keys to replay before drawing (png backend).")
	flag.BoolVar(&cfg.cull, "cull", false, "Skip faces whose first or last vertex is off canvas.")
	flag.Parse()
	return cfg
}

func (cfg config) viewport() scene.Viewport {
	return scene.Viewport{Width: cfg.width, Height: cfg.height}
}

func newState(cfg config) (*control.State, error) {
	s := scene.Default()
	if cfg.scenePath != "" {
		var err error
		if s, err = scene.LoadFile(cfg.scenePath); err != nil {
			return nil, fmt.Errorf("load scene: %w", err)
		}
	}
	cam := camera.New(defaultEye, defaultTarget, cfg.zoom).WithZoomStep(cfg.zoomStep)
	b := control.DefaultBindings(control.Steps{
		Move:  cfg.moveStep,
		Zoom:  cfg.zoomStep,
		Angle: mgl64.DegToRad(cfg.angleStep),
	})
	return control.NewState(cam, s, b), nil
}

func init() {
	// GLFW and ebiten must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	cfg := parseFlags()
	if cfg.width <= 0 || cfg.height <= 0 {
		log.Fatalln("invalid canvas size:", cfg.width, "x", cfg.height)
	}

	state, err := newState(cfg)
	if err != nil {
		log.Fatalln(err)
	}

	switch cfg.backend {
	case "gl":
		err = runGL(cfg, state)
	case "ebiten":
		err = runEbiten(cfg, state)
	case "png":
		err = runPNG(cfg, state)
	default:
		err = fmt.Errorf("unknown backend %q", cfg.backend)
	}
	if err != nil {
		log.Fatalln(err)
	}
}

func runPNG(cfg config, state *control.State) error {
	if n := state.Replay(cfg.keys); n > 0 {
		log.Println("replayed", n, "keys")
	}
	f := state.Frame()
	err := render.SavePNG(cfg.out, f.Projections, render.SnapshotOptions{
		Viewport: cfg.viewport(),
		Cull:     cfg.cull,
		HUD:      f.HUD(),
	})
	if err != nil {
		return err
	}
	fmt.Println("wrote", cfg.out)
	return nil
}
