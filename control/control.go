// Package control turns key presses into camera operations and keeps the
// current camera and scene.
package control

import (
	"fmt"
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"wireframe/camera"
	"wireframe/math3d"
	"wireframe/scene"
)

// Action selects the camera operation a Command performs.
type Action int

const (
	Move Action = iota
	Zoom
	Rotate
)

func (a Action) String() string {
	switch a {
	case Move:
		return "move"
	case Zoom:
		return "zoom"
	case Rotate:
		return "rotate"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// Command is one camera operation and its delta.
type Command struct {
	Name   string
	Action Action
	Delta  mgl64.Vec3  // Move
	Axis   math3d.Axis // Rotate
	Amount float64     // Zoom delta or rotation angle in radians
}

// Apply performs c on cam and returns the new camera.
func (c Command) Apply(cam camera.Camera) camera.Camera {
	switch c.Action {
	case Move:
		return cam.Move(c.Delta)
	case Zoom:
		return cam.ChangeZoom(c.Amount)
	case Rotate:
		return cam.RotateAboutAxis(c.Axis, c.Amount)
	}
	panic(fmt.Sprintf("control: unknown action %v", c.Action))
}

// Steps are the deltas used by DefaultBindings.
type Steps struct {
	Move  float64 // world units
	Zoom  float64
	Angle float64 // radians
}

// Bindings maps a key name to its command.
type Bindings map[string]Command

// DefaultBindings returns the standard key map:
//
//	w/s  up/down        a/d  left/right    r/f  forward/back
//	z/x  zoom in/out    i/k  rotate X      j/l  rotate Y      u/o  rotate Z
func DefaultBindings(st Steps) Bindings {
	m, a := st.Move, st.Angle
	return Bindings{
		"w": {Name: "up", Action: Move, Delta: mgl64.Vec3{0, m, 0}},
		"s": {Name: "down", Action: Move, Delta: mgl64.Vec3{0, -m, 0}},
		"a": {Name: "left", Action: Move, Delta: mgl64.Vec3{-m, 0, 0}},
		"d": {Name: "right", Action: Move, Delta: mgl64.Vec3{m, 0, 0}},
		"r": {Name: "forward", Action: Move, Delta: mgl64.Vec3{0, 0, m}},
		"f": {Name: "back", Action: Move, Delta: mgl64.Vec3{0, 0, -m}},
		"z": {Name: "zoom in", Action: Zoom, Amount: st.Zoom},
		"x": {Name: "zoom out", Action: Zoom, Amount: -st.Zoom},
		"i": {Name: "pitch up", Action: Rotate, Axis: math3d.AxisX, Amount: a},
		"k": {Name: "pitch down", Action: Rotate, Axis: math3d.AxisX, Amount: -a},
		"j": {Name: "yaw left", Action: Rotate, Axis: math3d.AxisY, Amount: a},
		"l": {Name: "yaw right", Action: Rotate, Axis: math3d.AxisY, Amount: -a},
		"u": {Name: "roll left", Action: Rotate, Axis: math3d.AxisZ, Amount: a},
		"o": {Name: "roll right", Action: Rotate, Axis: math3d.AxisZ, Amount: -a},
	}
}

// Keys returns the bound keys in sorted order.
func (b Bindings) Keys() []string {
	keys := make([]string, 0, len(b))
	for k := range b {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Frame is what a frontend needs to draw one picture.
type Frame struct {
	Camera      camera.Camera
	Key         string
	Command     string
	Projections []scene.Projection
}

// HUD returns a one-line status for display.
func (f Frame) HUD() string {
	if f.Key == "" {
		return f.Camera.String()
	}
	return fmt.Sprintf("[%s] %s | %s", f.Key, f.Command, f.Camera)
}

// State owns the current camera and scene. It is not safe for concurrent
// use; frontends call it from their single event loop.
type State struct {
	cam      camera.Camera
	scene    *scene.Scene
	bindings Bindings
	frame    Frame
}

// NewState projects s through cam once so Frame is ready immediately.
func NewState(cam camera.Camera, s *scene.Scene, b Bindings) *State {
	st := &State{cam: cam, scene: s, bindings: b}
	st.frame = Frame{Camera: cam, Projections: s.Project(cam)}
	return st
}

// Camera returns the current camera.
func (s *State) Camera() camera.Camera { return s.cam }

// Frame returns the most recent frame.
func (s *State) Frame() Frame { return s.frame }

// Handle applies the command bound to key and re-projects the scene.
// It reports false, leaving the state alone, for unbound keys.
func (s *State) Handle(key string) (Frame, bool) {
	cmd, ok := s.bindings[key]
	if !ok {
		return s.frame, false
	}
	s.cam = cmd.Apply(s.cam)
	s.frame = Frame{
		Camera:      s.cam,
		Key:         key,
		Command:     cmd.Name,
		Projections: s.scene.Project(s.cam),
	}
	return s.frame, true
}

// Replay handles every key of script in order and returns how many were bound.
func (s *State) Replay(script string) int {
	n := 0
	for _, r := range script {
		if _, ok := s.Handle(string(r)); ok {
			n++
		}
	}
	return n
}
