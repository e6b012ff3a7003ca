package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"wireframe/control"
	"wireframe/render"
	"wireframe/scene"
)

var (
	vertexShaderSource = `
		#version 410
		in vec2 vp;
		void main() {
			gl_Position = vec4(vp, 0.0, 1.0);
		}
	` + "\x00"

	fragmentShaderSource = `
		#version 410
		uniform vec4 colour;
		out vec4 frag_colour;
		void main() {
			frag_colour = colour;
		}
	` + "\x00"
)

// batch is one projection's slice of the shared vertex buffer.
type batch struct {
	first, count int32
	r, g, b, a   float32
}

// lineVertices flattens a frame into GL_LINES segments in normalised
// device coordinates, one batch per projection.
func lineVertices(vp scene.Viewport, ps []scene.Projection, cull bool) ([]float32, []batch) {
	var verts []float32
	batches := make([]batch, 0, len(ps))
	w, h := float64(vp.Width), float64(vp.Height)
	ndc := func(p scene.Point2D) (float32, float32) {
		x, y := vp.ToPixel(p)
		return float32(x/w*2 - 1), float32(1 - y/h*2)
	}
	for _, p := range ps {
		b := batch{
			first: int32(len(verts) / 2),
			r:     float32(p.Color.R) / 255,
			g:     float32(p.Color.G) / 255,
			b:     float32(p.Color.B) / 255,
			a:     float32(p.Color.A) / 255,
		}
		for _, line := range p.Polylines {
			if cull && !vp.Visible(line) {
				continue
			}
			for i := range line {
				x1, y1 := ndc(line[i])
				x2, y2 := ndc(line[(i+1)%len(line)])
				verts = append(verts, x1, y1, x2, y2)
			}
		}
		b.count = int32(len(verts)/2) - b.first
		batches = append(batches, b)
	}
	return verts, batches
}

func runGL(cfg config, state *control.State) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.width, cfg.height, title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("init gl: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	fmt.Println("OpenGL version", version)

	program, err := newProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return err
	}
	gl.UseProgram(program)
	colourUniform := gl.GetUniformLocation(program, gl.Str("colour\x00"))

	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	vertAttrib := uint32(gl.GetAttribLocation(program, gl.Str("vp\x00")))
	gl.EnableVertexAttribArray(vertAttrib)
	gl.VertexAttribPointer(vertAttrib, 2, gl.FLOAT, false, 0, gl.PtrOffset(0))

	bg := render.Background
	gl.ClearColor(float32(bg.R)/255, float32(bg.G)/255, float32(bg.B)/255, 1)

	dirty := true
	window.SetCharCallback(func(_ *glfw.Window, char rune) {
		if f, ok := state.Handle(string(char)); ok {
			log.Println(f.HUD())
			dirty = true
		}
	})
	window.SetRefreshCallback(func(*glfw.Window) {
		dirty = true
	})
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})

	vp := cfg.viewport()
	for !window.ShouldClose() {
		if dirty {
			f := state.Frame()
			window.SetTitle(fmt.Sprintf("%s | %s", title, f.HUD()))

			fbw, fbh := window.GetFramebufferSize()
			gl.Viewport(0, 0, int32(fbw), int32(fbh))
			gl.Clear(gl.COLOR_BUFFER_BIT)

			verts, batches := lineVertices(vp, f.Projections, cfg.cull)
			if len(verts) > 0 {
				gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.DYNAMIC_DRAW)
				for _, b := range batches {
					if b.count == 0 {
						continue
					}
					gl.Uniform4f(colourUniform, b.r, b.g, b.b, b.a)
					gl.DrawArrays(gl.LINES, b.first, b.count)
				}
			}
			window.SwapBuffers()
			dirty = false
		}
		// Redraw only after input or an expose.
		glfw.WaitEvents()
	}
	return nil
}

func newProgram(vertexShaderSource, fragmentShaderSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}

	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))

		return 0, fmt.Errorf("failed to link program: %v", log)
	}

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))

		return 0, fmt.Errorf("failed to compile %s shader: %v", shaderKind(shaderType), log)
	}

	return shader, nil
}

func shaderKind(shaderType uint32) string {
	switch shaderType {
	case gl.VERTEX_SHADER:
		return "vertex"
	case gl.FRAGMENT_SHADER:
		return "fragment"
	}
	return fmt.Sprintf("0x%x", shaderType)
}
