// Package glsurface opens a GLFW window with an OpenGL 2.1 context and
// draws benchmark scenes in immediate mode.
//
// GLFW must be driven from the main OS thread. The package locks the
// calling goroutine to its thread at init, so Open must be called from
// the main goroutine.
package glsurface

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/jamesainslie/gamescan/pkg/gamescan/bench"
	"github.com/jamesainslie/gamescan/pkg/gamescan/logging"
)

var logger = logging.Get("bench")

func init() {
	runtime.LockOSThread()
}

// Surface is a bench.Surface backed by a GLFW window.
type Surface struct {
	win *glfw.Window
}

var _ bench.Surface = (*Surface)(nil)

// Open creates a double-buffered, fixed-size window and prepares the
// projection for w. Vsync is disabled so the frame rate is not capped.
func Open(w bench.Window) (bench.Surface, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("initializing glfw: %w", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)

	win, err := glfw.CreateWindow(w.Width, w.Height, w.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("creating window: %w", err)
	}
	win.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("initializing opengl: %w", err)
	}
	glfw.SwapInterval(0)

	logger.Debug("opened gl surface",
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)),
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
	)

	fbw, fbh := win.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbw), int32(fbh))

	aspect := float32(w.Width) / float32(w.Height)
	projection := mgl32.Perspective(mgl32.DegToRad(w.FOV), aspect, w.Near, w.Far)
	gl.MatrixMode(gl.PROJECTION)
	gl.LoadMatrixf(&projection[0])

	view := mgl32.Translate3D(0, 0, -w.Distance)
	gl.MatrixMode(gl.MODELVIEW)
	gl.LoadMatrixf(&view[0])

	return &Surface{win: win}, nil
}

// ShouldQuit processes window events and reports whether the window
// was asked to close.
func (s *Surface) ShouldQuit() bool {
	glfw.PollEvents()
	return s.win.ShouldClose()
}

// Clear clears the color and depth buffers.
func (s *Surface) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Draw issues one triangle per scene color.
func (s *Surface) Draw(scene bench.Scene) error {
	v := scene.Vertices

	gl.Begin(gl.TRIANGLES)
	for _, c := range scene.Colors {
		gl.Color3f(c.R, c.G, c.B)
		gl.Vertex3f(v[0].X, v[0].Y, v[0].Z)
		gl.Vertex3f(v[1].X, v[1].Y, v[1].Z)
		gl.Vertex3f(v[2].X, v[2].Y, v[2].Z)
	}
	gl.End()

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("gl error 0x%04x", code)
	}
	return nil
}

// Present swaps the back buffer to the screen.
func (s *Surface) Present() {
	s.win.SwapBuffers()
}

// Close destroys the window and releases GLFW.
func (s *Surface) Close() error {
	if s.win == nil {
		return nil
	}
	s.win.Destroy()
	s.win = nil
	glfw.Terminate()
	return nil
}
