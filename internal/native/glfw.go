// Package native provides the GLFW window and OpenGL renderer behind
// window.Native. All calls must happen on the main OS thread.
package native

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/1broseidon/windowfun/internal/window"
)

// Options configures the native window.
type Options struct {
	Title     string
	Width     int
	Height    int
	Decorated bool
	// VSync enables a swap interval of one.
	VSync bool
}

// Window is a fixed-size GLFW window with a current OpenGL 3.3 core context.
type Window struct {
	win *glfw.Window
}

var _ window.Native = (*Window)(nil)

// Open initialises GLFW, creates the window, makes its context current and
// loads OpenGL. On failure everything created so far is released.
func Open(opts Options) (*Window, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid window size %dx%d", opts.Width, opts.Height)
	}
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialise GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.Decorated, boolHint(opts.Decorated))

	win, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	win.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("failed to load OpenGL: %w", err)
	}
	if opts.VSync {
		glfw.SwapInterval(1)
	}

	return &Window{win: win}, nil
}

func boolHint(v bool) int {
	if v {
		return glfw.True
	}
	return glfw.False
}

// Bind routes GLFW input callbacks to sink. Unknown keys arrive with a
// negative code and are dropped by the sink's range check.
func (w *Window) Bind(sink window.EventSink) {
	w.win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		sink.HandleKey(window.Key(key), window.Action(action))
	})
	w.win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		sink.HandleMouseButton(window.MouseButton(button), window.Action(action))
	})
	w.win.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		sink.HandleScroll(xoff, yoff)
	})
}

func (w *Window) PollEvents() { glfw.PollEvents() }

func (w *Window) Pos() (int, int) { return w.win.GetPos() }
func (w *Window) SetPos(x, y int) { w.win.SetPos(x, y) }
func (w *Window) Size() (int, int) { return w.win.GetSize() }
func (w *Window) FramebufferSize() (int, int) { return w.win.GetFramebufferSize() }
func (w *Window) CursorPos() (float64, float64) { return w.win.GetCursorPos() }
func (w *Window) SetCursorPos(x, y float64) { w.win.SetCursorPos(x, y) }

func (w *Window) SetCursorHidden(hidden bool) {
	mode := glfw.CursorNormal
	if hidden {
		mode = glfw.CursorHidden
	}
	w.win.SetInputMode(glfw.CursorMode, mode)
}

func (w *Window) Time() float64 { return glfw.GetTime() }

func (w *Window) SwapBuffers() { w.win.SwapBuffers() }

func (w *Window) ShouldClose() bool { return w.win.ShouldClose() }
func (w *Window) SetShouldClose(value bool) { w.win.SetShouldClose(value) }

// Destroy releases the window and terminates GLFW.
func (w *Window) Destroy() {
	w.win.Destroy()
	glfw.Terminate()
}
