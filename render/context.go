package render

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gokey/chroma"
)

// Context owns the offscreen rendering surface and its lifecycle.
// No GL call may be issued before NewContext returns or after Destroy.
//
// The context is bound to the calling OS thread; callers must pin the
// goroutine with runtime.LockOSThread before creating one and issue
// every subsequent GL call from that thread.
type Context struct {
	width  int
	height int

	window   *glfw.Window
	glfwLive bool
}

// NewContext creates a hidden window of exactly width x height pixels
// with a GL 3.3 core forward-compatible context, makes it current, and
// enables source-alpha blending for the lifetime of the context.
//
// On failure it returns a *ContextCreationError with any partially
// created state already released.
func NewContext(width, height int) (*Context, error) {
	c := &Context{width: width, height: height}
	if err := c.initialize(); err != nil {
		c.Destroy()
		return nil, err
	}
	return c, nil
}

func (c *Context) initialize() error {
	if err := glfw.Init(); err != nil {
		return &ContextCreationError{Stage: "glfw init", Err: err}
	}
	c.glfwLive = true

	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(c.width, c.height, "chroma offscreen", nil, nil)
	if err != nil {
		return &ContextCreationError{Stage: "create window", Err: err}
	}
	c.window = window
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return &ContextCreationError{Stage: "load gl", Err: err}
	}

	// Process-wide blend state; every draw in this context inherits it.
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Viewport(0, 0, int32(c.width), int32(c.height))

	chroma.Logger().Info("GL context created",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)),
		"size", []int{c.width, c.height})
	return nil
}

// Width returns the surface width in pixels.
func (c *Context) Width() int { return c.width }

// Height returns the surface height in pixels.
func (c *Context) Height() int { return c.height }

// Destroy releases the surface and the windowing subsystem. It is
// idempotent and safe to call after a partially failed NewContext.
func (c *Context) Destroy() {
	if c.window != nil {
		c.window.Destroy()
		c.window = nil
	}
	if c.glfwLive {
		glfw.Terminate()
		c.glfwLive = false
	}
}
