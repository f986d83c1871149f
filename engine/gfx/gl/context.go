package glbackend

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"github.com/hubastard/strata/engine/logging"
)

// Context is the OpenGL context of one GLFW window.
type Context struct {
	win *glfw.Window
}

func NewContext(win *glfw.Window) (*Context, error) {
	if win == nil {
		return nil, errors.New("gl context: window handle is nil")
	}
	return &Context{win: win}, nil
}

// Init makes the context current and loads the GL function pointers.
// Must be called on the main thread before any GL call.
func (c *Context) Init() error {
	c.win.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	logging.Core().Debug("OpenGL context",
		zap.String("vendor", gl.GoStr(gl.GetString(gl.VENDOR))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))))
	return nil
}

func (c *Context) SwapBuffers() { c.win.SwapBuffers() }
