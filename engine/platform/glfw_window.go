package platform

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"github.com/hubastard/strata/engine/core"
	"github.com/hubastard/strata/engine/event"
	glbackend "github.com/hubastard/strata/engine/gfx/gl"
	"github.com/hubastard/strata/engine/input"
	"github.com/hubastard/strata/engine/logging"
)

// GLFW is initialised once per process and terminated with the last window.
var openWindows int

// GLFWWindow implements core.Window and pushes events to the app via a handler.
type GLFWWindow struct {
	w       *glfw.Window
	ctx     *glbackend.Context
	props   core.WindowProps
	onEv    func(event.Event)
	closing bool
}

// NewGLFWWindow must be called on the main thread before any GL calls.
func NewGLFWWindow(props core.WindowProps) (*GLFWWindow, error) {
	runtime.LockOSThread()
	logging.Core().Info("creating window",
		zap.String("title", props.Title),
		zap.Uint32("width", props.Width),
		zap.Uint32("height", props.Height))

	if openWindows == 0 {
		if err := glfw.Init(); err != nil {
			return nil, fmt.Errorf("glfw init: %w", err)
		}
	}

	// GL 3.3 core profile (Mac requires forward-compatible flag).
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(int(props.Width), int(props.Height), props.Title, nil, nil)
	if err != nil {
		if openWindows == 0 {
			glfw.Terminate()
		}
		return nil, fmt.Errorf("create window: %w", err)
	}
	openWindows++

	ctx, err := glbackend.NewContext(win)
	if err == nil {
		err = ctx.Init()
	}
	if err != nil {
		win.Destroy()
		closeGLFW()
		return nil, err
	}

	gw := &GLFWWindow{w: win, ctx: ctx, props: props}
	gw.SetVSync(props.VSync)
	gw.installCallbacks()
	return gw, nil
}

// Factory adapts NewGLFWWindow to core.WindowFactory.
func Factory(props core.WindowProps) (core.Window, error) {
	return NewGLFWWindow(props)
}

// Callbacks -> translate to event.Event
func (g *GLFWWindow) installCallbacks() {
	win := g.w
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		g.props.Width, g.props.Height = uint32(w), uint32(h)
		g.emit(&event.WindowResize{Width: uint32(w), Height: uint32(h)})
	})
	win.SetCloseCallback(func(*glfw.Window) {
		g.emit(&event.WindowClose{})
	})
	win.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		if focused {
			g.emit(&event.WindowFocus{})
			return
		}
		g.emit(&event.WindowLostFocus{})
	})
	win.SetPosCallback(func(_ *glfw.Window, x, y int) {
		g.emit(&event.WindowMoved{X: x, Y: y})
	})
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		k := input.KeyCode(key)
		switch action {
		case glfw.Press:
			g.emit(&event.KeyPressed{Key: k})
		case glfw.Repeat:
			g.emit(&event.KeyPressed{Key: k, RepeatCount: 1})
		case glfw.Release:
			g.emit(&event.KeyReleased{Key: k})
		}
	})
	win.SetCharCallback(func(_ *glfw.Window, char rune) {
		g.emit(&event.KeyTyped{Key: input.KeyCode(char)})
	})
	win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		b := input.MouseButton(button)
		switch action {
		case glfw.Press:
			g.emit(&event.MouseButtonPressed{Button: b})
		case glfw.Release:
			g.emit(&event.MouseButtonReleased{Button: b})
		}
	})
	win.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		g.emit(&event.MouseScrolled{XOffset: float32(xoff), YOffset: float32(yoff)})
	})
	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		g.emit(&event.MouseMoved{X: float32(x), Y: float32(y)})
	})
}

func (g *GLFWWindow) emit(ev event.Event) {
	if g.onEv != nil {
		g.onEv(ev)
	}
}

// OnUpdate pumps platform events, which reach the callback before it
// returns, then presents the frame.
func (g *GLFWWindow) OnUpdate() {
	glfw.PollEvents()
	if g.closing {
		g.closing = false
		g.emit(&event.WindowClose{})
	}
	g.ctx.SwapBuffers()
}

func (g *GLFWWindow) SetVSync(enabled bool) {
	if enabled {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	g.props.VSync = enabled
}

// core.Window impl
func (g *GLFWWindow) Width() uint32                         { return g.props.Width }
func (g *GLFWWindow) Height() uint32                        { return g.props.Height }
func (g *GLFWWindow) VSync() bool                           { return g.props.VSync }
func (g *GLFWWindow) SetTitle(t string)                     { g.w.SetTitle(t) }
func (g *GLFWWindow) SetEventCallback(cb func(event.Event)) { g.onEv = cb }
func (g *GLFWWindow) Input() input.Poller                   { return glfwInput{g.w} }
func (g *GLFWWindow) Native() any                           { return g.w }
func (g *GLFWWindow) RequestClose()                         { g.closing = true }

func (g *GLFWWindow) Close() error {
	if g.w == nil {
		return nil
	}
	g.w.Destroy()
	g.w = nil
	closeGLFW()
	return nil
}

func closeGLFW() {
	openWindows--
	if openWindows == 0 {
		glfw.Terminate()
	}
}

// glfwInput polls GLFW directly instead of tracking events.
type glfwInput struct{ w *glfw.Window }

func (in glfwInput) IsKeyPressed(k input.KeyCode) bool {
	state := in.w.GetKey(glfw.Key(k))
	return state == glfw.Press || state == glfw.Repeat
}

func (in glfwInput) IsMouseButtonPressed(b input.MouseButton) bool {
	return in.w.GetMouseButton(glfw.MouseButton(b)) == glfw.Press
}

func (in glfwInput) MousePosition() (float32, float32) {
	x, y := in.w.GetCursorPos()
	return float32(x), float32(y)
}

func (in glfwInput) MouseX() float32 {
	x, _ := in.MousePosition()
	return x
}

func (in glfwInput) MouseY() float32 {
	_, y := in.MousePosition()
	return y
}
