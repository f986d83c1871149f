package core

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/hubastard/strata/engine/event"
	"github.com/hubastard/strata/engine/input"
	"github.com/hubastard/strata/engine/logging"
	"github.com/hubastard/strata/engine/profiler"
)

// Application owns the window, the layer stack and the main loop. At most
// one exists at a time; it is reachable through Get.
type Application struct {
	window    Window
	layers    LayerStack
	overlay   Overlay
	running   bool
	lastFrame time.Time
	now       func() time.Time
}

// The main loop is single-threaded, so the handle needs no locking.
var instance *Application

// New creates the application and its window. Creating a second one while
// the first is alive is a programming error and panics.
func New(props WindowProps, newWindow WindowFactory) (*Application, error) {
	Assert(instance == nil, "application already exists")
	Assert(newWindow != nil, "window factory is nil")

	win, err := newWindow(props)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	Assert(win != nil, "window factory returned nil")

	app := &Application{window: win, running: true, now: time.Now}
	instance = app
	win.SetEventCallback(app.OnEvent)

	logging.Core().Info("application created",
		zap.String("title", props.Title),
		zap.Uint32("width", win.Width()),
		zap.Uint32("height", win.Height()))
	return app, nil
}

// Get returns the live application.
func Get() *Application {
	Assert(instance != nil, "no application")
	return instance
}

// Input polls the live application's window.
func Input() input.Poller { return Get().window.Input() }

// Assert panics with msg when cond is false, after logging it on the core
// logger. It guards preconditions that have no recovery.
func Assert(cond bool, msg string) {
	if cond {
		return
	}
	logging.Core().Error("assertion failed", zap.String("reason", msg))
	panic("assertion failed: " + msg)
}

func (a *Application) Window() Window      { return a.window }
func (a *Application) Layers() *LayerStack { return &a.layers }
func (a *Application) Running() bool       { return a.running }

// PushLayer adds l below the overlays, then attaches it.
func (a *Application) PushLayer(l Layer) {
	a.layers.PushLayer(l)
	a.attached(l)
}

// PushOverlay adds l on top of the stack, then attaches it.
func (a *Application) PushOverlay(l Layer) {
	a.layers.PushOverlay(l)
	a.attached(l)
}

// PushDebugOverlay pushes o as an overlay and brackets every overlay render
// pass with its Begin and End.
func (a *Application) PushDebugOverlay(o Overlay) {
	Assert(a.overlay == nil, "debug overlay already set")
	a.overlay = o
	a.PushOverlay(o)
}

func (a *Application) attached(l Layer) {
	l.OnAttach()
	profiler.Layers(a.layers.Len())
	logging.Core().Debug("layer attached", zap.String("layer", l.Name()))
}

// PopLayer detaches l and removes it from the regular layers. The caller
// owns l afterwards. Reports false, without detaching, if l is absent.
func (a *Application) PopLayer(l Layer) bool {
	if !a.layers.containsLayer(l) {
		return false
	}
	l.OnDetach()
	a.layers.PopLayer(l)
	a.detached(l)
	return true
}

// PopOverlay is PopLayer for overlays.
func (a *Application) PopOverlay(l Layer) bool {
	if !a.layers.containsOverlay(l) {
		return false
	}
	l.OnDetach()
	a.layers.PopOverlay(l)
	if a.overlay != nil && Layer(a.overlay) == l {
		a.overlay = nil
	}
	a.detached(l)
	return true
}

func (a *Application) detached(l Layer) {
	profiler.Layers(a.layers.Len())
	logging.Core().Debug("layer detached", zap.String("layer", l.Name()))
}

// OnEvent is the window's event callback. The application reacts to
// WindowClose first; then the event walks the stack top to bottom until a
// layer leaves it handled.
func (a *Application) OnEvent(ev event.Event) {
	d := event.NewDispatcher(ev)
	event.Dispatch(d, a.onWindowClose)

	logging.Core().Debug("event", zap.Stringer("event", ev))

	for i := len(a.layers.layers) - 1; i >= 0; i-- {
		a.layers.layers[i].OnEvent(ev)
		if ev.Handled() {
			break
		}
	}
	profiler.Event(ev.Type().String(), ev.Handled())
}

func (a *Application) onWindowClose(*event.WindowClose) bool {
	a.running = false
	return true
}

// Run executes frames until a WindowClose event stops the application.
func (a *Application) Run() {
	for a.running {
		endFrame := profiler.Start("Application.Frame")

		now := a.now()
		var dt float64
		if !a.lastFrame.IsZero() {
			dt = now.Sub(a.lastFrame).Seconds()
		}
		a.lastFrame = now

		endUpdate := profiler.Start("LayerStack.OnUpdate")
		for _, l := range a.layers.layers {
			l.OnUpdate(dt)
		}
		endUpdate()

		endOverlay := profiler.Start("LayerStack.OnOverlayRender")
		if a.overlay != nil {
			a.overlay.Begin()
		}
		for _, l := range a.layers.layers {
			l.OnOverlayRender()
		}
		if a.overlay != nil {
			a.overlay.End()
		}
		endOverlay()

		a.window.OnUpdate()

		profiler.Frame()
		endFrame()
	}
	logging.Core().Info("application stopped")
}

// Close destroys the layer stack, then the window, and releases the
// application handle so a new one may be created.
func (a *Application) Close() error {
	a.layers.Destroy()
	a.overlay = nil

	var err error
	if a.window != nil {
		err = a.window.Close()
		a.window = nil
	}
	if instance == a {
		instance = nil
	}
	return err
}
