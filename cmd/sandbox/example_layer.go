package main

import (
	"go.uber.org/zap"

	"github.com/hubastard/strata/engine/core"
	"github.com/hubastard/strata/engine/event"
	"github.com/hubastard/strata/engine/input"
	"github.com/hubastard/strata/engine/logging"
	"github.com/hubastard/strata/engine/profiler"
)

type renderer interface {
	Clear()
	SetViewport(x, y, w, h int)
}

// ------- Example layer -------
type ExampleLayer struct {
	core.BaseLayer
	r       renderer
	elapsed float64
	updates int
}

// NewExampleLayer accepts a nil renderer for windows without a GL context.
func NewExampleLayer(r renderer) *ExampleLayer {
	return &ExampleLayer{BaseLayer: core.NewBaseLayer("Example"), r: r}
}

func (l *ExampleLayer) OnAttach() {
	logging.Client().Info("example layer attached")
}

func (l *ExampleLayer) OnUpdate(dt float64) {
	end := profiler.Start("ExampleLayer.OnUpdate")
	defer end()

	l.updates++
	l.elapsed += dt
	if l.r != nil {
		l.r.Clear()
	}
	if core.Input().IsKeyPressed(input.KeyTab) {
		logging.Client().Debug("tab key is pressed (poll)")
	}
}

func (l *ExampleLayer) OnEvent(ev event.Event) {
	logging.Client().Debug("event", zap.Stringer("event", ev))

	d := event.NewDispatcher(ev)
	event.Dispatch(d, l.onKeyPressed)
	event.Dispatch(d, l.onWindowResize)
}

func (l *ExampleLayer) onKeyPressed(e *event.KeyPressed) bool {
	if e.Key == input.KeyEscape {
		core.Get().Window().RequestClose()
		return true
	}
	if e.Key == input.KeyTab {
		logging.Client().Debug("tab key is pressed (event)")
	}
	return false
}

func (l *ExampleLayer) onWindowResize(e *event.WindowResize) bool {
	if l.r != nil {
		l.r.SetViewport(0, 0, int(e.Width), int(e.Height))
	}
	return false
}
