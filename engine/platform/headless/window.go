// Package headless implements core.Window without a native surface. Events
// are scripted with Push and delivered on the next OnUpdate, which makes it
// the window of choice for CI runs and tests.
package headless

import (
	"go.uber.org/zap"

	"github.com/hubastard/strata/engine/core"
	"github.com/hubastard/strata/engine/event"
	"github.com/hubastard/strata/engine/input"
	"github.com/hubastard/strata/engine/logging"
)

type Window struct {
	props   core.WindowProps
	onEv    func(event.Event)
	queue   []event.Event
	tracker *input.Tracker

	frames     int
	closeAfter int
	closeSent  bool
	closed     bool
}

func New(props core.WindowProps) *Window {
	logging.Core().Info("creating headless window",
		zap.String("title", props.Title),
		zap.Uint32("width", props.Width),
		zap.Uint32("height", props.Height))
	return &Window{props: props, tracker: input.NewTracker()}
}

// Factory returns a core.WindowFactory that closes the window after frames
// updates; 0 keeps it open until RequestClose.
func Factory(frames int) core.WindowFactory {
	return func(props core.WindowProps) (core.Window, error) {
		w := New(props)
		w.CloseAfter(frames)
		return w, nil
	}
}

// Push queues events for the next OnUpdate.
func (w *Window) Push(evs ...event.Event) { w.queue = append(w.queue, evs...) }

// CloseAfter emits a WindowClose on the n-th OnUpdate; 0 disables.
func (w *Window) CloseAfter(n int) { w.closeAfter = n }

func (w *Window) Frames() int   { return w.frames }
func (w *Window) Title() string { return w.props.Title }
func (w *Window) Closed() bool  { return w.closed }

// OnUpdate delivers the queued events in order. Events pushed while
// delivering wait for the next update.
func (w *Window) OnUpdate() {
	w.frames++
	if w.closeAfter > 0 && w.frames >= w.closeAfter && !w.closeSent {
		w.closeSent = true
		w.queue = append(w.queue, &event.WindowClose{})
	}

	evs := w.queue
	w.queue = nil
	for _, ev := range evs {
		w.track(ev)
		if w.onEv != nil {
			w.onEv(ev)
		}
	}
}

// track keeps the window's own state in step, as a platform window would.
func (w *Window) track(ev event.Event) {
	switch e := ev.(type) {
	case *event.WindowResize:
		w.props.Width, w.props.Height = e.Width, e.Height
	case *event.WindowLostFocus:
		w.tracker.Reset()
	case *event.KeyPressed:
		w.tracker.SetKey(e.Key, true)
	case *event.KeyReleased:
		w.tracker.SetKey(e.Key, false)
	case *event.MouseButtonPressed:
		w.tracker.SetMouseButton(e.Button, true)
	case *event.MouseButtonReleased:
		w.tracker.SetMouseButton(e.Button, false)
	case *event.MouseMoved:
		w.tracker.SetMousePosition(e.X, e.Y)
	}
}

func (w *Window) Width() uint32                         { return w.props.Width }
func (w *Window) Height() uint32                        { return w.props.Height }
func (w *Window) SetEventCallback(cb func(event.Event)) { w.onEv = cb }
func (w *Window) SetVSync(enabled bool)                 { w.props.VSync = enabled }
func (w *Window) VSync() bool                           { return w.props.VSync }
func (w *Window) SetTitle(title string)                 { w.props.Title = title }
func (w *Window) Input() input.Poller                   { return w.tracker }
func (w *Window) Native() any                           { return nil }

func (w *Window) RequestClose() {
	w.queue = append(w.queue, &event.WindowClose{})
}

func (w *Window) Close() error {
	w.closed = true
	return nil
}
