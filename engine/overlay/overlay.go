// Package overlay provides the debug overlay layer: it brackets the overlay
// render pass of every frame, keeps an input snapshot built from events and
// reports frame rate in the window title.
package overlay

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/hubastard/strata/engine/core"
	"github.com/hubastard/strata/engine/event"
	"github.com/hubastard/strata/engine/input"
	"github.com/hubastard/strata/engine/logging"
	"github.com/hubastard/strata/engine/profiler"
)

// IO is the overlay's view of the outside world for the current frame.
type IO struct {
	DisplayWidth, DisplayHeight float32
	DeltaTime                   float64 // seconds

	MouseX, MouseY float32
	MouseDown      [input.MouseButtonLast + 1]bool
	WheelX, WheelY float32 // accumulated this frame

	KeysDown map[input.KeyCode]bool
	Chars    []rune // typed this frame
}

// Layer is the debug overlay. It never handles events, so everything it
// observes still reaches the layers below.
type Layer struct {
	core.BaseLayer

	// Title is the window title the FPS counter is appended to.
	Title string
	// Interval between title and log refreshes.
	Interval time.Duration

	io     IO
	window core.Window
	now    func() time.Time

	frameStart time.Time
	frames     uint64
	acc        time.Duration
	accFrames  int
	fps        float64
}

func New(title string) *Layer {
	return &Layer{
		BaseLayer: core.NewBaseLayer("DebugOverlay"),
		Title:     title,
		Interval:  time.Second,
		io:        IO{KeysDown: map[input.KeyCode]bool{}},
		now:       time.Now,
	}
}

func (l *Layer) IO() *IO        { return &l.io }
func (l *Layer) Frames() uint64 { return l.frames }
func (l *Layer) FPS() float64   { return l.fps }

func (l *Layer) OnAttach() {
	l.window = core.Get().Window()
	l.io.DisplayWidth = float32(l.window.Width())
	l.io.DisplayHeight = float32(l.window.Height())
	logging.Core().Debug("debug overlay attached",
		zap.Float32("width", l.io.DisplayWidth),
		zap.Float32("height", l.io.DisplayHeight))
}

func (l *Layer) OnDetach() {
	if l.window != nil && l.Title != "" {
		l.window.SetTitle(l.Title)
	}
	l.window = nil
}

// Begin opens an overlay frame. The first frame assumes 60 Hz.
func (l *Layer) Begin() {
	now := l.now()
	if l.frameStart.IsZero() {
		l.io.DeltaTime = 1.0 / 60.0
	} else {
		l.io.DeltaTime = now.Sub(l.frameStart).Seconds()
	}
	l.frameStart = now
}

// End closes the overlay frame: per-frame input is consumed and the frame
// rate is published once per Interval.
func (l *Layer) End() {
	l.frames++
	l.io.Chars = l.io.Chars[:0]
	l.io.WheelX, l.io.WheelY = 0, 0

	l.acc += time.Duration(l.io.DeltaTime * float64(time.Second))
	l.accFrames++
	if l.acc < l.Interval || l.acc <= 0 {
		return
	}
	l.fps = float64(l.accFrames) / l.acc.Seconds()
	l.acc, l.accFrames = 0, 0

	if l.window != nil {
		l.window.SetTitle(fmt.Sprintf("%s | %.0f FPS", l.Title, l.fps))
	}
	logging.Core().Debug("frame stats",
		zap.Uint64("frame", l.frames),
		zap.Float64("fps", l.fps),
		zap.Float64("ms", 1000/l.fps),
		zap.Uint64("heap_bytes", profiler.MemoryUsage()),
		zap.Int("goroutines", profiler.NumGoroutine()))
}

func (l *Layer) OnEvent(ev event.Event) {
	d := event.NewDispatcher(ev)
	event.Dispatch(d, l.onMouseButtonPressed)
	event.Dispatch(d, l.onMouseButtonReleased)
	event.Dispatch(d, l.onMouseMoved)
	event.Dispatch(d, l.onMouseScrolled)
	event.Dispatch(d, l.onKeyPressed)
	event.Dispatch(d, l.onKeyTyped)
	event.Dispatch(d, l.onKeyReleased)
	event.Dispatch(d, l.onWindowResize)
}

func (l *Layer) onMouseButtonPressed(e *event.MouseButtonPressed) bool {
	if e.Button >= 0 && e.Button <= input.MouseButtonLast {
		l.io.MouseDown[e.Button] = true
	}
	return false
}

func (l *Layer) onMouseButtonReleased(e *event.MouseButtonReleased) bool {
	if e.Button >= 0 && e.Button <= input.MouseButtonLast {
		l.io.MouseDown[e.Button] = false
	}
	return false
}

func (l *Layer) onMouseMoved(e *event.MouseMoved) bool {
	l.io.MouseX, l.io.MouseY = e.X, e.Y
	return false
}

func (l *Layer) onMouseScrolled(e *event.MouseScrolled) bool {
	l.io.WheelX += e.XOffset
	l.io.WheelY += e.YOffset
	return false
}

func (l *Layer) onKeyPressed(e *event.KeyPressed) bool {
	l.io.KeysDown[e.Key] = true
	return false
}

func (l *Layer) onKeyReleased(e *event.KeyReleased) bool {
	delete(l.io.KeysDown, e.Key)
	return false
}

func (l *Layer) onKeyTyped(e *event.KeyTyped) bool {
	l.io.Chars = append(l.io.Chars, rune(e.Key))
	return false
}

func (l *Layer) onWindowResize(e *event.WindowResize) bool {
	l.io.DisplayWidth, l.io.DisplayHeight = float32(e.Width), float32(e.Height)
	return false
}
