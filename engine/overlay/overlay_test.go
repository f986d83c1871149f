package overlay

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubastard/strata/engine/core"
	"github.com/hubastard/strata/engine/event"
	"github.com/hubastard/strata/engine/input"
	"github.com/hubastard/strata/engine/platform/headless"
)

func newApp(t *testing.T, frames int) (*core.Application, *headless.Window) {
	t.Helper()
	app, err := core.New(core.WindowProps{Title: "Sandbox", Width: 640, Height: 480}, headless.Factory(frames))
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })
	return app, app.Window().(*headless.Window)
}

// stepClock advances by step on every read.
func stepClock(step time.Duration) func() time.Time {
	t := time.Unix(0, 0)
	return func() time.Time {
		now := t
		t = t.Add(step)
		return now
	}
}

func TestAttachReadsDisplaySize(t *testing.T) {
	app, _ := newApp(t, 0)
	o := New("Sandbox")
	app.PushDebugOverlay(o)

	assert.Equal(t, float32(640), o.IO().DisplayWidth)
	assert.Equal(t, float32(480), o.IO().DisplayHeight)
}

func TestRecordsInputWithoutHandling(t *testing.T) {
	app, win := newApp(t, 0)
	o := New("Sandbox")
	app.PushDebugOverlay(o)

	evs := []event.Event{
		&event.MouseButtonPressed{Button: input.MouseButtonRight},
		&event.MouseMoved{X: 10, Y: 20},
		&event.MouseScrolled{XOffset: 0, YOffset: 1},
		&event.MouseScrolled{XOffset: 0, YOffset: 2},
		&event.KeyPressed{Key: input.KeyW},
		&event.KeyTyped{Key: 'w'},
		&event.WindowResize{Width: 800, Height: 600},
	}
	win.Push(evs...)
	win.OnUpdate()

	io := o.IO()
	assert.True(t, io.MouseDown[input.MouseButtonRight])
	assert.Equal(t, float32(10), io.MouseX)
	assert.Equal(t, float32(3), io.WheelY)
	assert.True(t, io.KeysDown[input.KeyW])
	assert.Equal(t, []rune{'w'}, io.Chars)
	assert.Equal(t, float32(800), io.DisplayWidth)
	for _, ev := range evs {
		assert.False(t, ev.Handled(), "%s", ev)
	}

	win.Push(&event.KeyReleased{Key: input.KeyW}, &event.MouseButtonReleased{Button: input.MouseButtonRight})
	win.OnUpdate()
	assert.False(t, io.KeysDown[input.KeyW])
	assert.False(t, io.MouseDown[input.MouseButtonRight])
}

func TestEndConsumesFrameInput(t *testing.T) {
	o := New("Sandbox")
	o.now = stepClock(time.Millisecond)
	o.OnEvent(&event.KeyTyped{Key: 'x'})
	o.OnEvent(&event.MouseScrolled{YOffset: 1})

	o.Begin()
	assert.InDelta(t, 1.0/60.0, o.IO().DeltaTime, 1e-9)
	o.End()

	assert.Empty(t, o.IO().Chars)
	assert.Zero(t, o.IO().WheelY)
	assert.Equal(t, uint64(1), o.Frames())
}

func TestPublishesFPSInTitle(t *testing.T) {
	app, win := newApp(t, 30)
	o := New("Sandbox")
	o.now = stepClock(50 * time.Millisecond)
	app.PushDebugOverlay(o)

	app.Run()

	assert.Equal(t, uint64(30), o.Frames())
	// 1/60 s for the first frame, then 50 ms steps: 21 frames fill the first second.
	assert.InDelta(t, 21/1.0166667, o.FPS(), 0.01)
	assert.Equal(t, "Sandbox | 21 FPS", win.Title())

	app.PopOverlay(o)
	assert.Equal(t, "Sandbox", win.Title())
}
