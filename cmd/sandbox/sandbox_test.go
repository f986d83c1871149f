package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubastard/strata/engine/config"
	"github.com/hubastard/strata/engine/core"
	"github.com/hubastard/strata/engine/event"
	"github.com/hubastard/strata/engine/input"
	"github.com/hubastard/strata/engine/overlay"
	"github.com/hubastard/strata/engine/platform/headless"
)

type fakeRenderer struct {
	clears   int
	viewport [4]int
}

func (r *fakeRenderer) Clear() { r.clears++ }

func (r *fakeRenderer) SetViewport(x, y, w, h int) { r.viewport = [4]int{x, y, w, h} }

func newHeadlessSandbox(t *testing.T, frames int) (*core.Application, *headless.Window) {
	t.Helper()
	app, err := newSandbox(config.Default(), headless.Factory(frames))
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })
	return app, app.Window().(*headless.Window)
}

func TestSandboxStack(t *testing.T) {
	app, _ := newHeadlessSandbox(t, 1)

	layers := app.Layers().Layers()
	require.Len(t, layers, 2)
	assert.Equal(t, "Example", layers[0].Name())
	assert.Equal(t, "DebugOverlay", layers[1].Name())
	assert.Equal(t, 1, app.Layers().LayerCount())
}

func TestSandboxRunsHeadless(t *testing.T) {
	app, win := newHeadlessSandbox(t, 5)
	app.Run()

	assert.Equal(t, 5, win.Frames())
	ex := app.Layers().Layers()[0].(*ExampleLayer)
	assert.Equal(t, 5, ex.updates)
	ov := app.Layers().Layers()[1].(*overlay.Layer)
	assert.Equal(t, uint64(5), ov.Frames())
}

func TestEscapeClosesWindow(t *testing.T) {
	app, win := newHeadlessSandbox(t, 0)
	esc := &event.KeyPressed{Key: input.KeyEscape}
	win.Push(esc)

	app.Run()
	assert.True(t, esc.Handled())
	assert.Equal(t, 2, win.Frames(), "close is requested on the first frame and delivered on the second")
	assert.False(t, app.Running())
}

func TestOtherKeysPassThrough(t *testing.T) {
	app, win := newHeadlessSandbox(t, 1)
	tab := &event.KeyPressed{Key: input.KeyTab}
	win.Push(tab)

	app.Run()
	assert.False(t, tab.Handled())
}

func TestExampleLayerRenderer(t *testing.T) {
	app, err := core.New(core.DefaultWindowProps(), headless.Factory(2))
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	r := &fakeRenderer{}
	app.PushLayer(NewExampleLayer(r))
	app.Window().(*headless.Window).Push(&event.WindowResize{Width: 800, Height: 600})

	app.Run()
	assert.Equal(t, 2, r.clears)
	assert.Equal(t, [4]int{0, 0, 800, 600}, r.viewport)
}
