package main

import (
	"github.com/hubastard/strata/engine/config"
	"github.com/hubastard/strata/engine/core"
	glbackend "github.com/hubastard/strata/engine/gfx/gl"
	"github.com/hubastard/strata/engine/overlay"
	"github.com/hubastard/strata/engine/platform"
)

// newSandbox builds the demo: the example layer at the bottom and the debug
// overlay on top.
func newSandbox(cfg *config.Config, newWindow core.WindowFactory) (*core.Application, error) {
	app, err := core.New(cfg.WindowProps(), newWindow)
	if err != nil {
		return nil, err
	}

	// Only a native window has a GL context to clear.
	var r renderer
	if _, ok := app.Window().(*platform.GLFWWindow); ok {
		r = glbackend.NewRenderer(cfg.ClearColor)
	}

	app.PushLayer(NewExampleLayer(r))
	app.PushDebugOverlay(overlay.New(cfg.Window.Title))
	return app, nil
}
