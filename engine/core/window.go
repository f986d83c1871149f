package core

import (
	"github.com/hubastard/strata/engine/event"
	"github.com/hubastard/strata/engine/input"
)

// WindowProps are the creation parameters of a window.
type WindowProps struct {
	Title  string
	Width  uint32
	Height uint32
	VSync  bool
}

func DefaultWindowProps() WindowProps {
	return WindowProps{Title: "Strata Engine", Width: 1280, Height: 720, VSync: true}
}

// Window abstraction over a platform surface.
//
// OnUpdate pumps pending platform events and presents the frame. Every event
// pumped is delivered to the callback synchronously, before OnUpdate
// returns.
type Window interface {
	OnUpdate()
	Width() uint32
	Height() uint32
	SetEventCallback(cb func(event.Event))
	SetVSync(enabled bool)
	VSync() bool
	SetTitle(title string)
	Input() input.Poller
	Native() any
	// RequestClose makes the next OnUpdate emit a WindowClose event.
	RequestClose()
	Close() error
}

// WindowFactory creates the platform window for an Application.
type WindowFactory func(WindowProps) (Window, error)

// Overlay is the debug overlay layer. Application brackets the
// OnOverlayRender pass with Begin and End.
type Overlay interface {
	Layer
	Begin()
	End()
}
