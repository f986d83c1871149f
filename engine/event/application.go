package event

import "fmt"

type WindowClose struct{ Base }

func (*WindowClose) Type() Type       { return TypeWindowClose }
func (e *WindowClose) String() string { return e.Type().String() }

// WindowResize reports the new framebuffer size in pixels.
type WindowResize struct {
	Base
	Width, Height uint32
}

func (*WindowResize) Type() Type { return TypeWindowResize }
func (e *WindowResize) String() string {
	return fmt.Sprintf("WindowResizeEvent: %d, %d", e.Width, e.Height)
}

type WindowFocus struct{ Base }

func (*WindowFocus) Type() Type       { return TypeWindowFocus }
func (e *WindowFocus) String() string { return e.Type().String() }

type WindowLostFocus struct{ Base }

func (*WindowLostFocus) Type() Type       { return TypeWindowLostFocus }
func (e *WindowLostFocus) String() string { return e.Type().String() }

// WindowMoved reports the window's new screen position.
type WindowMoved struct {
	Base
	X, Y int
}

func (*WindowMoved) Type() Type { return TypeWindowMoved }
func (e *WindowMoved) String() string {
	return fmt.Sprintf("WindowMovedEvent: %d, %d", e.X, e.Y)
}

type AppTick struct{ Base }

func (*AppTick) Type() Type       { return TypeAppTick }
func (e *AppTick) String() string { return e.Type().String() }

type AppUpdate struct{ Base }

func (*AppUpdate) Type() Type       { return TypeAppUpdate }
func (e *AppUpdate) String() string { return e.Type().String() }

type AppRender struct{ Base }

func (*AppRender) Type() Type       { return TypeAppRender }
func (e *AppRender) String() string { return e.Type().String() }
