package event

import (
	"fmt"

	"github.com/hubastard/strata/engine/input"
)

type MouseMoved struct {
	Base
	X, Y float32
}

func (*MouseMoved) Type() Type { return TypeMouseMoved }
func (e *MouseMoved) String() string {
	return fmt.Sprintf("MouseMovedEvent: %g, %g", e.X, e.Y)
}

type MouseScrolled struct {
	Base
	XOffset, YOffset float32
}

func (*MouseScrolled) Type() Type { return TypeMouseScrolled }
func (e *MouseScrolled) String() string {
	return fmt.Sprintf("MouseScrolledEvent: %g, %g", e.XOffset, e.YOffset)
}

type MouseButtonPressed struct {
	Base
	Button input.MouseButton
}

func (*MouseButtonPressed) Type() Type { return TypeMouseButtonPressed }
func (e *MouseButtonPressed) String() string {
	return fmt.Sprintf("MouseButtonPressedEvent: %d", e.Button)
}

type MouseButtonReleased struct {
	Base
	Button input.MouseButton
}

func (*MouseButtonReleased) Type() Type { return TypeMouseButtonReleased }
func (e *MouseButtonReleased) String() string {
	return fmt.Sprintf("MouseButtonReleasedEvent: %d", e.Button)
}
