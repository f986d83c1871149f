// Package event defines the engine's closed set of window, application and
// input events and the dispatcher used to route them.
//
// Events are blocking: a window reports one, it is dispatched and propagated
// through the layer stack, and only then does control return to the window.
// Nothing is buffered across frames.
package event

import "strings"

// Type tags each concrete event.
type Type uint8

const (
	TypeNone Type = iota
	TypeWindowClose
	TypeWindowResize
	TypeWindowFocus
	TypeWindowLostFocus
	TypeWindowMoved
	TypeAppTick
	TypeAppUpdate
	TypeAppRender
	TypeKeyPressed
	TypeKeyReleased
	TypeKeyTyped
	TypeMouseButtonPressed
	TypeMouseButtonReleased
	TypeMouseMoved
	TypeMouseScrolled

	typeCount
)

// Category is a bitmask; one event may belong to several categories.
type Category uint8

const (
	CategoryApplication Category = 1 << iota
	CategoryInput
	CategoryKeyboard
	CategoryMouse
	CategoryMouseButton

	CategoryNone Category = 0
)

var categoryNames = [...]string{"Application", "Input", "Keyboard", "Mouse", "MouseButton"}

func (c Category) String() string {
	if c == CategoryNone {
		return "None"
	}
	var parts []string
	for i, name := range categoryNames {
		if c&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, "|")
}

// traits is the fixed per-variant declaration: display name and categories.
type traits struct {
	name       string
	categories Category
}

var table = [typeCount]traits{
	TypeNone:                {"None", CategoryNone},
	TypeWindowClose:         {"WindowClose", CategoryApplication},
	TypeWindowResize:        {"WindowResize", CategoryApplication},
	TypeWindowFocus:         {"WindowFocus", CategoryApplication},
	TypeWindowLostFocus:     {"WindowLostFocus", CategoryApplication},
	TypeWindowMoved:         {"WindowMoved", CategoryApplication},
	TypeAppTick:             {"AppTick", CategoryApplication},
	TypeAppUpdate:           {"AppUpdate", CategoryApplication},
	TypeAppRender:           {"AppRender", CategoryApplication},
	TypeKeyPressed:          {"KeyPressed", CategoryKeyboard | CategoryInput},
	TypeKeyReleased:         {"KeyReleased", CategoryKeyboard | CategoryInput},
	TypeKeyTyped:            {"KeyTyped", CategoryKeyboard | CategoryInput},
	TypeMouseButtonPressed:  {"MouseButtonPressed", CategoryMouseButton | CategoryMouse | CategoryInput},
	TypeMouseButtonReleased: {"MouseButtonReleased", CategoryMouseButton | CategoryMouse | CategoryInput},
	TypeMouseMoved:          {"MouseMoved", CategoryMouse | CategoryInput},
	TypeMouseScrolled:       {"MouseScrolled", CategoryMouse | CategoryInput},
}

func (t Type) String() string {
	if t >= typeCount {
		return "Unknown"
	}
	return table[t].name
}

// Categories returns the fixed category flags of the type.
func (t Type) Categories() Category {
	if t >= typeCount {
		return CategoryNone
	}
	return table[t].categories
}

// In reports whether the type belongs to any of the categories in c.
func (t Type) In(c Category) bool { return t.Categories()&c != 0 }

// Event is implemented only by the variants in this package.
//
// Type must report the static type of the concrete variant; Dispatch relies
// on it before touching the payload.
type Event interface {
	Type() Type
	String() string
	Handled() bool
	SetHandled(handled bool)
	isEvent()
}

// Base carries the handled flag shared by every variant.
type Base struct{ handled bool }

func (b *Base) Handled() bool     { return b.handled }
func (b *Base) SetHandled(h bool) { b.handled = h }
func (*Base) isEvent()            {}

// Name is the display name of e's type.
func Name(e Event) string { return e.Type().String() }

// Categories returns the category flags of e.
func Categories(e Event) Category { return e.Type().Categories() }

// InCategory reports whether e belongs to any of the categories in c.
func InCategory(e Event, c Category) bool { return e.Type().In(c) }
