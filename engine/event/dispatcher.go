package event

// Dispatcher routes one event to at most one handler. It is built on the
// stack for a single dispatch pass and never stored:
//
//	d := event.NewDispatcher(ev)
//	event.Dispatch(d, l.onResize)
//	event.Dispatch(d, l.onKeyPressed)
type Dispatcher struct {
	event Event
}

func NewDispatcher(e Event) Dispatcher { return Dispatcher{event: e} }

// Event returns the bound event.
func (d Dispatcher) Event() Event { return d.event }

// Dispatch calls fn if the bound event is a T, storing fn's result as the
// event's handled state, and reports whether it matched. A mismatch is a
// no-op. T must be one of the pointer variants of this package (*KeyPressed,
// *WindowClose, ...).
func Dispatch[T Event](d Dispatcher, fn func(T) bool) bool {
	var static T
	if d.event == nil || d.event.Type() != static.Type() {
		return false
	}
	e, ok := d.event.(T)
	if !ok {
		return false
	}
	e.SetHandled(fn(e))
	return true
}
