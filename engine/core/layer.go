package core

import "github.com/hubastard/strata/engine/event"

// Layer is a unit of per-frame behavior owned by a LayerStack.
//
// OnAttach runs right after the layer became reachable in the stack,
// OnDetach right before an explicit pop removes it. Destroying the stack
// does not call OnDetach; layers that hold resources past that point
// implement Disposer.
type Layer interface {
	Name() string
	OnAttach()
	OnDetach()
	OnUpdate(dt float64) // seconds since the previous frame
	OnOverlayRender()    // debug overlay pass, after every OnUpdate
	OnEvent(ev event.Event)
}

// Disposer is implemented by layers that release resources when the stack
// owning them is destroyed.
type Disposer interface {
	Dispose()
}

// BaseLayer gives embedders a name and no-op hooks so they override only
// what they need.
type BaseLayer struct {
	DebugName string
}

func NewBaseLayer(name string) BaseLayer { return BaseLayer{DebugName: name} }

func (l *BaseLayer) Name() string {
	if l.DebugName == "" {
		return "Layer"
	}
	return l.DebugName
}

func (*BaseLayer) OnAttach()              {}
func (*BaseLayer) OnDetach()              {}
func (*BaseLayer) OnUpdate(float64)       {}
func (*BaseLayer) OnOverlayRender()       {}
func (*BaseLayer) OnEvent(ev event.Event) {}

// LayerStack orders layers bottom to top: regular layers first, overlays
// after them. insert is the boundary and always equals the number of
// regular layers.
//
// Layers are compared by identity, so they must be comparable (in practice,
// pointers). The stack must not be mutated from inside a traversal; a layer
// that pushes or pops during its own OnUpdate or OnEvent gets undefined
// ordering for the rest of that pass.
type LayerStack struct {
	layers []Layer
	insert int
}

// PushLayer inserts l above every regular layer and below every overlay.
func (s *LayerStack) PushLayer(l Layer) {
	s.layers = append(s.layers, nil)
	copy(s.layers[s.insert+1:], s.layers[s.insert:])
	s.layers[s.insert] = l
	s.insert++
}

// PushOverlay puts l on top of the whole stack.
func (s *LayerStack) PushOverlay(l Layer) { s.layers = append(s.layers, l) }

// PopLayer removes l from the regular layers and hands it back to the
// caller. Reports false if l is not a regular layer of this stack.
func (s *LayerStack) PopLayer(l Layer) bool {
	i := s.indexOf(l, 0, s.insert)
	if i < 0 {
		return false
	}
	s.remove(i)
	s.insert--
	return true
}

// PopOverlay removes l from the overlays and hands it back to the caller.
func (s *LayerStack) PopOverlay(l Layer) bool {
	i := s.indexOf(l, s.insert, len(s.layers))
	if i < 0 {
		return false
	}
	s.remove(i)
	return true
}

func (s *LayerStack) containsLayer(l Layer) bool   { return s.indexOf(l, 0, s.insert) >= 0 }
func (s *LayerStack) containsOverlay(l Layer) bool { return s.indexOf(l, s.insert, len(s.layers)) >= 0 }

func (s *LayerStack) indexOf(l Layer, from, to int) int {
	for i := from; i < to; i++ {
		if s.layers[i] == l {
			return i
		}
	}
	return -1
}

func (s *LayerStack) remove(i int) {
	copy(s.layers[i:], s.layers[i+1:])
	s.layers[len(s.layers)-1] = nil
	s.layers = s.layers[:len(s.layers)-1]
}

// Len counts layers and overlays.
func (s *LayerStack) Len() int { return len(s.layers) }

// LayerCount counts regular layers only.
func (s *LayerStack) LayerCount() int { return s.insert }

// Layers returns a bottom-to-top copy of the stack.
func (s *LayerStack) Layers() []Layer {
	out := make([]Layer, len(s.layers))
	copy(out, s.layers)
	return out
}

// ForEach visits bottom to top: update and render order.
func (s *LayerStack) ForEach(f func(Layer)) {
	for _, l := range s.layers {
		f(l)
	}
}

// ForEachReverse visits top to bottom: event order. Returning true stops.
func (s *LayerStack) ForEachReverse(f func(Layer) bool) {
	for i := len(s.layers) - 1; i >= 0; i-- {
		if stop := f(s.layers[i]); stop {
			break
		}
	}
}

// Destroy releases every layer still owned, disposing each exactly once,
// and leaves the stack empty.
func (s *LayerStack) Destroy() {
	layers := s.layers
	s.layers, s.insert = nil, 0
	for _, l := range layers {
		if d, ok := l.(Disposer); ok {
			d.Dispose()
		}
	}
}
