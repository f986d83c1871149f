package input

// Tracker is a Poller that remembers state reported to it instead of
// querying a native window. Single-threaded, like the main loop feeding it.
type Tracker struct {
	keys           map[KeyCode]bool
	buttons        map[MouseButton]bool
	mouseX, mouseY float32
}

func NewTracker() *Tracker {
	return &Tracker{keys: map[KeyCode]bool{}, buttons: map[MouseButton]bool{}}
}

func (t *Tracker) SetKey(k KeyCode, down bool) {
	if down {
		t.keys[k] = true
		return
	}
	delete(t.keys, k)
}

func (t *Tracker) SetMouseButton(b MouseButton, down bool) {
	if down {
		t.buttons[b] = true
		return
	}
	delete(t.buttons, b)
}

func (t *Tracker) SetMousePosition(x, y float32) { t.mouseX, t.mouseY = x, y }

// Reset forgets every held key and button, e.g. after focus loss.
func (t *Tracker) Reset() {
	clear(t.keys)
	clear(t.buttons)
}

func (t *Tracker) IsKeyPressed(k KeyCode) bool             { return t.keys[k] }
func (t *Tracker) IsMouseButtonPressed(b MouseButton) bool { return t.buttons[b] }
func (t *Tracker) MousePosition() (float32, float32)       { return t.mouseX, t.mouseY }
func (t *Tracker) MouseX() float32                         { return t.mouseX }
func (t *Tracker) MouseY() float32                         { return t.mouseY }
