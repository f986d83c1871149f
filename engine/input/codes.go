package input

// KeyCode identifies a keyboard key. Values match GLFW key tokens so the
// platform layer can pass them through untranslated.
type KeyCode int

const (
	KeyUnknown KeyCode = -1

	// Printable keys (ASCII).
	KeySpace        KeyCode = 32
	KeyApostrophe   KeyCode = 39
	KeyComma        KeyCode = 44
	KeyMinus        KeyCode = 45
	KeyPeriod       KeyCode = 46
	KeySlash        KeyCode = 47
	Key0            KeyCode = 48
	Key1            KeyCode = 49
	Key2            KeyCode = 50
	Key3            KeyCode = 51
	Key4            KeyCode = 52
	Key5            KeyCode = 53
	Key6            KeyCode = 54
	Key7            KeyCode = 55
	Key8            KeyCode = 56
	Key9            KeyCode = 57
	KeySemicolon    KeyCode = 59
	KeyEqual        KeyCode = 61
	KeyA            KeyCode = 65
	KeyB            KeyCode = 66
	KeyC            KeyCode = 67
	KeyD            KeyCode = 68
	KeyE            KeyCode = 69
	KeyF            KeyCode = 70
	KeyG            KeyCode = 71
	KeyH            KeyCode = 72
	KeyI            KeyCode = 73
	KeyJ            KeyCode = 74
	KeyK            KeyCode = 75
	KeyL            KeyCode = 76
	KeyM            KeyCode = 77
	KeyN            KeyCode = 78
	KeyO            KeyCode = 79
	KeyP            KeyCode = 80
	KeyQ            KeyCode = 81
	KeyR            KeyCode = 82
	KeyS            KeyCode = 83
	KeyT            KeyCode = 84
	KeyU            KeyCode = 85
	KeyV            KeyCode = 86
	KeyW            KeyCode = 87
	KeyX            KeyCode = 88
	KeyY            KeyCode = 89
	KeyZ            KeyCode = 90
	KeyLeftBracket  KeyCode = 91
	KeyBackslash    KeyCode = 92
	KeyRightBracket KeyCode = 93
	KeyGraveAccent  KeyCode = 96

	// Function keys.
	KeyEscape       KeyCode = 256
	KeyEnter        KeyCode = 257
	KeyTab          KeyCode = 258
	KeyBackspace    KeyCode = 259
	KeyInsert       KeyCode = 260
	KeyDelete       KeyCode = 261
	KeyRight        KeyCode = 262
	KeyLeft         KeyCode = 263
	KeyDown         KeyCode = 264
	KeyUp           KeyCode = 265
	KeyPageUp       KeyCode = 266
	KeyPageDown     KeyCode = 267
	KeyHome         KeyCode = 268
	KeyEnd          KeyCode = 269
	KeyCapsLock     KeyCode = 280
	KeyScrollLock   KeyCode = 281
	KeyNumLock      KeyCode = 282
	KeyPrintScreen  KeyCode = 283
	KeyPause        KeyCode = 284
	KeyF1           KeyCode = 290
	KeyF2           KeyCode = 291
	KeyF3           KeyCode = 292
	KeyF4           KeyCode = 293
	KeyF5           KeyCode = 294
	KeyF6           KeyCode = 295
	KeyF7           KeyCode = 296
	KeyF8           KeyCode = 297
	KeyF9           KeyCode = 298
	KeyF10          KeyCode = 299
	KeyF11          KeyCode = 300
	KeyF12          KeyCode = 301
	KeyLeftShift    KeyCode = 340
	KeyLeftControl  KeyCode = 341
	KeyLeftAlt      KeyCode = 342
	KeyLeftSuper    KeyCode = 343
	KeyRightShift   KeyCode = 344
	KeyRightControl KeyCode = 345
	KeyRightAlt     KeyCode = 346
	KeyRightSuper   KeyCode = 347
	KeyMenu         KeyCode = 348

	KeyLast = KeyMenu
)

// MouseButton identifies a mouse button (GLFW numbering).
type MouseButton int

const (
	MouseButton1 MouseButton = iota
	MouseButton2
	MouseButton3
	MouseButton4
	MouseButton5
	MouseButton6
	MouseButton7
	MouseButton8

	MouseButtonLast   = MouseButton8
	MouseButtonLeft   = MouseButton1
	MouseButtonRight  = MouseButton2
	MouseButtonMiddle = MouseButton3
)

// Poller answers "what is held right now" questions, as opposed to events
// which report transitions.
type Poller interface {
	IsKeyPressed(k KeyCode) bool
	IsMouseButtonPressed(b MouseButton) bool
	MousePosition() (x, y float32)
	MouseX() float32
	MouseY() float32
}
