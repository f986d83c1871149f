package event

import (
	"fmt"

	"github.com/hubastard/strata/engine/input"
)

// KeyPressed is sent on press and again for every auto-repeat; RepeatCount
// is 0 for the initial press.
type KeyPressed struct {
	Base
	Key         input.KeyCode
	RepeatCount int
}

func (*KeyPressed) Type() Type { return TypeKeyPressed }
func (e *KeyPressed) String() string {
	return fmt.Sprintf("KeyPressedEvent: %d (%d repeats)", e.Key, e.RepeatCount)
}

type KeyReleased struct {
	Base
	Key input.KeyCode
}

func (*KeyReleased) Type() Type { return TypeKeyReleased }
func (e *KeyReleased) String() string {
	return fmt.Sprintf("KeyReleasedEvent: %d", e.Key)
}

// KeyTyped carries a text input code point rather than a physical key.
type KeyTyped struct {
	Base
	Key input.KeyCode
}

func (*KeyTyped) Type() Type { return TypeKeyTyped }
func (e *KeyTyped) String() string {
	return fmt.Sprintf("KeyTypedEvent: %d", e.Key)
}
