package event

import (
	"testing"

	"github.com/hubastard/strata/engine/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allVariants() []Event {
	return []Event{
		&WindowClose{},
		&WindowResize{Width: 1, Height: 2},
		&WindowFocus{},
		&WindowLostFocus{},
		&WindowMoved{X: 3, Y: 4},
		&AppTick{},
		&AppUpdate{},
		&AppRender{},
		&KeyPressed{Key: input.KeyA},
		&KeyReleased{Key: input.KeyA},
		&KeyTyped{Key: input.KeyA},
		&MouseButtonPressed{Button: input.MouseButtonLeft},
		&MouseButtonReleased{Button: input.MouseButtonLeft},
		&MouseMoved{X: 1, Y: 2},
		&MouseScrolled{XOffset: 0, YOffset: 1},
	}
}

func TestEveryTypeHasOneVariant(t *testing.T) {
	seen := map[Type]bool{}
	for _, e := range allVariants() {
		require.False(t, seen[e.Type()], "duplicate type %s", e.Type())
		seen[e.Type()] = true
		assert.False(t, e.Handled(), "%s starts handled", Name(e))
		assert.NotEqual(t, CategoryNone, Categories(e), "%s has no category", Name(e))
	}
	assert.Len(t, seen, int(typeCount)-1)
}

func TestCategories(t *testing.T) {
	moved := &MouseMoved{X: 5, Y: 5}
	assert.True(t, InCategory(moved, CategoryMouse))
	assert.True(t, InCategory(moved, CategoryInput))
	assert.False(t, InCategory(moved, CategoryKeyboard))
	assert.False(t, InCategory(moved, CategoryMouseButton))

	key := &KeyPressed{Key: input.KeyA}
	assert.True(t, InCategory(key, CategoryKeyboard))
	assert.True(t, InCategory(key, CategoryInput))
	assert.False(t, InCategory(key, CategoryMouse))

	btn := &MouseButtonPressed{}
	assert.True(t, InCategory(btn, CategoryMouseButton|CategoryKeyboard))

	assert.True(t, InCategory(&WindowResize{}, CategoryApplication))
	assert.False(t, InCategory(&WindowResize{}, CategoryInput))
}

func TestAppEventsKeepTheirOwnType(t *testing.T) {
	assert.Equal(t, TypeAppTick, (&AppTick{}).Type())
	assert.Equal(t, TypeAppRender, (&AppRender{}).Type())
	assert.Equal(t, TypeAppUpdate, (&AppUpdate{}).Type())
}

func TestStrings(t *testing.T) {
	cases := []struct {
		ev   Event
		want string
	}{
		{&WindowResize{Width: 800, Height: 600}, "WindowResizeEvent: 800, 600"},
		{&WindowClose{}, "WindowClose"},
		{&WindowMoved{X: 10, Y: 20}, "WindowMovedEvent: 10, 20"},
		{&KeyPressed{Key: 65, RepeatCount: 2}, "KeyPressedEvent: 65 (2 repeats)"},
		{&KeyReleased{Key: 65}, "KeyReleasedEvent: 65"},
		{&KeyTyped{Key: 65}, "KeyTypedEvent: 65"},
		{&MouseMoved{X: 1.5, Y: 2}, "MouseMovedEvent: 1.5, 2"},
		{&MouseScrolled{XOffset: 0, YOffset: -1}, "MouseScrolledEvent: 0, -1"},
		{&MouseButtonPressed{Button: 0}, "MouseButtonPressedEvent: 0"},
		{&MouseButtonReleased{Button: 1}, "MouseButtonReleasedEvent: 1"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.ev.String())
	}
}

func TestTypeAndCategoryNames(t *testing.T) {
	assert.Equal(t, "MouseScrolled", TypeMouseScrolled.String())
	assert.Equal(t, "Unknown", Type(200).String())
	assert.Equal(t, CategoryNone, Type(200).Categories())
	assert.Equal(t, "Input|Mouse", (CategoryMouse | CategoryInput).String())
	assert.Equal(t, "None", CategoryNone.String())
}
