package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrackerKeysAndButtons(t *testing.T) {
	tr := NewTracker()
	assert.False(t, tr.IsKeyPressed(KeyW))

	tr.SetKey(KeyW, true)
	tr.SetMouseButton(MouseButtonLeft, true)
	assert.True(t, tr.IsKeyPressed(KeyW))
	assert.True(t, tr.IsMouseButtonPressed(MouseButton1))
	assert.False(t, tr.IsMouseButtonPressed(MouseButtonRight))

	tr.SetKey(KeyW, false)
	assert.False(t, tr.IsKeyPressed(KeyW))

	tr.Reset()
	assert.False(t, tr.IsMouseButtonPressed(MouseButtonLeft))
}

func TestTrackerMouse(t *testing.T) {
	tr := NewTracker()
	tr.SetMousePosition(12.5, 40)

	x, y := tr.MousePosition()
	assert.Equal(t, float32(12.5), x)
	assert.Equal(t, float32(40), y)
	assert.Equal(t, x, tr.MouseX())
	assert.Equal(t, y, tr.MouseY())
}

func TestCodesMatchASCII(t *testing.T) {
	assert.Equal(t, KeyCode('A'), KeyA)
	assert.Equal(t, KeyCode('0'), Key0)
	assert.Equal(t, KeyCode(' '), KeySpace)
}
