package window

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
)

func TestKeyTransition(t *testing.T) {
	tests := []struct {
		action   glfw.Action
		down, ok bool
	}{
		{glfw.Press, true, true},
		{glfw.Repeat, true, true},
		{glfw.Release, false, true},
		{glfw.Action(42), false, false},
	}
	for _, tt := range tests {
		down, ok := keyTransition(tt.action)
		assert.Equal(t, tt.down, down, "action %d", tt.action)
		assert.Equal(t, tt.ok, ok, "action %d", tt.action)
	}
}

func TestButtonTransitionIgnoresRepeat(t *testing.T) {
	pressed, ok := buttonTransition(glfw.Press)
	assert.True(t, pressed)
	assert.True(t, ok)

	pressed, ok = buttonTransition(glfw.Release)
	assert.False(t, pressed)
	assert.True(t, ok)

	_, ok = buttonTransition(glfw.Repeat)
	assert.False(t, ok)
}

func TestOptionsBeforeOpen(t *testing.T) {
	w := &viewerWindow{width: 1280, height: 720}
	for _, opt := range []WindowBuilderOption{
		WithTitle("bookmarks"),
		WithSize(800, 0),
		WithSizeLimits(100, 100, glfw.DontCare, glfw.DontCare),
	} {
		opt(w)
	}
	assert.Equal(t, "bookmarks", w.title)
	assert.Equal(t, 800, w.width)
	assert.Equal(t, 720, w.height)
	assert.Equal(t, glfw.DontCare, w.maxWidth)
	assert.False(t, w.IsRunning())
	assert.ErrorIs(t, w.Close(), ErrClosed)
}
