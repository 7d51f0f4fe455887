package window

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// ErrClosed is returned by Close once the window has been destroyed.
var ErrClosed = errors.New("window already closed")

// Window is the viewer's input surface. It draws nothing; it only reports pointer, key
// and size events. Events are delivered on the goroutine running ProcessMessages, so
// callbacks may drive a manipulator directly without locking.
type Window interface {
	// SetUpdateCallback sets the function called once per message loop pass, after events are delivered.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetUpdateCallback(callback func())

	// SetResizeCallback sets the function called with the new framebuffer size in pixels.
	//
	// Parameters:
	//   - callback: function receiving width and height
	SetResizeCallback(callback func(width, height int))

	// SetScrollCallback sets the function called for vertical wheel motion.
	//
	// Parameters:
	//   - callback: function receiving the wheel delta (positive = away from the user)
	SetScrollCallback(callback func(delta float64))

	// SetKeyDownCallback sets the function called on key press and auto-repeat.
	//
	// Parameters:
	//   - callback: function receiving the key code (common.Key*)
	SetKeyDownCallback(callback func(keyCode uint32))

	// SetKeyUpCallback sets the function called on key release.
	//
	// Parameters:
	//   - callback: function receiving the key code (common.Key*)
	SetKeyUpCallback(callback func(keyCode uint32))

	// SetMouseButtonCallback sets the function called on mouse button press and release.
	//
	// Parameters:
	//   - callback: function receiving the button (common.MouseButton*), whether it went down, and the cursor position
	SetMouseButtonCallback(callback func(button int, pressed bool, x, y int))

	// SetMouseMoveCallback sets the function called when the cursor moves.
	//
	// Parameters:
	//   - callback: function receiving the cursor position in pixels
	SetMouseMoveCallback(callback func(x, y int))

	// IsRunning reports whether the window is open and has not been asked to close.
	//
	// Returns:
	//   - bool: false after Esc, the close button, or Close
	IsRunning() bool

	// Close destroys the window and shuts GLFW down.
	//
	// Returns:
	//   - error: ErrClosed if the window is already gone
	Close() error

	// ProcessMessages polls events and calls the update callback until the window stops running.
	ProcessMessages()

	// Width returns the framebuffer width in pixels.
	Width() int

	// Height returns the framebuffer height in pixels.
	Height() int
}

// callbacks are the event sinks set through the Set*Callback methods. Nil entries are skipped.
type callbacks struct {
	update      func()
	resize      func(width, height int)
	scroll      func(delta float64)
	keyDown     func(keyCode uint32)
	keyUp       func(keyCode uint32)
	mouseButton func(button int, pressed bool, x, y int)
	mouseMove   func(x, y int)
}

// viewerWindow implements Window on top of a GLFW window without a client API.
type viewerWindow struct {
	title         string
	width, height int

	// size limits applied with SetSizeLimits; glfw.DontCare leaves a bound open
	minWidth, minHeight int
	maxWidth, maxHeight int

	handle *glfw.Window
	quit   bool
	on     callbacks
}

var _ Window = &viewerWindow{}

// NewWindow opens a window. Options are applied over a 1280x720 "Orbit Viewer" window
// that can shrink to 320x200 and grow without bound.
// Panics if GLFW cannot create the window, since nothing can run without one.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the open window
func NewWindow(options ...WindowBuilderOption) Window {
	w := &viewerWindow{
		title:     "Orbit Viewer",
		width:     1280,
		height:    720,
		minWidth:  320,
		minHeight: 200,
		maxWidth:  glfw.DontCare,
		maxHeight: glfw.DontCare,
	}
	for _, opt := range options {
		opt(w)
	}
	if err := w.open(); err != nil {
		panic(fmt.Sprintf("failed to open window: %v", err))
	}
	return w
}

func (w *viewerWindow) SetUpdateCallback(callback func()) {
	w.on.update = callback
}

func (w *viewerWindow) SetResizeCallback(callback func(width, height int)) {
	w.on.resize = callback
}

func (w *viewerWindow) SetScrollCallback(callback func(delta float64)) {
	w.on.scroll = callback
}

func (w *viewerWindow) SetKeyDownCallback(callback func(keyCode uint32)) {
	w.on.keyDown = callback
}

func (w *viewerWindow) SetKeyUpCallback(callback func(keyCode uint32)) {
	w.on.keyUp = callback
}

func (w *viewerWindow) SetMouseButtonCallback(callback func(button int, pressed bool, x, y int)) {
	w.on.mouseButton = callback
}

func (w *viewerWindow) SetMouseMoveCallback(callback func(x, y int)) {
	w.on.mouseMove = callback
}

func (w *viewerWindow) IsRunning() bool {
	return w.handle != nil && !w.quit && !w.handle.ShouldClose()
}

func (w *viewerWindow) Close() error {
	if w.handle == nil {
		return ErrClosed
	}
	w.handle.Destroy()
	w.handle = nil
	glfw.Terminate()
	return nil
}

func (w *viewerWindow) ProcessMessages() {
	for w.IsRunning() {
		glfw.PollEvents()
		// an update callback may Close the window; stop before touching it again
		if !w.IsRunning() {
			return
		}
		if w.on.update != nil {
			w.on.update()
		}
		runtime.Gosched()
	}
}

func (w *viewerWindow) Width() int {
	return w.width
}

func (w *viewerWindow) Height() int {
	return w.height
}
