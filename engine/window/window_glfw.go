package window

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// open creates the GLFW window and installs the event hooks. GLFW requires every call
// after Init to come from the thread that made it, so the calling goroutine is pinned.
func (w *viewerWindow) open() error {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	// No graphics context: the window exists to collect input.
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	handle, err := glfw.CreateWindow(w.width, w.height, w.title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("failed to create GLFW window: %w", err)
	}
	handle.SetSizeLimits(w.minWidth, w.minHeight, w.maxWidth, w.maxHeight)
	w.handle = handle
	w.install(handle)

	// Framebuffer pixels, which differ from screen coordinates on high-DPI displays.
	w.width, w.height = handle.GetFramebufferSize()
	return nil
}

// install routes GLFW events to the registered callbacks.
func (w *viewerWindow) install(handle *glfw.Window) {
	handle.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.quit = true
			return
		}
		down, ok := keyTransition(action)
		switch {
		case !ok:
		case down && w.on.keyDown != nil:
			w.on.keyDown(uint32(key))
		case !down && w.on.keyUp != nil:
			w.on.keyUp(uint32(key))
		}
	})

	handle.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		if w.on.scroll != nil {
			w.on.scroll(yoff)
		}
	})

	handle.SetMouseButtonCallback(func(win *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		pressed, ok := buttonTransition(action)
		if !ok || w.on.mouseButton == nil {
			return
		}
		x, y := win.GetCursorPos()
		w.on.mouseButton(int(button), pressed, int(x), int(y))
	})

	handle.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		if w.on.mouseMove != nil {
			w.on.mouseMove(int(x), int(y))
		}
	})

	handle.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.width, w.height = width, height
		if w.on.resize != nil {
			w.on.resize(width, height)
		}
	})
}

// keyTransition maps a GLFW key action to down (press or auto-repeat) or up.
func keyTransition(action glfw.Action) (down, ok bool) {
	switch action {
	case glfw.Press, glfw.Repeat:
		return true, true
	case glfw.Release:
		return false, true
	}
	return false, false
}

// buttonTransition maps a GLFW mouse action to pressed or released. Buttons do not repeat.
func buttonTransition(action glfw.Action) (pressed, ok bool) {
	switch action {
	case glfw.Press:
		return true, true
	case glfw.Release:
		return false, true
	}
	return false, false
}
