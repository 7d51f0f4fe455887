package engine

import (
	"time"

	"github.com/Carmen-Shannon/oxy-camutils/engine/camera"
	"github.com/Carmen-Shannon/oxy-camutils/engine/input"
	"github.com/Carmen-Shannon/oxy-camutils/engine/profiler"
	"github.com/Carmen-Shannon/oxy-camutils/engine/window"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"
)

// poseEpsilon is the eye movement below which a frame is not logged as a pose change.
const poseEpsilon = 1e-9

// engine implements the Engine interface.
// Everything runs on the thread that called Run: window events feed the binder, and each
// loop iteration ticks the camera, so the manipulator never sees concurrent calls.
type engine struct {
	window window.Window
	camera camera.Camera
	binder input.Binder
	logger zerolog.Logger

	profiler         *profiler.Profiler
	profilingEnabled bool

	engineTickRate time.Duration
	tickCallback   func(deltaTime float64)
	lastTick       time.Time
	lastEye        mgl64.Vec3

	running  bool
	quitting bool
}

// Engine drives a camera from window input.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Camera returns the camera updated each tick.
	//
	// Returns:
	//   - camera.Camera: the camera instance
	Camera() camera.Camera

	// Binder returns the input binder receiving window events.
	//
	// Returns:
	//   - input.Binder: the binder instance
	Binder() input.Binder

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickRate sets the engine tick rate in frames per second.
	//
	// Parameters:
	//   - fps: target frames per second (defaults to 60 if <= 0)
	SetTickRate(fps float64)

	// SetTickCallback registers the function called each engine tick, after the camera update.
	//
	// Parameters:
	//   - callback: function receiving the delta time in seconds
	SetTickCallback(callback func(deltaTime float64))

	// Run wires window callbacks and runs the message loop (blocks until the window closes).
	Run()

	// Quit closes the window on the next loop iteration, ending Run. Safe to call multiple times.
	Quit()
}

// NewEngine creates a new Engine instance with the provided options.
// A window, camera and binder must all be supplied before Run.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		logger:         zerolog.Nop(),
		engineTickRate: time.Second / 60,
	}
	for _, opt := range options {
		opt(e)
	}
	if e.profiler == nil {
		e.profiler = profiler.NewProfiler(e.logger)
	}
	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Camera() camera.Camera {
	return e.camera
}

func (e *engine) Binder() input.Binder {
	return e.binder
}

func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) SetTickRate(fps float64) {
	if fps <= 0 {
		fps = 60
	}
	e.engineTickRate = time.Duration(float64(time.Second) / fps)
}

func (e *engine) SetTickCallback(callback func(deltaTime float64)) {
	e.tickCallback = callback
}

func (e *engine) Run() {
	e.wire()
	e.running = true
	e.lastTick = time.Now()
	e.camera.Update()
	e.lastEye = e.camera.Eye()
	e.logger.Info().
		Int("width", e.window.Width()).
		Int("height", e.window.Height()).
		Msg("viewer started")

	e.window.ProcessMessages()
	e.running = false
	e.quitting = false
}

func (e *engine) Quit() {
	if e.running {
		e.quitting = true
	}
}

// wire routes window events into the binder and camera.
func (e *engine) wire() {
	e.window.SetMouseButtonCallback(func(button int, pressed bool, x, y int) {
		if pressed {
			e.binder.MouseDown(button, x, y)
		} else {
			e.binder.MouseUp(button, x, y)
		}
	})
	e.window.SetMouseMoveCallback(e.binder.MouseMove)
	e.window.SetScrollCallback(e.binder.Scroll)
	e.window.SetKeyDownCallback(e.binder.KeyDown)
	e.window.SetKeyUpCallback(e.binder.KeyUp)
	e.window.SetResizeCallback(func(width, height int) {
		if width > 0 && height > 0 {
			e.camera.SetAspect(float64(width) / float64(height))
		}
	})
	e.window.SetUpdateCallback(e.update)
}

// update runs once per message loop iteration and ticks when the tick interval has elapsed.
func (e *engine) update() {
	// Close between polls; GLFW must not destroy the window from inside an event callback.
	if e.quitting {
		e.quitting = false
		e.running = false
		if err := e.window.Close(); err != nil {
			e.logger.Warn().Err(err).Msg("window close failed")
		}
		return
	}
	if !e.running {
		return
	}

	now := time.Now()
	elapsed := now.Sub(e.lastTick)
	if elapsed < e.engineTickRate {
		return
	}
	e.lastTick = now
	e.tick(elapsed.Seconds())
}

func (e *engine) tick(dt float64) {
	e.camera.Update()

	if eye := e.camera.Eye(); !eye.ApproxEqualThreshold(e.lastEye, poseEpsilon) {
		e.lastEye = eye
		if m := e.camera.Manipulator(); m != nil {
			bm := m.CurrentBookmark()
			e.logger.Debug().
				Float64("phi", bm.Phi).
				Float64("theta", bm.Theta).
				Float64("distance", bm.Distance).
				Floats64("pivot", bm.Pivot[:]).
				Stringer("grab", m.GrabState()).
				Msg("pose changed")
		}
	}

	if e.tickCallback != nil {
		e.tickCallback(dt)
	}

	if e.profilingEnabled && e.profiler != nil {
		e.profiler.Tick()
	}
}
