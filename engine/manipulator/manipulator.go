package manipulator

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"
)

// Manipulator turns pointer input into a camera pose.
// It is driven synchronously from a single input/update loop: none of its methods block
// and none are safe for concurrent use. Callers must deliver GrabBegin, then any number of
// GrabUpdate calls, then GrabEnd, in that order.
//
// The set of implementations is closed: NewManipulator returns either an orbit or a map manipulator.
type Manipulator interface {
	// GrabBegin starts a drag at pixel position (x, y) and records the current pose as its reference.
	// If a drag is already active it is restarted from the new position.
	//
	// Parameters:
	//   - x, y: pointer position in pixels
	//   - strafe: true to translate instead of orbit
	GrabBegin(x, y int, strafe bool)

	// GrabUpdate applies the motion between the GrabBegin position and (x, y).
	// Repeated calls at the same position give the same pose. Does nothing while inactive.
	//
	// Parameters:
	//   - x, y: pointer position in pixels
	GrabUpdate(x, y int)

	// GrabEnd ends the drag. Does nothing while inactive.
	GrabEnd()

	// Zoom moves the camera along its gaze by scrollDelta steps, independent of any drag.
	//
	// Parameters:
	//   - x, y: pointer position in pixels
	//   - scrollDelta: scroll amount (positive moves toward the target)
	Zoom(x, y int, scrollDelta float64)

	// CurrentBookmark snapshots the current pose.
	//
	// Returns:
	//   - Bookmark: the current viewpoint
	CurrentBookmark() Bookmark

	// HomeBookmark returns the configured home viewpoint. It depends only on the Properties.
	//
	// Returns:
	//   - Bookmark: the home viewpoint
	HomeBookmark() Bookmark

	// JumpToBookmark sets the pose from a bookmark and ends any active drag.
	//
	// Parameters:
	//   - b: the viewpoint to apply
	JumpToBookmark(b Bookmark)

	// LookAt returns what a renderer needs each frame.
	//
	// Returns:
	//   - eye: world-space eye position
	//   - target: world-space look-at point
	//   - up: world up vector
	LookAt() (eye, target, up mgl64.Vec3)

	// Pivot returns the current center of orbit.
	//
	// Returns:
	//   - mgl64.Vec3: the pivot point
	Pivot() mgl64.Vec3

	// GrabState returns the current interaction state.
	//
	// Returns:
	//   - GrabState: inactive, grabbing or strafing
	GrabState() GrabState

	// Flipped reports whether the eye has crossed the pivot.
	//
	// Returns:
	//   - bool: true when CurrentBookmark would carry a negative distance
	Flipped() bool

	// Mode returns the manipulator mode.
	//
	// Returns:
	//   - Mode: orbit or map
	Mode() Mode

	// Properties returns a copy of the construction properties.
	//
	// Returns:
	//   - Properties: the configuration
	Properties() Properties

	sealed()
}

// ManipulatorOption is a functional option for configuring a manipulator.
type ManipulatorOption func(*manipulatorBase)

// WithLogger sets the logger used for state transition and degenerate-input diagnostics.
//
// Parameters:
//   - logger: the zerolog logger
//
// Returns:
//   - ManipulatorOption: functional option to set the logger
func WithLogger(logger zerolog.Logger) ManipulatorOption {
	return func(m *manipulatorBase) {
		m.logger = logger
	}
}

// NewManipulator validates props and creates the manipulator for the given mode,
// positioned at the home viewpoint.
//
// Parameters:
//   - mode: ModeOrbit or ModeMap
//   - props: the configuration; validated with Properties.Validate
//   - options: functional options to configure the manipulator
//
// Returns:
//   - Manipulator: the newly created manipulator
//   - error: ErrUnknownMode or an error wrapping ErrInvalidProperties
func NewManipulator(mode Mode, props Properties, options ...ManipulatorOption) (Manipulator, error) {
	if err := props.Validate(); err != nil {
		return nil, err
	}
	if props.Pivot != nil {
		pivot := *props.Pivot
		props.Pivot = &pivot
	}

	base := manipulatorBase{
		mode:   mode,
		props:  props,
		logger: zerolog.Nop(),
		pose: pose{
			eye:    props.HomeTarget.Add(props.HomeVector),
			target: props.HomeTarget,
			pivot:  props.HomeTarget,
		},
	}
	for _, opt := range options {
		opt(&base)
	}
	base.logger = base.logger.With().Str("mode", mode.String()).Logger()

	switch mode {
	case ModeOrbit:
		return &orbitManipulator{manipulatorBase: base}, nil
	case ModeMap:
		return &mapManipulator{manipulatorBase: base}, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownMode, mode)
	}
}

// dragOrigin is the reference frame of an active drag. It exists only between GrabBegin and GrabEnd.
type dragOrigin struct {
	x, y     int
	pose     pose
	bookmark Bookmark
}

// manipulatorBase holds the pose, configuration and grab bookkeeping shared by every mode.
type manipulatorBase struct {
	mode   Mode
	props  Properties
	logger zerolog.Logger

	pose  pose
	state GrabState
	drag  *dragOrigin
}

func (m *manipulatorBase) sealed() {}

func (m *manipulatorBase) CurrentBookmark() Bookmark {
	return bookmarkFromPose(m.pose)
}

func (m *manipulatorBase) HomeBookmark() Bookmark {
	return homeBookmark(m.props)
}

func (m *manipulatorBase) LookAt() (eye, target, up mgl64.Vec3) {
	return m.pose.eye, m.pose.target, m.props.HomeUpVector
}

func (m *manipulatorBase) Pivot() mgl64.Vec3 {
	return m.pose.pivot
}

func (m *manipulatorBase) GrabState() GrabState {
	return m.state
}

func (m *manipulatorBase) Flipped() bool {
	return m.pose.flipped
}

func (m *manipulatorBase) Mode() Mode {
	return m.mode
}

func (m *manipulatorBase) Properties() Properties {
	p := m.props
	if p.Pivot != nil {
		pivot := *p.Pivot
		p.Pivot = &pivot
	}
	return p
}

func (m *manipulatorBase) GrabEnd() {
	if m.state == GrabInactive {
		return
	}
	m.logger.Debug().Stringer("from", m.state).Msg("grab end")
	m.state = GrabInactive
	m.drag = nil
}

// beginDrag records the drag origin and enters the given state.
func (m *manipulatorBase) beginDrag(x, y int, state GrabState) {
	m.state = state
	m.drag = &dragOrigin{
		x:        x,
		y:        y,
		pose:     m.pose,
		bookmark: m.CurrentBookmark(),
	}
	m.logger.Debug().Int("x", x).Int("y", y).Stringer("state", state).Msg("grab begin")
}

// dragDelta returns the pixel delta from the current position back to the drag origin.
func (m *manipulatorBase) dragDelta(x, y int) (dx, dy float64) {
	return float64(m.drag.x - x), float64(m.drag.y - y)
}

// gaze returns the unit view direction of p.
func gaze(p pose) (mgl64.Vec3, error) {
	g := p.target.Sub(p.eye)
	l := g.Len()
	if l < minDistance {
		return mgl64.Vec3{}, ErrDegenerateGaze
	}
	return g.Mul(1 / l), nil
}

// strafeMovement converts a scaled pixel delta into a world-space translation in the view plane.
// right = gaze × up and trueUp = right × gaze, neither renormalized.
func strafeMovement(gazeDir, up mgl64.Vec3, dx, dy float64) mgl64.Vec3 {
	right := gazeDir.Cross(up)
	trueUp := right.Cross(gazeDir)
	return trueUp.Mul(dy).Add(right.Mul(dx))
}

// translated returns p moved by movement; orientation and flip are unchanged.
func (p pose) translated(movement mgl64.Vec3) pose {
	p.eye = p.eye.Add(movement)
	p.target = p.target.Add(movement)
	p.pivot = p.pivot.Add(movement)
	return p
}

// homeBookmark derives the home viewpoint from the configured home target and vector.
func homeBookmark(props Properties) Bookmark {
	return bookmarkFromPose(pose{
		eye:    props.HomeTarget.Add(props.HomeVector),
		target: props.HomeTarget,
		pivot:  props.HomeTarget,
	})
}
