package input

import (
	"github.com/Carmen-Shannon/oxy-camutils/common"
	"github.com/Carmen-Shannon/oxy-camutils/engine/manipulator"
	"github.com/rs/zerolog"
)

// noButton marks that no mouse button owns the current grab.
const noButton = -1

// Binder translates window-level pointer and key events into Manipulator calls.
// Left drag orbits (or strafes while shift is held), right or middle drag strafes,
// scroll zooms at the cursor, H jumps home, 1-9 jump to bookmark slots and P reports
// the current bookmark. Like the manipulator it drives, a Binder is not safe for concurrent use.
type Binder interface {
	// MouseDown handles a mouse button press. Starts a grab unless one is already active.
	//
	// Parameters:
	//   - button: the mouse button (common.MouseButton*)
	//   - x, y: cursor position in pixels
	MouseDown(button, x, y int)

	// MouseUp handles a mouse button release. Ends the grab if this button started it.
	//
	// Parameters:
	//   - button: the mouse button (common.MouseButton*)
	//   - x, y: cursor position in pixels
	MouseUp(button, x, y int)

	// MouseMove handles cursor movement, updating the active grab.
	//
	// Parameters:
	//   - x, y: cursor position in pixels
	MouseMove(x, y int)

	// Scroll zooms at the last known cursor position.
	//
	// Parameters:
	//   - delta: wheel delta (positive = away from the user = zoom in)
	Scroll(delta float64)

	// KeyDown handles a key press.
	//
	// Parameters:
	//   - keyCode: the virtual key code (common.Key*)
	KeyDown(keyCode uint32)

	// KeyUp handles a key release.
	//
	// Parameters:
	//   - keyCode: the virtual key code (common.Key*)
	KeyUp(keyCode uint32)

	// Grabbing reports whether a mouse button currently owns a grab.
	//
	// Returns:
	//   - bool: true while a drag is in progress
	Grabbing() bool

	// Manipulator returns the driven manipulator.
	//
	// Returns:
	//   - manipulator.Manipulator: the manipulator
	Manipulator() manipulator.Manipulator
}

type binderImpl struct {
	manipulator manipulator.Manipulator
	logger      zerolog.Logger

	scrollScale float64
	slots       map[int]manipulator.Bookmark
	onBookmark  func(manipulator.Bookmark)

	leftShift  bool
	rightShift bool
	grabButton int
	cursorX    int
	cursorY    int
}

var _ Binder = &binderImpl{}

// NewBinder creates a Binder driving m.
//
// Parameters:
//   - m: the manipulator to drive
//   - options: functional options to configure the binder
//
// Returns:
//   - Binder: the newly created binder
func NewBinder(m manipulator.Manipulator, options ...BinderOption) Binder {
	b := &binderImpl{
		manipulator: m,
		logger:      zerolog.Nop(),
		scrollScale: 1.0,
		slots:       make(map[int]manipulator.Bookmark),
		grabButton:  noButton,
	}
	for _, opt := range options {
		opt(b)
	}
	return b
}

func (b *binderImpl) MouseDown(button, x, y int) {
	b.cursorX, b.cursorY = x, y
	if b.grabButton != noButton {
		return
	}

	var strafe bool
	switch button {
	case common.MouseButtonLeft:
		strafe = b.leftShift || b.rightShift
	case common.MouseButtonRight, common.MouseButtonMiddle:
		strafe = true
	default:
		return
	}
	b.grabButton = button
	b.manipulator.GrabBegin(x, y, strafe)
}

func (b *binderImpl) MouseUp(button, x, y int) {
	b.cursorX, b.cursorY = x, y
	if button != b.grabButton {
		return
	}
	b.manipulator.GrabUpdate(x, y)
	b.manipulator.GrabEnd()
	b.grabButton = noButton
}

func (b *binderImpl) MouseMove(x, y int) {
	b.cursorX, b.cursorY = x, y
	if b.grabButton == noButton {
		return
	}
	b.manipulator.GrabUpdate(x, y)
}

func (b *binderImpl) Scroll(delta float64) {
	b.manipulator.Zoom(b.cursorX, b.cursorY, delta*b.scrollScale)
}

func (b *binderImpl) KeyDown(keyCode uint32) {
	switch keyCode {
	case common.KeyLeftShift:
		b.leftShift = true
	case common.KeyRightShift:
		b.rightShift = true
	case common.KeyH:
		b.jump(b.manipulator.HomeBookmark(), "home")
	case common.KeyP:
		bm := b.manipulator.CurrentBookmark()
		b.logger.Info().
			Float64("phi", bm.Phi).
			Float64("theta", bm.Theta).
			Float64("distance", bm.Distance).
			Floats64("pivot", bm.Pivot[:]).
			Msg("current bookmark")
		if b.onBookmark != nil {
			b.onBookmark(bm)
		}
	default:
		slot, ok := common.SlotForKey(keyCode)
		if !ok {
			return
		}
		bm, ok := b.slots[slot]
		if !ok {
			b.logger.Debug().Int("slot", slot).Msg("empty bookmark slot")
			return
		}
		b.jump(bm, "slot")
	}
}

func (b *binderImpl) KeyUp(keyCode uint32) {
	switch keyCode {
	case common.KeyLeftShift:
		b.leftShift = false
	case common.KeyRightShift:
		b.rightShift = false
	}
}

func (b *binderImpl) Grabbing() bool {
	return b.grabButton != noButton
}

func (b *binderImpl) Manipulator() manipulator.Manipulator {
	return b.manipulator
}

// jump applies bm and drops any grab the binder was tracking, since JumpToBookmark ends it.
func (b *binderImpl) jump(bm manipulator.Bookmark, source string) {
	b.manipulator.JumpToBookmark(bm)
	b.grabButton = noButton
	b.logger.Debug().Str("source", source).Float64("distance", bm.Distance).Msg("jump to bookmark")
}
