package manipulator

import (
	"fmt"
	"strings"
)

// Mode selects which manipulator implementation NewManipulator builds.
type Mode int

const (
	// ModeOrbit rotates the eye around a pivot point and zooms along the gaze.
	ModeOrbit Mode = iota
	// ModeMap pans over a top-down view and zooms toward the pivot without crossing it.
	ModeMap
)

func (m Mode) String() string {
	switch m {
	case ModeOrbit:
		return "orbit"
	case ModeMap:
		return "map"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts a mode name ("orbit" or "map", case-insensitive) into a Mode.
//
// Parameters:
//   - s: the mode name
//
// Returns:
//   - Mode: the parsed mode
//   - error: ErrUnknownMode if the name is not recognized
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "orbit", "":
		return ModeOrbit, nil
	case "map":
		return ModeMap, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// GrabState is the interaction state of a manipulator between GrabBegin and GrabEnd.
type GrabState int

const (
	GrabInactive GrabState = iota
	GrabGrabbing
	GrabStrafing
)

func (g GrabState) String() string {
	switch g {
	case GrabInactive:
		return "inactive"
	case GrabGrabbing:
		return "grabbing"
	case GrabStrafing:
		return "strafing"
	default:
		return fmt.Sprintf("GrabState(%d)", int(g))
	}
}
