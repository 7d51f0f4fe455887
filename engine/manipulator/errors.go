package manipulator

import "errors"

var (
	// ErrInvalidProperties is returned by NewManipulator and Properties.Validate when a
	// configuration value would produce NaNs or a degenerate pose.
	ErrInvalidProperties = errors.New("invalid manipulator properties")

	// ErrUnknownMode is returned for a Mode outside the supported set.
	ErrUnknownMode = errors.New("unknown manipulator mode")

	// ErrDegenerateGaze reports that eye and target coincide, so no view direction exists.
	// Strafe and zoom skip their move when they hit it.
	ErrDegenerateGaze = errors.New("eye and target coincide")
)
