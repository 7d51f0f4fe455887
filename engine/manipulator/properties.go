package manipulator

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Properties configures a manipulator. It is fixed at construction; the manipulator keeps its own copy.
type Properties struct {
	// Viewport is the width and height in pixels of the view receiving input.
	Viewport [2]int

	// ZoomSpeed scales scroll deltas into world units along the gaze (orbit) or into
	// a logarithmic distance factor (map).
	ZoomSpeed float64

	// OrbitSpeed converts horizontal and vertical drag pixels into azimuth and elevation radians.
	OrbitSpeed mgl64.Vec2

	// StrafeSpeed converts horizontal and vertical drag pixels into world units of translation.
	StrafeSpeed mgl64.Vec2

	// HomeTarget is the look-at point of the home viewpoint and the initial pivot.
	HomeTarget mgl64.Vec3

	// HomeVector is the eye offset from HomeTarget at the home viewpoint.
	HomeVector mgl64.Vec3

	// HomeUpVector is the world up direction used to build the strafe basis and the view matrix.
	HomeUpVector mgl64.Vec3

	// Pivot is the point zoom flip detection is measured against. Nil means HomeTarget.
	Pivot *mgl64.Vec3
}

// PropertiesOption is a functional option for configuring Properties.
type PropertiesOption func(*Properties)

// DefaultProperties returns a viewpoint five units down +Z from the origin with Y up.
//
// Returns:
//   - Properties: the default configuration
func DefaultProperties() Properties {
	return Properties{
		Viewport:     [2]int{1280, 720},
		ZoomSpeed:    0.01,
		OrbitSpeed:   mgl64.Vec2{0.01, 0.01},
		StrafeSpeed:  mgl64.Vec2{0.01, 0.01},
		HomeTarget:   mgl64.Vec3{0, 0, 0},
		HomeVector:   mgl64.Vec3{0, 0, 5},
		HomeUpVector: mgl64.Vec3{0, 1, 0},
	}
}

// NewProperties applies options on top of DefaultProperties.
//
// Parameters:
//   - options: functional options to configure the properties
//
// Returns:
//   - Properties: the resulting configuration (not yet validated)
func NewProperties(options ...PropertiesOption) Properties {
	p := DefaultProperties()
	for _, opt := range options {
		opt(&p)
	}
	return p
}

// WithViewport sets the viewport size in pixels.
//
// Parameters:
//   - width, height: viewport dimensions in pixels
//
// Returns:
//   - PropertiesOption: functional option to set the viewport
func WithViewport(width, height int) PropertiesOption {
	return func(p *Properties) {
		p.Viewport = [2]int{width, height}
	}
}

// WithZoomSpeed sets the zoom speed scalar.
//
// Parameters:
//   - speed: world units (orbit) or log-distance (map) per scroll unit
//
// Returns:
//   - PropertiesOption: functional option to set zoom speed
func WithZoomSpeed(speed float64) PropertiesOption {
	return func(p *Properties) {
		p.ZoomSpeed = speed
	}
}

// WithOrbitSpeed sets the per-axis orbit speed.
//
// Parameters:
//   - x: radians of azimuth per horizontal pixel
//   - y: radians of elevation per vertical pixel
//
// Returns:
//   - PropertiesOption: functional option to set orbit speed
func WithOrbitSpeed(x, y float64) PropertiesOption {
	return func(p *Properties) {
		p.OrbitSpeed = mgl64.Vec2{x, y}
	}
}

// WithStrafeSpeed sets the per-axis strafe speed.
//
// Parameters:
//   - x: world units per horizontal pixel
//   - y: world units per vertical pixel
//
// Returns:
//   - PropertiesOption: functional option to set strafe speed
func WithStrafeSpeed(x, y float64) PropertiesOption {
	return func(p *Properties) {
		p.StrafeSpeed = mgl64.Vec2{x, y}
	}
}

// WithHomeTarget sets the look-at point of the home viewpoint.
//
// Parameters:
//   - x, y, z: world-space coordinates
//
// Returns:
//   - PropertiesOption: functional option to set the home target
func WithHomeTarget(x, y, z float64) PropertiesOption {
	return func(p *Properties) {
		p.HomeTarget = mgl64.Vec3{x, y, z}
	}
}

// WithHomeVector sets the eye offset from the home target.
//
// Parameters:
//   - x, y, z: offset components
//
// Returns:
//   - PropertiesOption: functional option to set the home vector
func WithHomeVector(x, y, z float64) PropertiesOption {
	return func(p *Properties) {
		p.HomeVector = mgl64.Vec3{x, y, z}
	}
}

// WithHomeUpVector sets the world up direction.
//
// Parameters:
//   - x, y, z: up vector components
//
// Returns:
//   - PropertiesOption: functional option to set the up vector
func WithHomeUpVector(x, y, z float64) PropertiesOption {
	return func(p *Properties) {
		p.HomeUpVector = mgl64.Vec3{x, y, z}
	}
}

// WithPivot sets the point used for zoom flip detection.
//
// Parameters:
//   - x, y, z: world-space coordinates
//
// Returns:
//   - PropertiesOption: functional option to set the pivot
func WithPivot(x, y, z float64) PropertiesOption {
	return func(p *Properties) {
		p.Pivot = &mgl64.Vec3{x, y, z}
	}
}

// FlipPivot returns the configured pivot, or HomeTarget when none was set.
//
// Returns:
//   - mgl64.Vec3: the flip detection pivot
func (p Properties) FlipPivot() mgl64.Vec3 {
	if p.Pivot != nil {
		return *p.Pivot
	}
	return p.HomeTarget
}

// HomeDistance returns the eye-to-target distance of the home viewpoint.
//
// Returns:
//   - float64: length of HomeVector
func (p Properties) HomeDistance() float64 {
	return p.HomeVector.Len()
}

// Validate rejects configurations that would produce NaNs or a degenerate pose.
// The home vector must also keep its elevation within ±MaxPhi so the home pose is
// a pose orbiting can reach.
//
// Returns:
//   - error: an error wrapping ErrInvalidProperties, or nil
func (p Properties) Validate() error {
	switch {
	case p.Viewport[0] <= 0 || p.Viewport[1] <= 0:
		return fmt.Errorf("%w: viewport must be positive, got %dx%d", ErrInvalidProperties, p.Viewport[0], p.Viewport[1])
	case !finite(p.ZoomSpeed):
		return fmt.Errorf("%w: zoom speed must be finite", ErrInvalidProperties)
	case !finite(p.OrbitSpeed[0], p.OrbitSpeed[1]):
		return fmt.Errorf("%w: orbit speed must be finite", ErrInvalidProperties)
	case !finite(p.StrafeSpeed[0], p.StrafeSpeed[1]):
		return fmt.Errorf("%w: strafe speed must be finite", ErrInvalidProperties)
	case !finite(p.HomeTarget[:]...):
		return fmt.Errorf("%w: home target must be finite", ErrInvalidProperties)
	case !finite(p.HomeVector[:]...) || p.HomeVector.Len() < minDistance:
		return fmt.Errorf("%w: home vector must be finite and non-zero", ErrInvalidProperties)
	case !finite(p.HomeUpVector[:]...) || p.HomeUpVector.Len() < minDistance:
		return fmt.Errorf("%w: home up vector must be finite and non-zero", ErrInvalidProperties)
	case p.HomeVector.Normalize().Cross(p.HomeUpVector.Normalize()).Len() < 1e-6:
		return fmt.Errorf("%w: home up vector is parallel to the home vector", ErrInvalidProperties)
	case math.Abs(p.HomeVector.Normalize().Y()) > math.Sin(MaxPhi):
		return fmt.Errorf("%w: home vector is within %g rad of the vertical axis", ErrInvalidProperties, math.Pi/2-MaxPhi)
	case p.Pivot != nil && !finite(p.Pivot[:]...):
		return fmt.Errorf("%w: pivot must be finite", ErrInvalidProperties)
	}
	return nil
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
