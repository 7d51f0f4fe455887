package camera

import (
	"github.com/Carmen-Shannon/oxy-camutils/engine/manipulator"
)

type CameraBuilderOption func(*cameraImpl)

// WithFov sets the camera's vertical field of view in radians.
//
// Parameters:
//   - fov: field of view in radians
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's field of view
func WithFov(fov float64) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.fov = fov
	}
}

// WithAspect sets the camera's aspect ratio (width / height).
//
// Parameters:
//   - aspect: the aspect ratio to set
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's aspect ratio
func WithAspect(aspect float64) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.aspect = aspect
	}
}

// WithNear sets the near clipping plane distance.
//
// Parameters:
//   - near: near plane distance
//
// Returns:
//   - CameraBuilderOption: a function that sets the near plane
func WithNear(near float64) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.near = near
	}
}

// WithFar sets the far clipping plane distance.
//
// Parameters:
//   - far: far plane distance
//
// Returns:
//   - CameraBuilderOption: functional option to set the far plane
func WithFar(far float64) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.far = far
	}
}

// WithManipulator attaches a manipulator to the camera.
// After all options are applied, the camera recomputes its matrices from the manipulator's pose.
//
// Parameters:
//   - m: the manipulator to attach
//
// Returns:
//   - CameraBuilderOption: functional option to set the manipulator
func WithManipulator(m manipulator.Manipulator) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.manipulator = m
	}
}
