package camera

import (
	"math"

	"github.com/Carmen-Shannon/oxy-camutils/engine/manipulator"
	"github.com/go-gl/mathgl/mgl64"
)

type cameraImpl struct {
	fov    float64
	aspect float64
	near   float64
	far    float64

	eye mgl64.Vec3

	viewMatrix              mgl64.Mat4
	projectionMatrix        mgl64.Mat4
	viewProjectionMatrix    mgl64.Mat4
	inverseProjectionMatrix mgl64.Mat4

	manipulator manipulator.Manipulator
}

// Camera defines the interface for the camera system.
// The camera holds perspective settings and computes view/projection matrices
// from an attached Manipulator each frame via Update().
type Camera interface {
	// Fov returns the vertical field of view in radians.
	//
	// Returns:
	//   - float64: field of view in radians
	Fov() float64

	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - float64: the aspect ratio
	Aspect() float64

	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - float64: near plane distance
	Near() float64

	// Far returns the far clipping plane distance.
	//
	// Returns:
	//   - float64: far plane distance
	Far() float64

	// Eye returns the eye position read by the last Update.
	//
	// Returns:
	//   - mgl64.Vec3: world-space eye position
	Eye() mgl64.Vec3

	// ViewMatrix returns the current 4x4 view matrix (column-major).
	//
	// Returns:
	//   - mgl64.Mat4: the view matrix
	ViewMatrix() mgl64.Mat4

	// ProjectionMatrix returns the current 4x4 projection matrix (column-major).
	//
	// Returns:
	//   - mgl64.Mat4: the projection matrix
	ProjectionMatrix() mgl64.Mat4

	// ViewProjectionMatrix returns the current combined view-projection matrix (column-major).
	//
	// Returns:
	//   - mgl64.Mat4: the combined view-projection matrix
	ViewProjectionMatrix() mgl64.Mat4

	// InverseProjectionMatrix returns the inverse of the current projection matrix.
	//
	// Returns:
	//   - mgl64.Mat4: the inverse projection matrix
	InverseProjectionMatrix() mgl64.Mat4

	// Manipulator returns the attached Manipulator.
	// Returns nil if no manipulator is attached.
	//
	// Returns:
	//   - manipulator.Manipulator: the attached manipulator or nil
	Manipulator() manipulator.Manipulator

	// Update reads eye/target/up from the manipulator and recomputes matrices.
	// Should be called once per frame. If no manipulator is attached, this method does nothing.
	Update()

	// SetFov sets the vertical field of view in radians and recomputes matrices.
	//
	// Parameters:
	//   - fov: field of view in radians
	SetFov(fov float64)

	// SetAspect sets the aspect ratio (width / height) and recomputes matrices.
	//
	// Parameters:
	//   - aspect: the aspect ratio
	SetAspect(aspect float64)

	// SetNear sets the near clipping plane distance and recomputes matrices.
	//
	// Parameters:
	//   - near: near plane distance
	SetNear(near float64)

	// SetFar sets the far clipping plane distance and recomputes matrices.
	//
	// Parameters:
	//   - far: far plane distance
	SetFar(far float64)

	// SetManipulator attaches a Manipulator to the camera.
	//
	// Parameters:
	//   - m: the manipulator to attach
	SetManipulator(m manipulator.Manipulator)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera with default perspective settings.
// When a manipulator is attached and no aspect option was given, the aspect ratio
// is taken from the manipulator's viewport.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		fov:                  45.0 * (math.Pi / 180.0), // radians
		near:                 0.1,
		far:                  100.0,
		viewMatrix:           mgl64.Ident4(),
		projectionMatrix:     mgl64.Ident4(),
		viewProjectionMatrix: mgl64.Ident4(),
	}
	for _, option := range options {
		option(c)
	}
	if c.aspect == 0 {
		c.aspect = 1.0
		if c.manipulator != nil {
			vp := c.manipulator.Properties().Viewport
			c.aspect = float64(vp[0]) / float64(vp[1])
		}
	}
	c.updateMatrices()
	return c
}

func (c *cameraImpl) Fov() float64 {
	return c.fov
}

func (c *cameraImpl) Aspect() float64 {
	return c.aspect
}

func (c *cameraImpl) Near() float64 {
	return c.near
}

func (c *cameraImpl) Far() float64 {
	return c.far
}

func (c *cameraImpl) Eye() mgl64.Vec3 {
	return c.eye
}

func (c *cameraImpl) ViewMatrix() mgl64.Mat4 {
	return c.viewMatrix
}

func (c *cameraImpl) ProjectionMatrix() mgl64.Mat4 {
	return c.projectionMatrix
}

func (c *cameraImpl) ViewProjectionMatrix() mgl64.Mat4 {
	return c.viewProjectionMatrix
}

func (c *cameraImpl) InverseProjectionMatrix() mgl64.Mat4 {
	return c.inverseProjectionMatrix
}

func (c *cameraImpl) SetFov(fov float64) {
	c.fov = fov
	c.updateMatrices()
}

func (c *cameraImpl) SetAspect(aspect float64) {
	c.aspect = aspect
	c.updateMatrices()
}

func (c *cameraImpl) SetNear(near float64) {
	c.near = near
	c.updateMatrices()
}

func (c *cameraImpl) SetFar(far float64) {
	c.far = far
	c.updateMatrices()
}

func (c *cameraImpl) Manipulator() manipulator.Manipulator {
	return c.manipulator
}

func (c *cameraImpl) SetManipulator(m manipulator.Manipulator) {
	c.manipulator = m
}

func (c *cameraImpl) Update() {
	if c.manipulator == nil {
		return
	}
	c.updateMatrices()
}

// updateMatrices recalculates the view, projection, view-projection, and inverse projection matrices.
// It reads eye, target and up from the attached manipulator. This is a no-op when the manipulator is nil.
func (c *cameraImpl) updateMatrices() {
	if c.manipulator == nil {
		return
	}

	eye, target, up := c.manipulator.LookAt()
	c.eye = eye

	c.viewMatrix = mgl64.LookAtV(eye, target, up)
	c.projectionMatrix = mgl64.Perspective(c.fov, c.aspect, c.near, c.far)
	c.viewProjectionMatrix = c.projectionMatrix.Mul4(c.viewMatrix)
	c.inverseProjectionMatrix = c.projectionMatrix.Inv()
}
