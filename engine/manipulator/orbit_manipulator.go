package manipulator

import (
	"github.com/Carmen-Shannon/oxy-camutils/common"
	"github.com/go-gl/mathgl/mgl64"
)

// orbitManipulator rotates the eye around its pivot on spherical coordinates.
// Dragging changes azimuth and elevation, strafing translates eye, target and pivot
// together, and zooming moves eye and target along the gaze, possibly past the pivot.
type orbitManipulator struct {
	manipulatorBase
}

var _ Manipulator = &orbitManipulator{}

func (o *orbitManipulator) GrabBegin(x, y int, strafe bool) {
	state := GrabGrabbing
	if strafe {
		state = GrabStrafing
	}
	o.beginDrag(x, y, state)
}

func (o *orbitManipulator) GrabUpdate(x, y int) {
	if o.drag == nil {
		return
	}
	dx, dy := o.dragDelta(x, y)

	switch o.state {
	case GrabGrabbing:
		b := o.CurrentBookmark()
		b.Theta = o.drag.bookmark.Theta + dx*o.props.OrbitSpeed.X()
		b.Phi = common.Clamp(o.drag.bookmark.Phi+dy*o.props.OrbitSpeed.Y(), -MaxPhi, MaxPhi)
		o.pose = poseFromBookmark(b)

	case GrabStrafing:
		g, err := gaze(o.drag.pose)
		if err != nil {
			o.logger.Debug().Err(err).Msg("strafe skipped")
			return
		}
		movement := strafeMovement(g, o.props.HomeUpVector, dx*o.props.StrafeSpeed.X(), dy*o.props.StrafeSpeed.Y())
		o.pose = o.drag.pose.translated(movement)
	}
}

func (o *orbitManipulator) Zoom(_, _ int, scrollDelta float64) {
	if scrollDelta == 0 {
		return
	}
	g, err := gaze(o.pose)
	if err != nil {
		o.logger.Debug().Err(err).Msg("zoom skipped")
		return
	}

	pivot := o.props.FlipPivot()
	movement := g.Mul(o.props.ZoomSpeed * scrollDelta)
	before := pivot.Sub(o.pose.eye)
	o.pose.eye = o.pose.eye.Add(movement)
	o.pose.target = o.pose.target.Add(movement)
	after := pivot.Sub(o.pose.eye)

	if crossedPivot(before, after, movement, g, o.pose.flipped) {
		o.pose.flipped = !o.pose.flipped
		o.logger.Debug().Bool("flipped", o.pose.flipped).Msg("eye crossed pivot")
	}
}

// crossedPivot reports whether a zoom step took the eye through the pivot.
// before and after are pivot-minus-eye vectors around a step of movement along gazeDir.
// Away from the pivot this is the plain rule: the step crossed when the before and after
// vectors point in opposite directions. Unlike that rule, landing exactly on the pivot
// counts as crossing it (the dot product is zero there, so the plain rule would keep the
// eye unflipped while it already sees the far side). Leaving the pivot counts only when
// the eye heads back to the side it came from, which the current flip state encodes.
func crossedPivot(before, after, movement, gazeDir mgl64.Vec3, flipped bool) bool {
	onBefore := before.Len() < minDistance
	onAfter := after.Len() < minDistance
	switch {
	case onBefore && onAfter:
		return false
	case onAfter:
		return true
	case onBefore:
		// A flipped eye on the pivot arrived moving forward, so backing off un-flips it.
		forward := movement.Dot(gazeDir) > 0
		return flipped != forward
	default:
		return before.Dot(after) < 0
	}
}

func (o *orbitManipulator) JumpToBookmark(b Bookmark) {
	o.GrabEnd()
	o.pose = poseFromBookmark(b)
}
