package manipulator

import (
	"math"
)

// mapMinZoom is the smallest eye-to-pivot distance a map zoom reaches, as a fraction of the home distance.
const mapMinZoom = 1e-4

// mapManipulator pans and zooms a top-down view. Every drag translates the camera in
// its view plane (the strafe flag is ignored) and zoom scales the eye-to-pivot distance
// geometrically, so the eye never reaches or crosses the pivot and the pose never flips.
type mapManipulator struct {
	manipulatorBase
}

var _ Manipulator = &mapManipulator{}

func (m *mapManipulator) GrabBegin(x, y int, _ bool) {
	m.beginDrag(x, y, GrabStrafing)
}

func (m *mapManipulator) GrabUpdate(x, y int) {
	if m.drag == nil {
		return
	}
	g, err := gaze(m.drag.pose)
	if err != nil {
		m.logger.Debug().Err(err).Msg("pan skipped")
		return
	}

	// Pan speed follows the distance so the map moves at the same rate on screen at any zoom.
	scale := math.Abs(m.drag.bookmark.Distance) / m.props.HomeDistance()
	dx, dy := m.dragDelta(x, y)
	movement := strafeMovement(g, m.props.HomeUpVector, dx*m.props.StrafeSpeed.X()*scale, dy*m.props.StrafeSpeed.Y()*scale)
	m.pose = m.drag.pose.translated(movement)
}

func (m *mapManipulator) Zoom(_, _ int, scrollDelta float64) {
	if scrollDelta == 0 {
		return
	}
	g, err := gaze(m.pose)
	if err != nil {
		m.logger.Debug().Err(err).Msg("zoom skipped")
		return
	}

	offset := m.pose.eye.Sub(m.pose.pivot)
	dist := offset.Len()
	if dist < minDistance {
		m.logger.Debug().Msg("zoom skipped: eye on pivot")
		return
	}

	// The floor only stops a zoom-in; a view already closer than the floor stays put.
	floor := min(dist, m.props.HomeDistance()*mapMinZoom)
	next := max(dist*math.Exp(-m.props.ZoomSpeed*scrollDelta), floor)
	movement := offset.Mul(next/dist - 1)
	m.pose.eye = m.pose.eye.Add(movement)
	m.pose.target = m.pose.eye.Add(g)
}

// JumpToBookmark applies b with its distance made non-negative; a map view never flips.
func (m *mapManipulator) JumpToBookmark(b Bookmark) {
	m.GrabEnd()
	b.Distance = math.Abs(b.Distance)
	m.pose = poseFromBookmark(b)
}
