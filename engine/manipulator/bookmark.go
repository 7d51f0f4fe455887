package manipulator

import (
	"math"

	"github.com/Carmen-Shannon/oxy-camutils/common"
	"github.com/go-gl/mathgl/mgl64"
)

// MaxPhi is the largest elevation magnitude a bookmark may carry.
// Elevation is kept strictly inside (-π/2, π/2) so the spherical parametrization never hits a pole.
const MaxPhi = math.Pi/2 - 0.001

// minDistance is the eye-to-pivot length below which the pivot offset has no usable direction.
const minDistance = 1e-9

// Bookmark is a spherical snapshot of a viewpoint.
// It is a plain value: copy it freely, compare it with ==, hand it to an animator or a config file.
type Bookmark struct {
	// Phi is the elevation angle in radians, in (-MaxPhi, MaxPhi).
	Phi float64 `json:"phi" yaml:"phi" mapstructure:"phi"`

	// Theta is the azimuth angle in radians around the Y axis; 0 looks down -Z from +Z.
	// Bookmarks read from a pose carry theta in (-π, π]; bookmarks built by orbiting may leave that range.
	Theta float64 `json:"theta" yaml:"theta" mapstructure:"theta"`

	// Distance is the eye-to-pivot distance. A negative value (including -0) means the eye
	// has travelled past the pivot along the view axis and the camera looks away from it.
	Distance float64 `json:"distance" yaml:"distance" mapstructure:"distance"`

	// Pivot is the center of orbit.
	Pivot mgl64.Vec3 `json:"pivot" yaml:"pivot" mapstructure:"pivot"`
}

// Flipped reports whether the bookmark encodes an eye that has crossed its pivot.
//
// Returns:
//   - bool: true if Distance carries a negative sign
func (b Bookmark) Flipped() bool {
	return math.Signbit(b.Distance)
}

// pose is the Cartesian form of a viewpoint. flipped is the source of truth for the
// sign that Bookmark.Distance carries.
type pose struct {
	eye     mgl64.Vec3
	target  mgl64.Vec3
	pivot   mgl64.Vec3
	flipped bool
}

// orbitDirection returns the unit vector from the pivot toward the eye for the given angles.
func orbitDirection(phi, theta float64) mgl64.Vec3 {
	cosPhi := math.Cos(phi)
	return mgl64.Vec3{
		math.Sin(theta) * cosPhi,
		math.Sin(phi),
		math.Cos(theta) * cosPhi,
	}
}

// poseFromBookmark converts spherical orbit parameters into eye, target and pivot.
// Phi is clamped to ±MaxPhi first, so the pose reads back as the same bookmark.
// The target sits one unit from the eye, in front of it when unflipped and behind it
// (further along the pivot-to-eye ray) once flipped.
func poseFromBookmark(b Bookmark) pose {
	dir := orbitDirection(common.Clamp(b.Phi, -MaxPhi, MaxPhi), b.Theta)
	p := pose{
		pivot:   b.Pivot,
		flipped: b.Flipped(),
	}
	p.eye = b.Pivot.Add(dir.Mul(math.Abs(b.Distance)))
	if p.flipped {
		p.target = p.eye.Add(dir)
	} else {
		p.target = p.eye.Sub(dir)
	}
	return p
}

// bookmarkFromPose converts a pose into spherical orbit parameters.
// When the eye sits on the pivot the direction is recovered from the gaze instead,
// and the distance collapses to ±0 with the flip kept in the sign bit.
func bookmarkFromPose(p pose) Bookmark {
	offset := p.eye.Sub(p.pivot)
	dist := offset.Len()

	var dir mgl64.Vec3
	if dist >= minDistance {
		dir = offset.Mul(1 / dist)
	} else {
		dist = 0
		dir = p.eye.Sub(p.target)
		if p.flipped {
			dir = dir.Mul(-1)
		}
		if l := dir.Len(); l >= minDistance {
			dir = dir.Mul(1 / l)
		} else {
			dir = mgl64.Vec3{0, 0, 1}
		}
	}

	b := Bookmark{
		Phi:      common.Clamp(math.Asin(common.Clamp(dir.Y(), -1, 1)), -MaxPhi, MaxPhi),
		Theta:    math.Atan2(dir.X(), dir.Z()),
		Distance: dist,
		Pivot:    p.pivot,
	}
	if p.flipped {
		b.Distance = math.Copysign(dist, -1)
	}
	return b
}
