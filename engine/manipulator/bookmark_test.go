package manipulator

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestBookmarkFlipped(t *testing.T) {
	assert.False(t, Bookmark{Distance: 3}.Flipped())
	assert.False(t, Bookmark{Distance: 0}.Flipped())
	assert.True(t, Bookmark{Distance: -3}.Flipped())
	assert.True(t, Bookmark{Distance: math.Copysign(0, -1)}.Flipped())
}

func TestBookmarkIsComparable(t *testing.T) {
	a := Bookmark{Phi: 0.1, Theta: 0.2, Distance: 3, Pivot: mgl64.Vec3{1, 2, 3}}
	b := a
	assert.True(t, a == b)
	b.Pivot[2] = 4
	assert.False(t, a == b)
}

func TestPoseFromBookmark(t *testing.T) {
	p := poseFromBookmark(Bookmark{Phi: 0, Theta: math.Pi / 2, Distance: 2, Pivot: mgl64.Vec3{0, 1, 0}})
	assertVec(t, mgl64.Vec3{2, 1, 0}, p.eye)
	assertVec(t, mgl64.Vec3{1, 1, 0}, p.target)
	assertVec(t, mgl64.Vec3{0, 1, 0}, p.pivot)
	assert.False(t, p.flipped)

	p = poseFromBookmark(Bookmark{Phi: 0, Theta: math.Pi / 2, Distance: -2})
	assertVec(t, mgl64.Vec3{2, 0, 0}, p.eye)
	assertVec(t, mgl64.Vec3{3, 0, 0}, p.target)
	assert.True(t, p.flipped)
}

func TestBookmarkFromPoseClampsPoles(t *testing.T) {
	b := bookmarkFromPose(pose{
		eye:    mgl64.Vec3{0, 4, 0},
		target: mgl64.Vec3{0, 0, 0},
	})
	assert.InDelta(t, MaxPhi, b.Phi, tolerance)
	assert.Less(t, b.Phi, math.Pi/2)
	assert.InDelta(t, 4.0, b.Distance, tolerance)
}

func TestBookmarkFromPoseOnPivot(t *testing.T) {
	b := bookmarkFromPose(pose{
		eye:     mgl64.Vec3{1, 1, 1},
		target:  mgl64.Vec3{1, 1, 1},
		pivot:   mgl64.Vec3{1, 1, 1},
		flipped: true,
	})
	assert.True(t, b.Flipped())
	assert.False(t, math.IsNaN(b.Phi) || math.IsNaN(b.Theta))
}

func TestBookmarkEncoding(t *testing.T) {
	b := Bookmark{Phi: 0.25, Theta: -1.5, Distance: -4, Pivot: mgl64.Vec3{1, 2, 3}}

	raw, err := json.Marshal(b)
	require.NoError(t, err)
	assert.JSONEq(t, `{"phi":0.25,"theta":-1.5,"distance":-4,"pivot":[1,2,3]}`, string(raw))

	out, err := yaml.Marshal(b)
	require.NoError(t, err)
	var decoded Bookmark
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Equal(t, b, decoded)
}
