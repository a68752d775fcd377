// Package shape provides the value types shared by every collision query:
// axis-aligned and oriented boxes, spheres, and the vertex cache used by
// the SAT engine.
package shape

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Box represents both an axis-aligned and an oriented box. Rotation is
// optional: its absence is equivalent to the identity matrix, i.e. an AABB.
type Box struct {
	center   mgl32.Vec3
	extents  mgl32.Vec3
	rotation *mgl32.Mat3
}

// NewAxisAligned creates an AABB. Negative extents components are
// silently absolutised.
func NewAxisAligned(center, extents mgl32.Vec3) Box {
	return Box{center: center, extents: absVec3(extents)}
}

// NewOriented creates an OBB whose local axes are the columns of rotation.
func NewOriented(center, extents mgl32.Vec3, rotation mgl32.Mat3) Box {
	r := rotation
	return Box{center: center, extents: absVec3(extents), rotation: &r}
}

// SetRotation re-assigns the box's rotation basis.
func (b *Box) SetRotation(rotation mgl32.Mat3) {
	r := rotation
	b.rotation = &r
}

// Center returns the box's world-space centroid.
func (b Box) Center() mgl32.Vec3 { return b.center }

// Extents returns the box's non-negative half-lengths.
func (b Box) Extents() mgl32.Vec3 { return b.extents }

// Rotation returns the box's rotation basis and whether one is set.
func (b Box) Rotation() (mgl32.Mat3, bool) {
	if b.rotation == nil {
		return mgl32.Ident3(), false
	}
	return *b.rotation, true
}

// IsOriented reports whether the box carries an explicit rotation basis.
func (b Box) IsOriented() bool {
	return b.rotation != nil
}

// Axes returns the box's three local axes in world space (the columns of
// its rotation basis, or the world basis for an AABB).
func (b Box) Axes() [3]mgl32.Vec3 {
	rotation, _ := b.Rotation()
	return [3]mgl32.Vec3{rotation.Col(0), rotation.Col(1), rotation.Col(2)}
}

// Corners enumerates the eight world-space vertices of the box as
// center ± rotation·(±extents), in a fixed but not semantically
// significant sign order.
func (b Box) Corners() [8]mgl32.Vec3 {
	rotation, oriented := b.Rotation()
	ex, ey, ez := b.extents[0], b.extents[1], b.extents[2]

	local := [8]mgl32.Vec3{
		{-ex, -ey, -ez}, {ex, -ey, -ez}, {-ex, ey, -ez}, {ex, ey, -ez},
		{-ex, -ey, ez}, {ex, -ey, ez}, {-ex, ey, ez}, {ex, ey, ez},
	}

	var corners [8]mgl32.Vec3
	for i, v := range local {
		if oriented {
			v = rotation.Mul3x1(v)
		}
		corners[i] = b.center.Add(v)
	}
	return corners
}

// Support returns the box vertex farthest along direction, the convex-hull
// protocol's support function for a box.
func (b Box) Support(direction mgl32.Vec3) mgl32.Vec3 {
	corners := b.Corners()
	best := corners[0]
	bestDot := direction.Dot(best)
	for _, c := range corners[1:] {
		if d := direction.Dot(c); d > bestDot {
			bestDot = d
			best = c
		}
	}
	return best
}

func absVec3(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{
		float32(math.Abs(float64(v[0]))),
		float32(math.Abs(float64(v[1]))),
		float32(math.Abs(float64(v[2]))),
	}
}
