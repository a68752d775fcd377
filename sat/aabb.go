// Package sat implements the axis-aligned fast path and the
// Separating-Axis Theorem engine for oriented boxes.
package sat

import (
	"math"

	"github.com/cubeworks/collide/shape"
	"github.com/go-gl/mathgl/mgl32"
)

// OverlapAABB reports whether two boxes overlap treating both as
// axis-aligned: on every world axis, the distance between centers does
// not exceed the sum of extents. Touching counts as overlap.
func OverlapAABB(a, b shape.Box) bool {
	ca, cb := a.Center(), b.Center()
	ea, eb := a.Extents(), b.Extents()

	for i := 0; i < 3; i++ {
		if float32(math.Abs(float64(ca[i]-cb[i]))) > ea[i]+eb[i] {
			return false
		}
	}
	return true
}

// DetailsAABB computes the axis-wise overlap between two axis-aligned
// boxes and returns the minimum-penetration separation, or false if the
// boxes do not overlap on some axis.
//
// The axis of smallest absolute penetration is chosen as the collision
// normal (one of the three world basis vectors, or zero when the
// penetration is exactly zero); ties are broken by lowest-index axis.
func DetailsAABB(a, b shape.Box) (shape.CollisionDetails, bool) {
	ca, cb := a.Center(), b.Center()
	ea, eb := a.Extents(), b.Extents()

	minA, maxA := ca.Sub(ea), ca.Add(ea)
	minB, maxB := cb.Sub(eb), cb.Add(eb)

	bestAxis := -1
	var bestPenetration float32 = math.MaxFloat32

	for i := 0; i < 3; i++ {
		overlapMin := maxF32(minA[i], minB[i])
		overlapMax := minF32(maxA[i], maxB[i])
		if overlapMin > overlapMax {
			return shape.CollisionDetails{}, false
		}

		midA := (maxA[i] + minA[i]) * 0.5
		midB := (maxB[i] + minB[i]) * 0.5
		var penetration float32
		if midA < midB {
			penetration = overlapMin - overlapMax
		} else {
			penetration = overlapMax - overlapMin
		}

		if float32(math.Abs(float64(penetration))) < float32(math.Abs(float64(bestPenetration))) {
			bestPenetration = penetration
			bestAxis = i
		}
	}

	normal := axisNormal(bestAxis)
	if bestPenetration == 0 {
		normal = mgl32.Vec3{}
	}

	return shape.CollisionDetails{Normal: normal, Penetration: bestPenetration}, true
}

func axisNormal(axis int) mgl32.Vec3 {
	switch axis {
	case 0:
		return mgl32.Vec3{1, 0, 0}
	case 1:
		return mgl32.Vec3{0, 1, 0}
	case 2:
		return mgl32.Vec3{0, 0, 1}
	default:
		return mgl32.Vec3{}
	}
}

func minF32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxF32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
