package sat

import (
	"math"

	"github.com/cubeworks/collide/shape"
	"github.com/go-gl/mathgl/mgl32"
)

// candidateAxes returns the 15 candidate separating axes for two oriented
// boxes: the three local axes of a, the three of b, and the nine pairwise
// cross products. Degenerate cross products (zero-length, or containing
// NaN) are skipped.
func candidateAxes(a, b shape.Box) []mgl32.Vec3 {
	axesA := a.Axes()
	axesB := b.Axes()

	axes := make([]mgl32.Vec3, 0, 15)
	axes = append(axes, axesA[:]...)
	axes = append(axes, axesB[:]...)

	for _, axisA := range axesA {
		for _, axisB := range axesB {
			cross := axisA.Cross(axisB)
			if isDegenerate(cross) {
				continue
			}
			axes = append(axes, cross)
		}
	}

	return axes
}

func isDegenerate(v mgl32.Vec3) bool {
	if v.Dot(v) < 1e-12 {
		return true
	}
	for _, c := range v {
		if math.IsNaN(float64(c)) {
			return true
		}
	}
	return false
}

// Overlap reports whether two oriented (or axis-aligned) boxes intersect
// using the Separating-Axis Theorem: the boxes are disjoint iff some
// candidate axis separates their projections. Touching counts as overlap.
func Overlap(a, b shape.Box) bool {
	vboxA := shape.NewVertexBox(a)
	vboxB := shape.NewVertexBox(b)

	for _, axis := range candidateAxes(a, b) {
		minA, maxA := vboxA.ProjectOntoAxis(axis)
		minB, maxB := vboxB.ProjectOntoAxis(axis)
		if maxA < minB || maxB < minA {
			return false
		}
	}
	return true
}

// Details runs the same 15-axis SAT test as Overlap but, when no axis
// separates the boxes, also computes the minimum-penetration normal and
// depth: for every axis, the signed 1-D overlap is tracked and the axis of
// smallest absolute overlap is reported as the collision normal.
func Details(a, b shape.Box) (shape.CollisionDetails, bool) {
	vboxA := shape.NewVertexBox(a)
	vboxB := shape.NewVertexBox(b)

	var bestPenetration float32 = math.MaxFloat32
	var bestNormal mgl32.Vec3
	found := false

	for _, axis := range candidateAxes(a, b) {
		minA, maxA := vboxA.ProjectOntoAxis(axis)
		minB, maxB := vboxB.ProjectOntoAxis(axis)

		overlapMin := maxF32(minA, minB)
		overlapMax := minF32(maxA, maxB)
		if overlapMin > overlapMax {
			return shape.CollisionDetails{}, false
		}

		midA := (maxA + minA) * 0.5
		midB := (maxB + minB) * 0.5
		var penetration float32
		if midA < midB {
			penetration = overlapMin - overlapMax
		} else {
			penetration = overlapMax - overlapMin
		}

		if float32(math.Abs(float64(penetration))) < float32(math.Abs(float64(bestPenetration))) {
			bestPenetration = penetration
			if n, ok := tryNormalizeAxis(axis); ok {
				bestNormal = n
				found = true
			}
		}
	}

	if !found {
		return shape.CollisionDetails{}, false
	}
	if bestPenetration == 0 {
		bestNormal = mgl32.Vec3{}
	}

	return shape.CollisionDetails{Normal: bestNormal, Penetration: bestPenetration}, true
}

func tryNormalizeAxis(v mgl32.Vec3) (mgl32.Vec3, bool) {
	lenSqr := v.Dot(v)
	if lenSqr < 1e-16 {
		return mgl32.Vec3{}, false
	}
	return v.Mul(1 / float32(math.Sqrt(float64(lenSqr)))), true
}
