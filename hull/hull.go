// Package hull implements the shape-agnostic convex-hull protocol: a
// support-function capability shared by every shape, and the GJK simplex
// search that drives collision detection through it.
package hull

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// ConvexHull is the capability every collision shape exposes: given a
// direction, return the point of the shape farthest along it. Adding a new
// convex shape (capsule, cylinder, convex mesh) to the collision core is a
// matter of implementing this one method.
type ConvexHull interface {
	Support(direction mgl32.Vec3) mgl32.Vec3
}

// MinkowskiSupport computes a support point of the Minkowski difference
// A - B in the given direction: furthestA(direction) - furthestB(-direction).
func MinkowskiSupport(a, b ConvexHull, direction mgl32.Vec3) mgl32.Vec3 {
	return a.Support(direction).Sub(b.Support(direction.Mul(-1)))
}

// Simplex holds up to four points of the Minkowski difference built during
// GJK. When Count == 4 the first three points form the base triangle and
// the fourth is the apex, oriented so the base normal points away from the
// apex (CCW viewed from outside).
type Simplex struct {
	Points [4]mgl32.Vec3
	Count  int
}

// face is a planar triangle inside the simplex/polytope, carrying the
// indices of its three vertices, an outward unit normal, and the signed
// distance from the origin along that normal (distance = normal·vertex0).
// A face whose cross product fails to normalise is represented as absent.
type face struct {
	indices  [3]int
	normal   mgl32.Vec3
	distance float32
}

func buildFace(points []mgl32.Vec3, indices [3]int) (face, bool) {
	v0, v1, v2 := points[indices[0]], points[indices[1]], points[indices[2]]
	normal, ok := tryNormalize(v1.Sub(v0).Cross(v2.Sub(v0)))
	if !ok {
		return face{}, false
	}
	return face{indices: indices, normal: normal, distance: normal.Dot(v0)}, true
}

func tryNormalize(v mgl32.Vec3) (mgl32.Vec3, bool) {
	lenSqr := v.Dot(v)
	if lenSqr < 1e-16 {
		return mgl32.Vec3{}, false
	}
	return v.Mul(1 / float32(math.Sqrt(float64(lenSqr)))), true
}

// nearestOutsideFace examines the tetrahedron simplex's three non-base
// faces ({3,1,0}, {3,2,1}, {3,0,2}) and returns the one nearest to the
// origin while still having the origin on its outward side. Returns false
// once no such face remains, meaning the origin is contained.
func nearestOutsideFace(points []mgl32.Vec3) (face, bool) {
	candidates := [3][3]int{{3, 1, 0}, {3, 2, 1}, {3, 0, 2}}

	minDistance := float32(math.MaxFloat32)
	var nearest face
	found := false

	for _, idx := range candidates {
		f, ok := buildFace(points, idx)
		if !ok {
			continue
		}
		// Origin is outside this face iff -f.distance is positive, i.e.
		// the face plane constant (along its outward normal) is negative.
		distance := -f.distance
		if distance > 0 && distance < minDistance {
			minDistance = distance
			nearest = f
			found = true
		}
	}

	return nearest, found
}

// GJK searches for the origin inside the Minkowski difference of a and b
// by building a tetrahedral simplex.
//
// Returns (simplex, true) when the shapes touch or overlap: Count == 1 for
// an exact-touching support point, Count == 4 for a containing
// tetrahedron. Returns (Simplex{}, false) once separation is proven.
func GJK(a, b ConvexHull) (Simplex, bool) {
	var simplex Simplex

	// 1. Seed with an arbitrary direction; the first Minkowski support.
	direction := mgl32.Vec3{1, 0, 0}
	simplex.Points[0] = MinkowskiSupport(a, b, direction)

	// 2. Search toward the origin from that point. If it IS the origin,
	// the shapes touch exactly.
	toOrigin, ok := tryNormalize(simplex.Points[0].Mul(-1))
	if !ok {
		simplex.Count = 1
		return simplex, true
	}
	direction = toOrigin

	// 3. Take a second support point; bail out if it doesn't cross the
	// origin along the search direction.
	simplex.Points[1] = MinkowskiSupport(a, b, direction)
	if simplex.Points[1].Dot(direction) < 0 {
		return Simplex{}, false
	}

	// 4. Choose a direction perpendicular to the v0v1 segment and pointing
	// toward the origin.
	v0, v1 := simplex.Points[0], simplex.Points[1]
	edge01 := v1.Sub(v0)
	cross := v0.Cross(v1)
	if cross == (mgl32.Vec3{}) {
		// Origin is collinear with the segment: pick any non-zero
		// axis-cross of the edge.
		perp := mgl32.Vec3{0, 1, 0}.Cross(edge01)
		if perp == (mgl32.Vec3{}) {
			perp = mgl32.Vec3{0, 0, 1}.Cross(edge01)
		}
		direction, _ = tryNormalize(perp)
		simplex.Points[2] = MinkowskiSupport(a, b, direction)
		if simplex.Points[2] == v0 || simplex.Points[2] == v1 {
			direction = direction.Mul(-1)
			simplex.Points[2] = MinkowskiSupport(a, b, direction)
		}
	} else {
		direction, _ = tryNormalize(cross.Cross(edge01))
		simplex.Points[2] = MinkowskiSupport(a, b, direction)
	}
	if simplex.Points[2].Dot(direction) < 0 {
		return Simplex{}, false
	}

	// 5. Orient the triangle so its normal points away from the origin,
	// then take the apex.
	v2 := simplex.Points[2]
	normal := v1.Sub(v0).Cross(v2.Sub(v0))
	if normal.Dot(v0) < 0 {
		direction = normal
		simplex.Points[1], simplex.Points[2] = simplex.Points[2], simplex.Points[1]
	} else {
		direction = normal.Mul(-1)
	}
	direction, _ = tryNormalize(direction)
	simplex.Points[3] = MinkowskiSupport(a, b, direction)
	if simplex.Points[3].Dot(direction) < 0 {
		return Simplex{}, false
	}

	// 6. Expand the tetrahedron until it contains the origin.
	for {
		f, outside := nearestOutsideFace(simplex.Points[:])
		if !outside {
			simplex.Count = 4
			return simplex, true
		}

		support := MinkowskiSupport(a, b, f.normal)
		simplex.Points = [4]mgl32.Vec3{
			simplex.Points[f.indices[0]],
			simplex.Points[f.indices[2]],
			simplex.Points[f.indices[1]],
			support,
		}
		if support.Dot(f.normal) < 0 {
			return Simplex{}, false
		}
	}
}
