// Package collide is a 3D convex-shape collision-detection core for
// real-time simulation and physics-style applications. Given two convex
// shapes (axis-aligned boxes, oriented boxes, spheres) it answers whether
// they intersect and, if so, the minimum translation that separates them.
//
// Every query is a pure function of two immutable shapes: no state is
// retained between calls, and queries may be invoked freely from multiple
// goroutines without coordination.
package collide

import (
	"math"

	"github.com/cubeworks/collide/hull"
	"github.com/cubeworks/collide/sat"
	"github.com/cubeworks/collide/shape"
	"github.com/go-gl/mathgl/mgl32"
)

// IntersectsBox reports whether two boxes intersect. Two unrotated boxes
// take the closed-form AABB fast path; if either carries a rotation, the
// 15-axis SAT engine is used instead.
func IntersectsBox(a, b shape.Box) bool {
	if a.IsOriented() || b.IsOriented() {
		return sat.Overlap(a, b)
	}
	return sat.OverlapAABB(a, b)
}

// DetailsBox is IntersectsBox plus the minimum-penetration normal and
// depth, or false if the boxes do not intersect.
func DetailsBox(a, b shape.Box) (shape.CollisionDetails, bool) {
	if a.IsOriented() || b.IsOriented() {
		return sat.Details(a, b)
	}
	return sat.DetailsAABB(a, b)
}

// IntersectsSphere reports whether two spheres intersect.
func IntersectsSphere(a, b shape.Sphere) bool {
	d := a.Center().Sub(b.Center())
	r := a.Radius() + b.Radius()
	return d.Dot(d) <= r*r
}

// DetailsSphere is IntersectsSphere plus the separating normal (pointing
// from b toward a) and penetration depth = r1 + r2 - |c1 - c2|.
func DetailsSphere(a, b shape.Sphere) (shape.CollisionDetails, bool) {
	delta := a.Center().Sub(b.Center())
	distance := delta.Len()
	penetration := a.Radius() + b.Radius() - distance
	if penetration < 0 {
		return shape.CollisionDetails{}, false
	}

	normal, _ := tryNormalize(delta)
	if penetration == 0 {
		normal = mgl32.Vec3{}
	}
	return shape.CollisionDetails{Normal: normal, Penetration: penetration}, true
}

// localSphereCenter projects sphere's center into box's local frame, via
// the transposed rotation (the inverse of an orthonormal basis).
func localSphereCenter(box shape.Box, sphere shape.Sphere) mgl32.Vec3 {
	offset := sphere.Center().Sub(box.Center())
	if rotation, ok := box.Rotation(); ok {
		return rotation.Transpose().Mul3x1(offset)
	}
	return offset
}

// IntersectsBoxSphere reports whether box and sphere intersect: the
// clamped squared distance from the sphere center to the box interior,
// computed in the box's local frame, compared against radius².
func IntersectsBoxSphere(box shape.Box, sphere shape.Sphere) bool {
	local := localSphereCenter(box, sphere)
	extents := box.Extents()

	var distanceSq float32
	for i := 0; i < 3; i++ {
		d := absF32(local[i]) - extents[i]
		if d > 0 {
			distanceSq += d * d
		}
	}

	return distanceSq <= sphere.Radius()*sphere.Radius()
}

// DetailsBoxSphere computes the local-frame vector from the nearest
// box-surface point to the sphere center, rotated back to world space, as
// the collision normal; radius minus that vector's length is the
// penetration. The normal therefore points from the box toward the sphere
// (from the first shape toward the second), the reverse of the
// CollisionDetails convention.
func DetailsBoxSphere(box shape.Box, sphere shape.Sphere) (shape.CollisionDetails, bool) {
	local := localSphereCenter(box, sphere)
	extents := box.Extents()

	var toCenter mgl32.Vec3
	for i := 0; i < 3; i++ {
		d := absF32(local[i]) - extents[i]
		if d >= 0 {
			toCenter[i] = signF32(local[i]) * d
		}
	}

	if rotation, ok := box.Rotation(); ok {
		toCenter = rotation.Mul3x1(toCenter)
	}

	penetration := sphere.Radius() - toCenter.Len()
	if penetration < 0 {
		return shape.CollisionDetails{}, false
	}

	normal, ok := tryNormalize(toCenter)
	if !ok || penetration == 0 {
		normal = mgl32.Vec3{}
	}
	return shape.CollisionDetails{Normal: normal, Penetration: penetration}, true
}

// IntersectsSphereBox is the symmetric counterpart of IntersectsBoxSphere.
func IntersectsSphereBox(sphere shape.Sphere, box shape.Box) bool {
	return IntersectsBoxSphere(box, sphere)
}

// DetailsSphereBox delegates to DetailsBoxSphere and flips the normal, so it
// points from the sphere toward the box, keeping the penetration
// non-negative.
//
// The source this core is derived from instead negates the penetration on
// this symmetric path, which produces a negative depth for an overlapping
// pair queried sphere-vs-box; this implementation flips the normal instead
// and always reports penetration >= 0 (see DESIGN.md).
func DetailsSphereBox(sphere shape.Sphere, box shape.Box) (shape.CollisionDetails, bool) {
	details, ok := DetailsBoxSphere(box, sphere)
	if !ok {
		return shape.CollisionDetails{}, false
	}
	details.Normal = details.Normal.Mul(-1)
	return details, true
}

// GJK exposes the convex-hull fallback directly: it works for any pair of
// shapes implementing hull.ConvexHull, not just the ones this package
// names explicitly.
func GJK(a, b hull.ConvexHull) (hull.Simplex, bool) {
	return hull.GJK(a, b)
}

// GJKEPA runs GJK and, on collision, EPA, giving a uniform (if slower)
// fallback that works for any shape pair through the convex-hull protocol
// alone, without a dedicated dispatcher case.
func GJKEPA(a, b hull.ConvexHull) (shape.CollisionDetails, bool) {
	simplex, ok := hull.GJK(a, b)
	if !ok {
		return shape.CollisionDetails{}, false
	}
	if simplex.Count <= 1 {
		return shape.CollisionDetails{}, true
	}
	return hull.EPA(a, b, simplex), true
}

func tryNormalize(v mgl32.Vec3) (mgl32.Vec3, bool) {
	lenSqr := v.Dot(v)
	if lenSqr < 1e-16 {
		return mgl32.Vec3{}, false
	}
	return v.Mul(1 / float32(math.Sqrt(float64(lenSqr)))), true
}

func absF32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func signF32(v float32) float32 {
	if v < 0 {
		return -1
	}
	return 1
}
