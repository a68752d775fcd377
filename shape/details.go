package shape

import "github.com/go-gl/mathgl/mgl32"

// CollisionDetails is the result of a collision query that also reports
// the minimum separating translation. Normal points from the second shape
// toward the first, such that translating the first shape by
// Normal.Mul(Penetration) separates the pair. Penetration is zero (with a
// zero normal) for exactly-touching shapes. DetailsBoxSphere and
// DetailsSphereBox in package collide report the normal in the opposite
// direction; see their documentation.
type CollisionDetails struct {
	Normal      mgl32.Vec3
	Penetration float32
}
