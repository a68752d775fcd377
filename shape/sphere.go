package shape

import "github.com/go-gl/mathgl/mgl32"

// Sphere is a spherical collision shape, immutable after construction.
type Sphere struct {
	center mgl32.Vec3
	radius float32
}

// NewSphere creates a sphere. A negative radius is not rejected (see the
// core's error-handling design: invalid input yields undefined but
// non-panicking output).
func NewSphere(center mgl32.Vec3, radius float32) Sphere {
	return Sphere{center: center, radius: radius}
}

// Center returns the sphere's world-space center.
func (s Sphere) Center() mgl32.Vec3 { return s.center }

// Radius returns the sphere's radius.
func (s Sphere) Radius() float32 { return s.radius }

// Support returns center + direction·radius. direction need not be unit
// length; the sphere's support function does not normalise it.
func (s Sphere) Support(direction mgl32.Vec3) mgl32.Vec3 {
	return s.center.Add(direction.Mul(s.radius))
}

// Inflated returns a copy of the sphere with its radius grown by amount.
func (s Sphere) Inflated(amount float32) Sphere {
	return Sphere{center: s.center, radius: s.radius + amount}
}

// ContainsPoint reports whether point lies within the sphere.
func (s Sphere) ContainsPoint(point mgl32.Vec3) bool {
	d := point.Sub(s.center)
	return d.Dot(d) <= s.radius*s.radius
}
