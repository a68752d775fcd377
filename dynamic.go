package collide

import (
	"errors"

	"github.com/cubeworks/collide/shape"
	"github.com/go-gl/mathgl/mgl32"
)

// ErrNotImplemented is returned by every DynamicCollider method. The
// swept/velocity-parameterised collision interface is declared to fix its
// shape for future callers, but is not implemented: the source this core
// is derived from left its dynamic-collision trait as unconditional
// todo!() bodies, and callers must not depend on it until a sweep
// algorithm is added.
var ErrNotImplemented = errors.New("collide: dynamic (swept) collision is not implemented")

// DynamicBoxCollider, DynamicSphereCollider: the declared-but-unimplemented
// counterpart of the static dispatcher, for a moving shape (with a
// velocity) tested against a stationary box or sphere. Every method
// returns ErrNotImplemented; callers must not depend on these until the
// sweep algorithm is specified.
type DynamicBoxCollider interface {
	CheckDynamicCollision(velocity mgl32.Vec3, other shape.Box) (bool, error)
	CheckDynamicCollisionDetails(velocity mgl32.Vec3, other shape.Box) (shape.CollisionDetails, bool, error)
}

type DynamicSphereCollider interface {
	CheckDynamicCollision(velocity mgl32.Vec3, other shape.Sphere) (bool, error)
	CheckDynamicCollisionDetails(velocity mgl32.Vec3, other shape.Sphere) (shape.CollisionDetails, bool, error)
}

// DynamicBox and DynamicSphere are the stub implementations backing
// DynamicBoxCollider/DynamicSphereCollider. They exist so the declared
// shape of the sweep interface is concrete and importable, matching the
// unimplemented (but present) trait in the source this core is derived
// from.
type DynamicBox struct{ shape.Box }
type DynamicSphere struct{ shape.Sphere }

func (DynamicBox) CheckDynamicCollision(mgl32.Vec3, shape.Box) (bool, error) {
	return false, ErrNotImplemented
}

func (DynamicBox) CheckDynamicCollisionDetails(mgl32.Vec3, shape.Box) (shape.CollisionDetails, bool, error) {
	return shape.CollisionDetails{}, false, ErrNotImplemented
}

func (DynamicSphere) CheckDynamicCollision(mgl32.Vec3, shape.Sphere) (bool, error) {
	return false, ErrNotImplemented
}

func (DynamicSphere) CheckDynamicCollisionDetails(mgl32.Vec3, shape.Sphere) (shape.CollisionDetails, bool, error) {
	return shape.CollisionDetails{}, false, ErrNotImplemented
}
