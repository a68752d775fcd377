package hull

import (
	"math"
	"testing"

	"github.com/cubeworks/collide/shape"
	"github.com/go-gl/mathgl/mgl32"
)

func floatEqual(a, b, tolerance float32) bool {
	return float32(math.Abs(float64(a-b))) < tolerance
}

func TestGJKSeparatedSpheres(t *testing.T) {
	a := shape.NewSphere(mgl32.Vec3{0, 0, 0}, 1)
	b := shape.NewSphere(mgl32.Vec3{5, 0, 0}, 1)

	_, collides := GJK(a, b)
	if collides {
		t.Fatal("expected no collision between widely separated spheres")
	}
}

func TestGJKOverlappingSpheres(t *testing.T) {
	a := shape.NewSphere(mgl32.Vec3{0, 0, 0}, 1)
	b := shape.NewSphere(mgl32.Vec3{1, 0, 0}, 1)

	simplex, collides := GJK(a, b)
	if !collides {
		t.Fatal("expected collision between overlapping spheres")
	}
	if simplex.Count != 4 && simplex.Count != 1 {
		t.Fatalf("expected a touching (1) or containing (4) simplex, got count=%d", simplex.Count)
	}
}

func TestGJKTouchingSpheresExact(t *testing.T) {
	a := shape.NewSphere(mgl32.Vec3{0, 0, 0}, 1)
	b := shape.NewSphere(mgl32.Vec3{2, 0, 0}, 1)

	_, collides := GJK(a, b)
	if !collides {
		t.Fatal("expected touching spheres to report collision")
	}
}

func TestGJKSymmetric(t *testing.T) {
	a := shape.NewSphere(mgl32.Vec3{0, 0, 0}, 1)
	b := shape.NewSphere(mgl32.Vec3{1.2, 0.3, -0.1}, 1)

	_, collidesAB := GJK(a, b)
	_, collidesBA := GJK(b, a)
	if collidesAB != collidesBA {
		t.Fatal("GJK collision result must be symmetric")
	}
}

func TestGJKBoxBoxAgreesWithSAT(t *testing.T) {
	cases := []struct {
		name       string
		a, b       shape.Box
		shouldCollide bool
	}{
		{
			name:          "disjoint AABBs",
			a:             shape.NewAxisAligned(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 1, 1}),
			b:             shape.NewAxisAligned(mgl32.Vec3{3, 0, 0}, mgl32.Vec3{1, 1, 1}),
			shouldCollide: false,
		},
		{
			name:          "overlapping AABBs",
			a:             shape.NewAxisAligned(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 1, 1}),
			b:             shape.NewAxisAligned(mgl32.Vec3{1.5, 0, 0}, mgl32.Vec3{1, 1, 1}),
			shouldCollide: true,
		},
		{
			name:          "rotated box separated",
			a:             shape.NewOriented(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 1, 1}, mgl32.Rotate3DY(math.Pi/4)),
			b:             shape.NewAxisAligned(mgl32.Vec3{2.5, 0, 0}, mgl32.Vec3{1, 1, 1}),
			shouldCollide: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, collides := GJK(tc.a, tc.b)
			if collides != tc.shouldCollide {
				t.Fatalf("expected collides=%v, got %v", tc.shouldCollide, collides)
			}
		})
	}
}

func TestMinkowskiSupport(t *testing.T) {
	a := shape.NewSphere(mgl32.Vec3{0, 0, 0}, 1)
	b := shape.NewSphere(mgl32.Vec3{3, 0, 0}, 1)

	support := MinkowskiSupport(a, b, mgl32.Vec3{1, 0, 0})
	if !floatEqual(support.X(), -1, 1e-5) {
		t.Fatalf("expected support.X == -1, got %v", support.X())
	}
}
