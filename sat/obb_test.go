package sat

import (
	"math"
	"testing"

	"github.com/cubeworks/collide/shape"
	"github.com/go-gl/mathgl/mgl32"
)

// Scenario 4: OBB-OBB edge-edge separation.
func TestOverlapSeparatedRotatedBoxes(t *testing.T) {
	a := shape.NewOriented(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 1, 1}, mgl32.Rotate3DY(math.Pi/4))
	b := shape.NewAxisAligned(mgl32.Vec3{2.5, 0, 0}, mgl32.Vec3{1, 1, 1})

	// A's rotated corner reaches sqrt(2) ~= 1.414, plus B's 1, sums to
	// 2.414 < 2.5: the boxes should not collide.
	if Overlap(a, b) {
		t.Fatal("expected no collision for 45°-rotated box separated by 2.5 on X")
	}
	if _, ok := Details(a, b); ok {
		t.Fatal("expected no collision details")
	}
}

func TestOverlapRotatedBoxesOverlapping(t *testing.T) {
	a := shape.NewOriented(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 1, 1}, mgl32.Rotate3DY(math.Pi/4))
	b := shape.NewAxisAligned(mgl32.Vec3{2.0, 0, 0}, mgl32.Vec3{1, 1, 1})

	// sqrt(2) + 1 ~= 2.414 > 2.0, so these do overlap.
	if !Overlap(a, b) {
		t.Fatal("expected collision: rotated corner extends past 2.0")
	}
}

func TestOverlapUnrotatedBoxesMatchesAABBCase(t *testing.T) {
	a := shape.NewAxisAligned(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 1, 1})
	b := shape.NewAxisAligned(mgl32.Vec3{1.5, 0, 0}, mgl32.Vec3{1, 1, 1})

	if Overlap(a, b) != OverlapAABB(a, b) {
		t.Fatal("SAT and AABB fast path must agree for unrotated boxes")
	}
}

func TestOverlapSymmetric(t *testing.T) {
	a := shape.NewOriented(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 1, 1}, mgl32.Rotate3DY(0.3))
	b := shape.NewOriented(mgl32.Vec3{1.2, 0.3, 0.1}, mgl32.Vec3{1, 1, 1}, mgl32.Rotate3DX(0.7))

	if Overlap(a, b) != Overlap(b, a) {
		t.Fatal("SAT overlap must be symmetric")
	}
}

func TestCandidateAxesSkipsDegenerateCrossProducts(t *testing.T) {
	// Two boxes with identical orientation: the three cross products
	// between parallel local axes are zero and must be filtered out,
	// leaving the 6 local axes plus 6 non-zero cross products.
	a := shape.NewOriented(mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}, mgl32.Ident3())
	b := shape.NewOriented(mgl32.Vec3{3, 0, 0}, mgl32.Vec3{1, 1, 1}, mgl32.Ident3())

	axes := candidateAxes(a, b)
	for _, axis := range axes {
		if isDegenerate(axis) {
			t.Fatalf("candidateAxes returned a degenerate axis: %v", axis)
		}
	}
	if len(axes) != 12 {
		t.Fatalf("expected 12 usable axes for parallel boxes, got %d", len(axes))
	}
}

func TestDetailsFindsMinimumPenetrationAxis(t *testing.T) {
	a := shape.NewOriented(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 1, 1}, mgl32.Ident3())
	b := shape.NewOriented(mgl32.Vec3{1.5, 0, 0}, mgl32.Vec3{1, 1, 1}, mgl32.Ident3())

	details, ok := Details(a, b)
	if !ok {
		t.Fatal("expected collision")
	}
	if float32(math.Abs(float64(float32(math.Abs(float64(details.Penetration)))-0.5))) > 1e-4 {
		t.Fatalf("expected |penetration| ~= 0.5, got %v", details.Penetration)
	}
}
