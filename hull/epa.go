package hull

import (
	"container/heap"

	"github.com/cubeworks/collide/shape"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// epaConvergenceTolerance is the distance tolerance at which a new
	// support point is considered not to improve on the closest face's
	// distance, i.e. the polytope has converged.
	epaConvergenceTolerance = 1e-4

	// epaMaxIterations is a soft cap on polytope expansion, guarding
	// against floating-point non-termination.
	epaMaxIterations = 64
)

func absF32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// faceHeap is a native min-heap of polytope faces keyed by distance to the
// origin (smallest first). Design note: the original source emulated a
// min-heap atop a max-heap primitive by negating distances; a fresh
// implementation gets a min-heap directly from container/heap.
type faceHeap []face

func (h faceHeap) Len() int            { return len(h) }
func (h faceHeap) Less(i, j int) bool  { return h[i].distance < h[j].distance }
func (h faceHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *faceHeap) Push(x interface{}) { *h = append(*h, x.(face)) }
func (h *faceHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// edgeKey identifies a directed polytope edge by its two vertex indices.
type edgeKey struct{ a, b int }

func indexOfEdge(edges []edgeKey, e edgeKey) int {
	for i, existing := range edges {
		if existing == e {
			return i
		}
	}
	return -1
}

// polytope is the EPA-local growable vertex list and face set, built from
// a containing GJK simplex and expanded until a probe fails to advance
// measurably.
type polytope struct {
	vertices []mgl32.Vec3
	faces    faceHeap
}

// newPolytope builds the initial four-face polytope from a tetrahedral
// GJK simplex. The simplex invariant (base CCW, apex origin-facing)
// guarantees all four faces below are already outward-oriented, so no
// extra orientation correction is needed here.
func newPolytope(simplex Simplex) polytope {
	vertices := append([]mgl32.Vec3(nil), simplex.Points[:4]...)

	indexTriples := [4][3]int{{0, 1, 2}, {3, 1, 0}, {3, 2, 1}, {3, 0, 2}}
	faces := make(faceHeap, 0, 4)
	for _, idx := range indexTriples {
		if f, ok := buildFace(vertices, idx); ok {
			faces = append(faces, f)
		}
	}
	heap.Init(&faces)

	return polytope{vertices: vertices, faces: faces}
}

// expand adds support to the polytope: faces visible from support are
// removed, and the boundary edges of the removed region are rebuilt into
// new faces connecting to support. Returns false if no new face survived
// (the polytope could not expand further).
func (p *polytope) expand(support mgl32.Vec3) bool {
	var visible []face
	var kept faceHeap

	for _, f := range p.faces {
		toSupport := support.Sub(p.vertices[f.indices[0]])
		if f.normal.Dot(toSupport) > 0 {
			visible = append(visible, f)
		} else {
			kept = append(kept, f)
		}
	}

	// Boundary edges: every directed edge of a removed face not cancelled
	// by the reverse edge on another removed face. Tracked in a slice
	// (quadratic dedup, acceptable at expected polytope sizes) rather than
	// a map so the face order stays deterministic for equal-distance ties.
	var boundary []edgeKey
	for _, f := range visible {
		edges := [3]edgeKey{
			{f.indices[0], f.indices[1]},
			{f.indices[1], f.indices[2]},
			{f.indices[2], f.indices[0]},
		}
		for _, e := range edges {
			reverse := edgeKey{e.b, e.a}
			if i := indexOfEdge(boundary, reverse); i >= 0 {
				boundary = append(boundary[:i], boundary[i+1:]...)
			} else {
				boundary = append(boundary, e)
			}
		}
	}

	newVertexIndex := len(p.vertices)
	p.vertices = append(p.vertices, support)

	added := false
	for _, e := range boundary {
		if f, ok := buildFace(p.vertices, [3]int{e.a, e.b, newVertexIndex}); ok {
			kept = append(kept, f)
			added = true
		}
	}

	heap.Init(&kept)
	p.faces = kept
	return added
}

// EPA expands a GJK-containing simplex into a polytope to recover the
// minimum penetration vector. simplex must come from a call to GJK that
// returned true.
//
// Returns the best-known CollisionDetails accumulated so far even when the
// soft iteration cap is reached, per the core's error-handling design: EPA
// never panics or errors, it always returns a best-effort result.
func EPA(a, b ConvexHull, simplex Simplex) shape.CollisionDetails {
	if simplex.Count < 4 {
		// A 1-vertex (exact-touching) simplex: zero penetration, no
		// preferred normal.
		return shape.CollisionDetails{}
	}

	p := newPolytope(simplex)
	if len(p.faces) == 0 {
		return shape.CollisionDetails{}
	}

	var best shape.CollisionDetails

	for i := 0; i < epaMaxIterations; i++ {
		if len(p.faces) == 0 {
			return best
		}

		nearest := p.faces[0]
		best = shape.CollisionDetails{Normal: nearest.normal.Mul(-1), Penetration: nearest.distance}

		support := MinkowskiSupport(a, b, nearest.normal)
		distance := support.Dot(nearest.normal)

		if absF32(distance-nearest.distance) < epaConvergenceTolerance {
			return best
		}

		if !p.expand(support) {
			return best
		}
	}

	return best
}
