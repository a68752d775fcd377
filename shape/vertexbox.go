package shape

import "github.com/go-gl/mathgl/mgl32"

// VertexBox is the materialised eight-corner cache of an oriented box,
// computed once and reused across the SAT engine's axis projections
// instead of recomputing corners per candidate axis.
type VertexBox struct {
	vertices [8]mgl32.Vec3
}

// NewVertexBox materialises box's world-space corners.
func NewVertexBox(box Box) VertexBox {
	return VertexBox{vertices: box.Corners()}
}

// Vertices returns the cached eight world-space corners.
func (v VertexBox) Vertices() [8]mgl32.Vec3 {
	return v.vertices
}

// ProjectOntoAxis projects all eight corners onto axis via dot product and
// returns the resulting [min, max] interval.
func (v VertexBox) ProjectOntoAxis(axis mgl32.Vec3) (min, max float32) {
	min = axis.Dot(v.vertices[0])
	max = min
	for _, vertex := range v.vertices[1:] {
		p := axis.Dot(vertex)
		if p < min {
			min = p
		}
		if p > max {
			max = p
		}
	}
	return min, max
}
