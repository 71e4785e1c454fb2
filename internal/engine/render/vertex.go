package render

import "github.com/Faultbox/uiforge/pkg/pool"

// Vertex is a single UI vertex: position, texture coordinate and color.
// The default state is the origin with zero UV and white color.
type Vertex struct {
	X, Y, Z float32
	U, V    float32
	Color   Color
}

// VertexPool is a shared recycling pool of vertex records. Geometry
// controllers draw from one pool so that per-frame resizes reuse records
// instead of allocating.
type VertexPool = pool.Pool[Vertex]

// NewVertexPool creates a vertex pool whose records always come out in
// default state.
func NewVertexPool() *VertexPool {
	return pool.New(
		func() *Vertex { return &Vertex{Color: White} },
		func(v *Vertex) { *v = Vertex{Color: White} },
	)
}
