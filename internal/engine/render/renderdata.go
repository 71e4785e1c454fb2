// Package render implements the pooled geometry buffers behind UI
// elements: per-element vertex/index sequences that are reused across
// frames, with dirty flags telling the renderer when a buffer must be
// regenerated before the next draw.
package render

// RenderData is the geometry controller for one UI element. It owns its
// vertex and index sequences (drawing vertex records from a shared
// VertexPool) and tracks two independent dirty flags.
//
// The flags form a minimal invalidation protocol: mutating operations set
// them, and the consumer clears them once it has regenerated the
// corresponding buffer. RenderData itself only resets them in Clear.
//
// RenderData is a trusted-caller primitive: no validation, no locking.
// A single logical owner mutates it between frame boundaries.
type RenderData struct {
	// Material is borrowed from the asset system; never freed here.
	Material *Material

	// VertexCount and IndexCount are the portions of Verts/Indices the
	// generator actually filled for drawing.
	VertexCount int
	IndexCount  int

	Verts   []*Vertex
	Indices []uint32

	PivotX, PivotY float32
	Width, Height  float32

	// UVDirty marks stale texture coordinates, VertDirty stale positions.
	// Both start true so first use always regenerates.
	UVDirty   bool
	VertDirty bool

	pool *VertexPool
}

// NewRenderData creates an empty controller drawing vertices from vp.
func NewRenderData(vp *VertexPool) *RenderData {
	return &RenderData{
		UVDirty:   true,
		VertDirty: true,
		pool:      vp,
	}
}

// Resize grows or shrinks the vertex sequence to exactly n records.
//
// Growing appends pool-default records for each new index. Shrinking
// walks from the old end down to index n, releasing each record back to
// the pool. Equal length is a no-op. Resize never touches the dirty
// flags; callers pair it with UpdateSizeAndPivot or mark flags directly.
func (d *RenderData) Resize(n int) {
	cur := len(d.Verts)
	switch {
	case n > cur:
		for i := cur; i < n; i++ {
			d.Verts = append(d.Verts, d.pool.Acquire())
		}
	case n < cur:
		for i := cur - 1; i >= n; i-- {
			d.pool.Remove(d.Verts[i])
			d.Verts[i] = nil
			d.Verts = d.Verts[:i]
		}
	}
}

// UpdateSizeAndPivot stores the element's size and pivot and marks the
// vertex buffer dirty, but only when at least one of the four values
// changed. Identical values leave both dirty flags untouched. UVDirty is
// never affected.
func (d *RenderData) UpdateSizeAndPivot(width, height, pivotX, pivotY float32) {
	if width == d.Width && height == d.Height &&
		pivotX == d.PivotX && pivotY == d.PivotY {
		return
	}
	d.Width = width
	d.Height = height
	d.PivotX = pivotX
	d.PivotY = pivotY
	d.VertDirty = true
}

// Clear resets the controller to its default state: empty sequences,
// zero pivot/size/counts, nil material, both dirty flags raised. Vertex
// records are released to the pool first so the slots stay reusable.
// Idempotent.
func (d *RenderData) Clear() {
	for i := len(d.Verts) - 1; i >= 0; i-- {
		d.pool.Remove(d.Verts[i])
		d.Verts[i] = nil
	}
	d.Verts = d.Verts[:0]
	d.Indices = d.Indices[:0]
	d.PivotX = 0
	d.PivotY = 0
	d.Width = 0
	d.Height = 0
	d.UVDirty = true
	d.VertDirty = true
	d.Material = nil
	d.VertexCount = 0
	d.IndexCount = 0
}
