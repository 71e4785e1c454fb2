package render

// UVRect is a texture sub-rectangle in normalized coordinates.
type UVRect struct {
	U0, V0, U1, V1 float32
}

// FullUV maps the whole texture.
var FullUV = UVRect{0, 0, 1, 1}

// FillQuad regenerates d as a single quad from its stored size and pivot.
//
// The pivot is a normalized anchor: vertex positions are offset by
// -pivot*size, so a (0.5, 0.5) pivot centers the quad on the element's
// origin. Vertices are laid out bottom-left, bottom-right, top-right,
// top-left with two CCW triangles. This is the regeneration step a
// consumer runs when it finds VertDirty or UVDirty raised; clearing the
// flags stays the consumer's job.
func FillQuad(d *RenderData, uv UVRect, c Color) {
	d.Resize(4)

	left := -d.PivotX * d.Width
	bottom := -d.PivotY * d.Height
	right := left + d.Width
	top := bottom + d.Height

	set := func(v *Vertex, x, y, u, tv float32) {
		v.X, v.Y, v.Z = x, y, 0
		v.U, v.V = u, tv
		v.Color = c
	}
	set(d.Verts[0], left, bottom, uv.U0, uv.V0)
	set(d.Verts[1], right, bottom, uv.U1, uv.V0)
	set(d.Verts[2], right, top, uv.U1, uv.V1)
	set(d.Verts[3], left, top, uv.U0, uv.V1)

	d.Indices = append(d.Indices[:0], 0, 1, 2, 0, 2, 3)
	d.VertexCount = 4
	d.IndexCount = 6
}
