package ui2d

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/uiforge/internal/engine/render"
)

// Vertex format: pos(3) + uv(2) + color(4) interleaved floats.
const floatsPerVertex = 9

// Buffer mirrors one RenderData in GL memory: a VAO/VBO/EBO triple that
// is re-uploaded only when the geometry's dirty flags say so.
type Buffer struct {
	vao, vbo, ebo uint32
	indexCount    int32

	// scratch holds the interleaved upload image between frames so a
	// re-upload does not allocate.
	scratch []float32
}

// NewBuffer creates the GL objects and sets up the attribute layout.
// Requires a current GL context.
func NewBuffer() *Buffer {
	b := &Buffer{}

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.GenBuffers(1, &b.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)

	stride := int32(floatsPerVertex * 4)

	// Position attribute (location = 0): 3 floats
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)

	// TexCoord attribute (location = 1): 2 floats
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)

	// Color attribute (location = 2): 4 floats
	gl.VertexAttribPointerWithOffset(2, 4, gl.FLOAT, false, stride, 5*4)
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	return b
}

// Sync re-uploads the buffer if either dirty flag is raised, then clears
// both flags. The interleaved format means a UV-only change still
// rewrites the whole vertex image, so one upload covers both flags.
//
// Callers regenerate the geometry (render.FillQuad or their own filler)
// before Sync; Sync only moves VertexCount/IndexCount worth of data to
// the GPU.
func (b *Buffer) Sync(d *render.RenderData) {
	if !d.VertDirty && !d.UVDirty {
		return
	}

	b.scratch = b.scratch[:0]
	for _, v := range d.Verts[:d.VertexCount] {
		b.scratch = append(b.scratch,
			v.X, v.Y, v.Z,
			v.U, v.V,
			v.Color.R, v.Color.G, v.Color.B, v.Color.A,
		)
	}

	gl.BindVertexArray(b.vao)
	if len(b.scratch) > 0 {
		gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
		gl.BufferData(gl.ARRAY_BUFFER, len(b.scratch)*4, unsafe.Pointer(&b.scratch[0]), gl.STREAM_DRAW)
	}
	if d.IndexCount > 0 {
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, d.IndexCount*4, unsafe.Pointer(&d.Indices[0]), gl.STREAM_DRAW)
	}
	gl.BindVertexArray(0)

	b.indexCount = int32(d.IndexCount)
	d.VertDirty = false
	d.UVDirty = false
}

// Draw issues the element's triangles. Assumes the renderer bound the
// program and texture.
func (b *Buffer) Draw() {
	if b.indexCount == 0 {
		return
	}
	gl.BindVertexArray(b.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, b.indexCount, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

// Close releases the GL objects.
func (b *Buffer) Close() {
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
	}
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
	}
	if b.ebo != 0 {
		gl.DeleteBuffers(1, &b.ebo)
	}
}
