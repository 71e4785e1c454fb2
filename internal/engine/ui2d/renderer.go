// Package ui2d renders pooled UI geometry with OpenGL. It is the
// consumer side of the render package's dirty-flag protocol: each frame
// it syncs stale element buffers to the GPU and draws them with an
// orthographic projection.
package ui2d

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/uiforge/internal/engine/render"
	"github.com/Faultbox/uiforge/internal/engine/shader"
)

// Renderer draws RenderData elements in screen space.
type Renderer struct {
	screenWidth  int
	screenHeight int

	program uint32
	projLoc int32
	texLoc  int32

	// 1x1 white fallback so untextured materials share the textured
	// shader path.
	whiteTex uint32

	// Saved GL state between Begin/End
	prevBlend int32
	prevDepth int32
	prevCull  int32
}

// New creates a renderer for the given screen size. Requires a current
// GL context.
func New(width, height int) (*Renderer, error) {
	r := &Renderer{
		screenWidth:  width,
		screenHeight: height,
	}

	var err error
	r.program, err = shader.CompileProgram(vertexShaderSrc, fragmentShaderSrc)
	if err != nil {
		return nil, fmt.Errorf("create ui shader: %w", err)
	}
	r.projLoc = shader.Uniform(r.program, "uProjection")
	r.texLoc = shader.Uniform(r.program, "uTexture")

	r.whiteTex = createWhiteTexture()

	return r, nil
}

// Resize updates the screen dimensions.
func (r *Renderer) Resize(width, height int) {
	r.screenWidth = width
	r.screenHeight = height
}

// Begin sets up GL state for 2D rendering and binds the UI program.
func (r *Renderer) Begin() {
	gl.GetIntegerv(gl.BLEND, &r.prevBlend)
	gl.GetIntegerv(gl.DEPTH_TEST, &r.prevDepth)
	gl.GetIntegerv(gl.CULL_FACE, &r.prevCull)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	gl.UseProgram(r.program)
	proj := orthoMatrix(0, float32(r.screenWidth), float32(r.screenHeight), 0, -1, 1)
	gl.UniformMatrix4fv(r.projLoc, 1, false, &proj[0])
	gl.Uniform1i(r.texLoc, 0)
	gl.ActiveTexture(gl.TEXTURE0)
}

// Draw syncs the element's buffer (clearing its dirty flags) and draws
// it with its material's texture, or the white fallback.
func (r *Renderer) Draw(d *render.RenderData, b *Buffer) {
	tex := r.whiteTex
	if d.Material != nil && d.Material.Texture != 0 {
		tex = d.Material.Texture
	}
	gl.BindTexture(gl.TEXTURE_2D, tex)

	b.Sync(d)
	b.Draw()
}

// End restores the GL state saved in Begin.
func (r *Renderer) End() {
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.UseProgram(0)

	if r.prevBlend == gl.FALSE {
		gl.Disable(gl.BLEND)
	}
	if r.prevDepth == gl.TRUE {
		gl.Enable(gl.DEPTH_TEST)
	}
	if r.prevCull == gl.TRUE {
		gl.Enable(gl.CULL_FACE)
	}
}

// Close releases renderer resources.
func (r *Renderer) Close() {
	if r.whiteTex != 0 {
		gl.DeleteTextures(1, &r.whiteTex)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

func createWhiteTexture() uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	pixel := [4]uint8{255, 255, 255, 255}
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, 1, 1, 0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixel[0]))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}

// orthoMatrix creates an orthographic projection matrix.
func orthoMatrix(left, right, bottom, top, near, far float32) [16]float32 {
	return [16]float32{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, -2 / (far - near), 0,
		-(right + left) / (right - left), -(top + bottom) / (top - bottom), -(far + near) / (far - near), 1,
	}
}

const vertexShaderSrc = `
	#version 410 core

	layout (location = 0) in vec3 aPos;
	layout (location = 1) in vec2 aTexCoord;
	layout (location = 2) in vec4 aColor;

	uniform mat4 uProjection;

	out vec2 vTexCoord;
	out vec4 vColor;

	void main() {
		gl_Position = uProjection * vec4(aPos, 1.0);
		vTexCoord = aTexCoord;
		vColor = aColor;
	}
`

const fragmentShaderSrc = `
	#version 410 core

	uniform sampler2D uTexture;

	in vec2 vTexCoord;
	in vec4 vColor;
	out vec4 FragColor;

	void main() {
		FragColor = texture(uTexture, vTexCoord) * vColor;
	}
`
