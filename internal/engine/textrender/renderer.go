// Package textrender uploads tesselated text meshes to OpenGL and draws them.
package textrender

import (
	"fmt"
	"image"
	"slices"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/textmesh/internal/engine/shader"
	"github.com/Faultbox/textmesh/pkg/math"
	"github.com/Faultbox/textmesh/pkg/text"
)

const vertexStride = text.VertexFloats * 4

// gpuMesh holds the buffers for one style.
type gpuMesh struct {
	vao, vbo, ebo uint32
	count         int32
}

// Renderer draws a single text object, one draw call per non-empty style.
type Renderer struct {
	log *zap.Logger

	screenWidth  int
	screenHeight int

	programs map[text.AtlasType]uint32
	textures map[*text.FontData]uint32

	batches []Batch
	meshes  []gpuMesh
	styles  []text.FontStyle
}

// New creates a renderer. A GL context must be current.
func New(log *zap.Logger, width, height int) *Renderer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Renderer{
		log:          log,
		screenWidth:  width,
		screenHeight: height,
		programs:     make(map[text.AtlasType]uint32),
		textures:     make(map[*text.FontData]uint32),
	}
}

// Resize updates the viewport dimensions.
func (r *Renderer) Resize(width, height int) {
	r.screenWidth = width
	r.screenHeight = height
}

// AddFont uploads the atlas image of a font and compiles the program for
// its atlas type if needed.
func (r *Renderer) AddFont(data *text.FontData, img image.Image) error {
	if data == nil || img == nil {
		return fmt.Errorf("add font: missing data or image")
	}
	if _, ok := r.textures[data]; ok {
		return nil
	}

	if _, ok := r.programs[data.Atlas.Type]; !ok {
		program, err := shader.CompileTextProgram(data.Atlas.Type)
		if err != nil {
			return fmt.Errorf("add font: %w", err)
		}
		r.programs[data.Atlas.Type] = program
		r.log.Debug("compiled text program", zap.Stringer("atlas", data.Atlas.Type))
	}

	b := img.Bounds()
	r.textures[data] = uploadAtlas(img)
	r.log.Debug("uploaded atlas",
		zap.Stringer("atlas", data.Atlas.Type),
		zap.Int("width", b.Dx()),
		zap.Int("height", b.Dy()),
	)
	return nil
}

// Sync re-tesselates obj if it or the styles changed since the last call
// and uploads the result. It reports whether anything was uploaded.
func (r *Renderer) Sync(obj *text.TextObject, styles []text.FontStyle) bool {
	var batches []Batch
	if slices.Equal(styles, r.styles) {
		var changed bool
		if batches, changed = Prepare(obj, styles, r.batches); !changed {
			return false
		}
	} else {
		batches = Rebuild(obj, styles, r.batches)
		r.styles = slices.Clone(styles)
	}
	r.batches = batches

	for len(r.meshes) < len(batches) {
		r.meshes = append(r.meshes, newGPUMesh())
	}
	for i, b := range batches {
		r.meshes[i].upload(b)
	}
	for i := len(batches); i < len(r.meshes); i++ {
		r.meshes[i].count = 0
	}

	r.log.Debug("text uploaded", zap.Int("meshes", len(batches)))
	return true
}

// Batches returns the meshes uploaded by the last Sync.
func (r *Renderer) Batches() []Batch {
	return r.batches
}

// Draw renders the last synced meshes with the given styles.
func (r *Renderer) Draw(styles []text.FontStyle) {
	var prevBlend, prevDepth, prevCull int32
	gl.GetIntegerv(gl.BLEND, &prevBlend)
	gl.GetIntegerv(gl.DEPTH_TEST, &prevDepth)
	gl.GetIntegerv(gl.CULL_FACE, &prevCull)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	proj := math.ScreenOrtho(float32(r.screenWidth), float32(r.screenHeight))
	gl.ActiveTexture(gl.TEXTURE0)

	for i, b := range r.batches {
		m := r.meshes[i]
		if m.count == 0 || b.Style >= len(styles) {
			continue
		}
		style := styles[b.Style]
		if style.Font == nil {
			continue
		}
		program, ok := r.programs[style.Font.Atlas.Type]
		tex, texOK := r.textures[style.Font]
		if !ok || !texOK {
			continue
		}

		gl.UseProgram(program)
		gl.UniformMatrix4fv(shader.Uniform(program, "uProjection"), 1, false, proj.Ptr())
		gl.Uniform1i(shader.Uniform(program, "uAtlas"), 0)
		gl.Uniform1f(shader.Uniform(program, "uScreenPxRange"), shader.ScreenPxRange(style.Font.Atlas, style.Size))

		gl.BindTexture(gl.TEXTURE_2D, tex)
		gl.BindVertexArray(m.vao)
		gl.DrawElementsWithOffset(gl.TRIANGLES, m.count, gl.UNSIGNED_INT, 0)
	}

	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.UseProgram(0)

	if prevBlend == gl.FALSE {
		gl.Disable(gl.BLEND)
	}
	if prevDepth == gl.TRUE {
		gl.Enable(gl.DEPTH_TEST)
	}
	if prevCull == gl.TRUE {
		gl.Enable(gl.CULL_FACE)
	}
}

// Close releases GPU resources.
func (r *Renderer) Close() {
	for i := range r.meshes {
		r.meshes[i].delete()
	}
	r.meshes = nil
	for _, tex := range r.textures {
		gl.DeleteTextures(1, &tex)
	}
	clear(r.textures)
	for _, program := range r.programs {
		gl.DeleteProgram(program)
	}
	clear(r.programs)
}

func newGPUMesh() gpuMesh {
	var m gpuMesh
	gl.GenVertexArrays(1, &m.vao)
	gl.GenBuffers(1, &m.vbo)
	gl.GenBuffers(1, &m.ebo)

	gl.BindVertexArray(m.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)

	attrib := func(index uint32, size int32, offset uintptr) {
		gl.EnableVertexAttribArray(index)
		gl.VertexAttribPointerWithOffset(index, size, gl.FLOAT, false, vertexStride, offset*4)
	}
	attrib(shader.AttribPosition, 2, 0)
	attrib(shader.AttribColor, 4, 2)
	attrib(shader.AttribAtlasCoords, 2, 6)
	attrib(shader.AttribGlyphCoords, 2, 8)
	attrib(shader.AttribBoundsCoords, 2, 10)

	gl.BindVertexArray(0)
	return m
}

func (m *gpuMesh) upload(b Batch) {
	m.count = int32(len(b.Indices))
	if m.count == 0 {
		return
	}
	gl.BindVertexArray(m.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(b.Vertices)*4, unsafe.Pointer(&b.Vertices[0]), gl.DYNAMIC_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(b.Indices)*4, unsafe.Pointer(&b.Indices[0]), gl.DYNAMIC_DRAW)
	gl.BindVertexArray(0)
}

func (m *gpuMesh) delete() {
	gl.DeleteVertexArrays(1, &m.vao)
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteBuffers(1, &m.ebo)
}
