package game

import (
	"fmt"
	"unsafe"

	"github.com/charmbracelet/log"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"doomlike/internal/config"
	"doomlike/internal/gfx"
	"doomlike/internal/level"
	"doomlike/internal/player"
)

const basicShader = "basic"

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Renderer draws the level from the player's point of view. Every wall is
// uploaded into one shared buffer and drawn with its own call; there is no
// batching or culling.
type Renderer struct {
	shaders *ShaderManager
	program uint32

	uModel      int32
	uView       int32
	uProjection int32
	uSampler    int32

	// Walls.
	wallVAO uint32
	wallVBO uint32
	wallBuf [gfx.WallVertexCount * gfx.VertexFloats]float32

	// Floor and ceiling (no geometry yet).
	floorVAO uint32
	floorVBO uint32

	textures    []*Texture
	placeholder *Texture

	projection *gfx.Projection
	logger     *log.Logger
}

func NewRenderer(cfg config.RenderConfig, width, height int, logger *log.Logger) (*Renderer, error) {
	shaders := NewShaderManager(logger)
	if err := shaders.Load(basicShader, cfg.ShaderVert, cfg.ShaderFrag); err != nil {
		return nil, fmt.Errorf("basic program: %w", err)
	}

	r := &Renderer{
		shaders:    shaders,
		projection: gfx.NewProjection(cfg.Fov, cfg.Near, cfg.Far, width, height),
		logger:     logger,
	}
	r.program = shaders.Get(basicShader)

	gl.UseProgram(r.program)
	r.uModel = gl.GetUniformLocation(r.program, gl.Str("model\x00"))
	r.uView = gl.GetUniformLocation(r.program, gl.Str("view\x00"))
	r.uProjection = gl.GetUniformLocation(r.program, gl.Str("projection\x00"))
	r.uSampler = gl.GetUniformLocation(r.program, gl.Str("textureSampler\x00"))
	gl.Uniform1i(r.uSampler, 0)

	// Wall VAO/VBO: streaming buffer refilled for each wall.
	// Each vertex: 5 floats (x, y, z, u, v).
	gl.GenVertexArrays(1, &r.wallVAO)
	gl.GenBuffers(1, &r.wallVBO)
	gl.BindVertexArray(r.wallVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.wallVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(r.wallBuf)*4, nil, gl.STREAM_DRAW)
	// aPos (vec3)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, gfx.VertexStride, glOffset(0))
	// aTexCoord (vec2)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, gfx.VertexStride, glOffset(gfx.UVOffset))

	gl.GenVertexArrays(1, &r.floorVAO)
	gl.GenBuffers(1, &r.floorVBO)
	gl.BindVertexArray(0)

	r.placeholder = NewTexture(gfx.Checkerboard())
	for _, path := range cfg.Textures {
		r.textures = append(r.textures, LoadTexture(path, logger))
	}
	logger.Info("renderer ready", "textures", len(r.textures), "viewport", fmt.Sprintf("%dx%d", width, height))
	return r, nil
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.wallVBO, r.floorVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.wallVAO, r.floorVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, t := range r.textures {
		t.Delete()
	}
	r.textures = nil
	if r.placeholder != nil {
		r.placeholder.Delete()
	}
	r.shaders.Destroy()
}

// ResizeViewport follows a framebuffer size change.
func (r *Renderer) ResizeViewport(width, height int) {
	r.projection.Resize(width, height)
	if width > 0 && height > 0 {
		gl.Viewport(0, 0, int32(width), int32(height))
	}
}

// Projection exposes the current projection state.
func (r *Renderer) Projection() *gfx.Projection { return r.projection }

// Render draws every wall of every sector, then the floor/ceiling pass.
func (r *Renderer) Render(p *player.Player, m *level.Map) {
	gl.UseProgram(r.program)

	view := p.ViewMatrix()
	proj := r.projection.Matrix()
	gl.UniformMatrix4fv(r.uView, 1, false, &view[0])
	gl.UniformMatrix4fv(r.uProjection, 1, false, &proj[0])

	r.renderWalls(m)
	r.renderFloorAndCeiling(m)
}

func (r *Renderer) renderWalls(m *level.Map) {
	gl.BindVertexArray(r.wallVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.wallVBO)

	model := mgl32.Ident4()
	gl.UniformMatrix4fv(r.uModel, 1, false, &model[0])

	for _, s := range m.Sectors() {
		for _, w := range s.Walls {
			gfx.WallVertices(w, &r.wallBuf)
			gl.BufferData(gl.ARRAY_BUFFER, len(r.wallBuf)*4, gl.Ptr(&r.wallBuf[0]), gl.STREAM_DRAW)
			r.texture(w.Texture).Bind(0)
			gl.DrawArrays(gl.TRIANGLES, 0, gfx.WallVertexCount)
		}
	}
	gl.BindVertexArray(0)
}

// renderFloorAndCeiling binds each sector's floor texture and model
// transform. Floor geometry is not generated yet, so nothing is drawn.
func (r *Renderer) renderFloorAndCeiling(m *level.Map) {
	gl.BindVertexArray(r.floorVAO)
	for _, s := range m.Sectors() {
		r.texture(s.FloorTexture).Bind(0)
		model := mgl32.Translate3D(0, s.FloorHeight, 0)
		gl.UniformMatrix4fv(r.uModel, 1, false, &model[0])
	}
	gl.BindVertexArray(0)
}

// texture returns the texture at index i, or the checkerboard when the
// index is out of range.
func (r *Renderer) texture(i int) *Texture {
	if i < 0 || i >= len(r.textures) {
		return r.placeholder
	}
	return r.textures[i]
}
