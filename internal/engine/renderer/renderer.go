// Package renderer provides OpenGL rendering functionality.
package renderer

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/flycubes/internal/engine/shader"
	"github.com/Faultbox/flycubes/internal/engine/texture"
	"github.com/Faultbox/flycubes/internal/logger"
	"github.com/Faultbox/flycubes/pkg/math"
)

// TextureSource is a texture file bound to the unit of its position in Config.Textures.
type TextureSource struct {
	Path  string
	FlipY bool
}

// Config holds renderer configuration.
type Config struct {
	Width          int
	Height         int
	VertexShader   string // GLSL source
	FragmentShader string // GLSL source
	Textures       []TextureSource
}

// Renderer draws instances of the textured cube with OpenGL.
type Renderer struct {
	config Config

	program uint32

	modelLoc      int32
	viewLoc       int32
	projectionLoc int32

	vao uint32
	vbo uint32
	ebo uint32

	// textures[i] is bound to texture unit i; 0 means the unit stays empty.
	textures []uint32

	indexCount int32
}

// New creates a renderer. The OpenGL context must be current.
// Shader and texture failures are logged and rendering continues degraded;
// only a failure to initialize OpenGL itself is returned.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config:        cfg,
		modelLoc:      -1,
		viewLoc:       -1,
		projectionLoc: -1,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0.2, 0.3, 0.3, 1.0)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	program, err := shader.CompileProgram(cfg.VertexShader, cfg.FragmentShader)
	if err != nil {
		stage := "unknown"
		var ce *shader.CompileError
		if errors.As(err, &ce) {
			stage = ce.Stage
		}
		logger.Error("shader program failed, drawing will be empty",
			zap.String("stage", stage),
			zap.Error(err),
		)
	}
	r.program = program
	r.modelLoc = shader.GetUniform(program, "model")
	r.viewLoc = shader.GetUniform(program, "view")
	r.projectionLoc = shader.GetUniform(program, "projection")

	r.createMesh()
	r.loadTextures()

	return r, nil
}

// IndexCount returns the number of indices of the cube mesh.
func (r *Renderer) IndexCount() int32 {
	return r.indexCount
}

// Close deletes all GPU objects owned by the renderer.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
	for i := range r.textures {
		if r.textures[i] != 0 {
			gl.DeleteTextures(1, &r.textures[i])
		}
	}
	r.textures = nil
}

// Resize handles framebuffer resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// BeginFrame clears the framebuffer and binds program, textures and mesh.
func (r *Renderer) BeginFrame() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	for unit, tex := range r.textures {
		if tex != 0 {
			r.BindTexture(uint32(unit), tex)
		}
	}

	gl.UseProgram(r.program)
	gl.BindVertexArray(r.vao)
}

// EndFrame unbinds the mesh.
func (r *Renderer) EndFrame() {
	gl.BindVertexArray(0)
}

// BindTexture binds a 2D texture to a texture unit.
func (r *Renderer) BindTexture(unit, handle uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, handle)
}

// SetProjection uploads the projection matrix.
func (r *Renderer) SetProjection(m math.Mat4) { r.SetUniformMatrix(r.projectionLoc, m) }

// SetView uploads the view matrix.
func (r *Renderer) SetView(m math.Mat4) { r.SetUniformMatrix(r.viewLoc, m) }

// SetModel uploads the model matrix for the next draw.
func (r *Renderer) SetModel(m math.Mat4) { r.SetUniformMatrix(r.modelLoc, m) }

// SetUniformMatrix uploads a column-major matrix. Location -1 is ignored by GL.
func (r *Renderer) SetUniformMatrix(location int32, m math.Mat4) {
	gl.UniformMatrix4fv(location, 1, false, m.Ptr())
}

// DrawIndexedTriangles draws count indices of the bound mesh.
func (r *Renderer) DrawIndexedTriangles(count int32) {
	gl.DrawElements(gl.TRIANGLES, count, gl.UNSIGNED_INT, nil)
}

// createMesh uploads the cube geometry.
func (r *Renderer) createMesh() {
	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(cubeVertices)*4, unsafe.Pointer(&cubeVertices[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(cubeIndices)*4, unsafe.Pointer(&cubeIndices[0]), gl.STATIC_DRAW)

	stride := int32(floatsPerVertex * 4)
	gl.VertexAttribPointer(attribPosition, positionElements, gl.FLOAT, false, stride, nil)
	gl.EnableVertexAttribArray(attribPosition)
	gl.VertexAttribPointer(attribTexCoord, texCoordElements, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(positionElements*4)))
	gl.EnableVertexAttribArray(attribTexCoord)

	// The element buffer binding is VAO state and must stay bound.
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	r.indexCount = int32(len(cubeIndices))
	logger.Debug("cube mesh created",
		zap.Uint32("vao", r.vao),
		zap.Int32("indices", r.indexCount),
	)
}

// loadTextures uploads each configured texture to its unit and points the
// sampler uniform texN at it. Missing or corrupt files leave the unit empty.
func (r *Renderer) loadTextures() {
	r.textures = make([]uint32, len(r.config.Textures))
	gl.UseProgram(r.program)

	for unit, src := range r.config.Textures {
		img, err := texture.Load(src.Path, texture.Options{FlipY: src.FlipY})
		if err != nil {
			logger.Error("texture could not be loaded", zap.Int("unit", unit), zap.Error(err))
			continue
		}
		r.textures[unit] = upload(img)

		loc := shader.GetUniform(r.program, fmt.Sprintf("tex%d", unit))
		gl.Uniform1i(loc, int32(unit))

		logger.Debug("texture loaded",
			zap.String("path", src.Path),
			zap.Int("unit", unit),
			zap.Int("width", img.Width),
			zap.Int("height", img.Height),
			zap.Int("channels", img.Channels),
		)
	}
}

func upload(img *texture.Image) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	format := uint32(gl.RGBA)
	if img.Channels == 3 {
		format = gl.RGB
	}
	// RGB rows are not 4-byte aligned in general.
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, int32(format), int32(img.Width), int32(img.Height),
		0, format, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pixels[0]))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}
