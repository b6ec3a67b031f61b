// Package renderer provides OpenGL rendering functionality.
package renderer

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/globe/internal/engine/shader"
	"github.com/Faultbox/globe/internal/logger"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	Background [4]float32
}

// Renderer draws ranges of one shared vertex buffer holding all positions
// followed by all colours, four float32 values per vertex.
type Renderer struct {
	config Config
	log    *zap.Logger

	program uint32
	ctmLoc  int32

	vao      uint32
	vbo      uint32
	vertices int
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		log:    logger.Named("renderer"),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	bg := cfg.Background
	gl.ClearColor(bg[0], bg[1], bg[2], bg[3])
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	var err error
	r.program, err = shader.CompileProgram(shader.GlobeVertex, shader.GlobeFragment)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}

	r.ctmLoc, err = shader.Uniform(r.program, "ctm")
	if err != nil {
		r.Close()
		return nil, err
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)

	r.log.Debug("shader program created", zap.Uint32("program", r.program))
	return r, nil
}

// Upload stores packed positions and colours in the vertex buffer,
// replacing what was there.
func (r *Renderer) Upload(positions, colors []float32) error {
	if len(positions) != len(colors) {
		return fmt.Errorf("upload: %d position values but %d colour values", len(positions), len(colors))
	}
	if len(positions) == 0 || len(positions)%4 != 0 {
		return errors.New("upload: positions must hold whole 4-component vertices")
	}

	posAttr, err := shader.Attrib(r.program, "vPosition")
	if err != nil {
		return err
	}
	colAttr, err := shader.Attrib(r.program, "vColor")
	if err != nil {
		return err
	}

	size := 4 * len(positions)

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, 2*size, nil, gl.STATIC_DRAW)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, gl.Ptr(positions))
	gl.BufferSubData(gl.ARRAY_BUFFER, size, size, gl.Ptr(colors))

	gl.EnableVertexAttribArray(posAttr)
	gl.VertexAttribPointerWithOffset(posAttr, 4, gl.FLOAT, false, 0, 0)
	gl.EnableVertexAttribArray(colAttr)
	gl.VertexAttribPointerWithOffset(colAttr, 4, gl.FLOAT, false, 0, uintptr(size))

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	r.vertices = len(positions) / 4
	r.log.Debug("vertex buffer uploaded",
		zap.Int("vertices", r.vertices),
		zap.Int("bytes", 2*size),
	)
	return nil
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Draw clears the frame and draws count vertices starting at first, each
// transformed by the packed column-major matrix ctm.
func (r *Renderer) Draw(ctm []float32, first, count int) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if len(ctm) != 16 || first < 0 || count <= 0 || first+count > r.vertices {
		r.log.Warn("skipping draw",
			zap.Int("ctm", len(ctm)),
			zap.Int("first", first),
			zap.Int("count", count),
			zap.Int("vertices", r.vertices),
		)
		return
	}

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.ctmLoc, 1, false, &ctm[0])
	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.TRIANGLES, int32(first), int32(count))
	gl.BindVertexArray(0)
}

// ReadPixels returns the current framebuffer as tightly packed RGBA rows,
// bottom row first.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	width, height := r.config.Width, r.config.Height
	pixels := make([]byte, width*height*4)
	if len(pixels) == 0 {
		return pixels, width, height
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, width, height
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Debug("closing renderer")
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}
