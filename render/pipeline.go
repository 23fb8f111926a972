package render

import (
	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/gokey/chroma"
	"github.com/gokey/chroma/internal/glsl"
)

// Pipeline is the GL implementation of chroma.Renderer. It owns the
// full GPU resource chain for one run: context, quad geometry, shader
// program, and texture pool, created in that order and destroyed in
// reverse.
type Pipeline struct {
	ctx      *Context
	quad     *Quad
	program  *Program
	textures *TexturePool

	hasBackground bool
	readback      []uint8
}

// Verify at compile time that Pipeline implements chroma.Renderer.
var _ chroma.Renderer = (*Pipeline)(nil)

// NewPipeline creates a pipeline for frames of the given size using
// the embedded keying shaders.
//
// The calling goroutine must be pinned with runtime.LockOSThread;
// every later call on the pipeline must come from the same thread.
func NewPipeline(width, height int) (*Pipeline, error) {
	return NewPipelineWithShaders(width, height, glsl.DefaultVertexSource, glsl.DefaultFragmentSource)
}

// NewPipelineWithShaders creates a pipeline with caller-supplied
// ES-dialect shader sources. Shaders may omit any of the keying
// uniforms; writes to omitted uniforms are no-ops.
func NewPipelineWithShaders(width, height int, vertexSource, fragmentSource string) (*Pipeline, error) {
	ctx, err := NewContext(width, height)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		ctx:      ctx,
		quad:     NewQuad(),
		textures: NewTexturePool(),
		readback: make([]uint8, width*height*4),
	}

	program, err := NewProgram(vertexSource, fragmentSource)
	if err != nil {
		p.Close()
		return nil, err
	}
	p.program = program
	return p, nil
}

// SetBackground uploads the background plate once. The plate must
// already match the frame resolution.
func (p *Pipeline) SetBackground(plate *chroma.Pixmap) error {
	if plate == nil {
		return nil
	}
	p.textures.Upload(TextureBackground, plate.Data(), plate.Width(), plate.Height())
	if err := p.checkGL("background upload"); err != nil {
		return err
	}
	p.hasBackground = true
	return nil
}

// Render produces the keyed RGBA image for one frame: clear, bind
// program and uniforms, upload the frame into the video texture, draw
// the quad, read the framebuffer back, and flip it to a top-left row
// origin. Any GL error aborts with *FrameRenderError.
func (p *Pipeline) Render(frame *chroma.Pixmap, params chroma.KeyParams) (*chroma.Pixmap, error) {
	width, height := p.ctx.Width(), p.ctx.Height()

	gl.ClearColor(0, 0, 0, 0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	p.program.Use()
	p.program.SetParams(params, width, height, p.hasBackground)

	p.textures.Upload(TextureVideo, frame.Data(), width, height)
	p.textures.BindUnit(TextureVideo, 0)
	if p.hasBackground {
		p.textures.BindUnit(TextureBackground, 1)
	}

	p.quad.Bind()
	gl.DrawArrays(gl.TRIANGLES, 0, quadVertexCount)
	p.quad.Unbind()

	if err := p.checkGL("draw"); err != nil {
		return nil, err
	}

	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(p.readback))
	if err := p.checkGL("readback"); err != nil {
		return nil, err
	}

	out := chroma.FromFrame(p.readback, width, height, 4)
	out.FlipVertical()
	return out, nil
}

// checkGL drains the GL error queue; the first error observed aborts
// the run.
func (p *Pipeline) checkGL(op string) error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		return &FrameRenderError{Op: op, Code: code}
	}
	return nil
}

// Close releases all GPU resources in reverse creation order. It is
// idempotent and safe after a partially failed NewPipeline.
func (p *Pipeline) Close() {
	if p.textures != nil {
		p.textures.Destroy()
		p.textures = nil
	}
	if p.program != nil {
		p.program.Destroy()
		p.program = nil
	}
	if p.quad != nil {
		p.quad.Destroy()
		p.quad = nil
	}
	if p.ctx != nil {
		p.ctx.Destroy()
		p.ctx = nil
	}
}
