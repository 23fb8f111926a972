package render

import (
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/gokey/chroma"
	"github.com/gokey/chroma/internal/glsl"
)

// uniformNames is every uniform the pipeline writes each frame.
// Shaders are free to omit any of them; an absent uniform resolves to
// location -1, which GL treats as a silent no-op write.
var uniformNames = []string{
	"u_video",
	"u_background",
	"u_resolution",
	"u_keyColor",
	"u_transparency",
	"u_tolerance",
	"u_highlight",
	"u_shadow",
	"u_pedestal",
	"u_spillSuppression",
	"u_contrast",
	"u_midPoint",
	"u_choke",
	"u_soften",
	"u_outputMode",
	"u_useBackground",
}

// Program owns a compiled and linked vertex+fragment shader pair and
// the resolved locations of every named uniform the pipeline writes.
type Program struct {
	handle   uint32
	uniforms map[string]int32
}

// NewProgram adapts the given ES-dialect sources to GLSL 330 core,
// compiles both stages, links them, and resolves uniform locations.
// Compiler and linker diagnostics are surfaced verbatim in
// *ShaderCompileError / *ShaderLinkError.
func NewProgram(vertexSource, fragmentSource string) (*Program, error) {
	vertex, err := compileStage(gl.VERTEX_SHADER, "vertex", glsl.ConvertVertex(vertexSource))
	if err != nil {
		return nil, err
	}
	fragment, err := compileStage(gl.FRAGMENT_SHADER, "fragment", glsl.ConvertFragment(fragmentSource))
	if err != nil {
		gl.DeleteShader(vertex)
		return nil, err
	}

	handle := gl.CreateProgram()
	gl.AttachShader(handle, vertex)
	gl.AttachShader(handle, fragment)
	gl.LinkProgram(handle)

	// The stages are owned by the program after linking.
	gl.DeleteShader(vertex)
	gl.DeleteShader(fragment)

	var status int32
	gl.GetProgramiv(handle, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		log := programInfoLog(handle)
		gl.DeleteProgram(handle)
		return nil, &ShaderLinkError{Log: log}
	}

	p := &Program{handle: handle, uniforms: make(map[string]int32, len(uniformNames))}
	gl.UseProgram(handle)
	for _, name := range uniformNames {
		p.uniforms[name] = gl.GetUniformLocation(handle, gl.Str(name+"\x00"))
	}

	chroma.Logger().Debug("shader program linked", "uniforms", len(p.uniforms))
	return p, nil
}

// Use makes the program the active one.
func (p *Program) Use() {
	gl.UseProgram(p.handle)
}

// SetParams writes the keying parameter set, the viewport resolution,
// and the sampler bindings (video on unit 0, background on unit 1).
// The program must be active.
func (p *Program) SetParams(params chroma.KeyParams, width, height int, useBackground bool) {
	gl.Uniform2f(p.uniforms["u_resolution"], float32(width), float32(height))
	gl.Uniform3f(p.uniforms["u_keyColor"],
		float32(params.KeyColor[0]), float32(params.KeyColor[1]), float32(params.KeyColor[2]))
	gl.Uniform1f(p.uniforms["u_transparency"], float32(params.Transparency))
	gl.Uniform1f(p.uniforms["u_tolerance"], float32(params.Tolerance))
	gl.Uniform1f(p.uniforms["u_highlight"], float32(params.Highlight))
	gl.Uniform1f(p.uniforms["u_shadow"], float32(params.Shadow))
	gl.Uniform1f(p.uniforms["u_pedestal"], float32(params.Pedestal))
	gl.Uniform1f(p.uniforms["u_spillSuppression"], float32(params.SpillSuppression))
	gl.Uniform1f(p.uniforms["u_contrast"], float32(params.Contrast))
	gl.Uniform1f(p.uniforms["u_midPoint"], float32(params.MidPoint))
	gl.Uniform1f(p.uniforms["u_choke"], float32(params.Choke))
	gl.Uniform1f(p.uniforms["u_soften"], float32(params.Soften))
	gl.Uniform1i(p.uniforms["u_outputMode"], int32(params.Output))

	gl.Uniform1i(p.uniforms["u_video"], 0)
	gl.Uniform1i(p.uniforms["u_background"], 1)
	var bg int32
	if useBackground {
		bg = 1
	}
	gl.Uniform1i(p.uniforms["u_useBackground"], bg)
}

// Destroy deletes the program. Idempotent.
func (p *Program) Destroy() {
	if p.handle != 0 {
		gl.DeleteProgram(p.handle)
		p.handle = 0
	}
}

func compileStage(kind uint32, stage, source string) (uint32, error) {
	shader := gl.CreateShader(kind)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen)+1)
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, &ShaderCompileError{Stage: stage, Log: strings.TrimRight(log, "\x00")}
	}
	return shader, nil
}

func programInfoLog(handle uint32) string {
	var logLen int32
	gl.GetProgramiv(handle, gl.INFO_LOG_LENGTH, &logLen)
	log := strings.Repeat("\x00", int(logLen)+1)
	gl.GetProgramInfoLog(handle, logLen, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}
