package render

import "fmt"

// ContextCreationError reports that the windowing or GPU subsystem
// could not produce a context meeting the minimum capability profile
// (GL 3.3 core, forward compatible). It aborts the run before any
// frame work begins.
type ContextCreationError struct {
	// Stage names the failed setup step (glfw init, window, gl load).
	Stage string

	// Err is the underlying subsystem error, if any.
	Err error
}

func (e *ContextCreationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("render: context creation failed (%s): %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("render: context creation failed (%s)", e.Stage)
}

func (e *ContextCreationError) Unwrap() error { return e.Err }

// ShaderCompileError reports a failed shader stage compilation.
// Log carries the GL compiler diagnostic verbatim.
type ShaderCompileError struct {
	Stage string // "vertex" or "fragment"
	Log   string
}

func (e *ShaderCompileError) Error() string {
	return fmt.Sprintf("render: %s shader compilation failed: %s", e.Stage, e.Log)
}

// ShaderLinkError reports a failed program link. Log carries the GL
// linker diagnostic verbatim.
type ShaderLinkError struct {
	Log string
}

func (e *ShaderLinkError) Error() string {
	return fmt.Sprintf("render: program link failed: %s", e.Log)
}

// FrameRenderError reports a GPU-level failure while rendering one
// frame. It is unrecoverable for the run: a torn frame cannot be
// distinguished from a valid one once written to the output stream.
type FrameRenderError struct {
	// Op names the pipeline step that observed the error.
	Op string

	// Code is the raw GL error code.
	Code uint32
}

func (e *FrameRenderError) Error() string {
	return fmt.Sprintf("render: %s failed: GL error 0x%04x", e.Op, e.Code)
}
