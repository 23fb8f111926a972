package render

import (
	"errors"
	"strings"
	"testing"
)

func TestContextCreationError(t *testing.T) {
	cause := errors.New("no display")
	err := &ContextCreationError{Stage: "create window", Err: cause}

	if !strings.Contains(err.Error(), "create window") {
		t.Errorf("Error() = %q, want the stage named", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("ContextCreationError should wrap its cause")
	}

	bare := &ContextCreationError{Stage: "glfw init"}
	if !strings.Contains(bare.Error(), "glfw init") {
		t.Errorf("Error() = %q", bare.Error())
	}
}

// The GL diagnostic must be surfaced verbatim.
func TestShaderErrorsCarryLog(t *testing.T) {
	compileLog := "0:12(3): error: `vec5' undeclared"
	cErr := &ShaderCompileError{Stage: "fragment", Log: compileLog}
	if !strings.Contains(cErr.Error(), compileLog) {
		t.Errorf("compile Error() = %q, want verbatim log", cErr.Error())
	}
	if !strings.Contains(cErr.Error(), "fragment") {
		t.Errorf("compile Error() = %q, want the stage named", cErr.Error())
	}

	linkLog := "error: unresolved symbol `keyMatte'"
	lErr := &ShaderLinkError{Log: linkLog}
	if !strings.Contains(lErr.Error(), linkLog) {
		t.Errorf("link Error() = %q, want verbatim log", lErr.Error())
	}
}

func TestFrameRenderError(t *testing.T) {
	err := &FrameRenderError{Op: "readback", Code: 0x0505}
	got := err.Error()
	if !strings.Contains(got, "readback") || !strings.Contains(got, "0x0505") {
		t.Errorf("Error() = %q", got)
	}
}
