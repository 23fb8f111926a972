// Package glsl adapts GLSL ES shader sources to the GLSL 330 core
// dialect the rendering context compiles. The adaptation is a pure
// text transform performed before compilation; the shader math itself
// passes through untouched.
package glsl

import (
	"slices"
	"strings"
)

const versionHeader = "#version 330 core\n"

// ConvertVertex rewrites an ES-dialect vertex shader for GLSL 330
// core: attribute becomes in, varying becomes out, and the version
// directive is prepended.
func ConvertVertex(src string) string {
	src = strings.ReplaceAll(src, "attribute", "in")
	src = strings.ReplaceAll(src, "varying", "out")
	return versionHeader + src
}

// ConvertFragment rewrites an ES-dialect fragment shader for GLSL 330
// core: varying becomes in, texture2D becomes texture, gl_FragColor
// becomes fragColor. If the source declares no fragColor output, one
// is inserted after the last precision or uniform declaration.
func ConvertFragment(src string) string {
	src = strings.ReplaceAll(src, "varying", "in")
	src = strings.ReplaceAll(src, "texture2D", "texture")
	src = strings.ReplaceAll(src, "gl_FragColor", "fragColor")

	if !strings.Contains(src, "out vec4 fragColor") {
		lines := strings.Split(src, "\n")
		idx := 0
		for i, line := range lines {
			t := strings.TrimSpace(line)
			if strings.HasPrefix(t, "precision") || strings.HasPrefix(t, "uniform") {
				idx = i + 1
			}
		}
		lines = slices.Insert(lines, idx, "out vec4 fragColor;")
		src = strings.Join(lines, "\n")
	}

	return versionHeader + src
}
