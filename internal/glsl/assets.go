package glsl

import _ "embed"

// Default shader sources, written in the ES dialect and adapted at
// load time with ConvertVertex / ConvertFragment.

//go:embed shaders/basic.vert
var DefaultVertexSource string

//go:embed shaders/chromakey.frag
var DefaultFragmentSource string
