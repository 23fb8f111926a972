package render

import "github.com/go-gl/gl/v3.3-core/gl"

// quadVertices is a full-screen quad as two triangles, interleaved
// position (2 floats) and texture coordinate (2 floats) per vertex.
// Texture V is inverted so that, combined with the vertical flip of
// the readback, the output matches the source frame's top-left origin.
var quadVertices = []float32{
	//  position    texCoord
	-1.0, -1.0, 0.0, 1.0,
	1.0, -1.0, 1.0, 1.0,
	-1.0, 1.0, 0.0, 0.0,

	-1.0, 1.0, 0.0, 0.0,
	1.0, -1.0, 1.0, 1.0,
	1.0, 1.0, 1.0, 0.0,
}

// quadVertexCount is the number of vertices drawn per frame.
const quadVertexCount = 6

// Quad owns the static full-screen geometry. Built once per run and
// bound, not rebuilt, every frame.
type Quad struct {
	vao uint32
	vbo uint32
}

// NewQuad uploads the quad geometry and configures the vertex layout:
// attribute 0 = position, attribute 1 = texture coordinate.
func NewQuad() *Quad {
	q := &Quad{}
	gl.GenVertexArrays(1, &q.vao)
	gl.GenBuffers(1, &q.vbo)

	gl.BindVertexArray(q.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, q.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)

	stride := int32(4 * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, 8)

	gl.BindVertexArray(0)
	return q
}

// Bind makes the quad's vertex array active.
func (q *Quad) Bind() {
	gl.BindVertexArray(q.vao)
}

// Unbind clears the vertex array binding.
func (q *Quad) Unbind() {
	gl.BindVertexArray(0)
}

// Destroy releases the vertex array and buffer. Idempotent.
func (q *Quad) Destroy() {
	if q.vao != 0 {
		gl.DeleteVertexArrays(1, &q.vao)
		q.vao = 0
	}
	if q.vbo != 0 {
		gl.DeleteBuffers(1, &q.vbo)
		q.vbo = 0
	}
}
