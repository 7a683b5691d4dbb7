// Package mesh holds GPU-consumable geometry buffers and the asset store
// contract the console backends publish them through.
package mesh

// Mesh is a triangle mesh in flat array form, matching what rendering
// engines upload as vertex/index buffers: Positions has 3 floats per
// vertex (x,y,z), Colors 4 floats per vertex (RGBA), UV 2 floats per
// vertex, Indices 3 uint32 per triangle.
type Mesh struct {
	Positions []float32
	Colors    []float32
	UV        []float32
	Indices   []uint32
}

// New allocates a mesh sized for a fixed vertex and index count.
// Console backends size once at construction and patch in place.
func New(vertexCount, indexCount int) *Mesh {
	return &Mesh{
		Positions: make([]float32, vertexCount*3),
		Colors:    make([]float32, vertexCount*4),
		UV:        make([]float32, vertexCount*2),
		Indices:   make([]uint32, indexCount),
	}
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// SetVertex writes position, color and texture coordinates for one vertex slot.
func (m *Mesh) SetVertex(i int, x, y, z float32, color [4]float32, u, v float32) {
	p := i * 3
	m.Positions[p] = x
	m.Positions[p+1] = y
	m.Positions[p+2] = z

	c := i * 4
	m.Colors[c] = color[0]
	m.Colors[c+1] = color[1]
	m.Colors[c+2] = color[2]
	m.Colors[c+3] = color[3]

	t := i * 2
	m.UV[t] = u
	m.UV[t+1] = v
}

// SetQuadIndices writes the two triangles of a quad whose four vertices
// start at base, into index slots i..i+5. Winding is counter-clockwise
// for vertices ordered bottom-left, bottom-right, top-right, top-left.
func (m *Mesh) SetQuadIndices(i int, base uint32) {
	m.Indices[i] = base
	m.Indices[i+1] = base + 1
	m.Indices[i+2] = base + 2
	m.Indices[i+3] = base
	m.Indices[i+4] = base + 2
	m.Indices[i+5] = base + 3
}

// Clone returns a deep copy. Used by tests comparing incremental patching
// against full rebuilds.
func (m *Mesh) Clone() *Mesh {
	out := New(m.VertexCount(), len(m.Indices))
	copy(out.Positions, m.Positions)
	copy(out.Colors, m.Colors)
	copy(out.UV, m.UV)
	copy(out.Indices, m.Indices)
	return out
}
