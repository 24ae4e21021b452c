package asset

// PosTexVertex is a vertex with a position and a texture coordinate,
// matching the layout the UI quad shader consumes.
type PosTexVertex struct {
	Position [3]float32
	TexCoord [2]float32
}

// MeshSlice identifies the vertex range of a mesh to draw.
type MeshSlice struct {
	Start, End int
}

// Len returns the number of vertices in the slice.
func (s MeshSlice) Len() int { return s.End - s.Start }

// Mesh is a CPU-side vertex mesh.
type Mesh struct {
	vertices []PosTexVertex
}

// NewMesh creates a mesh from vertices. The slice is retained, not copied.
func NewMesh(vertices []PosTexVertex) *Mesh {
	return &Mesh{vertices: vertices}
}

// Buffer returns the vertex data, or false if the mesh carries none.
// A mesh without a buffer is skippable, not an error.
func (m *Mesh) Buffer() ([]PosTexVertex, bool) {
	if len(m.vertices) == 0 {
		return nil, false
	}
	return m.vertices, true
}

// Slice returns the full vertex range of the mesh.
func (m *Mesh) Slice() MeshSlice {
	return MeshSlice{Start: 0, End: len(m.vertices)}
}

// MeshHandle refers to a mesh in a MeshStore.
type MeshHandle = Handle[*Mesh]

// MeshStore holds meshes. The UI pipeline stores a single shared unit quad
// in it, but nothing restricts the store to one entry.
type MeshStore = Store[*Mesh]

// NewMeshStore creates an empty mesh store.
func NewMeshStore() *MeshStore {
	return NewStore[*Mesh]()
}

// UnitQuad returns the two-triangle quad spanning [0,1]×[0,1] with
// V-flipped texture coordinates. Every UI element is drawn by scaling and
// translating this mesh in the vertex shader.
func UnitQuad() *Mesh {
	return NewMesh([]PosTexVertex{
		{Position: [3]float32{0, 1, 0}, TexCoord: [2]float32{0, 0}},
		{Position: [3]float32{1, 1, 0}, TexCoord: [2]float32{1, 0}},
		{Position: [3]float32{1, 0, 0}, TexCoord: [2]float32{1, 1}},
		{Position: [3]float32{0, 1, 0}, TexCoord: [2]float32{0, 0}},
		{Position: [3]float32{1, 0, 0}, TexCoord: [2]float32{1, 1}},
		{Position: [3]float32{0, 0, 0}, TexCoord: [2]float32{0, 1}},
	})
}
