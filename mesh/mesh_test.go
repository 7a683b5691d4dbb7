package mesh

import "testing"

func TestNewSizing(t *testing.T) {
	m := New(8, 12)
	if m.VertexCount() != 8 {
		t.Errorf("Expected 8 vertices, got %d", m.VertexCount())
	}
	if m.TriangleCount() != 4 {
		t.Errorf("Expected 4 triangles, got %d", m.TriangleCount())
	}
	if len(m.Positions) != 24 || len(m.Colors) != 32 || len(m.UV) != 16 {
		t.Errorf("Buffer sizes wrong: %d/%d/%d", len(m.Positions), len(m.Colors), len(m.UV))
	}
}

func TestSetVertex(t *testing.T) {
	m := New(4, 6)
	m.SetVertex(2, 1, 2, 3, [4]float32{0.1, 0.2, 0.3, 0.4}, 0.5, 0.6)

	if m.Positions[6] != 1 || m.Positions[7] != 2 || m.Positions[8] != 3 {
		t.Errorf("Position slot 2 wrong: %v", m.Positions[6:9])
	}
	if m.Colors[8] != 0.1 || m.Colors[11] != 0.4 {
		t.Errorf("Color slot 2 wrong: %v", m.Colors[8:12])
	}
	if m.UV[4] != 0.5 || m.UV[5] != 0.6 {
		t.Errorf("UV slot 2 wrong: %v", m.UV[4:6])
	}

	// Neighboring slots untouched
	if m.Positions[5] != 0 || m.Positions[9] != 0 {
		t.Error("SetVertex spilled into neighboring slots")
	}
}

func TestSetQuadIndices(t *testing.T) {
	m := New(8, 12)
	m.SetQuadIndices(6, 4)

	want := []uint32{4, 5, 6, 4, 6, 7}
	for i, idx := range want {
		if m.Indices[6+i] != idx {
			t.Errorf("Index %d: expected %d, got %d", 6+i, idx, m.Indices[6+i])
		}
	}
}

func TestClone(t *testing.T) {
	m := New(4, 6)
	m.SetVertex(0, 9, 9, 9, [4]float32{1, 1, 1, 1}, 1, 1)
	c := m.Clone()

	c.SetVertex(0, 0, 0, 0, [4]float32{}, 0, 0)
	if m.Positions[0] != 9 {
		t.Error("Clone shares backing arrays with the original")
	}
}
