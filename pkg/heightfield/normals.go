package heightfield

import (
	dsmath "github.com/Faultbox/datascape/pkg/math"
)

var up = [3]float32{0, 1, 0}

// FaceNormal returns the unit geometric normal of triangle i, following its
// winding.
func (m *Mesh) FaceNormal(i int) [3]float32 {
	n := m.faceCross(i).Normalize()
	if n == (dsmath.Vec3{}) {
		return up
	}
	return n.Array()
}

// faceCross is the unnormalized face normal; its length is twice the area.
func (m *Mesh) faceCross(i int) dsmath.Vec3 {
	t := m.Triangles[i]
	p0 := dsmath.V3(m.Vertices[t[0]].Position)
	p1 := dsmath.V3(m.Vertices[t[1]].Position)
	p2 := dsmath.V3(m.Vertices[t[2]].Position)
	return p1.Sub(p0).Cross(p2.Sub(p0))
}

// computeNormals sets each vertex normal to the area-weighted average of the
// faces that share it.
func (m *Mesh) computeNormals() {
	sums := make([]dsmath.Vec3, len(m.Vertices))
	for i, t := range m.Triangles {
		n := m.faceCross(i)
		for _, idx := range t {
			sums[idx] = sums[idx].Add(n)
		}
	}

	for i := range m.Vertices {
		n := sums[i].Normalize()
		if n == (dsmath.Vec3{}) {
			m.Vertices[i].Normal = up
			continue
		}
		m.Vertices[i].Normal = n.Array()
	}
}

// HeightAt returns the surface height at lattice point (x, z).
func (m *Mesh) HeightAt(x, z int) (float32, bool) {
	if x < 0 || z < 0 || x > m.Grid.Width || z > m.Grid.Depth {
		return 0, false
	}
	return m.Vertices[z*(m.Grid.Width+1)+x].Position[1], true
}

// Indices flattens Triangles into a single index buffer.
func (m *Mesh) Indices() []uint32 {
	indices := make([]uint32, 0, 3*len(m.Triangles))
	for _, t := range m.Triangles {
		indices = append(indices, t[0], t[1], t[2])
	}
	return indices
}
