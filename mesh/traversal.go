// SPDX-License-Identifier: MIT
//
// File: traversal.go
// Role: Circulators and local/global border queries.
// Policy:
//   - Boolean queries answer false for invalid handles instead of panicking.
//   - Circulators panic on invalid handles like the direct accessors.

package mesh

// FaceHalfedges returns the halfedges bounding f in next order, starting
// at FaceHalfedge(f).
func (m *Mesh) FaceHalfedges(f FaceHandle) []HalfedgeHandle {
	m.mustFace("FaceHalfedges", f)
	var out []HalfedgeHandle
	m.forFace(f, func(h HalfedgeHandle) bool {
		out = append(out, h)
		return true
	})
	return out
}

// FaceVertices returns the corners of f in boundary order; the first one
// is the source of FaceHalfedge(f).
func (m *Mesh) FaceVertices(f FaceHandle) []VertexHandle {
	m.mustFace("FaceVertices", f)
	var out []VertexHandle
	m.forFace(f, func(h HalfedgeHandle) bool {
		out = append(out, m.halfedges[h^1].target)
		return true
	})
	return out
}

// VertexOutgoing returns the halfedges leaving v in rotation order.
func (m *Mesh) VertexOutgoing(v VertexHandle) []HalfedgeHandle {
	m.mustVertex("VertexOutgoing", v)
	var out []HalfedgeHandle
	m.forOutgoing(v, func(h HalfedgeHandle) bool {
		out = append(out, h)
		return true
	})
	return out
}

// VertexNeighbors returns the vertices adjacent to v in rotation order.
func (m *Mesh) VertexNeighbors(v VertexHandle) []VertexHandle {
	m.mustVertex("VertexNeighbors", v)
	var out []VertexHandle
	m.forOutgoing(v, func(h HalfedgeHandle) bool {
		out = append(out, m.halfedges[h].target)
		return true
	})
	return out
}

// VertexFaces returns the faces around v in rotation order, skipping
// border gaps.
func (m *Mesh) VertexFaces(v VertexHandle) []FaceHandle {
	m.mustVertex("VertexFaces", v)
	var out []FaceHandle
	m.forOutgoing(v, func(h HalfedgeHandle) bool {
		if f := m.halfedges[h].face; f != Border {
			out = append(out, f)
		}
		return true
	})
	return out
}

// VertexDegree returns the number of edges incident to v.
//
// Complexity:
//   - Time O(deg v).
func (m *Mesh) VertexDegree(v VertexHandle) int {
	m.mustVertex("VertexDegree", v)
	n := 0
	m.forOutgoing(v, func(HalfedgeHandle) bool {
		n++
		return true
	})
	return n
}

// VertexIsIsolated reports whether v has no incident edge.
func (m *Mesh) VertexIsIsolated(v VertexHandle) bool {
	return m.IsVertexValid(v) && m.vertices[v].halfedge == NullHalfedge
}

// VertexIsBorder reports whether v lies on a border. With checkAll false it
// answers from the stored outgoing halfedge in O(1), which is a border one
// whenever any is. With checkAll true it scans the incident halfedges and
// requires every one of them to be a border halfedge. Isolated vertices
// are not border vertices.
func (m *Mesh) VertexIsBorder(v VertexHandle, checkAll bool) bool {
	if !m.IsVertexValid(v) || m.vertices[v].halfedge == NullHalfedge {
		return false
	}
	if !checkAll {
		return m.halfedges[m.vertices[v].halfedge].face == Border
	}
	all := true
	m.forOutgoing(v, func(h HalfedgeHandle) bool {
		// incoming halfedge of the same edge
		if m.halfedges[h^1].face != Border {
			all = false
			return false
		}
		return true
	})
	return all
}

// IsHalfedgeBorder reports whether h has no incident face.
func (m *Mesh) IsHalfedgeBorder(h HalfedgeHandle) bool {
	return m.IsHalfedgeValid(h) && m.halfedges[h].face == Border
}

// EdgeIsBorder reports whether either half of e is a border halfedge.
func (m *Mesh) EdgeIsBorder(e EdgeHandle) bool {
	if !m.IsEdgeValid(e) {
		return false
	}
	return m.halfedges[2*e].face == Border || m.halfedges[2*e+1].face == Border
}

// BorderEdgeCount returns the number of live edges with a border side.
//
// Complexity:
//   - Time O(E).
func (m *Mesh) BorderEdgeCount() int {
	n := 0
	for e := 0; 2*e < len(m.halfedges); e++ {
		h := &m.halfedges[2*e]
		if h.removed {
			continue
		}
		if h.face == Border || m.halfedges[2*e+1].face == Border {
			n++
		}
	}
	return n
}

// IsClosed reports whether the mesh has no border edge.
func (m *Mesh) IsClosed() bool { return m.BorderEdgeCount() == 0 }

// CheckFaceVertexCount reports whether the mesh has faces and every one of
// them has exactly n sides.
func (m *Mesh) CheckFaceVertexCount(n int) bool {
	if m.FaceCount() == 0 {
		return false
	}
	for f := range m.faces {
		if !m.faces[f].removed && m.faceDegree(FaceHandle(f)) != n {
			return false
		}
	}
	return true
}

// GetFaceVertexCount classifies the face sizes present in the mesh.
func (m *Mesh) GetFaceVertexCount() FaceVertexCount {
	tris, quads, others := 0, 0, 0
	for f := range m.faces {
		if m.faces[f].removed {
			continue
		}
		switch m.faceDegree(FaceHandle(f)) {
		case 3:
			tris++
		case 4:
			quads++
		default:
			others++
		}
	}
	switch {
	case tris == 0 && quads == 0 && others == 0:
		return FaceCountNone
	case quads == 0 && others == 0:
		return FaceCountTriangles
	case tris == 0 && others == 0:
		return FaceCountQuads
	default:
		return FaceCountMixed
	}
}
