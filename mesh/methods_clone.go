// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Whole-mesh lifecycle: Clear and deep Clone.

package mesh

// Clear drops every element, free slot, property value and the AABB tree.
// Kernel, logger and recycle mode are kept.
func (m *Mesh) Clear() {
	m.vertices = m.vertices[:0]
	m.halfedges = m.halfedges[:0]
	m.faces = m.faces[:0]
	m.removedVertices, m.removedEdges, m.removedFaces = 0, 0, 0
	m.freeVertices = m.freeVertices[:0]
	m.freeEdges = m.freeEdges[:0]
	m.freeFaces = m.freeFaces[:0]
	m.RemovePropertyMaps()
	m.tree = nil
}

// Clone returns a deep copy of the store, including removed slots, free
// lists, recycle mode, kernel and logger. Property maps and the AABB tree
// are not copied.
//
// Complexity:
//   - Time O(V + H + F), Space O(V + H + F).
func (m *Mesh) Clone() *Mesh {
	c := NewMesh(WithKernel(m.kernel), WithLogger(m.log), WithRecycleGarbage(m.recycle))
	c.vertices = append([]vertexRecord(nil), m.vertices...)
	c.halfedges = append([]halfedgeRecord(nil), m.halfedges...)
	c.faces = append([]faceRecord(nil), m.faces...)
	c.removedVertices, c.removedEdges, c.removedFaces = m.removedVertices, m.removedEdges, m.removedFaces
	c.freeVertices = append([]VertexHandle(nil), m.freeVertices...)
	c.freeEdges = append([]EdgeHandle(nil), m.freeEdges...)
	c.freeFaces = append([]FaceHandle(nil), m.freeFaces...)
	return c
}
