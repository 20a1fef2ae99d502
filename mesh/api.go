// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only facade: element counts, handle validity, configuration
// getters and a Stats snapshot.
// Policy:
//   - No topology mutation here.
//   - Validity queries never panic; they answer false for foreign handles.

package mesh

import (
	"github.com/katalvlaran/surfmesh/kernel"
)

// VertexCount returns the number of live vertices.
//
// Complexity:
//   - Time O(1).
func (m *Mesh) VertexCount() int { return len(m.vertices) - m.removedVertices }

// HalfedgeCount returns the number of live halfedges (always 2*EdgeCount).
func (m *Mesh) HalfedgeCount() int { return len(m.halfedges) - 2*m.removedEdges }

// EdgeCount returns the number of live edges.
func (m *Mesh) EdgeCount() int { return len(m.halfedges)/2 - m.removedEdges }

// FaceCount returns the number of live faces.
func (m *Mesh) FaceCount() int { return len(m.faces) - m.removedFaces }

// RemovedVertexCount returns the number of removed vertices awaiting
// compaction or reuse.
func (m *Mesh) RemovedVertexCount() int { return m.removedVertices }

// RemovedEdgeCount returns the number of removed edges awaiting compaction
// or reuse.
func (m *Mesh) RemovedEdgeCount() int { return m.removedEdges }

// RemovedFaceCount returns the number of removed faces awaiting compaction
// or reuse.
func (m *Mesh) RemovedFaceCount() int { return m.removedFaces }

// IsEmpty reports whether the mesh has no live vertex.
func (m *Mesh) IsEmpty() bool { return m.VertexCount() == 0 }

// IsVertexValid reports whether v addresses a live vertex.
func (m *Mesh) IsVertexValid(v VertexHandle) bool {
	return v >= 0 && int(v) < len(m.vertices) && !m.vertices[v].removed
}

// IsHalfedgeValid reports whether h addresses a live halfedge.
func (m *Mesh) IsHalfedgeValid(h HalfedgeHandle) bool {
	return h >= 0 && int(h) < len(m.halfedges) && !m.halfedges[h].removed
}

// IsEdgeValid reports whether e addresses a live edge.
func (m *Mesh) IsEdgeValid(e EdgeHandle) bool {
	return e >= 0 && m.IsHalfedgeValid(HalfedgeHandle(2*e))
}

// IsFaceValid reports whether f addresses a live face.
func (m *Mesh) IsFaceValid(f FaceHandle) bool {
	return f >= 0 && int(f) < len(m.faces) && !m.faces[f].removed
}

// Kernel returns the arithmetic back-end chosen at construction.
func (m *Mesh) Kernel() kernel.Kernel { return m.kernel }

// MeshStats is a point-in-time snapshot of mesh bookkeeping.
type MeshStats struct {
	Vertices        int
	Edges           int
	Faces           int
	BorderEdges     int
	RemovedVertices int
	RemovedEdges    int
	RemovedFaces    int
	Recycle         bool
	Kernel          string
	HasAABBTree     bool
}

// Stats returns a snapshot of counts and configuration flags.
//
// Implementation:
//   - Stage 1: Read O(1) counters.
//   - Stage 2: Count border edges with one pass over the edge arena.
//
// Complexity:
//   - Time O(E), Space O(1).
func (m *Mesh) Stats() *MeshStats {
	return &MeshStats{
		Vertices:        m.VertexCount(),
		Edges:           m.EdgeCount(),
		Faces:           m.FaceCount(),
		BorderEdges:     m.BorderEdgeCount(),
		RemovedVertices: m.removedVertices,
		RemovedEdges:    m.removedEdges,
		RemovedFaces:    m.removedFaces,
		Recycle:         m.recycle,
		Kernel:          m.kernel.Name(),
		HasAABBTree:     m.tree != nil,
	}
}
