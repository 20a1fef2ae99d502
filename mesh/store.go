// SPDX-License-Identifier: MIT
//
// File: store.go
// Role: Connectivity store. Slot allocation (append or recycle), raw link
// helpers and the panicking element accessors.
// Policy:
//   - Accessors on invalid handles panic with an error wrapping
//     ErrInvalidHandle; that is a programmer error.
//   - Internal helpers assume validated handles and never check.

package mesh

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

func invalid(op, kind string, h int) error {
	return fmt.Errorf("%s: %s %d: %w", op, kind, h, ErrInvalidHandle)
}

func (m *Mesh) mustVertex(op string, v VertexHandle) {
	if !m.IsVertexValid(v) {
		panic(invalid(op, "vertex", int(v)))
	}
}

func (m *Mesh) mustHalfedge(op string, h HalfedgeHandle) {
	if !m.IsHalfedgeValid(h) {
		panic(invalid(op, "halfedge", int(h)))
	}
}

func (m *Mesh) mustEdge(op string, e EdgeHandle) {
	if !m.IsEdgeValid(e) {
		panic(invalid(op, "edge", int(e)))
	}
}

func (m *Mesh) mustFace(op string, f FaceHandle) {
	if !m.IsFaceValid(f) {
		panic(invalid(op, "face", int(f)))
	}
}

// newVertex allocates a vertex slot, reusing a freed one in recycle mode.
func (m *Mesh) newVertex(p r3.Vec) VertexHandle {
	rec := vertexRecord{point: p, halfedge: NullHalfedge}
	if m.recycle && len(m.freeVertices) > 0 {
		v := m.freeVertices[len(m.freeVertices)-1]
		m.freeVertices = m.freeVertices[:len(m.freeVertices)-1]
		m.vertices[v] = rec
		m.removedVertices--
		m.vertexNormals.Unset(int(v))
		return v
	}
	m.vertices = append(m.vertices, rec)
	return VertexHandle(len(m.vertices) - 1)
}

// newEdge allocates an unlinked halfedge pair and returns the v0→v1 half.
func (m *Mesh) newEdge(v0, v1 VertexHandle) HalfedgeHandle {
	h0 := halfedgeRecord{target: v1, face: Border, next: NullHalfedge, prev: NullHalfedge}
	h1 := halfedgeRecord{target: v0, face: Border, next: NullHalfedge, prev: NullHalfedge}
	if m.recycle && len(m.freeEdges) > 0 {
		e := m.freeEdges[len(m.freeEdges)-1]
		m.freeEdges = m.freeEdges[:len(m.freeEdges)-1]
		m.halfedges[2*e] = h0
		m.halfedges[2*e+1] = h1
		m.removedEdges--
		return HalfedgeHandle(2 * e)
	}
	m.halfedges = append(m.halfedges, h0, h1)
	return HalfedgeHandle(len(m.halfedges) - 2)
}

func (m *Mesh) newFace(h HalfedgeHandle) FaceHandle {
	rec := faceRecord{halfedge: h}
	if m.recycle && len(m.freeFaces) > 0 {
		f := m.freeFaces[len(m.freeFaces)-1]
		m.freeFaces = m.freeFaces[:len(m.freeFaces)-1]
		m.faces[f] = rec
		m.removedFaces--
		m.faceNormals.Unset(int(f))
		return f
	}
	m.faces = append(m.faces, rec)
	return FaceHandle(len(m.faces) - 1)
}

func (m *Mesh) dropVertex(v VertexHandle) {
	m.vertices[v].removed = true
	m.vertices[v].halfedge = NullHalfedge
	m.removedVertices++
	m.freeVertices = append(m.freeVertices, v)
	m.vertexNormals.Unset(int(v))
}

func (m *Mesh) dropEdge(e EdgeHandle) {
	m.halfedges[2*e].removed = true
	m.halfedges[2*e+1].removed = true
	m.removedEdges++
	m.freeEdges = append(m.freeEdges, e)
}

func (m *Mesh) dropFace(f FaceHandle) {
	m.faces[f].removed = true
	m.removedFaces++
	m.freeFaces = append(m.freeFaces, f)
	m.faceNormals.Unset(int(f))
}

// setNext links a→b in both directions.
func (m *Mesh) setNext(a, b HalfedgeHandle) {
	m.halfedges[a].next = b
	m.halfedges[b].prev = a
}

// forOutgoing visits the outgoing halfedges of v in rotation order until fn
// returns false. Isolated vertices yield nothing.
func (m *Mesh) forOutgoing(v VertexHandle, fn func(h HalfedgeHandle) bool) {
	start := m.vertices[v].halfedge
	if start == NullHalfedge {
		return
	}
	h := start
	for {
		if !fn(h) {
			return
		}
		h = m.halfedges[h^1].next
		if h == start {
			return
		}
	}
}

// forFace visits the halfedges of f following next links until fn
// returns false.
func (m *Mesh) forFace(f FaceHandle, fn func(h HalfedgeHandle) bool) {
	start := m.faces[f].halfedge
	h := start
	for {
		if !fn(h) {
			return
		}
		h = m.halfedges[h].next
		if h == start {
			return
		}
	}
}

// isBoundaryVertex reports whether v still has a free gap in its fan.
// Relies on the invariant that the stored outgoing halfedge is a border
// one whenever any outgoing halfedge is.
func (m *Mesh) isBoundaryVertex(v VertexHandle) bool {
	h := m.vertices[v].halfedge
	return h == NullHalfedge || m.halfedges[h].face == Border
}

// adjustOutgoing restores the border-halfedge invariant of v.
func (m *Mesh) adjustOutgoing(v VertexHandle) {
	m.forOutgoing(v, func(h HalfedgeHandle) bool {
		if m.halfedges[h].face == Border {
			m.vertices[v].halfedge = h
			return false
		}
		return true
	})
}

func (m *Mesh) findHalfedge(v0, v1 VertexHandle) HalfedgeHandle {
	found := NullHalfedge
	m.forOutgoing(v0, func(h HalfedgeHandle) bool {
		if m.halfedges[h].target == v1 {
			found = h
			return false
		}
		return true
	})
	return found
}

// Point returns the position of v. Panics on an invalid handle.
func (m *Mesh) Point(v VertexHandle) r3.Vec {
	m.mustVertex("Point", v)
	return m.vertices[v].point
}

// SetPoint moves v to p. Connectivity is unchanged; normal maps and the
// AABB tree are not refreshed. Panics on an invalid handle.
func (m *Mesh) SetPoint(v VertexHandle, p r3.Vec) {
	m.mustVertex("SetPoint", v)
	m.vertices[v].point = p
}

// Target returns the vertex h points to.
func (m *Mesh) Target(h HalfedgeHandle) VertexHandle {
	m.mustHalfedge("Target", h)
	return m.halfedges[h].target
}

// Source returns the vertex h starts from.
func (m *Mesh) Source(h HalfedgeHandle) VertexHandle {
	m.mustHalfedge("Source", h)
	return m.halfedges[h^1].target
}

// Next returns the successor of h in its face or border loop.
func (m *Mesh) Next(h HalfedgeHandle) HalfedgeHandle {
	m.mustHalfedge("Next", h)
	return m.halfedges[h].next
}

// Prev returns the predecessor of h in its face or border loop.
func (m *Mesh) Prev(h HalfedgeHandle) HalfedgeHandle {
	m.mustHalfedge("Prev", h)
	return m.halfedges[h].prev
}

// Opposite returns the twin of h.
func (m *Mesh) Opposite(h HalfedgeHandle) HalfedgeHandle {
	m.mustHalfedge("Opposite", h)
	return h ^ 1
}

// Face returns the face h bounds, or Border.
func (m *Mesh) Face(h HalfedgeHandle) FaceHandle {
	m.mustHalfedge("Face", h)
	return m.halfedges[h].face
}

// Edge returns the edge h belongs to.
func (m *Mesh) Edge(h HalfedgeHandle) EdgeHandle {
	m.mustHalfedge("Edge", h)
	return EdgeHandle(h / 2)
}

// EdgeHalfedge returns halfedge i (0 or 1) of e.
func (m *Mesh) EdgeHalfedge(e EdgeHandle, i int) HalfedgeHandle {
	m.mustEdge("EdgeHalfedge", e)
	if i != 0 && i != 1 {
		panic(fmt.Errorf("EdgeHalfedge: side %d: %w", i, ErrIndexOutOfRange))
	}
	return HalfedgeHandle(2*int(e) + i)
}

// VertexHalfedge returns an outgoing halfedge of v, a border one if v is on
// a boundary, or NullHalfedge when v is isolated.
func (m *Mesh) VertexHalfedge(v VertexHandle) HalfedgeHandle {
	m.mustVertex("VertexHalfedge", v)
	return m.vertices[v].halfedge
}

// FaceHalfedge returns one halfedge of f.
func (m *Mesh) FaceHalfedge(f FaceHandle) HalfedgeHandle {
	m.mustFace("FaceHalfedge", f)
	return m.faces[f].halfedge
}

// FindHalfedge returns the halfedge v0→v1 or NullHalfedge when the two are
// not adjacent. Invalid handles yield NullHalfedge.
func (m *Mesh) FindHalfedge(v0, v1 VertexHandle) HalfedgeHandle {
	if !m.IsVertexValid(v0) || !m.IsVertexValid(v1) {
		return NullHalfedge
	}
	return m.findHalfedge(v0, v1)
}
