// SPDX-License-Identifier: MIT
//
// File: validate.go
// Role: Full connectivity audit.

package mesh

import "fmt"

func inconsistent(format string, args ...any) error {
	return fmt.Errorf("IsValid: "+format+": %w", append(args, ErrInconsistent)...)
}

// IsValid audits every invariant of the store and returns the first
// violation found, wrapped in ErrInconsistent, or nil.
//
// Checked:
//   - removal counters match flags and free lists;
//   - every link of a live element points to a live element;
//   - next/prev are mutual inverses, next stays in the same face and
//     continues from the target;
//   - a vertex's stored halfedge leaves it and is a border halfedge
//     whenever the vertex has one;
//   - every face and vertex cycle is finite;
//   - every live halfedge is reached exactly once by the rotation of its
//     source vertex.
//
// Complexity:
//   - Time O(V + H + F) amortized, Space O(H).
func (m *Mesh) IsValid() error {
	rv, re, rf := 0, 0, 0
	for i := range m.vertices {
		if m.vertices[i].removed {
			rv++
		}
	}
	for h := 0; h < len(m.halfedges); h += 2 {
		if m.halfedges[h].removed != m.halfedges[h+1].removed {
			return inconsistent("edge %d half removed", h/2)
		}
		if m.halfedges[h].removed {
			re++
		}
	}
	for i := range m.faces {
		if m.faces[i].removed {
			rf++
		}
	}
	if rv != m.removedVertices || re != m.removedEdges || rf != m.removedFaces {
		return inconsistent("removal counters (%d,%d,%d) != flags (%d,%d,%d)",
			m.removedVertices, m.removedEdges, m.removedFaces, rv, re, rf)
	}
	if len(m.freeVertices) != rv || len(m.freeEdges) != re || len(m.freeFaces) != rf {
		return inconsistent("free lists out of sync")
	}

	for i := range m.halfedges {
		h := HalfedgeHandle(i)
		rec := m.halfedges[i]
		if rec.removed {
			continue
		}
		if !m.IsVertexValid(rec.target) {
			return inconsistent("halfedge %d targets vertex %d", h, rec.target)
		}
		if rec.face != Border && !m.IsFaceValid(rec.face) {
			return inconsistent("halfedge %d bounds face %d", h, rec.face)
		}
		if !m.IsHalfedgeValid(rec.next) || !m.IsHalfedgeValid(rec.prev) {
			return inconsistent("halfedge %d has dangling next/prev", h)
		}
		if m.halfedges[rec.next].prev != h || m.halfedges[rec.prev].next != h {
			return inconsistent("halfedge %d next/prev not inverse", h)
		}
		if m.halfedges[rec.next].face != rec.face {
			return inconsistent("halfedge %d and its next bound different faces", h)
		}
		if m.halfedges[rec.next^1].target != rec.target {
			return inconsistent("halfedge %d next does not start at its target", h)
		}
		if m.halfedges[rec.next].target == rec.target {
			return inconsistent("halfedge %d next is a loop", h)
		}
	}

	for i := range m.faces {
		f := FaceHandle(i)
		if m.faces[i].removed {
			continue
		}
		h := m.faces[i].halfedge
		if !m.IsHalfedgeValid(h) || m.halfedges[h].face != f {
			return inconsistent("face %d halfedge %d", f, h)
		}
		steps := 0
		m.forFace(f, func(HalfedgeHandle) bool {
			steps++
			return steps <= len(m.halfedges)
		})
		if steps > len(m.halfedges) {
			return inconsistent("face %d cycle does not close", f)
		}
	}

	reached := make([]bool, len(m.halfedges))
	for i := range m.vertices {
		v := VertexHandle(i)
		if m.vertices[i].removed {
			continue
		}
		h := m.vertices[i].halfedge
		if h == NullHalfedge {
			continue
		}
		if !m.IsHalfedgeValid(h) || m.halfedges[h^1].target != v {
			return inconsistent("vertex %d outgoing halfedge %d", v, h)
		}
		steps, border, bad := 0, false, NullHalfedge
		m.forOutgoing(v, func(g HalfedgeHandle) bool {
			steps++
			if m.halfedges[g^1].target != v || reached[g] {
				bad = g
				return false
			}
			reached[g] = true
			if m.halfedges[g].face == Border {
				border = true
			}
			return steps <= len(m.halfedges)
		})
		if bad != NullHalfedge {
			return inconsistent("vertex %d rotation reaches halfedge %d twice or from elsewhere", v, bad)
		}
		if steps > len(m.halfedges) {
			return inconsistent("vertex %d fan does not close", v)
		}
		if border && m.halfedges[h].face != Border {
			return inconsistent("vertex %d stores interior halfedge %d next to a border", v, h)
		}
	}
	for h := range m.halfedges {
		if !m.halfedges[h].removed && !reached[h] {
			return inconsistent("halfedge %d is detached from the rotation of vertex %d",
				h, m.halfedges[h^1].target)
		}
	}
	return nil
}
