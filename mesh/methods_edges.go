// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge creation (splicing into border gaps), removal and enumeration.
// Determinism:
//   - AddEdge links into the stored border gap of each endpoint, so the
//     result depends only on the current store state.

package mesh

import (
	"fmt"

	"go.uber.org/zap"
)

// AddEdge creates a face-less halfedge pair v0–v1 and returns the v0→v1
// half. Both halves are border halfedges. Manifoldness of surrounding faces
// is not validated and parallel edges are not checked for, but each
// endpoint must still have a border gap (isolated or boundary vertex) for
// the pair to be spliced into: an interior endpoint is rejected even though
// no face would become non-manifold.
//
// Errors:
//   - ErrInvalidHandle if an endpoint is not live.
//   - ErrNonManifoldEdit if v0 == v1 or an endpoint is interior.
//
// Complexity:
//   - Time O(1).
func (m *Mesh) AddEdge(v0, v1 VertexHandle) (HalfedgeHandle, error) {
	if err := m.checkVertices("AddEdge", []VertexHandle{v0, v1}); err != nil {
		return NullHalfedge, err
	}
	if v0 == v1 {
		return NullHalfedge, fmt.Errorf("AddEdge: loop at vertex %d: %w", v0, ErrNonManifoldEdit)
	}
	for _, v := range []VertexHandle{v0, v1} {
		if !m.isBoundaryVertex(v) {
			m.log.Debug("edge rejected", zap.String("reason", "interior vertex"), zap.Int("vertex", int(v)))
			return NullHalfedge, fmt.Errorf("AddEdge: vertex %d is interior: %w", v, ErrNonManifoldEdit)
		}
	}

	// gaps are read before anything is linked
	out0, out1 := m.vertices[v0].halfedge, m.vertices[v1].halfedge
	in0, in1 := NullHalfedge, NullHalfedge
	if out0 != NullHalfedge {
		in0 = m.halfedges[out0].prev
	}
	if out1 != NullHalfedge {
		in1 = m.halfedges[out1].prev
	}

	h := m.newEdge(v0, v1)
	o := h ^ 1

	if out0 == NullHalfedge {
		m.setNext(o, h)
		m.vertices[v0].halfedge = h
	} else {
		m.setNext(in0, h)
		m.setNext(o, out0)
	}
	if out1 == NullHalfedge {
		m.setNext(h, o)
		m.vertices[v1].halfedge = o
	} else {
		m.setNext(in1, o)
		m.setNext(h, out1)
	}
	return h, nil
}

// RemoveEdge removes e and the (up to two) faces it bounds. Endpoints stay
// live.
//
// Errors:
//   - ErrInvalidHandle if e is not live.
//
// Complexity:
//   - Time O(degree of the adjacent faces).
func (m *Mesh) RemoveEdge(e EdgeHandle) error {
	if !m.IsEdgeValid(e) {
		return invalid("RemoveEdge", "edge", int(e))
	}
	h0, h1 := HalfedgeHandle(2*e), HalfedgeHandle(2*e+1)
	f0, f1 := m.halfedges[h0].face, m.halfedges[h1].face
	if f0 == Border && f1 == Border {
		v0, v1 := m.halfedges[h0].target, m.halfedges[h1].target
		m.unlinkEdge(e)
		m.adjustOutgoing(v0)
		m.adjustOutgoing(v1)
		return nil
	}
	// removing the last adjacent face unlinks the edge itself
	if f0 != Border {
		m.removeFace(f0)
	}
	if f1 != Border {
		m.removeFace(f1)
	}
	return nil
}

// unlinkEdge detaches a border-on-both-sides edge from its loops, repairs
// the endpoints' outgoing halfedges and flags the pair as removed.
func (m *Mesh) unlinkEdge(e EdgeHandle) {
	h0, h1 := HalfedgeHandle(2*e), HalfedgeHandle(2*e+1)
	v0, v1 := m.halfedges[h0].target, m.halfedges[h1].target
	next0, prev0 := m.halfedges[h0].next, m.halfedges[h0].prev
	next1, prev1 := m.halfedges[h1].next, m.halfedges[h1].prev

	m.setNext(prev0, next1)
	m.setNext(prev1, next0)

	if m.vertices[v0].halfedge == h1 {
		if next0 == h1 {
			m.vertices[v0].halfedge = NullHalfedge
		} else {
			m.vertices[v0].halfedge = next0
		}
	}
	if m.vertices[v1].halfedge == h0 {
		if next1 == h0 {
			m.vertices[v1].halfedge = NullHalfedge
		} else {
			m.vertices[v1].halfedge = next1
		}
	}
	m.dropEdge(e)
}

// Edges returns live edge handles in store order.
func (m *Mesh) Edges() []EdgeHandle {
	out := make([]EdgeHandle, 0, m.EdgeCount())
	for e := 0; 2*e < len(m.halfedges); e++ {
		if !m.halfedges[2*e].removed {
			out = append(out, EdgeHandle(e))
		}
	}
	return out
}

// Halfedges returns live halfedge handles in store order.
func (m *Mesh) Halfedges() []HalfedgeHandle {
	out := make([]HalfedgeHandle, 0, m.HalfedgeCount())
	for h := range m.halfedges {
		if !m.halfedges[h].removed {
			out = append(out, HalfedgeHandle(h))
		}
	}
	return out
}

// EdgeLength returns the length of e under the mesh kernel.
func (m *Mesh) EdgeLength(e EdgeHandle) float64 {
	m.mustEdge("EdgeLength", e)
	a := m.vertices[m.halfedges[2*e].target].point
	b := m.vertices[m.halfedges[2*e+1].target].point
	return m.kernel.Distance(a, b)
}
