// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex creation, removal and enumeration.

package mesh

import (
	"fmt"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r3"
)

// AddVertex appends an isolated vertex at p and returns its handle. In
// recycle mode a freed slot is reused first.
//
// Complexity:
//   - Time O(1) amortized.
func (m *Mesh) AddVertex(p r3.Vec) VertexHandle {
	return m.newVertex(p)
}

// RemoveVertex removes v together with every incident face and edge.
// Neighbouring vertices stay live even if they become isolated.
//
// Implementation:
//   - Stage 1: Collect the distinct incident faces and remove each one;
//     edges left with two border sides are unlinked on the way.
//   - Stage 2: Unlink the dangling edges that were never bounded by a face.
//   - Stage 3: Flag the vertex slot as removed.
//
// Errors:
//   - ErrInvalidHandle if v is not live.
//
// Complexity:
//   - Time O(sum of incident face degrees), Space O(deg v).
func (m *Mesh) RemoveVertex(v VertexHandle) error {
	if !m.IsVertexValid(v) {
		return invalid("RemoveVertex", "vertex", int(v))
	}

	var incident []FaceHandle
	m.forOutgoing(v, func(h HalfedgeHandle) bool {
		if f := m.halfedges[h].face; f != Border {
			incident = append(incident, f)
		}
		return true
	})
	for _, f := range incident {
		// a face shows up once per outgoing halfedge it owns, i.e. once
		if !m.faces[f].removed {
			m.removeFace(f)
		}
	}

	var dangling []EdgeHandle
	m.forOutgoing(v, func(h HalfedgeHandle) bool {
		dangling = append(dangling, EdgeHandle(h/2))
		return true
	})
	for _, e := range dangling {
		m.unlinkEdge(e)
	}

	m.dropVertex(v)
	m.log.Debug("vertex removed", zap.Int("vertex", int(v)), zap.Int("faces", len(incident)))
	return nil
}

// Points returns the positions of live vertices in enumeration order.
func (m *Mesh) Points() []r3.Vec {
	out := make([]r3.Vec, 0, m.VertexCount())
	for i := range m.vertices {
		if !m.vertices[i].removed {
			out = append(out, m.vertices[i].point)
		}
	}
	return out
}

// Vertices returns live vertex handles in store order.
func (m *Mesh) Vertices() []VertexHandle {
	out := make([]VertexHandle, 0, m.VertexCount())
	for i := range m.vertices {
		if !m.vertices[i].removed {
			out = append(out, VertexHandle(i))
		}
	}
	return out
}

// vertexIndex maps every live vertex to its position in enumeration order;
// removed slots map to -1.
func (m *Mesh) vertexIndex() []int {
	idx := make([]int, len(m.vertices))
	n := 0
	for i := range m.vertices {
		if m.vertices[i].removed {
			idx[i] = -1
			continue
		}
		idx[i] = n
		n++
	}
	return idx
}

// Transform applies a to every live vertex position. Connectivity is
// unchanged and the AABB tree, if any, is left as built.
//
// Complexity:
//   - Time O(V).
func (m *Mesh) Transform(a Transformer) {
	for i := range m.vertices {
		if !m.vertices[i].removed {
			m.vertices[i].point = a.Apply(m.vertices[i].point)
		}
	}
}

// Transformer maps a point to a point; kernel.Affine satisfies it.
type Transformer interface {
	Apply(p r3.Vec) r3.Vec
}

func (m *Mesh) checkVertices(op string, vs []VertexHandle) error {
	for _, v := range vs {
		if !m.IsVertexValid(v) {
			return fmt.Errorf("%s: vertex %d: %w", op, v, ErrInvalidHandle)
		}
	}
	return nil
}
