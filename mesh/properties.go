// SPDX-License-Identifier: MIT
//
// File: properties.go
// Role: Per-element property maps and the built-in vertex/face normal maps.
// Policy:
//   - Maps are keyed by raw slot index and hold no reference to the mesh.
//   - Edits do not refresh maps; removal unsets the removed slot and
//     CollectGarbage clears them.

package mesh

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// PropertyMap is a sparse slot-indexed store of values of type T.
type PropertyMap[T any] struct {
	values  []T
	present []bool
	count   int
}

// NewPropertyMap returns an empty map.
func NewPropertyMap[T any]() *PropertyMap[T] {
	return &PropertyMap[T]{}
}

// Get returns the value stored at slot i and whether one is present.
func (p *PropertyMap[T]) Get(i int) (T, bool) {
	var zero T
	if i < 0 || i >= len(p.present) || !p.present[i] {
		return zero, false
	}
	return p.values[i], true
}

// Set stores v at slot i, growing the map as needed. Panics on i < 0.
func (p *PropertyMap[T]) Set(i int, v T) {
	if i < 0 {
		panic(fmt.Errorf("PropertyMap.Set: slot %d: %w", i, ErrIndexOutOfRange))
	}
	if i >= len(p.values) {
		grow := i + 1 - len(p.values)
		p.values = append(p.values, make([]T, grow)...)
		p.present = append(p.present, make([]bool, grow)...)
	}
	if !p.present[i] {
		p.count++
	}
	p.values[i] = v
	p.present[i] = true
}

// Unset removes the value at slot i, if any.
func (p *PropertyMap[T]) Unset(i int) {
	if i < 0 || i >= len(p.present) || !p.present[i] {
		return
	}
	var zero T
	p.values[i] = zero
	p.present[i] = false
	p.count--
}

// Len returns the number of slots holding a value.
func (p *PropertyMap[T]) Len() int { return p.count }

// Clear drops every value.
func (p *PropertyMap[T]) Clear() {
	p.values = p.values[:0]
	p.present = p.present[:0]
	p.count = 0
}

// newellNormal returns the (non-normalized) Newell normal of f. Its length
// is twice the area for planar polygons.
func (m *Mesh) newellNormal(f FaceHandle) r3.Vec {
	var n r3.Vec
	m.forFace(f, func(h HalfedgeHandle) bool {
		a := m.vertices[m.halfedges[h^1].target].point
		b := m.vertices[m.halfedges[h].target].point
		n.X += (a.Y - b.Y) * (a.Z + b.Z)
		n.Y += (a.Z - b.Z) * (a.X + b.X)
		n.Z += (a.X - b.X) * (a.Y + b.Y)
		return true
	})
	return n
}

func unitOrZero(v r3.Vec) r3.Vec {
	if r3.Norm2(v) == 0 {
		return r3.Vec{}
	}
	return r3.Unit(v)
}

// ComputeFaceNormals fills the face normal map with the unit normal of
// every live face. Degenerate faces get the zero vector.
func (m *Mesh) ComputeFaceNormals() {
	m.faceNormals.Clear()
	for f := range m.faces {
		if m.faces[f].removed {
			continue
		}
		m.faceNormals.Set(f, unitOrZero(m.newellNormal(FaceHandle(f))))
	}
}

// ComputeVertexNormals fills the vertex normal map with the area-weighted
// average of incident face normals. Vertices without incident faces get the
// zero vector.
func (m *Mesh) ComputeVertexNormals() {
	m.vertexNormals.Clear()
	sums := make([]r3.Vec, len(m.vertices))
	for f := range m.faces {
		if m.faces[f].removed {
			continue
		}
		n := m.newellNormal(FaceHandle(f))
		m.forFace(FaceHandle(f), func(h HalfedgeHandle) bool {
			v := m.halfedges[h].target
			sums[v] = r3.Add(sums[v], n)
			return true
		})
	}
	for v := range m.vertices {
		if m.vertices[v].removed {
			continue
		}
		m.vertexNormals.Set(v, unitOrZero(sums[v]))
	}
}

// VertexNormal returns the stored normal of v, if computed. A removed or
// out-of-range vertex reports false.
func (m *Mesh) VertexNormal(v VertexHandle) (r3.Vec, bool) {
	if !m.IsVertexValid(v) {
		return r3.Vec{}, false
	}
	return m.vertexNormals.Get(int(v))
}

// FaceNormal returns the stored normal of f, if computed. A removed or
// out-of-range face reports false.
func (m *Mesh) FaceNormal(f FaceHandle) (r3.Vec, bool) {
	if !m.IsFaceValid(f) {
		return r3.Vec{}, false
	}
	return m.faceNormals.Get(int(f))
}

// GetVertexNormals copies vertex normals into dst in live-vertex order.
// Slots never computed read as the zero vector. dst must hold at least
// VertexCount() entries.
func (m *Mesh) GetVertexNormals(dst []r3.Vec) error {
	if len(dst) < m.VertexCount() {
		return fmt.Errorf("GetVertexNormals: dst len %d < %d vertices: %w", len(dst), m.VertexCount(), ErrIndexOutOfRange)
	}
	i := 0
	for v := range m.vertices {
		if m.vertices[v].removed {
			continue
		}
		dst[i], _ = m.vertexNormals.Get(v)
		i++
	}
	return nil
}

// GetFaceNormals copies face normals into dst in live-face order.
func (m *Mesh) GetFaceNormals(dst []r3.Vec) error {
	if len(dst) < m.FaceCount() {
		return fmt.Errorf("GetFaceNormals: dst len %d < %d faces: %w", len(dst), m.FaceCount(), ErrIndexOutOfRange)
	}
	i := 0
	for f := range m.faces {
		if m.faces[f].removed {
			continue
		}
		dst[i], _ = m.faceNormals.Get(f)
		i++
	}
	return nil
}

// HasVertexNormals reports whether the vertex normal map holds any value.
func (m *Mesh) HasVertexNormals() bool { return m.vertexNormals.Len() > 0 }

// HasFaceNormals reports whether the face normal map holds any value.
func (m *Mesh) HasFaceNormals() bool { return m.faceNormals.Len() > 0 }

// ClearVertexNormalMap drops all vertex normals.
func (m *Mesh) ClearVertexNormalMap() { m.vertexNormals.Clear() }

// ClearFaceNormalMap drops all face normals.
func (m *Mesh) ClearFaceNormalMap() { m.faceNormals.Clear() }

// RemovePropertyMaps drops every property map the mesh carries.
func (m *Mesh) RemovePropertyMaps() {
	m.vertexNormals.Clear()
	m.faceNormals.Clear()
}
