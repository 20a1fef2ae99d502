// SPDX-License-Identifier: MIT
//
// File: measure.go
// Role: Geometric measurement over live elements. Polygons are measured
// through the fan triangulation rooted at their first corner.

package mesh

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/surfmesh/kernel"
)

// fanTriangle is one triangle of a face fan, with its corner handles.
type fanTriangle struct {
	face FaceHandle
	v    [3]VertexHandle
	tri  kernel.Triangle
}

// forFan visits the fan triangles of f.
func (m *Mesh) forFan(f FaceHandle, fn func(t fanTriangle)) {
	var corners []VertexHandle
	m.forFace(f, func(h HalfedgeHandle) bool {
		corners = append(corners, m.halfedges[h^1].target)
		return true
	})
	p0 := m.vertices[corners[0]].point
	for i := 1; i+1 < len(corners); i++ {
		a, b := corners[i], corners[i+1]
		fn(fanTriangle{
			face: f,
			v:    [3]VertexHandle{corners[0], a, b},
			tri:  kernel.Triangle{p0, m.vertices[a].point, m.vertices[b].point},
		})
	}
}

// fanTriangles returns every fan triangle of every live face.
func (m *Mesh) fanTriangles() []fanTriangle {
	out := make([]fanTriangle, 0, m.FaceCount())
	for f := range m.faces {
		if m.faces[f].removed {
			continue
		}
		m.forFan(FaceHandle(f), func(t fanTriangle) { out = append(out, t) })
	}
	return out
}

// FaceArea returns the area of f.
func (m *Mesh) FaceArea(f FaceHandle) float64 {
	m.mustFace("FaceArea", f)
	a := 0.0
	m.forFan(f, func(t fanTriangle) { a += t.tri.Area() })
	return a
}

// Area returns the sum of unsigned face areas.
//
// Complexity:
//   - Time O(sum of face degrees).
func (m *Mesh) Area() float64 {
	a := 0.0
	for f := range m.faces {
		if m.faces[f].removed {
			continue
		}
		m.forFan(FaceHandle(f), func(t fanTriangle) { a += t.tri.Area() })
	}
	return a
}

// Volume returns the signed volume enclosed by the faces (positive for an
// outward-oriented surface). The value is only meaningful when IsClosed.
func (m *Mesh) Volume() float64 {
	v := 0.0
	for f := range m.faces {
		if m.faces[f].removed {
			continue
		}
		m.forFan(FaceHandle(f), func(t fanTriangle) { v += t.tri.SignedVolume() })
	}
	return v
}

// ClosedVolume is Volume with its precondition checked.
//
// Errors:
//   - ErrPreconditionUnmet if the mesh is empty or has a border.
func (m *Mesh) ClosedVolume() (float64, error) {
	if m.FaceCount() == 0 || !m.IsClosed() {
		return 0, fmt.Errorf("ClosedVolume: mesh is not closed: %w", ErrPreconditionUnmet)
	}
	return m.Volume(), nil
}

// Centroid returns the volume-weighted centroid of a closed mesh with
// non-zero volume, else the area-weighted centroid of its faces, else the
// mean of its vertex positions. An empty mesh yields the origin.
func (m *Mesh) Centroid() r3.Vec {
	if m.FaceCount() > 0 && m.IsClosed() {
		var sum r3.Vec
		vol := 0.0
		for f := range m.faces {
			if m.faces[f].removed {
				continue
			}
			m.forFan(FaceHandle(f), func(t fanTriangle) {
				sv := t.tri.SignedVolume()
				vol += sv
				// tetrahedron (origin, a, b, c) has its centroid at (a+b+c)/4
				sum = r3.Add(sum, r3.Scale(sv/4, r3.Add(r3.Add(t.tri[0], t.tri[1]), t.tri[2])))
			})
		}
		if vol != 0 {
			return r3.Scale(1/vol, sum)
		}
	}

	var sum r3.Vec
	area := 0.0
	for f := range m.faces {
		if m.faces[f].removed {
			continue
		}
		m.forFan(FaceHandle(f), func(t fanTriangle) {
			a := t.tri.Area()
			area += a
			sum = r3.Add(sum, r3.Scale(a, t.tri.Centroid()))
		})
	}
	if area > 0 {
		return r3.Scale(1/area, sum)
	}

	n := 0
	sum = r3.Vec{}
	for i := range m.vertices {
		if !m.vertices[i].removed {
			sum = r3.Add(sum, m.vertices[i].point)
			n++
		}
	}
	if n == 0 {
		return r3.Vec{}
	}
	return r3.Scale(1/float64(n), sum)
}

// FaceCentroid returns the vertex average of f.
func (m *Mesh) FaceCentroid(f FaceHandle) r3.Vec {
	m.mustFace("FaceCentroid", f)
	return m.faceCentroid(f)
}

func (m *Mesh) faceCentroid(f FaceHandle) r3.Vec {
	var sum r3.Vec
	n := 0
	m.forFace(f, func(h HalfedgeHandle) bool {
		sum = r3.Add(sum, m.vertices[m.halfedges[h].target].point)
		n++
		return true
	})
	return r3.Scale(1/float64(n), sum)
}

// FaceCentroids writes the centroid of every live face into dst in
// enumeration order.
//
// Errors:
//   - ErrIndexOutOfRange if len(dst) < FaceCount().
func (m *Mesh) FaceCentroids(dst []r3.Vec) error {
	if len(dst) < m.FaceCount() {
		return fmt.Errorf("FaceCentroids: dst len %d < %d faces: %w", len(dst), m.FaceCount(), ErrIndexOutOfRange)
	}
	i := 0
	for f := range m.faces {
		if m.faces[f].removed {
			continue
		}
		dst[i] = m.faceCentroid(FaceHandle(f))
		i++
	}
	return nil
}

// BoundingBox returns the axis-aligned box around live vertex positions;
// an empty mesh yields kernel.EmptyBox().
func (m *Mesh) BoundingBox() kernel.Box {
	b := kernel.EmptyBox()
	for i := range m.vertices {
		if !m.vertices[i].removed {
			b = b.Extend(m.vertices[i].point)
		}
	}
	return b
}

// MinMaxEdgeLength returns minimum, maximum and average live edge length.
// A mesh without edges yields the zero value.
//
// Complexity:
//   - Time O(E).
func (m *Mesh) MinMaxEdgeLength() MinMaxAvg {
	res := MinMaxAvg{Min: math.Inf(1), Max: math.Inf(-1)}
	sum, n := 0.0, 0
	for e := 0; 2*e < len(m.halfedges); e++ {
		if m.halfedges[2*e].removed {
			continue
		}
		a := m.vertices[m.halfedges[2*e].target].point
		b := m.vertices[m.halfedges[2*e+1].target].point
		l := m.kernel.Distance(a, b)
		res.Min = math.Min(res.Min, l)
		res.Max = math.Max(res.Max, l)
		sum += l
		n++
	}
	if n == 0 {
		return MinMaxAvg{}
	}
	res.Average = sum / float64(n)
	return res
}
