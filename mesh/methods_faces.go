// SPDX-License-Identifier: MIT
//
// File: methods_faces.go
// Role: Face insertion with border relinking, face removal, bulk index
// buffer ingestion and in-place triangulation.
// Policy:
//   - AddFace validates every manifold condition before the first write;
//     a rejected face leaves the store byte-for-byte unchanged.

package mesh

import (
	"fmt"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r3"
)

type link struct{ a, b HalfedgeHandle }

// AddFace creates a polygon bounded by vs (counter-clockwise seen from the
// outside) and returns its handle. Existing border edges along the polygon
// are reused and the border loops around each corner are relinked.
//
// Implementation:
//   - Stage 1: Reject fewer than three or repeated vertices.
//   - Stage 2: Each corner must have a border gap and each existing edge
//     must still have a free (border) side towards the new face.
//   - Stage 3: Where two consecutive existing edges are not yet adjacent,
//     plan the relink of the border patch between them into the first
//     border gap found rotating from the face's fan; fail if that gap is
//     the face's own.
//   - Stage 4: Only now allocate edges and the face, apply the planned
//     links and repair outgoing halfedges.
//
// Errors:
//   - ErrInvalidHandle if a vertex is not live.
//   - ErrNonManifoldEdit if the face cannot be added without breaking the
//     two-manifold invariant.
//
// Complexity:
//   - Time O(sum of corner degrees), Space O(len(vs)).
func (m *Mesh) AddFace(vs ...VertexHandle) (FaceHandle, error) {
	n := len(vs)
	if n < 3 {
		return NullFace, m.rejectFace(vs, fmt.Sprintf("%d vertices", n))
	}
	if err := m.checkVertices("AddFace", vs); err != nil {
		return NullFace, err
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if vs[i] == vs[j] {
				return NullFace, m.rejectFace(vs, "repeated vertex")
			}
		}
	}

	hs := make([]HalfedgeHandle, n)
	isNew := make([]bool, n)
	for i := 0; i < n; i++ {
		if !m.isBoundaryVertex(vs[i]) {
			return NullFace, m.rejectFace(vs, "interior vertex")
		}
		hs[i] = m.findHalfedge(vs[i], vs[(i+1)%n])
		isNew[i] = hs[i] == NullHalfedge
		if !isNew[i] && m.halfedges[hs[i]].face != Border {
			return NullFace, m.rejectFace(vs, "edge already has two faces")
		}
	}

	var links []link
	for i := 0; i < n; i++ {
		ii := (i + 1) % n
		if isNew[i] || isNew[ii] {
			continue
		}
		innerPrev, innerNext := hs[i], hs[ii]
		if m.halfedges[innerPrev].next == innerNext {
			continue
		}
		// the first border gap after the new face's fan must lie outside
		// the patch between innerPrev and innerNext
		outerPrev := innerNext ^ 1
		boundaryPrev := outerPrev
		for guard := 0; ; guard++ {
			boundaryPrev = m.halfedges[boundaryPrev].next ^ 1
			if m.halfedges[boundaryPrev].face == Border {
				break
			}
			if guard > len(m.halfedges) {
				return NullFace, m.rejectFace(vs, "corrupt fan")
			}
		}
		if boundaryPrev == innerPrev {
			return NullFace, m.rejectFace(vs, "patch relinking failed")
		}
		boundaryNext := m.halfedges[boundaryPrev].next
		patchStart := m.halfedges[innerPrev].next
		patchEnd := m.halfedges[innerNext].prev
		links = append(links,
			link{boundaryPrev, patchStart},
			link{patchEnd, boundaryNext},
			link{innerPrev, innerNext},
		)
	}

	// validation done; mutate
	for i := 0; i < n; i++ {
		if isNew[i] {
			hs[i] = m.newEdge(vs[i], vs[(i+1)%n])
		}
	}
	f := m.newFace(hs[0])

	adjust := make([]bool, n)
	for i := 0; i < n; i++ {
		ii := (i + 1) % n
		v := vs[ii]
		innerPrev, innerNext := hs[i], hs[ii]

		id := 0
		if isNew[i] {
			id |= 1
		}
		if isNew[ii] {
			id |= 2
		}

		if id != 0 {
			outerPrev := innerNext ^ 1
			outerNext := innerPrev ^ 1
			switch id {
			case 1: // innerPrev new, innerNext old
				boundaryPrev := m.halfedges[innerNext].prev
				links = append(links, link{boundaryPrev, outerNext})
				m.vertices[v].halfedge = outerNext
			case 2: // innerPrev old, innerNext new
				boundaryNext := m.halfedges[innerPrev].next
				links = append(links, link{outerPrev, boundaryNext})
				m.vertices[v].halfedge = boundaryNext
			case 3: // both new
				if m.vertices[v].halfedge == NullHalfedge {
					m.vertices[v].halfedge = outerNext
					links = append(links, link{outerPrev, outerNext})
				} else {
					boundaryNext := m.vertices[v].halfedge
					boundaryPrev := m.halfedges[boundaryNext].prev
					links = append(links, link{boundaryPrev, outerNext}, link{outerPrev, boundaryNext})
				}
			}
			links = append(links, link{innerPrev, innerNext})
		} else {
			adjust[ii] = m.vertices[v].halfedge == innerNext
		}
		m.halfedges[hs[i]].face = f
	}

	for _, l := range links {
		m.setNext(l.a, l.b)
	}
	for i, v := range vs {
		if adjust[i] {
			m.adjustOutgoing(v)
		}
	}
	return f, nil
}

func (m *Mesh) rejectFace(vs []VertexHandle, reason string) error {
	ids := make([]int, len(vs))
	for i, v := range vs {
		ids[i] = int(v)
	}
	m.log.Debug("face rejected", zap.String("reason", reason), zap.Ints("vertices", ids))
	return fmt.Errorf("AddFace: %v: %s: %w", ids, reason, ErrNonManifoldEdit)
}

// AddTriangle adds the triangle (v0, v1, v2) and returns NullFace when the
// edit is rejected.
func (m *Mesh) AddTriangle(v0, v1, v2 VertexHandle) FaceHandle {
	f, err := m.AddFace(v0, v1, v2)
	if err != nil {
		return NullFace
	}
	return f
}

// AddQuad adds the quad (v0, v1, v2, v3) and returns NullFace when the edit
// is rejected.
func (m *Mesh) AddQuad(v0, v1, v2, v3 VertexHandle) FaceHandle {
	f, err := m.AddFace(v0, v1, v2, v3)
	if err != nil {
		return NullFace
	}
	return f
}

// RemoveFace removes f. Edges left without any face are removed too; their
// endpoints stay live, possibly isolated.
//
// Errors:
//   - ErrInvalidHandle if f is not live.
//
// Complexity:
//   - Time O(deg f + sum of corner degrees).
func (m *Mesh) RemoveFace(f FaceHandle) error {
	if !m.IsFaceValid(f) {
		return invalid("RemoveFace", "face", int(f))
	}
	m.removeFace(f)
	return nil
}

func (m *Mesh) removeFace(f FaceHandle) {
	var dead []EdgeHandle
	var corners []VertexHandle
	m.forFace(f, func(h HalfedgeHandle) bool {
		m.halfedges[h].face = Border
		if m.halfedges[h^1].face == Border {
			dead = append(dead, EdgeHandle(h/2))
		}
		corners = append(corners, m.halfedges[h].target)
		return true
	})
	for _, e := range dead {
		m.unlinkEdge(e)
	}
	for _, v := range corners {
		m.adjustOutgoing(v)
	}
	m.dropFace(f)
}

// Faces returns live face handles in store order.
func (m *Mesh) Faces() []FaceHandle {
	out := make([]FaceHandle, 0, m.FaceCount())
	for f := range m.faces {
		if !m.faces[f].removed {
			out = append(out, FaceHandle(f))
		}
	}
	return out
}

// FaceDegree returns the number of sides of f.
func (m *Mesh) FaceDegree(f FaceHandle) int {
	m.mustFace("FaceDegree", f)
	return m.faceDegree(f)
}

func (m *Mesh) faceDegree(f FaceHandle) int {
	n := 0
	m.forFace(f, func(HalfedgeHandle) bool {
		n++
		return true
	})
	return n
}

// CreateTriangleQuadMesh appends one vertex per point, then one triangle
// per index triple and one quad per index quadruple, in input order.
// Indices address points. Faces the editor rejects are skipped and
// counted.
//
// Errors:
//   - ErrIndexOutOfRange if a buffer length is not a multiple of its arity
//     or an index lies outside [0, len(points)); nothing is added then.
//
// Complexity:
//   - Time O(P + F·d) where d is the typical corner degree.
func (m *Mesh) CreateTriangleQuadMesh(points []r3.Vec, triangles, quads []int) (skipped int, err error) {
	if len(triangles)%3 != 0 {
		return 0, fmt.Errorf("CreateTriangleQuadMesh: %d triangle indices: %w", len(triangles), ErrIndexOutOfRange)
	}
	if len(quads)%4 != 0 {
		return 0, fmt.Errorf("CreateTriangleQuadMesh: %d quad indices: %w", len(quads), ErrIndexOutOfRange)
	}
	for _, buf := range [][]int{triangles, quads} {
		for i, idx := range buf {
			if idx < 0 || idx >= len(points) {
				return 0, fmt.Errorf("CreateTriangleQuadMesh: index %d at %d outside [0,%d): %w", idx, i, len(points), ErrIndexOutOfRange)
			}
		}
	}

	handles := make([]VertexHandle, len(points))
	for i, p := range points {
		handles[i] = m.AddVertex(p)
	}
	for i := 0; i < len(triangles); i += 3 {
		t := triangles[i : i+3]
		if m.AddTriangle(handles[t[0]], handles[t[1]], handles[t[2]]) == NullFace {
			skipped++
		}
	}
	for i := 0; i < len(quads); i += 4 {
		q := quads[i : i+4]
		if m.AddQuad(handles[q[0]], handles[q[1]], handles[q[2]], handles[q[3]]) == NullFace {
			skipped++
		}
	}
	if skipped > 0 {
		m.log.Debug("bulk build skipped faces", zap.Int("skipped", skipped))
	}
	return skipped, nil
}

// TriangleQuadIndices is the inverse of CreateTriangleQuadMesh: it returns
// flat index buffers over live vertex enumeration order. Faces with more
// than four sides are left out and counted.
func (m *Mesh) TriangleQuadIndices() (triangles, quads []int, skipped int) {
	idx := m.vertexIndex()
	for f := range m.faces {
		if m.faces[f].removed {
			continue
		}
		var corner []int
		m.forFace(FaceHandle(f), func(h HalfedgeHandle) bool {
			corner = append(corner, idx[m.halfedges[h^1].target])
			return true
		})
		switch len(corner) {
		case 3:
			triangles = append(triangles, corner...)
		case 4:
			quads = append(quads, corner...)
		default:
			skipped++
		}
	}
	return triangles, quads, skipped
}

// Triangulate fan-splits every face with more than three sides in place.
// Existing face handles stay valid and keep the triangle at their
// fan end; new edges and faces are appended (or recycled).
//
// Complexity:
//   - Time O(sum of face degrees).
func (m *Mesh) Triangulate() {
	count := len(m.faces)
	added := 0
	for f := 0; f < count; f++ {
		if m.faces[f].removed {
			continue
		}
		for m.faceDegree(FaceHandle(f)) > 3 {
			m.splitFan(FaceHandle(f))
			added++
		}
	}
	if added > 0 {
		m.log.Debug("triangulated", zap.Int("new_faces", added))
	}
}

// splitFan cuts the corner triangle (v0, v1, v2) off f, where v0 is the
// source of f's stored halfedge, and returns the new face. Both faces keep
// v0 as their first corner.
func (m *Mesh) splitFan(f FaceHandle) FaceHandle {
	out := m.faces[f].halfedge      // v0→v1
	in := m.halfedges[out].prev     // →v0
	g := m.halfedges[out].next      // v1→v2
	gn := m.halfedges[g].next       // v2→v3
	v0 := m.halfedges[in].target
	v2 := m.halfedges[g].target

	d := m.newEdge(v2, v0) // d: v2→v0 closes the triangle, d^1: v0→v2 stays in f
	t := m.newFace(out)

	m.setNext(g, d)
	m.setNext(d, out)
	m.setNext(in, d^1)
	m.setNext(d^1, gn)

	m.halfedges[d].face = t
	m.halfedges[out].face = t
	m.halfedges[g].face = t
	m.halfedges[d^1].face = f
	m.faces[f].halfedge = d ^ 1
	return t
}
