// SPDX-License-Identifier: MIT
//
// File: components.go
// Role: Face connectivity and border loop extraction.

package mesh

// ConnectedComponents groups live faces into edge-connected pieces.
// Components are ordered by their lowest face handle; faces inside a
// component are in BFS order from that face.
//
// Complexity:
//   - Time O(sum of face degrees), Space O(F).
func (m *Mesh) ConnectedComponents() [][]FaceHandle {
	seen := make([]bool, len(m.faces))
	var comps [][]FaceHandle

	for f0 := range m.faces {
		if m.faces[f0].removed || seen[f0] {
			continue
		}
		queue := []FaceHandle{FaceHandle(f0)}
		seen[f0] = true

		for qi := 0; qi < len(queue); qi++ {
			m.forFace(queue[qi], func(h HalfedgeHandle) bool {
				g := m.halfedges[h^1].face
				if g != Border && !seen[g] {
					seen[g] = true
					queue = append(queue, g)
				}
				return true
			})
		}
		comps = append(comps, queue)
	}
	return comps
}

// BorderLoops returns every boundary cycle as its border halfedges in next
// order. A closed mesh has none.
//
// Complexity:
//   - Time O(H), Space O(H).
func (m *Mesh) BorderLoops() [][]HalfedgeHandle {
	seen := make([]bool, len(m.halfedges))
	var loops [][]HalfedgeHandle
	for h0 := range m.halfedges {
		rec := m.halfedges[h0]
		if rec.removed || rec.face != Border || seen[h0] {
			continue
		}
		var loop []HalfedgeHandle
		for h := HalfedgeHandle(h0); !seen[h]; h = m.halfedges[h].next {
			seen[h] = true
			loop = append(loop, h)
		}
		loops = append(loops, loop)
	}
	return loops
}
