// SPDX-License-Identifier: MIT
//
// File: garbage.go
// Role: Deferred deletion bookkeeping and stable compaction.

package mesh

import (
	"go.uber.org/zap"
)

// HasGarbage reports whether removed-but-uncompacted elements exist.
func (m *Mesh) HasGarbage() bool {
	return m.removedVertices+m.removedEdges+m.removedFaces > 0
}

// SetRecycleGarbage toggles slot reuse: when enabled, additions take the
// most recently freed slot before growing an arena.
func (m *Mesh) SetRecycleGarbage(enabled bool) { m.recycle = enabled }

// DoesRecycleGarbage reports the current recycle mode.
func (m *Mesh) DoesRecycleGarbage() bool { return m.recycle }

// CollectGarbage compacts the store: live elements move to a contiguous
// prefix of each arena in their previous relative order and every link is
// rewritten to the new numbering. Property maps and the AABB tree are
// keyed by the old numbering and are dropped.
//
// Implementation:
//   - Stage 1: Build old→new maps for vertices, edges and faces.
//   - Stage 2: Move records forward (new index <= old index, so in place).
//   - Stage 3: Rewrite every stored handle through the maps and truncate.
//
// Complexity:
//   - Time O(V + H + F), Space O(V + E + F) for the maps.
func (m *Mesh) CollectGarbage() {
	m.RemovePropertyMaps()
	m.tree = nil
	if !m.HasGarbage() {
		return
	}
	removedV, removedE, removedF := m.removedVertices, m.removedEdges, m.removedFaces

	vmap := make([]VertexHandle, len(m.vertices))
	nv := 0
	for i := range m.vertices {
		if m.vertices[i].removed {
			vmap[i] = NullVertex
			continue
		}
		vmap[i] = VertexHandle(nv)
		m.vertices[nv] = m.vertices[i]
		nv++
	}

	ne := len(m.halfedges) / 2
	emap := make([]EdgeHandle, ne)
	n := 0
	for e := 0; e < ne; e++ {
		if m.halfedges[2*e].removed {
			emap[e] = NullEdge
			continue
		}
		emap[e] = EdgeHandle(n)
		m.halfedges[2*n] = m.halfedges[2*e]
		m.halfedges[2*n+1] = m.halfedges[2*e+1]
		n++
	}
	ne = n

	fmap := make([]FaceHandle, len(m.faces))
	nf := 0
	for i := range m.faces {
		if m.faces[i].removed {
			fmap[i] = NullFace
			continue
		}
		fmap[i] = FaceHandle(nf)
		m.faces[nf] = m.faces[i]
		nf++
	}

	hmap := func(h HalfedgeHandle) HalfedgeHandle {
		if h == NullHalfedge {
			return NullHalfedge
		}
		return HalfedgeHandle(2*int(emap[h/2])) + h&1
	}

	m.vertices = m.vertices[:nv]
	m.halfedges = m.halfedges[:2*ne]
	m.faces = m.faces[:nf]

	for i := range m.vertices {
		m.vertices[i].halfedge = hmap(m.vertices[i].halfedge)
	}
	for i := range m.halfedges {
		rec := &m.halfedges[i]
		rec.target = vmap[rec.target]
		if rec.face != Border {
			rec.face = fmap[rec.face]
		}
		rec.next = hmap(rec.next)
		rec.prev = hmap(rec.prev)
	}
	for i := range m.faces {
		m.faces[i].halfedge = hmap(m.faces[i].halfedge)
	}

	m.removedVertices, m.removedEdges, m.removedFaces = 0, 0, 0
	m.freeVertices = m.freeVertices[:0]
	m.freeEdges = m.freeEdges[:0]
	m.freeFaces = m.freeFaces[:0]

	m.log.Debug("garbage collected",
		zap.Int("vertices_dropped", removedV),
		zap.Int("edges_dropped", removedE),
		zap.Int("faces_dropped", removedF),
		zap.Int("vertices", nv),
		zap.Int("edges", ne),
		zap.Int("faces", nf),
	)
}
