// SPDX-License-Identifier: MIT
//
// File: join.go
// Role: Mesh combinator. Appends another mesh's live elements with offset
// handles.

package mesh

import (
	"fmt"

	"go.uber.org/zap"
)

// Join appends the live vertices, edges and faces of other to m, in
// other's enumeration order. Every handle of other is shifted by m's arena
// length for its kind and removed elements of other are squeezed out on
// the way, so for a garbage-free receiver the offsets are exactly its
// vertex, edge and face counts. Coincident vertices are not merged.
// other is not modified. m's property maps keep their keys; its AABB tree,
// if any, is left stale.
//
// Errors:
//   - ErrNilMesh if other is nil.
//   - ErrInvalidHandle if other is m itself.
//
// Complexity:
//   - Time O(V' + H' + F') of other.
func (m *Mesh) Join(other *Mesh) error {
	if other == nil {
		return fmt.Errorf("Join: %w", ErrNilMesh)
	}
	if other == m {
		return fmt.Errorf("Join: mesh joined with itself: %w", ErrInvalidHandle)
	}
	if other.kernel.Name() != m.kernel.Name() {
		m.log.Debug("join across kernels", zap.String("receiver", m.kernel.Name()), zap.String("other", other.kernel.Name()))
	}

	vOff, eOff, fOff := len(m.vertices), len(m.halfedges)/2, len(m.faces)

	vmap := make([]VertexHandle, len(other.vertices))
	n := 0
	for i, rec := range other.vertices {
		if rec.removed {
			vmap[i] = NullVertex
			continue
		}
		vmap[i] = VertexHandle(vOff + n)
		n++
	}
	emap := make([]int, len(other.halfedges)/2)
	n = 0
	for e := range emap {
		if other.halfedges[2*e].removed {
			emap[e] = -1
			continue
		}
		emap[e] = eOff + n
		n++
	}
	fmap := make([]FaceHandle, len(other.faces))
	n = 0
	for i, rec := range other.faces {
		if rec.removed {
			fmap[i] = NullFace
			continue
		}
		fmap[i] = FaceHandle(fOff + n)
		n++
	}
	hmap := func(h HalfedgeHandle) HalfedgeHandle {
		if h == NullHalfedge {
			return NullHalfedge
		}
		return HalfedgeHandle(2*emap[h/2]) + h&1
	}

	for _, rec := range other.vertices {
		if rec.removed {
			continue
		}
		m.vertices = append(m.vertices, vertexRecord{point: rec.point, halfedge: hmap(rec.halfedge)})
	}
	for _, rec := range other.halfedges {
		if rec.removed {
			continue
		}
		face := Border
		if rec.face != Border {
			face = fmap[rec.face]
		}
		m.halfedges = append(m.halfedges, halfedgeRecord{
			target: vmap[rec.target],
			face:   face,
			next:   hmap(rec.next),
			prev:   hmap(rec.prev),
		})
	}
	for _, rec := range other.faces {
		if rec.removed {
			continue
		}
		m.faces = append(m.faces, faceRecord{halfedge: hmap(rec.halfedge)})
	}

	m.log.Debug("joined",
		zap.Int("vertex_offset", vOff),
		zap.Int("edge_offset", eOff),
		zap.Int("face_offset", fOff),
		zap.Int("vertices", other.VertexCount()),
		zap.Int("faces", other.FaceCount()),
	)
	return nil
}
