// SPDX-License-Identifier: MIT
//
// File: predicates.go
// Role: Whole-mesh geometric predicates: point containment, self
// intersection, volume bounding and mesh–mesh intersection.
// Policy:
//   - Every sign decision goes through the mesh kernel.
//   - Preconditions (closed, not self-intersecting) are documented, not
//     checked; violating them yields unspecified answers.

package mesh

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/surfmesh/aabb"
	"github.com/katalvlaran/surfmesh/kernel"
)

// rayDirections are tried in order when casting parity rays; they avoid
// the coordinate axes and planes where mesh features line up.
var rayDirections = []r3.Vec{
	{X: 0.2672612419124244, Y: 0.5345224838248488, Z: 0.8017837257372732},
	{X: -0.6172133998483676, Y: 0.7715167498104595, Z: 0.1543033499620919},
	{X: 0.4082482904638630, Y: -0.8164965809277261, Z: 0.4082482904638630},
	{X: -0.3015113445777636, Y: -0.3015113445777636, Z: 0.9045340337332909},
}

// maxRayAttempts bounds the number of rays cast for one point.
const maxRayAttempts = 32

// sideOf classifies p against the closed surface formed by set.
func sideOf(k kernel.Kernel, set triangleSet, p r3.Vec) kernel.BoundedSide {
	ext, ok := set.extent()
	if !ok || !ext.Contains(p) {
		return kernel.OnUnboundedSide
	}

	onBoundary := false
	_ = set.nearPoint(p, func(it aabb.Item) error {
		if kernel.PointInTriangle(k, p, it.Triangle) {
			onBoundary = true
			return aabb.Stop
		}
		return nil
	})
	if onBoundary {
		return kernel.OnBoundary
	}

	far := 2*r3.Norm(ext.Size()) + 1
	var rng *rand.Rand
	for attempt := 0; attempt < maxRayAttempts; attempt++ {
		var dir r3.Vec
		if attempt < len(rayDirections) {
			dir = rayDirections[attempt]
		} else {
			if rng == nil {
				rng = rand.New(rand.NewSource(1))
			}
			dir = randomDirection(rng)
		}
		q := r3.Add(p, r3.Scale(far, dir))

		crossings := 0
		degenerate := false
		_ = set.alongSegment(p, q, func(it aabb.Item) error {
			switch kernel.SegmentTriangle(k, p, q, it.Triangle) {
			case kernel.SegmentCross:
				crossings++
			case kernel.SegmentDegenerate:
				degenerate = true
				return aabb.Stop
			}
			return nil
		})
		if degenerate {
			continue
		}
		if crossings%2 == 1 {
			return kernel.OnBoundedSide
		}
		return kernel.OnUnboundedSide
	}
	return kernel.OnUnboundedSide
}

func randomDirection(rng *rand.Rand) r3.Vec {
	for {
		v := r3.Vec{X: 2*rng.Float64() - 1, Y: 2*rng.Float64() - 1, Z: 2*rng.Float64() - 1}
		if n := r3.Norm2(v); n > 1e-6 && n <= 1 {
			return r3.Scale(1/math.Sqrt(n), v)
		}
	}
}

// SideOfTriangleMesh classifies p as inside, outside or on the surface.
// The mesh should be closed and free of self intersections. Uses the AABB
// tree when one is held (as built, even if stale) and a linear scan
// otherwise.
//
// Implementation:
//   - Stage 1: Outside the bounding box means outside.
//   - Stage 2: p on any triangle means on the boundary.
//   - Stage 3: Count transversal crossings of a ray to a far point; a ray
//     grazing an edge, a vertex or lying in a face plane is discarded and
//     another direction is tried.
//
// Complexity:
//   - Time O(log T + k) per ray with a tree, O(T) without.
func (m *Mesh) SideOfTriangleMesh(p r3.Vec) kernel.BoundedSide {
	return sideOf(m.kernel, m.triangles(), p)
}

// fanTrianglesIntersect tests two fan triangles, ignoring the contact
// implied by the corners they share.
func fanTrianglesIntersect(k kernel.Kernel, a, b *fanTriangle) bool {
	var sa, sb [3]int
	shared := 0
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if a.v[i] == b.v[j] {
				sa[shared], sb[shared] = i, j
				shared++
			}
		}
	}

	switch shared {
	case 3:
		return true
	case 2:
		// common edge (u, w); the triangles overlap iff they are coplanar
		// and fold onto the same side of it
		u, w := a.tri[sa[0]], a.tri[sa[1]]
		x := a.tri[3-sa[0]-sa[1]]
		y := b.tri[3-sb[0]-sb[1]]
		if k.Orientation(u, w, x, y) != kernel.Zero {
			return false
		}
		return kernel.SameSideOfEdge(k, u, w, x, y)
	case 1:
		i, j := sa[0], sb[0]
		return kernel.SegmentIntersectsTriangle(k, a.tri[(i+1)%3], a.tri[(i+2)%3], b.tri) ||
			kernel.SegmentIntersectsTriangle(k, b.tri[(j+1)%3], b.tri[(j+2)%3], a.tri)
	default:
		return kernel.TrianglesIntersect(k, a.tri, b.tri)
	}
}

// SelfIntersections returns every pair of distinct faces whose surfaces
// meet beyond their shared corners and edges. Pairs are ordered by
// discovery, each as (lower fan index face, higher fan index face).
//
// Complexity:
//   - Time O(T log T + K) for T fan triangles and K candidate pairs.
func (m *Mesh) SelfIntersections() [][2]FaceHandle {
	return m.selfIntersections(false)
}

// DoesSelfIntersect reports whether any two faces intersect. It stops at
// the first intersecting pair.
func (m *Mesh) DoesSelfIntersect() bool {
	return len(m.selfIntersections(true)) > 0
}

func (m *Mesh) selfIntersections(firstOnly bool) [][2]FaceHandle {
	tris := m.fanTriangles()
	tree := aabb.Build(indexedItems(tris))
	seen := make(map[[2]FaceHandle]bool)
	var out [][2]FaceHandle
	for i := range tris {
		a := &tris[i]
		_ = tree.RangeSearch(a.tri.Bounds(), func(it aabb.Item) error {
			if it.ID <= i {
				return nil
			}
			b := &tris[it.ID]
			if a.face == b.face {
				return nil
			}
			key := [2]FaceHandle{a.face, b.face}
			if seen[key] {
				return nil
			}
			if fanTrianglesIntersect(m.kernel, a, b) {
				seen[key] = true
				out = append(out, key)
				if firstOnly {
					return aabb.Stop
				}
			}
			return nil
		})
		if firstOnly && len(out) > 0 {
			break
		}
	}
	return out
}

// part is one connected surface piece prepared for nesting tests.
type part struct {
	tree   *aabb.Tree
	volume float64
	probe  r3.Vec
}

func (m *Mesh) parts() []part {
	comps := m.ConnectedComponents()
	out := make([]part, 0, len(comps))
	for _, comp := range comps {
		var tris []fanTriangle
		vol := 0.0
		for _, f := range comp {
			m.forFan(f, func(t fanTriangle) {
				tris = append(tris, t)
				vol += t.tri.SignedVolume()
			})
		}
		first := m.faces[comp[0]].halfedge
		out = append(out, part{
			tree:   aabb.Build(indexedItems(tris)),
			volume: vol,
			probe:  m.vertices[m.halfedges[first].target].point,
		})
	}
	return out
}

// DoesBoundAVolume reports whether the mesh is closed, free of self
// intersections and oriented so that it bounds a volume: every connected
// piece nested inside an even number of others is outward-oriented and
// every piece nested inside an odd number is inward-oriented.
//
// Complexity:
//   - Time O(T log T + C²·log T) for C connected pieces.
func (m *Mesh) DoesBoundAVolume() bool {
	if m.FaceCount() == 0 || !m.IsClosed() || m.DoesSelfIntersect() {
		return false
	}
	ps := m.parts()
	for i := range ps {
		if ps[i].volume == 0 {
			return false
		}
		depth := 0
		for j := range ps {
			if i != j && sideOf(m.kernel, treeSet{ps[j].tree}, ps[i].probe) == kernel.OnBoundedSide {
				depth++
			}
		}
		if (depth%2 == 0) != (ps[i].volume > 0) {
			return false
		}
	}
	return true
}

// DoIntersect reports whether the surfaces of m and other share a point.
// With testBoundedSides, a mesh lying entirely inside the volume bounded by
// the other (which must then be closed) also counts. A nil other never
// intersects. Both meshes are evaluated with m's kernel.
func (m *Mesh) DoIntersect(other *Mesh, testBoundedSides bool) bool {
	if other == nil || m.FaceCount() == 0 && other.FaceCount() == 0 {
		return false
	}
	ta, tb := m.fanTriangles(), other.fanTriangles()
	treeA := aabb.Build(indexedItems(ta))
	treeB := aabb.Build(indexedItems(tb))

	hit := false
	for i := range ta {
		a := ta[i].tri
		_ = treeB.RangeSearch(a.Bounds(), func(it aabb.Item) error {
			if kernel.TrianglesIntersect(m.kernel, a, it.Triangle) {
				hit = true
				return aabb.Stop
			}
			return nil
		})
		if hit {
			return true
		}
	}
	if !testBoundedSides {
		return false
	}
	if other.FaceCount() > 0 && other.IsClosed() && m.insideOf(treeB) {
		return true
	}
	return m.FaceCount() > 0 && m.IsClosed() && other.insideOfWith(m.kernel, treeA)
}

// insideOf reports whether some connected piece of m lies inside the
// closed surface stored in t. Without surface contact a piece is either
// wholly inside or wholly outside, so one probe per piece is enough.
func (m *Mesh) insideOf(t *aabb.Tree) bool {
	return m.insideOfWith(m.kernel, t)
}

func (m *Mesh) insideOfWith(k kernel.Kernel, t *aabb.Tree) bool {
	for _, comp := range m.ConnectedComponents() {
		h := m.faces[comp[0]].halfedge
		if sideOf(k, treeSet{t}, m.vertices[m.halfedges[h].target].point) == kernel.OnBoundedSide {
			return true
		}
	}
	return false
}
