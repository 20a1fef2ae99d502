// SPDX-License-Identifier: MIT
//
// File: spatial.go
// Role: AABB tree lifecycle and the triangle-set view used by the
// containment and intersection predicates.
// Policy:
//   - The tree is a snapshot. Edits never rebuild or drop it, except
//     CollectGarbage, which renumbers faces and therefore drops it.

package mesh

import (
	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/surfmesh/aabb"
	"github.com/katalvlaran/surfmesh/kernel"
)

// BuildAABBTree snapshots the current face geometry into a bounding-volume
// hierarchy. Item IDs are face handles; polygons contribute one item per
// fan triangle.
//
// Complexity:
//   - Time O(T log T) expected for T fan triangles, Space O(T).
func (m *Mesh) BuildAABBTree() {
	tris := m.fanTriangles()
	items := make([]aabb.Item, len(tris))
	for i, t := range tris {
		items[i] = aabb.Item{ID: int(t.face), Triangle: t.tri}
	}
	m.tree = aabb.Build(items)
	m.log.Debug("aabb tree built", zap.Int("triangles", len(items)), zap.Int("depth", m.tree.Depth()))
}

// ReleaseAABBTree drops the tree; queries fall back to linear scans.
func (m *Mesh) ReleaseAABBTree() {
	if m.tree != nil {
		m.log.Debug("aabb tree released", zap.Int("triangles", m.tree.Len()))
	}
	m.tree = nil
}

// HasAABBTree reports whether a tree snapshot is held.
func (m *Mesh) HasAABBTree() bool { return m.tree != nil }

// AABBTree returns the held snapshot or nil. The tree is immutable and may
// be shared between concurrent readers.
func (m *Mesh) AABBTree() *aabb.Tree { return m.tree }

// indexedItems wraps fan triangles as items whose ID is the slice index.
func indexedItems(tris []fanTriangle) []aabb.Item {
	items := make([]aabb.Item, len(tris))
	for i, t := range tris {
		items[i] = aabb.Item{ID: i, Triangle: t.tri}
	}
	return items
}

// triangleSet is what point classification needs from a triangle soup.
type triangleSet interface {
	extent() (kernel.Box, bool)
	nearPoint(p r3.Vec, fn func(aabb.Item) error) error
	alongSegment(p, q r3.Vec, fn func(aabb.Item) error) error
}

type treeSet struct{ t *aabb.Tree }

func (s treeSet) extent() (kernel.Box, bool) { return s.t.Extent() }

func (s treeSet) nearPoint(p r3.Vec, fn func(aabb.Item) error) error {
	return s.t.RangeSearch(kernel.Box{Min: p, Max: p}, fn)
}

func (s treeSet) alongSegment(p, q r3.Vec, fn func(aabb.Item) error) error {
	return s.t.SegmentSearch(p, q, fn)
}

// scanSet is the tree-less fallback: every query visits every item.
type scanSet []aabb.Item

func (s scanSet) extent() (kernel.Box, bool) {
	b := kernel.EmptyBox()
	for _, it := range s {
		b = b.Union(it.Triangle.Bounds())
	}
	return b, len(s) > 0
}

func (s scanSet) nearPoint(p r3.Vec, fn func(aabb.Item) error) error {
	return s.each(func(it aabb.Item) error {
		if !it.Triangle.Bounds().Contains(p) {
			return nil
		}
		return fn(it)
	})
}

func (s scanSet) alongSegment(_, _ r3.Vec, fn func(aabb.Item) error) error {
	return s.each(fn)
}

func (s scanSet) each(fn func(aabb.Item) error) error {
	for _, it := range s {
		if err := fn(it); err != nil {
			if err == aabb.Stop {
				return nil
			}
			return err
		}
	}
	return nil
}

// triangles returns the held tree, or a scan over current geometry.
func (m *Mesh) triangles() triangleSet {
	if m.tree != nil {
		return treeSet{m.tree}
	}
	return scanSet(indexedItems(m.fanTriangles()))
}
