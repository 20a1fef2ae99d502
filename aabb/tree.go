// SPDX-License-Identifier: MIT
// Package: surfmesh/aabb
//
// tree.go - node arena and bulk construction.

package aabb

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/surfmesh/kernel"
)

// leafSize is the maximum number of items stored in one leaf.
const leafSize = 4

// Item is one triangle tracked by the tree. ID is opaque to the tree; the
// mesh stores its face handle there.
type Item struct {
	ID       int
	Triangle kernel.Triangle
}

// node is either a leaf (left == 0) holding items[start:start+count], or an
// internal node with two children. Index 0 is reserved to mean "no child".
type node struct {
	box         kernel.Box
	left, right int
	start       int
	count       int
}

// Tree is an immutable bounding-volume hierarchy. The zero value is an
// empty tree.
type Tree struct {
	nodes     []node // 1-indexed, index 0 unused
	items     []Item
	boxes     []kernel.Box
	centroids []r3.Vec
}

// Build constructs a tree over a copy of items.
func Build(items []Item) *Tree {
	t := &Tree{
		nodes:     make([]node, 1, 2*len(items)/leafSize+2),
		items:     make([]Item, len(items)),
		boxes:     make([]kernel.Box, len(items)),
		centroids: make([]r3.Vec, len(items)),
	}
	copy(t.items, items)
	for i := range t.items {
		t.boxes[i] = t.items[i].Triangle.Bounds()
		t.centroids[i] = t.items[i].Triangle.Centroid()
	}
	if len(items) > 0 {
		t.build(0, len(items))
	}
	return t
}

// build creates the subtree over items[lo:hi] and returns its node index.
func (t *Tree) build(lo, hi int) int {
	idx := len(t.nodes)
	t.nodes = append(t.nodes, node{})

	box := kernel.EmptyBox()
	for i := lo; i < hi; i++ {
		box = box.Union(t.boxes[i])
	}

	if hi-lo <= leafSize {
		t.nodes[idx] = node{box: box, start: lo, count: hi - lo}
		return idx
	}

	cbox := kernel.EmptyBox()
	for i := lo; i < hi; i++ {
		cbox = cbox.Extend(t.centroids[i])
	}
	axis := cbox.LongestAxis()
	mid := lo + (hi-lo)/2
	t.selectNth(lo, hi, mid, axis)

	left := t.build(lo, mid)
	right := t.build(mid, hi)
	t.nodes[idx] = node{box: box, left: left, right: right}
	return idx
}

// selectNth partially orders [lo,hi) so that position n holds the element
// that would be there if the range were sorted by centroid on axis.
func (t *Tree) selectNth(lo, hi, n, axis int) {
	for hi-lo > 1 {
		p := t.partition(lo, hi, axis)
		switch {
		case n < p:
			hi = p
		case n > p:
			lo = p + 1
		default:
			return
		}
	}
}

// partition uses the median of three as pivot and returns its final slot.
func (t *Tree) partition(lo, hi, axis int) int {
	key := func(i int) float64 { return kernel.Axis(t.centroids[i], axis) }
	mid := lo + (hi-lo)/2
	last := hi - 1
	if key(mid) < key(lo) {
		t.swap(mid, lo)
	}
	if key(last) < key(lo) {
		t.swap(last, lo)
	}
	if key(mid) < key(last) {
		t.swap(mid, last)
	}
	pivot := key(last)
	store := lo
	for i := lo; i < last; i++ {
		if key(i) < pivot {
			t.swap(i, store)
			store++
		}
	}
	t.swap(store, last)
	return store
}

func (t *Tree) swap(i, j int) {
	t.items[i], t.items[j] = t.items[j], t.items[i]
	t.boxes[i], t.boxes[j] = t.boxes[j], t.boxes[i]
	t.centroids[i], t.centroids[j] = t.centroids[j], t.centroids[i]
}

func (t *Tree) node(idx int) *node {
	return &t.nodes[idx]
}

// Len returns the number of items in the tree.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return len(t.items)
}

// Extent gives the box bounding every item. If the tree is empty, then
// false is returned.
func (t *Tree) Extent() (kernel.Box, bool) {
	if t.Len() == 0 {
		return kernel.EmptyBox(), false
	}
	return t.node(1).box, true
}

// Depth returns the number of node layers on the longest root-to-leaf path.
func (t *Tree) Depth() int {
	if t.Len() == 0 {
		return 0
	}
	var depth func(idx int) int
	depth = func(idx int) int {
		n := t.node(idx)
		if n.left == 0 {
			return 1
		}
		return 1 + max(depth(n.left), depth(n.right))
	}
	return depth(1)
}
