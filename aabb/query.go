// SPDX-License-Identifier: MIT
// Package: surfmesh/aabb
//
// query.go - box and segment searches.

package aabb

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/surfmesh/kernel"
)

// Stop is a special sentinel error that can be used to stop a search
// operation without any error.
var Stop = errors.New("stop")

// RangeSearch calls fn for every item whose bounding box overlaps box.
// If fn returns an error the search is terminated early and that error is
// returned, except for Stop which ends the search and yields nil.
func (t *Tree) RangeSearch(box kernel.Box, fn func(Item) error) error {
	return t.search(func(b kernel.Box) bool { return b.Overlaps(box) }, fn)
}

// SegmentSearch calls fn for every item whose bounding box is touched by
// the closed segment pq. Callers still need an exact test on the triangle.
func (t *Tree) SegmentSearch(p, q r3.Vec, fn func(Item) error) error {
	return t.search(func(b kernel.Box) bool { return segmentHitsBox(p, q, b) }, fn)
}

// Visit calls fn for every item in storage order.
func (t *Tree) Visit(fn func(Item) error) error {
	for _, it := range t.items {
		if err := fn(it); err != nil {
			if err == Stop {
				return nil
			}
			return err
		}
	}
	return nil
}

func (t *Tree) search(prune func(kernel.Box) bool, fn func(Item) error) error {
	if t.Len() == 0 {
		return nil
	}
	var recurse func(idx int) error
	recurse = func(idx int) error {
		n := t.node(idx)
		if !prune(n.box) {
			return nil
		}
		if n.left == 0 {
			for i := n.start; i < n.start+n.count; i++ {
				if !prune(t.boxes[i]) {
					continue
				}
				if err := fn(t.items[i]); err != nil {
					return err
				}
			}
			return nil
		}
		if err := recurse(n.left); err != nil {
			return err
		}
		return recurse(n.right)
	}
	if err := recurse(1); err != nil && err != Stop {
		return err
	}
	return nil
}

// segmentHitsBox is the slab test for the closed segment pq.
func segmentHitsBox(p, q r3.Vec, b kernel.Box) bool {
	if b.IsEmpty() {
		return false
	}
	// Pad the slabs so rounding never prunes a box the exact segment touches.
	pad := 1e-9 * (1 + math.Max(maxAbs(b.Min), maxAbs(b.Max)))
	d := r3.Sub(q, p)
	tmin, tmax := 0.0, 1.0
	for axis := 0; axis < 3; axis++ {
		o := kernel.Axis(p, axis)
		dir := kernel.Axis(d, axis)
		lo, hi := kernel.Axis(b.Min, axis)-pad, kernel.Axis(b.Max, axis)+pad
		if dir == 0 {
			if o < lo || o > hi {
				return false
			}
			continue
		}
		t0 := (lo - o) / dir
		t1 := (hi - o) / dir
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		tmin = math.Max(tmin, t0)
		tmax = math.Min(tmax, t1)
		if tmin > tmax {
			return false
		}
	}
	return true
}

func maxAbs(v r3.Vec) float64 {
	return math.Max(math.Abs(v.X), math.Max(math.Abs(v.Y), math.Abs(v.Z)))
}
