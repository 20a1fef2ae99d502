// SPDX-License-Identifier: MIT
// Package: surfmesh/kernel
//
// predicates.go - segment/triangle predicates derived from Orientation.
//
// Every sign decision below goes through k.Orientation. Coplanar cases are
// reduced to 2D by dropping the dominant axis of the supporting plane; the
// projected points are lifted back with a unit offset so that the 2D
// orientation is again a 3D Orientation call and keeps the kernel's
// exactness.

package kernel

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// SegmentHit classifies a segment against a triangle.
type SegmentHit int

const (
	// SegmentMiss means the closed segment and closed triangle are disjoint.
	SegmentMiss SegmentHit = iota
	// SegmentCross means the segment pierces the triangle interior
	// transversally, away from its edges and vertices.
	SegmentCross
	// SegmentDegenerate means the segment touches the triangle through an
	// edge, a vertex, an endpoint lying on it, or a coplanar overlap.
	SegmentDegenerate
)

// dominantAxis returns the axis with the largest absolute component of n
// and whether that component is negative.
func dominantAxis(n r3.Vec) (axis int, flipped bool) {
	ax, ay, az := math.Abs(n.X), math.Abs(n.Y), math.Abs(n.Z)
	switch {
	case ax >= ay && ax >= az:
		return 0, n.X < 0
	case ay >= az:
		return 1, n.Y < 0
	default:
		return 2, n.Z < 0
	}
}

// project drops axis and keeps a right-handed (u,v) ordering.
func project(p r3.Vec, axis int) r3.Vec {
	switch axis {
	case 0:
		return r3.Vec{X: p.Y, Y: p.Z}
	case 1:
		return r3.Vec{X: p.Z, Y: p.X}
	default:
		return r3.Vec{X: p.X, Y: p.Y}
	}
}

var liftZ = r3.Vec{Z: 1}

// orient2 is the 2D orientation of (a,b,c) after dropping axis.
func orient2(k Kernel, a, b, c r3.Vec, axis int) Sign {
	pa, pb, pc := project(a, axis), project(b, axis), project(c, axis)
	return k.Orientation(pa, pb, pc, r3.Add(pa, liftZ))
}

// CoplanarOrientation returns the orientation of the coplanar points
// (a,b,c) as seen from the side n points to. The result is Zero when the
// three points are collinear.
func CoplanarOrientation(k Kernel, a, b, c, n r3.Vec) Sign {
	axis, flipped := dominantAxis(n)
	s := orient2(k, a, b, c, axis)
	if flipped {
		return -s
	}
	return s
}

// planeAxis picks the projection axis for triangle t.
func planeAxis(t Triangle) int {
	axis, _ := dominantAxis(t.Normal())
	return axis
}

// pointInTriangle2 is a closed containment test in the projected plane.
func pointInTriangle2(k Kernel, p r3.Vec, t Triangle, axis int) bool {
	if orient2(k, t[0], t[1], t[2], axis) == Zero {
		// Degenerate triangle: containment on any of its sides.
		return onSegment2(k, p, t[0], t[1], axis) ||
			onSegment2(k, p, t[1], t[2], axis) ||
			onSegment2(k, p, t[2], t[0], axis)
	}
	o1 := orient2(k, t[0], t[1], p, axis)
	o2 := orient2(k, t[1], t[2], p, axis)
	o3 := orient2(k, t[2], t[0], p, axis)
	hasNeg := o1 == Negative || o2 == Negative || o3 == Negative
	hasPos := o1 == Positive || o2 == Positive || o3 == Positive
	return !(hasNeg && hasPos)
}

// onSegment2 reports whether p lies on the closed segment ab in projection.
func onSegment2(k Kernel, p, a, b r3.Vec, axis int) bool {
	if orient2(k, a, b, p, axis) != Zero {
		return false
	}
	pp, pa, pb := project(p, axis), project(a, axis), project(b, axis)
	return within(pp.X, pa.X, pb.X) && within(pp.Y, pa.Y, pb.Y)
}

func within(x, a, b float64) bool {
	if a > b {
		a, b = b, a
	}
	return x >= a && x <= b
}

// segmentsIntersect2 tests closed segments ab and cd in projection.
func segmentsIntersect2(k Kernel, a, b, c, d r3.Vec, axis int) bool {
	o1 := orient2(k, a, b, c, axis)
	o2 := orient2(k, a, b, d, axis)
	o3 := orient2(k, c, d, a, axis)
	o4 := orient2(k, c, d, b, axis)
	if o1*o2 < 0 && o3*o4 < 0 {
		return true
	}
	return onSegment2(k, c, a, b, axis) || onSegment2(k, d, a, b, axis) ||
		onSegment2(k, a, c, d, axis) || onSegment2(k, b, c, d, axis)
}

// segmentTriangle2 tests a segment against a triangle in their common plane.
func segmentTriangle2(k Kernel, p, q r3.Vec, t Triangle, axis int) bool {
	if pointInTriangle2(k, p, t, axis) || pointInTriangle2(k, q, t, axis) {
		return true
	}
	return segmentsIntersect2(k, p, q, t[0], t[1], axis) ||
		segmentsIntersect2(k, p, q, t[1], t[2], axis) ||
		segmentsIntersect2(k, p, q, t[2], t[0], axis)
}

// PointInTriangle reports whether p lies on the closed triangle t.
func PointInTriangle(k Kernel, p r3.Vec, t Triangle) bool {
	if k.Orientation(t[0], t[1], t[2], p) != Zero {
		return false
	}
	return pointInTriangle2(k, p, t, planeAxis(t))
}

// SegmentTriangle classifies the closed segment pq against triangle t.
func SegmentTriangle(k Kernel, p, q r3.Vec, t Triangle) SegmentHit {
	a, b, c := t[0], t[1], t[2]
	sp := k.Orientation(a, b, c, p)
	sq := k.Orientation(a, b, c, q)

	switch {
	case sp == sq && sp != Zero:
		return SegmentMiss
	case sp == Zero && sq == Zero:
		if segmentTriangle2(k, p, q, t, planeAxis(t)) {
			return SegmentDegenerate
		}
		return SegmentMiss
	case sp == Zero:
		if pointInTriangle2(k, p, t, planeAxis(t)) {
			return SegmentDegenerate
		}
		return SegmentMiss
	case sq == Zero:
		if pointInTriangle2(k, q, t, planeAxis(t)) {
			return SegmentDegenerate
		}
		return SegmentMiss
	}

	// The segment crosses the plane; test the line against the three edges.
	e1 := k.Orientation(p, q, a, b)
	e2 := k.Orientation(p, q, b, c)
	e3 := k.Orientation(p, q, c, a)
	hasNeg := e1 == Negative || e2 == Negative || e3 == Negative
	hasPos := e1 == Positive || e2 == Positive || e3 == Positive
	if hasNeg && hasPos {
		return SegmentMiss
	}
	if e1 == Zero || e2 == Zero || e3 == Zero {
		return SegmentDegenerate
	}
	return SegmentCross
}

// SegmentIntersectsTriangle reports whether closed segment pq and closed
// triangle t share at least one point.
func SegmentIntersectsTriangle(k Kernel, p, q r3.Vec, t Triangle) bool {
	return SegmentTriangle(k, p, q, t) != SegmentMiss
}

// TrianglesIntersect reports whether two closed triangles share a point.
func TrianglesIntersect(k Kernel, t1, t2 Triangle) bool {
	if !t1.Bounds().Overlaps(t2.Bounds()) {
		return false
	}
	s0 := k.Orientation(t2[0], t2[1], t2[2], t1[0])
	s1 := k.Orientation(t2[0], t2[1], t2[2], t1[1])
	s2 := k.Orientation(t2[0], t2[1], t2[2], t1[2])
	if s0 == s1 && s1 == s2 && s0 != Zero {
		return false
	}
	r0 := k.Orientation(t1[0], t1[1], t1[2], t2[0])
	r1 := k.Orientation(t1[0], t1[1], t1[2], t2[1])
	r2 := k.Orientation(t1[0], t1[1], t1[2], t2[2])
	if r0 == r1 && r1 == r2 && r0 != Zero {
		return false
	}

	if s0 == Zero && s1 == Zero && s2 == Zero {
		axis := planeAxis(t2)
		for i := 0; i < 3; i++ {
			if segmentTriangle2(k, t1[i], t1[(i+1)%3], t2, axis) {
				return true
			}
		}
		return pointInTriangle2(k, t2[0], t1, axis)
	}

	for i := 0; i < 3; i++ {
		if SegmentIntersectsTriangle(k, t1[i], t1[(i+1)%3], t2) {
			return true
		}
		if SegmentIntersectsTriangle(k, t2[i], t2[(i+1)%3], t1) {
			return true
		}
	}
	return false
}

// SameSideOfEdge reports whether c and d lie strictly on the same side of
// the line ab inside their common plane. Used to detect folded-over
// neighbours sharing edge ab.
func SameSideOfEdge(k Kernel, a, b, c, d r3.Vec) bool {
	n := r3.Cross(r3.Sub(b, a), r3.Sub(c, a))
	if r3.Norm2(n) == 0 {
		n = r3.Cross(r3.Sub(b, a), r3.Sub(d, a))
	}
	axis, _ := dominantAxis(n)
	oc := orient2(k, a, b, c, axis)
	od := orient2(k, a, b, d, axis)
	return oc != Zero && oc == od
}
