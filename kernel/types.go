// SPDX-License-Identifier: MIT
// Package: surfmesh/kernel
//
// types.go - value types shared by the kernel and its callers.

package kernel

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Sentinel errors for kernel operations.
var (
	// ErrNotAffine indicates a 4×4 matrix whose last row is not (0,0,0,1).
	ErrNotAffine = errors.New("kernel: matrix is not affine")

	// ErrDegenerateAxis indicates a rotation axis of zero length.
	ErrDegenerateAxis = errors.New("kernel: degenerate rotation axis")
)

// Sign is the result of an orientation predicate.
type Sign int

// Sign values mirror math conventions so they can be multiplied.
const (
	Negative Sign = -1
	Zero     Sign = 0
	Positive Sign = 1
)

// String renders the sign for logs and test failures.
func (s Sign) String() string {
	switch s {
	case Negative:
		return "Negative"
	case Zero:
		return "Zero"
	case Positive:
		return "Positive"
	default:
		return "Unknown"
	}
}

// BoundedSide classifies a point against a closed surface.
type BoundedSide int

const (
	// OnUnboundedSide means the point is outside the volume.
	OnUnboundedSide BoundedSide = iota
	// OnBoundary means the point lies on the surface itself.
	OnBoundary
	// OnBoundedSide means the point is strictly inside the volume.
	OnBoundedSide
)

// String renders the side for logs and test failures.
func (s BoundedSide) String() string {
	switch s {
	case OnUnboundedSide:
		return "OnUnboundedSide"
	case OnBoundary:
		return "OnBoundary"
	case OnBoundedSide:
		return "OnBoundedSide"
	default:
		return "Unknown"
	}
}

// Triangle is three corner positions in counter-clockwise order.
type Triangle [3]r3.Vec

// Normal returns the non-normalized normal (b-a)×(c-a); its length is
// twice the triangle area.
func (t Triangle) Normal() r3.Vec {
	return r3.Cross(r3.Sub(t[1], t[0]), r3.Sub(t[2], t[0]))
}

// UnitNormal returns the normal scaled to unit length, or the zero vector
// for a degenerate triangle.
func (t Triangle) UnitNormal() r3.Vec {
	n := t.Normal()
	l := r3.Norm(n)
	if l == 0 {
		return r3.Vec{}
	}
	return r3.Scale(1/l, n)
}

// Area returns the unsigned area.
func (t Triangle) Area() float64 {
	return 0.5 * r3.Norm(t.Normal())
}

// Centroid returns the mean of the three corners.
func (t Triangle) Centroid() r3.Vec {
	return r3.Scale(1.0/3.0, r3.Add(r3.Add(t[0], t[1]), t[2]))
}

// SignedVolume returns the signed volume of the tetrahedron spanned by the
// origin and the triangle. Summed over a closed outward-oriented surface it
// yields the enclosed volume.
func (t Triangle) SignedVolume() float64 {
	return r3.Dot(t[0], r3.Cross(t[1], t[2])) / 6.0
}

// Bounds returns the tight axis-aligned box around the triangle.
func (t Triangle) Bounds() Box {
	return EmptyBox().Extend(t[0]).Extend(t[1]).Extend(t[2])
}

// Box is an axis-aligned bounding box sharing gonum's r3.Box layout.
// A box with Min > Max on any axis is empty.
type Box r3.Box

// EmptyBox returns the identity element for Extend and Union.
func EmptyBox() Box {
	inf := math.Inf(1)
	return Box{
		Min: r3.Vec{X: inf, Y: inf, Z: inf},
		Max: r3.Vec{X: -inf, Y: -inf, Z: -inf},
	}
}

// IsEmpty reports whether the box contains no point.
func (b Box) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// Extend grows the box to include p.
func (b Box) Extend(p r3.Vec) Box {
	return Box{
		Min: r3.Vec{X: math.Min(b.Min.X, p.X), Y: math.Min(b.Min.Y, p.Y), Z: math.Min(b.Min.Z, p.Z)},
		Max: r3.Vec{X: math.Max(b.Max.X, p.X), Y: math.Max(b.Max.Y, p.Y), Z: math.Max(b.Max.Z, p.Z)},
	}
}

// Union returns the smallest box holding both operands.
func (b Box) Union(o Box) Box {
	if o.IsEmpty() {
		return b
	}
	return b.Extend(o.Min).Extend(o.Max)
}

// Overlaps reports whether the closed boxes share at least one point.
func (b Box) Overlaps(o Box) bool {
	if b.IsEmpty() || o.IsEmpty() {
		return false
	}
	return b.Min.X <= o.Max.X && o.Min.X <= b.Max.X &&
		b.Min.Y <= o.Max.Y && o.Min.Y <= b.Max.Y &&
		b.Min.Z <= o.Max.Z && o.Min.Z <= b.Max.Z
}

// Contains reports whether p lies in the closed box.
func (b Box) Contains(p r3.Vec) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Center returns the midpoint of the box.
func (b Box) Center() r3.Vec {
	return r3.Scale(0.5, r3.Add(b.Min, b.Max))
}

// Size returns the extent along each axis (zero vector for an empty box).
func (b Box) Size() r3.Vec {
	if b.IsEmpty() {
		return r3.Vec{}
	}
	return r3.Sub(b.Max, b.Min)
}

// LongestAxis returns 0, 1 or 2 for the X, Y or Z extent.
func (b Box) LongestAxis() int {
	s := b.Size()
	switch {
	case s.X >= s.Y && s.X >= s.Z:
		return 0
	case s.Y >= s.Z:
		return 1
	default:
		return 2
	}
}

// Axis returns component i (0=X, 1=Y, 2=Z) of v.
func Axis(v r3.Vec, i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}
