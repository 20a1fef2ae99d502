// SPDX-License-Identifier: MIT
// Package: surfmesh/kernel
//
// affine.go - rigid/similarity/general affine transforms over r3.

package kernel

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Affine maps p to Linear·p + Translation. A nil Linear is the identity.
type Affine struct {
	Linear      *r3.Mat
	Translation r3.Vec
}

// Identity returns the identity transform.
func Identity() Affine {
	return Affine{Linear: r3.NewMat([]float64{1, 0, 0, 0, 1, 0, 0, 0, 1})}
}

// Translation returns a pure translation by t.
func Translation(t r3.Vec) Affine {
	a := Identity()
	a.Translation = t
	return a
}

// Scaling returns a uniform scaling about the origin.
func Scaling(s float64) Affine {
	return Affine{Linear: r3.NewMat([]float64{s, 0, 0, 0, s, 0, 0, 0, s})}
}

// Rotation returns a right-handed rotation by angle radians about axis.
func Rotation(angle float64, axis r3.Vec) (Affine, error) {
	l := r3.Norm(axis)
	if l == 0 {
		return Affine{}, ErrDegenerateAxis
	}
	u := r3.Scale(1/l, axis)
	c, s := math.Cos(angle), math.Sin(angle)
	t := 1 - c
	return Affine{Linear: r3.NewMat([]float64{
		t*u.X*u.X + c, t*u.X*u.Y - s*u.Z, t*u.X*u.Z + s*u.Y,
		t*u.X*u.Y + s*u.Z, t*u.Y*u.Y + c, t*u.Y*u.Z - s*u.X,
		t*u.X*u.Z - s*u.Y, t*u.Y*u.Z + s*u.X, t*u.Z*u.Z + c,
	})}, nil
}

// FromMatrix4 builds an Affine from a row-major homogeneous 4×4 matrix.
// The last row must be exactly (0,0,0,1).
func FromMatrix4(m [16]float64) (Affine, error) {
	if m[12] != 0 || m[13] != 0 || m[14] != 0 || m[15] != 1 {
		return Affine{}, fmt.Errorf("FromMatrix4: last row %v: %w", m[12:], ErrNotAffine)
	}
	return Affine{
		Linear:      r3.NewMat([]float64{m[0], m[1], m[2], m[4], m[5], m[6], m[8], m[9], m[10]}),
		Translation: r3.Vec{X: m[3], Y: m[7], Z: m[11]},
	}, nil
}

// Apply transforms a point.
func (a Affine) Apply(p r3.Vec) r3.Vec {
	if a.Linear == nil {
		return r3.Add(p, a.Translation)
	}
	return r3.Add(a.Linear.MulVec(p), a.Translation)
}

// at reads the linear part, treating nil as identity.
func (a Affine) at(i, j int) float64 {
	if a.Linear == nil {
		if i == j {
			return 1
		}
		return 0
	}
	return a.Linear.At(i, j)
}

// Then returns the transform applying a first and b second.
func (a Affine) Then(b Affine) Affine {
	vals := make([]float64, 9)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += b.at(i, k) * a.at(k, j)
			}
			vals[i*3+j] = sum
		}
	}
	return Affine{Linear: r3.NewMat(vals), Translation: b.Apply(a.Translation)}
}

// Determinant returns the determinant of the linear part. A negative value
// means the transform mirrors and reverses face orientation.
func (a Affine) Determinant() float64 {
	return a.at(0, 0)*(a.at(1, 1)*a.at(2, 2)-a.at(1, 2)*a.at(2, 1)) -
		a.at(0, 1)*(a.at(1, 0)*a.at(2, 2)-a.at(1, 2)*a.at(2, 0)) +
		a.at(0, 2)*(a.at(1, 0)*a.at(2, 1)-a.at(1, 1)*a.at(2, 0))
}
