// SPDX-License-Identifier: MIT
// Package: surfmesh/kernel
//
// kernel.go - the Kernel capability and its two implementations.

package kernel

import (
	"math"

	geor3 "github.com/golang/geo/r3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Kernel is the arithmetic back-end injected into a mesh at construction.
// Implementations must be stateless and safe for concurrent use.
type Kernel interface {
	// Name identifies the kernel in logs ("float", "exact").
	Name() string

	// Orientation returns the sign of ((b-a)×(c-a))·(d-a).
	Orientation(a, b, c, d r3.Vec) Sign

	// Distance returns the Euclidean distance between two points.
	Distance(a, b r3.Vec) float64
}

// Float returns the fast inexact kernel.
func Float() Kernel { return floatKernel{} }

// Exact returns the filtered exact kernel.
func Exact() Kernel { return exactKernel{} }

type floatKernel struct{}

func (floatKernel) Name() string { return "float" }

func (floatKernel) Orientation(a, b, c, d r3.Vec) Sign {
	det := r3.Dot(r3.Cross(r3.Sub(b, a), r3.Sub(c, a)), r3.Sub(d, a))
	return signOf(det)
}

func (floatKernel) Distance(a, b r3.Vec) float64 { return r3.Norm(r3.Sub(a, b)) }

type exactKernel struct{}

func (exactKernel) Name() string { return "exact" }

// o3dErrBound is Shewchuk's first-stage bound for orient3d: (7 + 56ε)ε.
const o3dErrBound = (7.0 + 56.0*epsilon) * epsilon

// epsilon is half an ulp of 1.0 for float64.
const epsilon = 1.1102230246251565e-16

func (exactKernel) Orientation(a, b, c, d r3.Vec) Sign {
	adx, ady, adz := a.X-d.X, a.Y-d.Y, a.Z-d.Z
	bdx, bdy, bdz := b.X-d.X, b.Y-d.Y, b.Z-d.Z
	cdx, cdy, cdz := c.X-d.X, c.Y-d.Y, c.Z-d.Z

	bdxcdy, cdxbdy := bdx*cdy, cdx*bdy
	cdxady, adxcdy := cdx*ady, adx*cdy
	adxbdy, bdxady := adx*bdy, bdx*ady

	// det(a-d, b-d, c-d) has the opposite sign of our convention.
	det := adz*(bdxcdy-cdxbdy) + bdz*(cdxady-adxcdy) + cdz*(adxbdy-bdxady)
	permanent := (math.Abs(bdxcdy)+math.Abs(cdxbdy))*math.Abs(adz) +
		(math.Abs(cdxady)+math.Abs(adxcdy))*math.Abs(bdz) +
		(math.Abs(adxbdy)+math.Abs(bdxady))*math.Abs(cdz)
	bound := o3dErrBound * permanent
	if det > bound || -det > bound {
		return -signOf(det)
	}

	return preciseOrientation(a, b, c, d)
}

func (exactKernel) Distance(a, b r3.Vec) float64 { return r3.Norm(r3.Sub(a, b)) }

// preciseOrientation evaluates the determinant in arbitrary precision.
func preciseOrientation(a, b, c, d r3.Vec) Sign {
	pa := precise(a)
	u := precise(b).Sub(pa)
	v := precise(c).Sub(pa)
	w := precise(d).Sub(pa)
	return Sign(u.Cross(v).Dot(w).Sign())
}

func precise(p r3.Vec) geor3.PreciseVector {
	return geor3.PreciseVectorFromVector(geor3.Vector{X: p.X, Y: p.Y, Z: p.Z})
}

func signOf(x float64) Sign {
	switch {
	case x > 0:
		return Positive
	case x < 0:
		return Negative
	default:
		return Zero
	}
}
