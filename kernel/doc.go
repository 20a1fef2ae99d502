// Package kernel provides the numeric capability consumed by the surface
// mesh: points and vectors (gonum spatial/r3), axis-aligned boxes, affine
// transforms and the orientation predicate every geometric test in this
// module is built on.
//
// Two kernels are provided:
//
//	Float()  - plain float64 determinant; fast, inexact near degeneracy.
//	Exact()  - float64 evaluation guarded by a static error bound, falling
//	           back to arbitrary precision (golang/geo r3.PreciseVector)
//	           when the sign cannot be certified.
//
// Derived predicates (SegmentTriangle, TrianglesIntersect, PointInTriangle,
// CoplanarOrientation) only ever call Kernel.Orientation for their sign
// decisions, so they inherit the robustness of the kernel they are given.
//
// Orientation convention:
//
//	Orientation(a,b,c,d) = sign( ((b-a) × (c-a)) · (d-a) )
//
// Positive means d lies on the side the normal of the counter-clockwise
// triangle (a,b,c) points to.
package kernel
