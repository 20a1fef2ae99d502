// SPDX-License-Identifier: MIT
// Package: surfmesh/builder
//
// impl_cube.go - implementation of the UnitCube(triangulated) constructor.
//
// Vertex order (index = bits zyx of the corner, walked as a ring per layer):
//   0 (0,0,0)  1 (1,0,0)  2 (1,1,0)  3 (0,1,0)
//   4 (0,0,1)  5 (1,0,1)  6 (1,1,1)  7 (0,1,1)
//
// Face order: bottom, top, front, back, left, right; each counter-clockwise
// seen from outside. Triangulated cubes split quad (a,b,c,d) into (a,b,c)
// and (a,c,d).

package builder

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/surfmesh/mesh"
)

var unitCubePoints = []r3.Vec{
	{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0},
	{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 0, Y: 1, Z: 1},
}

var unitCubeQuads = [][]int{
	{0, 3, 2, 1},
	{4, 5, 6, 7},
	{0, 1, 5, 4},
	{3, 7, 6, 2},
	{0, 4, 7, 3},
	{1, 2, 6, 5},
}

// UnitCube returns a Constructor that appends the cube [0,1]^3 as 6 quads,
// or as 12 triangles when triangulated (or WithTriangulate) is set.
func UnitCube(triangulated bool) Constructor {
	return func(m *mesh.Mesh, cfg builderConfig) error {
		cfg.triangulate = cfg.triangulate || triangulated

		return addPolygons(m, cfg, MethodUnitCube, unitCubePoints, unitCubeQuads)
	}
}
