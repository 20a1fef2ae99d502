// SPDX-License-Identifier: MIT
// Package: surfmesh/builder
//
// impl_grid.go - implementation of the Grid(rows, cols) constructor.
//
// Canonical model:
//   - An open patch of rows×cols unit quads in the z=0 plane, normals +Z.
//   - (rows+1)×(cols+1) vertices in row-major order; vertex (r,c) sits at
//     (c, r, 0) and has index r*(cols+1)+c.
//   - Cells in row-major order; cell (r,c) is the quad
//     (r,c) → (r,c+1) → (r+1,c+1) → (r+1,c).
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices, nothing added).
//
// Complexity:
//   - Time: O(rows*cols). Space: O(rows*cols) for the index table.

package builder

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/surfmesh/mesh"
)

// Grid returns a Constructor that appends a rows×cols quad patch.
func Grid(rows, cols int) Constructor {
	return func(m *mesh.Mesh, cfg builderConfig) error {
		if err := validateMin(MethodGrid, "rows", rows, MinGridDim); err != nil {
			return err
		}
		if err := validateMin(MethodGrid, "cols", cols, MinGridDim); err != nil {
			return err
		}

		stride := cols + 1
		pts := make([]r3.Vec, 0, (rows+1)*stride)
		for r := 0; r <= rows; r++ {
			for c := 0; c <= cols; c++ {
				pts = append(pts, r3.Vec{X: float64(c), Y: float64(r)})
			}
		}
		cells := make([][]int, 0, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				a := r*stride + c
				cells = append(cells, []int{a, a + 1, a + stride + 1, a + stride})
			}
		}

		return addPolygons(m, cfg, MethodGrid, pts, cells)
	}
}
