// SPDX-License-Identifier: MIT
// Package: surfmesh/builder
//
// impl_random_soup.go - implementation of the RandomSoup(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); cfg.rng != nil (else ErrNeedRandSource).
//   - Appends n triangles that share no vertex. Corners are drawn uniformly
//     from [0,1)^3, three coordinates per corner in X, Y, Z order, before
//     WithScale/WithOffset.
//   - Triangles may intersect one another geometrically.
//
// Determinism:
//   - Same seed and call order give the same soup.

package builder

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/surfmesh/mesh"
)

// RandomSoup returns a Constructor that appends n unconnected triangles.
func RandomSoup(n int) Constructor {
	return func(m *mesh.Mesh, cfg builderConfig) error {
		if err := validateMin(MethodRandomSoup, "n", n, MinSoupTriangles); err != nil {
			return err
		}
		if err := validateRand(MethodRandomSoup, cfg); err != nil {
			return err
		}

		pts := make([]r3.Vec, 3*n)
		for i := range pts {
			pts[i] = r3.Vec{X: cfg.rng.Float64(), Y: cfg.rng.Float64(), Z: cfg.rng.Float64()}
		}
		tris := make([][]int, n)
		for i := range tris {
			tris[i] = []int{3 * i, 3*i + 1, 3*i + 2}
		}

		return addPolygons(m, cfg, MethodRandomSoup, pts, tris)
	}
}
