// SPDX-License-Identifier: MIT
// Package: surfmesh/builder
//
// impl_platonic.go - implementation of the PlatonicSolid(name) constructor.
//
// Contract:
//   - name ∈ {Tetrahedron, Cube, Octahedron, Dodecahedron, Icosahedron};
//     anything else → ErrOptionViolation, nothing added.
//   - Vertices lie on the unit sphere before WithScale/WithOffset and are
//     added in the order of variants_platonic.go.
//   - Faces are oriented outward, so the result bounds a positive volume.
//
// Complexity:
//   - Time: O(V+F) for the selected solid (V≤20, F≤20).

package builder

import (
	"fmt"

	"github.com/katalvlaran/surfmesh/mesh"
)

// PlatonicSolid returns a Constructor that appends the chosen solid.
func PlatonicSolid(name PlatonicName) Constructor {
	return func(m *mesh.Mesh, cfg builderConfig) error {
		s, ok := platonicSolids[name]
		if !ok {
			return fmt.Errorf("%s: unknown solid %v: %w", MethodPlatonicSolid, name, ErrOptionViolation)
		}

		return addPolygons(m, cfg, MethodPlatonicSolid, s.points, s.faces)
	}
}
