// Package builder provides internal helpers used by Constructor
// implementations to emit polygons into a mesh.
package builder

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/surfmesh/mesh"
)

// addPolygons appends one vertex per point (placed by cfg) and one face per
// polygon, in input order. Polygons index into pts. With cfg.triangulate,
// each polygon is fan-split from its first corner.
//
// Complexity: O(len(pts) + Σ|face|·d) where d is the typical corner degree.
func addPolygons(m *mesh.Mesh, cfg builderConfig, method string, pts []r3.Vec, faces [][]int) error {
	vs := make([]mesh.VertexHandle, len(pts))
	for i, p := range pts {
		vs[i] = m.AddVertex(cfg.place(p))
	}

	add := func(i int, corners ...mesh.VertexHandle) error {
		if _, err := m.AddFace(corners...); err != nil {
			return fmt.Errorf("%s: face %d: %w: %w", method, i, ErrConstructFailed, err)
		}
		return nil
	}
	corners := make([]mesh.VertexHandle, 0, 5)
	for i, f := range faces {
		if cfg.triangulate {
			for k := 1; k+1 < len(f); k++ {
				if err := add(i, vs[f[0]], vs[f[k]], vs[f[k+1]]); err != nil {
					return err
				}
			}
			continue
		}
		corners = corners[:0]
		for _, idx := range f {
			corners = append(corners, vs[idx])
		}
		if err := add(i, corners...); err != nil {
			return err
		}
	}

	return nil
}
