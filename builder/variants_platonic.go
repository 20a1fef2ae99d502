// SPDX-License-Identifier: MIT
// Package: surfmesh/builder
//
// variants_platonic.go - canonical data for the five Platonic solids.
//
// Design:
//   - Single source of truth for vertex positions and face lists.
//   - Tetrahedron, cube and octahedron are literal tables.
//   - Icosahedron faces are derived from its golden-ratio vertices (every
//     triple of mutually adjacent vertices); the dodecahedron is its dual.
//   - Every solid is normalized to the unit sphere and its faces oriented
//     outward once, at package init, and never mutated afterwards.

package builder

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/surfmesh/kernel"
)

// PlatonicName enumerates the five Platonic solids.
type PlatonicName int

// String provides a readable identifier for logs and errors.
func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "Tetrahedron"
	case Cube:
		return "Cube"
	case Octahedron:
		return "Octahedron"
	case Dodecahedron:
		return "Dodecahedron"
	case Icosahedron:
		return "Icosahedron"
	default:
		return "Unknown"
	}
}

// Enum values (stable ordering).
const (
	Tetrahedron  PlatonicName = iota // V=4,  F=4 triangles
	Cube                             // V=8,  F=6 quads
	Octahedron                       // V=6,  F=8 triangles
	Dodecahedron                     // V=20, F=12 pentagons
	Icosahedron                      // V=12, F=20 triangles
)

// solid is a polygon soup over indexed points.
type solid struct {
	points []r3.Vec
	faces  [][]int
}

var platonicSolids = func() map[PlatonicName]solid {
	ico := icosahedron()
	return map[PlatonicName]solid{
		Tetrahedron:  normalized(tetrahedron()),
		Cube:         normalized(cube()),
		Octahedron:   normalized(octahedron()),
		Dodecahedron: normalized(dualOf(ico)),
		Icosahedron:  normalized(ico),
	}
}()

func tetrahedron() solid {
	return solid{
		points: []r3.Vec{{X: 1, Y: 1, Z: 1}, {X: 1, Y: -1, Z: -1}, {X: -1, Y: 1, Z: -1}, {X: -1, Y: -1, Z: 1}},
		faces:  [][]int{{0, 1, 2}, {0, 1, 3}, {0, 2, 3}, {1, 2, 3}},
	}
}

// cube uses the bit layout of the corners of [-1,1]^3 walked as
// bottom 0-1-2-3, top 4-5-6-7.
func cube() solid {
	return solid{
		points: []r3.Vec{
			{X: -1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: -1}, {X: 1, Y: 1, Z: -1}, {X: -1, Y: 1, Z: -1},
			{X: -1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: 1},
		},
		faces: [][]int{
			{0, 1, 2, 3}, {4, 5, 6, 7},
			{0, 1, 5, 4}, {3, 2, 6, 7},
			{0, 3, 7, 4}, {1, 2, 6, 5},
		},
	}
}

// octahedron: poles ±X, ±Y, ±Z at indices 0..5.
func octahedron() solid {
	return solid{
		points: []r3.Vec{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}, {Z: 1}, {Z: -1}},
		faces: [][]int{
			{0, 2, 4}, {0, 4, 3}, {0, 3, 5}, {0, 5, 2},
			{1, 4, 2}, {1, 3, 4}, {1, 5, 3}, {1, 2, 5},
		},
	}
}

// icosahedron builds the 12 vertices (0,±1,±φ) and cyclic permutations.
// Adjacent vertices lie at distance 2; every such triangle is a face.
func icosahedron() solid {
	phi := (1 + math.Sqrt(5)) / 2
	var pts []r3.Vec
	for _, a := range []float64{-1, 1} {
		for _, b := range []float64{-phi, phi} {
			pts = append(pts, r3.Vec{Y: a, Z: b}, r3.Vec{X: a, Y: b}, r3.Vec{X: b, Z: a})
		}
	}
	adjacent := func(i, j int) bool {
		return math.Abs(r3.Norm2(r3.Sub(pts[i], pts[j]))-4) < 1e-9
	}
	var faces [][]int
	for i := range pts {
		for j := i + 1; j < len(pts); j++ {
			if !adjacent(i, j) {
				continue
			}
			for k := j + 1; k < len(pts); k++ {
				if adjacent(i, k) && adjacent(j, k) {
					faces = append(faces, []int{i, j, k})
				}
			}
		}
	}

	return solid{points: pts, faces: faces}
}

// dualOf places one vertex at each face centroid of s and one face around
// each vertex of s, corners sorted by angle about the vertex direction.
// s must be convex and centered at the origin.
func dualOf(s solid) solid {
	d := solid{points: make([]r3.Vec, len(s.faces))}
	around := make([][]int, len(s.points))
	for f, face := range s.faces {
		var c r3.Vec
		for _, v := range face {
			c = r3.Add(c, s.points[v])
			around[v] = append(around[v], f)
		}
		d.points[f] = r3.Scale(1/float64(len(face)), c)
	}
	for v, ring := range around {
		axis := r3.Unit(s.points[v])
		u := r3.Unit(r3.Sub(d.points[ring[0]], r3.Scale(r3.Dot(d.points[ring[0]], axis), axis)))
		w := r3.Cross(axis, u)
		angle := func(f int) float64 {
			p := d.points[f]
			return math.Atan2(r3.Dot(p, w), r3.Dot(p, u))
		}
		sort.Slice(ring, func(i, j int) bool { return angle(ring[i]) < angle(ring[j]) })
		d.faces = append(d.faces, ring)
	}

	return d
}

// normalized projects s onto the unit sphere and reverses every face whose
// normal points towards the origin. Faces are planar and convex.
func normalized(s solid) solid {
	out := solid{points: make([]r3.Vec, len(s.points)), faces: make([][]int, len(s.faces))}
	for i, p := range s.points {
		out.points[i] = r3.Unit(p)
	}
	for i, face := range s.faces {
		tri := kernel.Triangle{out.points[face[0]], out.points[face[1]], out.points[face[2]]}
		f := append([]int(nil), face...)
		if r3.Dot(tri.Normal(), tri.Centroid()) < 0 {
			for a, b := 0, len(f)-1; a < b; a, b = a+1, b-1 {
				f[a], f[b] = f[b], f[a]
			}
		}
		out.faces[i] = f
	}

	return out
}
