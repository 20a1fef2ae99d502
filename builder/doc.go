// Package builder provides deterministic, functional-options-driven mesh
// fixtures for tests, benchmarks and examples.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildMesh(mopts, bopts, cons...): new mesh, constructors applied in order.
//     – BuildInto(m, bopts, cons...): same, against an existing mesh.
//   - Constructors (each appends a new connected component):
//     – PlatonicSolid(name): the five regular solids on the unit sphere.
//     – UnitCube(triangulated): the cube [0,1]^3 as quads or triangles.
//     – Grid(rows, cols): an open planar patch of unit quads.
//     – RandomSoup(n): n unconnected random triangles (needs an RNG).
//   - Options:
//     – WithScale, WithOffset: place the fixture.
//     – WithTriangulate: fan-split polygons into triangles.
//     – WithSeed, WithRand: RNG for stochastic fixtures.
//
// Guarantees:
//
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors validate before adding anything and return sentinel errors
//     (ErrTooFewVertices, ErrNeedRandSource, ErrOptionViolation,
//     ErrConstructFailed), matchable with errors.Is.
//   - Same inputs, options and seed give identical meshes, element for element.
package builder
