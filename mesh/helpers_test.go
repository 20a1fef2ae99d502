// SPDX-License-Identifier: MIT
// Package mesh_test contains shared fixtures for surfmesh/mesh tests.
//
// Purpose:
//   - Provide small deterministic meshes (triangle, fan, cube, tetrahedron).
//   - Keep handle expectations explicit: fixtures are built in a fixed order.

package mesh_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/surfmesh/mesh"
)

// Unit cube corners; index = position in the slice.
var cubePoints = []r3.Vec{
	{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0},
	{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 0, Y: 1, Z: 1},
}

// Outward counter-clockwise quads: bottom, top, front, back, left, right.
var cubeQuads = []int{
	0, 3, 2, 1,
	4, 5, 6, 7,
	0, 1, 5, 4,
	3, 7, 6, 2,
	0, 4, 7, 3,
	1, 2, 6, 5,
}

// cubeTriangles splits each quad (a,b,c,d) into (a,b,c) and (a,c,d).
func cubeTriangles() []int {
	out := make([]int, 0, 36)
	for i := 0; i < len(cubeQuads); i += 4 {
		a, b, c, d := cubeQuads[i], cubeQuads[i+1], cubeQuads[i+2], cubeQuads[i+3]
		out = append(out, a, b, c, a, c, d)
	}
	return out
}

func reversed(idx []int, arity int) []int {
	out := make([]int, len(idx))
	for i := 0; i < len(idx); i += arity {
		for k := 0; k < arity; k++ {
			out[i+k] = idx[i+arity-1-k]
		}
	}
	return out
}

func shifted(pts []r3.Vec, scale float64, off r3.Vec) []r3.Vec {
	out := make([]r3.Vec, len(pts))
	for i, p := range pts {
		out[i] = r3.Add(r3.Scale(scale, p), off)
	}
	return out
}

// quadCube returns the unit cube as 6 quads.
func quadCube(t testing.TB, opts ...mesh.Option) *mesh.Mesh {
	t.Helper()
	m := mesh.NewMesh(opts...)
	skipped, err := m.CreateTriangleQuadMesh(cubePoints, nil, cubeQuads)
	require.NoError(t, err)
	require.Zero(t, skipped)
	return m
}

// triCube returns the unit cube as 12 triangles.
func triCube(t testing.TB, opts ...mesh.Option) *mesh.Mesh {
	t.Helper()
	return cubeAt(t, 1, r3.Vec{}, false, opts...)
}

// cubeAt returns a triangulated cube scaled and translated from the unit
// cube, optionally with inward orientation.
func cubeAt(t testing.TB, scale float64, off r3.Vec, inward bool, opts ...mesh.Option) *mesh.Mesh {
	t.Helper()
	tris := cubeTriangles()
	if inward {
		tris = reversed(tris, 3)
	}
	m := mesh.NewMesh(opts...)
	skipped, err := m.CreateTriangleQuadMesh(shifted(cubePoints, scale, off), tris, nil)
	require.NoError(t, err)
	require.Zero(t, skipped)
	return m
}

// singleTriangle returns one triangle over three fresh vertices.
func singleTriangle(t testing.TB) (*mesh.Mesh, [3]mesh.VertexHandle, mesh.FaceHandle) {
	t.Helper()
	m := mesh.NewMesh()
	v := [3]mesh.VertexHandle{
		m.AddVertex(r3.Vec{}),
		m.AddVertex(r3.Vec{X: 1}),
		m.AddVertex(r3.Vec{Y: 1}),
	}
	f, err := m.AddFace(v[0], v[1], v[2])
	require.NoError(t, err)
	return m, v, f
}

// requireValid fails the test if the store audit reports a violation.
func requireValid(t testing.TB, m *mesh.Mesh) {
	t.Helper()
	require.NoError(t, m.IsValid())
}

// panicErr runs fn and returns the error value it panicked with, or nil.
func panicErr(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			err = errors.New("non-error panic")
		}
	}()
	fn()
	return nil
}
