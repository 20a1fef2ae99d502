package mesh_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/surfmesh/kernel"
	"github.com/katalvlaran/surfmesh/mesh"
)

// SideOfSuite runs point classification with and without an AABB tree.
type SideOfSuite struct {
	suite.Suite
	withTree bool
	cube     *mesh.Mesh
}

func (s *SideOfSuite) SetupTest() {
	s.cube = triCube(s.T())
	if s.withTree {
		s.cube.BuildAABBTree()
	}
}

func (s *SideOfSuite) TestClassification() {
	cases := []struct {
		name string
		p    r3.Vec
		want kernel.BoundedSide
	}{
		{"center", r3.Vec{X: 0.5, Y: 0.5, Z: 0.5}, kernel.OnBoundedSide},
		{"near corner inside", r3.Vec{X: 0.01, Y: 0.02, Z: 0.03}, kernel.OnBoundedSide},
		{"just inside the lid", r3.Vec{X: 0.3, Y: 0.6, Z: 1 - 1e-12}, kernel.OnBoundedSide},
		{"far away", r3.Vec{X: 5, Y: 5, Z: 5}, kernel.OnUnboundedSide},
		{"just above the lid", r3.Vec{X: 0.5, Y: 0.5, Z: 1 + 1e-9}, kernel.OnUnboundedSide},
		{"on a face diagonal", r3.Vec{X: 0.5, Y: 0.5}, kernel.OnBoundary},
		{"on a face", r3.Vec{X: 0.25, Y: 0, Z: 0.6}, kernel.OnBoundary},
		{"on an edge", r3.Vec{X: 1, Y: 0.5}, kernel.OnBoundary},
		{"on a vertex", r3.Vec{X: 1, Y: 1, Z: 1}, kernel.OnBoundary},
	}
	for _, tc := range cases {
		s.Equal(tc.want, s.cube.SideOfTriangleMesh(tc.p), tc.name)
	}
}

func TestSideOfTriangleMesh(t *testing.T) {
	suite.Run(t, &SideOfSuite{})
	suite.Run(t, &SideOfSuite{withTree: true})
}

func TestSideOfTriangleMesh_QuadsAndFloatKernel(t *testing.T) {
	m := quadCube(t, mesh.WithKernel(kernel.Float()))
	assert.Equal(t, kernel.OnBoundedSide, m.SideOfTriangleMesh(r3.Vec{X: 0.4, Y: 0.7, Z: 0.2}))
	assert.Equal(t, kernel.OnUnboundedSide, m.SideOfTriangleMesh(r3.Vec{X: -0.4, Y: 0.7, Z: 0.2}))
}

func TestSideOfTriangleMesh_StaleTree(t *testing.T) {
	m := triCube(t)
	m.BuildAABBTree()
	m.Transform(kernel.Translation(r3.Vec{X: 10}))

	p := r3.Vec{X: 10.5, Y: 0.5, Z: 0.5}
	// the snapshot still describes the cube at the origin
	assert.Equal(t, kernel.OnUnboundedSide, m.SideOfTriangleMesh(p))
	m.BuildAABBTree()
	assert.Equal(t, kernel.OnBoundedSide, m.SideOfTriangleMesh(p))
	m.ReleaseAABBTree()
	assert.False(t, m.HasAABBTree())
	assert.Equal(t, kernel.OnBoundedSide, m.SideOfTriangleMesh(p))
}

func TestSideOfTriangleMesh_Empty(t *testing.T) {
	assert.Equal(t, kernel.OnUnboundedSide, mesh.NewMesh().SideOfTriangleMesh(r3.Vec{}))
}

func TestDoesSelfIntersect(t *testing.T) {
	assert.False(t, triCube(t).DoesSelfIntersect())
	assert.False(t, quadCube(t).DoesSelfIntersect())

	overlapping := triCube(t)
	require.NoError(t, overlapping.Join(cubeAt(t, 1, r3.Vec{X: 0.5, Y: 0.5, Z: 0.5}, false)))
	assert.True(t, overlapping.DoesSelfIntersect())
	assert.NotEmpty(t, overlapping.SelfIntersections())

	apart := triCube(t)
	require.NoError(t, apart.Join(cubeAt(t, 1, r3.Vec{X: 3}, false)))
	assert.False(t, apart.DoesSelfIntersect())
	assert.Empty(t, apart.SelfIntersections())
}

func TestDoesSelfIntersect_FoldedNeighbours(t *testing.T) {
	m := mesh.NewMesh()
	a := m.AddVertex(r3.Vec{})
	b := m.AddVertex(r3.Vec{X: 1})
	c := m.AddVertex(r3.Vec{Y: 1})
	d := m.AddVertex(r3.Vec{X: 1, Y: 1})
	f0 := m.AddTriangle(a, b, c)
	f1 := m.AddTriangle(b, a, d) // folded back onto the first
	require.NotEqual(t, mesh.NullFace, f1)

	assert.True(t, m.DoesSelfIntersect())
	assert.Equal(t, [][2]mesh.FaceHandle{{f0, f1}}, m.SelfIntersections())

	flat := mesh.NewMesh()
	a = flat.AddVertex(r3.Vec{})
	b = flat.AddVertex(r3.Vec{X: 1})
	c = flat.AddVertex(r3.Vec{Y: 1})
	d = flat.AddVertex(r3.Vec{X: 1, Y: -1})
	flat.AddTriangle(a, b, c)
	require.NotEqual(t, mesh.NullFace, flat.AddTriangle(b, a, d))
	assert.False(t, flat.DoesSelfIntersect())
}

func TestDoesBoundAVolume(t *testing.T) {
	assert.True(t, triCube(t).DoesBoundAVolume())
	assert.True(t, quadCube(t).DoesBoundAVolume())
	assert.False(t, mesh.NewMesh().DoesBoundAVolume())
	assert.False(t, cubeAt(t, 1, r3.Vec{}, true).DoesBoundAVolume(), "inside out")

	open := triCube(t)
	require.NoError(t, open.RemoveFace(3))
	assert.False(t, open.DoesBoundAVolume())

	// a hollow shell: outer outward, inner inward
	shell := cubeAt(t, 4, r3.Vec{X: -1.5, Y: -1.5, Z: -1.5}, false)
	require.NoError(t, shell.Join(cubeAt(t, 1, r3.Vec{}, true)))
	assert.True(t, shell.DoesBoundAVolume())

	nested := cubeAt(t, 4, r3.Vec{X: -1.5, Y: -1.5, Z: -1.5}, false)
	require.NoError(t, nested.Join(triCube(t)))
	assert.False(t, nested.DoesBoundAVolume(), "inner piece must face inward")

	crossing := triCube(t)
	require.NoError(t, crossing.Join(cubeAt(t, 1, r3.Vec{X: 0.5, Y: 0.5, Z: 0.5}, false)))
	assert.False(t, crossing.DoesBoundAVolume())
}

func TestDoIntersect(t *testing.T) {
	a := triCube(t)
	assert.True(t, a.DoIntersect(cubeAt(t, 1, r3.Vec{X: 0.5, Y: 0.5, Z: 0.5}, false), false))
	assert.True(t, a.DoIntersect(cubeAt(t, 1, r3.Vec{X: 1}, false), false), "touching faces")
	assert.False(t, a.DoIntersect(cubeAt(t, 1, r3.Vec{X: 2}, false), false))
	assert.False(t, a.DoIntersect(nil, true))

	big := cubeAt(t, 4, r3.Vec{X: -1.5, Y: -1.5, Z: -1.5}, false)
	assert.False(t, a.DoIntersect(big, false))
	assert.True(t, a.DoIntersect(big, true))
	assert.True(t, big.DoIntersect(a, true))

	open := cubeAt(t, 4, r3.Vec{X: -1.5, Y: -1.5, Z: -1.5}, false)
	require.NoError(t, open.RemoveFace(0))
	assert.False(t, a.DoIntersect(open, true), "an open mesh bounds nothing")
	assert.False(t, open.DoIntersect(a, true), "and it surrounds a without lying inside it")
}
