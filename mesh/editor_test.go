package mesh_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/surfmesh/mesh"
)

func TestAddFace_SingleTriangle(t *testing.T) {
	m, v, f := singleTriangle(t)
	requireValid(t, m)

	assert.Equal(t, 3, m.VertexCount())
	assert.Equal(t, 3, m.EdgeCount())
	assert.Equal(t, 6, m.HalfedgeCount())
	assert.Equal(t, 1, m.FaceCount())
	assert.Equal(t, 3, m.BorderEdgeCount())
	assert.False(t, m.IsClosed())
	assert.Equal(t, []mesh.VertexHandle{v[0], v[1], v[2]}, m.FaceVertices(f))

	h := m.FindHalfedge(v[0], v[1])
	require.NotEqual(t, mesh.NullHalfedge, h)
	assert.Equal(t, f, m.Face(h))
	assert.Equal(t, mesh.Border, m.Face(m.Opposite(h)))
	assert.Equal(t, v[0], m.Source(h))
	assert.Equal(t, v[1], m.Target(h))
	assert.Equal(t, v[2], m.Target(m.Next(h)))
	assert.Equal(t, v[0], m.Target(m.Next(m.Next(h))))
	assert.Equal(t, m.Prev(h), m.Next(m.Next(h)))
	assert.Equal(t, m.Edge(h), m.Edge(m.Opposite(h)))
}

func TestAddFace_SharedEdge(t *testing.T) {
	m, v, _ := singleTriangle(t)
	v3 := m.AddVertex(r3.Vec{X: -1, Y: 1})
	f, err := m.AddFace(v[0], v[2], v3)
	require.NoError(t, err)
	requireValid(t, m)

	assert.Equal(t, 5, m.EdgeCount())
	assert.Equal(t, 4, m.BorderEdgeCount())
	shared := m.Edge(m.FindHalfedge(v[0], v[2]))
	assert.False(t, m.EdgeIsBorder(shared))
	assert.Equal(t, f, m.Face(m.FindHalfedge(v[0], v[2])))
	assert.Equal(t, 3, m.VertexDegree(v[0]))
}

func TestAddFace_RejectsNonManifold(t *testing.T) {
	m, v, _ := singleTriangle(t)
	v3 := m.AddVertex(r3.Vec{Z: 1})
	v4 := m.AddVertex(r3.Vec{Z: -1})

	// v0→v1 already bounds a face
	before := m.ToOFF()
	_, err := m.AddFace(v[0], v[1], v3)
	assert.ErrorIs(t, err, mesh.ErrNonManifoldEdit)
	assert.Equal(t, mesh.NullFace, m.AddTriangle(v[0], v[1], v4))
	assert.Equal(t, before, m.ToOFF(), "rejected edit must leave the store untouched")
	assert.Equal(t, 3, m.EdgeCount())
	requireValid(t, m)

	// the opposite side is free once, then taken
	require.NotEqual(t, mesh.NullFace, m.AddTriangle(v[1], v[0], v3))
	assert.Equal(t, mesh.NullFace, m.AddTriangle(v[1], v[0], v4))
	assert.Equal(t, 2, m.FaceCount())
	requireValid(t, m)
}

func TestAddFace_RejectsInteriorVertex(t *testing.T) {
	m := triCube(t)
	a := m.AddVertex(r3.Vec{X: 5})
	b := m.AddVertex(r3.Vec{X: 6})
	edges := m.EdgeCount()

	_, err := m.AddFace(0, a, b)
	assert.ErrorIs(t, err, mesh.ErrNonManifoldEdit)
	assert.Equal(t, edges, m.EdgeCount())
	assert.True(t, m.VertexIsIsolated(a))
	requireValid(t, m)
}

func TestAddFace_BadArguments(t *testing.T) {
	m, v, _ := singleTriangle(t)

	_, err := m.AddFace(v[0], v[1])
	assert.ErrorIs(t, err, mesh.ErrNonManifoldEdit)

	_, err = m.AddFace(v[0], v[1], v[1])
	assert.ErrorIs(t, err, mesh.ErrNonManifoldEdit)

	_, err = m.AddFace(v[0], v[1], 42)
	assert.ErrorIs(t, err, mesh.ErrInvalidHandle)

	_, err = m.AddFace(v[0], mesh.NullVertex, v[2])
	assert.ErrorIs(t, err, mesh.ErrInvalidHandle)
	assert.Equal(t, 1, m.FaceCount())
}

func TestAddFace_FanClosesAroundVertex(t *testing.T) {
	m := mesh.NewMesh()
	c := m.AddVertex(r3.Vec{})
	ring := []mesh.VertexHandle{
		m.AddVertex(r3.Vec{X: 1}),
		m.AddVertex(r3.Vec{Y: 1}),
		m.AddVertex(r3.Vec{X: -1}),
		m.AddVertex(r3.Vec{Y: -1}),
	}
	// two wedges touching only at c, then the gaps
	require.NotEqual(t, mesh.NullFace, m.AddTriangle(c, ring[0], ring[1]))
	require.NotEqual(t, mesh.NullFace, m.AddTriangle(c, ring[2], ring[3]))
	requireValid(t, m)
	require.NotEqual(t, mesh.NullFace, m.AddTriangle(c, ring[1], ring[2]))
	requireValid(t, m)
	require.NotEqual(t, mesh.NullFace, m.AddTriangle(c, ring[3], ring[0]))
	requireValid(t, m)

	assert.Equal(t, 4, m.VertexDegree(c))
	assert.False(t, m.VertexIsBorder(c, false))
	assert.Len(t, m.VertexFaces(c), 4)
	assert.Equal(t, 4, m.BorderEdgeCount())
	assert.Len(t, m.BorderLoops(), 1)
}

func TestAddFace_ClosesGapBesideLooseParts(t *testing.T) {
	// c carries the wedges (c,r0,r1) and (c,r2,r3) plus a loose part added
	// last, which lands in the gap between r2 and r1
	cases := []struct {
		name     string
		loose    func(t *testing.T, m *mesh.Mesh, c mesh.VertexHandle)
		edges    int
		degree   int
		comps    int
	}{
		{
			name: "dangling edge",
			loose: func(t *testing.T, m *mesh.Mesh, c mesh.VertexHandle) {
				x := m.AddVertex(r3.Vec{Z: 1})
				_, err := m.AddEdge(c, x)
				require.NoError(t, err)
			},
			edges: 8, degree: 5, comps: 1,
		},
		{
			name: "second fan",
			loose: func(t *testing.T, m *mesh.Mesh, c mesh.VertexHandle) {
				a := m.AddVertex(r3.Vec{X: 1, Z: 1})
				b := m.AddVertex(r3.Vec{Y: 1, Z: 1})
				require.NotEqual(t, mesh.NullFace, m.AddTriangle(c, a, b))
			},
			edges: 10, degree: 6, comps: 2,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := mesh.NewMesh()
			c := m.AddVertex(r3.Vec{})
			r := []mesh.VertexHandle{
				m.AddVertex(r3.Vec{X: 1}),
				m.AddVertex(r3.Vec{Y: 1}),
				m.AddVertex(r3.Vec{X: -1}),
				m.AddVertex(r3.Vec{Y: -1}),
			}
			require.NotEqual(t, mesh.NullFace, m.AddTriangle(c, r[0], r[1]))
			require.NotEqual(t, mesh.NullFace, m.AddTriangle(c, r[2], r[3]))
			tc.loose(t, m, c)
			requireValid(t, m)

			// the loose part is moved to the gap between r0 and r3
			_, err := m.AddFace(c, r[1], r[2])
			require.NoError(t, err)
			requireValid(t, m)
			assert.Equal(t, tc.edges, m.EdgeCount())
			assert.Equal(t, tc.degree, m.VertexDegree(c))
			assert.Len(t, m.ConnectedComponents(), tc.comps)
			assert.True(t, m.VertexIsBorder(c, false))

			// closing the last gap would trap the loose part
			before, edges := m.ToOFF(), m.EdgeCount()
			_, err = m.AddFace(c, r[3], r[0])
			assert.ErrorIs(t, err, mesh.ErrNonManifoldEdit)
			assert.Equal(t, before, m.ToOFF())
			assert.Equal(t, edges, m.EdgeCount())
			requireValid(t, m)
		})
	}
}

func TestAddFace_RejectsGapHoldingLooseParts(t *testing.T) {
	m := mesh.NewMesh()
	v := make([]mesh.VertexHandle, 7)
	for i := range v {
		v[i] = m.AddVertex(r3.Vec{X: float64(i % 3), Y: float64(i / 3), Z: float64(i % 2)})
	}
	require.NotEqual(t, mesh.NullFace, m.AddTriangle(v[1], v[2], v[3]))
	require.NotEqual(t, mesh.NullFace, m.AddTriangle(v[0], v[1], v[3]))
	_, err := m.AddEdge(v[1], v[4])
	require.NoError(t, err)
	require.NotEqual(t, mesh.NullFace, m.AddTriangle(v[1], v[5], v[6]))
	requireValid(t, m)
	outgoing := m.VertexOutgoing(v[1])

	// every other gap at v1 lies between 2→1 and 1→0
	before, edges := m.ToOFF(), m.EdgeCount()
	_, err = m.AddFace(v[0], v[2], v[1])
	assert.ErrorIs(t, err, mesh.ErrNonManifoldEdit)
	assert.Equal(t, before, m.ToOFF())
	assert.Equal(t, edges, m.EdgeCount())
	assert.Equal(t, outgoing, m.VertexOutgoing(v[1]))
	requireValid(t, m)

	require.NoError(t, m.RemoveVertex(v[1]))
	requireValid(t, m)
	assert.Equal(t, 6, m.VertexCount())
	assert.Zero(t, m.EdgeCount())
	assert.Zero(t, m.FaceCount())
	m.CollectGarbage()
	requireValid(t, m)
	assert.False(t, m.HasGarbage())
}

func TestEdits_RandomSequenceStaysValid(t *testing.T) {
	for _, recycle := range []bool{false, true} {
		rng := rand.New(rand.NewSource(157))
		m := mesh.NewMesh(mesh.WithRecycleGarbage(recycle))
		addVertex := func() {
			m.AddVertex(r3.Vec{X: rng.Float64(), Y: rng.Float64(), Z: rng.Float64()})
		}
		pick := func() mesh.VertexHandle {
			vs := m.Vertices()
			return vs[rng.Intn(len(vs))]
		}

		for step := 0; step < 800; step++ {
			for m.VertexCount() < 6 {
				addVertex()
			}
			switch op := rng.Intn(12); {
			case op < 6:
				vs := []mesh.VertexHandle{pick(), pick(), pick()}
				if op == 5 {
					vs = append(vs, pick())
				}
				before, edges := m.ToOFF(), m.EdgeCount()
				if _, err := m.AddFace(vs...); err != nil {
					require.ErrorIs(t, err, mesh.ErrNonManifoldEdit)
					require.Equal(t, before, m.ToOFF(), "step %d", step)
					require.Equal(t, edges, m.EdgeCount(), "step %d", step)
				}
			case op == 6:
				edges := m.EdgeCount()
				if _, err := m.AddEdge(pick(), pick()); err != nil {
					require.ErrorIs(t, err, mesh.ErrNonManifoldEdit)
					require.Equal(t, edges, m.EdgeCount(), "step %d", step)
				}
			case op == 7:
				if fs := m.Faces(); len(fs) > 0 {
					require.NoError(t, m.RemoveFace(fs[rng.Intn(len(fs))]))
				}
			case op == 8:
				if es := m.Edges(); len(es) > 0 {
					require.NoError(t, m.RemoveEdge(es[rng.Intn(len(es))]))
				}
			case op == 9:
				require.NoError(t, m.RemoveVertex(pick()))
			case op == 10:
				addVertex()
			default:
				m.CollectGarbage()
				require.False(t, m.HasGarbage())
			}
			require.NoError(t, m.IsValid(), "recycle=%v step %d", recycle, step)
		}
	}
}

func TestCreateTriangleQuadMesh_AnyFaceOrder(t *testing.T) {
	// top and bottom first: the sides must then relink two border loops
	order := []int{1, 0, 2, 3, 5, 4}
	quads := make([]int, 0, len(cubeQuads))
	for _, f := range order {
		quads = append(quads, cubeQuads[4*f:4*f+4]...)
	}
	m := mesh.NewMesh()
	skipped, err := m.CreateTriangleQuadMesh(cubePoints, nil, quads)
	require.NoError(t, err)
	assert.Zero(t, skipped)
	requireValid(t, m)
	assert.True(t, m.IsClosed())
	assert.Equal(t, 2, m.VertexCount()-m.EdgeCount()+m.FaceCount())
}

func TestCreateTriangleQuadMesh_Errors(t *testing.T) {
	m := mesh.NewMesh()
	_, err := m.CreateTriangleQuadMesh(cubePoints, []int{0, 1, 2, 3}, nil)
	assert.ErrorIs(t, err, mesh.ErrIndexOutOfRange)
	_, err = m.CreateTriangleQuadMesh(cubePoints, nil, []int{0, 1, 2})
	assert.ErrorIs(t, err, mesh.ErrIndexOutOfRange)
	_, err = m.CreateTriangleQuadMesh(cubePoints, []int{0, 1, 8}, nil)
	assert.ErrorIs(t, err, mesh.ErrIndexOutOfRange)
	assert.True(t, m.IsEmpty(), "failed bulk build adds nothing")

	skipped, err := m.CreateTriangleQuadMesh(cubePoints[:4], []int{0, 1, 2, 0, 1, 3, 1, 0, 3}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, skipped)
	assert.Equal(t, 2, m.FaceCount())
}

func TestAddEdge(t *testing.T) {
	m := mesh.NewMesh()
	a := m.AddVertex(r3.Vec{})
	b := m.AddVertex(r3.Vec{X: 1})
	c := m.AddVertex(r3.Vec{Y: 1})

	h, err := m.AddEdge(a, b)
	require.NoError(t, err)
	requireValid(t, m)
	assert.Equal(t, a, m.Source(h))
	assert.Equal(t, b, m.Target(h))
	assert.True(t, m.IsHalfedgeBorder(h))
	assert.True(t, m.IsHalfedgeBorder(m.Opposite(h)))
	assert.Equal(t, 1, m.VertexDegree(a))
	assert.True(t, m.VertexIsBorder(a, true))

	_, err = m.AddEdge(a, a)
	assert.ErrorIs(t, err, mesh.ErrNonManifoldEdit)
	_, err = m.AddEdge(a, 7)
	assert.ErrorIs(t, err, mesh.ErrInvalidHandle)

	// a face over the loose edge reuses it
	f, err := m.AddFace(a, b, c)
	require.NoError(t, err)
	requireValid(t, m)
	assert.Equal(t, 3, m.EdgeCount())
	assert.Equal(t, f, m.Face(h))
}

func TestAddEdge_SplicesIntoBorder(t *testing.T) {
	m, v, _ := singleTriangle(t)
	d := m.AddVertex(r3.Vec{X: 2, Y: 2})

	h, err := m.AddEdge(v[1], d)
	require.NoError(t, err)
	requireValid(t, m)
	assert.Equal(t, 3, m.VertexDegree(v[1]))
	assert.Len(t, m.BorderLoops(), 1)

	// a second edge between the same border vertices forms its own loop
	_, err = m.AddEdge(v[1], d)
	require.NoError(t, err)
	requireValid(t, m)
	assert.Equal(t, 5, m.EdgeCount())

	require.NoError(t, m.RemoveEdge(m.Edge(h)))
	requireValid(t, m)
	assert.Equal(t, 4, m.EdgeCount())
}

func TestAddEdge_RejectsInteriorVertex(t *testing.T) {
	m := triCube(t)
	x := m.AddVertex(r3.Vec{X: 9})
	_, err := m.AddEdge(0, x)
	assert.ErrorIs(t, err, mesh.ErrNonManifoldEdit)
	assert.Equal(t, 18, m.EdgeCount())
}

func TestRemoveFace_CubeHole(t *testing.T) {
	m := triCube(t)
	require.True(t, m.IsClosed())

	require.NoError(t, m.RemoveFace(0))
	requireValid(t, m)
	assert.True(t, m.HasGarbage())
	assert.Equal(t, 11, m.FaceCount())
	assert.Equal(t, 18, m.EdgeCount())
	assert.False(t, m.IsClosed())
	assert.Equal(t, 3, m.BorderEdgeCount())
	require.Len(t, m.BorderLoops(), 1)
	assert.Len(t, m.BorderLoops()[0], 3)
	assert.False(t, m.IsFaceValid(0))

	assert.ErrorIs(t, m.RemoveFace(0), mesh.ErrInvalidHandle)
	assert.ErrorIs(t, m.RemoveFace(99), mesh.ErrInvalidHandle)
}

func TestRemoveFace_LastFaceRemovesEdges(t *testing.T) {
	m, v, f := singleTriangle(t)
	require.NoError(t, m.RemoveFace(f))
	requireValid(t, m)
	assert.Zero(t, m.FaceCount())
	assert.Zero(t, m.EdgeCount())
	assert.Equal(t, 3, m.VertexCount())
	for _, x := range v {
		assert.True(t, m.VertexIsIsolated(x))
	}
}

func TestRemoveVertex_Cube(t *testing.T) {
	m := triCube(t)
	require.Equal(t, 6, m.VertexDegree(0))

	require.NoError(t, m.RemoveVertex(0))
	requireValid(t, m)
	assert.Equal(t, 7, m.VertexCount())
	assert.Equal(t, 6, m.FaceCount())
	assert.Equal(t, 12, m.EdgeCount())
	assert.Equal(t, 6, m.BorderEdgeCount())
	assert.False(t, m.IsVertexValid(0))
	assert.ErrorIs(t, m.RemoveVertex(0), mesh.ErrInvalidHandle)
}

func TestRemoveEdge_Cube(t *testing.T) {
	m := triCube(t)
	h := m.FindHalfedge(0, 2)
	require.NotEqual(t, mesh.NullHalfedge, h)
	e := m.Edge(h)

	require.NoError(t, m.RemoveEdge(e))
	requireValid(t, m)
	assert.False(t, m.IsEdgeValid(e))
	assert.Equal(t, 10, m.FaceCount())
	assert.Equal(t, 17, m.EdgeCount())
	assert.Equal(t, 4, m.BorderEdgeCount())
	assert.Equal(t, mesh.NullHalfedge, m.FindHalfedge(0, 2))
	assert.ErrorIs(t, m.RemoveEdge(e), mesh.ErrInvalidHandle)
}

func TestRemoveEdge_Dangling(t *testing.T) {
	m := mesh.NewMesh()
	a := m.AddVertex(r3.Vec{})
	b := m.AddVertex(r3.Vec{X: 1})
	h, err := m.AddEdge(a, b)
	require.NoError(t, err)

	require.NoError(t, m.RemoveEdge(m.Edge(h)))
	requireValid(t, m)
	assert.True(t, m.VertexIsIsolated(a))
	assert.True(t, m.VertexIsIsolated(b))
	assert.Zero(t, m.EdgeCount())
}

func TestAccessors_PanicOnInvalidHandle(t *testing.T) {
	m, _, f := singleTriangle(t)
	require.NoError(t, m.RemoveFace(f))

	assert.ErrorIs(t, panicErr(func() { m.Next(0) }), mesh.ErrInvalidHandle)
	assert.ErrorIs(t, panicErr(func() { m.Target(-1) }), mesh.ErrInvalidHandle)
	assert.ErrorIs(t, panicErr(func() { m.FaceHalfedge(f) }), mesh.ErrInvalidHandle)
	assert.ErrorIs(t, panicErr(func() { m.Point(10) }), mesh.ErrInvalidHandle)
	assert.ErrorIs(t, panicErr(func() { m.EdgeHalfedge(0, 0) }), mesh.ErrInvalidHandle)
	assert.NoError(t, panicErr(func() { m.Point(0) }))

	// queries answer instead of panicking
	assert.False(t, m.IsHalfedgeBorder(0))
	assert.False(t, m.EdgeIsBorder(0))
	assert.False(t, m.VertexIsBorder(99, false))
	assert.Equal(t, mesh.NullHalfedge, m.FindHalfedge(0, 99))
}

func TestTriangulate(t *testing.T) {
	m := quadCube(t)
	require.Equal(t, mesh.FaceCountQuads, m.GetFaceVertexCount())

	m.Triangulate()
	requireValid(t, m)
	assert.Equal(t, 12, m.FaceCount())
	assert.Equal(t, 18, m.EdgeCount())
	assert.Equal(t, mesh.FaceCountTriangles, m.GetFaceVertexCount())
	assert.True(t, m.IsClosed())
	assert.InDelta(t, 1.0, m.Volume(), 1e-12)

	// pentagon: three triangles sharing the first corner
	p := mesh.NewMesh()
	var vs []mesh.VertexHandle
	for _, q := range []r3.Vec{{X: 0}, {X: 2}, {X: 3, Y: 1}, {X: 1, Y: 2}, {X: -1, Y: 1}} {
		vs = append(vs, p.AddVertex(q))
	}
	f, err := p.AddFace(vs...)
	require.NoError(t, err)
	area := p.FaceArea(f)
	p.Triangulate()
	requireValid(t, p)
	assert.Equal(t, 3, p.FaceCount())
	assert.Equal(t, 3, p.FaceDegree(f))
	assert.Equal(t, vs[0], p.FaceVertices(f)[0])
	assert.InDelta(t, area, p.Area(), 1e-12)
}

func TestTriangleQuadIndices(t *testing.T) {
	m := quadCube(t)
	tris, quads, skipped := m.TriangleQuadIndices()
	assert.Empty(t, tris)
	assert.Equal(t, cubeQuads, quads)
	assert.Zero(t, skipped)

	c := triCube(t)
	tris, quads, _ = c.TriangleQuadIndices()
	assert.Equal(t, cubeTriangles(), tris)
	assert.Empty(t, quads)
}

func TestTransform(t *testing.T) {
	m := triCube(t)
	m.Transform(translate{r3.Vec{X: 10}})
	b := m.BoundingBox()
	assert.Equal(t, r3.Vec{X: 10}, b.Min)
	assert.Equal(t, r3.Vec{X: 11, Y: 1, Z: 1}, b.Max)
	requireValid(t, m)
}

type translate struct{ by r3.Vec }

func (t translate) Apply(p r3.Vec) r3.Vec { return r3.Add(p, t.by) }
