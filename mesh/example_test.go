package mesh_test

import (
	"fmt"
	"os"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/surfmesh/mesh"
)

// ExampleMesh builds a unit cube from quads and measures it.
func ExampleMesh() {
	points := []r3.Vec{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 0, Y: 1, Z: 1},
	}
	quads := []int{0, 3, 2, 1, 4, 5, 6, 7, 0, 1, 5, 4, 3, 7, 6, 2, 0, 4, 7, 3, 1, 2, 6, 5}

	m := mesh.NewMesh()
	if _, err := m.CreateTriangleQuadMesh(points, nil, quads); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("V E F:", m.VertexCount(), m.EdgeCount(), m.FaceCount())
	fmt.Println("closed:", m.IsClosed(), m.GetFaceVertexCount())
	fmt.Printf("area %.2f volume %.2f\n", m.Area(), m.Volume())
	fmt.Println(m.SideOfTriangleMesh(r3.Vec{X: 0.5, Y: 0.5, Z: 0.5}))
	fmt.Println(m.SideOfTriangleMesh(r3.Vec{X: 1, Y: 0.5, Z: 0.5}))
	fmt.Println(m.SideOfTriangleMesh(r3.Vec{X: 2, Y: 0.5, Z: 0.5}))

	// Output:
	// V E F: 8 12 6
	// closed: true Quads
	// area 6.00 volume 1.00
	// OnBoundedSide
	// OnBoundary
	// OnUnboundedSide
}

// ExampleMesh_CollectGarbage shows that removal only marks slots until
// garbage is collected.
func ExampleMesh_CollectGarbage() {
	m := mesh.NewMesh()
	a := m.AddVertex(r3.Vec{})
	b := m.AddVertex(r3.Vec{X: 1})
	c := m.AddVertex(r3.Vec{X: 1, Y: 1})
	d := m.AddVertex(r3.Vec{Y: 1})
	m.AddTriangle(a, b, c)
	m.AddTriangle(a, c, d)

	_ = m.RemoveVertex(b)
	fmt.Println("faces:", m.FaceCount(), "garbage:", m.HasGarbage())
	fmt.Println("vertex 3 valid:", m.IsVertexValid(3))

	m.CollectGarbage()
	fmt.Println("vertices:", m.VertexCount(), "garbage:", m.HasGarbage())
	fmt.Println("vertex 3 valid:", m.IsVertexValid(3))

	// Output:
	// faces: 1 garbage: true
	// vertex 3 valid: true
	// vertices: 3 garbage: false
	// vertex 3 valid: false
}

// ExampleMesh_WriteOFF writes a two-triangle square.
func ExampleMesh_WriteOFF() {
	m := mesh.NewMesh()
	_, _ = m.CreateTriangleQuadMesh(
		[]r3.Vec{{}, {X: 1}, {X: 1, Y: 1}, {Y: 1}},
		[]int{0, 1, 2, 0, 2, 3},
		nil,
	)
	if err := m.WriteOFF(os.Stdout); err != nil {
		fmt.Println(err)
	}

	// Output:
	// OFF
	// 4 2 5
	// 0 0 0
	// 1 0 0
	// 1 1 0
	// 0 1 0
	// 3 0 1 2
	// 3 0 2 3
}
