// SPDX-License-Identifier: MIT
// Package: surfmesh/mesh
//
// types.go - handles, sentinel errors, options and the Mesh record layout.
//
// Storage model:
//   - Three parallel arenas (vertices, halfedges, faces) addressed by dense
//     integer handles.
//   - Halfedges are allocated in opposite pairs: halfedge 2e and 2e+1 form
//     edge e, so Opposite(h) == h^1 and Edge(h) == h/2 by construction.
//   - Removal flips a flag in the record; the slot stays until
//     CollectGarbage compacts the arenas.

package mesh

import (
	"errors"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/surfmesh/aabb"
	"github.com/katalvlaran/surfmesh/kernel"
)

// Sentinel errors for mesh operations.
var (
	// ErrInvalidHandle indicates a removed, out-of-range or null handle where
	// a live element is required.
	ErrInvalidHandle = errors.New("mesh: invalid handle")

	// ErrNonManifoldEdit indicates a topology edit that would break the
	// two-manifold invariant; the mesh is left untouched.
	ErrNonManifoldEdit = errors.New("mesh: non-manifold edit rejected")

	// ErrPreconditionUnmet indicates a geometric query whose precondition
	// (closedness, no self-intersection) does not hold.
	ErrPreconditionUnmet = errors.New("mesh: precondition unmet")

	// ErrIndexOutOfRange indicates a bulk buffer index or size mismatch.
	ErrIndexOutOfRange = errors.New("mesh: index out of range")

	// ErrInconsistent indicates a violated connectivity invariant found by
	// IsValid.
	ErrInconsistent = errors.New("mesh: connectivity invariant violated")

	// ErrNilMesh indicates a nil *Mesh argument.
	ErrNilMesh = errors.New("mesh: nil mesh")
)

// VertexHandle addresses a vertex slot.
type VertexHandle int

// HalfedgeHandle addresses a halfedge slot.
type HalfedgeHandle int

// EdgeHandle addresses an edge (a pair of halfedges).
type EdgeHandle int

// FaceHandle addresses a face slot.
type FaceHandle int

// Null handles. Border is the face value carried by halfedges that lie on
// a boundary loop.
const (
	NullVertex   VertexHandle   = -1
	NullHalfedge HalfedgeHandle = -1
	NullEdge     EdgeHandle     = -1
	NullFace     FaceHandle     = -1
	Border                      = NullFace
)

// FaceVertexCount summarizes the polygon sizes present in a mesh.
type FaceVertexCount int

const (
	// FaceCountNone means the mesh has no live face.
	FaceCountNone FaceVertexCount = iota
	// FaceCountTriangles means every face is a triangle.
	FaceCountTriangles
	// FaceCountQuads means every face is a quad.
	FaceCountQuads
	// FaceCountMixed means faces of different sizes (or larger polygons).
	FaceCountMixed
)

// String renders the classification for logs.
func (c FaceVertexCount) String() string {
	switch c {
	case FaceCountNone:
		return "None"
	case FaceCountTriangles:
		return "Triangles"
	case FaceCountQuads:
		return "Quads"
	case FaceCountMixed:
		return "Mixed"
	default:
		return "Unknown"
	}
}

// MinMaxAvg holds edge-length statistics.
type MinMaxAvg struct {
	Min     float64
	Max     float64
	Average float64
}

type vertexRecord struct {
	point    r3.Vec
	halfedge HalfedgeHandle // outgoing; a border one whenever one exists
	removed  bool
}

type halfedgeRecord struct {
	target  VertexHandle
	face    FaceHandle
	next    HalfedgeHandle
	prev    HalfedgeHandle
	removed bool
}

type faceRecord struct {
	halfedge HalfedgeHandle
	removed  bool
}

// Mesh is an index-addressed halfedge surface mesh.
//
// A Mesh has a single owner: it performs no locking, and concurrent use
// with at least one writer is undefined. Combine per-worker meshes with
// Join at a synchronization point instead.
type Mesh struct {
	vertices  []vertexRecord
	halfedges []halfedgeRecord
	faces     []faceRecord

	// removed-but-uncompacted counters
	removedVertices int
	removedEdges    int
	removedFaces    int

	// free slots available for reuse when recycle is on (LIFO)
	freeVertices []VertexHandle
	freeEdges    []EdgeHandle
	freeFaces    []FaceHandle
	recycle      bool

	kernel kernel.Kernel
	log    *zap.Logger

	vertexNormals *PropertyMap[r3.Vec]
	faceNormals   *PropertyMap[r3.Vec]
	tree          *aabb.Tree
}

// Option configures a Mesh before first use.
type Option func(m *Mesh)

// WithKernel selects the arithmetic back-end. Panics on nil.
func WithKernel(k kernel.Kernel) Option {
	if k == nil {
		panic("mesh: WithKernel(nil)")
	}
	return func(m *Mesh) { m.kernel = k }
}

// WithLogger attaches a structured logger for debug events. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("mesh: WithLogger(nil)")
	}
	return func(m *Mesh) { m.log = l }
}

// WithRecycleGarbage sets the initial recycle mode (see SetRecycleGarbage).
func WithRecycleGarbage(enabled bool) Option {
	return func(m *Mesh) { m.recycle = enabled }
}

// WithCapacity preallocates arenas for the expected element counts.
// Panics on negative values.
func WithCapacity(vertices, faces int) Option {
	if vertices < 0 || faces < 0 {
		panic("mesh: WithCapacity(negative)")
	}
	return func(m *Mesh) {
		m.vertices = make([]vertexRecord, 0, vertices)
		m.faces = make([]faceRecord, 0, faces)
		// Euler: E ≈ V + F for closed meshes, two halfedges per edge.
		m.halfedges = make([]halfedgeRecord, 0, 2*(vertices+faces))
	}
}

// NewMesh creates an empty Mesh. Defaults: exact kernel, no-op logger,
// recycle off.
// Complexity: O(1) plus any WithCapacity allocation.
func NewMesh(opts ...Option) *Mesh {
	m := &Mesh{
		kernel:        kernel.Exact(),
		log:           zap.NewNop(),
		vertexNormals: NewPropertyMap[r3.Vec](),
		faceNormals:   NewPropertyMap[r3.Vec](),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}
