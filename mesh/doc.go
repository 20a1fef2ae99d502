// Package mesh provides an index-addressed halfedge surface mesh: a
// connectivity store for polygonal two-manifold surfaces with deferred
// deletion, manifold-preserving editing, geometric measurement and
// containment/intersection predicates.
//
// The Mesh stores three arenas addressed by dense integer handles:
//
//   - vertices: position + one outgoing halfedge (a border one if any)
//   - halfedges: target vertex, face (or Border), next and prev; halfedges
//     come in pairs so Opposite(h) == h^1 and Edge(h) == h/2
//   - faces: one bounding halfedge
//
// Why a halfedge store?
//
//   - Constant-time local navigation (next/prev/opposite) without pointers.
//   - Border loops are ordinary halfedge cycles, so open meshes need no
//     special casing.
//   - Compaction is a pure array rewrite.
//
// Configuration Options (Option):
//
//	– WithKernel(k kernel.Kernel)
//	    Arithmetic back-end for predicates (default kernel.Exact()).
//
//	– WithLogger(l *zap.Logger)
//	    Debug events: rejected edits, compaction, tree builds, joins
//	    (default zap.NewNop()).
//
//	– WithRecycleGarbage(enabled bool)
//	    Reuse freed slots on the next additions.
//
//	– WithCapacity(vertices, faces int)
//	    Preallocate arenas.
//
// Core Methods:
//
//	// Editing
//	AddVertex(p) VertexHandle                   // O(1)
//	AddEdge(v0, v1) (HalfedgeHandle, error)      // O(1)
//	AddFace(vs...) (FaceHandle, error)           // O(Σ corner degree)
//	AddTriangle / AddQuad                        // NullFace on rejection
//	RemoveVertex / RemoveEdge / RemoveFace       // O(local degree)
//	CreateTriangleQuadMesh(points, tris, quads)  // bulk ingestion
//
//	// Garbage
//	HasGarbage() / CollectGarbage()             // O(V+H+F) compaction
//	SetRecycleGarbage / DoesRecycleGarbage
//
//	// Measurement and predicates
//	Area, Volume, Centroid, BoundingBox, MinMaxEdgeLength
//	SideOfTriangleMesh, DoesSelfIntersect, DoesBoundAVolume, DoIntersect
//
// Errors:
//
//	ErrInvalidHandle      – removed, out-of-range or null handle
//	ErrNonManifoldEdit    – edit rejected, mesh untouched
//	ErrPreconditionUnmet  – checked geometric precondition failed
//	ErrIndexOutOfRange    – bulk buffer size or index mismatch
//	ErrInconsistent       – IsValid found a broken invariant
//	ErrNilMesh            – nil mesh argument
//
// Direct accessors (Next, Target, Point, ...) panic with an error wrapping
// ErrInvalidHandle when given an invalid handle; the Is*Valid and Is*Border
// queries answer false instead.
//
// Derived state:
//
// Normal maps and the AABB tree are explicit caches. Edits never refresh
// them: reads after an edit see the values computed before it. Only
// CollectGarbage, which renumbers handles, drops them.
//
// Concurrency:
//
// A Mesh is owned by one goroutine. There is no internal locking; build
// per-worker meshes and combine them with Join. A built *aabb.Tree is
// immutable and safe for concurrent readers.
package mesh
