// Package surfmesh is an in-memory, index-addressed halfedge surface mesh
// library: build polygonal surfaces, edit their topology without breaking
// manifoldness, measure them, and ask geometric questions about them.
//
// What is in the box?
//
//	A pure-Go library that brings together:
//		• Connectivity store: vertices, paired halfedges and faces in flat arenas
//		• Topology editor: manifold-checked face/edge addition and removal
//		• Garbage collection: lazy removal, stable compaction, optional slot recycling
//		• Traversal: face and vertex circulators, border queries, components
//		• Measurement: area, volume, centroid, bounding box, edge statistics
//		• Predicates: point-in-volume, self-intersection, volume bounding, mesh overlap
//		• Spatial index: a static AABB tree over triangles
//		• Interchange: OFF import and export
//
// Under the hood, everything is organized under a few subpackages:
//
//	kernel/  - numeric kernels (exact orientation via golang/geo), boxes, triangles, affine maps
//	aabb/    - static AABB tree with range, segment and visit queries
//	mesh/    - the halfedge mesh itself (store, editor, measurement, predicates, join, I/O)
//	off/     - OFF format reader/writer
//	builder/ - deterministic fixtures (Platonic solids, cubes, grids, random soups)
//
// Quick ASCII example:
//
//	3───2
//	│ ╱ │      two counter-clockwise triangles (0,1,2) and (0,2,3)
//	0───1      share the interior edge 0-2; the other four edges are border.
//
// Handles are plain integers and stay stable until CollectGarbage compacts
// the store. See examples/ for a runnable walkthrough.
//
//	go get github.com/katalvlaran/surfmesh
package surfmesh
