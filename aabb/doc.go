// Package aabb implements an immutable axis-aligned bounding-box hierarchy
// over triangles.
//
// A Tree is built once from a slice of Items (a caller-chosen record ID plus
// the triangle geometry) and never changes afterwards: there is no insert or
// delete. Callers that mutate the underlying geometry must Build a new Tree.
// Because nothing is written after Build, a Tree can be shared by any number
// of concurrent readers.
//
// Construction splits on the longest axis of the centroid bounds at the
// median (quickselect), giving O(n log n) expected build time and a balanced
// binary tree with at most leafSize items per leaf.
//
// Searches report matches through a callback. Returning the Stop sentinel
// from the callback ends the search early without an error.
package aabb
