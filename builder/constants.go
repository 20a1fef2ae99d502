// Package builder defines shared constants used by mesh fixtures.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodPlatonicSolid is the canonical name for the PlatonicSolid constructor.
	MethodPlatonicSolid = "PlatonicSolid"
	// MethodUnitCube is the canonical name for the UnitCube constructor.
	MethodUnitCube = "UnitCube"
	// MethodGrid is the canonical name for the Grid constructor.
	MethodGrid = "Grid"
	// MethodRandomSoup is the canonical name for the RandomSoup constructor.
	MethodRandomSoup = "RandomSoup"
)

//-----------------------------------------------------------------------------
// Minimum Sizes
//-----------------------------------------------------------------------------

// MinGridDim is the smallest allowed dimension (rows or cols) for a Grid.
// A 1×1 grid is a single quad.
const MinGridDim = 1

// MinSoupTriangles is the smallest triangle count for RandomSoup.
const MinSoupTriangles = 1
