// SPDX-License-Identifier: MIT
// Package: surfmesh/builder
//
// api.go - public entry points of the builder package.
//
// Contract:
//   - One orchestrator: BuildMesh(mopts, bopts, cons...). Creates m, resolves cfg, runs cons in order.
//   - Constructors append to the mesh; several constructors yield several components.
//   - Determinism: same inputs, options, seed and constructor order give identical meshes.
//   - Constructors never panic; option constructors panic on meaningless values.

package builder

import (
	"fmt"

	"github.com/katalvlaran/surfmesh/mesh"
)

// Constructor appends a deterministic fixture to m using the resolved
// builderConfig. Implementations validate their parameters before adding
// anything and return sentinel errors.
type Constructor func(m *mesh.Mesh, cfg builderConfig) error

// BuildMesh creates a new mesh with mesh options mopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// The first constructor error is wrapped with "BuildMesh: %w" and returned;
// the partially built mesh is discarded.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: sum of their costs.
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - Any constructor sentinel (ErrTooFewVertices, ErrNeedRandSource, ...).
func BuildMesh(mopts []mesh.Option, bopts []BuilderOption, cons ...Constructor) (*mesh.Mesh, error) {
	m := mesh.NewMesh(mopts...)
	if err := apply(m, newBuilderConfig(bopts...), cons); err != nil {
		return nil, fmt.Errorf("BuildMesh: %w", err)
	}

	return m, nil
}

// BuildInto runs constructors against an existing mesh. Unlike BuildMesh,
// elements added before a failing constructor stay in m.
func BuildInto(m *mesh.Mesh, bopts []BuilderOption, cons ...Constructor) error {
	if m == nil {
		return fmt.Errorf("BuildInto: nil mesh: %w", ErrConstructFailed)
	}
	if err := apply(m, newBuilderConfig(bopts...), cons); err != nil {
		return fmt.Errorf("BuildInto: %w", err)
	}

	return nil
}

func apply(m *mesh.Mesh, cfg builderConfig, cons []Constructor) error {
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(m, cfg); err != nil {
			return err
		}
	}

	return nil
}

// =============================================================================
// Fixture factories (declarations) - implemented in impl_*.go
// =============================================================================
//
// PlatonicSolid builds one of the five regular solids on the unit sphere,
// faces oriented outward.
// Complexity: O(V+F) for the chosen solid.
//func PlatonicSolid(name PlatonicName) Constructor
//
// UnitCube builds the axis-aligned cube [0,1]^3 as 6 quads or 12 triangles.
//func UnitCube(triangulated bool) Constructor
//
// Grid builds an open rows×cols patch of unit quads in the z=0 plane.
// Complexity: O(rows*cols).
//func Grid(rows, cols int) Constructor
//
// RandomSoup builds n unconnected triangles with corners drawn from cfg.rng.
// Requires WithSeed or WithRand.
//func RandomSoup(n int) Constructor
