// SPDX-License-Identifier: MIT
// Package: surfmesh/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   - Options are functional (type BuilderOption func(*builderConfig)).
//   - Option constructors validate and panic on meaningless inputs.
//     Constructors themselves never panic.
//   - Seeding is explicit via WithSeed or WithRand.

package builder

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"
)

// BuilderOption customizes fixture construction by mutating a builderConfig
// before any constructor runs.
type BuilderOption func(*builderConfig)

// WithScale multiplies fixture coordinates by s. Panics unless s is finite
// and > 0.
func WithScale(s float64) BuilderOption {
	if !(s > 0) || math.IsInf(s, 1) {
		panic("builder: WithScale(s<=0)")
	}
	return func(c *builderConfig) {
		c.scale = s
	}
}

// WithOffset translates fixtures by d after scaling.
func WithOffset(d r3.Vec) BuilderOption {
	return func(c *builderConfig) {
		c.offset = d
	}
}

// WithTriangulate fan-splits every polygon a constructor emits into
// triangles from its first corner.
func WithTriangulate() BuilderOption {
	return func(c *builderConfig) {
		c.triangulate = true
	}
}

// WithRand provides an explicit RNG for stochastic fixtures.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
