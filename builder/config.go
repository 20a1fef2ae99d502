// SPDX-License-Identifier: MIT
// Package: surfmesh/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - scale       = 1.0
//   - offset      = (0,0,0)
//   - triangulate = false
//   - rng         = nil (pure unless seeded)

package builder

import (
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// Uniform scale applied to fixture coordinates before the offset.
	scale float64
	// Translation applied after scaling.
	offset r3.Vec
	// Fan-split every polygon into triangles before adding it.
	triangulate bool
	// RNG for stochastic fixtures; nil means no randomness.
	rng *rand.Rand
}

// DefaultScale is the scale of a fixture built without WithScale.
const DefaultScale = 1.0

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (last wins).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{scale: DefaultScale}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// place maps a fixture coordinate into the configured frame.
func (c builderConfig) place(p r3.Vec) r3.Vec {
	return r3.Add(r3.Scale(c.scale, p), c.offset)
}
