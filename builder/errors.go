// SPDX-License-Identifier: MIT
// Package: surfmesh/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Implementations attach context with %w.
//   - Priority when several validations fail: size first, then parameter
//     domain, then RNG presence, then construction.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (rows, cols, n) is
// smaller than the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor ran without an
// RNG (WithSeed or WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the mesh rejected an element the
// fixture emitted, or that a nil constructor or mesh was supplied.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates a parameter outside its domain, such as an
// unknown PlatonicName.
var ErrOptionViolation = errors.New("builder: invalid option value")
