// Package builder provides validation helpers to enforce parameter
// contracts in Constructor factories.
package builder

import "fmt"

// validateMin ensures that got ≥ min, naming the parameter in the error.
// Complexity: O(1).
func validateMin(method, param string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d (must be ≥ %d): %w", method, param, got, min, ErrTooFewVertices)
	}

	return nil
}

// validateRand ensures a stochastic constructor has an RNG.
func validateRand(method string, cfg builderConfig) error {
	if cfg.rng == nil {
		return fmt.Errorf("%s: %w", method, ErrNeedRandSource)
	}

	return nil
}
