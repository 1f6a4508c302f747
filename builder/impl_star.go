// SPDX-License-Identifier: MIT
// Package: redistrict/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds hub precinct with fixed ID CenterVertexID.
//   - Adds leaves via cfg.idFn in ascending index order for i = 1..n-1.
//   - Emits spokes in stable order Center-leaf[i].
//
// A star is the smallest map on which most bisections are impossible: any
// side holding the hub and a leaf leaves the other leaves disconnected.
//
// Complexity:
//   - Time: O(n) vertices + O(n-1) edges. Space: O(1) extra.
package builder

import (
	"fmt"

	"github.com/katalvlaran/redistrict/core"
)

// CenterVertexID is the hub ID used by Star.
const CenterVertexID = "Center"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star topology with n precincts:
// one hub CenterVertexID and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := cfg.addPrecinct(g, methodStar, CenterVertexID); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			leafID := cfg.idFn(i)
			if err := cfg.addPrecinct(g, methodStar, leafID); err != nil {
				return err
			}
			if err := addEdge(g, methodStar, CenterVertexID, leafID); err != nil {
				return err
			}
		}
		return nil
	}
}
