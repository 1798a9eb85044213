package analytics

import (
	"context"
	"fmt"

	"github.com/arlojax/graphon/compute"
	"github.com/arlojax/graphon/graphcore"
	"github.com/arlojax/graphon/matrix"
)

// computePowers builds the binary adjacency matrix A and returns A² and A³
// via mult (spec §4.6 "delegated to an external matrix-multiplier"). A nil
// mult falls back to matrix.LocalMultiplier{} (spec §9 "async matrix
// multiplier": the core stays agnostic to whether Multiply suspends).
func computePowers(ctx context.Context, g *graphcore.Graph, mult matrix.Multiplier) (a2, a3 *matrix.Dense, order []string, err error) {
	if mult == nil {
		mult = matrix.LocalMultiplier{}
	}

	a, order, err := compute.AdjMatrix(g)
	if err != nil {
		return nil, nil, nil, err
	}

	a2, err = mult.Multiply(ctx, a, a)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("analytics: matrix multiplier: %w: %v", graphcore.ErrExternalFailure, err)
	}

	a3, err = mult.Multiply(ctx, a2, a)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("analytics: matrix multiplier: %w: %v", graphcore.ErrExternalFailure, err)
	}

	return a2, a3, order, nil
}
