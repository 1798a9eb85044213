package analytics

import (
	"context"

	"github.com/arlojax/graphon/graphcore"
	"github.com/arlojax/graphon/matrix"
)

// Transitivity computes 3·triangles / triads (spec §4.6). It returns 0
// when the graph has no triads, rather than dividing by zero.
func Transitivity(ctx context.Context, g *graphcore.Graph, directed bool, mult matrix.Multiplier) (float64, error) {
	triads := TriadCount(g, directed)
	if triads == 0 {
		return 0, nil
	}
	triangles, err := TriangleCount(ctx, g, directed, mult)
	if err != nil {
		return 0, err
	}
	return 3 * float64(triangles) / float64(triads), nil
}
