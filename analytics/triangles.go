package analytics

import (
	"context"
	"math"

	"github.com/arlojax/graphon/graphcore"
	"github.com/arlojax/graphon/matrix"
)

// TriangleCount computes trace(A³) / (6 if undirected else 3) over the
// binary adjacency matrix (spec §4.6). mult may be nil to use the default
// synchronous multiplier.
func TriangleCount(ctx context.Context, g *graphcore.Graph, directed bool, mult matrix.Multiplier) (int, error) {
	_, a3, _, err := computePowers(ctx, g, mult)
	if err != nil {
		return 0, err
	}

	divisor := 6.0
	if directed {
		divisor = 3.0
	}
	tr, err := a3.Trace()
	if err != nil {
		return 0, err
	}
	return int(math.Round(tr / divisor)), nil
}
