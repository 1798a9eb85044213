package pfs

import (
	"context"

	"github.com/arlojax/graphon/graphcore"
)

// Dijkstra is the thin PFS specialization named in spec §4.4: DirMode=OUT,
// Weighted=true, an optional goal node, and the default visitor — the same
// role the teacher's standalone dijkstra package plays, now expressed as a
// one-line call into the generalized Run.
func Dijkstra(ctx context.Context, g *graphcore.Graph, source string, goalNode string) (Result, error) {
	return Run(ctx, g, source, Config{
		DirMode:  DirOut,
		GoalNode: goalNode,
		Weighted: true,
	})
}
