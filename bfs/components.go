package bfs

import (
	"github.com/arlojax/graphon/graphcore"
	"github.com/arlojax/graphon/pfs"
)

// Components partitions g's nodes into weakly-connected components: a
// BFS over pfs.DirAll (every edge traversable regardless of direction)
// from every not-yet-visited node. Component ids are 0-based and assigned
// in graphcore.Graph's node insertion order, so the result is
// deterministic across runs.
func Components(g *graphcore.Graph) (map[string]int, error) {
	assignment := make(map[string]int, g.NrNodes())
	next := 0

	for _, id := range g.NodeIDs() {
		if _, seen := assignment[id]; seen {
			continue
		}

		res, err := BFS(g, id, WithDirMode(pfs.DirAll))
		if err != nil {
			return nil, err
		}
		for _, member := range res.Order {
			assignment[member] = next
		}
		next++
	}

	return assignment, nil
}

// ComponentCount returns the number of weakly-connected components in g.
func ComponentCount(g *graphcore.Graph) (int, error) {
	assignment, err := Components(g)
	if err != nil {
		return 0, err
	}
	max := -1
	for _, c := range assignment {
		if c > max {
			max = c
		}
	}
	return max + 1, nil
}
