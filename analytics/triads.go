package analytics

import "github.com/arlojax/graphon/graphcore"

// TriadCount sums, over every node, the number of unordered (undirected)
// or ordered (directed) neighbor pairs centered on that node (spec §4.6):
// deg·(deg−1)/2 when directed is false, inDeg·outDeg when true.
func TriadCount(g *graphcore.Graph, directed bool) int {
	total := 0
	for _, node := range g.Nodes() {
		if directed {
			total += node.InDegree() * node.OutDegree()
		} else {
			d := node.Degree()
			total += d * (d - 1) / 2
		}
	}
	return total
}
