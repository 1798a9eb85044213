package pfs

// item is a (node id, priority) pair stored in the PFS heap, mirroring the
// teacher's dijkstra.nodeItem but generalized to a float64 priority.
type item struct {
	id       string
	priority float64
}

// itemPQ is a min-heap of *item ordered by ascending priority, used with a
// lazy-decrease-key strategy: a strictly better priority is pushed as a
// new entry rather than mutating one already in the heap, and stale
// entries are skipped on pop via Run's visited set (see Run).
type itemPQ []*item

func (pq itemPQ) Len() int            { return len(pq) }
func (pq itemPQ) Less(i, j int) bool  { return pq[i].priority < pq[j].priority }
func (pq itemPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *itemPQ) Push(x interface{}) { *pq = append(*pq, x.(*item)) }
func (pq *itemPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]
	return it
}
