package astar

// item is one frontier entry. Several entries may exist for the same key;
// only the cheapest one is ever expanded.
type item struct {
	key string
	g   float64
	f   float64
	seq uint64 // discovery order, breaks f ties
}

// frontier is a min-heap of *item ordered by (f, seq).
type frontier []*item

// Len returns the number of entries in the heap.
func (pq frontier) Len() int { return len(pq) }

// Less orders by ascending f, then by discovery order.
func (pq frontier) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. Called by heap.Push.
func (pq *frontier) Push(x interface{}) { *pq = append(*pq, x.(*item)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *frontier) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return it
}
