package malloc

// fit searches the free-list table for the first free block able to
// hold size bytes, starting in size's own size class and spilling into
// wider classes until one is found or the table is exhausted. Within
// a class, blocks are visited in most-recently-freed order; the first
// one big enough wins — this allocator never hunts for the tightest
// fit, only the first one.
func (alloc *Allocator) fit(size int64) int64 {
	for c := alloc.sizeClass(size); c < NumClasses; c++ {
		for cur := alloc.classHead(c); cur != NullOffset && alloc.insideHeap(cur); cur = alloc.nextFree(cur) {
			if alloc.blockSize(cur) >= size && !alloc.blockAllocated(cur) {
				return cur
			}
		}
	}
	return NullOffset
}
