package malloc

import "github.com/dustin/go-humanize"

// Stats returns a snapshot of this allocator's bookkeeping: counts of
// Alloc/Free/growHeap calls, the current heap span, and the running
// distribution of requested and actually-placed block sizes.
func (alloc *Allocator) Stats() map[string]interface{} {
	heapspan := alloc.heap.HeapHi() - alloc.heap.HeapLo()
	used := int64(0)
	for off := alloc.firstBlock; off < alloc.heap.HeapHi(); off = alloc.nextBlockOffset(off) {
		if alloc.blockAllocated(off) {
			used += alloc.blockSize(off)
		}
	}
	return map[string]interface{}{
		"n_allocs":    alloc.nallocs,
		"n_frees":     alloc.nfrees,
		"n_grows":     alloc.ngrows,
		"heap.span":   heapspan,
		"heap.used":   used,
		"allocsizes":  alloc.allocsizes.Stats(),
		"blocksizes":  alloc.blocksizes.Fullstats(),
		"utilization": alloc.Utilization(),
	}
}

// Utilization returns the fraction, between 0 and 1, of the heap span
// currently held by allocated blocks (as opposed to free blocks, the
// free-list table, or the sentinel).
func (alloc *Allocator) Utilization() float64 {
	heapspan := alloc.heap.HeapHi() - alloc.heap.HeapLo()
	if heapspan == 0 {
		return 0
	}
	used := int64(0)
	for off := alloc.firstBlock; off < alloc.heap.HeapHi(); off = alloc.nextBlockOffset(off) {
		if alloc.blockAllocated(off) {
			used += alloc.blockSize(off)
		}
	}
	return float64(used) / float64(heapspan)
}

// Log writes a human readable summary of Stats to the configured
// logging backend at info level. Like the rest of this package's
// logging, it writes nothing unless LogComponents has enabled it.
func (alloc *Allocator) Log() {
	span := alloc.heap.HeapHi() - alloc.heap.HeapLo()
	used := int64(float64(span) * alloc.Utilization())
	fmsg := "%v heap %v, used %v (%.2f%% utilization), %v allocs %v frees %v grows\n"
	infof(
		fmsg, alloc.logPrefix(),
		humanize.Bytes(uint64(span)), humanize.Bytes(uint64(used)),
		alloc.Utilization()*100, alloc.nallocs, alloc.nfrees, alloc.ngrows,
	)
}
