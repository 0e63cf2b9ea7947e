package malloc

// coalesce merges blockOffset, which must already be tagged free and
// NOT yet linked into any free list, with a free left and/or right
// neighbour, and returns the offset of the resulting (possibly larger)
// free block. The caller is responsible for listPush-ing the result.
func (alloc *Allocator) coalesce(blockOffset int64) int64 {
	size := alloc.blockSize(blockOffset)

	if next := alloc.nextBlockOffset(blockOffset); alloc.insideHeap(next) && !alloc.blockAllocated(next) {
		alloc.listRemove(next)
		size += alloc.blockSize(next)
	}

	if prev := alloc.prevBlockOffset(blockOffset); alloc.insideHeap(prev) && !alloc.blockAllocated(prev) {
		alloc.listRemove(prev)
		size += alloc.blockSize(prev)
		blockOffset = prev
	}

	alloc.writeTag(blockOffset, size, false)
	return blockOffset
}
