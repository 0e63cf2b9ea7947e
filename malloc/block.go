package malloc

// Every block, free or allocated, is laid out as:
//
//	[ header (4 bytes) ][ payload / free-list link ][ footer (4 bytes) ]
//
// header and footer both encode the same word: the block's total size
// (header+payload+footer, always a multiple of Alignment) in the high
// bits and the allocated flag in the low bit. Keeping a footer on
// every block, allocated or not, is what lets coalesce find its left
// neighbour in O(1) by looking at blockOffset-footerSize.
const headerSize = int64(4)
const footerSize = int64(4)
const tagOverhead = headerSize + footerSize

// NullOffset is the sentinel "no address" value returned by Alloc for
// a degenerate zero-sized request, accepted by Realloc in place of a
// live payload offset, and stored as a free-list link to terminate a
// class's list. It is never a valid block or payload offset since
// every real offset is non-negative.
const NullOffset = int64(-1)

// packTag combines a block size and its allocated flag into the word
// stored in both a header and a footer. size is always a multiple of
// Alignment (8), leaving its low 3 bits free; the allocated flag rides
// in the lowest one, no shift needed.
func packTag(size int64, allocated bool) uint32 {
	word := uint32(size)
	if allocated {
		word |= 1
	}
	return word
}

// unpackTag splits a header/footer word back into size and allocated.
func unpackTag(word uint32) (size int64, allocated bool) {
	return int64(word &^ 1), word&1 == 1
}

// headerOffset returns the offset of blockOffset's header word. It is
// blockOffset itself; named for symmetry with footerOffset.
func headerOffset(blockOffset int64) int64 {
	return blockOffset
}

// footerOffset returns the offset of blockOffset's footer word, given
// the block's total size.
func footerOffset(blockOffset, size int64) int64 {
	return blockOffset + size - footerSize
}

// payloadOffset returns the offset a caller's pointer (or a free
// block's list-link storage) begins at.
func payloadOffset(blockOffset int64) int64 {
	return blockOffset + headerSize
}

// blockSize reads the size encoded in blockOffset's header.
func (alloc *Allocator) blockSize(blockOffset int64) int64 {
	size, _ := unpackTag(alloc.heap.ReadUint32(headerOffset(blockOffset)))
	return size
}

// blockAllocated reports whether blockOffset is currently allocated.
func (alloc *Allocator) blockAllocated(blockOffset int64) bool {
	_, allocated := unpackTag(alloc.heap.ReadUint32(headerOffset(blockOffset)))
	return allocated
}

// writeTag stamps both the header and the footer of blockOffset with
// size and allocated.
func (alloc *Allocator) writeTag(blockOffset, size int64, allocated bool) {
	word := packTag(size, allocated)
	alloc.heap.WriteUint32(headerOffset(blockOffset), word)
	alloc.heap.WriteUint32(footerOffset(blockOffset, size), word)
}

// nextBlockOffset returns the offset of the block immediately to the
// right of blockOffset, or alloc.heap.HeapHi() if blockOffset is the
// last block in the heap.
func (alloc *Allocator) nextBlockOffset(blockOffset int64) int64 {
	return blockOffset + alloc.blockSize(blockOffset)
}

// prevBlockOffset returns the offset of the block immediately to the
// left of blockOffset by reading that neighbour's footer. Callers must
// not call this on the first block in the heap.
func (alloc *Allocator) prevBlockOffset(blockOffset int64) int64 {
	prevSize, _ := unpackTag(alloc.heap.ReadUint32(blockOffset - footerSize))
	return blockOffset - prevSize
}

// insideHeap reports whether blockOffset names an existing block:
// strictly between the sentinel at the start of the heap and
// alloc.heap.HeapHi().
func (alloc *Allocator) insideHeap(blockOffset int64) bool {
	return blockOffset >= alloc.firstBlock && blockOffset < alloc.heap.HeapHi()
}
