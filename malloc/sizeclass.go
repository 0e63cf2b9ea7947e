package malloc

// The segregated free-list table lives at the very start of the heap:
// NumClasses consecutive 8 byte slots, each holding the heap-relative
// offset of the head of that class's free list, or -1 if the class is
// empty. sizeClass buckets a block's total size into one of those
// slots; class width is tunable through "classwidth" but always
// defaults to ClassWidth.

// tableSize is the number of bytes the free-list table itself
// occupies at the head of the heap.
func tableSize() int64 {
	return int64(NumClasses) * 8
}

// classSlotOffset returns the offset of class c's head slot in the
// free-list table.
func classSlotOffset(c int) int64 {
	return int64(c) * 8
}

// sizeClass buckets size into one of the NumClasses free-list classes.
// Every class beyond the last absorbs all larger sizes, so fit()
// always has somewhere to start searching regardless of how large size
// is.
func (alloc *Allocator) sizeClass(size int64) int {
	c := int(size / alloc.classwidth)
	if c >= NumClasses {
		c = NumClasses - 1
	}
	return c
}

// classHead returns the offset of the first free block in class c, or
// -1 if class c is currently empty.
func (alloc *Allocator) classHead(c int) int64 {
	return alloc.heap.ReadOffset(classSlotOffset(c))
}

// setClassHead updates class c's head slot to point at blockOffset (or
// -1 to mark the class empty).
func (alloc *Allocator) setClassHead(c int, blockOffset int64) {
	alloc.heap.WriteOffset(classSlotOffset(c), blockOffset)
}
