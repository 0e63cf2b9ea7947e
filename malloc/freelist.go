package malloc

import "fmt"

// A free block's payload is never looked at by the owner once freed,
// so it doubles up as the storage for that block's free-list link. The
// smallest block this allocator creates, MinBlockSize, has room for
// exactly one 8 byte offset after its header — enough for a singly
// linked list, not a doubly linked one. listRemove therefore has to
// walk from the class head tracking its own predecessor cursor; it
// cannot jump straight to blockOffset's neighbours the way a doubly
// linked list could.

// nextFree reads the free-list link stored in blockOffset's payload.
func (alloc *Allocator) nextFree(blockOffset int64) int64 {
	return alloc.heap.ReadOffset(payloadOffset(blockOffset))
}

// setNextFree overwrites the free-list link stored in blockOffset's
// payload.
func (alloc *Allocator) setNextFree(blockOffset, next int64) {
	alloc.heap.WriteOffset(payloadOffset(blockOffset), next)
}

// listPush inserts blockOffset at the head of its size class's free
// list. blockOffset must already be tagged free. Pushing a block that
// is already its class's head is tolerated: its link is set to the
// null sentinel rather than to itself, since the usual head-chaining
// write would otherwise self-link it and hang every later traversal.
// Any blocks that followed it are then no longer reachable from the
// head.
func (alloc *Allocator) listPush(blockOffset int64) {
	c := alloc.sizeClass(alloc.blockSize(blockOffset))
	head := alloc.classHead(c)
	if head == blockOffset {
		alloc.setNextFree(blockOffset, NullOffset)
	} else {
		alloc.setNextFree(blockOffset, head)
	}
	alloc.setClassHead(c, blockOffset)
}

// listRemove unlinks blockOffset from its size class's free list. An
// empty list is left alone. Otherwise blockOffset must currently be a
// member of that list; ErrCorruptHeap is panicked with if the list can
// be walked to its end without finding it.
func (alloc *Allocator) listRemove(blockOffset int64) {
	c := alloc.sizeClass(alloc.blockSize(blockOffset))
	head := alloc.classHead(c)
	if head == NullOffset {
		return
	}
	if head == blockOffset {
		alloc.setClassHead(c, alloc.nextFree(blockOffset))
		alloc.setNextFree(blockOffset, NullOffset)
		return
	}
	prev := head
	for cur := alloc.nextFree(prev); cur != NullOffset && alloc.insideHeap(cur); cur = alloc.nextFree(prev) {
		if cur == blockOffset {
			alloc.setNextFree(prev, alloc.nextFree(blockOffset))
			alloc.setNextFree(blockOffset, NullOffset)
			return
		}
		prev = cur
	}
	panic(fmt.Errorf("%w: block %v not found in its free list", ErrCorruptHeap, blockOffset))
}
