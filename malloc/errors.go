package malloc

import "errors"

// ErrOutOfMemory is returned when the heap provider refuses to grow the
// heap far enough to satisfy an allocation.
var ErrOutOfMemory = errors.New("malloc.outofmemory")

// ErrAlreadyInitialized is returned by Init when called more than once
// on the same Allocator.
var ErrAlreadyInitialized = errors.New("malloc.alreadyinitialized")

// ErrHeapGrow is returned by the default HeapProvider when Sbrk is
// asked to grow past its configured maximum capacity.
var ErrHeapGrow = errors.New("malloc.heapgrowfailed")

// ErrCorruptHeap is panicked with when the boundary tags or free-list
// table are found to be in a state the allocator's own invariants rule
// out: a block claimed to be on a size class's free list but not
// reachable by walking it, or a block handed to Free that its own
// header says is not currently allocated.
var ErrCorruptHeap = errors.New("malloc.corruptheap")
