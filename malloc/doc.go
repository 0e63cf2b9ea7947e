// Package malloc implements a general purpose dynamic memory allocator
// on top of a single contiguous, monotonically growable heap region.
//
//   - Clients Alloc, Free and Realloc variably sized blocks; freed space
//     is reused via a segregated free-list table indexed by size class.
//   - The heap grows on demand through a HeapProvider (an sbrk-style
//     primitive); the default provider is an in-process growable byte
//     buffer so the package is self-contained and testable without an
//     OS sbrk(2) call.
//   - Every block, free or allocated, carries a boundary tag (a header
//     and a footer word) so neighbours can be found in O(1) without
//     walking the whole heap.
//   - Functions and methods on *Allocator are not thread safe; callers
//     needing concurrent access must serialize their own calls.
package malloc
