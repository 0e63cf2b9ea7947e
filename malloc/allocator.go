package malloc

import "fmt"

import s "github.com/bnclabs/gosettings"
import "github.com/bnclabs/sbrkmalloc/lib"

// Allocator is a general purpose dynamic memory allocator over a
// single, contiguous, monotonically growable heap. It is not safe for
// concurrent use; callers needing that must serialize their own calls
// to Alloc, Free and Realloc.
type Allocator struct {
	heap        HeapProvider
	classwidth  int64
	firstBlock  int64
	initialized bool

	logComponent string
	allocsizes   *lib.AverageInt64
	blocksizes   *lib.HistogramInt64
	nallocs      int64
	nfrees       int64
	ngrows       int64
}

// NewAllocator returns a freshly constructed, uninitialized Allocator.
// Call Init before using it.
func NewAllocator() *Allocator {
	return &Allocator{logComponent: "malloc"}
}

// Init prepares alloc's heap: it asks heap (or, if nil, a default
// Heap built from settings' "heap.initcapacity"/"heap.maxcapacity") to
// reserve the segregated free-list table and an allocated sentinel
// block, and stamps every free-list class empty. Init may only be
// called once per Allocator.
func (alloc *Allocator) Init(settings s.Settings, heap HeapProvider) error {
	if alloc.initialized {
		return ErrAlreadyInitialized
	}
	settings = s.Settings{}.Mixin(Defaultsettings(), settings)

	alloc.classwidth = settings.Int64("classwidth")
	alloc.allocsizes = &lib.AverageInt64{}
	alloc.blocksizes = lib.NewhistorgramInt64(0, 4096, 64)

	if heap == nil {
		initcap := settings.Int64("heap.initcapacity")
		maxcap := settings.Int64("heap.maxcapacity")
		heap = NewHeap(initcap, maxcap)
	}
	alloc.heap = heap

	// alignpad puts every block header at headerSize past an Alignment
	// boundary, so every payload starts on one.
	alignpad := Alignment - headerSize
	prologue := tableSize() + alignpad + MinBlockSize
	offset, err := alloc.heap.Sbrk(prologue)
	if err != nil {
		return err
	}
	for c := 0; c < NumClasses; c++ {
		alloc.setClassHead(c, NullOffset)
	}
	sentinel := offset + tableSize() + alignpad
	alloc.writeTag(sentinel, MinBlockSize, true)
	alloc.firstBlock = sentinel + MinBlockSize

	alloc.initialized = true
	infof("%v Init: firstBlock at %v, classwidth %v\n", alloc.logPrefix(), alloc.firstBlock, alloc.classwidth)
	return nil
}

// blockSizeFor returns the total, tag-inclusive, Alignment-rounded
// block size needed to hold an n byte payload, floored to
// MinBlockSize.
func blockSizeFor(n int64) int64 {
	size := alignUp(n+tagOverhead, Alignment)
	if size < MinBlockSize {
		size = MinBlockSize
	}
	return size
}

// alignUp rounds n up to the next multiple of align.
func alignUp(n, align int64) int64 {
	return ((n + align - 1) / align) * align
}

// Alloc reserves n bytes and returns the heap-relative offset of the
// first byte of usable payload. A degenerate request, n == 0, is not
// an error: it returns NullOffset. It returns ErrOutOfMemory if the
// heap provider cannot be grown far enough to satisfy a genuine
// request.
func (alloc *Allocator) Alloc(n int64) (int64, error) {
	if n == 0 {
		return NullOffset, nil
	}
	if n < 0 {
		panic(fmt.Errorf("malloc: Alloc called with negative n %v", n))
	}
	size := blockSizeFor(n)

	blockOffset := alloc.fit(size)
	if blockOffset == NullOffset {
		var err error
		blockOffset, err = alloc.growHeap(size)
		if err != nil {
			return NullOffset, err
		}
	} else {
		alloc.listRemove(blockOffset)
	}

	placed := alloc.place(blockOffset, size)
	alloc.nallocs++
	alloc.allocsizes.Add(n)
	alloc.blocksizes.Add(size)
	debugf("%v Alloc(%v): block %v size %v\n", alloc.logPrefix(), n, placed, size)
	return payloadOffset(placed), nil
}

// place carves out size bytes, tagged allocated, from the free block
// at blockOffset. If what's left over is at least MinBlockSize, the
// remainder becomes its own free block and is pushed back onto the
// free-list table; otherwise the whole block, including any tiny
// slack, is handed to the caller to avoid creating unusably small
// fragments.
func (alloc *Allocator) place(blockOffset, size int64) int64 {
	available := alloc.blockSize(blockOffset)
	remainder := available - size
	if remainder >= MinBlockSize {
		alloc.writeTag(blockOffset, size, true)
		free := blockOffset + size
		alloc.writeTag(free, remainder, false)
		alloc.listPush(free)
	} else {
		alloc.writeTag(blockOffset, available, true)
	}
	return blockOffset
}

// growHeap asks the heap provider for exactly size more bytes and
// returns the offset of the resulting new free block. It never over
// allocates beyond size and never attempts to coalesce the new block
// with whatever preceded it in the heap, mirroring the original sbrk
// based allocator this package's semantics are drawn from.
func (alloc *Allocator) growHeap(size int64) (int64, error) {
	offset, err := alloc.heap.Sbrk(size)
	if err != nil {
		return NullOffset, ErrOutOfMemory
	}
	alloc.writeTag(offset, size, false)
	alloc.ngrows++
	infof("%v growHeap: +%v bytes at %v\n", alloc.logPrefix(), size, offset)
	return offset, nil
}

// Free releases the block whose payload begins at payloadOffset
// (an offset previously returned by Alloc or Realloc), coalescing it
// with any free neighbours and returning it to the free-list table.
// Freeing NullOffset is a no-op. It is a logic error to Free any other
// offset not currently allocated by this Allocator.
func (alloc *Allocator) Free(payloadOffset int64) {
	if payloadOffset == NullOffset {
		return
	}
	blockOffset := payloadOffset - headerSize
	if !alloc.blockAllocated(blockOffset) {
		panic(fmt.Errorf("%w: Free called on a block not allocated: %v", ErrCorruptHeap, blockOffset))
	}
	size := alloc.blockSize(blockOffset)
	alloc.writeTag(blockOffset, size, false)
	merged := alloc.coalesce(blockOffset)
	alloc.listPush(merged)
	alloc.nfrees++
	debugf("%v Free(%v): block %v\n", alloc.logPrefix(), payloadOffset, blockOffset)
}

// Realloc resizes the block at payloadOffset to hold n bytes,
// preserving the min(old, n) leading bytes of its payload, and returns
// the (possibly different) offset of the resized block's payload.
// Realloc never shrinks or grows a block in place; it always allocates
// fresh, copies, and frees the original, the same naive strategy the
// boundary-tag allocator this package generalizes uses.
//
// Realloc(NullOffset, n) behaves as Alloc(n). Realloc(p, 0) behaves as
// Free(p), returning NullOffset.
func (alloc *Allocator) Realloc(payloadOffset, n int64) (int64, error) {
	if payloadOffset == NullOffset {
		return alloc.Alloc(n)
	}
	if n == 0 {
		alloc.Free(payloadOffset)
		return NullOffset, nil
	}

	oldBlock := payloadOffset - headerSize
	oldSize := alloc.blockSize(oldBlock)
	oldPayload := oldSize - tagOverhead

	newPayload, err := alloc.Alloc(n)
	if err != nil {
		return NullOffset, err
	}

	tocopy := oldPayload
	if n < tocopy {
		tocopy = n
	}
	data := alloc.heap.ReadBytes(payloadOffset, tocopy)
	alloc.heap.WriteBytes(newPayload, data)

	alloc.Free(payloadOffset)
	return newPayload, nil
}

func (alloc *Allocator) logPrefix() string {
	return alloc.logComponent
}
