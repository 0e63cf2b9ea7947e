package malloc

import "encoding/binary"
import "fmt"

// HeapProvider abstracts the sbrk(2) primitive the allocator grows its
// backing storage through, and the handful of reads and writes it needs
// to do against that storage. Implementations need not be backed by
// process memory at all: a test can swap in a provider that fails Sbrk
// after a fixed budget, or one backed by an mmap'ed file.
type HeapProvider interface {
	// Sbrk grows the heap by n bytes and returns the offset, relative
	// to HeapLo, at which the new space begins. n is always positive
	// and a multiple of 8, except for the allocator's first request,
	// which also covers a 4 byte alignment pad. Returns ErrOutOfMemory (or a
	// provider specific error) if the heap cannot grow by n bytes.
	Sbrk(n int64) (offset int64, err error)

	// HeapLo is the offset of the first byte ever handed out by Sbrk.
	// It never changes once the provider is initialized.
	HeapLo() int64

	// HeapHi is one-past-the-last offset currently allocated by Sbrk.
	// It grows every time Sbrk succeeds.
	HeapHi() int64

	// ReadUint32 reads a 4 byte, big endian word at offset.
	ReadUint32(offset int64) uint32

	// WriteUint32 writes a 4 byte, big endian word at offset.
	WriteUint32(offset int64, v uint32)

	// ReadOffset reads an 8 byte, big endian heap-relative offset at
	// offset. A stored value of -1 denotes "no link".
	ReadOffset(offset int64) int64

	// WriteOffset writes an 8 byte, big endian heap-relative offset at
	// offset.
	WriteOffset(offset int64, v int64)

	// ReadBytes returns a read-only view of the n bytes at offset.
	ReadBytes(offset, n int64) []byte

	// WriteBytes copies data into the heap starting at offset.
	WriteBytes(offset int64, data []byte)
}

// Heap is the default, in-process HeapProvider: a single growable
// []byte standing in for the address space sbrk(2) would otherwise
// carve out of the OS process. Offsets handed to and returned from
// Heap are always relative to the start of this buffer, never raw Go
// slice indices into some other structure, so that a later
// reallocation of buf by append never invalidates a value a caller is
// holding onto.
type Heap struct {
	buf         []byte
	maxcapacity int64 // 0 means unbounded
}

// NewHeap creates a Heap with buf pre-allocated, but not committed, to
// initcapacity bytes of capacity. maxcapacity, if non-zero, is the
// largest the heap is ever allowed to grow to; Sbrk fails past it,
// simulating a host that has run out of memory.
func NewHeap(initcapacity, maxcapacity int64) *Heap {
	if initcapacity < 0 {
		initcapacity = 0
	}
	return &Heap{
		buf:         make([]byte, 0, initcapacity),
		maxcapacity: maxcapacity,
	}
}

// Sbrk implements HeapProvider.
func (heap *Heap) Sbrk(n int64) (int64, error) {
	if n <= 0 {
		panic(fmt.Errorf("malloc: Sbrk called with non-positive n %v", n))
	}
	offset := int64(len(heap.buf))
	newlen := offset + n
	if heap.maxcapacity > 0 && newlen > heap.maxcapacity {
		return 0, ErrHeapGrow
	}
	if int64(cap(heap.buf)) < newlen {
		grown := make([]byte, newlen, newlen*2)
		copy(grown, heap.buf)
		heap.buf = grown
	} else {
		heap.buf = heap.buf[:newlen]
	}
	return offset, nil
}

// HeapLo implements HeapProvider. The default provider's heap always
// starts at offset 0.
func (heap *Heap) HeapLo() int64 {
	return 0
}

// HeapHi implements HeapProvider.
func (heap *Heap) HeapHi() int64 {
	return int64(len(heap.buf))
}

// ReadUint32 implements HeapProvider.
func (heap *Heap) ReadUint32(offset int64) uint32 {
	return binary.BigEndian.Uint32(heap.buf[offset : offset+4])
}

// WriteUint32 implements HeapProvider.
func (heap *Heap) WriteUint32(offset int64, v uint32) {
	binary.BigEndian.PutUint32(heap.buf[offset:offset+4], v)
}

// ReadOffset implements HeapProvider.
func (heap *Heap) ReadOffset(offset int64) int64 {
	return int64(binary.BigEndian.Uint64(heap.buf[offset : offset+8]))
}

// WriteOffset implements HeapProvider.
func (heap *Heap) WriteOffset(offset int64, v int64) {
	binary.BigEndian.PutUint64(heap.buf[offset:offset+8], uint64(v))
}

// ReadBytes implements HeapProvider.
func (heap *Heap) ReadBytes(offset, n int64) []byte {
	return heap.buf[offset : offset+n]
}

// WriteBytes implements HeapProvider.
func (heap *Heap) WriteBytes(offset int64, data []byte) {
	copy(heap.buf[offset:offset+int64(len(data))], data)
}
