package malloc

import "github.com/cloudfoundry/gosigar"
import s "github.com/bnclabs/gosettings"

// ClassWidth is the default byte-width of each size class in the
// segregated free-list table, used by the naive size_class hash.
const ClassWidth = int64(64)

// NumClasses is the number of size-class buckets in the segregated
// free-list table.
const NumClasses = 8

// MinBlockSize is the smallest block this allocator will ever hand
// out: 4 byte header, 8 byte payload wide enough for a free-list link,
// 4 byte footer.
const MinBlockSize = int64(16)

// Alignment all payload addresses and block sizes are a multiple of.
const Alignment = int64(8)

// DefaultInitialCapacity is the initial size, in bytes, the default
// HeapProvider pre-reserves its backing buffer to. This only avoids
// Go-slice reallocation churn during warm-up; it has no effect on the
// exact-n growth contract of growHeap.
const DefaultInitialCapacity = int64(64 * 1024)

// Defaultsettings for a new Allocator.
//
// "heap.initcapacity" (int64, default: a fraction of free system RAM)
//		Bytes the default HeapProvider pre-reserves for its backing
//		buffer.
//
// "heap.maxcapacity" (int64, default: 0, meaning unbounded)
//		If non-zero, Sbrk fails once the heap would grow past this
//		many bytes, simulating an out-of-memory host.
//
// "classwidth" (int64, default: <ClassWidth>)
//		Byte width of each of the 8 size-class buckets.
func Defaultsettings() s.Settings {
	return s.Settings{
		"heap.initcapacity": defaultInitCapacity(),
		"heap.maxcapacity":  int64(0),
		"classwidth":        ClassWidth,
	}
}

// defaultInitCapacity sizes the initial heap-provider reservation off
// a slice of free system RAM, mirroring how other gostore components
// size their arenas from sigar.Mem, while staying modest since this
// is only a pre-reservation, not a limit.
func defaultInitCapacity() int64 {
	mem := sigar.Mem{}
	if err := mem.Get(); err != nil {
		return DefaultInitialCapacity
	}
	capacity := int64(mem.Free / 1024) // 0.1% of free RAM
	if capacity < DefaultInitialCapacity {
		return DefaultInitialCapacity
	}
	return capacity
}
