package malloc

import s "github.com/bnclabs/gosettings"

// Default is a package level Allocator, lazily created by the first
// call to Alloc, Free or Realloc below. Most applications only ever
// need one heap; Default saves them from threading an *Allocator
// through every call site that just wants to borrow and return a
// little memory.
var Default *Allocator

// InitDefault (re)creates Default with settings, discarding whatever
// Default previously pointed at. Call it once, before the first use
// of Alloc/Free/Realloc, if the zero-value settings Default otherwise
// initializes with aren't suitable.
func InitDefault(settings s.Settings) error {
	Default = NewAllocator()
	return Default.Init(settings, nil)
}

func ensureDefault() {
	if Default == nil {
		Default = NewAllocator()
		if err := Default.Init(s.Settings{}, nil); err != nil {
			panic(err)
		}
	}
}

// Alloc reserves n bytes from Default, initializing Default with its
// zero-value settings on first use.
func Alloc(n int64) (int64, error) {
	ensureDefault()
	return Default.Alloc(n)
}

// Free releases payloadOffset, previously returned by Alloc or
// Realloc, back to Default.
func Free(payloadOffset int64) {
	ensureDefault()
	Default.Free(payloadOffset)
}

// Realloc resizes the block at payloadOffset, previously returned by
// Alloc or Realloc, to n bytes within Default.
func Realloc(payloadOffset, n int64) (int64, error) {
	ensureDefault()
	return Default.Realloc(payloadOffset, n)
}
