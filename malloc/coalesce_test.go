package malloc

import "testing"

func TestCoalesceBothNeighbours(t *testing.T) {
	alloc := NewAllocator()
	if err := alloc.Init(nil, nil); err != nil {
		t.Fatalf("unexpected err %v", err)
	}

	a := newfreeblock(t, alloc, 32)
	b := newfreeblock(t, alloc, 32)
	c := newfreeblock(t, alloc, 32)

	// a and c are already free and linked; b is freshly freed and not
	// yet linked, mirroring how Free() calls coalesce before listPush.
	alloc.listPush(a)
	alloc.listPush(c)

	merged := alloc.coalesce(b)
	if merged != a {
		t.Fatalf("expected merge to start at %v, got %v", a, merged)
	}
	if x := alloc.blockSize(merged); x != 96 {
		t.Errorf("expected merged size %v, got %v", 96, x)
	}
	if alloc.blockAllocated(merged) {
		t.Errorf("expected merged block to be free")
	}

	class := alloc.sizeClass(32)
	for cur := alloc.classHead(class); cur != -1; cur = alloc.nextFree(cur) {
		if cur == a || cur == c {
			t.Errorf("expected %v to have been unlinked by coalesce", cur)
		}
	}
}

func TestCoalesceNoFreeNeighbours(t *testing.T) {
	alloc := NewAllocator()
	if err := alloc.Init(nil, nil); err != nil {
		t.Fatalf("unexpected err %v", err)
	}

	a := newfreeblock(t, alloc, 32)
	alloc.writeTag(a, 32, true) // allocated, not a coalesce candidate
	b := newfreeblock(t, alloc, 32)
	c := newfreeblock(t, alloc, 32)
	alloc.writeTag(c, 32, true)

	merged := alloc.coalesce(b)
	if merged != b {
		t.Fatalf("expected no merge, got offset %v instead of %v", merged, b)
	}
	if x := alloc.blockSize(merged); x != 32 {
		t.Errorf("expected unchanged size %v, got %v", 32, x)
	}
}
