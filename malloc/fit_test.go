package malloc

import "testing"

func TestFitFirstFitWithinClass(t *testing.T) {
	alloc := NewAllocator()
	if err := alloc.Init(nil, nil); err != nil {
		t.Fatalf("unexpected err %v", err)
	}

	small := newfreeblock(t, alloc, 32)
	big := newfreeblock(t, alloc, 48)
	alloc.listPush(small)
	alloc.listPush(big) // list order within class: big -> small

	if x := alloc.fit(40); x != big {
		t.Errorf("expected first block big enough (%v), got %v", big, x)
	}
}

func TestFitSpillsToWiderClass(t *testing.T) {
	alloc := NewAllocator()
	if err := alloc.Init(nil, nil); err != nil {
		t.Fatalf("unexpected err %v", err)
	}

	wide := newfreeblock(t, alloc, 200) // lands in a class beyond class(40)
	alloc.listPush(wide)

	if x := alloc.fit(40); x != wide {
		t.Errorf("expected to spill into wider class and find %v, got %v", wide, x)
	}
}

func TestFitNoneAvailable(t *testing.T) {
	alloc := NewAllocator()
	if err := alloc.Init(nil, nil); err != nil {
		t.Fatalf("unexpected err %v", err)
	}
	if x := alloc.fit(40); x != -1 {
		t.Errorf("expected -1, got %v", x)
	}
}
