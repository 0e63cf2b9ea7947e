package malloc

import "testing"

func TestSizeClass(t *testing.T) {
	alloc := NewAllocator()
	if err := alloc.Init(nil, nil); err != nil {
		t.Fatalf("unexpected err %v", err)
	}

	cases := []struct {
		size     int64
		expclass int
	}{
		{0, 0},
		{1, 0},
		{63, 0},
		{64, 1},
		{127, 1},
		{64 * 7, 7},
		{64*8 + 1000, 7},
		{1 << 20, 7},
	}
	for _, c := range cases {
		if x := alloc.sizeClass(c.size); x != c.expclass {
			t.Errorf("size %v: expected class %v, got %v", c.size, c.expclass, x)
		}
	}
}

func TestClassHeadRoundtrip(t *testing.T) {
	alloc := NewAllocator()
	if err := alloc.Init(nil, nil); err != nil {
		t.Fatalf("unexpected err %v", err)
	}
	for c := 0; c < NumClasses; c++ {
		if x := alloc.classHead(c); x != -1 {
			t.Errorf("class %v: expected empty (-1), got %v", c, x)
		}
	}
	alloc.setClassHead(3, 12345)
	if x := alloc.classHead(3); x != 12345 {
		t.Errorf("expected %v, got %v", 12345, x)
	}
}
