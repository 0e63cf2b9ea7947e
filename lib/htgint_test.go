package lib

import "reflect"
import "testing"

func TestHistogramInt(t *testing.T) {
	h := NewhistorgramInt64(3, 97, 3)
	for i := 1; i <= 100; i++ {
		h.Add(int64(i))
	}

	full := h.Fullstats()
	if x, y := int64(1), full["min"].(int64); x != y {
		t.Errorf("min: expected %v, got %v", x, y)
	} else if x, y := int64(100), full["max"].(int64); x != y {
		t.Errorf("max: expected %v, got %v", x, y)
	} else if x, y := int64(100), full["samples"].(int64); x != y {
		t.Errorf("samples: expected %v, got %v", x, y)
	} else if x, y := int64(100*101)/2/100, full["mean"].(int64); x != y {
		t.Errorf("mean: expected %v, got %v", x, y)
	} else if x, y := 883.5, full["variance"].(float64); x != y {
		t.Errorf("variance: expected %v, got %v", x, y)
	} else if x, y := 29.723727895403698, full["stddeviance"].(float64); x != y {
		t.Errorf("stddeviance: expected %v, got %v", x, y)
	}

	// check histogram buckets, embedded within Fullstats.
	samples := []int64{0, 1, 2, 3, 4, 5, 6, 7, 9, 10, 11, 12, 13, 14, 15, 16, 17}

	ref := map[string]int64{"12": 11, "15": 14, "+": 17, "6": 6, "9": 8}
	h = NewhistorgramInt64(6, 15, 3)
	for _, sample := range samples {
		h.Add(sample)
	}
	if data := h.Fullstats()["histogram"]; !reflect.DeepEqual(ref, data) {
		t.Errorf("expected %v, got %v", ref, data)
	}

	ref = map[string]int64{"12": 11, "15": 14, "+": 17, "6": 6, "3": 3, "9": 8}
	h = NewhistorgramInt64(3, 16, 3)
	for _, sample := range samples {
		h.Add(sample)
	}
	if data := h.Fullstats()["histogram"]; !reflect.DeepEqual(ref, data) {
		t.Errorf("expected %v, got %v", ref, data)
	}

	ref = map[string]int64{"9": 8, "12": 11, "0": 0, "3": 3, "6": 6, "+": 17}
	h = NewhistorgramInt64(2, 14, 3)
	for _, sample := range samples {
		h.Add(sample)
	}
	if data := h.Fullstats()["histogram"]; !reflect.DeepEqual(ref, data) {
		t.Errorf("expected %v, got %v", ref, data)
	}
}

func BenchmarkHtgintAdd(b *testing.B) {
	htg := NewhistorgramInt64(1, int64(b.N), 5)
	for i := 0; i <= b.N; i++ {
		htg.Add(int64(i))
	}
}

func BenchmarkHtgintFullstats(b *testing.B) {
	htg := NewhistorgramInt64(1, int64(b.N), 5)
	for i := 0; i <= b.N; i++ {
		htg.Add(int64(i))
	}
	b.ResetTimer()
	for i := 0; i <= b.N; i++ {
		htg.Fullstats()
	}
}
