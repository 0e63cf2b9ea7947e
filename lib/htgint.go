package lib

import "math"
import "strconv"

// HistogramInt64 buckets int64 samples into fixed-width bins between
// from and till, alongside the same running mean/variance accounting
// AverageInt64 does. malloc/stats.go uses one to summarize the sizes
// of blocks actually placed on the heap.
type HistogramInt64 struct {
	n         int64
	minval    int64
	maxval    int64
	sum       int64
	sumsq     float64
	histogram []int64
	init      bool
	from      int64
	till      int64
	width     int64
}

// NewhistorgramInt64 returns a histogram bucketing samples from..till
// into bins width wide, plus one underflow and one overflow bucket.
func NewhistorgramInt64(from, till, width int64) *HistogramInt64 {
	from = (from / width) * width
	till = (till / width) * width
	h := &HistogramInt64{from: from, till: till, width: width}
	h.histogram = make([]int64, 1+((till-from)/width)+1)
	return h
}

// Add folds sample into the running statistics and its bucket.
func (h *HistogramInt64) Add(sample int64) {
	h.n++
	h.sum += sample
	f := float64(sample)
	h.sumsq += f * f
	if h.init == false || sample < h.minval {
		h.minval = sample
		h.init = true
	}
	if h.maxval < sample {
		h.maxval = sample
	}

	if sample < h.from {
		h.histogram[0]++
	} else if sample >= h.till {
		h.histogram[len(h.histogram)-1]++
	} else {
		h.histogram[((sample-h.from)/h.width)+1]++
	}
}

func (h *HistogramInt64) mean() int64 {
	if h.n == 0 {
		return 0
	}
	return int64(float64(h.sum) / float64(h.n))
}

func (h *HistogramInt64) variance() float64 {
	if h.n == 0 {
		return 0
	}
	nF, meanF := float64(h.n), float64(h.mean())
	return (h.sumsq / nF) - (meanF * meanF)
}

func (h *HistogramInt64) sd() float64 {
	if h.n == 0 {
		return 0
	}
	return math.Sqrt(h.variance())
}

// buckets returns a cumulative tally of the histogram's bins, from the
// underflow bin up to the highest non-empty one, each keyed by the
// bin's exclusive upper bound; the highest non-empty bin's tally is
// keyed "+" instead. Bins above it are left out.
func (h *HistogramInt64) buckets() map[string]int64 {
	m := make(map[string]int64)
	cumm := int64(0)
	for i := len(h.histogram) - 1; i >= 0; i-- {
		if h.histogram[i] == 0 {
			continue
		}
		for j := 0; j <= i; j++ {
			v := h.histogram[j]
			key := strconv.Itoa(int(h.from + (int64(j) * h.width)))
			cumm += v
			if j == i {
				m["+"] = cumm
			} else {
				m[key] = cumm
			}
		}
		break
	}
	return m
}

// Fullstats returns sample count, min, max, mean, variance, standard
// deviation and the cumulative bucket tally, suitable for embedding in
// a larger stats report.
func (h *HistogramInt64) Fullstats() map[string]interface{} {
	return map[string]interface{}{
		"samples":     h.n,
		"min":         h.minval,
		"max":         h.maxval,
		"mean":        h.mean(),
		"variance":    h.variance(),
		"stddeviance": h.sd(),
		"histogram":   h.buckets(),
	}
}
