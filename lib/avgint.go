package lib

import "math"

// AverageInt64 accumulates running mean, variance and standard
// deviation over a stream of int64 samples without retaining any of
// them. malloc/stats.go uses one to summarize the sizes Alloc is
// actually asked for.
type AverageInt64 struct {
	n      int64
	minval int64
	maxval int64
	sum    int64
	sumsq  float64
	init   bool
}

// Add folds sample into the running statistics.
func (av *AverageInt64) Add(sample int64) {
	av.n++
	av.sum += sample
	f := float64(sample)
	av.sumsq += f * f
	if av.init == false || sample < av.minval {
		av.minval = sample
		av.init = true
	}
	if av.maxval < sample {
		av.maxval = sample
	}
}

func (av *AverageInt64) mean() int64 {
	if av.n == 0 {
		return 0
	}
	return int64(float64(av.sum) / float64(av.n))
}

func (av *AverageInt64) variance() int64 {
	if av.n == 0 {
		return 0
	}
	nF, meanF := float64(av.n), float64(av.mean())
	return int64((av.sumsq / nF) - (meanF * meanF))
}

func (av *AverageInt64) sd() int64 {
	if av.n == 0 {
		return 0
	}
	return int64(math.Sqrt(float64(av.variance())))
}

// Stats returns the accumulated sample count, min, max, mean,
// variance and standard deviation as a map suitable for embedding in
// a larger stats report.
func (av *AverageInt64) Stats() map[string]interface{} {
	return map[string]interface{}{
		"samples":     av.n,
		"min":         av.minval,
		"max":         av.maxval,
		"mean":        av.mean(),
		"variance":    av.variance(),
		"stddeviance": av.sd(),
	}
}
