package rcn

import (
	"math"
	"sort"
)

// Summary holds descriptive statistics over the price-per-m2 column.
type Summary struct {
	Count int
	Mean  float64
	Std   float64
	Min   float64
	P25   float64
	P50   float64
	P75   float64
	Max   float64
}

// Describe computes descriptive statistics of PricePerM2 over records where
// it is present. ok is false when no record carries the value.
func Describe(txs []Transaction) (sum Summary, ok bool) {
	var vals []float64
	for _, t := range txs {
		if t.PricePerM2 != nil {
			vals = append(vals, float64(*t.PricePerM2))
		}
	}
	if len(vals) == 0 {
		return Summary{}, false
	}

	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)

	var total float64
	for _, v := range vals {
		total += v
	}
	mean := total / float64(len(vals))

	// Sample standard deviation (n-1); zero for a single value.
	var std float64
	if len(vals) > 1 {
		var ss float64
		for _, v := range vals {
			d := v - mean
			ss += d * d
		}
		std = math.Sqrt(ss / float64(len(vals)-1))
	}

	return Summary{
		Count: len(vals),
		Mean:  mean,
		Std:   std,
		Min:   sorted[0],
		P25:   quantile(sorted, 0.25),
		P50:   quantile(sorted, 0.50),
		P75:   quantile(sorted, 0.75),
		Max:   sorted[len(sorted)-1],
	}, true
}

// quantile interpolates linearly between the two nearest order statistics.
// Input must be sorted and non-empty.
func quantile(sorted []float64, q float64) float64 {
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}
