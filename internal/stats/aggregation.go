package stats

import (
	"math"
)

// Mean calculates the arithmetic mean of a slice of float64 values
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// WeightedMean calculates the weighted mean
func WeightedMean(values, weights []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	var sumWeighted, sumWeights float64
	for i, v := range values {
		w := 1.0
		if i < len(weights) {
			w = weights[i]
		}
		sumWeighted += v * w
		sumWeights += w
	}

	if sumWeights == 0 {
		return Mean(values)
	}

	return sumWeighted / sumWeights
}

// WeightedVariance calculates the population variance around the weighted mean
func WeightedVariance(values, weights []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	mean := WeightedMean(values, weights)
	var sumWeightedSquaredDiff, sumWeights float64

	for i, v := range values {
		w := 1.0
		if i < len(weights) {
			w = weights[i]
		}
		diff := v - mean
		sumWeightedSquaredDiff += w * diff * diff
		sumWeights += w
	}

	if sumWeights == 0 {
		return 0
	}

	return sumWeightedSquaredDiff / sumWeights
}

// WeightedStdDev calculates the weighted standard deviation
func WeightedStdDev(values, weights []float64) float64 {
	return math.Sqrt(WeightedVariance(values, weights))
}

// Min returns the minimum value
func Min(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	min := values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// Max returns the maximum value
func Max(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// Normalize rescales values to the [0, 1] range (min-max normalization).
// A constant input yields all zeros.
func Normalize(values []float64) []float64 {
	min := Min(values)
	max := Max(values)
	rangeVal := max - min

	if rangeVal == 0 {
		result := make([]float64, len(values))
		return result
	}

	result := make([]float64, len(values))
	for i, v := range values {
		result[i] = (v - min) / rangeVal
	}

	return result
}

// RoundTo rounds v to the given number of decimal places
func RoundTo(v float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}
