package scoring

import (
	"math"
	"sort"

	"github.com/nomadlab/seoulbang-backend-go/internal/models"
	"github.com/nomadlab/seoulbang-backend-go/internal/stats"
)

// timeWeights down-weights commute and daytime hours so the quiet indicator
// reflects how a dong behaves during the hours people want quiet.
var timeWeights = map[int]float64{
	0: 1.0, 1: 1.0, 2: 1.0, 3: 1.0, 4: 1.0, 5: 1.0,
	6: 0.8, 7: 0.3, 8: 0.3, 9: 0.4,
	10: 0.5, 11: 0.5, 12: 0.5, 13: 0.5, 14: 0.5, 15: 0.5, 16: 0.5, 17: 0.5,
	18: 0.4, 19: 0.4, 20: 0.4, 21: 0.4,
	22: 1.0, 23: 1.0,
}

const defaultTimeWeight = 0.5

// BuildDensityIndicator computes the density-based indicator score for each
// dong: facility count per km², log1p-compressed, min-max normalized across
// the batch and rounded to 4 decimal places. Dongs without a positive area
// (unknown to the geometry registry) are dropped.
func BuildDensityIndicator(counts map[string]int, areasM2 map[string]float64) map[string]float64 {
	codes := make([]string, 0, len(counts))
	for code := range counts {
		if areasM2[code] > 0 {
			codes = append(codes, code)
		}
	}
	sort.Strings(codes)

	logDensities := make([]float64, len(codes))
	for i, code := range codes {
		density := float64(counts[code]) / (areasM2[code] / 1e6)
		logDensities[i] = math.Log1p(density)
	}

	normalized := stats.Normalize(logDensities)

	scores := make(map[string]float64, len(codes))
	for i, code := range codes {
		scores[code] = stats.RoundTo(normalized[i], 4)
	}
	return scores
}

// QuietYouth holds the two indicators derived from population samples.
type QuietYouth struct {
	Quiet float64
	Youth float64
}

type dongPopulation struct {
	code         string
	weightedMean float64
	weightedStd  float64
	totalPop     float64
	youthPop     float64
	areaM2       float64
}

// BuildQuietYouthIndicators computes the quiet and youth indicator scores
// from per-hour population samples. Dongs with zero area, zero population or
// zero total time weight are dropped.
func BuildQuietYouthIndicators(samples []models.PopulationSample, areasM2 map[string]float64) map[string]QuietYouth {
	byDong := make(map[string][]models.PopulationSample)
	for _, s := range samples {
		byDong[s.DongCode] = append(byDong[s.DongCode], s)
	}

	var rows []dongPopulation
	for code, group := range byDong {
		areaM2 := areasM2[code]
		if areaM2 <= 0 {
			continue
		}

		values := make([]float64, len(group))
		weights := make([]float64, len(group))
		var weightSum, totalPop, youthPop float64
		for i, s := range group {
			w, ok := timeWeights[s.Hour]
			if !ok {
				w = defaultTimeWeight
			}
			values[i] = s.TotalCount
			weights[i] = w
			weightSum += w
			totalPop += s.TotalCount
			youthPop += s.MaleYouthCount + s.FemaleYouthCount
		}
		if weightSum == 0 || totalPop == 0 {
			continue
		}

		rows = append(rows, dongPopulation{
			code:         code,
			weightedMean: stats.WeightedMean(values, weights),
			weightedStd:  stats.WeightedStdDev(values, weights),
			totalPop:     totalPop,
			youthPop:     youthPop,
			areaM2:       areaM2,
		})
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].code < rows[j].code })

	n := len(rows)
	stdMix := make([]float64, n)
	meanMix := make([]float64, n)
	youthRatio := make([]float64, n)
	logYouthDensity := make([]float64, n)
	for i, r := range rows {
		// 60/40 blend of per-area density and the raw weighted statistic
		stdMix[i] = 0.6*(r.weightedStd/r.areaM2) + 0.4*r.weightedStd
		meanMix[i] = 0.6*(r.weightedMean/r.areaM2) + 0.4*r.weightedMean
		youthRatio[i] = r.youthPop / r.totalPop
		logYouthDensity[i] = math.Log1p(r.youthPop / (r.areaM2 / 1e6))
	}

	normStd := stats.Normalize(stdMix)
	normMean := stats.Normalize(meanMix)
	normRatio := stats.Normalize(youthRatio)
	normDensity := stats.Normalize(logYouthDensity)

	scores := make(map[string]QuietYouth, n)
	for i, r := range rows {
		scores[r.code] = QuietYouth{
			Quiet: stats.RoundTo(1-(0.6*normStd[i]+0.4*normMean[i]), 4),
			Youth: stats.RoundTo(0.6*normRatio[i]+0.4*normDensity[i], 4),
		}
	}
	return scores
}
