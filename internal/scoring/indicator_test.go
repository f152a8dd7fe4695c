package scoring

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nomadlab/seoulbang-backend-go/internal/models"
)

func TestBuildDensityIndicatorBounds(t *testing.T) {
	counts := map[string]int{"11010100": 10, "11010200": 100, "11010300": 1}
	areas := map[string]float64{
		"11010100": 1e6,
		"11010200": 1e6,
		"11010300": 1e6,
	}

	scores := BuildDensityIndicator(counts, areas)
	require.Len(t, scores, 3)
	require.Equal(t, 1.0, scores["11010200"], "max density must score exactly 1")
	require.Equal(t, 0.0, scores["11010300"], "min density must score exactly 0")
	require.Greater(t, scores["11010100"], 0.0)
	require.Less(t, scores["11010100"], 1.0)
}

func TestBuildDensityIndicatorNormalizesByArea(t *testing.T) {
	// Same count, one dong four times larger: the smaller dong is denser
	counts := map[string]int{"a": 50, "b": 50}
	areas := map[string]float64{"a": 1e6, "b": 4e6}

	scores := BuildDensityIndicator(counts, areas)
	require.Equal(t, 1.0, scores["a"])
	require.Equal(t, 0.0, scores["b"])
}

func TestBuildDensityIndicatorDropsUnknownDongs(t *testing.T) {
	counts := map[string]int{"known": 5, "unknown": 500, "zeroarea": 3}
	areas := map[string]float64{"known": 1e6, "zeroarea": 0}

	scores := BuildDensityIndicator(counts, areas)
	require.Contains(t, scores, "known")
	require.NotContains(t, scores, "unknown", "dong missing from the geometry registry")
	require.NotContains(t, scores, "zeroarea", "zero denominator must be dropped, not NaN")
}

func quietSamples(code string, totals []float64, youthPerHour float64) []models.PopulationSample {
	samples := make([]models.PopulationSample, 0, len(totals))
	for hour, total := range totals {
		samples = append(samples, models.PopulationSample{
			DongCode:         code,
			Hour:             hour,
			TotalCount:       total,
			MaleYouthCount:   youthPerHour / 2,
			FemaleYouthCount: youthPerHour / 2,
		})
	}
	return samples
}

func TestBuildQuietYouthIndicators(t *testing.T) {
	// calmdong: flat population, all of it young.
	// busydong: strongly oscillating and larger population, none young.
	calmTotals := make([]float64, 24)
	busyTotals := make([]float64, 24)
	for h := 0; h < 24; h++ {
		calmTotals[h] = 100
		busyTotals[h] = 100
		if h%2 == 0 {
			busyTotals[h] = 3900
		}
	}

	samples := append(
		quietSamples("calmdong", calmTotals, 100),
		quietSamples("busydong", busyTotals, 0)...,
	)
	areas := map[string]float64{"calmdong": 1e6, "busydong": 1e6}

	scores := BuildQuietYouthIndicators(samples, areas)
	require.Len(t, scores, 2)

	require.Equal(t, 1.0, scores["calmdong"].Quiet, "flat, small population is the quietest")
	require.Equal(t, 0.0, scores["busydong"].Quiet)

	require.Equal(t, 1.0, scores["calmdong"].Youth, "all-youth population maximizes both blend terms")
	require.Equal(t, 0.0, scores["busydong"].Youth)
}

func TestBuildQuietYouthIndicatorsDropsZeroDenominators(t *testing.T) {
	samples := []models.PopulationSample{
		{DongCode: "empty", Hour: 3, TotalCount: 0},
		{DongCode: "noarea", Hour: 3, TotalCount: 500},
		{DongCode: "ok", Hour: 3, TotalCount: 500, MaleYouthCount: 100, FemaleYouthCount: 100},
	}
	areas := map[string]float64{"empty": 1e6, "ok": 1e6}

	scores := BuildQuietYouthIndicators(samples, areas)
	require.NotContains(t, scores, "empty", "zero total population")
	require.NotContains(t, scores, "noarea", "missing geometry row")
	require.Contains(t, scores, "ok")
}

func TestBuildQuietYouthIndicatorsScoresWithinUnitRange(t *testing.T) {
	samples := append(append(
		quietSamples("a", []float64{10, 20, 30, 40}, 5),
		quietSamples("b", []float64{500, 100, 900, 300}, 250)...),
		quietSamples("c", []float64{50, 50, 60, 55}, 40)...,
	)
	areas := map[string]float64{"a": 2e6, "b": 5e5, "c": 1e6}

	scores := BuildQuietYouthIndicators(samples, areas)
	require.Len(t, scores, 3)
	for code, s := range scores {
		require.GreaterOrEqual(t, s.Quiet, 0.0, "dong %s", code)
		require.LessOrEqual(t, s.Quiet, 1.0, "dong %s", code)
		require.GreaterOrEqual(t, s.Youth, 0.0, "dong %s", code)
		require.LessOrEqual(t, s.Youth, 1.0, "dong %s", code)
	}
}
