package scoring

import (
	"math"

	"github.com/nomadlab/seoulbang-backend-go/internal/stats"
)

// Distance decay constants in meters, except DecayCommuteSeconds which
// operates on commute time expressed in seconds.
const (
	DecayInfraMeters     = 500.0
	DecaySecurityMeters  = 300.0
	DecayTransportMeters = 300.0
	DecayCommuteSeconds  = 45.0 * 60.0
)

// DecayScore maps a distance to a proximity score via exp(-d/k), rounded to
// 4 decimal places. A zero distance scores exactly 1.
func DecayScore(distance, decay float64) float64 {
	return stats.RoundTo(math.Exp(-distance/decay), 4)
}

// DecayScoreOpt is DecayScore for a possibly missing distance. A missing
// distance scores 0.
func DecayScoreOpt(distance *float64, decay float64) float64 {
	if distance == nil {
		return 0
	}
	return DecayScore(*distance, decay)
}
