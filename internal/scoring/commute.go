package scoring

import (
	"github.com/nomadlab/seoulbang-backend-go/internal/spatial"
)

// Transport modes recognized by the commute estimator.
const (
	ModeCar    = "car"
	ModePublic = "public"
)

// TransportProfile approximates door-to-door travel from a straight-line
// distance. The correction factor accounts for non-straight routing and,
// for public transport, transfer overhead.
type TransportProfile struct {
	SpeedKmh         float64
	CorrectionFactor float64
}

var transportProfiles = map[string]TransportProfile{
	ModeCar:    {SpeedKmh: 25, CorrectionFactor: 2.5},
	ModePublic: {SpeedKmh: 15, CorrectionFactor: 3},
}

// ProfileFor returns the transport profile for a mode. Unknown modes fall
// back to the public profile.
func ProfileFor(mode string) TransportProfile {
	if p, ok := transportProfiles[mode]; ok {
		return p
	}
	return transportProfiles[ModePublic]
}

// AreaTransportMode picks the mode for neighborhood-level commute estimates:
// car unless the user listed public transport.
func AreaTransportMode(transportation []string) string {
	for _, t := range transportation {
		if t == ModePublic {
			return ModePublic
		}
	}
	return ModeCar
}

// FirstTransportMode picks the mode for listing-level commute estimates:
// the first listed mode, defaulting to public.
func FirstTransportMode(transportation []string) string {
	if len(transportation) == 0 {
		return ModePublic
	}
	return transportation[0]
}

// CommuteMinutes estimates door-to-door commute minutes between two points
// from the geodesic distance and a transport profile.
func CommuteMinutes(lat, lon, jobLat, jobLon float64, p TransportProfile) float64 {
	distanceKm := spatial.HaversineDistanceKm(lat, lon, jobLat, jobLon)
	return distanceKm * p.CorrectionFactor / p.SpeedKmh * 60
}
