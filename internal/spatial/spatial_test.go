package spatial

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePointWKT(t *testing.T) {
	lon, lat, err := ParsePointWKT("POINT(127.1076 37.5480)")
	require.NoError(t, err)
	require.Equal(t, 127.1076, lon)
	require.Equal(t, 37.5480, lat)
}

func TestParsePointWKTWhitespace(t *testing.T) {
	lon, lat, err := ParsePointWKT("  POINT(126.978 37.566)  ")
	require.NoError(t, err)
	require.Equal(t, 126.978, lon)
	require.Equal(t, 37.566, lat)
}

func TestParsePointWKTMalformed(t *testing.T) {
	cases := []string{
		"",
		"POINT()",
		"POINT(127.0)",
		"POINT(127.0 37.5 12.0)",
		"LINESTRING(0 0, 1 1)",
		"POINT(abc 37.5)",
	}
	for _, c := range cases {
		_, _, err := ParsePointWKT(c)
		require.Error(t, err, "input %q", c)
	}
}

func TestHaversineDistanceZero(t *testing.T) {
	require.Equal(t, 0.0, HaversineDistance(37.5480, 127.1076, 37.5480, 127.1076))
}

func TestHaversineDistanceKnown(t *testing.T) {
	// One degree of latitude along a meridian is ~111.19 km on a 6371 km sphere
	d := HaversineDistanceKm(37.0, 127.0, 38.0, 127.0)
	require.InDelta(t, 111.195, d, 0.01)
}

func TestHaversineDistanceUnits(t *testing.T) {
	meters := HaversineDistance(37.5, 127.0, 37.6, 127.1)
	km := HaversineDistanceKm(37.5, 127.0, 37.6, 127.1)
	require.InDelta(t, meters, km*1000, 1e-6)
}
