package spatial

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePointWKT parses a "POINT(lon lat)" well-known-text string as stored by
// the ingestion pipeline. Returns lon, lat.
func ParsePointWKT(s string) (float64, float64, error) {
	trimmed := strings.TrimSpace(s)
	upper := strings.ToUpper(trimmed)
	if !strings.HasPrefix(upper, "POINT(") || !strings.HasSuffix(trimmed, ")") {
		return 0, 0, fmt.Errorf("not a WKT point: %q", s)
	}

	inner := trimmed[len("POINT(") : len(trimmed)-1]
	parts := strings.Fields(inner)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("malformed WKT point: %q", s)
	}

	lon, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("malformed WKT longitude: %q", s)
	}
	lat, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("malformed WKT latitude: %q", s)
	}

	return lon, lat, nil
}
