package scoring

import (
	"fmt"
	"strings"
)

// Recognized indicator keys. "safety" is the request-facing name of the
// security indicator.
const (
	KeyInfra     = "infra"
	KeySafety    = "safety"
	KeyTransport = "transport"
	KeyQuiet     = "quiet"
	KeyYouth     = "youth"
	KeyCommute   = "commute"
)

// MaxPriorityLen bounds the user priority list. The weight table below only
// defines up to three positions; longer lists are a caller error.
const MaxPriorityLen = 3

var recognizedKeys = map[string]bool{
	KeyInfra:     true,
	KeySafety:    true,
	KeyTransport: true,
	KeyQuiet:     true,
	KeyYouth:     true,
	KeyCommute:   true,
}

var positionWeights = map[int][]float64{
	1: {1.0},
	2: {0.6, 0.4},
	3: {0.5, 0.3, 0.2},
}

// youngAgeMax is the inclusive upper bound of the "young" age band used by
// both the default-priority table and the personalization multipliers.
const youngAgeMax = 34

type profileClass struct {
	young  bool
	gender string // "female", "male" or ""
}

var defaultPriorities = map[profileClass][]string{
	{true, "female"}:  {KeyYouth, KeyCommute, KeyInfra},
	{true, "male"}:    {KeyYouth, KeyCommute, KeyInfra},
	{true, ""}:        {KeyYouth, KeyCommute, KeyInfra},
	{false, "female"}: {KeySafety, KeyQuiet, KeyCommute},
	{false, "male"}:   {KeyCommute, KeyInfra, KeySafety},
	{false, ""}:       {KeyCommute, KeyInfra, KeySafety},
}

func classify(age int, gender string) profileClass {
	g := strings.ToLower(gender)
	if g != "female" && g != "male" {
		g = ""
	}
	return profileClass{
		young:  age >= 0 && age <= youngAgeMax,
		gender: g,
	}
}

// ValidatePriority checks that a user-supplied priority list maps onto the
// recognized indicator keys and does not exceed the weight table.
func ValidatePriority(priority []string) error {
	if len(priority) > MaxPriorityLen {
		return fmt.Errorf("priority list too long: %d entries, at most %d allowed", len(priority), MaxPriorityLen)
	}
	for _, key := range priority {
		if !recognizedKeys[key] {
			return fmt.Errorf("unrecognized priority key: %q", key)
		}
	}
	return nil
}

// DefaultPriority returns the 3-item priority list assigned when the user
// supplied none.
func DefaultPriority(age int, gender string) []string {
	priority := defaultPriorities[classify(age, gender)]
	out := make([]string, len(priority))
	copy(out, priority)
	return out
}

// ResolvePriority validates a user-supplied priority list or falls back to
// the age/gender default.
func ResolvePriority(priority []string, age int, gender string) ([]string, error) {
	if len(priority) == 0 {
		return DefaultPriority(age, gender), nil
	}
	if err := ValidatePriority(priority); err != nil {
		return nil, err
	}
	return priority, nil
}

// PositionWeights returns the positional weight vector for a priority list
// of length n (1 <= n <= MaxPriorityLen).
func PositionWeights(n int) ([]float64, error) {
	w, ok := positionWeights[n]
	if !ok {
		return nil, fmt.Errorf("no weight vector for priority length %d", n)
	}
	return w, nil
}

// Adjustments returns the personalization multipliers for one request,
// keyed by indicator. The map is freshly built per call so requests never
// share mutable state.
func Adjustments(age int, gender string) map[string]float64 {
	adj := map[string]float64{
		KeyInfra:     1.0,
		KeySafety:    1.0,
		KeyTransport: 1.0,
		KeyQuiet:     1.0,
		KeyYouth:     1.0,
		KeyCommute:   1.0,
	}

	if age >= 0 && age <= youngAgeMax {
		adj[KeyYouth] += 0.1
	}
	switch strings.ToLower(gender) {
	case "female":
		adj[KeySafety] += 0.1
		adj[KeyQuiet] += 0.05
	case "male":
		adj[KeyTransport] += 0.1
		adj[KeyInfra] += 0.05
	}

	return adj
}
