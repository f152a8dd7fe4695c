package models

// Facility categories as stored in facility_points and the proximity map
// tables. Assignment of a facility to a dong happens once in the ingestion
// pipeline; here they are immutable reference data.
const (
	FacilityCCTV       = "cctv"
	FacilityRestaurant = "rest_food_permit"
	FacilityBusStop    = "bus_stop"
	FacilitySubway     = "subway"
)

// FacilityCount is an aggregated facility count for one dong.
type FacilityCount struct {
	DongCode string `db:"emd_cd"`
	Count    int    `db:"count"`
}

// PopulationSample is one per-dong, per-hour living-population row. The
// ingestion pipeline collapses the source age/sex bands into the totals the
// quiet/youth builder consumes (youth = ages 0-39).
type PopulationSample struct {
	DongCode         string  `db:"emd_cd"`
	Hour             int     `db:"hour"`
	TotalCount       float64 `db:"total_count"`
	MaleYouthCount   float64 `db:"male_youth_count"`
	FemaleYouthCount float64 `db:"female_youth_count"`
}

// ProximityStat is the precomputed (count, mean distance) aggregate for one
// (listing, facility category) pair.
type ProximityStat struct {
	Count       int     `json:"count"`
	AvgDistance float64 `json:"avg_distance"`
}
