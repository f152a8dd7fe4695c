package models

// Budget holds the listing filter the user supplied. Ranges are one or two
// element slices: two elements bound both sides, a single element is a
// one-sided bound, empty imposes no filter.
type Budget struct {
	TransactionType []string  `json:"transaction_type"`
	PropertyType    []string  `json:"property_type"`
	Deposit         []float64 `json:"deposit"`
	MonthlyRent     []float64 `json:"monthly_rent"`
	MaintenanceCost []float64 `json:"maintenance_cost"`
	Area            []float64 `json:"area"`
	Direction       []string  `json:"direction"`
	FloorType       []string  `json:"floor_type"`
}

// UserProfile is the per-request user input. It is never persisted.
type UserProfile struct {
	Age            int       `json:"age"`
	Gender         string    `json:"gender"`
	JobLocation    []float64 `json:"job_location"` // [lon, lat]
	Transportation []string  `json:"transportation"`
	Budget         Budget    `json:"budget"`
	Priority       []string  `json:"priority"` // up to 3 of the recognized indicator keys
	MaxCommuteMin  float64   `json:"max_commute_min"`
}

// PropertyRecommendRequest is the Property Recommender input: a chosen
// neighborhood's aggregate scores plus its candidate listing ids.
type PropertyRecommendRequest struct {
	DongCode    string      `json:"dong_code"`
	QuietScore  float64     `json:"quiet_score"`
	YouthScore  float64     `json:"youth_score"`
	PropertyIDs []int64     `json:"property_ids"`
	UserInput   UserProfile `json:"user_input"`
	Page        int         `json:"page"`
	PageSize    int         `json:"page_size"`
}
