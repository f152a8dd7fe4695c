package models

// Property is a rental listing row. Monetary and physical attributes that
// the crawler may leave empty are pointers so NULL survives the round trip.
type Property struct {
	ID                 int64  `json:"property_id" db:"id"`
	AdministrativeCode string `json:"administrative_code" db:"administrative_code"`
	LocationWKT        string `json:"-" db:"location"` // POINT(lon lat)

	MainImageURL string `json:"image" db:"main_image_url"`
	Address      string `json:"address" db:"address"`

	Deposit         *int64   `json:"deposit" db:"deposit"`
	MonthlyRentCost *int64   `json:"monthly_rent_cost" db:"monthly_rent_cost"`
	MaintenanceCost *int64   `json:"maintenance_cost" db:"maintenance_cost"`
	Area            *float64 `json:"area" db:"area"`

	Floor           string `json:"floor" db:"floor"`
	TotalFloor      string `json:"total_floor" db:"total_floor"`
	PropertyType    string `json:"property_type" db:"property_type"`
	TransactionType string `json:"transaction_type" db:"transaction_type"`
	RoomType        string `json:"room_type" db:"room_type"`
	Features        string `json:"features" db:"features"`
	Direction       string `json:"direction" db:"direction"`

	PropertyNumber           string `json:"property_number" db:"property_number"`
	PropertyName             string `json:"property_name" db:"property_name"`
	PropertyConfirmationDate string `json:"property_confirmation_date" db:"property_confirmation_date"`
	RoomsBathrooms           string `json:"rooms_bathrooms" db:"rooms_bathrooms"`
	Duplex                   bool   `json:"duplex" db:"duplex"`
	ParkingSpaces            *int64 `json:"parking_spaces" db:"parking_spaces"`
	ElevatorCount            *int64 `json:"elevator_count" db:"elevator_count"`
	ApprovalDate             string `json:"approval_date" db:"approval_date"`
}

// PropertyRef is the (listing id, dong code) pair returned by the budget
// filter query.
type PropertyRef struct {
	ID       int64  `db:"id"`
	DongCode string `db:"administrative_code"`
}
