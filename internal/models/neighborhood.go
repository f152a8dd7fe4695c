package models

// Neighborhood is one row of the dong score table: geographic metadata plus
// the batch-computed indicator scores, all in [0, 1].
type Neighborhood struct {
	DongCode    string  `json:"dong_code" db:"emd_cd"`
	DongName    string  `json:"dong" db:"emd_nm"`
	GuCode      string  `json:"gu_code" db:"gu_code"`
	GuName      string  `json:"gu" db:"gu_name"`
	AreaM2      float64 `json:"area_m2" db:"area_m2"`
	CentroidLon float64 `json:"centroid_lon" db:"centroid_lon"`
	CentroidLat float64 `json:"centroid_lat" db:"centroid_lat"`

	InfraScore     float64 `json:"infra_score" db:"infra_score"`
	SecurityScore  float64 `json:"security_score" db:"security_score"`
	TransportScore float64 `json:"transport_score" db:"transport_score"`
	QuietScore     float64 `json:"quiet_score" db:"quiet_score"`
	YouthScore     float64 `json:"youth_score" db:"youth_score"`
}

// EmdInfo is a neighborhood geometry/registry row, the shared input of every
// indicator builder.
type EmdInfo struct {
	DongCode    string  `json:"dong_code" db:"emd_cd"`
	DongName    string  `json:"dong" db:"emd_nm"`
	GuCode      string  `json:"gu_code" db:"gu_code"`
	GuName      string  `json:"gu" db:"gu_name"`
	AreaM2      float64 `json:"area_m2" db:"area_m2"`
	CentroidLon float64 `json:"centroid_lon" db:"centroid_lon"`
	CentroidLat float64 `json:"centroid_lat" db:"centroid_lat"`
}

// ScoreSnapshot identifies which batch of the score table is being read.
type ScoreSnapshot struct {
	BatchID     string `json:"batch_id"`
	GeneratedAt string `json:"generated_at"`
}
