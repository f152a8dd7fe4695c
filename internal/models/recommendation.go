package models

// IndicatorScores carries the six per-request component scores attached to a
// ranked neighborhood or district aggregate.
type IndicatorScores struct {
	InfraScore     float64 `json:"infra_score"`
	SecurityScore  float64 `json:"security_score"`
	QuietScore     float64 `json:"quiet_score"`
	YouthScore     float64 `json:"youth_score"`
	TransportScore float64 `json:"transport_score"`
	CommuteScore   float64 `json:"commute_score"`
}

// DongRecommendation is one ranked neighborhood inside a district group.
type DongRecommendation struct {
	Dong          string  `json:"dong"`
	DongCode      string  `json:"dong_code"`
	TotalScore    float64 `json:"total_score"`
	PropertyCount int     `json:"property_count"`
	CommuteMin    float64 `json:"commute_min"`
	IndicatorScores
	PropertyIDs []int64 `json:"property_ids"`
}

// GuRecommendation groups ranked neighborhoods under their district.
type GuRecommendation struct {
	Gu                 string               `json:"gu"`
	GuCode             string               `json:"gu_code"`
	AvgTotalScore      float64              `json:"avg_total_score"`
	TotalPropertyCount int                  `json:"total_property_count"`
	AvgScores          IndicatorScores      `json:"avg_scores"`
	DongList           []DongRecommendation `json:"dong_list"`
}

// AreaRecommendResponse is the Area Recommender output.
type AreaRecommendResponse struct {
	BatchID         string             `json:"batch_id"`
	RecommendedArea []GuRecommendation `json:"recommended_area"`
}

// PropertyRecommendation is one ranked listing with the transparency fields:
// component scores and the raw proximity aggregates they came from.
type PropertyRecommendation struct {
	Property
	Score      float64  `json:"score"`
	CommuteMin *float64 `json:"commute_min"`

	InfraScore     float64 `json:"infra_score"`
	SecurityScore  float64 `json:"security_score"`
	TransportScore float64 `json:"transport_score"`
	QuietScore     float64 `json:"quiet_score"`
	YouthScore     float64 `json:"youth_score"`
	CommuteScore   float64 `json:"commute_score"`

	CCTVCount          int      `json:"cctv_count"`
	InfraCount         int      `json:"infra_count"`
	BusCount           int      `json:"bus_count"`
	SubwayCount        int      `json:"subway_count"`
	AvgCCTVDistance    *float64 `json:"avg_cctv_distance"`
	AvgInfraDistance   *float64 `json:"avg_infra_distance"`
	AvgBusStopDistance *float64 `json:"avg_bus_stop_distance"`
	AvgSubwayDistance  *float64 `json:"avg_subway_distance"`
}

// PropertyRecommendResponse is the paginated Property Recommender output.
type PropertyRecommendResponse struct {
	Total      int                      `json:"total"`
	TotalPages int                      `json:"total_pages"`
	Page       int                      `json:"page"`
	PageSize   int                      `json:"page_size"`
	Results    []PropertyRecommendation `json:"results"`
}
