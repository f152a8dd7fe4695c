package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/nomadlab/seoulbang-backend-go/internal/models"
)

// proximityTables maps a facility category to its precomputed proximity-join
// table. The allowlist keeps table names out of caller control.
var proximityTables = map[string]string{
	models.FacilityCCTV:       "property_cctv_map",
	models.FacilityRestaurant: "property_rest_food_permit_map",
	models.FacilityBusStop:    "property_bus_stop_map",
	models.FacilitySubway:     "property_subway_map",
}

// ProximityRepository reads the (count, mean distance) aggregates the
// ingestion pipeline precomputes per (listing, facility category).
type ProximityRepository struct {
	db *sql.DB
}

// NewProximityRepository creates a new proximity repository
func NewProximityRepository(db *sql.DB) *ProximityRepository {
	return &ProximityRepository{db: db}
}

// Stats returns the grouped (count, mean distance) per listing id for one
// facility category. Listings with no nearby facility are absent from the
// result.
func (r *ProximityRepository) Stats(ctx context.Context, category string, ids []int64) (map[int64]models.ProximityStat, error) {
	table, ok := proximityTables[category]
	if !ok {
		return nil, fmt.Errorf("unknown proximity category: %q", category)
	}
	if len(ids) == 0 {
		return map[int64]models.ProximityStat{}, nil
	}

	query := fmt.Sprintf(`SELECT property_id, COUNT(*) AS count, AVG(distance_meters) AS avg_distance
		FROM %s WHERE property_id IN (%s) GROUP BY property_id`,
		table, placeholders(len(ids)))

	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s stats: %w", category, err)
	}
	defer rows.Close()

	stats := make(map[int64]models.ProximityStat)
	for rows.Next() {
		var id int64
		var s models.ProximityStat
		if err := rows.Scan(&id, &s.Count, &s.AvgDistance); err != nil {
			return nil, fmt.Errorf("failed to scan %s stat: %w", category, err)
		}
		stats[id] = s
	}

	return stats, rows.Err()
}
