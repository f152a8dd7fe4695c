package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/nomadlab/seoulbang-backend-go/internal/models"
)

// FacilityRepository reads the raw facility and population reference tables
// consumed by the indicator builders.
type FacilityRepository struct {
	db *sql.DB
}

// NewFacilityRepository creates a new facility repository
func NewFacilityRepository(db *sql.DB) *FacilityRepository {
	return &FacilityRepository{db: db}
}

// CountByDong aggregates facility counts per dong for one category. Points
// never matched to a dong by the ingestion pipeline are skipped.
func (r *FacilityRepository) CountByDong(ctx context.Context, category string) (map[string]int, error) {
	query := `SELECT emd_cd, COUNT(*) AS count
		FROM facility_points
		WHERE category = ? AND emd_cd IS NOT NULL AND emd_cd != ''
		GROUP BY emd_cd`

	rows, err := r.db.QueryContext(ctx, query, category)
	if err != nil {
		return nil, fmt.Errorf("failed to count %s facilities: %w", category, err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var c models.FacilityCount
		if err := rows.Scan(&c.DongCode, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan facility count: %w", err)
		}
		counts[c.DongCode] = c.Count
	}

	return counts, rows.Err()
}

// GetPopulationSamples retrieves all per-dong, per-hour population samples.
func (r *FacilityRepository) GetPopulationSamples(ctx context.Context) ([]models.PopulationSample, error) {
	query := `SELECT emd_cd, hour, total_count, male_youth_count, female_youth_count
		FROM population_samples`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query population samples: %w", err)
	}
	defer rows.Close()

	var samples []models.PopulationSample
	for rows.Next() {
		var s models.PopulationSample
		if err := rows.Scan(&s.DongCode, &s.Hour, &s.TotalCount, &s.MaleYouthCount, &s.FemaleYouthCount); err != nil {
			return nil, fmt.Errorf("failed to scan population sample: %w", err)
		}
		samples = append(samples, s)
	}

	return samples, rows.Err()
}
