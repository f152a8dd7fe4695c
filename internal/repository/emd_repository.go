package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/nomadlab/seoulbang-backend-go/internal/models"
)

// EmdRepository reads the neighborhood geometry/registry table shared by all
// indicator builders.
type EmdRepository struct {
	db *sql.DB
}

// NewEmdRepository creates a new emd repository
func NewEmdRepository(db *sql.DB) *EmdRepository {
	return &EmdRepository{db: db}
}

// GetAll retrieves every neighborhood geometry row.
func (r *EmdRepository) GetAll(ctx context.Context) ([]models.EmdInfo, error) {
	query := `SELECT emd_cd, emd_nm, gu_code, gu_name, area_m2, centroid_lon, centroid_lat
		FROM emd_info ORDER BY emd_cd`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query emd info: %w", err)
	}
	defer rows.Close()

	var infos []models.EmdInfo
	for rows.Next() {
		var e models.EmdInfo
		if err := rows.Scan(
			&e.DongCode, &e.DongName, &e.GuCode, &e.GuName,
			&e.AreaM2, &e.CentroidLon, &e.CentroidLat,
		); err != nil {
			return nil, fmt.Errorf("failed to scan emd info: %w", err)
		}
		infos = append(infos, e)
	}

	return infos, rows.Err()
}
