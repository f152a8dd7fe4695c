package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/nomadlab/seoulbang-backend-go/internal/database"
	"github.com/nomadlab/seoulbang-backend-go/internal/models"
)

// ScoreRepository owns the dong score table and its batch metadata. Writes
// are wholesale: a batch run replaces every row and the batch id in one
// transaction, so readers only ever see a complete snapshot.
type ScoreRepository struct {
	db *sql.DB
}

// NewScoreRepository creates a new score repository
func NewScoreRepository(db *sql.DB) *ScoreRepository {
	return &ScoreRepository{db: db}
}

// GetAll retrieves the full score table.
func (r *ScoreRepository) GetAll(ctx context.Context) ([]models.Neighborhood, error) {
	query := `SELECT emd_cd, emd_nm, gu_code, gu_name, area_m2, centroid_lon, centroid_lat,
		infra_score, security_score, transport_score, quiet_score, youth_score
		FROM dong_scores ORDER BY emd_cd`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query dong scores: %w", err)
	}
	defer rows.Close()

	var neighborhoods []models.Neighborhood
	for rows.Next() {
		var n models.Neighborhood
		if err := rows.Scan(
			&n.DongCode, &n.DongName, &n.GuCode, &n.GuName,
			&n.AreaM2, &n.CentroidLon, &n.CentroidLat,
			&n.InfraScore, &n.SecurityScore, &n.TransportScore,
			&n.QuietScore, &n.YouthScore,
		); err != nil {
			return nil, fmt.Errorf("failed to scan dong score: %w", err)
		}
		neighborhoods = append(neighborhoods, n)
	}

	return neighborhoods, rows.Err()
}

// Snapshot returns the batch metadata of the current score table. An empty
// snapshot (no batch run yet) is not an error.
func (r *ScoreRepository) Snapshot(ctx context.Context) (models.ScoreSnapshot, error) {
	var s models.ScoreSnapshot
	err := r.db.QueryRowContext(ctx,
		"SELECT batch_id, generated_at FROM score_batches WHERE id = 1",
	).Scan(&s.BatchID, &s.GeneratedAt)
	if err == sql.ErrNoRows {
		return models.ScoreSnapshot{}, nil
	}
	if err != nil {
		return models.ScoreSnapshot{}, fmt.Errorf("failed to query score batch: %w", err)
	}
	return s, nil
}

// ReplaceAll overwrites the score table with a new batch. All-or-nothing: a
// failed run leaves the previous batch intact.
func (r *ScoreRepository) ReplaceAll(ctx context.Context, batchID string, rows []models.Neighborhood) error {
	return database.Transaction(r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM dong_scores"); err != nil {
			return fmt.Errorf("failed to clear dong scores: %w", err)
		}

		stmt, err := tx.PrepareContext(ctx, `INSERT INTO dong_scores
			(emd_cd, emd_nm, gu_code, gu_name, area_m2, centroid_lon, centroid_lat,
			infra_score, security_score, transport_score, quiet_score, youth_score)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("failed to prepare score insert: %w", err)
		}
		defer stmt.Close()

		for _, n := range rows {
			if _, err := stmt.ExecContext(ctx,
				n.DongCode, n.DongName, n.GuCode, n.GuName,
				n.AreaM2, n.CentroidLon, n.CentroidLat,
				n.InfraScore, n.SecurityScore, n.TransportScore,
				n.QuietScore, n.YouthScore,
			); err != nil {
				return fmt.Errorf("failed to insert score for dong %s: %w", n.DongCode, err)
			}
		}

		if _, err := tx.ExecContext(ctx, `INSERT INTO score_batches (id, batch_id, generated_at)
			VALUES (1, ?, CURRENT_TIMESTAMP)
			ON CONFLICT(id) DO UPDATE SET batch_id = excluded.batch_id, generated_at = CURRENT_TIMESTAMP`,
			batchID,
		); err != nil {
			return fmt.Errorf("failed to record score batch: %w", err)
		}

		return nil
	})
}
