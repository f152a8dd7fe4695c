package service

import (
	"context"
	"errors"

	"github.com/nomadlab/seoulbang-backend-go/internal/models"
)

// ErrInvalidInput marks request validation failures so the transport layer
// can distinguish them from store failures.
var ErrInvalidInput = errors.New("invalid input")

// EmdStore provides the neighborhood geometry/registry table.
type EmdStore interface {
	GetAll(ctx context.Context) ([]models.EmdInfo, error)
}

// FacilityStore provides the raw builder inputs.
type FacilityStore interface {
	CountByDong(ctx context.Context, category string) (map[string]int, error)
	GetPopulationSamples(ctx context.Context) ([]models.PopulationSample, error)
}

// ScoreStore provides the batch-computed dong score table.
type ScoreStore interface {
	GetAll(ctx context.Context) ([]models.Neighborhood, error)
	Snapshot(ctx context.Context) (models.ScoreSnapshot, error)
	ReplaceAll(ctx context.Context, batchID string, rows []models.Neighborhood) error
}

// PropertyStore provides the live listings store.
type PropertyStore interface {
	FindCandidates(ctx context.Context, budget models.Budget) ([]models.PropertyRef, error)
	GetByIDs(ctx context.Context, ids []int64) ([]models.Property, error)
}

// ProximityStore provides the precomputed listing/facility aggregates.
type ProximityStore interface {
	Stats(ctx context.Context, category string, ids []int64) (map[int64]models.ProximityStat, error)
}
