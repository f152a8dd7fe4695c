package service

import (
	"context"
	"errors"

	"github.com/nomadlab/seoulbang-backend-go/internal/models"
)

type fakeScoreStore struct {
	rows     []models.Neighborhood
	snapshot models.ScoreSnapshot

	replacedBatchID string
	replacedRows    []models.Neighborhood
}

func (f *fakeScoreStore) GetAll(ctx context.Context) ([]models.Neighborhood, error) {
	return f.rows, nil
}

func (f *fakeScoreStore) Snapshot(ctx context.Context) (models.ScoreSnapshot, error) {
	return f.snapshot, nil
}

func (f *fakeScoreStore) ReplaceAll(ctx context.Context, batchID string, rows []models.Neighborhood) error {
	f.replacedBatchID = batchID
	f.replacedRows = rows
	return nil
}

type fakePropertyStore struct {
	refs  []models.PropertyRef
	props []models.Property

	findErr error
}

func (f *fakePropertyStore) FindCandidates(ctx context.Context, budget models.Budget) ([]models.PropertyRef, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.refs, nil
}

func (f *fakePropertyStore) GetByIDs(ctx context.Context, ids []int64) ([]models.Property, error) {
	want := make(map[int64]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []models.Property
	for _, p := range f.props {
		if want[p.ID] {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeProximityStore struct {
	stats map[string]map[int64]models.ProximityStat
}

func (f *fakeProximityStore) Stats(ctx context.Context, category string, ids []int64) (map[int64]models.ProximityStat, error) {
	byID, ok := f.stats[category]
	if !ok {
		return map[int64]models.ProximityStat{}, nil
	}
	out := make(map[int64]models.ProximityStat)
	for _, id := range ids {
		if s, found := byID[id]; found {
			out[id] = s
		}
	}
	return out, nil
}

type fakeEmdStore struct {
	rows []models.EmdInfo
}

func (f *fakeEmdStore) GetAll(ctx context.Context) ([]models.EmdInfo, error) {
	return f.rows, nil
}

type fakeFacilityStore struct {
	counts  map[string]map[string]int
	samples []models.PopulationSample
}

func (f *fakeFacilityStore) CountByDong(ctx context.Context, category string) (map[string]int, error) {
	counts, ok := f.counts[category]
	if !ok {
		return map[string]int{}, nil
	}
	return counts, nil
}

func (f *fakeFacilityStore) GetPopulationSamples(ctx context.Context) ([]models.PopulationSample, error) {
	return f.samples, nil
}

var errStoreDown = errors.New("store unavailable")
