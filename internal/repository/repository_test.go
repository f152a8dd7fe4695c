package repository

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nomadlab/seoulbang-backend-go/internal/database"
	"github.com/nomadlab/seoulbang-backend-go/internal/models"
)

// openTestDB opens a migrated database backed by a temp file. A file, not
// :memory:, because the pool hands each connection its own in-memory
// database.
func openTestDB(t *testing.T) *testDB {
	t.Helper()
	db, err := database.Open(database.Config{Path: filepath.Join(t.TempDir(), "test.db")})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Migrate(db))
	return &testDB{t: t, db: db}
}

type testDB struct {
	t  *testing.T
	db *sql.DB
}

func (d *testDB) exec(query string, args ...interface{}) {
	d.t.Helper()
	_, err := d.db.Exec(query, args...)
	require.NoError(d.t, err)
}

func TestScoreRepositoryReplaceAndRead(t *testing.T) {
	tdb := openTestDB(t)
	repo := NewScoreRepository(tdb.db)
	ctx := context.Background()

	// No batch yet: empty snapshot, no error
	snap, err := repo.Snapshot(ctx)
	require.NoError(t, err)
	require.Empty(t, snap.BatchID)

	first := []models.Neighborhood{
		{DongCode: "11010100", DongName: "dong-a", GuCode: "11010", GuName: "gu-a", AreaM2: 1e6, InfraScore: 0.8},
		{DongCode: "11010200", DongName: "dong-b", GuCode: "11010", GuName: "gu-a", AreaM2: 2e6, QuietScore: 0.5},
	}
	require.NoError(t, repo.ReplaceAll(ctx, "batch-1", first))

	rows, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "11010100", rows[0].DongCode)
	require.Equal(t, 0.8, rows[0].InfraScore)
	require.Equal(t, 0.5, rows[1].QuietScore)

	snap, err = repo.Snapshot(ctx)
	require.NoError(t, err)
	require.Equal(t, "batch-1", snap.BatchID)
	require.NotEmpty(t, snap.GeneratedAt)

	// The next batch replaces everything, including the batch id
	second := []models.Neighborhood{
		{DongCode: "11020300", DongName: "dong-c", GuCode: "11020", GuName: "gu-b", AreaM2: 1e6},
	}
	require.NoError(t, repo.ReplaceAll(ctx, "batch-2", second))

	rows, err = repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "11020300", rows[0].DongCode)

	snap, err = repo.Snapshot(ctx)
	require.NoError(t, err)
	require.Equal(t, "batch-2", snap.BatchID)
}

func TestFacilityRepositoryCountByDong(t *testing.T) {
	tdb := openTestDB(t)
	repo := NewFacilityRepository(tdb.db)

	insert := "INSERT INTO facility_points (category, emd_cd) VALUES (?, ?)"
	tdb.exec(insert, models.FacilityCCTV, "a")
	tdb.exec(insert, models.FacilityCCTV, "a")
	tdb.exec(insert, models.FacilityCCTV, "b")
	tdb.exec(insert, models.FacilityCCTV, "")
	tdb.exec("INSERT INTO facility_points (category) VALUES (?)", models.FacilityCCTV)
	tdb.exec(insert, models.FacilityBusStop, "a")

	counts, err := repo.CountByDong(context.Background(), models.FacilityCCTV)
	require.NoError(t, err)
	require.Equal(t, map[string]int{"a": 2, "b": 1}, counts, "unmatched points and other categories are excluded")
}

func TestFacilityRepositoryPopulationSamples(t *testing.T) {
	tdb := openTestDB(t)
	repo := NewFacilityRepository(tdb.db)

	tdb.exec(`INSERT INTO population_samples
		(emd_cd, hour, total_count, male_youth_count, female_youth_count)
		VALUES (?, ?, ?, ?, ?)`, "a", 3, 1500.5, 200.0, 300.0)

	samples, err := repo.GetPopulationSamples(context.Background())
	require.NoError(t, err)
	require.Len(t, samples, 1)
	require.Equal(t, "a", samples[0].DongCode)
	require.Equal(t, 3, samples[0].Hour)
	require.Equal(t, 1500.5, samples[0].TotalCount)
	require.Equal(t, 200.0, samples[0].MaleYouthCount)
	require.Equal(t, 300.0, samples[0].FemaleYouthCount)
}

func insertProperty(tdb *testDB, id int64, dongCode, txType, propType string, deposit, rent, maintenance int64, area float64, direction, roomType string) {
	tdb.exec(`INSERT INTO properties
		(id, administrative_code, transaction_type, property_type,
		deposit, monthly_rent_cost, maintenance_cost, area, direction, room_type)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, dongCode, txType, propType, deposit, rent, maintenance, area, direction, roomType)
}

func TestPropertyRepositoryFindCandidates(t *testing.T) {
	tdb := openTestDB(t)
	repo := NewPropertyRepository(tdb.db)
	ctx := context.Background()

	insertProperty(tdb, 1, "a", "월세", "오피스텔", 1000, 50, 5, 30, "남향", "복층")
	insertProperty(tdb, 2, "a", "월세", "원룸", 500, 40, 20, 20, "북향", "단층")
	insertProperty(tdb, 3, "b", "전세", "오피스텔", 20000, 0, 10, 45, "남동향", "단층")

	ids := func(refs []models.PropertyRef) []int64 {
		out := make([]int64, len(refs))
		for i, r := range refs {
			out[i] = r.ID
		}
		return out
	}

	// No filter returns everything
	refs, err := repo.FindCandidates(ctx, models.Budget{})
	require.NoError(t, err)
	require.Len(t, refs, 3)

	refs, err = repo.FindCandidates(ctx, models.Budget{TransactionType: []string{"전세"}})
	require.NoError(t, err)
	require.Equal(t, []int64{3}, ids(refs))

	// Two-element range bounds both sides
	refs, err = repo.FindCandidates(ctx, models.Budget{Deposit: []float64{400, 1500}})
	require.NoError(t, err)
	require.ElementsMatch(t, []int64{1, 2}, ids(refs))

	// Single-element maintenance is an upper bound
	refs, err = repo.FindCandidates(ctx, models.Budget{MaintenanceCost: []float64{10}})
	require.NoError(t, err)
	require.ElementsMatch(t, []int64{1, 3}, ids(refs))

	// Single-element area is a lower bound
	refs, err = repo.FindCandidates(ctx, models.Budget{Area: []float64{30}})
	require.NoError(t, err)
	require.ElementsMatch(t, []int64{1, 3}, ids(refs))

	// Direction matches as substring, any of the listed values
	refs, err = repo.FindCandidates(ctx, models.Budget{Direction: []string{"남"}})
	require.NoError(t, err)
	require.ElementsMatch(t, []int64{1, 3}, ids(refs))

	// floor_type filters the room type column
	refs, err = repo.FindCandidates(ctx, models.Budget{FloorType: []string{"복층"}})
	require.NoError(t, err)
	require.Equal(t, []int64{1}, ids(refs))

	// Combined filters intersect
	refs, err = repo.FindCandidates(ctx, models.Budget{
		TransactionType: []string{"월세"},
		MonthlyRent:     []float64{45},
	})
	require.NoError(t, err)
	require.Equal(t, []int64{1}, ids(refs))
}

func TestPropertyRepositoryGetByIDs(t *testing.T) {
	tdb := openTestDB(t)
	repo := NewPropertyRepository(tdb.db)
	ctx := context.Background()

	tdb.exec(`INSERT INTO properties
		(id, administrative_code, location, address, monthly_rent_cost, duplex)
		VALUES (?, ?, ?, ?, ?, ?)`,
		10, "11010100", "POINT(127.1076 37.5480)", "street 1", 55, 1)
	tdb.exec(`INSERT INTO properties (id, administrative_code) VALUES (?, ?)`,
		11, "11010200")

	props, err := repo.GetByIDs(ctx, []int64{10, 11, 999})
	require.NoError(t, err)
	require.Len(t, props, 2, "unknown ids are silently absent")

	byID := make(map[int64]models.Property)
	for _, p := range props {
		byID[p.ID] = p
	}

	full := byID[10]
	require.Equal(t, "11010100", full.AdministrativeCode)
	require.Equal(t, "POINT(127.1076 37.5480)", full.LocationWKT)
	require.Equal(t, "street 1", full.Address)
	require.NotNil(t, full.MonthlyRentCost)
	require.Equal(t, int64(55), *full.MonthlyRentCost)
	require.True(t, full.Duplex)

	sparse := byID[11]
	require.Nil(t, sparse.MonthlyRentCost, "null columns stay nil")
	require.Empty(t, sparse.LocationWKT)
	require.False(t, sparse.Duplex)

	props, err = repo.GetByIDs(ctx, nil)
	require.NoError(t, err)
	require.Empty(t, props)
}

func TestProximityRepositoryStats(t *testing.T) {
	tdb := openTestDB(t)
	repo := NewProximityRepository(tdb.db)
	ctx := context.Background()

	insert := "INSERT INTO property_cctv_map (property_id, distance_meters) VALUES (?, ?)"
	tdb.exec(insert, int64(1), 100.0)
	tdb.exec(insert, int64(1), 300.0)
	tdb.exec(insert, int64(2), 250.0)
	tdb.exec("INSERT INTO property_bus_stop_map (property_id, distance_meters) VALUES (?, ?)", int64(1), 80.0)

	stats, err := repo.Stats(ctx, models.FacilityCCTV, []int64{1, 2, 3})
	require.NoError(t, err)
	require.Len(t, stats, 2, "listings with no nearby facility are absent")
	require.Equal(t, 2, stats[1].Count)
	require.Equal(t, 200.0, stats[1].AvgDistance)
	require.Equal(t, 1, stats[2].Count)
	require.Equal(t, 250.0, stats[2].AvgDistance)

	stats, err = repo.Stats(ctx, models.FacilityBusStop, []int64{1})
	require.NoError(t, err)
	require.Equal(t, 1, stats[1].Count)

	_, err = repo.Stats(ctx, "escalator", []int64{1})
	require.Error(t, err, "category allowlist rejects unknown tables")

	stats, err = repo.Stats(ctx, models.FacilityCCTV, nil)
	require.NoError(t, err)
	require.Empty(t, stats)
}
