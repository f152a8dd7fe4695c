package database

import (
	"database/sql"
	"fmt"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// migrations holds the schema in order. The schema ships with the binary so
// the batch replace and the server always agree on table shapes.
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_reference_tables",
		SQL: `
			CREATE TABLE IF NOT EXISTS emd_info (
				emd_cd TEXT PRIMARY KEY,
				emd_nm TEXT NOT NULL,
				gu_code TEXT NOT NULL,
				gu_name TEXT NOT NULL,
				area_m2 REAL NOT NULL,
				centroid_lon REAL NOT NULL,
				centroid_lat REAL NOT NULL
			);

			CREATE TABLE IF NOT EXISTS facility_points (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				category TEXT NOT NULL,
				lon REAL,
				lat REAL,
				emd_cd TEXT
			);
			CREATE INDEX IF NOT EXISTS idx_facility_points_category_emd
				ON facility_points(category, emd_cd);

			CREATE TABLE IF NOT EXISTS population_samples (
				emd_cd TEXT NOT NULL,
				hour INTEGER NOT NULL,
				total_count REAL NOT NULL,
				male_youth_count REAL NOT NULL DEFAULT 0,
				female_youth_count REAL NOT NULL DEFAULT 0
			);
			CREATE INDEX IF NOT EXISTS idx_population_samples_emd
				ON population_samples(emd_cd);
		`,
	},
	{
		Version: 2,
		Name:    "create_score_tables",
		SQL: `
			CREATE TABLE IF NOT EXISTS dong_scores (
				emd_cd TEXT PRIMARY KEY,
				emd_nm TEXT NOT NULL,
				gu_code TEXT NOT NULL,
				gu_name TEXT NOT NULL,
				area_m2 REAL NOT NULL,
				centroid_lon REAL NOT NULL,
				centroid_lat REAL NOT NULL,
				infra_score REAL NOT NULL DEFAULT 0,
				security_score REAL NOT NULL DEFAULT 0,
				transport_score REAL NOT NULL DEFAULT 0,
				quiet_score REAL NOT NULL DEFAULT 0,
				youth_score REAL NOT NULL DEFAULT 0
			);

			CREATE TABLE IF NOT EXISTS score_batches (
				id INTEGER PRIMARY KEY CHECK (id = 1),
				batch_id TEXT NOT NULL,
				generated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			);
		`,
	},
	{
		Version: 3,
		Name:    "create_property_tables",
		SQL: `
			CREATE TABLE IF NOT EXISTS properties (
				id INTEGER PRIMARY KEY,
				administrative_code TEXT NOT NULL,
				location TEXT,
				main_image_url TEXT,
				address TEXT,
				deposit INTEGER,
				monthly_rent_cost INTEGER,
				maintenance_cost INTEGER,
				area REAL,
				floor TEXT,
				total_floor TEXT,
				property_type TEXT,
				transaction_type TEXT,
				room_type TEXT,
				features TEXT,
				direction TEXT,
				property_number TEXT,
				property_name TEXT,
				property_confirmation_date TEXT,
				rooms_bathrooms TEXT,
				duplex INTEGER,
				parking_spaces INTEGER,
				elevator_count INTEGER,
				approval_date TEXT
			);
			CREATE INDEX IF NOT EXISTS idx_properties_admin_code
				ON properties(administrative_code);

			CREATE TABLE IF NOT EXISTS property_cctv_map (
				property_id INTEGER NOT NULL,
				facility_id INTEGER,
				distance_meters REAL NOT NULL
			);
			CREATE INDEX IF NOT EXISTS idx_property_cctv_map_pid
				ON property_cctv_map(property_id);

			CREATE TABLE IF NOT EXISTS property_rest_food_permit_map (
				property_id INTEGER NOT NULL,
				facility_id INTEGER,
				distance_meters REAL NOT NULL
			);
			CREATE INDEX IF NOT EXISTS idx_property_rest_food_permit_map_pid
				ON property_rest_food_permit_map(property_id);

			CREATE TABLE IF NOT EXISTS property_bus_stop_map (
				property_id INTEGER NOT NULL,
				facility_id INTEGER,
				distance_meters REAL NOT NULL
			);
			CREATE INDEX IF NOT EXISTS idx_property_bus_stop_map_pid
				ON property_bus_stop_map(property_id);

			CREATE TABLE IF NOT EXISTS property_subway_map (
				property_id INTEGER NOT NULL,
				facility_id INTEGER,
				distance_meters REAL NOT NULL
			);
			CREATE INDEX IF NOT EXISTS idx_property_subway_map_pid
				ON property_subway_map(property_id);
		`,
	},
}

// Migrate applies all pending migrations.
func Migrate(db *sql.DB) error {
	if err := initMigrationsTable(db); err != nil {
		return err
	}

	applied, err := appliedMigrations(db)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if applied[m.Version] {
			continue
		}
		if _, err := db.Exec(m.SQL); err != nil {
			return fmt.Errorf("failed to apply migration %d (%s): %w", m.Version, m.Name, err)
		}
		if _, err := db.Exec(
			"INSERT INTO migrations (version, name) VALUES (?, ?)", m.Version, m.Name,
		); err != nil {
			return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
		}
	}

	return nil
}

func initMigrationsTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}
	return nil
}

func appliedMigrations(db *sql.DB) (map[int]bool, error) {
	rows, err := db.Query("SELECT version FROM migrations ORDER BY version")
	if err != nil {
		return nil, fmt.Errorf("failed to query migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, fmt.Errorf("failed to scan migration version: %w", err)
		}
		applied[version] = true
	}

	return applied, rows.Err()
}
