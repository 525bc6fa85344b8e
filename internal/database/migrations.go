package database

import (
	"database/sql"
	"fmt"
	"log"
	"sort"
)

// Migration represents a database migration
type Migration struct {
	Version    int
	Name       string
	Statements []string
}

// migrations are embedded and applied in version order. The schema is small
// enough that shipping .sql files alongside the binary is not worth it.
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_trips",
		Statements: []string{`
			CREATE TABLE IF NOT EXISTS trips (
				id TEXT PRIMARY KEY,
				from_lat REAL,
				from_lng REAL,
				from_name TEXT,
				from_governorate TEXT,
				to_lat REAL,
				to_lng REAL,
				to_name TEXT,
				to_governorate TEXT,
				fare REAL NOT NULL,
				distance REAL NOT NULL,
				duration INTEGER,
				passenger_count INTEGER,
				start_time TEXT,
				governorate TEXT,
				route_json TEXT,
				user_id TEXT,
				ip_address TEXT,
				user_agent TEXT,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
				submitted_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			)
		`},
	},
	{
		Version: 2,
		Name:    "index_trips_similarity",
		Statements: []string{
			"CREATE INDEX IF NOT EXISTS idx_trips_distance ON trips(distance)",
			"CREATE INDEX IF NOT EXISTS idx_trips_governorate ON trips(governorate)",
			"CREATE INDEX IF NOT EXISTS idx_trips_created_at ON trips(created_at)",
		},
	},
}

// Migrate applies pending migrations, tracking applied versions in a
// migrations table.
func Migrate(db *sql.DB) error {
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	applied, err := appliedVersions(db)
	if err != nil {
		return err
	}

	sorted := make([]Migration, len(migrations))
	copy(sorted, migrations)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Version < sorted[j].Version })

	for _, m := range sorted {
		if applied[m.Version] {
			continue
		}
		err := Transaction(db, func(tx *sql.Tx) error {
			for _, stmt := range m.Statements {
				if _, err := tx.Exec(stmt); err != nil {
					return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Name, err)
				}
			}
			if _, err := tx.Exec("INSERT INTO migrations (version, name) VALUES (?, ?)", m.Version, m.Name); err != nil {
				return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
			}
			return nil
		})
		if err != nil {
			return err
		}
		log.Printf("Applied migration %d: %s", m.Version, m.Name)
	}

	return nil
}

func appliedVersions(db *sql.DB) (map[int]bool, error) {
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
