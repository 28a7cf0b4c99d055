package postgres

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/ozzy2438/Hospital-Pressure-Analyse/domain/sitrep"
	"github.com/ozzy2438/Hospital-Pressure-Analyse/internal/errors"
)

const recordSchema = `
CREATE TABLE IF NOT EXISTS sitrep_records (
	id          BIGSERIAL PRIMARY KEY,
	date        DATE NOT NULL,
	region      TEXT NOT NULL,
	trust_code  TEXT NOT NULL,
	trust_name  TEXT NOT NULL,
	metric      TEXT NOT NULL,
	value       DOUBLE PRECISION NOT NULL,
	loaded_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_sitrep_records_date ON sitrep_records (date);
CREATE INDEX IF NOT EXISTS idx_sitrep_records_metric ON sitrep_records (metric);
`

// Connect opens a PostgreSQL connection and verifies it
func Connect(databaseURL string) (*sqlx.DB, error) {
	if databaseURL == "" {
		return nil, errors.ConfigInvalid("DATABASE_URL is required")
	}

	db, err := sqlx.Connect("postgres", databaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}

	if err := db.Ping(); err != nil {
		return nil, errors.Wrap(err, "failed to ping database")
	}

	return db, nil
}

// RecordRepository persists long-format records into PostgreSQL
type RecordRepository struct {
	db *sqlx.DB
}

// NewRecordRepository creates a new record repository and ensures the schema exists
func NewRecordRepository(db *sqlx.DB) (*RecordRepository, error) {
	if _, err := db.Exec(recordSchema); err != nil {
		return nil, errors.Wrap(err, "failed to create sitrep_records schema")
	}
	return &RecordRepository{db: db}, nil
}

// WriteRecords inserts all records in a single transaction
func (r *RecordRepository) WriteRecords(ctx context.Context, records []sitrep.Record) error {
	if len(records) == 0 {
		return nil
	}

	start := time.Now()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer tx.Rollback()

	query := `INSERT INTO sitrep_records (date, region, trust_code, trust_name, metric, value)
		VALUES ($1, $2, $3, $4, $5, $6)`

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return errors.Wrap(err, "failed to prepare insert")
	}
	defer stmt.Close()

	for i, rec := range records {
		_, err := stmt.ExecContext(ctx,
			rec.Date.String(), rec.Region, rec.TrustCode.String(),
			rec.TrustName, rec.Metric.String(), rec.Value,
		)
		if err != nil {
			return errors.Wrap(err, fmt.Sprintf("failed to insert record %d", i))
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "failed to commit records")
	}

	log.Printf("[Postgres] inserted %d records in %.2fms",
		len(records), float64(time.Since(start).Microseconds())/1000.0)
	return nil
}

// CountByMetric returns the number of stored records per metric
func (r *RecordRepository) CountByMetric(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT metric, COUNT(*) FROM sitrep_records GROUP BY metric ORDER BY metric`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query metric counts")
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var metric string
		var n int
		if err := rows.Scan(&metric, &n); err != nil {
			return nil, errors.Wrap(err, "failed to scan metric count")
		}
		counts[metric] = n
	}
	return counts, rows.Err()
}
