package mdstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver

	"github.com/pytroll/fdrtool/pkg/granule"
)

// Postgres implements Store on a PostgreSQL database.
type Postgres struct {
	db *sql.DB
}

var _ Store = (*Postgres)(nil)

const schema = `
	CREATE TABLE IF NOT EXISTS granule_metadata (
		platform                   text        NOT NULL,
		filename                   text        NOT NULL,
		start_time                 timestamptz NOT NULL,
		end_time                   timestamptz NOT NULL,
		along_track                integer     NOT NULL,
		equator_crossing_longitude double precision,
		equator_crossing_time      timestamptz,
		midnight_line              integer,
		overlap_free_start         integer,
		overlap_free_end           integer,
		global_quality_flag        smallint    NOT NULL,
		PRIMARY KEY (platform, filename)
	)
`

// Open connects to the catalog database and makes sure the schema exists.
func Open(ctx context.Context, dsn string) (*Postgres, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	return &Postgres{db: db}, nil
}

func (s *Postgres) Close() error {
	return s.db.Close()
}

// Save upserts the given records in a single transaction.
func (s *Postgres) Save(ctx context.Context, records []granule.Metadata) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save metadata: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
		INSERT INTO granule_metadata (
			platform, filename, start_time, end_time, along_track,
			equator_crossing_longitude, equator_crossing_time,
			midnight_line, overlap_free_start, overlap_free_end,
			global_quality_flag
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (platform, filename) DO UPDATE SET
			start_time                 = EXCLUDED.start_time,
			end_time                   = EXCLUDED.end_time,
			along_track                = EXCLUDED.along_track,
			equator_crossing_longitude = EXCLUDED.equator_crossing_longitude,
			equator_crossing_time      = EXCLUDED.equator_crossing_time,
			midnight_line              = EXCLUDED.midnight_line,
			overlap_free_start         = EXCLUDED.overlap_free_start,
			overlap_free_end           = EXCLUDED.overlap_free_end,
			global_quality_flag        = EXCLUDED.global_quality_flag
	`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("save metadata: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, md := range records {
		_, err := stmt.ExecContext(ctx,
			md.Platform,
			md.Filename,
			md.StartTime,
			md.EndTime,
			md.AlongTrack,
			nullFloat(md.EquatorCrossingLon),
			nullTime(md.EquatorCrossingTime),
			nullInt(md.MidnightLine),
			nullInt(md.OverlapFreeStart),
			nullInt(md.OverlapFreeEnd),
			uint8(md.QualityFlag),
		)
		if err != nil {
			return fmt.Errorf("save metadata for %s: %w", md.Filename, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save metadata: %w", err)
	}
	return nil
}

// List returns all records, ordered by (platform, start_time, end_time).
func (s *Postgres) List(ctx context.Context) ([]granule.Metadata, error) {
	query := `
		SELECT platform, filename, start_time, end_time, along_track,
		       equator_crossing_longitude, equator_crossing_time,
		       midnight_line, overlap_free_start, overlap_free_end,
		       global_quality_flag
		FROM granule_metadata
		ORDER BY platform, start_time, end_time
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list metadata: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []granule.Metadata
	for rows.Next() {
		var (
			md      granule.Metadata
			eqLon   sql.NullFloat64
			eqTime  sql.NullTime
			midLine sql.NullInt64
			ofStart sql.NullInt64
			ofEnd   sql.NullInt64
			flag    uint8
		)
		err := rows.Scan(
			&md.Platform,
			&md.Filename,
			&md.StartTime,
			&md.EndTime,
			&md.AlongTrack,
			&eqLon,
			&eqTime,
			&midLine,
			&ofStart,
			&ofEnd,
			&flag,
		)
		if err != nil {
			return nil, fmt.Errorf("list metadata: %w", err)
		}
		md.StartTime = md.StartTime.UTC()
		md.EndTime = md.EndTime.UTC()
		if eqLon.Valid {
			md.EquatorCrossingLon = &eqLon.Float64
		}
		if eqTime.Valid {
			t := eqTime.Time.UTC()
			md.EquatorCrossingTime = &t
		}
		md.MidnightLine = intPtr(midLine)
		md.OverlapFreeStart = intPtr(ofStart)
		md.OverlapFreeEnd = intPtr(ofEnd)
		md.QualityFlag = granule.QualityFlag(flag)
		records = append(records, md)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list metadata: %w", err)
	}
	return records, nil
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func nullTime(v *time.Time) sql.NullTime {
	if v == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *v, Valid: true}
}

func intPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}
